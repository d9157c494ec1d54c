// Package orders holds the order lifecycle rules: checkout draft building,
// the status transitions around cancellation, and shipment simulation.
package orders

// The two statuses with attached behavior. Admin updates may set any other
// free-form status string; those pass through without side effects.
const (
	StatusPendingShipment = "Pending Shipment"
	StatusShipped         = "Shipped"
	StatusCancelled       = "Cancelled"
)

// CanCancel reports whether an order may still be cancelled by its owner.
// Once an order leaves Pending Shipment the stock has effectively left the
// building and cancellation is no longer allowed.
func CanCancel(status string) bool {
	return status == StatusPendingShipment
}

// NeedsShipmentMetadata reports whether a status update should synthesize
// carrier and tracking data. The previous-status guard makes the assignment
// happen exactly once: re-issuing a Shipped update keeps the original
// tracking number.
func NeedsShipmentMetadata(newStatus, previousStatus string) bool {
	return newStatus == StatusShipped && previousStatus != StatusShipped
}
