package orders

import (
	"sort"

	"github.com/melodias-store/melodias-api/models"
)

// StockRestitution is one per-product stock increment owed when an order
// is cancelled.
type StockRestitution struct {
	ProductID uint
	Quantity  int
}

// RestitutionPlan turns an order's items into per-product increments,
// summing quantities should a product appear on more than one line.
// Ordered by product id.
func RestitutionPlan(items []models.OrderItem) []StockRestitution {
	byProduct := make(map[uint]int, len(items))
	for _, item := range items {
		if item.Quantity > 0 {
			byProduct[item.ProductID] += item.Quantity
		}
	}

	plan := make([]StockRestitution, 0, len(byProduct))
	for id, qty := range byProduct {
		plan = append(plan, StockRestitution{ProductID: id, Quantity: qty})
	}
	sort.Slice(plan, func(i, j int) bool { return plan[i].ProductID < plan[j].ProductID })
	return plan
}

// ApplyRestitution runs every increment through apply, which returns how
// many rows it touched. Zero rows means the product no longer exists in
// the catalog; that line is skipped without failing the cancellation. Any
// storage error aborts so the caller can roll back.
func ApplyRestitution(plan []StockRestitution, apply func(productID uint, quantity int) (int64, error)) error {
	for _, r := range plan {
		if _, err := apply(r.ProductID, r.Quantity); err != nil {
			return err
		}
	}
	return nil
}
