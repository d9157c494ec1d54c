package orders

import (
	"math/rand"
)

const (
	trackingPrefix = "TRK-"
	trackingDigits = 8

	// Used when the courier table is empty.
	DefaultCarrier = "Internal Freight"
)

// Shipment is the synthetic carrier assignment for a newly shipped order.
type Shipment struct {
	Carrier        string
	TrackingNumber string
}

// SimulateShipment picks a carrier uniformly at random from the pool and
// generates a tracking number of the form TRK-12345678. An empty pool falls
// back to DefaultCarrier.
func SimulateShipment(carriers []string, rng *rand.Rand) Shipment {
	carrier := DefaultCarrier
	if len(carriers) > 0 {
		carrier = carriers[rng.Intn(len(carriers))]
	}

	digits := make([]byte, trackingDigits)
	for i := range digits {
		digits[i] = byte('0' + rng.Intn(10))
	}

	return Shipment{
		Carrier:        carrier,
		TrackingNumber: trackingPrefix + string(digits),
	}
}
