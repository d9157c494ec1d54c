package orders

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var trackingPattern = regexp.MustCompile(`^TRK-\d{8}$`)

func TestSimulateShipmentTrackingNumberFormat(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		shipment := SimulateShipment([]string{"DHL"}, rng)
		assert.Regexp(t, trackingPattern, shipment.TrackingNumber)
	}
}

func TestSimulateShipmentPicksFromPool(t *testing.T) {
	pool := []string{"DHL", "FedEx", "Estafeta"}
	rng := rand.New(rand.NewSource(42))

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		shipment := SimulateShipment(pool, rng)
		assert.Contains(t, pool, shipment.Carrier)
		seen[shipment.Carrier] = true
	}
	// Uniform selection over 200 draws reaches every carrier.
	assert.Len(t, seen, len(pool))
}

func TestSimulateShipmentEmptyPoolFallsBack(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	shipment := SimulateShipment(nil, rng)
	assert.Equal(t, DefaultCarrier, shipment.Carrier)
	assert.Regexp(t, trackingPattern, shipment.TrackingNumber)
}

func TestCanCancel(t *testing.T) {
	assert.True(t, CanCancel(StatusPendingShipment))
	assert.False(t, CanCancel(StatusShipped))
	assert.False(t, CanCancel(StatusCancelled))
	assert.False(t, CanCancel("Delivered"))
}

func TestNeedsShipmentMetadata(t *testing.T) {
	tests := []struct {
		name     string
		newState string
		previous string
		want     bool
	}{
		{"first transition to shipped", StatusShipped, StatusPendingShipment, true},
		{"repeated shipped update keeps metadata", StatusShipped, StatusShipped, false},
		{"cancellation", StatusCancelled, StatusPendingShipment, false},
		{"free-form status", "Delivered", StatusShipped, false},
		{"shipped from a free-form status", StatusShipped, "On Hold", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsShipmentMetadata(tt.newState, tt.previous))
		})
	}
}
