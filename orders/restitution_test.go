package orders

import (
	"errors"
	"testing"

	"github.com/melodias-store/melodias-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestitutionPlanMatchesOrderItems(t *testing.T) {
	// Cancelling an order with qty 3 of product 1 and qty 1 of product 2
	// owes exactly those quantities back.
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 1},
	}

	plan := RestitutionPlan(items)
	assert.Equal(t, []StockRestitution{{1, 3}, {2, 1}}, plan)
}

func TestRestitutionPlanSumsRepeatedProducts(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 5, Quantity: 2},
		{ProductID: 5, Quantity: 1},
	}

	plan := RestitutionPlan(items)
	assert.Equal(t, []StockRestitution{{5, 3}}, plan)
}

func TestRestitutionPlanIgnoresNonPositiveQuantities(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 0},
		{ProductID: 2, Quantity: 2},
	}

	plan := RestitutionPlan(items)
	assert.Equal(t, []StockRestitution{{2, 2}}, plan)
}

func TestApplyRestitutionIncrementsEveryProduct(t *testing.T) {
	plan := RestitutionPlan([]models.OrderItem{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 1},
	})

	applied := make(map[uint]int)
	err := ApplyRestitution(plan, func(productID uint, quantity int) (int64, error) {
		applied[productID] += quantity
		return 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{1: 3, 2: 1}, applied)
}

func TestApplyRestitutionSkipsDeletedProducts(t *testing.T) {
	plan := RestitutionPlan([]models.OrderItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 9, Quantity: 4},
		{ProductID: 2, Quantity: 1},
	})

	applied := make(map[uint]int)
	err := ApplyRestitution(plan, func(productID uint, quantity int) (int64, error) {
		if productID == 9 {
			// Product deleted since purchase: the update touches no rows.
			return 0, nil
		}
		applied[productID] += quantity
		return 1, nil
	})

	// The deleted product does not fail the cancellation and the other
	// lines are still restored.
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{1: 2, 2: 1}, applied)
}

func TestApplyRestitutionStopsOnStorageError(t *testing.T) {
	plan := RestitutionPlan([]models.OrderItem{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 1},
	})

	boom := errors.New("write failed")
	calls := 0
	err := ApplyRestitution(plan, func(productID uint, quantity int) (int64, error) {
		calls++
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
