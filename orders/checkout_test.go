package orders

import (
	"testing"

	"github.com/melodias-store/melodias-api/cart"
	"github.com/melodias-store/melodias-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func product(id uint, name string, price string, stock int) models.Product {
	return models.Product{
		Model: gorm.Model{ID: id},
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

func TestBuildDraftComputesExactTotal(t *testing.T) {
	lines := []cart.Line{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 1}}
	products := []models.Product{
		product(1, "Capo", "9.99", 5),
		product(2, "Tuner", "24.50", 2),
	}

	draft, err := BuildDraft(lines, products)
	require.NoError(t, err)

	// 3 × 9.99 + 1 × 24.50 = 54.47, exactly.
	assert.True(t, draft.Total.Equal(decimal.RequireFromString("54.47")),
		"total = %s", draft.Total)

	require.Len(t, draft.Items, 2)
	assert.Equal(t, "Capo", draft.Items[0].ProductName)
	assert.Equal(t, 3, draft.Items[0].Quantity)
	assert.True(t, draft.Items[0].Price.Equal(decimal.RequireFromString("9.99")))

	// Round trip: the recorded total equals the sum of line subtotals.
	sum := decimal.Zero
	for _, item := range draft.Items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	assert.True(t, draft.Total.Equal(sum))
}

func TestBuildDraftFailsWhenAnyLineLacksStock(t *testing.T) {
	lines := []cart.Line{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: 3}}
	products := []models.Product{
		product(1, "Strings", "5.00", 10),
		product(2, "Strap", "12.00", 2),
	}

	draft, err := BuildDraft(lines, products)
	require.Nil(t, draft)

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Strap", insufficient.ProductName)
	assert.Equal(t, 2, insufficient.Available)
	assert.Equal(t, 3, insufficient.Requested)
}

func TestBuildDraftSnapshotsCurrentCatalogState(t *testing.T) {
	lines := []cart.Line{{ProductID: 1, Quantity: 2}}
	products := []models.Product{product(1, "Ukulele", "89.90", 2)}

	draft, err := BuildDraft(lines, products)
	require.NoError(t, err)
	require.Len(t, draft.Items, 1)

	item := draft.Items[0]
	assert.Equal(t, uint(1), item.ProductID)
	assert.Equal(t, "Ukulele", item.ProductName)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("89.90")))
	assert.True(t, draft.Total.Equal(decimal.RequireFromString("179.80")))
}

func TestBuildDraftDropsVanishedProducts(t *testing.T) {
	lines := []cart.Line{{ProductID: 1, Quantity: 1}, {ProductID: 9, Quantity: 2}}
	products := []models.Product{product(1, "Pick", "0.50", 100)}

	draft, err := BuildDraft(lines, products)
	require.NoError(t, err)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, uint(1), draft.Items[0].ProductID)
	assert.True(t, draft.Total.Equal(decimal.RequireFromString("0.50")))
}

func TestBuildDraftRejectsEmptyResult(t *testing.T) {
	// Every cart line points at a product that no longer exists.
	lines := []cart.Line{{ProductID: 9, Quantity: 2}}

	draft, err := BuildDraft(lines, nil)
	assert.Nil(t, draft)
	assert.ErrorIs(t, err, ErrEmptyDraft)
}

func TestBuildDraftAllowsExactStock(t *testing.T) {
	lines := []cart.Line{{ProductID: 1, Quantity: 2}}
	products := []models.Product{product(1, "Drumsticks", "7.25", 2)}

	draft, err := BuildDraft(lines, products)
	require.NoError(t, err)
	assert.True(t, draft.Total.Equal(decimal.RequireFromString("14.50")))
}
