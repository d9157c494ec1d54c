package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRespectsStock(t *testing.T) {
	c := &Cart{}

	// Product 7 has stock 2: two units fit, a third does not.
	require.NoError(t, c.Add(7, 2, 2))
	assert.Equal(t, 2, c.Count(7))

	err := c.Add(7, 1, 2)
	require.Error(t, err)

	var oos *OutOfStockError
	require.ErrorAs(t, err, &oos)
	assert.Equal(t, uint(7), oos.ProductID)
	assert.Equal(t, 2, oos.Available)
	assert.Equal(t, 2, oos.InCart)

	// The failed add must not change the cart.
	assert.Equal(t, 2, c.Count(7))
}

func TestAddDefaultsToOneUnit(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.Add(3, 0, 5))
	assert.Equal(t, 1, c.Count(3))
}

func TestRemoveDropsEveryUnit(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.Add(1, 3, 10))
	require.NoError(t, c.Add(2, 1, 10))

	c.Remove(1)
	assert.Equal(t, 0, c.Count(1))
	assert.Equal(t, 1, c.Count(2))

	// Removing an absent product is a no-op.
	c.Remove(99)
	assert.Equal(t, 1, c.Count(2))
}

func TestLinesGroupByProduct(t *testing.T) {
	c := &Cart{IDs: []uint{2, 1, 2, 3, 2}}

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, []Line{{1, 1}, {2, 3}, {3, 1}}, lines)
	assert.Equal(t, []uint{1, 2, 3}, c.ProductIDs())
}

func TestClear(t *testing.T) {
	c := &Cart{IDs: []uint{1, 1, 2}}
	assert.False(t, c.IsEmpty())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Lines())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Unknown sessions yield an empty cart.
	c, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	require.NoError(t, c.Add(4, 2, 5))
	require.NoError(t, store.Save(ctx, "s1", c))

	loaded, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Count(4))

	// Carts are scoped to their own session.
	other, err := store.Get(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())

	require.NoError(t, store.Clear(ctx, "s1"))
	cleared, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cleared.IsEmpty())
}

func TestMemoryStoreSavingEmptyCartClears(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	c := &Cart{}
	require.NoError(t, c.Add(1, 1, 1))
	require.NoError(t, store.Save(ctx, "s1", c))

	c.Clear()
	require.NoError(t, store.Save(ctx, "s1", c))

	loaded, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
