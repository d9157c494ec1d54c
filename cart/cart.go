// Package cart implements the per-session shopping cart: a multiset of
// product ids scoped to a browser session. Carts live in Redis keyed by a
// session cookie and never persist beyond the session's lifetime.
package cart

import (
	"fmt"
	"sort"
)

// Cart is an explicit per-session value. Handlers load it from the Store,
// mutate it, and save it back; there is no process-wide cart state.
type Cart struct {
	IDs []uint `json:"ids"`
}

// Line is a quantity-grouped view of the cart for one product.
type Line struct {
	ProductID uint
	Quantity  int
}

// OutOfStockError reports an add that would exceed the product's stock.
type OutOfStockError struct {
	ProductID uint
	Available int
	InCart    int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %d: %d available, %d already in cart", e.ProductID, e.Available, e.InCart)
}

// Count returns how many units of the product the cart holds.
func (c *Cart) Count(productID uint) int {
	n := 0
	for _, id := range c.IDs {
		if id == productID {
			n++
		}
	}
	return n
}

// Add appends quantity units of the product. It fails with OutOfStockError
// when the units already in the cart plus the requested quantity exceed
// stock. Stock is the caller's current read of the catalog; the same check
// is repeated atomically at checkout because this one can go stale.
func (c *Cart) Add(productID uint, quantity, stock int) error {
	if quantity < 1 {
		quantity = 1
	}
	inCart := c.Count(productID)
	if inCart+quantity > stock {
		return &OutOfStockError{ProductID: productID, Available: stock, InCart: inCart}
	}
	for i := 0; i < quantity; i++ {
		c.IDs = append(c.IDs, productID)
	}
	return nil
}

// Remove drops every unit of the product. Removing an absent product is a
// no-op.
func (c *Cart) Remove(productID uint) {
	kept := c.IDs[:0]
	for _, id := range c.IDs {
		if id != productID {
			kept = append(kept, id)
		}
	}
	c.IDs = kept
}

// Lines groups the cart by product, ordered by product id.
func (c *Cart) Lines() []Line {
	counts := make(map[uint]int)
	for _, id := range c.IDs {
		counts[id]++
	}

	lines := make([]Line, 0, len(counts))
	for id, qty := range counts {
		lines = append(lines, Line{ProductID: id, Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	return lines
}

// ProductIDs returns the distinct product ids in the cart.
func (c *Cart) ProductIDs() []uint {
	lines := c.Lines()
	ids := make([]uint, len(lines))
	for i, line := range lines {
		ids[i] = line.ProductID
	}
	return ids
}

func (c *Cart) IsEmpty() bool {
	return len(c.IDs) == 0
}

func (c *Cart) Clear() {
	c.IDs = nil
}
