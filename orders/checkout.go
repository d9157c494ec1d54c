package orders

import (
	"errors"
	"fmt"

	"github.com/melodias-store/melodias-api/cart"
	"github.com/melodias-store/melodias-api/models"
	"github.com/shopspring/decimal"
)

var ErrEmptyDraft = errors.New("no purchasable items in cart")

// InsufficientStockError fails the whole checkout when any single line
// cannot be covered by current stock. No partial checkout.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %d available, %d requested", e.ProductName, e.Available, e.Requested)
}

// Draft is a validated checkout ready to be committed: the order total and
// the item snapshots, both priced from the catalog's current state.
type Draft struct {
	Total decimal.Decimal
	Items []models.OrderItem
}

// BuildDraft validates every cart line against current stock and computes
// the order total. Lines whose product no longer exists in the catalog are
// dropped, matching the cart's tolerance for stale contents; a cart left
// with nothing purchasable fails with ErrEmptyDraft.
func BuildDraft(lines []cart.Line, products []models.Product) (*Draft, error) {
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	draft := &Draft{Total: decimal.Zero}
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		if product.Stock < line.Quantity {
			return nil, &InsufficientStockError{
				ProductName: product.Name,
				Available:   product.Stock,
				Requested:   line.Quantity,
			}
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		draft.Total = draft.Total.Add(subtotal)
		draft.Items = append(draft.Items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			Price:       product.Price,
		})
	}

	if len(draft.Items) == 0 {
		return nil, ErrEmptyDraft
	}
	return draft, nil
}
