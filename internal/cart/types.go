package cart

import (
	"github.com/shopspring/decimal"
)

// Item is one cart line. Name, Price and Image are snapshots captured
// when the item was first added; they are never refreshed, so the price
// the shopper saw is the price they keep.
type Item struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is price times quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is one user's cart. Items keep insertion order, with at most one
// entry per product id.
type Cart struct {
	Items []Item `json:"items"`
}

// Subtotal sums every line total.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// TotalQuantity sums the quantities across all lines.
func (c Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// DistinctItems is the number of lines in the cart.
func (c Cart) DistinctItems() int {
	return len(c.Items)
}

func (c Cart) indexOf(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
