package wishlist

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is one saved product. Name, Price and Image are snapshots from
// the moment it was saved.
type Item struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	AddedAt   time.Time       `json:"added_at"`
}

// Wishlist is one user's saved products in insertion order, at most one
// entry per product id.
type Wishlist struct {
	Items []Item `json:"items"`
}

// Contains reports whether the product is saved.
func (w Wishlist) Contains(productID string) bool {
	return w.indexOf(productID) >= 0
}

// Count is the number of saved products.
func (w Wishlist) Count() int {
	return len(w.Items)
}

func (w Wishlist) indexOf(productID string) int {
	for i, item := range w.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
