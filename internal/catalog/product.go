package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Details holds the physical attributes of a piece. Fields vary by
// category, so everything except Stones is optional.
type Details struct {
	Weight      string `json:"weight,omitempty"`
	ChainLength string `json:"chainLength,omitempty"`
	Length      string `json:"length,omitempty"`
	Diameter    string `json:"diameter,omitempty"`
	Width       string `json:"width,omitempty"`
	ClosureType string `json:"closureType,omitempty"`
	BackingType string `json:"backingType,omitempty"`
	RingSize    string `json:"ringSize,omitempty"`
	Adjustable  bool   `json:"adjustable,omitempty"`
	Stones      string `json:"stones,omitempty"`
}

// Product is a single catalog entry. Prices are in INR.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Discount      int             `json:"discount"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory"`
	Material      string          `json:"material"`
	Featured      bool            `json:"featured"`
	New           bool            `json:"new"`
	BestSeller    bool            `json:"bestSeller"`
	Image         string          `json:"image"`
	Images        []string        `json:"images"`
	Description   string          `json:"description"`
	Details       Details         `json:"details"`
	Reviews       int             `json:"reviews"`
	Rating        float64         `json:"rating"`
	Stock         int             `json:"stock"`
	DateAdded     *time.Time      `json:"dateAdded,omitempty"`
	Sales         *int            `json:"sales,omitempty"`
}

// InStock reports whether the product can currently be purchased.
func (p Product) InStock() bool {
	return p.Stock > 0
}
