// Package catalog holds the product inventory and the pure
// filter/sort/paginate pipeline the storefront listing endpoints run.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed products.json
var seedData []byte

// Catalog is an immutable, in-memory product inventory.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// New builds a catalog from the given products. Duplicate ids are rejected.
func New(products []Product) (*Catalog, error) {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product with empty id")
		}
		if _, ok := byID[p.ID]; ok {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}, nil
}

// Load returns the catalog built from the embedded seed, or from the
// JSON file at seedPath when one is configured.
func Load(seedPath string) (*Catalog, error) {
	data := seedData
	if seedPath != "" {
		fileData, err := os.ReadFile(seedPath)
		if err != nil {
			return nil, fmt.Errorf("reading catalog seed %s: %w", seedPath, err)
		}
		data = fileData
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parsing catalog seed: %w", err)
	}
	return New(products)
}

// All returns every product in seed order. The returned slice is a copy.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks a product up by its id.
func (c *Catalog) ByID(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
