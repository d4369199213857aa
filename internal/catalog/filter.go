package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FilterState carries every active listing facet. Zero values mean the
// facet is inactive. Facets combine with AND; values inside a facet
// combine with OR.
type FilterState struct {
	Categories  []string
	Materials   []string
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
	Gemstones   []string
	SearchQuery string
}

// IsZero reports whether no facet is active.
func (s FilterState) IsZero() bool {
	return len(s.Categories) == 0 &&
		len(s.Materials) == 0 &&
		s.PriceMin == nil &&
		s.PriceMax == nil &&
		len(s.Gemstones) == 0 &&
		strings.TrimSpace(s.SearchQuery) == ""
}

// Filter returns the products matching every active facet, preserving
// input order. The input slice is never mutated.
func Filter(products []Product, state FilterState) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, state) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Product, state FilterState) bool {
	if len(state.Categories) > 0 && !containsFold(state.Categories, p.Category) {
		return false
	}
	if len(state.Materials) > 0 && !containsFold(state.Materials, p.Material) {
		return false
	}
	if state.PriceMin != nil && p.Price.LessThan(*state.PriceMin) {
		return false
	}
	if state.PriceMax != nil && p.Price.GreaterThan(*state.PriceMax) {
		return false
	}
	if len(state.Gemstones) > 0 && !matchesGemstones(p, state.Gemstones) {
		return false
	}
	if query := strings.TrimSpace(state.SearchQuery); query != "" && !matchesSearch(p, query) {
		return false
	}
	return true
}

func matchesGemstones(p Product, gemstones []string) bool {
	stones := strings.ToLower(p.Details.Stones)
	if stones == "" {
		return false
	}
	for _, g := range gemstones {
		if g == "" {
			continue
		}
		if strings.Contains(stones, strings.ToLower(g)) {
			return true
		}
	}
	return false
}

// matchesSearch checks the query against the searchable text fields of
// the product, case-insensitively.
func matchesSearch(p Product, query string) bool {
	needle := strings.ToLower(query)
	for _, field := range []string{p.Name, p.Category, p.Material, p.Description, p.Details.Stones} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
