package catalog

import (
	"sort"
	"strings"

	"github.com/shilpokotha/shilpokotha-backend/pkg/enums"
)

// Sort orders products by the given option and returns a new slice.
// Sorting is stable, so ties keep their relative input order.
func Sort(products []Product, option enums.SortOption) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	switch option {
	case enums.SortPriceLowHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case enums.SortPriceHighLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.GreaterThan(out[j].Price)
		})
	case enums.SortNewest:
		// Products without a date keep seed order, which already
		// trends oldest to newest.
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].DateAdded, out[j].DateAdded
			if a == nil || b == nil {
				return false
			}
			return a.After(*b)
		})
	case enums.SortBestSelling:
		sort.SliceStable(out, func(i, j int) bool {
			return salesOf(out[i]) > salesOf(out[j])
		})
	case enums.SortRatingHighLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case enums.SortNameAZ:
		sort.SliceStable(out, func(i, j int) bool {
			return lessName(out[i], out[j])
		})
	case enums.SortNameZA:
		sort.SliceStable(out, func(i, j int) bool {
			return lessName(out[j], out[i])
		})
	default:
		// Featured and anything unrecognized float featured items first.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Featured && !out[j].Featured
		})
	}

	return out
}

func salesOf(p Product) int {
	if p.Sales == nil {
		return 0
	}
	return *p.Sales
}

func lessName(a, b Product) bool {
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}
