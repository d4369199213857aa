package catalog

import (
	"github.com/shilpokotha/shilpokotha-backend/pkg/pagination"
)

// Page is one paginated slice of a product listing.
type Page struct {
	Items []Product       `json:"items"`
	Meta  pagination.Meta `json:"pagination"`
}

// Paginate slices products into the requested page. Out-of-range page
// numbers clamp to the nearest valid page, and an empty listing yields a
// single empty page.
func Paginate(products []Product, params pagination.Params) Page {
	meta := pagination.MetaFor(params.Page, params.PerPage, len(products))

	start := (meta.CurrentPage - 1) * meta.PerPage
	if start > len(products) {
		start = len(products)
	}
	end := start + meta.PerPage
	if end > len(products) {
		end = len(products)
	}

	items := make([]Product, end-start)
	copy(items, products[start:end])

	return Page{Items: items, Meta: meta}
}
