package pagination

const (
	// DefaultPerPage is the standard page size when one is not provided.
	DefaultPerPage = 12
	// MaxPerPage caps how many items any page can request.
	MaxPerPage = 60
)

// Params holds page-number pagination inputs from controllers.
type Params struct {
	Page    int
	PerPage int
}

// Meta describes the paginated view handed back to the renderer.
type Meta struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	PerPage     int  `json:"per_page"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

// NormalizePerPage enforces the configured default and maximum page sizes.
func NormalizePerPage(perPage int) int {
	if perPage <= 0 {
		return DefaultPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// TotalPages returns the page count for total items at perPage each. An empty
// collection still has one (empty) page so the UI never divides by zero.
func TotalPages(total, perPage int) int {
	if total <= 0 {
		return 1
	}
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	return pages
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// MetaFor builds the full metadata for a clamped page over total items.
func MetaFor(page, perPage, total int) Meta {
	perPage = NormalizePerPage(perPage)
	totalPages := TotalPages(total, perPage)
	current := ClampPage(page, totalPages)
	return Meta{
		CurrentPage: current,
		TotalPages:  totalPages,
		TotalItems:  total,
		PerPage:     perPage,
		HasNextPage: current < totalPages,
		HasPrevPage: current > 1,
	}
}
