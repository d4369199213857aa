package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shilpokotha/shilpokotha-backend/internal/catalog"
	"github.com/shilpokotha/shilpokotha-backend/pkg/enums"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
	"github.com/shilpokotha/shilpokotha-backend/pkg/pagination"
)

// ParseQueryInt reads an integer query parameter, falling back to
// defaultVal when absent and clamping into [min, max].
func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ParsePagination reads page and per_page from the query string.
func ParsePagination(r *http.Request) pagination.Params {
	return pagination.Params{
		Page:    ParseQueryInt(r, "page", 1, 1, 1<<30),
		PerPage: ParseQueryInt(r, "per_page", pagination.DefaultPerPage, 1, pagination.MaxPerPage),
	}
}

// ParseSortOption reads the sort query parameter. An absent parameter
// falls back to the featured ordering; an unknown value is an error.
func ParseSortOption(r *http.Request) (enums.SortOption, error) {
	raw := r.URL.Query().Get("sort")
	if raw == "" {
		return enums.SortFeatured, nil
	}
	option, err := enums.ParseSortOption(raw)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown sort option")
	}
	return option, nil
}

// ParseFilterState reads the catalog filter facets from the query
// string. List-valued facets are comma separated.
func ParseFilterState(r *http.Request) (catalog.FilterState, error) {
	q := r.URL.Query()

	state := catalog.FilterState{
		Categories:  splitList(q.Get("categories")),
		Materials:   splitList(q.Get("materials")),
		Gemstones:   splitList(q.Get("gemstones")),
		SearchQuery: strings.TrimSpace(q.Get("q")),
	}

	min, err := parseDecimalParam(q.Get("price_min"), "price_min")
	if err != nil {
		return catalog.FilterState{}, err
	}
	state.PriceMin = min

	max, err := parseDecimalParam(q.Get("price_max"), "price_max")
	if err != nil {
		return catalog.FilterState{}, err
	}
	state.PriceMax = max

	return state, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDecimalParam(raw, key string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	val, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid price bound").WithDetails(map[string]string{key: raw})
	}
	return &val, nil
}
