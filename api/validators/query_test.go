package validators

import (
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shilpokotha/shilpokotha-backend/pkg/enums"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
	"github.com/shilpokotha/shilpokotha-backend/pkg/pagination"
)

func decimalFromString(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	val, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", raw, err)
	}
	return val
}

func TestParseQueryIntClampsAndDefaults(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?limit=500", nil)
	if got := ParseQueryInt(r, "limit", 50, 1, 200); got != 200 {
		t.Fatalf("expected clamp to 200 got %d", got)
	}

	r = httptest.NewRequest("GET", "/", nil)
	if got := ParseQueryInt(r, "limit", 50, 1, 200); got != 50 {
		t.Fatalf("expected default 50 got %d", got)
	}

	r = httptest.NewRequest("GET", "/?limit=banana", nil)
	if got := ParseQueryInt(r, "limit", 50, 1, 200); got != 50 {
		t.Fatalf("expected default for junk got %d", got)
	}
}

func TestParsePagination(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?page=3&per_page=24", nil)
	params := ParsePagination(r)
	if params.Page != 3 || params.PerPage != 24 {
		t.Fatalf("unexpected params %+v", params)
	}

	r = httptest.NewRequest("GET", "/", nil)
	params = ParsePagination(r)
	if params.Page != 1 || params.PerPage != pagination.DefaultPerPage {
		t.Fatalf("unexpected defaults %+v", params)
	}
}

func TestParseSortOptionDefaultsToFeatured(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	option, err := ParseSortOption(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if option != enums.SortFeatured {
		t.Fatalf("expected featured default got %s", option)
	}

	r = httptest.NewRequest("GET", "/?sort=price-low-high", nil)
	option, err = ParseSortOption(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if option != enums.SortPriceLowHigh {
		t.Fatalf("expected price-low-high got %s", option)
	}

	r = httptest.NewRequest("GET", "/?sort=bogus", nil)
	if _, err := ParseSortOption(r); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error got %v", err)
	}
}

func TestParseFilterState(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?categories=necklaces,%20rings&materials=gold&gemstones=Sapphire&price_min=15000&price_max=37500&q=pendant", nil)
	state, err := ParseFilterState(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(state.Categories) != 2 || state.Categories[0] != "necklaces" || state.Categories[1] != "rings" {
		t.Fatalf("unexpected categories %v", state.Categories)
	}
	if len(state.Materials) != 1 || state.Materials[0] != "gold" {
		t.Fatalf("unexpected materials %v", state.Materials)
	}
	if state.PriceMin == nil || !state.PriceMin.Equal(decimalFromString(t, "15000")) {
		t.Fatalf("unexpected price min %v", state.PriceMin)
	}
	if state.PriceMax == nil || !state.PriceMax.Equal(decimalFromString(t, "37500")) {
		t.Fatalf("unexpected price max %v", state.PriceMax)
	}
	if state.SearchQuery != "pendant" {
		t.Fatalf("unexpected search %q", state.SearchQuery)
	}
}

func TestParseFilterStateRejectsBadPrice(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?price_min=lots", nil)
	if _, err := ParseFilterState(r); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error got %v", err)
	}
}
