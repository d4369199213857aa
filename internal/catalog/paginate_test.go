package catalog

import (
	"testing"

	"github.com/shilpokotha/shilpokotha-backend/pkg/pagination"
)

func TestPaginateFirstPage(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	page := Paginate(c.All(), pagination.Params{Page: 1, PerPage: 12})

	if len(page.Items) != 12 {
		t.Fatalf("expected 12 items, got %d", len(page.Items))
	}
	if page.Meta.TotalItems != 20 || page.Meta.TotalPages != 2 {
		t.Fatalf("unexpected meta: %+v", page.Meta)
	}
	if !page.Meta.HasNextPage || page.Meta.HasPrevPage {
		t.Fatalf("unexpected nav flags: %+v", page.Meta)
	}
}

func TestPaginateLastPageIsPartial(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	page := Paginate(c.All(), pagination.Params{Page: 2, PerPage: 12})

	if len(page.Items) != 8 {
		t.Fatalf("expected 8 items, got %d", len(page.Items))
	}
	if page.Meta.HasNextPage || !page.Meta.HasPrevPage {
		t.Fatalf("unexpected nav flags: %+v", page.Meta)
	}
}

func TestPaginateOutOfRangePageClamps(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)

	high := Paginate(c.All(), pagination.Params{Page: 99, PerPage: 12})
	if high.Meta.CurrentPage != 2 {
		t.Fatalf("expected clamp to page 2, got %d", high.Meta.CurrentPage)
	}

	low := Paginate(c.All(), pagination.Params{Page: -3, PerPage: 12})
	if low.Meta.CurrentPage != 1 {
		t.Fatalf("expected clamp to page 1, got %d", low.Meta.CurrentPage)
	}
}

func TestPaginateEmptyListingHasOnePage(t *testing.T) {
	t.Parallel()

	page := Paginate(nil, pagination.Params{Page: 1, PerPage: 12})

	if len(page.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(page.Items))
	}
	if page.Meta.TotalPages != 1 || page.Meta.CurrentPage != 1 {
		t.Fatalf("unexpected meta: %+v", page.Meta)
	}
	if page.Meta.HasNextPage || page.Meta.HasPrevPage {
		t.Fatalf("unexpected nav flags: %+v", page.Meta)
	}
}

func TestPaginateDefaultsPerPage(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	page := Paginate(c.All(), pagination.Params{Page: 1})

	if page.Meta.PerPage != pagination.DefaultPerPage {
		t.Fatalf("expected default per page, got %d", page.Meta.PerPage)
	}
}
