package pagination

import "testing"

func TestMetaForComputesPages(t *testing.T) {
	t.Parallel()

	meta := MetaFor(1, 12, 20)
	if meta.TotalPages != 2 {
		t.Fatalf("expected 2 pages for 20 items got %d", meta.TotalPages)
	}
	if !meta.HasNextPage || meta.HasPrevPage {
		t.Fatalf("expected next only on first page, got next=%v prev=%v", meta.HasNextPage, meta.HasPrevPage)
	}
}

func TestMetaForClampsOutOfRangePage(t *testing.T) {
	t.Parallel()

	meta := MetaFor(99, 12, 20)
	if meta.CurrentPage != 2 {
		t.Fatalf("expected clamp to last page got %d", meta.CurrentPage)
	}
	if meta.HasNextPage {
		t.Fatal("last page must not report a next page")
	}
}

func TestMetaForEmptyCollectionIsOnePage(t *testing.T) {
	t.Parallel()

	meta := MetaFor(1, 12, 0)
	if meta.TotalPages != 1 {
		t.Fatalf("expected 1 page for empty collection got %d", meta.TotalPages)
	}
	if meta.TotalItems != 0 {
		t.Fatalf("expected 0 items got %d", meta.TotalItems)
	}
}

func TestMetaForDefaultsBadPerPage(t *testing.T) {
	t.Parallel()

	meta := MetaFor(1, 0, 20)
	if meta.PerPage != DefaultPerPage {
		t.Fatalf("expected default per page got %d", meta.PerPage)
	}

	meta = MetaFor(1, MaxPerPage+1, 20)
	if meta.PerPage != MaxPerPage {
		t.Fatalf("expected max per page cap got %d", meta.PerPage)
	}
}
