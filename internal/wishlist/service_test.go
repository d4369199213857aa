package wishlist

import (
	"context"
	"testing"

	"github.com/shilpokotha/shilpokotha-backend/internal/catalog"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
	"github.com/shilpokotha/shilpokotha-backend/pkg/kvstore"
)

const testUser = "user-1"

func newTestService(t *testing.T, notify CounterHook) Service {
	t.Helper()

	c, err := catalog.Load("")
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	catalogSvc, err := catalog.NewService(c)
	if err != nil {
		t.Fatalf("wiring catalog service: %v", err)
	}

	svc, err := NewService(kvstore.NewMemory(), catalogSvc, notify)
	if err != nil {
		t.Fatalf("wiring wishlist service: %v", err)
	}
	return svc
}

func TestGetRequiresUser(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	_, err := svc.Get(context.Background(), "")
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotLoggedIn) {
		t.Fatalf("expected not logged in, got %v", err)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.Add(ctx, testUser, "ring-001"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	list, err := svc.Add(ctx, testUser, "ring-001")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if list.Count() != 1 {
		t.Fatalf("expected 1 item, got %d", list.Count())
	}
}

func TestAddCapturesSnapshot(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	list, err := svc.Add(context.Background(), testUser, "necklace-003")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	item := list.Items[0]
	if item.Name != "Diamond Solitaire Pendant" {
		t.Fatalf("unexpected name %q", item.Name)
	}
	if item.Price.String() != "44999.25" {
		t.Fatalf("unexpected price %s", item.Price)
	}
	if item.AddedAt.IsZero() {
		t.Fatal("expected added timestamp")
	}
}

func TestRemoveMissingItem(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	_, err := svc.Remove(context.Background(), testUser, "ring-001")
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	ctx := context.Background()

	saved, err := svc.Contains(ctx, testUser, "ring-001")
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if saved {
		t.Fatal("expected not saved")
	}

	if _, err := svc.Add(ctx, testUser, "ring-001"); err != nil {
		t.Fatalf("add: %v", err)
	}
	saved, err = svc.Contains(ctx, testUser, "ring-001")
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if !saved {
		t.Fatal("expected saved")
	}
}

func TestToggleFlipsMembership(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	ctx := context.Background()

	saved, list, err := svc.Toggle(ctx, testUser, "earring-002")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !saved || !list.Contains("earring-002") {
		t.Fatal("expected product saved after first toggle")
	}

	saved, list, err = svc.Toggle(ctx, testUser, "earring-002")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if saved || list.Contains("earring-002") {
		t.Fatal("expected product removed after second toggle")
	}
}

func TestToggleUnknownProduct(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	_, _, err := svc.Toggle(context.Background(), testUser, "ghost-001")
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCounterHookFires(t *testing.T) {
	t.Parallel()

	var got []int
	hook := func(_ context.Context, userID string, count int) {
		if userID == testUser {
			got = append(got, count)
		}
	}

	svc := newTestService(t, hook)
	ctx := context.Background()

	if _, err := svc.Add(ctx, testUser, "ring-001"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, testUser, "ring-002"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Remove(ctx, testUser, "ring-001"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	want := []int{1, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("expected %d hook calls, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("hook call %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}
