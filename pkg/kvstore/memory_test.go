package kvstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryGetMissingIsNotFound(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	if _, err := store.Get(context.Background(), "absent"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestMemorySetGetDel(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	ctx := context.Background()

	if err := store.Set(ctx, CartsKey(), `{"u1":{}}`); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(ctx, CartsKey())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `{"u1":{}}` {
		t.Fatalf("unexpected value %q", got)
	}

	if err := store.Del(ctx, CartsKey()); err != nil {
		t.Fatalf("del: %v", err)
	}
	if _, err := store.Get(ctx, CartsKey()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete got %v", err)
	}
}

func TestMemoryConcurrentWriters(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%4)
			if err := store.Set(ctx, key, fmt.Sprintf("value-%d", n)); err != nil {
				t.Errorf("set %s: %v", key, err)
			}
			if _, err := store.Get(ctx, key); err != nil {
				t.Errorf("get %s: %v", key, err)
			}
		}(i)
	}
	wg.Wait()
}
