// Package wishlist mirrors the cart blob layout without quantities:
// one JSON blob maps user id to saved products.
package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shilpokotha/shilpokotha-backend/internal/catalog"
	"github.com/shilpokotha/shilpokotha-backend/pkg/errors"
	"github.com/shilpokotha/shilpokotha-backend/pkg/keyedmutex"
	"github.com/shilpokotha/shilpokotha-backend/pkg/kvstore"
)

// CounterHook is invoked after every successful mutation with the new
// wishlist size.
type CounterHook func(ctx context.Context, userID string, count int)

// Service exposes wishlist operations.
type Service interface {
	Get(ctx context.Context, userID string) (Wishlist, error)
	Add(ctx context.Context, userID, productID string) (Wishlist, error)
	Remove(ctx context.Context, userID, productID string) (Wishlist, error)
	Contains(ctx context.Context, userID, productID string) (bool, error)
	// Toggle flips membership and reports whether the product is saved
	// afterwards.
	Toggle(ctx context.Context, userID, productID string) (bool, Wishlist, error)
}

type service struct {
	kv      kvstore.Store
	catalog catalog.Service
	locks   *keyedmutex.KeyedMutex
	notify  CounterHook
	now     func() time.Time
}

// NewService wires the wishlist service. The hook may be nil.
func NewService(kv kvstore.Store, catalogSvc catalog.Service, notify CounterHook) (Service, error) {
	if kv == nil {
		return nil, fmt.Errorf("kv store is required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service is required")
	}
	return &service{
		kv:      kv,
		catalog: catalogSvc,
		locks:   keyedmutex.New(),
		notify:  notify,
		now:     time.Now,
	}, nil
}

// Get returns the user's wishlist without writing.
func (s *service) Get(ctx context.Context, userID string) (Wishlist, error) {
	if userID == "" {
		return Wishlist{}, errNotLoggedIn()
	}

	lists, err := s.readBlob(ctx)
	if err != nil {
		return Wishlist{}, err
	}
	return lists[userID], nil
}

// Add saves the product. Adding a product that is already saved is a
// no-op.
func (s *service) Add(ctx context.Context, userID, productID string) (Wishlist, error) {
	if userID == "" {
		return Wishlist{}, errNotLoggedIn()
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return Wishlist{}, err
	}

	return s.mutate(ctx, userID, func(w *Wishlist) error {
		if w.Contains(productID) {
			return nil
		}
		w.Items = append(w.Items, Item{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			AddedAt:   s.now().UTC(),
		})
		return nil
	})
}

// Remove drops the product from the wishlist.
func (s *service) Remove(ctx context.Context, userID, productID string) (Wishlist, error) {
	if userID == "" {
		return Wishlist{}, errNotLoggedIn()
	}

	return s.mutate(ctx, userID, func(w *Wishlist) error {
		i := w.indexOf(productID)
		if i < 0 {
			return errors.New(errors.CodeNotFound, fmt.Sprintf("product %s not in wishlist", productID))
		}
		w.Items = append(w.Items[:i], w.Items[i+1:]...)
		return nil
	})
}

// Contains reports saved membership without writing.
func (s *service) Contains(ctx context.Context, userID, productID string) (bool, error) {
	list, err := s.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return list.Contains(productID), nil
}

// Toggle adds the product when absent and removes it when present. The
// whole flip runs under the user's lock so concurrent toggles cannot
// double-add.
func (s *service) Toggle(ctx context.Context, userID, productID string) (bool, Wishlist, error) {
	if userID == "" {
		return false, Wishlist{}, errNotLoggedIn()
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return false, Wishlist{}, err
	}

	var saved bool
	list, err := s.mutate(ctx, userID, func(w *Wishlist) error {
		if i := w.indexOf(productID); i >= 0 {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			saved = false
			return nil
		}
		w.Items = append(w.Items, Item{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			AddedAt:   s.now().UTC(),
		})
		saved = true
		return nil
	})
	if err != nil {
		return false, Wishlist{}, err
	}
	return saved, list, nil
}

func (s *service) mutate(ctx context.Context, userID string, apply func(*Wishlist) error) (Wishlist, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	lists, err := s.readBlob(ctx)
	if err != nil {
		return Wishlist{}, err
	}

	current := lists[userID]
	if err := apply(&current); err != nil {
		return Wishlist{}, err
	}
	lists[userID] = current

	if err := s.writeBlob(ctx, lists); err != nil {
		return Wishlist{}, err
	}

	if s.notify != nil {
		s.notify(ctx, userID, current.Count())
	}
	return current, nil
}

func (s *service) readBlob(ctx context.Context) (map[string]Wishlist, error) {
	raw, err := s.kv.Get(ctx, kvstore.WishlistsKey())
	if err != nil {
		if err == kvstore.ErrNotFound {
			return map[string]Wishlist{}, nil
		}
		return nil, errors.Wrap(errors.CodeStorageRead, err, "reading wishlists blob")
	}

	lists := map[string]Wishlist{}
	if err := json.Unmarshal([]byte(raw), &lists); err != nil {
		return nil, errors.Wrap(errors.CodeStorageRead, err, "decoding wishlists blob")
	}
	return lists, nil
}

func (s *service) writeBlob(ctx context.Context, lists map[string]Wishlist) error {
	raw, err := json.Marshal(lists)
	if err != nil {
		return errors.Wrap(errors.CodeStorageWrite, err, "encoding wishlists blob")
	}
	if err := s.kv.Set(ctx, kvstore.WishlistsKey(), string(raw)); err != nil {
		return errors.Wrap(errors.CodeStorageWrite, err, "writing wishlists blob")
	}
	return nil
}

func errNotLoggedIn() error {
	return errors.New(errors.CodeNotLoggedIn, "login required")
}
