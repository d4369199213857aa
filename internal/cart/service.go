// Package cart implements the per-user shopping cart on top of the
// shared KV blob store. One JSON blob holds every user's cart, keyed by
// user id; each operation is a read-blob, mutate, write-blob cycle
// serialized per user.
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shilpokotha/shilpokotha-backend/internal/catalog"
	"github.com/shilpokotha/shilpokotha-backend/pkg/errors"
	"github.com/shilpokotha/shilpokotha-backend/pkg/keyedmutex"
	"github.com/shilpokotha/shilpokotha-backend/pkg/kvstore"
)

// CounterHook is invoked after every successful mutation with the new
// cart aggregates. The header badge updates hang off this.
type CounterHook func(ctx context.Context, userID string, totalQuantity, distinctItems int)

// Service exposes cart operations. Every call requires a user id;
// storage failures surface to the caller untouched.
type Service interface {
	Get(ctx context.Context, userID string) (Cart, error)
	Add(ctx context.Context, userID, productID string, quantity int) (Cart, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (Cart, error)
	Remove(ctx context.Context, userID, productID string) (Cart, error)
	Clear(ctx context.Context, userID string) (Cart, error)
}

type service struct {
	kv      kvstore.Store
	catalog catalog.Service
	locks   *keyedmutex.KeyedMutex
	notify  CounterHook
}

// NewService wires the cart service. The hook may be nil.
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
	}, nil
}

// Get returns the user's cart. It never writes, so a missing blob or a
// missing user entry is just an empty cart.
func (s *service) Get(ctx context.Context, userID string) (Cart, error) {
	if userID == "" {
		return Cart{}, errNotLoggedIn()
	}

	carts, err := s.readBlob(ctx)
	if err != nil {
		return Cart{}, err
	}
	return carts[userID], nil
}

// Add puts quantity units of the product into the cart. An existing
// line for the product keeps its original snapshot and gains quantity.
func (s *service) Add(ctx context.Context, userID, productID string, quantity int) (Cart, error) {
	if userID == "" {
		return Cart{}, errNotLoggedIn()
	}
	if quantity < 1 {
		return Cart{}, errors.New(errors.CodeValidation, "quantity must be at least 1")
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return Cart{}, err
	}

	return s.mutate(ctx, userID, func(c *Cart) error {
		if i := c.indexOf(productID); i >= 0 {
			c.Items[i].Quantity += quantity
			return nil
		}
		c.Items = append(c.Items, Item{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		})
		return nil
	})
}

// UpdateQuantity sets the line quantity for the product. Zero or less
// removes the line.
func (s *service) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (Cart, error) {
	if userID == "" {
		return Cart{}, errNotLoggedIn()
	}

	return s.mutate(ctx, userID, func(c *Cart) error {
		i := c.indexOf(productID)
		if i < 0 {
			return errors.New(errors.CodeNotFound, fmt.Sprintf("product %s not in cart", productID))
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
		c.Items[i].Quantity = quantity
		return nil
	})
}

// Remove drops the line for the product.
func (s *service) Remove(ctx context.Context, userID, productID string) (Cart, error) {
	return s.UpdateQuantity(ctx, userID, productID, 0)
}

// Clear resets the cart to empty.
func (s *service) Clear(ctx context.Context, userID string) (Cart, error) {
	if userID == "" {
		return Cart{}, errNotLoggedIn()
	}

	return s.mutate(ctx, userID, func(c *Cart) error {
		c.Items = nil
		return nil
	})
}

// mutate runs the read-modify-write cycle for one user under that
// user's lock and fires the counter hook on success.
func (s *service) mutate(ctx context.Context, userID string, apply func(*Cart) error) (Cart, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	carts, err := s.readBlob(ctx)
	if err != nil {
		return Cart{}, err
	}

	current := carts[userID]
	if err := apply(&current); err != nil {
		return Cart{}, err
	}
	carts[userID] = current

	if err := s.writeBlob(ctx, carts); err != nil {
		return Cart{}, err
	}

	if s.notify != nil {
		s.notify(ctx, userID, current.TotalQuantity(), current.DistinctItems())
	}
	return current, nil
}

func (s *service) readBlob(ctx context.Context) (map[string]Cart, error) {
	raw, err := s.kv.Get(ctx, kvstore.CartsKey())
	if err != nil {
		if err == kvstore.ErrNotFound {
			return map[string]Cart{}, nil
		}
		return nil, errors.Wrap(errors.CodeStorageRead, err, "reading carts blob")
	}

	carts := map[string]Cart{}
	if err := json.Unmarshal([]byte(raw), &carts); err != nil {
		return nil, errors.Wrap(errors.CodeStorageRead, err, "decoding carts blob")
	}
	return carts, nil
}

func (s *service) writeBlob(ctx context.Context, carts map[string]Cart) error {
	raw, err := json.Marshal(carts)
	if err != nil {
		return errors.Wrap(errors.CodeStorageWrite, err, "encoding carts blob")
	}
	if err := s.kv.Set(ctx, kvstore.CartsKey(), string(raw)); err != nil {
		return errors.Wrap(errors.CodeStorageWrite, err, "writing carts blob")
	}
	return nil
}

func errNotLoggedIn() error {
	return errors.New(errors.CodeNotLoggedIn, "login required")
}
