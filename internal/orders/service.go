// Package orders persists placed checkouts and tracks them through
// fulfillment.
package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shilpokotha/shilpokotha-backend/pkg/db/models"
	"github.com/shilpokotha/shilpokotha-backend/pkg/enums"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
)

// Service exposes order history and status operations. Every read is
// scoped to the owning user.
type Service interface {
	Create(ctx context.Context, order *models.Order) (*OrderDTO, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
	GetForUser(ctx context.Context, orderID, userID uuid.UUID) (*OrderDTO, error)
	// Cancel moves the order to cancelled. Only pending orders may be
	// cancelled by their owner.
	Cancel(ctx context.Context, orderID, userID uuid.UUID) (*OrderDTO, error)
	// UpdateStatus advances fulfillment along the allowed transitions.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, next enums.OrderStatus) (*OrderDTO, error)
}

type service struct {
	repo Repository
}

// NewService constructs the orders service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, order *models.Order) (*OrderDTO, error) {
	if order.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order user is required")
	}
	if len(order.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order has no items")
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = enums.OrderStatusPending
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating order")
	}
	return FromModel(created), nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}

	out := make([]OrderDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out, nil
}

func (s *service) GetForUser(ctx context.Context, orderID, userID uuid.UUID) (*OrderDTO, error) {
	order, err := s.findOwned(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	return FromModel(order), nil
}

func (s *service) Cancel(ctx context.Context, orderID, userID uuid.UUID) (*OrderDTO, error) {
	order, err := s.findOwned(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(enums.OrderStatusCancelled) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict,
			fmt.Sprintf("order in status %s cannot be cancelled", order.Status))
	}

	if err := s.repo.UpdateStatus(ctx, order.ID, enums.OrderStatusCancelled.String()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cancelling order")
	}
	order.Status = enums.OrderStatusCancelled
	return FromModel(order), nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID uuid.UUID, next enums.OrderStatus) (*OrderDTO, error) {
	if !next.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status %q", next))
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict,
			fmt.Sprintf("cannot move order from %s to %s", order.Status, next))
	}

	if err := s.repo.UpdateStatus(ctx, order.ID, next.String()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating order status")
	}
	order.Status = next
	return FromModel(order), nil
}

// findOwned loads the order and hides its existence from other users.
func (s *service) findOwned(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}
	if order.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}
