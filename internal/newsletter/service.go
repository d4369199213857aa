// Package newsletter manages email signups.
package newsletter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shilpokotha/shilpokotha-backend/pkg/db"
	"github.com/shilpokotha/shilpokotha-backend/pkg/db/models"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
)

// SubscriberDTO is the transport shape of a signup.
type SubscriberDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Service exposes newsletter operations.
type Service interface {
	Subscribe(ctx context.Context, email string) (*SubscriberDTO, error)
}

// Repository persists subscribers.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a newsletter repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a subscriber row.
func (r *Repository) Create(ctx context.Context, subscriber *models.Subscriber) (*models.Subscriber, error) {
	if err := r.db.WithContext(ctx).Create(subscriber).Error; err != nil {
		return nil, err
	}
	return subscriber, nil
}

type service struct {
	repo *Repository
}

// NewService constructs the newsletter service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("newsletter repository is required")
	}
	return &service{repo: repo}, nil
}

// Subscribe records the email. Subscribing twice is a conflict the
// storefront shows as "already subscribed".
func (s *service) Subscribe(ctx context.Context, email string) (*SubscriberDTO, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	subscriber, err := s.repo.Create(ctx, &models.Subscriber{
		ID:    uuid.New(),
		Email: email,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "subscribers_email_key") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "already subscribed")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating subscriber")
	}

	return &SubscriberDTO{
		ID:        subscriber.ID,
		Email:     subscriber.Email,
		CreatedAt: subscriber.CreatedAt,
	}, nil
}
