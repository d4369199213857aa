// Package reviews lets customers rate catalog products.
package reviews

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shilpokotha/shilpokotha-backend/internal/catalog"
	"github.com/shilpokotha/shilpokotha-backend/pkg/db"
	"github.com/shilpokotha/shilpokotha-backend/pkg/db/models"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
)

// DefaultListLimit caps how many reviews one product page loads.
const DefaultListLimit = 50

// ReviewDTO is the transport shape of a review.
type ReviewDTO struct {
	ID         uuid.UUID `json:"id"`
	ProductID  string    `json:"product_id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Title      string    `json:"title,omitempty"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// Summary aggregates a product's ratings.
type Summary struct {
	ProductID     string  `json:"product_id"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// CreateInput is the validated review submission.
type CreateInput struct {
	ProductID  string
	AuthorName string
	Rating     int
	Title      string
	Comment    string
}

// Service exposes review operations.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*ReviewDTO, error)
	ListByProduct(ctx context.Context, productID string, limit int) ([]ReviewDTO, error)
	Summarize(ctx context.Context, productID string) (*Summary, error)
}

type service struct {
	repo    *Repository
	catalog catalog.Service
}

// NewService constructs the reviews service.
func NewService(repo *Repository, catalogSvc catalog.Service) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reviews repository is required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service is required")
	}
	return &service{repo: repo, catalog: catalogSvc}, nil
}

// Create stores one review per user per product.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*ReviewDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotLoggedIn, "login required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	if input.Comment == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "comment is required")
	}

	if _, err := s.catalog.GetProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	review, err := s.repo.Create(ctx, &models.Review{
		ID:         uuid.New(),
		ProductID:  input.ProductID,
		UserID:     userID,
		AuthorName: input.AuthorName,
		Rating:     input.Rating,
		Title:      input.Title,
		Comment:    input.Comment,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "reviews_product_user_key") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "you have already reviewed this product")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating review")
	}

	return fromModel(review), nil
}

// ListByProduct returns the newest reviews first.
func (s *service) ListByProduct(ctx context.Context, productID string, limit int) ([]ReviewDTO, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	records, err := s.repo.ListByProduct(ctx, productID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing reviews")
	}

	out := make([]ReviewDTO, 0, len(records))
	for i := range records {
		out = append(out, *fromModel(&records[i]))
	}
	return out, nil
}

// Summarize returns the average rating and count for a product.
func (s *service) Summarize(ctx context.Context, productID string) (*Summary, error) {
	avg, count, err := s.repo.Summarize(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "summarizing reviews")
	}
	return &Summary{
		ProductID:     productID,
		AverageRating: avg,
		ReviewCount:   count,
	}, nil
}

func fromModel(r *models.Review) *ReviewDTO {
	return &ReviewDTO{
		ID:         r.ID,
		ProductID:  r.ProductID,
		AuthorName: r.AuthorName,
		Rating:     r.Rating,
		Title:      r.Title,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
