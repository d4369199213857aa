package reviews

import (
	"context"

	"gorm.io/gorm"

	"github.com/shilpokotha/shilpokotha-backend/pkg/db/models"
)

// Repository exposes review persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reviews repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a review. The unique index on (product_id, user_id)
// rejects a second review from the same user.
func (r *Repository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// ListByProduct returns the newest reviews for a product, capped at limit.
func (r *Repository) ListByProduct(ctx context.Context, productID string, limit int) ([]models.Review, error) {
	var reviews []models.Review
	query := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Summarize computes the average rating and review count for a product.
func (r *Repository) Summarize(ctx context.Context, productID string) (avg float64, count int64, err error) {
	row := struct {
		Avg   float64
		Count int64
	}{}
	err = r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Avg, row.Count, nil
}
