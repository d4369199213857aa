package orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shilpokotha/shilpokotha-backend/pkg/db/models"
	"github.com/shilpokotha/shilpokotha-backend/pkg/enums"
	"github.com/shilpokotha/shilpokotha-backend/pkg/types"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  items TEXT,
  subtotal TEXT NOT NULL,
  shipping_cost TEXT NOT NULL,
  tax TEXT NOT NULL,
  total TEXT NOT NULL,
  shipping_method TEXT NOT NULL,
  shipping_address TEXT,
  payment_method TEXT,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func sampleOrder(userID uuid.UUID, createdAt time.Time) *models.Order {
	return &models.Order{
		ID:     uuid.New(),
		UserID: userID,
		Items: models.OrderLineItems{
			{
				ProductID: "necklace-001",
				Name:      "Gold Pendant Necklace",
				Price:     decimal.RequireFromString("18749.25"),
				Image:     "https://example.com/necklace.jpg",
				Quantity:  2,
			},
		},
		Subtotal:       decimal.RequireFromString("37498.50"),
		ShippingCost:   decimal.RequireFromString("375.00"),
		Tax:            decimal.RequireFromString("3749.85"),
		Total:          decimal.RequireFromString("41623.35"),
		ShippingMethod: enums.ShippingStandard,
		ShippingAddress: &types.Address{
			FirstName:  "Ayesha",
			Line1:      "12 Gulshan Avenue",
			City:       "Dhaka",
			State:      "Dhaka",
			PostalCode: "1212",
			Country:    "Bangladesh",
		},
		PaymentMethod: "card",
		Status:        enums.OrderStatusPending,
		CreatedAt:     createdAt,
	}
}

func TestRepoCreateAndFind(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	created, err := repo.Create(ctx, sampleOrder(userID, time.Now().UTC()))
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, userID, found.UserID)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "necklace-001", found.Items[0].ProductID)
	assert.True(t, found.Total.Equal(decimal.RequireFromString("41623.35")))
	require.NotNil(t, found.ShippingAddress)
	assert.Equal(t, "Dhaka", found.ShippingAddress.City)
}

func TestRepoFindMissing(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepoListByUserNewestFirst(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	older, err := repo.Create(ctx, sampleOrder(userID, base))
	require.NoError(t, err)
	newer, err := repo.Create(ctx, sampleOrder(userID, base.Add(time.Hour)))
	require.NoError(t, err)

	// Another user's order must not leak into the listing.
	_, err = repo.Create(ctx, sampleOrder(uuid.New(), base.Add(2*time.Hour)))
	require.NoError(t, err)

	listed, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, newer.ID, listed[0].ID)
	assert.Equal(t, older.ID, listed[1].ID)
}

func TestRepoUpdateStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleOrder(uuid.New(), time.Now().UTC()))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, created.ID, enums.OrderStatusProcessing.String()))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusProcessing, found.Status)
}
