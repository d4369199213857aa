package newsletter

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	dsn := fmt.Sprintf("file:newsletter_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS subscribers (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)

	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	return svc
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	svc := newTestService(t)

	sub, err := svc.Subscribe(context.Background(), "  Ayesha@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "ayesha@example.com", sub.Email)
}

func TestSubscribeTwiceConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "ayesha@example.com")
	require.NoError(t, err)

	_, err = svc.Subscribe(ctx, "AYESHA@example.com")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))

	var typed *pkgerrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, "already subscribed", typed.Message())
}

func TestSubscribeRejectsEmptyEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Subscribe(context.Background(), "   ")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}
