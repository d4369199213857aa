package reviews

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shilpokotha/shilpokotha-backend/internal/catalog"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	c, err := catalog.Load("")
	require.NoError(t, err)
	catalogSvc, err := catalog.NewService(c)
	require.NoError(t, err)

	svc, err := NewService(NewRepository(setupReviewsTestDB(t)), catalogSvc)
	require.NoError(t, err)
	return svc
}

func validInput() CreateInput {
	return CreateInput{
		ProductID:  "necklace-001",
		AuthorName: "Ayesha",
		Rating:     5,
		Title:      "Stunning",
		Comment:    "Even better in person.",
	}
}

func TestServiceCreateAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, uuid.New(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 5, created.Rating)

	listed, err := svc.ListByProduct(ctx, "necklace-001", 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestServiceCreateDuplicateConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	userID := uuid.New()
	_, err := svc.Create(ctx, userID, validInput())
	require.NoError(t, err)

	_, err = svc.Create(ctx, userID, validInput())
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict), "got %v", err)
}

func TestServiceCreateRequiresLogin(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), uuid.Nil, validInput())
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotLoggedIn))
}

func TestServiceCreateValidatesRating(t *testing.T) {
	svc := newTestService(t)

	for _, rating := range []int{0, 6, -1} {
		input := validInput()
		input.Rating = rating
		_, err := svc.Create(context.Background(), uuid.New(), input)
		assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation), "rating %d: %v", rating, err)
	}
}

func TestServiceCreateUnknownProduct(t *testing.T) {
	svc := newTestService(t)

	input := validInput()
	input.ProductID = "ghost-001"
	_, err := svc.Create(context.Background(), uuid.New(), input)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestServiceSummarize(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first := validInput()
	_, err := svc.Create(ctx, uuid.New(), first)
	require.NoError(t, err)

	second := validInput()
	second.Rating = 3
	_, err = svc.Create(ctx, uuid.New(), second)
	require.NoError(t, err)

	summary, err := svc.Summarize(ctx, "necklace-001")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, summary.AverageRating, 0.001)
	assert.Equal(t, int64(2), summary.ReviewCount)
}
