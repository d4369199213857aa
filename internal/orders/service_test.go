package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shilpokotha/shilpokotha-backend/pkg/enums"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(setupOrdersTestDB(t)))
	require.NoError(t, err)
	return svc
}

func TestServiceCreateDefaultsStatus(t *testing.T) {
	svc := newTestService(t)

	order := sampleOrder(uuid.New(), time.Now().UTC())
	order.Status = ""
	created, err := svc.Create(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPending, created.Status)
}

func TestServiceCreateRejectsEmptyOrder(t *testing.T) {
	svc := newTestService(t)

	order := sampleOrder(uuid.New(), time.Now().UTC())
	order.Items = nil
	_, err := svc.Create(context.Background(), order)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestServiceGetForUserScopesOwnership(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	userID := uuid.New()
	created, err := svc.Create(ctx, sampleOrder(userID, time.Now().UTC()))
	require.NoError(t, err)

	got, err := svc.GetForUser(ctx, created.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// A different user sees not found, not forbidden.
	_, err = svc.GetForUser(ctx, created.ID, uuid.New())
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestServiceCancelPendingOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	userID := uuid.New()
	created, err := svc.Create(ctx, sampleOrder(userID, time.Now().UTC()))
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, created.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusCancelled, cancelled.Status)
}

func TestServiceCancelShippedOrderConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	userID := uuid.New()
	order := sampleOrder(userID, time.Now().UTC())
	order.Status = enums.OrderStatusShipped
	created, err := svc.Create(ctx, order)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, created.ID, userID)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))
}

func TestServiceUpdateStatusFollowsTransitions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleOrder(uuid.New(), time.Now().UTC()))
	require.NoError(t, err)

	for _, next := range []enums.OrderStatus{
		enums.OrderStatusProcessing,
		enums.OrderStatusShipped,
		enums.OrderStatusDelivered,
	} {
		updated, err := svc.UpdateStatus(ctx, created.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	// Delivered is terminal.
	_, err = svc.UpdateStatus(ctx, created.ID, enums.OrderStatusPending)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))
}

func TestServiceUpdateStatusSkippingStepConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleOrder(uuid.New(), time.Now().UTC()))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, enums.OrderStatusDelivered)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))
}

func TestServiceUpdateStatusMissingOrder(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), enums.OrderStatusProcessing)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestServiceListByUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	userID := uuid.New()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	_, err := svc.Create(ctx, sampleOrder(userID, base))
	require.NoError(t, err)
	_, err = svc.Create(ctx, sampleOrder(userID, base.Add(time.Minute)))
	require.NoError(t, err)

	listed, err := svc.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.True(t, listed[0].CreatedAt.After(listed[1].CreatedAt))
}
