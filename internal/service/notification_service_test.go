package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/events"
	"github.com/more-experts/support-portal/internal/repository"
	apperrors "github.com/more-experts/support-portal/pkg/util"
)

type memNotificationRepo struct {
	mu    sync.Mutex
	items map[string]*domain.Notification
	clock time.Time
}

func newMemNotificationRepo() *memNotificationRepo {
	return &memNotificationRepo{
		items: map[string]*domain.Notification{},
		clock: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (r *memNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = uuid.NewString()
	r.clock = r.clock.Add(time.Second)
	n.CreatedAt = r.clock
	stored := *n
	r.items[n.ID] = &stored
	return nil
}

func (r *memNotificationRepo) List(_ context.Context) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Notification, 0, len(r.items))
	for _, n := range r.items {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memNotificationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memNotificationRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = map[string]*domain.Notification{}
	return nil
}

func TestNotificationCreateDefaults(t *testing.T) {
	svc := NewNotificationService(newMemNotificationRepo(), events.NewInMemoryDispatcher(zap.NewNop()), zap.NewNop())

	n, err := svc.Create(context.Background(), "Maintenance window", "Saturday 02:00 UTC", "")
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, domain.NotificationTypeUpdate, n.Type)
	assert.False(t, n.IsRead)
	assert.Equal(t, "Just now", n.Time)
}

func TestNotificationCreateValidation(t *testing.T) {
	svc := NewNotificationService(newMemNotificationRepo(), events.NewInMemoryDispatcher(zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "desc", "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.Create(ctx, "title", "desc", "urgent")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestNotificationCreatePublishesEvent(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())
	svc := NewNotificationService(newMemNotificationRepo(), dispatcher, zap.NewNop())

	var got *domain.Notification
	dispatcher.Subscribe(events.EventNotificationCreated, func(_ context.Context, event events.Event) error {
		payload := event.Payload.(events.NotificationCreatedPayload)
		got = &payload.Notification
		return nil
	})

	n, err := svc.Create(context.Background(), "New offer", "20% off Golden", domain.NotificationTypeOffer)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, n.ID, got.ID)
	assert.Equal(t, domain.NotificationTypeOffer, got.Type)
}

func TestNotificationListNewestFirst(t *testing.T) {
	svc := NewNotificationService(newMemNotificationRepo(), events.NewInMemoryDispatcher(zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, "first", "a", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "second", "b", "")
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Title)
	assert.Equal(t, "first", items[1].Title)
}

func TestNotificationDelete(t *testing.T) {
	svc := NewNotificationService(newMemNotificationRepo(), events.NewInMemoryDispatcher(zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	n, err := svc.Create(ctx, "gone soon", "x", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, n.ID))

	err = svc.Delete(ctx, n.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestNotificationDeleteAll(t *testing.T) {
	svc := NewNotificationService(newMemNotificationRepo(), events.NewInMemoryDispatcher(zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, title, "x", "")
		require.NoError(t, err)
	}
	require.NoError(t, svc.DeleteAll(ctx))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
