package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/events"
	"github.com/more-experts/support-portal/internal/repository"
	apperrors "github.com/more-experts/support-portal/pkg/util"
)

// NotificationService manages dashboard broadcast notifications.
type NotificationService struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// NewNotificationService constructs the service.
func NewNotificationService(notifications repository.NotificationRepository, dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, dispatcher: dispatcher, logger: logger}
}

// Create stores a broadcast notification. Type defaults to "update", the read
// flag starts false.
func (s *NotificationService) Create(ctx context.Context, title, description string, ntype domain.NotificationType) (*domain.Notification, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, apperrors.NewValidationError("title and description required", nil)
	}
	if ntype == "" {
		ntype = domain.NotificationTypeUpdate
	}
	if !domain.ValidNotificationType(ntype) {
		return nil, apperrors.NewValidationError("unknown notification type", map[string]any{"type": ntype})
	}

	n := &domain.Notification{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Type:        ntype,
		IsRead:      false,
		Time:        "Just now",
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		event := events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventNotificationCreated,
			Timestamp: time.Now().UTC(),
			Payload:   events.NotificationCreatedPayload{Notification: *n},
		}
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("publish notification event", zap.Error(err))
		}
	}
	return n, nil
}

// List returns notifications newest-first.
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return s.notifications.List(ctx)
}

// Delete removes one notification by id.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	if err := s.notifications.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("notification", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// DeleteAll empties the collection.
func (s *NotificationService) DeleteAll(ctx context.Context) error {
	return s.notifications.DeleteAll(ctx)
}
