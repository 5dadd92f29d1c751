package repository

import (
	"context"
	"errors"

	"github.com/more-experts/support-portal/internal/domain"
)

// Sentinel errors shared by both storage backends so callers never depend on
// driver-specific error values.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// UserRepository defines persistence access for end-users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// NotificationRepository manages dashboard broadcast notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context) ([]domain.Notification, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// FeedbackRepository exposes the read-only feedback collection.
type FeedbackRepository interface {
	List(ctx context.Context) ([]domain.Feedback, error)
}

// ConversationRepository manages support chat threads keyed by user id.
type ConversationRepository interface {
	// GetOrCreate atomically upserts the conversation keyed by conv.ID. When a
	// conversation already exists it is loaded into conv unchanged (creation
	// timestamp included) and created is false.
	GetOrCreate(ctx context.Context, conv *domain.Conversation) (created bool, err error)
	GetByID(ctx context.Context, id string) (*domain.Conversation, error)
	// List returns conversations newest-updated first.
	List(ctx context.Context) ([]domain.Conversation, error)
	// MarkRead zeroes the unread counter. A missing conversation is a no-op.
	MarkRead(ctx context.Context, id string) error
}

// MessageStore persists the append-only message history of a conversation.
type MessageStore interface {
	// Append stores msg and patches the parent conversation's preview fields
	// (last message, last message time, updated-at, unread counter for
	// user-role messages) in one transactional unit.
	Append(ctx context.Context, msg *domain.Message) error
	// ListByConversation returns messages in ascending creation order.
	ListByConversation(ctx context.Context, conversationID string) ([]domain.Message, error)
}

// Repositories bundles one backend's implementations for wiring.
type Repositories struct {
	Users         UserRepository
	Notifications NotificationRepository
	Feedback      FeedbackRepository
	Conversations ConversationRepository
	Messages      MessageStore
}
