package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/events"
	"github.com/more-experts/support-portal/internal/repository"
	apperrors "github.com/more-experts/support-portal/pkg/util"
)

// timestampLabel renders the display time shown next to chat bubbles.
func timestampLabel(t time.Time) string {
	return t.Format("03:04 PM")
}

// PresenceOverlay stamps live connection status onto conversation listings.
type PresenceOverlay interface {
	Overlay(ctx context.Context, convs []domain.Conversation) error
	IsOnline(ctx context.Context, conversationID string) (bool, error)
}

// ChatService coordinates the support chat workflows.
type ChatService struct {
	conversations repository.ConversationRepository
	messages      repository.MessageStore
	presence      PresenceOverlay
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// ChatDependencies bundles collaborators for the chat service.
type ChatDependencies struct {
	ConversationRepo repository.ConversationRepository
	MessageStore     repository.MessageStore
	Presence         PresenceOverlay
	Dispatcher       events.Dispatcher
	Logger           *zap.Logger
}

// NewChatService constructs the service.
func NewChatService(deps ChatDependencies) *ChatService {
	return &ChatService{
		conversations: deps.ConversationRepo,
		messages:      deps.MessageStore,
		presence:      deps.Presence,
		dispatcher:    deps.Dispatcher,
		logger:        deps.Logger,
	}
}

// MessageInput describes an inbound chat message.
type MessageInput struct {
	ConversationID string
	Role           domain.MessageRole
	Text           string
	Sender         string
}

// GetOrCreateConversation returns the thread for userID, creating it on first
// contact. Calling it again returns the stored conversation unchanged.
func (s *ChatService) GetOrCreateConversation(ctx context.Context, userID, userName, userProfilePic string) (*domain.Conversation, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.NewValidationError("userId required", nil)
	}
	if strings.TrimSpace(userName) == "" {
		userName = userID
	}

	conv := &domain.Conversation{
		ID:              userID,
		UserName:        userName,
		UserProfilePic:  userProfilePic,
		LastMessage:     domain.ConversationStartedPreview,
		LastMessageTime: timestampLabel(time.Now()),
		Status:          domain.PresenceOffline,
	}

	created, err := s.conversations.GetOrCreate(ctx, conv)
	if err != nil {
		return nil, err
	}
	if created {
		s.publish(ctx, events.Event{
			Type:           events.EventConversationCreated,
			ConversationID: conv.ID,
			Payload:        events.ConversationCreatedPayload{Conversation: *conv},
		})
	}
	return conv, nil
}

// ListConversations returns all threads newest-updated first, or just the one
// for userID when given. Presence status is overlaid from the live tracker.
func (s *ChatService) ListConversations(ctx context.Context, userID string) ([]domain.Conversation, error) {
	if userID != "" {
		conv, err := s.conversations.GetByID(ctx, userID)
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.Conversation{}, nil
		}
		if err != nil {
			return nil, err
		}
		conv.Status = domain.PresenceOffline
		if s.presence != nil {
			// presence failure degrades to offline, never fails the listing
			if online, err := s.presence.IsOnline(ctx, conv.ID); err == nil && online {
				conv.Status = domain.PresenceOnline
			}
		}
		return []domain.Conversation{*conv}, nil
	}

	convs, err := s.conversations.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.presence != nil {
		// overlay failure degrades to offline, never fails the listing
		_ = s.presence.Overlay(ctx, convs)
	}
	return convs, nil
}

// MarkRead zeroes the unread counter; unknown conversations are ignored.
func (s *ChatService) MarkRead(ctx context.Context, conversationID string) error {
	if strings.TrimSpace(conversationID) == "" {
		return apperrors.NewValidationError("conversationId required", nil)
	}
	return s.conversations.MarkRead(ctx, conversationID)
}

// AppendMessage persists a message with a server-assigned timestamp, patches
// the conversation preview in the same transactional unit, and fans the
// message out to connected viewers.
func (s *ChatService) AppendMessage(ctx context.Context, input MessageInput) (*domain.Message, error) {
	if strings.TrimSpace(input.ConversationID) == "" {
		return nil, apperrors.NewValidationError("conversationId required", nil)
	}
	if !domain.ValidMessageRole(input.Role) {
		return nil, apperrors.NewValidationError("role must be user or support", nil)
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, apperrors.NewValidationError("text required", nil)
	}
	sender := strings.TrimSpace(input.Sender)
	if sender == "" {
		sender = string(input.Role)
	}

	msg := &domain.Message{
		ConversationID: input.ConversationID,
		Role:           input.Role,
		Text:           input.Text,
		Sender:         sender,
		Timestamp:      timestampLabel(time.Now()),
	}
	if err := s.messages.Append(ctx, msg); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("conversation", map[string]any{"conversationId": input.ConversationID})
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:           events.EventMessageAdded,
		ConversationID: msg.ConversationID,
		Payload:        events.MessageAddedPayload{Message: *msg},
	})
	return msg, nil
}

// ListMessages returns the thread's history in ascending creation order. The
// slice is re-sorted here so the order is total even when the backend returns
// rows unordered.
func (s *ChatService) ListMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, apperrors.NewValidationError("conversationId required", nil)
	}
	msgs, err := s.messages.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs, nil
}

func (s *ChatService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish chat event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
