package events

import (
	"time"

	"github.com/more-experts/support-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventConversationCreated EventType = "conversation_created"
	EventMessageAdded        EventType = "message_added"
	EventNotificationCreated EventType = "notification_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID             string      `json:"id"`
	Type           EventType   `json:"type"`
	ConversationID string      `json:"conversation_id,omitempty"`
	Timestamp      time.Time   `json:"timestamp"`
	Payload        interface{} `json:"payload"`
}

// ConversationCreatedPayload payload.
type ConversationCreatedPayload struct {
	Conversation domain.Conversation `json:"conversation"`
}

// MessageAddedPayload payload.
type MessageAddedPayload struct {
	Message domain.Message `json:"message"`
}

// NotificationCreatedPayload payload.
type NotificationCreatedPayload struct {
	Notification domain.Notification `json:"notification"`
}
