package dto

import (
	"time"

	"github.com/more-experts/support-portal/internal/domain"
)

// CreateConversationRequest payload.
type CreateConversationRequest struct {
	UserID         string `json:"userId"`
	UserName       string `json:"userName"`
	UserProfilePic string `json:"userProfilePic"`
}

// MarkReadRequest payload.
type MarkReadRequest struct {
	ConversationID string `json:"conversationId"`
}

// ConversationResponse mirrors what the dashboard sidebar renders.
type ConversationResponse struct {
	ID              string                `json:"id"`
	UserName        string                `json:"userName"`
	UserProfilePic  string                `json:"userProfilePic"`
	LastMessage     string                `json:"lastMessage"`
	LastMessageTime string                `json:"lastMessageTime"`
	Status          domain.PresenceStatus `json:"status"`
	UnreadCount     int                   `json:"unreadCount"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// CreateMessageRequest payload.
type CreateMessageRequest struct {
	ConversationID string             `json:"conversationId"`
	Role           domain.MessageRole `json:"role"`
	Text           string             `json:"text"`
	Sender         string             `json:"sender"`
}

// MessageResponse represents one chat bubble.
type MessageResponse struct {
	ID             string             `json:"id"`
	ConversationID string             `json:"conversationId"`
	Role           domain.MessageRole `json:"role"`
	Text           string             `json:"text"`
	Sender         string             `json:"sender"`
	Timestamp      string             `json:"timestamp"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// NewConversationResponse maps the domain model.
func NewConversationResponse(conv *domain.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:              conv.ID,
		UserName:        conv.UserName,
		UserProfilePic:  conv.UserProfilePic,
		LastMessage:     conv.LastMessage,
		LastMessageTime: conv.LastMessageTime,
		Status:          conv.Status,
		UnreadCount:     conv.UnreadCount,
		CreatedAt:       conv.CreatedAt,
		UpdatedAt:       conv.UpdatedAt,
	}
}

// NewMessageResponse maps the domain model.
func NewMessageResponse(msg *domain.Message) MessageResponse {
	return MessageResponse{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		Role:           msg.Role,
		Text:           msg.Text,
		Sender:         msg.Sender,
		Timestamp:      msg.Timestamp,
		CreatedAt:      msg.CreatedAt,
	}
}
