package dto

import (
	"time"

	"github.com/more-experts/support-portal/internal/domain"
)

// CreateNotificationRequest payload.
type CreateNotificationRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Type        domain.NotificationType `json:"type"`
}

// NotificationResponse mirrors the dashboard notification card.
type NotificationResponse struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Type        domain.NotificationType `json:"type"`
	IsRead      bool                    `json:"isRead"`
	Time        string                  `json:"time"`
	CreatedAt   time.Time               `json:"createdAt"`
}

// NewNotificationResponse maps the domain model.
func NewNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Type:        n.Type,
		IsRead:      n.IsRead,
		Time:        n.Time,
		CreatedAt:   n.CreatedAt,
	}
}

// FeedbackResponse mirrors one feedback entry.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewFeedbackResponse maps the domain model.
func NewFeedbackResponse(fb *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        fb.ID,
		Name:      fb.Name,
		Email:     fb.Email,
		Subject:   fb.Subject,
		Message:   fb.Message,
		Rating:    fb.Rating,
		CreatedAt: fb.CreatedAt,
	}
}

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
