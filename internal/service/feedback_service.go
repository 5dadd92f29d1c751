package service

import (
	"context"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/repository"
)

// FeedbackService exposes the read-only feedback listing.
type FeedbackService struct {
	feedback repository.FeedbackRepository
}

// NewFeedbackService constructs the service.
func NewFeedbackService(feedback repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedback: feedback}
}

// List returns all feedback entries newest-first.
func (s *FeedbackService) List(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedback.List(ctx)
}
