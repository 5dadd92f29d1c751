package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/more-experts/support-portal/internal/api/dto"
	"github.com/more-experts/support-portal/internal/service"
)

// FeedbacksHandler exposes the read-only feedback listing.
type FeedbacksHandler struct {
	feedbacks *service.FeedbackService
}

// NewFeedbacksHandler constructs handler.
func NewFeedbacksHandler(feedbacks *service.FeedbackService) *FeedbacksHandler {
	return &FeedbacksHandler{feedbacks: feedbacks}
}

// List GET /api/feedbacks.
func (h *FeedbacksHandler) List(c *fiber.Ctx) error {
	items, err := h.feedbacks.List(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.FeedbackResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewFeedbackResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}
