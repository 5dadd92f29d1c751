package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/more-experts/support-portal/internal/api/dto"
	"github.com/more-experts/support-portal/internal/service"
	apperrors "github.com/more-experts/support-portal/pkg/util"
)

// ConversationsHandler manages support chat thread endpoints.
type ConversationsHandler struct {
	chat *service.ChatService
}

// NewConversationsHandler constructs handler.
func NewConversationsHandler(chat *service.ChatService) *ConversationsHandler {
	return &ConversationsHandler{chat: chat}
}

// List GET /api/conversations?userId=.
func (h *ConversationsHandler) List(c *fiber.Ctx) error {
	convs, err := h.chat.ListConversations(c.UserContext(), c.Query("userId"))
	if err != nil {
		return err
	}
	items := make([]dto.ConversationResponse, 0, len(convs))
	for i := range convs {
		items = append(items, dto.NewConversationResponse(&convs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetOrCreate POST /api/conversations.
func (h *ConversationsHandler) GetOrCreate(c *fiber.Ctx) error {
	var req dto.CreateConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.UserID) == "" {
		return apperrors.NewValidationError("userId required", nil)
	}

	conv, err := h.chat.GetOrCreateConversation(c.UserContext(), req.UserID, req.UserName, req.UserProfilePic)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewConversationResponse(conv)})
}

// MarkRead PATCH /api/conversations.
func (h *ConversationsHandler) MarkRead(c *fiber.Ctx) error {
	var req dto.MarkReadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.ConversationID) == "" {
		return apperrors.NewValidationError("conversationId required", nil)
	}

	if err := h.chat.MarkRead(c.UserContext(), req.ConversationID); err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"data": fiber.Map{"conversationId": req.ConversationID, "unreadCount": 0}})
}
