package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/more-experts/support-portal/internal/api/dto"
	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/service"
	apperrors "github.com/more-experts/support-portal/pkg/util"
)

// MessagesHandler manages the chat message endpoints.
type MessagesHandler struct {
	chat *service.ChatService
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(chat *service.ChatService) *MessagesHandler {
	return &MessagesHandler{chat: chat}
}

// List GET /api/messages?conversationId=.
func (h *MessagesHandler) List(c *fiber.Ctx) error {
	conversationID := strings.TrimSpace(c.Query("conversationId"))
	if conversationID == "" {
		return apperrors.NewValidationError("conversationId required", nil)
	}

	msgs, err := h.chat.ListMessages(c.UserContext(), conversationID)
	if err != nil {
		return err
	}
	items := make([]dto.MessageResponse, 0, len(msgs))
	for i := range msgs {
		items = append(items, dto.NewMessageResponse(&msgs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /api/messages.
func (h *MessagesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	msg, err := h.chat.AppendMessage(c.UserContext(), service.MessageInput{
		ConversationID: req.ConversationID,
		Role:           domain.MessageRole(req.Role),
		Text:           req.Text,
		Sender:         req.Sender,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewMessageResponse(msg)})
}
