package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/more-experts/support-portal/internal/api/dto"
	"github.com/more-experts/support-portal/internal/service"
	apperrors "github.com/more-experts/support-portal/pkg/util"
)

// NotificationsHandler manages the broadcast notification endpoints.
type NotificationsHandler struct {
	notifications *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notifications *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// List GET /api/notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	items, err := h.notifications.List(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.NotificationResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewNotificationResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Create POST /api/notifications.
func (h *NotificationsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	n, err := h.notifications.Create(c.UserContext(), req.Title, req.Description, req.Type)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewNotificationResponse(n)})
}

// Delete DELETE /api/notifications?id=<id|all>.
func (h *NotificationsHandler) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		return apperrors.NewValidationError("id required", nil)
	}

	if id == "all" {
		if err := h.notifications.DeleteAll(c.UserContext()); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": fiber.Map{"deleted": "all"}})
	}

	if err := h.notifications.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id, "deleted": true}})
}
