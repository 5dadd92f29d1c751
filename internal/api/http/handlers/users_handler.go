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

// UsersHandler manages the customer account endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// List GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /api/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.users.Create(c.UserContext(), service.UserCreateInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Package:    req.Package,
		Status:     req.Status,
		DOB:        req.DOB,
		Gender:     req.Gender,
		Mobile:     req.Mobile,
		LinkedIn:   req.LinkedIn,
		Address:    req.Address,
		ProfilePic: req.ProfilePic,
		Documents: domain.Documents{
			IDProof:      req.Documents.IDProof,
			ServiceGuide: req.Documents.ServiceGuide,
			Contract:     req.Documents.Contract,
			CoverLetter:  req.Documents.CoverLetter,
		},
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Patch PATCH /api/users/:id.
func (h *UsersHandler) Patch(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return apperrors.NewValidationError("user id required", nil)
	}

	var req dto.PatchUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	patch := service.UserPatch{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Package:    req.Package,
		Status:     req.Status,
		DOB:        req.DOB,
		Gender:     req.Gender,
		Mobile:     req.Mobile,
		LinkedIn:   req.LinkedIn,
		Address:    req.Address,
		ProfilePic: req.ProfilePic,
	}
	if req.Documents != nil {
		patch.Documents = &service.DocumentsPatch{
			IDProof:      req.Documents.IDProof,
			ServiceGuide: req.Documents.ServiceGuide,
			Contract:     req.Documents.Contract,
			CoverLetter:  req.Documents.CoverLetter,
		}
	}

	user, err := h.users.Patch(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Delete DELETE /api/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return apperrors.NewValidationError("user id required", nil)
	}
	if err := h.users.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"data": fiber.Map{"id": id, "deleted": true}})
}
