package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fl-jobs/internal/domain"
	"fl-jobs/internal/middleware"
)

type UserHandler struct {
	validate *validator.Validate
}

func NewUserHandler(validate *validator.Validate) *UserHandler {
	return &UserHandler{validate: validate}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(middleware.GetCurrentUser(c))
}

// UpdateProfile edits name/email/phone and re-persists the session
// record. Role is not editable.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var input domain.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := h.validate.Struct(input); err != nil {
		return err
	}

	updated, err := middleware.GetController(c).UpdateProfile(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
