package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fl-jobs/internal/domain"
	"fl-jobs/internal/middleware"
	"fl-jobs/internal/service/auth"
	"fl-jobs/internal/service/navigation"
)

// ClientIDHeader carries the pre-login client id issued at role
// selection.
const ClientIDHeader = "X-Client-ID"

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SelectRole starts the flow: records the role and moves the client
// to the login screen. The returned client_id must accompany the
// OTP and login calls.
func (h *AuthHandler) SelectRole(c *fiber.Ctx) error {
	var input domain.SelectRoleInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	clientID, err := h.authService.SelectRole(c.Get(ClientIDHeader), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"client_id": clientID,
		"screen":    domain.ScreenLogin,
	})
}

// SendOTP validates the login form; on success the demo code is
// considered delivered.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	clientID := c.Get(ClientIDHeader)
	if clientID == "" {
		return middleware.BadRequest("Missing client id")
	}

	if err := h.authService.SendOTP(clientID, input); err != nil {
		if errors.Is(err, navigation.ErrRoleNotSelected) {
			return middleware.PreconditionFailed("Select a role before logging in")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "OTP sent to your phone",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.VerifyOTPInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	clientID := c.Get(ClientIDHeader)
	if clientID == "" {
		return middleware.BadRequest("Missing client id")
	}

	user, token, err := h.authService.Login(c.Context(), clientID, input)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidOTP) {
			return middleware.Unauthorized("Invalid OTP")
		}
		if errors.Is(err, navigation.ErrRoleNotSelected) {
			return middleware.PreconditionFailed("Select a role before logging in")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":         user,
		"access_token": token,
		"screen":       domain.ScreenHome,
	})
}

// Session is the boot path: a valid persisted record restores the
// session and lands on home; anything else starts at role selection.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	clientID := c.Get(ClientIDHeader)
	if clientID == "" {
		return middleware.BadRequest("Missing client id")
	}

	user, screen, err := h.authService.Restore(c.Context(), clientID)
	if err != nil {
		if errors.Is(err, auth.ErrNoSession) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"screen": domain.ScreenRoleSelection,
			})
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":   user,
		"screen": screen,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.Context(), middleware.GetClientID(c)); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"screen": domain.ScreenRoleSelection,
	})
}
