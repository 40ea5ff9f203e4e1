package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fl-jobs/internal/domain"
	"fl-jobs/internal/service/auth"
	"fl-jobs/internal/service/navigation"
)

const (
	UserContextKey       = "user"
	ClientIDContextKey   = "client_id"
	ControllerContextKey = "controller"
)

// AuthRequired validates the bearer token, restores the client's
// navigation controller if the process restarted since login, and
// exposes the session user plus controller via locals.
func AuthRequired(authService auth.Service, nav *navigation.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid authorization header format",
			})
		}

		claims, err := authService.ValidateAccessToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid or expired token",
			})
		}

		ctrl, ok := nav.Get(claims.ClientID)
		if !ok {
			// Process restarted since login: rebuild from the
			// persisted session record.
			if _, _, err := authService.Restore(c.Context(), claims.ClientID); err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"code":    "UNAUTHORIZED",
					"message": "Session not found",
				})
			}
			ctrl, _ = nav.Get(claims.ClientID)
		}

		user := ctrl.User()
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Session not found",
			})
		}

		c.Locals(UserContextKey, user)
		c.Locals(ClientIDContextKey, claims.ClientID)
		c.Locals(ControllerContextKey, ctrl)

		return c.Next()
	}
}

func GetCurrentUser(c *fiber.Ctx) *domain.UserData {
	user, ok := c.Locals(UserContextKey).(*domain.UserData)
	if !ok {
		return nil
	}
	return user
}

func GetClientID(c *fiber.Ctx) string {
	id, ok := c.Locals(ClientIDContextKey).(string)
	if !ok {
		return ""
	}
	return id
}

func GetController(c *fiber.Ctx) *navigation.Controller {
	ctrl, ok := c.Locals(ControllerContextKey).(*navigation.Controller)
	if !ok {
		return nil
	}
	return ctrl
}
