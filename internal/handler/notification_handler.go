package handler

import (
	"github.com/gofiber/fiber/v2"

	"fl-jobs/internal/middleware"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	state := middleware.GetController(c).Snapshot()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notifications": state.Notifications,
		"unread_count":  state.UnreadCount,
	})
}

// MarkAsRead flips one entry to read. Unknown ids succeed without
// effect, so the operation is idempotent.
func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	middleware.GetController(c).MarkNotificationRead(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearAll empties the inbox for the rest of the session.
func (h *NotificationHandler) ClearAll(c *fiber.Ctx) error {
	middleware.GetController(c).ClearAllNotifications()
	return c.SendStatus(fiber.StatusNoContent)
}
