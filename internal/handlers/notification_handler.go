package handlers

import (
	"github.com/cinelog/movie-api/internal/dto"
	"github.com/cinelog/movie-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notifications *services.NotificationHandler
}

func NewNotificationHandler(notifications *services.NotificationHandler) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) Send(c *fiber.Ctx) error {
	if err := h.notifications.Handle(c.UserContext(), "Notification message"); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Notifications sent."})
}
