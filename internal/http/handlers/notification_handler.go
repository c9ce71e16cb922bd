package handlers

import (
	"hwstore/internal/notify"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	Emitters []*notify.Emitter
}

// GET /notifications
func (h *NotificationHandler) Current(c *fiber.Ctx) error {
	out := fiber.Map{}
	for _, e := range h.Emitters {
		out[e.Name()] = e.Current()
	}
	return c.JSON(out)
}
