package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "hwstore/internal/log"
	"hwstore/internal/validate"
)

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// productID reads and validates the :id route param, logging rejects the
// way every handler does.
func productID(c *fiber.Ctx) (int, bool) {
	raw := c.Params("id")
	id, ok := validate.ID(raw)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id", "value": raw})
	}
	return id, ok
}
