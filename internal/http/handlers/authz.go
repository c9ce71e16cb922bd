package handlers

import (
	"crypto/subtle"

	applog "hwstore/internal/log"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin guards catalog mutations with a shared token sent in the
// X-Admin-Token header. An empty configured token locks the admin API.
func RequireAdmin(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := c.Get("X-Admin-Token")
		if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			applog.Security(c, "access.denied.admin", map[string]any{"token_present": got != ""})
			return jsonError(c, fiber.StatusForbidden, "access denied")
		}
		return c.Next()
	}
}
