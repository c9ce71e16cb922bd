package handlers

import (
	"errors"

	applog "hwstore/internal/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ErrorHandler logs the real error and answers with a generic message so
// internals never reach the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	applog.Error(c, "server.error", err, map[string]any{"code": code})
	msg := "Something went wrong. Please try again."
	if code < fiber.StatusInternalServerError {
		msg = utils.StatusMessage(code)
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
