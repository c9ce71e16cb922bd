package handlers

import (
	"strconv"

	"hwstore/internal/currency"
	applog "hwstore/internal/log"

	"github.com/gofiber/fiber/v2"
)

type CurrencyHandler struct {
	Conv *currency.Converter
}

// GET /currency
func (h *CurrencyHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"currency": h.Conv.Currency(), "eurRate": h.Conv.Rate()})
}

// PUT /currency {currency}
func (h *CurrencyHandler) Set(c *fiber.Ctx) error {
	var req struct {
		Currency string `json:"currency"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	code, err := currency.Parse(req.Currency)
	if err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "currency", "value": req.Currency})
		return jsonError(c, fiber.StatusBadRequest, "unsupported currency")
	}
	if err := h.Conv.SetCurrency(code); err != nil {
		return err
	}
	return h.Get(c)
}

// GET /currency/format?price=12.5
func (h *CurrencyHandler) Format(c *fiber.Ctx) error {
	price, err := strconv.ParseFloat(c.Query("price"), 64)
	if err != nil || price < 0 {
		return jsonError(c, fiber.StatusBadRequest, "invalid price")
	}
	return c.JSON(fiber.Map{
		"currency":  h.Conv.Currency(),
		"price":     h.Conv.Convert(price),
		"formatted": h.Conv.Format(price),
	})
}
