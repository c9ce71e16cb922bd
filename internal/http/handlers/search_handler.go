package handlers

import (
	"strings"
	"unicode/utf8"

	"hwstore/internal/catalog"
	"hwstore/internal/domain"
	"hwstore/internal/log"
	"hwstore/internal/services"
	"hwstore/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

// GET /search?q=
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if utf8.RuneCountInString(strings.TrimSpace(rawQ)) < catalog.MinQueryLen {
		// Too short to be useful: empty result, not an error
		return c.JSON(fiber.Map{"q": strings.TrimSpace(rawQ), "products": []domain.Product{}, "count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return jsonError(c, fiber.StatusBadRequest, "enter a valid keyword (letters/numbers only)")
	}
	products := h.Catalog.SearchProducts(q)
	return c.JSON(fiber.Map{"q": q, "products": products, "count": len(products)})
}
