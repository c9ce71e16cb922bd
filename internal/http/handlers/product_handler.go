package handlers

import (
	"math"
	"strconv"
	"strings"

	"hwstore/internal/domain"
	"hwstore/internal/log"
	"hwstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /products?category=&brand=&brands=a,b&min=&max=&q=&sort=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	opts, err := filterOptions(c)
	if err != nil {
		log.Security(c, "validation.fail", map[string]any{"field": "price", "err": err.Error()})
		return jsonError(c, fiber.StatusBadRequest, "invalid price range")
	}
	products := h.Catalog.FilterProducts(h.Catalog.GetAllProducts(), opts)
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}

func filterOptions(c *fiber.Ctx) (domain.FilterOptions, error) {
	opts := domain.FilterOptions{
		Category:   strings.TrimSpace(c.Query("category")),
		Brand:      strings.TrimSpace(c.Query("brand")),
		SearchTerm: strings.TrimSpace(c.Query("q")),
		SortBy:     domain.SortBy(strings.TrimSpace(c.Query("sort"))),
	}
	if raw := c.Query("brands"); raw != "" {
		opts.Brands = strings.Split(raw, ",")
	}
	minRaw, maxRaw := c.Query("min"), c.Query("max")
	if minRaw == "" && maxRaw == "" {
		return opts, nil
	}
	r := domain.PriceRange{Min: 0, Max: math.MaxFloat64}
	if minRaw != "" {
		v, err := strconv.ParseFloat(minRaw, 64)
		if err != nil || v < 0 {
			return opts, fiber.NewError(fiber.StatusBadRequest, "min")
		}
		r.Min = v
	}
	if maxRaw != "" {
		v, err := strconv.ParseFloat(maxRaw, 64)
		if err != nil || v < r.Min {
			return opts, fiber.NewError(fiber.StatusBadRequest, "max")
		}
		r.Max = v
	}
	opts.PriceRange = &r
	return opts, nil
}

// GET /products/:id
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}
	p, found := h.Catalog.GetProductByID(id)
	if !found {
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}
	return c.JSON(p)
}

const maxSimilarLimit = 50

// GET /products/:id/similar?limit=4 (at most 50)
func (h *ProductHandler) Similar(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}
	p, found := h.Catalog.GetProductByID(id)
	if !found {
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}
	limit := min(c.QueryInt("limit", 0), maxSimilarLimit)
	return c.JSON(fiber.Map{"products": h.Catalog.GetSimilarProducts(p.ID, p.Category, limit)})
}

func (h *ProductHandler) Discounted(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"products": h.Catalog.GetDiscountedProducts()})
}

func (h *ProductHandler) Featured(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"products": h.Catalog.GetFeaturedProducts()})
}

func (h *ProductHandler) New(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"products": h.Catalog.GetNewProducts()})
}

func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.Catalog.Categories()})
}

func (h *ProductHandler) Brands(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"brands": h.Catalog.Brands()})
}
