package handlers

import (
	"hwstore/internal/domain"
	applog "hwstore/internal/log"
	"hwstore/internal/services"
	"hwstore/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Catalog *services.CatalogService
}

// GET /admin/stats
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Stats())
}

// POST /admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid product body")
	}
	if errs := validate.Product(p, false); len(errs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"fields": errs})
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
	}
	created, err := h.Catalog.AddProduct(p)
	if err != nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "catalog is temporarily unavailable, try again")
	}
	applog.Audit(c, "admin.products.create", map[string]any{"id": created.ID, "sku": created.SKU})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// PUT /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid product body")
	}
	p.ID = id
	if errs := validate.Product(p, true); len(errs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"fields": errs})
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
	}
	updated, err := h.Catalog.UpdateProduct(p)
	if err != nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "catalog is temporarily unavailable, try again")
	}
	if !updated {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	applog.Audit(c, "admin.products.update", map[string]any{"id": id})
	return c.JSON(p)
}

// DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	deleted, err := h.Catalog.DeleteProduct(id)
	if err != nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "catalog is temporarily unavailable, try again")
	}
	if deleted {
		applog.Audit(c, "admin.products.delete", map[string]any{"id": id})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
