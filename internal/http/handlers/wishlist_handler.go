package handlers

import (
	applog "hwstore/internal/log"
	"hwstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

type WishlistHandler struct {
	Wish    *services.WishlistService
	Catalog *services.CatalogService
}

func (h *WishlistHandler) view(c *fiber.Ctx) error {
	items := h.Wish.Wishlist()
	return c.JSON(fiber.Map{"items": items, "count": len(items), "notification": h.Wish.Notification()})
}

// GET /wishlist
func (h *WishlistHandler) List(c *fiber.Ctx) error { return h.view(c) }

// POST /wishlist {productId}
func (h *WishlistHandler) Save(c *fiber.Ctx) error {
	var req struct {
		ProductID int `json:"productId"`
	}
	if err := c.BodyParser(&req); err != nil || req.ProductID <= 0 {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return jsonError(c, fiber.StatusBadRequest, "missing productId")
	}
	p, ok := h.Catalog.GetProductByID(req.ProductID)
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}
	if h.Wish.AddToWishlist(p) {
		applog.Audit(c, "wishlist.save", map[string]any{"product": p.ID})
	}
	return h.view(c)
}

// DELETE /wishlist/:id
func (h *WishlistHandler) Unsave(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	if h.Wish.RemoveFromWishlist(id) {
		applog.Audit(c, "wishlist.unsave", map[string]any{"product": id})
	}
	return h.view(c)
}

// DELETE /wishlist
func (h *WishlistHandler) Clear(c *fiber.Ctx) error {
	h.Wish.ClearWishlist()
	return h.view(c)
}

// GET /wishlist/:id
func (h *WishlistHandler) Has(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	return c.JSON(fiber.Map{"productId": id, "inWishlist": h.Wish.IsInWishlist(id)})
}
