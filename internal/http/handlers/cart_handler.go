package handlers

import (
	"hwstore/internal/currency"
	applog "hwstore/internal/log"
	"hwstore/internal/services"
	"hwstore/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
	Conv    *currency.Converter
}

type cartLineReq struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// GET /cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	total := h.Cart.GetCartTotal()
	return c.JSON(fiber.Map{
		"items":          h.Cart.CartItems(),
		"count":          h.Cart.ItemCount(),
		"total":          total,
		"formattedTotal": h.Conv.Format(total),
		"open":           h.Cart.IsCartOpen(),
		"notification":   h.Cart.Notify.Current(),
	})
}

// POST /cart {productId, quantity}
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req cartLineReq
	if err := c.BodyParser(&req); err != nil || req.ProductID <= 0 {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return jsonError(c, fiber.StatusBadRequest, "missing productId")
	}
	p, ok := h.Catalog.GetProductByID(req.ProductID)
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}
	qty := req.Quantity
	if qty < 1 {
		qty = 1
	}
	// MaxQty bounds the merged line, not just this request.
	room := validate.MaxQty
	for _, it := range h.Cart.CartItems() {
		if it.Product.ID == p.ID {
			room -= it.Quantity
		}
	}
	if room < 1 {
		return jsonError(c, fiber.StatusConflict, "maximum quantity for this item is already in your cart")
	}
	h.Cart.AddToCart(p, min(qty, room))
	return h.View(c)
}

// PATCH /cart/:id {quantity}; zero or less removes the line
func (h *CartHandler) Update(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	var req cartLineReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid quantity")
	}
	h.Cart.UpdateQuantity(id, min(req.Quantity, validate.MaxQty))
	return h.View(c)
}

// DELETE /cart/:id
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	h.Cart.RemoveFromCart(id)
	return h.View(c)
}

// DELETE /cart
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Cart.ClearCart()
	applog.Audit(c, "cart.clear", nil)
	return h.View(c)
}

func (h *CartHandler) Open(c *fiber.Ctx) error {
	h.Cart.OpenCart()
	return c.JSON(fiber.Map{"open": true})
}

func (h *CartHandler) Close(c *fiber.Ctx) error {
	h.Cart.CloseCart()
	return c.JSON(fiber.Map{"open": false})
}

// POST /quickview/:id
func (h *CartHandler) QuickView(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}
	p, found := h.Catalog.GetProductByID(id)
	if !found {
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}
	h.Cart.OpenQuickView(p)
	return c.JSON(fiber.Map{"selected": p})
}

// GET /quickview
func (h *CartHandler) Selected(c *fiber.Ctx) error {
	p, ok := h.Cart.SelectedProduct()
	if !ok {
		return c.JSON(fiber.Map{"selected": nil})
	}
	return c.JSON(fiber.Map{"selected": p})
}

// DELETE /quickview
func (h *CartHandler) CloseQuickView(c *fiber.Ctx) error {
	h.Cart.CloseQuickView()
	return c.JSON(fiber.Map{"selected": nil})
}
