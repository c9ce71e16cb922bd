package handlers

import (
	"time"

	"hwstore/internal/config"
	"hwstore/internal/currency"
	applog "hwstore/internal/log"
	"hwstore/internal/notify"
	"hwstore/internal/services"
	"hwstore/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Deps holds the session's stores, built once at startup, and the handlers
// that expose them.
type Deps struct {
	Catalog  *services.CatalogService
	Cart     *services.CartService
	Wishlist *services.WishlistService
	Currency *currency.Converter

	ProductHandler      *ProductHandler
	SearchHandler       *SearchHandler
	CartHandler         *CartHandler
	WishlistHandler     *WishlistHandler
	CurrencyHandler     *CurrencyHandler
	NotificationHandler *NotificationHandler
	AdminHandler        *AdminHandler

	adminToken string
}

func NewDeps(st *store.Adapter, cfg config.Config) *Deps {
	cartNotes := notify.NewEmitter("cart", cfg.CartNotifyTimeout)
	wishNotes := notify.NewEmitter("wishlist", cfg.WishlistNotifyTimeout)

	catalogSvc := services.NewCatalogService(st)
	catalogSvc.Initialize()
	cartSvc := services.NewCartService(st, cartNotes)
	wishSvc := services.NewWishlistService(st, wishNotes)
	conv := currency.NewConverter(cfg.EURRate)

	if cfg.AdminToken == "" {
		applog.Info(nil, "admin.disabled", map[string]any{"reason": "no admin token configured"})
	}

	return &Deps{
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Wishlist: wishSvc,
		Currency: conv,

		ProductHandler:      &ProductHandler{Catalog: catalogSvc},
		SearchHandler:       &SearchHandler{Catalog: catalogSvc},
		CartHandler:         &CartHandler{Cart: cartSvc, Catalog: catalogSvc, Conv: conv},
		WishlistHandler:     &WishlistHandler{Wish: wishSvc, Catalog: catalogSvc},
		CurrencyHandler:     &CurrencyHandler{Conv: conv},
		NotificationHandler: &NotificationHandler{Emitters: []*notify.Emitter{cartNotes, wishNotes}},
		AdminHandler:        &AdminHandler{Catalog: catalogSvc},

		adminToken: cfg.AdminToken,
	}
}

// Routes registers the storefront API on r (normally the /api/v1 group).
func (d *Deps) Routes(r fiber.Router) {
	// Catalog
	r.Get("/products", d.ProductHandler.List)
	r.Get("/products/discounted", d.ProductHandler.Discounted)
	r.Get("/products/featured", d.ProductHandler.Featured)
	r.Get("/products/new", d.ProductHandler.New)
	r.Get("/products/:id", d.ProductHandler.Detail)
	r.Get("/products/:id/similar", d.ProductHandler.Similar)
	r.Get("/categories", d.ProductHandler.Categories)
	r.Get("/brands", d.ProductHandler.Brands)
	r.Get("/search", limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.search.hit", nil)
			return jsonError(c, fiber.StatusTooManyRequests, "rate limit exceeded, retry soon")
		},
	}), d.SearchHandler.Search)

	// Cart
	r.Get("/cart", d.CartHandler.View)
	r.Post("/cart", d.CartHandler.Add)
	r.Delete("/cart", d.CartHandler.Clear)
	r.Post("/cart/open", d.CartHandler.Open)
	r.Post("/cart/close", d.CartHandler.Close)
	r.Patch("/cart/:id", d.CartHandler.Update)
	r.Delete("/cart/:id", d.CartHandler.Remove)
	r.Get("/quickview", d.CartHandler.Selected)
	r.Post("/quickview/:id", d.CartHandler.QuickView)
	r.Delete("/quickview", d.CartHandler.CloseQuickView)

	// Wishlist
	r.Get("/wishlist", d.WishlistHandler.List)
	r.Post("/wishlist", d.WishlistHandler.Save)
	r.Delete("/wishlist", d.WishlistHandler.Clear)
	r.Get("/wishlist/:id", d.WishlistHandler.Has)
	r.Delete("/wishlist/:id", d.WishlistHandler.Unsave)

	// Currency & notifications
	r.Get("/currency", d.CurrencyHandler.Get)
	r.Put("/currency", d.CurrencyHandler.Set)
	r.Get("/currency/format", d.CurrencyHandler.Format)
	r.Get("/notifications", d.NotificationHandler.Current)

	// Admin
	admin := r.Group("/admin", RequireAdmin(d.adminToken))
	admin.Get("/stats", d.AdminHandler.Stats)
	admin.Post("/products", d.AdminHandler.CreateProduct)
	admin.Put("/products/:id", d.AdminHandler.UpdateProduct)
	admin.Delete("/products/:id", d.AdminHandler.DeleteProduct)
}
