package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"hwstore/internal/config"
	"hwstore/internal/http/handlers"
	applog "hwstore/internal/log"
	"hwstore/internal/repos"
	"hwstore/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	backend, closeBackend, err := openBackend(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeBackend()

	// Stores are built once and shared by every handler
	deps := handlers.NewDeps(store.New(backend), cfg)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.global.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	deps.Routes(app.Group("/api/v1"))

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}

func openBackend(cfg config.Config) (store.Backend, func(), error) {
	switch cfg.StoreBackend {
	case "redis":
		r, err := repos.OpenRedis(cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[store] redis %s prefix=%q", cfg.RedisURL, cfg.RedisPrefix)
		return r, func() { _ = r.Close() }, nil
	default:
		db, err := repos.OpenDB(cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[store] sqlite %s", cfg.DBDSN)
		return repos.NewKVRepo(db), func() { _ = db.Close() }, nil
	}
}
