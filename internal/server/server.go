package server

import (
	"time"

	"go-hexagon-glyph/internal/config"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// New builds the preview service. requestLog switches the access log on.
func New(cfg *config.ServerConfig, base config.Attributes, requestLog bool) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Hexagon Preview Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	if requestLog {
		app.Use(Logger())
	}

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	// ============================================================
	// Render Routes
	// ============================================================

	h := NewHandlers(cfg, base)
	app.Get("/hexagon.png", h.RenderPNG)
	app.Get("/hexagon.txt", h.RenderOps)

	return app
}
