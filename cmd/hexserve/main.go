package main

import (
	"fmt"
	"log"

	"go-hexagon-glyph/internal/config"
	"go-hexagon-glyph/internal/server"
)

// ============================================================
// Hexagon Preview Service
// ============================================================

func main() {
	cfg := config.LoadServer()

	app := server.New(cfg, config.DefaultAttributes(), true)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Hexagon Preview Service on %s (env: %s, max side: %d)", addr, cfg.Environment, cfg.MaxSide)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
