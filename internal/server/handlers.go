package server

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strconv"

	"go-hexagon-glyph/internal/config"
	"go-hexagon-glyph/pkg/hexgeom"
	"go-hexagon-glyph/pkg/paint"
	"go-hexagon-glyph/pkg/render"

	"github.com/gofiber/fiber/v3"
)

const defaultSide = 256

var errBadQuery = errors.New("bad query")

// Handlers render hexagon views on request.
type Handlers struct {
	cfg  *config.ServerConfig
	base config.Attributes
}

// NewHandlers uses base for every option the query leaves out.
func NewHandlers(cfg *config.ServerConfig, base config.Attributes) *Handlers {
	return &Handlers{cfg: cfg, base: base}
}

// ============================================================
// Render Handlers
// ============================================================

// RenderPNG отдаёт шестиугольник как PNG
func (h *Handlers) RenderPNG(c fiber.Ctx) error {
	side, attrs, err := h.parse(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	st, path, err := buildView(attrs, side)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	canvas := render.NewRasterCanvas(side, side)
	defer canvas.Close()
	render.Draw(canvas, path, st, float64(side))

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		log.Printf("[RENDER] Encode error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to encode png"})
	}

	c.Set("Content-Type", "image/png")
	return c.Send(buf.Bytes())
}

// RenderOps отдаёт список проходов отрисовки текстом
func (h *Handlers) RenderOps(c fiber.Ctx) error {
	side, attrs, err := h.parse(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	st, path, err := buildView(attrs, side)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	rec := render.NewRecorder()
	render.Draw(rec, path, st, float64(side))

	var buf bytes.Buffer
	if err := rec.Dump(&buf); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set("Content-Type", "text/plain; charset=utf-8")
	return c.Send(buf.Bytes())
}

func buildView(attrs config.Attributes, side int) (*paint.State, hexgeom.HexagonPath, error) {
	cfg, err := attrs.Resolve()
	if err != nil {
		return nil, hexgeom.HexagonPath{}, err
	}
	st := paint.NewState(cfg, nil)
	st.SetSide(float64(side))
	return st, hexgeom.ComputeHexagonPath(float64(side), attrs.CornerRadius), nil
}

// parse reads the query on top of the base attributes.
func (h *Handlers) parse(c fiber.Ctx) (int, config.Attributes, error) {
	attrs := h.base

	side := defaultSide
	if v := c.Query("side"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > h.cfg.MaxSide {
			return 0, attrs, fmt.Errorf("%w: side must be 1..%d", errBadQuery, h.cfg.MaxSide)
		}
		side = n
	}

	if v := c.Query("text"); v != "" {
		attrs.Text = v
	}
	if v := c.Query("gradient"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return 0, attrs, fmt.Errorf("%w: gradient must be a boolean", errBadQuery)
		}
		attrs.GradientEnabled = b
	}

	colors := []struct {
		key string
		dst *string
	}{
		{"shadowColor", &attrs.ShadowColor},
		{"startColor", &attrs.GradientStartColor},
		{"endColor", &attrs.GradientEndColor},
	}
	for _, s := range colors {
		if v := c.Query(s.key); v != "" {
			*s.dst = v
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"shadowRadius", &attrs.ShadowRadius},
		{"shadowX", &attrs.ShadowOffsetX},
		{"shadowY", &attrs.ShadowOffsetY},
		{"corner", &attrs.CornerRadius},
	}
	for _, f := range floats {
		v := c.Query(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, attrs, fmt.Errorf("%w: %s must be a number", errBadQuery, f.key)
		}
		if f.key == "shadowRadius" && n > float64(h.cfg.MaxSide) {
			return 0, attrs, fmt.Errorf("%w: shadowRadius must be at most %d", errBadQuery, h.cfg.MaxSide)
		}
		*f.dst = n
	}
	return side, attrs, nil
}
