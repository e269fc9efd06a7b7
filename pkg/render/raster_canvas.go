package render

import (
	"image"
	"image/color"
	"io"
	"math"

	"go-hexagon-glyph/pkg/hexgeom"
	"go-hexagon-glyph/pkg/paint"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
)

// RasterCanvas paints into an offscreen gg context. It backs PNG export and
// the HTTP renderer, where no window exists.
type RasterCanvas struct {
	dc      *gg.Context
	sources map[*paint.Typeface]*ggtext.FontSource
}

// NewRasterCanvas creates a transparent w×h canvas.
func NewRasterCanvas(w, h int) *RasterCanvas {
	return &RasterCanvas{
		dc:      gg.NewContext(max(w, 1), max(h, 1)),
		sources: make(map[*paint.Typeface]*ggtext.FontSource),
	}
}

// Context exposes the underlying gg context.
func (c *RasterCanvas) Context() *gg.Context {
	return c.dc
}

// Image returns a snapshot of the pixels.
func (c *RasterCanvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG.
func (c *RasterCanvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the context and every loaded font source.
func (c *RasterCanvas) Close() error {
	for tf, src := range c.sources {
		src.Close()
		delete(c.sources, tf)
	}
	return c.dc.Close()
}

// ggPath feeds a cubic outline into a gg context with an offset.
type ggPath struct {
	dc     *gg.Context
	dx, dy float64
}

func (p ggPath) MoveTo(x, y float64) { p.dc.MoveTo(x+p.dx, y+p.dy) }
func (p ggPath) LineTo(x, y float64) { p.dc.LineTo(x+p.dx, y+p.dy) }
func (p ggPath) Close()              { p.dc.ClosePath() }

func (p ggPath) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.dc.CubicTo(c1x+p.dx, c1y+p.dy, c2x+p.dx, c2y+p.dy, x+p.dx, y+p.dy)
}

func (c *RasterCanvas) FillPath(path hexgeom.HexagonPath, p paint.FillPaint) {
	if path.IsEmpty() {
		return
	}
	if p.Kind == paint.FillLinearGradient {
		g := p.Gradient
		c.dc.SetFillBrush(gg.NewLinearGradientBrush(g.Start.X, g.Start.Y, g.End.X, g.End.Y).
			AddColorStop(0, toRGBA(g.StartColor)).
			AddColorStop(1, toRGBA(g.EndColor)).
			SetExtend(gg.ExtendPad))
	} else {
		c.dc.SetFillBrush(gg.Solid(toRGBA(p.Color)))
	}
	path.WalkCubic(ggPath{dc: c.dc})
	if err := c.dc.Fill(); err != nil {
		paint.Logger().Warn("render: fill failed", "err", err)
	}
}

// DrawShadow rasterizes the silhouette into a padded mask, blurs it and
// composites it at the shadow offset.
func (c *RasterCanvas) DrawShadow(path hexgeom.HexagonPath, p paint.ShadowPaint) {
	if path.IsEmpty() || !p.Visible() {
		return
	}
	sigma, pad := shadowExtent(path, p.Sigma)
	size := int(math.Ceil(path.Radius*2)) + 2*pad

	mask := gg.NewContext(size, size)
	defer mask.Close()
	mask.SetFillBrush(gg.Solid(toRGBA(p.Color)))
	path.WalkCubic(ggPath{dc: mask, dx: float64(pad), dy: float64(pad)})
	if err := mask.Fill(); err != nil {
		paint.Logger().Warn("render: shadow mask failed", "err", err)
		return
	}

	src := mask.Image()
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	gaussianBlur(rgba, sigma)

	c.dc.DrawImage(gg.ImageBufFromImage(rgba), p.OffsetX-float64(pad), p.OffsetY-float64(pad))
}

func (c *RasterCanvas) source(tf *paint.Typeface) (*ggtext.FontSource, bool) {
	if src, ok := c.sources[tf]; ok {
		return src, true
	}
	src, err := ggtext.NewFontSource(tf.Data)
	if err != nil {
		paint.Logger().Warn("render: font source failed", "typeface", tf.Name, "err", err)
		return nil, false
	}
	c.sources[tf] = src
	return src, true
}

func (c *RasterCanvas) MeasureText(s string, style paint.TextStyle) (TextMetrics, bool) {
	if style.Typeface == nil {
		return TextMetrics{}, false
	}
	src, ok := c.source(style.Typeface)
	if !ok {
		return TextMetrics{}, false
	}
	face := src.Face(style.Size)
	m := face.Metrics()
	return TextMetrics{
		Ascent:  m.Ascent,
		Descent: m.Descent,
		Advance: face.Advance(s),
	}, true
}

func (c *RasterCanvas) DrawText(s string, x, y float64, style paint.TextStyle) {
	src, ok := c.source(style.Typeface)
	if !ok {
		return
	}
	c.dc.SetFont(src.Face(style.Size))
	c.dc.SetColor(style.Color)
	c.dc.DrawString(s, x, y)
}

// toRGBA converts to gg's float color without premultiplying.
func toRGBA(c color.NRGBA) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}
