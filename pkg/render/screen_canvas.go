package render

import (
	"image"
	"image/color"
	"math"

	"go-hexagon-glyph/pkg/hexgeom"
	"go-hexagon-glyph/pkg/paint"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// maxBlurTaps caps the separable blur kernel at 2*maxBlurTaps+1 draws per axis.
const maxBlurTaps = 7

var (
	whiteImage = ebiten.NewImage(3, 3)

	// WhitePixel — белый источник для DrawTriangles, цвет задаётся вершинами
	WhitePixel = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ScreenCanvas paints onto an ebiten image. Viewport (0, 0) maps to
// (OriginX, OriginY) on the target. Offscreen images for the shadow blur are
// kept between frames.
type ScreenCanvas struct {
	dst              *ebiten.Image
	OriginX, OriginY float64

	faces *FaceCache
	vs    []ebiten.Vertex
	is    []uint16

	silhouette *ebiten.Image
	blurTmp    *ebiten.Image
}

// NewScreenCanvas creates a canvas using faces for text. faces may be shared
// with the view's other canvases but not across views.
func NewScreenCanvas(faces *FaceCache) *ScreenCanvas {
	if faces == nil {
		faces = NewFaceCache()
	}
	return &ScreenCanvas{
		faces: faces,
		vs:    make([]ebiten.Vertex, 0, 64),
		is:    make([]uint16, 0, 96),
	}
}

// Begin targets dst for the next frame.
func (c *ScreenCanvas) Begin(dst *ebiten.Image, originX, originY float64) {
	c.dst = dst
	c.OriginX = originX
	c.OriginY = originY
}

// vectorPath adapts hexgeom.PathBuilder to ebiten's vector.Path.
type vectorPath struct {
	p      *vector.Path
	dx, dy float64
}

func (v *vectorPath) MoveTo(x, y float64) {
	v.p.MoveTo(float32(x+v.dx), float32(y+v.dy))
}

func (v *vectorPath) LineTo(x, y float64) {
	v.p.LineTo(float32(x+v.dx), float32(y+v.dy))
}

func (v *vectorPath) Arc(cx, cy, radius, startAngle, endAngle float64) {
	v.p.Arc(float32(cx+v.dx), float32(cy+v.dy), float32(radius), float32(startAngle), float32(endAngle), vector.Clockwise)
}

func (v *vectorPath) Close() {
	v.p.Close()
}

// fillVertices triangulates path shifted by (dx, dy) and colors every vertex
// with colorAt evaluated in viewport coordinates.
func (c *ScreenCanvas) fillVertices(path hexgeom.HexagonPath, dx, dy float64, colorAt func(x, y float64) color.NRGBA) {
	var p vector.Path
	path.Walk(&vectorPath{p: &p, dx: dx, dy: dy})

	c.vs, c.is = p.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	for i := range c.vs {
		col := colorAt(float64(c.vs[i].DstX)-dx, float64(c.vs[i].DstY)-dy)
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = float32(col.R) / 255
		c.vs[i].ColorG = float32(col.G) / 255
		c.vs[i].ColorB = float32(col.B) / 255
		c.vs[i].ColorA = float32(col.A) / 255
	}
}

// FillPath paints the hexagon body. A linear gradient is linear in position,
// so per-vertex colors interpolated across the triangles reproduce it.
func (c *ScreenCanvas) FillPath(path hexgeom.HexagonPath, p paint.FillPaint) {
	if c.dst == nil || path.IsEmpty() {
		return
	}
	c.fillVertices(path, c.OriginX, c.OriginY, p.ColorAt)
	c.dst.DrawTriangles(c.vs, c.is, WhitePixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawShadow renders the silhouette offscreen, blurs it with a separable
// Gaussian made of additive shifted draws, then composites it under the
// following passes.
func (c *ScreenCanvas) DrawShadow(path hexgeom.HexagonPath, p paint.ShadowPaint) {
	if c.dst == nil || path.IsEmpty() || !p.Visible() {
		return
	}
	sigma, pad := shadowExtent(path, p.Sigma)
	size := int(math.Ceil(path.Radius*2)) + 2*pad
	c.silhouette = ensureImage(c.silhouette, size)
	c.silhouette.Clear()

	shadowColor := func(float64, float64) color.NRGBA { return p.Color }
	c.fillVertices(path, float64(pad), float64(pad), shadowColor)
	c.silhouette.DrawTriangles(c.vs, c.is, WhitePixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	src := c.silhouette
	if sigma > 0 {
		c.blurTmp = ensureImage(c.blurTmp, size)
		offsets, weights := gaussianTaps(sigma)

		c.blurTmp.Clear()
		blurPass(c.blurTmp, c.silhouette, offsets, weights, true)
		c.silhouette.Clear()
		blurPass(c.silhouette, c.blurTmp, offsets, weights, false)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(c.OriginX+p.OffsetX-float64(pad), c.OriginY+p.OffsetY-float64(pad))
	c.dst.DrawImage(src, op)
}

func blurPass(dst, src *ebiten.Image, offsets []float64, weights []float32, horizontal bool) {
	for i, off := range offsets {
		op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
		if horizontal {
			op.GeoM.Translate(off, 0)
		} else {
			op.GeoM.Translate(0, off)
		}
		w := weights[i]
		op.ColorScale.Scale(w, w, w, w)
		dst.DrawImage(src, op)
	}
}

// gaussianTaps samples a normalized Gaussian over ±3σ.
func gaussianTaps(sigma float64) ([]float64, []float32) {
	n := int(math.Ceil(sigma * 3))
	step := 1.0
	if n > maxBlurTaps {
		step = sigma * 3 / maxBlurTaps
		n = maxBlurTaps
	}
	offsets := make([]float64, 0, 2*n+1)
	raw := make([]float64, 0, 2*n+1)
	sum := 0.0
	for i := -n; i <= n; i++ {
		x := float64(i) * step
		w := math.Exp(-x * x / (2 * sigma * sigma))
		offsets = append(offsets, x)
		raw = append(raw, w)
		sum += w
	}
	weights := make([]float32, len(raw))
	for i, w := range raw {
		weights[i] = float32(w / sum)
	}
	return offsets, weights
}

func ensureImage(img *ebiten.Image, size int) *ebiten.Image {
	if size < 1 {
		size = 1
	}
	if img != nil {
		b := img.Bounds()
		if b.Dx() >= size && b.Dy() >= size {
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(size, size)
}

func (c *ScreenCanvas) MeasureText(s string, style paint.TextStyle) (TextMetrics, bool) {
	return c.faces.Measure(s, style)
}

func (c *ScreenCanvas) DrawText(s string, x, y float64, style paint.TextStyle) {
	if c.dst == nil {
		return
	}
	face, err := c.faces.Face(style.Typeface, style.Size)
	if err != nil {
		paint.Logger().Warn("render: face creation failed", "err", err)
		return
	}
	text.Draw(c.dst, s, face, int(math.Round(c.OriginX+x)), int(math.Round(c.OriginY+y)), style.Color)
}
