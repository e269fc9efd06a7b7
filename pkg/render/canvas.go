package render

import (
	"go-hexagon-glyph/pkg/hexgeom"
	"go-hexagon-glyph/pkg/paint"
)

// TextMetrics are measured for one string at one text style. Ascent and
// Descent are both positive distances from the baseline.
type TextMetrics struct {
	Ascent  float64
	Descent float64
	Advance float64
}

// Canvas is a paintable surface in viewport coordinates. Implementations
// must tolerate empty paths and never panic on degenerate input.
type Canvas interface {
	// DrawShadow paints the blurred, offset silhouette of path.
	DrawShadow(path hexgeom.HexagonPath, p paint.ShadowPaint)
	// FillPath paints the rounded body of path.
	FillPath(path hexgeom.HexagonPath, p paint.FillPaint)
	// MeasureText reports false when the style cannot be measured.
	MeasureText(s string, style paint.TextStyle) (TextMetrics, bool)
	// DrawText draws s with its left edge at x and its baseline at y.
	DrawText(s string, x, y float64, style paint.TextStyle)
}
