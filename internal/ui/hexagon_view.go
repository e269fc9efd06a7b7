// internal/ui/hexagon_view.go
package ui

import (
	"image/color"

	"go-hexagon-glyph/internal/event"
	"go-hexagon-glyph/pkg/hexgeom"
	"go-hexagon-glyph/pkg/layout"
	"go-hexagon-glyph/pkg/paint"
	"go-hexagon-glyph/pkg/render"
	"go-hexagon-glyph/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// HexagonView — квадратный виджет: скруглённый шестиугольник с тенью,
// заливкой и буквой по центру.
//
// Setters only recompute paints and send event.RedrawRequested; drawing
// happens in Draw. The view is used from the ebiten update/draw goroutine only.
type HexagonView struct {
	X, Y float64 // левый верхний угол на экране

	side         float64
	cornerRadius float64
	path         hexgeom.HexagonPath
	state        *paint.State

	faces      *render.FaceCache
	canvas     *render.ScreenCanvas
	dispatcher *event.Dispatcher
}

// NewHexagonView creates a view with zero size; call Layout before drawing.
// dispatcher may be nil.
func NewHexagonView(cfg paint.Config, cornerRadius float64, dispatcher *event.Dispatcher) *HexagonView {
	v := &HexagonView{
		cornerRadius: utils.NonNegative(cornerRadius),
		faces:        render.NewFaceCache(),
		dispatcher:   dispatcher,
	}
	v.state = paint.NewState(cfg, v.invalidate)
	return v
}

// Measure returns the side the view takes inside the given box.
func (v *HexagonView) Measure(availWidth, availHeight float64) float64 {
	return layout.Measure(availWidth, availHeight)
}

// Layout places the view centered in the box (x, y, w, h) and resizes it.
func (v *HexagonView) Layout(x, y, w, h float64) {
	side := v.Measure(w, h)
	v.X = x + (utils.NonNegative(w)-side)/2
	v.Y = y + (utils.NonNegative(h)-side)/2
	if side != v.side {
		v.OnSizeChanged(side)
	}
}

// OnSizeChanged rebuilds the outline and rescales the label for a new side.
func (v *HexagonView) OnSizeChanged(side float64) {
	v.side = utils.NonNegative(side)
	v.path = hexgeom.ComputeHexagonPath(v.side, v.cornerRadius)
	v.state.SetSide(v.side)
}

// SetCornerRadius changes the corner rounding; negative values become 0.
func (v *HexagonView) SetCornerRadius(r float64) {
	v.cornerRadius = utils.NonNegative(r)
	v.path = hexgeom.ComputeHexagonPath(v.side, v.cornerRadius)
	v.state.Invalidate()
}

func (v *HexagonView) SetText(s string)              { v.state.SetText(s) }
func (v *HexagonView) SetGradientEnabled(on bool)    { v.state.SetGradientEnabled(on) }
func (v *HexagonView) SetTypeface(t *paint.Typeface) { v.state.SetTypeface(t) }

func (v *HexagonView) SetFill(gradientEnabled bool, start, end color.NRGBA) {
	v.state.SetFill(gradientEnabled, start, end)
}

func (v *HexagonView) SetShadow(c color.NRGBA, radius, offsetX, offsetY float64) {
	v.state.SetShadow(c, radius, offsetX, offsetY)
}

// ToggleGradient flips between the gradient and the solid fill.
func (v *HexagonView) ToggleGradient() {
	v.state.SetGradientEnabled(!v.state.Fill().GradientEnabled)
}

func (v *HexagonView) State() *paint.State       { return v.state }
func (v *HexagonView) Side() float64             { return v.side }
func (v *HexagonView) Path() hexgeom.HexagonPath { return v.path }
func (v *HexagonView) CornerRadius() float64     { return v.cornerRadius }

// Contains reports whether the screen point lies inside the hexagon. Rounded
// corners are ignored.
func (v *HexagonView) Contains(px, py float64) bool {
	if v.path.IsEmpty() {
		return false
	}
	p := hexgeom.Point{X: px - v.X, Y: py - v.Y}
	n := len(v.path.Vertices)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := v.path.Vertices[i], v.path.Vertices[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// Draw paints the view onto screen at (X, Y).
func (v *HexagonView) Draw(screen *ebiten.Image) {
	if v.canvas == nil {
		v.canvas = render.NewScreenCanvas(v.faces)
	}
	v.canvas.Begin(screen, v.X, v.Y)
	v.DrawTo(v.canvas)
}

// DrawTo paints the view onto any canvas in viewport coordinates and clears
// the dirty flag.
func (v *HexagonView) DrawTo(c render.Canvas) []render.Pass {
	passes := render.Draw(c, v.path, v.state, v.side)
	v.state.ClearDirty()
	return passes
}

// Dirty reports whether the view changed since it was last drawn.
func (v *HexagonView) Dirty() bool {
	return v.state.Dirty()
}

func (v *HexagonView) invalidate() {
	if v.dispatcher == nil {
		return
	}
	v.dispatcher.Dispatch(event.Event{Type: event.RedrawRequested, Source: v})
}
