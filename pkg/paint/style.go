package paint

import (
	"image/color"

	"go-hexagon-glyph/pkg/hexgeom"
	"go-hexagon-glyph/pkg/utils"
)

// FillKind selects the active fill variant.
type FillKind int

const (
	FillSolid FillKind = iota
	FillLinearGradient
)

func (k FillKind) String() string {
	switch k {
	case FillSolid:
		return "solid"
	case FillLinearGradient:
		return "linear-gradient"
	default:
		return "unknown"
	}
}

// TileMode controls a gradient outside its start/end points. Only clamp is
// supported: the edge colors extend outward.
type TileMode int

const TileClamp TileMode = 0

// FillStyle is the configured fill. GradientEnabled picks exactly one variant.
type FillStyle struct {
	GradientEnabled bool
	StartColor      color.NRGBA
	EndColor        color.NRGBA
}

// Kind returns the active variant.
func (f FillStyle) Kind() FillKind {
	if f.GradientEnabled {
		return FillLinearGradient
	}
	return FillSolid
}

// LinearGradient is a two-stop gradient between Start and End.
type LinearGradient struct {
	StartColor, EndColor color.NRGBA
	Start, End           hexgeom.Point
	Tile                 TileMode
}

// ColorAt projects (x, y) onto the gradient axis and returns the clamped color.
func (g LinearGradient) ColorAt(x, y float64) color.NRGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return g.StartColor
	}
	t := ((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq
	return LerpColor(g.StartColor, g.EndColor, utils.Clamp(t, 0, 1))
}

// FillPaint is the derived paint for the fill pass.
type FillPaint struct {
	Kind     FillKind
	Color    color.NRGBA    // used when Kind == FillSolid
	Gradient LinearGradient // used when Kind == FillLinearGradient
}

// ColorAt returns the fill color at (x, y) for either variant.
func (p FillPaint) ColorAt(x, y float64) color.NRGBA {
	if p.Kind == FillLinearGradient {
		return p.Gradient.ColorAt(x, y)
	}
	return p.Color
}

// ShadowStyle is the drop shadow configuration.
type ShadowStyle struct {
	Color      color.NRGBA
	BlurRadius float64
	OffsetX    float64
	OffsetY    float64
}

// ShadowPaint is the derived paint for the shadow pass.
type ShadowPaint struct {
	Color      color.NRGBA
	BlurRadius float64
	Sigma      float64 // sigma = blurRadius * 0.5
	OffsetX    float64
	OffsetY    float64
}

// Visible reports whether the shadow pass paints anything.
func (p ShadowPaint) Visible() bool {
	return p.Color.A > 0
}

// Align is the horizontal text alignment around the draw origin.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// TextStyle is the label configuration. Color is derived from the fill.
type TextStyle struct {
	Content  string
	Typeface *Typeface
	Size     float64
	Color    color.NRGBA
	Align    Align
}
