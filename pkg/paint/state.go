package paint

import (
	"image/color"
	"strings"

	"go-hexagon-glyph/pkg/hexgeom"
	"go-hexagon-glyph/pkg/layout"
	"go-hexagon-glyph/pkg/utils"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Config holds plain style values, already parsed. Hosts build it from their
// own attribute sources.
type Config struct {
	Text               string
	GradientEnabled    bool
	ShadowColor        color.NRGBA
	ShadowRadius       float64
	ShadowOffsetX      float64
	ShadowOffsetY      float64
	GradientStartColor color.NRGBA
	GradientEndColor   color.NRGBA
	Typeface           *Typeface // nil selects DefaultTypeface
}

// DefaultConfig returns the stock look: an orange gradient hexagon with a
// soft light-blue shadow and the letter "A".
func DefaultConfig() Config {
	return Config{
		Text:               "A",
		GradientEnabled:    true,
		ShadowColor:        DefaultShadowColor,
		ShadowRadius:       10,
		GradientStartColor: DefaultGradientStartColor,
		GradientEndColor:   DefaultGradientEndColor,
	}
}

// State owns the fill, shadow and text configuration of one view together
// with the paints derived from them. Every setter recomputes the affected
// paint immediately, marks the state dirty and calls the invalidate hook; it
// never draws. State is not safe for concurrent use.
type State struct {
	fill   FillStyle
	shadow ShadowStyle
	text   TextStyle
	side   float64

	fillPaint   FillPaint
	shadowPaint ShadowPaint

	dirty      bool
	invalidate func()
}

// NewState builds a state from cfg. invalidate may be nil.
func NewState(cfg Config, invalidate func()) *State {
	s := &State{invalidate: invalidate}
	s.fill = FillStyle{
		GradientEnabled: cfg.GradientEnabled,
		StartColor:      cfg.GradientStartColor,
		EndColor:        cfg.GradientEndColor,
	}
	s.shadow = sanitizeShadow(ShadowStyle{
		Color:      cfg.ShadowColor,
		BlurRadius: cfg.ShadowRadius,
		OffsetX:    cfg.ShadowOffsetX,
		OffsetY:    cfg.ShadowOffsetY,
	})
	s.text = TextStyle{
		Content:  normalizeText(cfg.Text),
		Typeface: typefaceOrDefault(cfg.Typeface),
		Align:    AlignCenter,
	}
	s.updateFill()
	s.updateShadow()
	s.dirty = true
	return s
}

// SetFill switches between the gradient and the solid fill and sets the
// gradient colors. Text color follows the active variant.
func (s *State) SetFill(gradientEnabled bool, startColor, endColor color.NRGBA) {
	s.fill = FillStyle{
		GradientEnabled: gradientEnabled,
		StartColor:      startColor,
		EndColor:        endColor,
	}
	s.updateFill()
	s.markDirty()
}

// SetGradientEnabled toggles the fill variant, keeping the colors.
func (s *State) SetGradientEnabled(enabled bool) {
	s.SetFill(enabled, s.fill.StartColor, s.fill.EndColor)
}

// SetGradientColors replaces both gradient stops, keeping the toggle.
func (s *State) SetGradientColors(startColor, endColor color.NRGBA) {
	s.SetFill(s.fill.GradientEnabled, startColor, endColor)
}

// SetShadow applies all four shadow values in one recomputation.
// A negative radius is clamped to zero.
func (s *State) SetShadow(c color.NRGBA, radius, offsetX, offsetY float64) {
	s.shadow = sanitizeShadow(ShadowStyle{
		Color:      c,
		BlurRadius: radius,
		OffsetX:    offsetX,
		OffsetY:    offsetY,
	})
	s.updateShadow()
	s.markDirty()
}

// SetShadowColor changes only the shadow color.
func (s *State) SetShadowColor(c color.NRGBA) {
	s.SetShadow(c, s.shadow.BlurRadius, s.shadow.OffsetX, s.shadow.OffsetY)
}

// SetShadowRadius changes only the blur radius.
func (s *State) SetShadowRadius(radius float64) {
	s.SetShadow(s.shadow.Color, radius, s.shadow.OffsetX, s.shadow.OffsetY)
}

// SetShadowOffset changes only the offset.
func (s *State) SetShadowOffset(offsetX, offsetY float64) {
	s.SetShadow(s.shadow.Color, s.shadow.BlurRadius, offsetX, offsetY)
}

// SetText stores the uppercased, single-line form of content.
func (s *State) SetText(content string) {
	s.text.Content = normalizeText(content)
	s.markDirty()
}

// SetTypeface changes the label font; nil restores the default.
func (s *State) SetTypeface(t *Typeface) {
	s.text.Typeface = typefaceOrDefault(t)
	s.markDirty()
}

// SetSide is called by the layout pass. It rescales the label and the
// gradient span.
func (s *State) SetSide(side float64) {
	s.side = utils.NonNegative(side)
	s.text.Size = layout.TextSize(s.side)
	s.updateFill()
	s.markDirty()
}

func (s *State) Fill() FillStyle          { return s.fill }
func (s *State) Shadow() ShadowStyle      { return s.shadow }
func (s *State) Text() TextStyle          { return s.text }
func (s *State) Side() float64            { return s.side }
func (s *State) FillPaint() FillPaint     { return s.fillPaint }
func (s *State) ShadowPaint() ShadowPaint { return s.shadowPaint }

// Dirty reports whether a setter ran since the last ClearDirty.
func (s *State) Dirty() bool {
	return s.dirty
}

// ClearDirty is called by the host after a frame has been drawn.
func (s *State) ClearDirty() {
	s.dirty = false
}

// Invalidate marks the state dirty for changes made outside it, such as a new
// corner radius.
func (s *State) Invalidate() {
	s.markDirty()
}

func (s *State) markDirty() {
	s.dirty = true
	if s.invalidate != nil {
		s.invalidate()
	}
}

func (s *State) updateFill() {
	if s.fill.GradientEnabled {
		s.fillPaint = FillPaint{
			Kind: FillLinearGradient,
			Gradient: LinearGradient{
				StartColor: s.fill.StartColor,
				EndColor:   s.fill.EndColor,
				Start:      hexgeom.Point{X: 0, Y: 0},
				End:        hexgeom.Point{X: s.side, Y: s.side},
				Tile:       TileClamp,
			},
		}
		s.text.Color = GradientTextColor
	} else {
		s.fillPaint = FillPaint{Kind: FillSolid, Color: SolidFillColor}
		s.text.Color = SolidTextColor
	}
	Logger().Debug("paint: fill recomputed", "kind", s.fillPaint.Kind, "side", s.side)
}

func (s *State) updateShadow() {
	s.shadowPaint = ShadowPaint{
		Color:      s.shadow.Color,
		BlurRadius: s.shadow.BlurRadius,
		Sigma:      s.shadow.BlurRadius * 0.5,
		OffsetX:    s.shadow.OffsetX,
		OffsetY:    s.shadow.OffsetY,
	}
}

func sanitizeShadow(st ShadowStyle) ShadowStyle {
	if st.BlurRadius < 0 || !utils.IsFinite(st.BlurRadius) {
		Logger().Warn("paint: shadow radius clamped", "radius", st.BlurRadius)
		st.BlurRadius = 0
	}
	if !utils.IsFinite(st.OffsetX) {
		st.OffsetX = 0
	}
	if !utils.IsFinite(st.OffsetY) {
		st.OffsetY = 0
	}
	return st
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func normalizeText(content string) string {
	return cases.Upper(language.Und).String(lineBreaks.Replace(content))
}

func typefaceOrDefault(t *Typeface) *Typeface {
	if t == nil {
		return DefaultTypeface()
	}
	return t
}
