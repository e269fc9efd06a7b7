package paint

import (
	"image/color"
	"math"
	"testing"
)

func TestSetTextUppercases(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ab", "AB"},
		{"A", "A"},
		{"straße", "STRASSE"},
		{"a\nb", "A B"},
		{"", ""},
	}

	s := NewState(DefaultConfig(), nil)
	for _, tt := range tests {
		s.SetText(tt.in)
		if got := s.Text().Content; got != tt.want {
			t.Errorf("SetText(%q) stored %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultState(t *testing.T) {
	s := NewState(DefaultConfig(), nil)
	if got := s.Text().Content; got != "A" {
		t.Errorf("default text = %q", got)
	}
	if s.FillPaint().Kind != FillLinearGradient {
		t.Errorf("default fill = %v, want gradient", s.FillPaint().Kind)
	}
	if s.Text().Color != White {
		t.Errorf("gradient text color = %v, want white", s.Text().Color)
	}
	sh := s.Shadow()
	if sh.Color != DefaultShadowColor || sh.BlurRadius != 10 || sh.OffsetX != 0 || sh.OffsetY != 0 {
		t.Errorf("default shadow = %+v", sh)
	}
	if s.Text().Typeface != DefaultTypeface() {
		t.Errorf("default typeface not used")
	}
	if !s.Dirty() {
		t.Errorf("new state should be dirty")
	}
}

func TestToggleGradient(t *testing.T) {
	s := NewState(DefaultConfig(), nil)
	s.SetSide(100)
	shadowBefore := s.ShadowPaint()

	s.SetGradientEnabled(false)
	fp := s.FillPaint()
	if fp.Kind != FillSolid || fp.Color != MustParseHexColor("#FFFFFF") {
		t.Errorf("solid fill = %+v", fp)
	}
	if got := s.Text().Color; got != MustParseHexColor("#C1E1F9") {
		t.Errorf("solid text color = %v", got)
	}

	s.SetGradientEnabled(true)
	fp = s.FillPaint()
	if fp.Kind != FillLinearGradient {
		t.Fatalf("fill kind = %v, want gradient", fp.Kind)
	}
	g := fp.Gradient
	if g.StartColor != DefaultGradientStartColor || g.EndColor != DefaultGradientEndColor {
		t.Errorf("gradient colors = %v -> %v", g.StartColor, g.EndColor)
	}
	if g.Start.X != 0 || g.Start.Y != 0 || g.End.X != 100 || g.End.Y != 100 {
		t.Errorf("gradient span = %v -> %v", g.Start, g.End)
	}
	if s.Text().Color != White {
		t.Errorf("gradient text color = %v", s.Text().Color)
	}
	if s.ShadowPaint() != shadowBefore {
		t.Errorf("toggling fill changed shadow: %+v -> %+v", shadowBefore, s.ShadowPaint())
	}
}

func TestSetShadowAtomic(t *testing.T) {
	var seen []ShadowPaint
	var s *State
	s = NewState(DefaultConfig(), func() {
		seen = append(seen, s.ShadowPaint())
	})

	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	s.SetShadow(c, 7, -2, 5)

	if len(seen) != 1 {
		t.Fatalf("invalidate called %d times, want 1", len(seen))
	}
	want := ShadowPaint{Color: c, BlurRadius: 7, Sigma: 3.5, OffsetX: -2, OffsetY: 5}
	if seen[0] != want {
		t.Errorf("observed shadow %+v, want %+v", seen[0], want)
	}
	if s.ShadowPaint() != want {
		t.Errorf("shadow paint = %+v, want %+v", s.ShadowPaint(), want)
	}
}

func TestShadowSingleFieldSetters(t *testing.T) {
	s := NewState(DefaultConfig(), nil)
	s.SetShadowRadius(4)
	s.SetShadowOffset(1, 2)
	s.SetShadowColor(White)

	want := ShadowStyle{Color: White, BlurRadius: 4, OffsetX: 1, OffsetY: 2}
	if s.Shadow() != want {
		t.Errorf("shadow = %+v, want %+v", s.Shadow(), want)
	}
}

func TestShadowClamped(t *testing.T) {
	s := NewState(DefaultConfig(), nil)
	s.SetShadow(White, -3, math.NaN(), math.Inf(1))
	sh := s.Shadow()
	if sh.BlurRadius != 0 || sh.OffsetX != 0 || sh.OffsetY != 0 {
		t.Errorf("shadow not normalized: %+v", sh)
	}
}

func TestSettersMarkDirty(t *testing.T) {
	calls := 0
	s := NewState(DefaultConfig(), func() { calls++ })
	s.ClearDirty()

	setters := []func(){
		func() { s.SetText("b") },
		func() { s.SetTypeface(nil) },
		func() { s.SetGradientEnabled(false) },
		func() { s.SetGradientColors(White, White) },
		func() { s.SetShadow(White, 1, 1, 1) },
		func() { s.SetSide(64) },
	}
	for i, set := range setters {
		s.ClearDirty()
		set()
		if !s.Dirty() {
			t.Errorf("setter %d did not mark dirty", i)
		}
	}
	if calls != len(setters) {
		t.Errorf("invalidate called %d times, want %d", calls, len(setters))
	}
}

func TestSetSideTextSize(t *testing.T) {
	s := NewState(DefaultConfig(), nil)
	for _, side := range []float64{0, 50, 150} {
		s.SetSide(side)
		if got := s.Text().Size; got != side*0.4 {
			t.Errorf("side %v: text size %v", side, got)
		}
	}
}

func TestGradientColorAt(t *testing.T) {
	s := NewState(DefaultConfig(), nil)
	s.SetSide(100)
	g := s.FillPaint().Gradient

	if got := g.ColorAt(0, 0); got != DefaultGradientStartColor {
		t.Errorf("start color = %v", got)
	}
	if got := g.ColorAt(100, 100); got != DefaultGradientEndColor {
		t.Errorf("end color = %v", got)
	}
	// clamp
	if got := g.ColorAt(-50, -50); got != DefaultGradientStartColor {
		t.Errorf("before start = %v", got)
	}
	if got := g.ColorAt(500, 500); got != DefaultGradientEndColor {
		t.Errorf("past end = %v", got)
	}
	mid := g.ColorAt(50, 50)
	if mid.G <= DefaultGradientEndColor.G || mid.G >= DefaultGradientStartColor.G {
		t.Errorf("middle color %v not between stops", mid)
	}
}
