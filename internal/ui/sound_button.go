// internal/ui/sound_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-hexagon-glyph/internal/config"
	"go-hexagon-glyph/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SoundButton — кнопка-динамик. Пока движок речи не готов, кнопка выключена
// и клики игнорируются.
type SoundButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color // [0] выключена, [1] включена
	Stroke        color.Color
	Enabled       bool
	Muted         bool
}

func NewSoundButton(x, y, size float32, stateColors []color.Color, stroke color.Color) *SoundButton {
	return &SoundButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		Stroke:      stroke,
	}
}

// SetEnabled unlocks the button once speech is available.
func (b *SoundButton) SetEnabled(enabled bool) {
	b.Enabled = enabled
}

func (b *SoundButton) currentColor() color.Color {
	if b.Enabled && !b.Muted && len(b.StateColors) > 1 {
		return b.StateColors[1]
	}
	return b.StateColors[0]
}

func (b *SoundButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	s := b.Size * float32(scale)
	c := b.currentColor()

	// Корпус динамика
	bodyW, bodyH := s*0.5, s*0.8
	vector.DrawFilledRect(screen, b.X-s, b.Y-bodyH/2, bodyW, bodyH, c, true)

	// Раструб
	var p vector.Path
	p.MoveTo(b.X-s+bodyW, b.Y-bodyH/2)
	p.LineTo(b.X+s*0.2, b.Y-s)
	p.LineTo(b.X+s*0.2, b.Y+s)
	p.LineTo(b.X-s+bodyW, b.Y+bodyH/2)
	p.Close()
	fillPath(screen, &p, c)

	if b.Enabled && !b.Muted {
		// Звуковые волны
		for i := 1; i <= 2; i++ {
			var w vector.Path
			r := s * (0.3 + 0.35*float32(i))
			w.Arc(b.X+s*0.2, b.Y, r, -math.Pi/4, math.Pi/4, vector.Clockwise)
			strokePath(screen, &w, b.Stroke, 2)
		}
	} else {
		var x vector.Path
		x.MoveTo(b.X+s*0.5, b.Y-s*0.4)
		x.LineTo(b.X+s*1.1, b.Y+s*0.4)
		x.MoveTo(b.X+s*1.1, b.Y-s*0.4)
		x.LineTo(b.X+s*0.5, b.Y+s*0.4)
		strokePath(screen, &x, b.Stroke, 2)
	}
}

// IsClicked uses a circle around the icon as the hit area.
func (b *SoundButton) IsClicked(mx, my float32) bool {
	dx, dy := mx-b.X, my-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// Toggle mutes or unmutes. It does nothing while the button is disabled or
// right after the previous click.
func (b *SoundButton) Toggle() bool {
	if !b.Enabled {
		return false
	}
	if time.Since(b.LastClickTime) < config.ClickDebounceTime*time.Millisecond {
		return false
	}
	b.Muted = !b.Muted
	b.LastClickTime = time.Now()
	return true
}

func fillPath(dst *ebiten.Image, p *vector.Path, c color.Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	drawColored(dst, vs, is, c)
}

func strokePath(dst *ebiten.Image, p *vector.Path, c color.Color, width float32) {
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	drawColored(dst, vs, is, c)
}

func drawColored(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, c color.Color) {
	r, g, bl, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(bl) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true, ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	dst.DrawTriangles(vs, is, render.WhitePixel, op)
}
