// internal/state/gallery_state.go
package state

import (
	"go-hexagon-glyph/internal/config"
	"go-hexagon-glyph/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GalleryState)(nil)

// GalleryState — соты из шестиугольников с буквами
type GalleryState struct {
	sm       *StateMachine
	scene    *Scene
	comb     hexmap.Honeycomb
	gradient bool
}

func NewGalleryState(sm *StateMachine, scene *Scene) *GalleryState {
	gradient := true
	if len(scene.Gallery) > 0 {
		gradient = scene.Gallery[0].State().Fill().GradientEnabled
	}
	return &GalleryState{sm: sm, scene: scene, gradient: gradient}
}

func (g *GalleryState) Enter() {
	g.scene.RequestRedraw()
}

// Resize раскладывает виджеты сотами по спирали от центра окна
func (g *GalleryState) Resize(width, height int) {
	g.comb = hexmap.FitHoneycomb(len(g.scene.Gallery),
		config.GalleryPadding, config.GalleryTop,
		float64(width)-2*config.GalleryPadding, float64(height)-config.GalleryTop-config.GalleryPadding,
		config.GalleryFill,
	)
	for i, v := range g.scene.Gallery {
		x, y, side := g.comb.CellBox(i)
		v.Layout(x, y, side, side)
	}
	g.scene.RequestRedraw()
}

func (g *GalleryState) Update(deltaTime float64) {
	g.scene.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.sm.SetState(NewPreviewState(g.sm, g.scene, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.gradient = !g.gradient
		g.scene.SetAllGradients(g.gradient)
		g.scene.logger.Info("gallery gradient toggled", "gradient", g.gradient)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.scene.HandleSoundClick(x, y) {
			return
		}
		if i := g.comb.CellAt(float64(x), float64(y)); i >= 0 {
			if v := g.scene.Gallery[i]; v.Contains(float64(x), float64(y)) {
				v.ToggleGradient()
			}
		}
	}
}

func (g *GalleryState) Draw(screen *ebiten.Image) {
	if !g.scene.BeginFrame() {
		return
	}
	g.scene.drawChrome(screen)
	for _, v := range g.scene.Gallery {
		v.Draw(screen)
	}
	ebitenutil.DebugPrintAt(screen, "Space: gradient  Tab: preview  Click: toggle", 80, 28)
}

func (g *GalleryState) Exit() {}
