// internal/state/preview_state.go
package state

import (
	"go-hexagon-glyph/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PreviewState)(nil)

// PreviewState — один шестиугольник на всё окно. Набранный символ
// становится подписью.
type PreviewState struct {
	stateMachine  *StateMachine
	scene         *Scene
	previousState State
	chars         []rune
}

func NewPreviewState(sm *StateMachine, scene *Scene, prevState State) *PreviewState {
	return &PreviewState{
		stateMachine:  sm,
		scene:         scene,
		previousState: prevState,
	}
}

func (s *PreviewState) Enter() {
	s.scene.RequestRedraw()
}

func (s *PreviewState) Resize(width, height int) {
	top := config.GalleryTop
	s.scene.Preview.Layout(
		config.PreviewMargin, top,
		float64(width)-2*config.PreviewMargin, float64(height)-top-config.PreviewMargin,
	)
	s.scene.RequestRedraw()
}

func (s *PreviewState) Update(deltaTime float64) {
	s.scene.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.scene.Preview.ToggleGradient()
	}

	s.chars = ebiten.AppendInputChars(s.chars[:0])
	for _, r := range s.chars {
		if r != ' ' {
			s.scene.Preview.SetText(string(r))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.scene.HandleSoundClick(x, y)
	}
}

func (s *PreviewState) Draw(screen *ebiten.Image) {
	if !s.scene.BeginFrame() {
		return
	}
	s.scene.drawChrome(screen)
	s.scene.Preview.Draw(screen)
	ebitenutil.DebugPrintAt(screen, "Type a letter  Space: gradient  Tab: back", 80, 28)
}

func (s *PreviewState) Exit() {}
