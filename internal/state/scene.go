// internal/state/scene.go
package state

import (
	"log/slog"
	"time"

	"go-hexagon-glyph/internal/config"
	"go-hexagon-glyph/internal/event"
	"go-hexagon-glyph/internal/speech"
	"go-hexagon-glyph/internal/ui"
	"go-hexagon-glyph/pkg/paint"

	"github.com/hajimehoshi/ebiten/v2"
)

// soundAnimation — сколько перерисовывать кадры после клика по кнопке
const soundAnimation = 500 * time.Millisecond

// Scene holds the widgets shared by the gallery and preview states. Frames
// are only repainted after a RedrawRequested event, a resize or a state
// switch.
type Scene struct {
	Dispatcher  *event.Dispatcher
	Gallery     []*ui.HexagonView
	Preview     *ui.HexagonView
	SoundButton *ui.SoundButton

	speechInit  <-chan speech.Status
	engine      speech.Engine
	listener    *speech.Listener
	logger      *slog.Logger
	needsRedraw bool
	redrawUntil time.Time
}

// speechControl forwards the listener's enable call as an event.
type speechControl struct {
	d *event.Dispatcher
}

func (c speechControl) SetEnabled(enabled bool) {
	c.d.Dispatch(event.Event{Type: event.SpeechReady, Data: enabled})
}

// NewScene builds one view per label from base. speechInit delivers the
// engine's init status; it may be nil.
func NewScene(base paint.Config, cornerRadius float64, labels []string, engine speech.Engine, speechInit <-chan speech.Status) *Scene {
	s := &Scene{
		Dispatcher: event.NewDispatcher(),
		speechInit: speechInit,
		engine:     engine,
		SoundButton: ui.NewSoundButton(
			config.SoundButtonX, config.SoundButtonY, config.SoundButtonSize,
			config.SoundButtonColors, config.SoundButtonStroke,
		),
	}
	s.SetLogger(slog.Default())

	for _, label := range labels {
		cfg := base
		cfg.Text = label
		s.Gallery = append(s.Gallery, ui.NewHexagonView(cfg, cornerRadius, s.Dispatcher))
	}
	s.Preview = ui.NewHexagonView(base, cornerRadius, s.Dispatcher)

	s.Dispatcher.Subscribe(event.RedrawRequested, event.ListenerFunc(func(event.Event) {
		s.needsRedraw = true
	}))
	s.Dispatcher.Subscribe(event.SpeechReady, event.ListenerFunc(func(e event.Event) {
		enabled, _ := e.Data.(bool)
		s.SoundButton.SetEnabled(enabled)
		s.logger.Info("speech ready", "soundButton", enabled)
		s.needsRedraw = true
	}))
	s.needsRedraw = true
	return s
}

// SetLogger replaces the logger of the scene, its states and the speech
// listener.
func (s *Scene) SetLogger(logger *slog.Logger) {
	s.logger = logger
	s.listener = speech.NewListener(s.engine, speechControl{d: s.Dispatcher}, logger)
}

// Update polls the speech engine and handles input shared by both states.
func (s *Scene) Update() {
	select {
	case status, ok := <-s.speechInit:
		if ok {
			s.listener.OnInit(status)
		}
		s.speechInit = nil
	default:
	}
}

// HandleSoundClick toggles the sound button when (x, y) hits it.
func (s *Scene) HandleSoundClick(x, y int) bool {
	if !s.SoundButton.IsClicked(float32(x), float32(y)) {
		return false
	}
	if s.SoundButton.Toggle() {
		s.redrawUntil = time.Now().Add(soundAnimation)
		s.needsRedraw = true
	}
	return true
}

// SetAllGradients switches the fill of every view.
func (s *Scene) SetAllGradients(enabled bool) {
	for _, v := range s.Gallery {
		v.SetGradientEnabled(enabled)
	}
	s.Preview.SetGradientEnabled(enabled)
}

// RequestRedraw forces the next frame to repaint.
func (s *Scene) RequestRedraw() {
	s.needsRedraw = true
}

// BeginFrame reports whether the frame must be repainted and resets the flag.
func (s *Scene) BeginFrame() bool {
	if time.Now().Before(s.redrawUntil) {
		return true
	}
	redraw := s.needsRedraw
	s.needsRedraw = false
	return redraw
}

func (s *Scene) drawChrome(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.SoundButton.Draw(screen)
}
