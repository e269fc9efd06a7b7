// cmd/hexdemo/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-hexagon-glyph/internal/config"
	"go-hexagon-glyph/internal/speech"
	"go-hexagon-glyph/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/text/language"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout отдаёт окну его реальный размер, чтобы виджеты перестраивались
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	attrsPath := flag.String("attrs", "", "JSON attribute file for every hexagon")
	flag.Parse()

	attrs := config.DefaultAttributes()
	if *attrsPath != "" {
		loaded, err := config.LoadAttributes(*attrsPath)
		if err != nil {
			log.Fatalf("Failed to load attributes: %v", err)
		}
		attrs = loaded
	}
	base, err := attrs.Resolve()
	if err != nil {
		log.Fatalf("Invalid attributes: %v", err)
	}

	// Движок речи инициализируется асинхронно, как на платформе
	speechInit := make(chan speech.Status, 1)
	go func() {
		time.Sleep(300 * time.Millisecond)
		speechInit <- speech.StatusSuccess
	}()
	engine := &speech.StaticEngine{Supported: []language.Tag{language.AmericanEnglish}}

	scene := state.NewScene(base, attrs.CornerRadius, config.GalleryLabels, engine, speechInit)
	sm := state.NewStateMachine()
	sm.SetState(state.NewGalleryState(sm, scene))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hexagon Glyphs")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
