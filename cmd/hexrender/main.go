// cmd/hexrender/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"go-hexagon-glyph/internal/config"
	"go-hexagon-glyph/pkg/hexgeom"
	"go-hexagon-glyph/pkg/paint"
	"go-hexagon-glyph/pkg/render"
)

func main() {
	var (
		out       = flag.String("o", "hexagon.png", "output PNG path")
		side      = flag.Int("side", 256, "side of the square image in pixels")
		text      = flag.String("text", "", "label, overrides the attribute file")
		attrsPath = flag.String("attrs", "", "JSON attribute file")
		solid     = flag.Bool("solid", false, "use the solid fill instead of the gradient")
		dump      = flag.Bool("dump", false, "print the paint passes instead of writing a PNG")
		verbose   = flag.Bool("v", false, "log render warnings to stderr")
	)
	flag.Parse()

	if *verbose {
		paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	attrs := config.DefaultAttributes()
	if *attrsPath != "" {
		loaded, err := config.LoadAttributes(*attrsPath)
		if err != nil {
			log.Fatalf("Failed to load attributes: %v", err)
		}
		attrs = loaded
	}
	if *text != "" {
		attrs.Text = *text
	}
	if *solid {
		attrs.GradientEnabled = false
	}

	cfg, err := attrs.Resolve()
	if err != nil {
		log.Fatalf("Invalid attributes: %v", err)
	}
	if *side < 1 {
		log.Fatalf("Invalid side %d", *side)
	}

	s := float64(*side)
	st := paint.NewState(cfg, nil)
	st.SetSide(s)
	path := hexgeom.ComputeHexagonPath(s, attrs.CornerRadius)

	if *dump {
		rec := render.NewRecorder()
		render.Draw(rec, path, st, s)
		if err := rec.Dump(os.Stdout); err != nil {
			log.Fatalf("Failed to dump passes: %v", err)
		}
		return
	}

	canvas := render.NewRasterCanvas(*side, *side)
	defer canvas.Close()
	passes := render.Draw(canvas, path, st, s)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer f.Close()
	if err := canvas.EncodePNG(f); err != nil {
		log.Fatalf("Failed to encode png: %v", err)
	}
	log.Printf("Wrote %s (%dx%d, passes: %v)", *out, *side, *side, passes)
}
