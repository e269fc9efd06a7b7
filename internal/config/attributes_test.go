package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-hexagon-glyph/pkg/paint"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultAttributesResolve(t *testing.T) {
	cfg, err := DefaultAttributes().Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := paint.DefaultConfig()
	if cfg.Text != want.Text || cfg.GradientEnabled != want.GradientEnabled {
		t.Errorf("text/gradient = %q/%v", cfg.Text, cfg.GradientEnabled)
	}
	if cfg.ShadowColor != want.ShadowColor || cfg.ShadowRadius != 10 {
		t.Errorf("shadow = %v r=%v", cfg.ShadowColor, cfg.ShadowRadius)
	}
	if cfg.GradientStartColor != paint.DefaultGradientStartColor || cfg.GradientEndColor != paint.DefaultGradientEndColor {
		t.Errorf("gradient = %v..%v", cfg.GradientStartColor, cfg.GradientEndColor)
	}
	if cfg.Typeface != paint.DefaultTypeface() {
		t.Errorf("typeface = %v, want default", cfg.Typeface)
	}
}

func TestLoadAttributesKeepsDefaults(t *testing.T) {
	path := writeFile(t, "attrs.json", `{"text": "q", "shadowRadius": 4, "gradientEnabled": false}`)
	attrs, err := LoadAttributes(path)
	if err != nil {
		t.Fatalf("LoadAttributes: %v", err)
	}
	if attrs.Text != "q" || attrs.ShadowRadius != 4 || attrs.GradientEnabled {
		t.Errorf("overrides not applied: %+v", attrs)
	}
	def := DefaultAttributes()
	if attrs.ShadowColor != def.ShadowColor || attrs.CornerRadius != def.CornerRadius {
		t.Errorf("defaults lost: %+v", attrs)
	}
}

func TestLoadAttributesErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }},
		{"malformed", func(t *testing.T) string { return writeFile(t, "bad.json", `{"text": `) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadAttributes(tt.path(t)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestResolveInvalidColor(t *testing.T) {
	attrs := DefaultAttributes()
	attrs.GradientEndColor = "orange"
	_, err := attrs.Resolve()
	if !errors.Is(err, ErrInvalidAttribute) || !errors.Is(err, paint.ErrInvalidColor) {
		t.Fatalf("err = %v, want ErrInvalidAttribute wrapping ErrInvalidColor", err)
	}
}

func TestResolveFontFallback(t *testing.T) {
	attrs := DefaultAttributes()
	attrs.FontPath = writeFile(t, "broken.ttf", "not a font")
	cfg, err := attrs.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Typeface != paint.DefaultTypeface() {
		t.Errorf("broken font did not fall back to default")
	}
}

func TestLoadServer(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MAX_SIDE", "256")
	t.Setenv("READ_TIMEOUT", "abc")

	cfg := LoadServer()
	if cfg.Port != "8081" || cfg.MaxSide != 256 {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.ReadTimeout != 10 {
		t.Errorf("bad int must keep default, got %d", cfg.ReadTimeout)
	}
	if cfg.Environment != "development" {
		t.Errorf("environment = %q", cfg.Environment)
	}
}
