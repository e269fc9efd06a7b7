package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"go-hexagon-glyph/pkg/hexgeom"
	"go-hexagon-glyph/pkg/paint"
)

func renderRaster(t *testing.T, cfg paint.Config, side int) image.Image {
	t.Helper()
	c := NewRasterCanvas(side, side)
	defer c.Close()
	st := newTestState(cfg, float64(side))
	Draw(c, hexgeom.ComputeHexagonPath(float64(side), 6), st, float64(side))
	return c.Image()
}

func TestRasterFillsInterior(t *testing.T) {
	img := renderRaster(t, paint.DefaultConfig(), 64)
	_, _, _, a := img.At(10, 32).RGBA()
	if a != 0xFFFF {
		t.Errorf("interior alpha = %#x, want opaque", a)
	}
}

func TestRasterCornersStayTransparent(t *testing.T) {
	cfg := paint.DefaultConfig()
	cfg.ShadowColor = color.NRGBA{}
	img := renderRaster(t, cfg, 64)
	for _, p := range []image.Point{{0, 0}, {63, 0}, {0, 63}, {63, 63}} {
		if _, _, _, a := img.At(p.X, p.Y).RGBA(); a != 0 {
			t.Errorf("corner %v alpha = %#x, want 0", p, a)
		}
	}
}

func TestRasterSolidFillIsWhite(t *testing.T) {
	cfg := paint.DefaultConfig()
	cfg.GradientEnabled = false
	cfg.Text = ""
	img := renderRaster(t, cfg, 64)
	r, g, b, a := img.At(32, 32).RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("center = %#x %#x %#x %#x, want white", r, g, b, a)
	}
}

func TestRasterZeroSide(t *testing.T) {
	c := NewRasterCanvas(0, 0)
	defer c.Close()
	st := newTestState(paint.DefaultConfig(), 0)
	if got := Draw(c, hexgeom.ComputeHexagonPath(0, 6), st, 0); got != nil {
		t.Errorf("passes = %v, want none", got)
	}
}

func TestRasterEncodePNG(t *testing.T) {
	c := NewRasterCanvas(32, 32)
	defer c.Close()
	st := newTestState(paint.DefaultConfig(), 32)
	Draw(c, hexgeom.ComputeHexagonPath(32, 4), st, 32)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("bounds = %v", b)
	}
}

func TestGaussianBlurSpreadsAndKeepsMass(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 21, 21))
	img.SetRGBA(10, 10, color.RGBA{A: 255})
	gaussianBlur(img, 2)

	if a := img.RGBAAt(10, 10).A; a == 0 || a == 255 {
		t.Errorf("center alpha = %d, want partial", a)
	}
	if img.RGBAAt(12, 10).A == 0 {
		t.Error("blur did not spread horizontally")
	}
	if img.RGBAAt(0, 0).A != 0 {
		t.Error("blur reached the far corner")
	}
}

func TestBoxRadii(t *testing.T) {
	if r := boxRadii(0); r != [3]int{} {
		t.Errorf("sigma 0 radii = %v", r)
	}
	r := boxRadii(5)
	for i, v := range r {
		if v < 3 || v > 6 {
			t.Errorf("radius %d = %d out of range", i, v)
		}
	}
}

func TestShadowExtent(t *testing.T) {
	path := hexgeom.ComputeHexagonPath(60, 6)
	tests := []struct {
		name      string
		sigma     float64
		wantSigma float64
		wantPad   int
	}{
		{"zero", 0, 0, 0},
		{"negative", -3, 0, 0},
		{"nan", math.NaN(), 0, 0},
		{"small", 2, 2, 6},
		{"capped", 1e12, 20, 60},
		{"inf", math.Inf(1), 20, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sigma, pad := shadowExtent(path, tt.sigma)
			if sigma != tt.wantSigma || pad != tt.wantPad {
				t.Errorf("shadowExtent(%v) = %v, %d, want %v, %d", tt.sigma, sigma, pad, tt.wantSigma, tt.wantPad)
			}
		})
	}
}

func TestRasterHugeShadowRadius(t *testing.T) {
	for _, radius := range []float64{1e4, 1e12} {
		c := NewRasterCanvas(64, 64)
		st := newTestState(paint.DefaultConfig(), 64)
		st.SetShadow(color.NRGBA{R: 40, G: 40, B: 40, A: 200}, radius, 0, 0)

		passes := Draw(c, hexgeom.ComputeHexagonPath(64, 6), st, 64)
		if len(passes) != 3 {
			t.Errorf("radius %g: passes = %v", radius, passes)
		}
		if _, _, _, a := c.Image().At(32, 32).RGBA(); a != 0xFFFF {
			t.Errorf("radius %g: center alpha = %#x, want opaque", radius, a)
		}
		c.Close()
	}
}
