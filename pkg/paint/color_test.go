package paint

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#80B8E6", color.NRGBA{0x80, 0xB8, 0xE6, 0xFF}, false},
		{"FFDF00", color.NRGBA{0xFF, 0xDF, 0x00, 0xFF}, false},
		{"#80FF8C00", color.NRGBA{0xFF, 0x8C, 0x00, 0x80}, false},
		{"#c1e1f9", color.NRGBA{0xC1, 0xE1, 0xF9, 0xFF}, false},
		{"#FFF", color.NRGBA{}, true},
		{"#GGGGGG", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("err = %v, want ErrInvalidColor", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatHexColor(t *testing.T) {
	if got := FormatHexColor(DefaultShadowColor); got != "#80B8E6" {
		t.Errorf("got %s", got)
	}
	if got := FormatHexColor(color.NRGBA{R: 0xFF, A: 0x80}); got != "#80FF0000" {
		t.Errorf("got %s", got)
	}
}

func TestLoadTypefaceFallback(t *testing.T) {
	if got := LoadTypefaceOrDefault(""); got != DefaultTypeface() {
		t.Errorf("empty path should select default")
	}
	if got := LoadTypefaceOrDefault("does/not/exist.ttf"); got != DefaultTypeface() {
		t.Errorf("missing file should fall back to default")
	}
	if _, err := ParseTypeface("junk", []byte("not a font")); !errors.Is(err, ErrInvalidTypeface) {
		t.Errorf("err = %v, want ErrInvalidTypeface", err)
	}
	if DefaultTypeface().Font() == nil {
		t.Errorf("default typeface has no parsed font")
	}
}
