package paint

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// ErrInvalidTypeface is returned when font data cannot be parsed.
var ErrInvalidTypeface = errors.New("invalid typeface")

// Typeface is a parsed TrueType/OpenType font. Backends build sized faces
// from it: ebiten through Font, gg through Data.
type Typeface struct {
	Name string
	Data []byte
	font *opentype.Font
}

// Font returns the parsed font.
func (t *Typeface) Font() *opentype.Font {
	return t.font
}

// ParseTypeface validates data and wraps it into a Typeface.
func ParseTypeface(name string, data []byte) (*Typeface, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidTypeface, name, err)
	}
	return &Typeface{Name: name, Data: data, font: f}, nil
}

// LoadTypeface reads a font file from disk.
func LoadTypeface(path string) (*Typeface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	return ParseTypeface(filepath.Base(path), data)
}

var defaultTypeface = sync.OnceValue(func() *Typeface {
	t, err := ParseTypeface("Go Bold", gobold.TTF)
	if err != nil {
		panic(err)
	}
	return t
})

// DefaultTypeface is used whenever no font resource is configured or the
// configured one fails to load.
func DefaultTypeface() *Typeface {
	return defaultTypeface()
}

// LoadTypefaceOrDefault loads path and falls back to DefaultTypeface on any
// error. An empty path selects the default silently.
func LoadTypefaceOrDefault(path string) *Typeface {
	if path == "" {
		return DefaultTypeface()
	}
	t, err := LoadTypeface(path)
	if err != nil {
		Logger().Warn("paint: font fallback", "path", path, "err", err)
		return DefaultTypeface()
	}
	return t
}
