// internal/config/attributes.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"

	"go-hexagon-glyph/pkg/layout"
	"go-hexagon-glyph/pkg/paint"
)

// ErrInvalidAttribute is returned by Resolve for values that cannot be parsed.
var ErrInvalidAttribute = errors.New("invalid attribute")

// Attributes are the user-facing options of one hexagon view. Colors are
// "#RRGGBB" or "#AARRGGBB" strings.
type Attributes struct {
	Text               string  `json:"text"`
	GradientEnabled    bool    `json:"gradientEnabled"`
	ShadowColor        string  `json:"shadowColor"`
	ShadowRadius       float64 `json:"shadowRadius"`
	ShadowOffsetX      float64 `json:"shadowOffsetX"`
	ShadowOffsetY      float64 `json:"shadowOffsetY"`
	GradientStartColor string  `json:"gradientStartColor"`
	GradientEndColor   string  `json:"gradientEndColor"`
	FontPath           string  `json:"font"`
	CornerRadius       float64 `json:"cornerRadius"`
}

// DefaultAttributes returns the stock options.
func DefaultAttributes() Attributes {
	d := paint.DefaultConfig()
	return Attributes{
		Text:               d.Text,
		GradientEnabled:    d.GradientEnabled,
		ShadowColor:        paint.FormatHexColor(d.ShadowColor),
		ShadowRadius:       d.ShadowRadius,
		ShadowOffsetX:      d.ShadowOffsetX,
		ShadowOffsetY:      d.ShadowOffsetY,
		GradientStartColor: paint.FormatHexColor(d.GradientStartColor),
		GradientEndColor:   paint.FormatHexColor(d.GradientEndColor),
		CornerRadius:       layout.DefaultCornerRadius,
	}
}

// LoadAttributes reads a JSON attribute file. Keys missing from the file
// keep their defaults.
func LoadAttributes(path string) (Attributes, error) {
	attrs := DefaultAttributes()

	file, err := os.ReadFile(path)
	if err != nil {
		return attrs, fmt.Errorf("failed to read attributes file: %w", err)
	}
	if err := json.Unmarshal(file, &attrs); err != nil {
		return attrs, fmt.Errorf("failed to unmarshal attributes: %w", err)
	}
	return attrs, nil
}

// Resolve parses the attributes into plain paint values. A font that fails
// to load falls back to the default typeface; bad colors are errors.
func (a Attributes) Resolve() (paint.Config, error) {
	cfg := paint.Config{
		Text:            a.Text,
		GradientEnabled: a.GradientEnabled,
		ShadowRadius:    a.ShadowRadius,
		ShadowOffsetX:   a.ShadowOffsetX,
		ShadowOffsetY:   a.ShadowOffsetY,
	}

	colors := []struct {
		name string
		src  string
		dst  *color.NRGBA
	}{
		{"shadowColor", a.ShadowColor, &cfg.ShadowColor},
		{"gradientStartColor", a.GradientStartColor, &cfg.GradientStartColor},
		{"gradientEndColor", a.GradientEndColor, &cfg.GradientEndColor},
	}
	for _, c := range colors {
		v, err := paint.ParseHexColor(c.src)
		if err != nil {
			return paint.Config{}, fmt.Errorf("%w %s: %w", ErrInvalidAttribute, c.name, err)
		}
		*c.dst = v
	}

	cfg.Typeface = paint.LoadTypefaceOrDefault(a.FontPath)
	return cfg, nil
}
