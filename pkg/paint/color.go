// pkg/paint/color.go
package paint

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"go-hexagon-glyph/pkg/utils"
)

// ErrInvalidColor is returned for color strings that are not #RRGGBB or #AARRGGBB.
var ErrInvalidColor = errors.New("invalid color")

var (
	White = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// SolidFillColor is the hexagon body when the gradient is off.
	SolidFillColor = MustParseHexColor("#FFFFFF")
	// SolidTextColor — светло-голубой цвет текста на белой заливке
	SolidTextColor    = MustParseHexColor("#C1E1F9")
	GradientTextColor = White

	DefaultShadowColor        = MustParseHexColor("#80B8E6")
	DefaultGradientStartColor = MustParseHexColor("#FFDF00")
	DefaultGradientEndColor   = MustParseHexColor("#FF8C00")
)

// ParseHexColor parses "#RRGGBB" (opaque) or "#AARRGGBB".
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c := color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}
	if len(hex) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, nil
}

// MustParseHexColor is ParseHexColor for package-level defaults.
func MustParseHexColor(s string) color.NRGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FormatHexColor returns c as "#RRGGBB", or "#AARRGGBB" when not opaque.
func FormatHexColor(c color.NRGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// LerpColor interpolates every channel of a and b, t in [0, 1].
func LerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(utils.Lerp(float64(x), float64(y), t) + 0.5)
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
