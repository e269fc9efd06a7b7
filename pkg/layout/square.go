// Package layout keeps the hexagon view square and derives its text size.
package layout

import (
	"math"

	"go-hexagon-glyph/pkg/utils"
)

const (
	// TextSizeRatio is 0.6 × 2/3 of the side, kept as one constant so the
	// product is exact.
	TextSizeRatio = 0.4
	// DefaultCornerRadius is the rounding applied to every hexagon vertex.
	DefaultCornerRadius = 12.0
)

// Measure returns the side of the square the view occupies inside the
// requested box: the smaller of the two dimensions. Invalid inputs measure 0.
func Measure(requestedWidth, requestedHeight float64) float64 {
	return math.Min(utils.NonNegative(requestedWidth), utils.NonNegative(requestedHeight))
}

// MeasureInt is Measure for integer layout passes (ebiten Layout, image sizes).
func MeasureInt(requestedWidth, requestedHeight int) int {
	return max(0, min(requestedWidth, requestedHeight))
}

// TextSize returns the label size for a view of the given side.
func TextSize(side float64) float64 {
	return utils.NonNegative(side) * TextSizeRatio
}
