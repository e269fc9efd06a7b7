package render

import (
	"image"
	"testing"
)

func TestWhitePixelIsSingleInnerPixel(t *testing.T) {
	if b := WhitePixel.Bounds(); b != image.Rect(1, 1, 2, 2) {
		t.Errorf("WhitePixel bounds = %v, want (1,1)-(2,2)", b)
	}
}

func TestGaussianTapsNormalized(t *testing.T) {
	for _, sigma := range []float64{0.5, 2, 40} {
		offsets, weights := gaussianTaps(sigma)
		if len(offsets) > 2*maxBlurTaps+1 {
			t.Errorf("sigma %v: %d taps, want at most %d", sigma, len(offsets), 2*maxBlurTaps+1)
		}
		sum := float32(0)
		for _, w := range weights {
			sum += w
		}
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("sigma %v: weights sum to %v", sigma, sum)
		}
	}
}
