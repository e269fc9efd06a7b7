package render

import (
	"image"
	"math"

	"go-hexagon-glyph/pkg/hexgeom"
)

// boxBlurPasses — три прохода box-фильтра дают почти гауссово ядро
const boxBlurPasses = 3

// shadowExtent caps sigma so the blur never reaches further than the hexagon
// is wide, and returns the capped sigma with the mask padding ceil(3σ).
func shadowExtent(path hexgeom.HexagonPath, sigma float64) (float64, int) {
	if sigma <= 0 || math.IsNaN(sigma) {
		return 0, 0
	}
	if maxSigma := path.Radius * 2 / 3; sigma > maxSigma {
		sigma = maxSigma
	}
	return sigma, int(math.Ceil(sigma * 3))
}

// boxRadii returns the radius of each box pass whose composition matches a
// Gaussian with the given sigma.
func boxRadii(sigma float64) [boxBlurPasses]int {
	var radii [boxBlurPasses]int
	if sigma <= 0 {
		return radii
	}
	ideal := math.Sqrt(12*sigma*sigma/boxBlurPasses + 1)
	lower := int(math.Floor(ideal))
	if lower%2 == 0 {
		lower--
	}
	upper := lower + 2
	m := int(math.Round((12*sigma*sigma - boxBlurPasses*float64(lower*lower) -
		4*boxBlurPasses*float64(lower) - 3*boxBlurPasses) / (-4*float64(lower) - 4)))
	for i := range radii {
		w := upper
		if i < m {
			w = lower
		}
		radii[i] = (w - 1) / 2
	}
	return radii
}

// gaussianBlur blurs img in place. img holds premultiplied pixels, so every
// channel is averaged independently.
func gaussianBlur(img *image.RGBA, sigma float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	tmp := make([]uint8, len(img.Pix))
	for _, r := range boxRadii(sigma) {
		if r <= 0 {
			continue
		}
		boxBlurH(tmp, img.Pix, w, h, img.Stride, r)
		boxBlurV(img.Pix, tmp, w, h, img.Stride, r)
	}
}

func boxBlurH(dst, src []uint8, w, h, stride, r int) {
	div := float64(2*r + 1)
	for y := 0; y < h; y++ {
		row := y * stride
		for ch := 0; ch < 4; ch++ {
			sum := 0
			for x := -r; x <= r; x++ {
				sum += int(src[row+clampIndex(x, w)*4+ch])
			}
			for x := 0; x < w; x++ {
				dst[row+x*4+ch] = uint8(math.Round(float64(sum) / div))
				sum += int(src[row+clampIndex(x+r+1, w)*4+ch])
				sum -= int(src[row+clampIndex(x-r, w)*4+ch])
			}
		}
	}
}

func boxBlurV(dst, src []uint8, w, h, stride, r int) {
	div := float64(2*r + 1)
	for x := 0; x < w; x++ {
		col := x * 4
		for ch := 0; ch < 4; ch++ {
			sum := 0
			for y := -r; y <= r; y++ {
				sum += int(src[clampIndex(y, h)*stride+col+ch])
			}
			for y := 0; y < h; y++ {
				dst[y*stride+col+ch] = uint8(math.Round(float64(sum) / div))
				sum += int(src[clampIndex(y+r+1, h)*stride+col+ch])
				sum -= int(src[clampIndex(y-r, h)*stride+col+ch])
			}
		}
	}
}

// clampIndex pins reads to the image edge. Silhouettes are padded, so the
// edge is empty.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
