// pkg/hexmap/honeycomb.go
package hexmap

import "math"

// Ring returns the hexes at exactly radius steps from center, starting south
// west of it and walking counter-clockwise.
func Ring(center Hex, radius int) []Hex {
	if radius <= 0 {
		return []Hex{center}
	}
	results := make([]Hex, 0, 6*radius)
	h := center.Add(NeighborDirections[4].Scale(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			results = append(results, h)
			h = h.Neighbor(side)
		}
	}
	return results
}

// Spiral returns the first n hexes of a spiral around center, ring by ring.
func Spiral(center Hex, n int) []Hex {
	results := make([]Hex, 0, max(n, 0))
	for radius := 0; len(results) < n; radius++ {
		for _, h := range Ring(center, radius) {
			if len(results) == n {
				break
			}
			results = append(results, h)
		}
	}
	return results
}

// Honeycomb places pointy-top cells of one size into a box. Cells are
// Spacing apart; each cell's hexagon has circumradius CellRadius.
type Honeycomb struct {
	Cells            []Hex
	Spacing          float64
	CellRadius       float64
	OriginX, OriginY float64 // пиксельный центр гекса {0, 0}
}

// FitHoneycomb spirals n cells and scales them to fit the box (x, y, w, h).
// fill in (0, 1] is the ratio of cell radius to spacing; below 1 leaves gaps.
func FitHoneycomb(n int, x, y, w, h, fill float64) Honeycomb {
	hc := Honeycomb{Cells: Spiral(Hex{}, n)}
	if n <= 0 || w <= 0 || h <= 0 {
		return hc
	}
	if fill <= 0 || fill > 1 {
		fill = 1
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range hc.Cells {
		px, py := c.ToPixel(1)
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}

	// каждая ячейка занимает квадрат 2R×2R вокруг центра
	hc.Spacing = math.Min(w/(maxX-minX+2*fill), h/(maxY-minY+2*fill))
	hc.CellRadius = hc.Spacing * fill
	hc.OriginX = x + w/2 - (minX+maxX)/2*hc.Spacing
	hc.OriginY = y + h/2 - (minY+maxY)/2*hc.Spacing
	return hc
}

// CellBox returns the square box of cell i.
func (hc Honeycomb) CellBox(i int) (x, y, side float64) {
	cx, cy := hc.Cells[i].ToPixel(hc.Spacing)
	return hc.OriginX + cx - hc.CellRadius, hc.OriginY + cy - hc.CellRadius, 2 * hc.CellRadius
}

// CellAt returns the index of the cell under the pixel, or -1.
func (hc Honeycomb) CellAt(px, py float64) int {
	h := PixelToHex(px-hc.OriginX, py-hc.OriginY, hc.Spacing)
	for i, c := range hc.Cells {
		if c == h {
			return i
		}
	}
	return -1
}
