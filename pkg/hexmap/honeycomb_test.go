package hexmap

import (
	"math"
	"testing"
)

func TestPixelRoundTrip(t *testing.T) {
	for _, h := range Spiral(Hex{}, 37) {
		x, y := h.ToPixel(20)
		if got := PixelToHex(x, y, 20); got != h {
			t.Errorf("PixelToHex(ToPixel(%v)) = %v", h, got)
		}
		// точка чуть в стороне от центра остаётся в том же гексе
		if got := PixelToHex(x+5, y-5, 20); got != h {
			t.Errorf("near %v: got %v", h, got)
		}
	}
}

func TestRingAndSpiral(t *testing.T) {
	for radius := 0; radius <= 3; radius++ {
		ring := Ring(Hex{Q: 2, R: -1}, radius)
		want := 6 * radius
		if radius == 0 {
			want = 1
		}
		if len(ring) != want {
			t.Fatalf("ring %d: %d hexes, want %d", radius, len(ring), want)
		}
		seen := map[Hex]bool{}
		for _, h := range ring {
			if d := h.Distance(Hex{Q: 2, R: -1}); d != radius {
				t.Errorf("ring %d: %v at distance %d", radius, h, d)
			}
			if seen[h] {
				t.Errorf("ring %d: duplicate %v", radius, h)
			}
			seen[h] = true
		}
	}

	s := Spiral(Hex{}, 8)
	if len(s) != 8 || s[0] != (Hex{}) {
		t.Fatalf("spiral = %v", s)
	}
	for i := 1; i < 7; i++ {
		if s[i].Distance(Hex{}) != 1 {
			t.Errorf("spiral[%d] = %v not in first ring", i, s[i])
		}
	}
	if len(Spiral(Hex{}, 0)) != 0 {
		t.Error("empty spiral not empty")
	}
}

func TestNeighborsTouch(t *testing.T) {
	for dir := 0; dir < 6; dir++ {
		x, y := Hex{}.Neighbor(dir).ToPixel(10)
		if d := math.Hypot(x, y); math.Abs(d-10*Sqrt3) > 1e-9 {
			t.Errorf("dir %d: distance %v, want %v", dir, d, 10*Sqrt3)
		}
	}
}

func TestFitHoneycomb(t *testing.T) {
	const w, h = 800.0, 500.0
	hc := FitHoneycomb(8, 0, 50, w, h, 0.9)
	if len(hc.Cells) != 8 {
		t.Fatalf("cells = %d", len(hc.Cells))
	}
	if hc.Spacing <= 0 || math.Abs(hc.CellRadius-hc.Spacing*0.9) > 1e-9 {
		t.Fatalf("spacing = %v radius = %v", hc.Spacing, hc.CellRadius)
	}
	for i := range hc.Cells {
		x, y, side := hc.CellBox(i)
		if x < -1e-9 || y < 50-1e-9 || x+side > w+1e-9 || y+side > 50+h+1e-9 {
			t.Errorf("cell %d box (%v, %v, %v) outside the area", i, x, y, side)
		}
		if got := hc.CellAt(x+side/2, y+side/2); got != i {
			t.Errorf("CellAt center of %d = %d", i, got)
		}
	}
	if hc.CellAt(-1000, -1000) != -1 {
		t.Error("far point hit a cell")
	}
}

func TestFitHoneycombDegenerate(t *testing.T) {
	hc := FitHoneycomb(3, 0, 0, 0, 100, 1)
	if hc.Spacing != 0 || len(hc.Cells) != 3 {
		t.Errorf("zero-width honeycomb = %+v", hc)
	}
}
