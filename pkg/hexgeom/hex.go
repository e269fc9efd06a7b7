// pkg/hexgeom/hex.go
package hexgeom

import (
	"math"

	"go-hexagon-glyph/pkg/utils"
)

const (
	// VertexCount — число вершин шестиугольника
	VertexCount = 6
	// StartAngleDeg is the polar angle of the first vertex. Together with
	// StepAngleDeg it gives a pointy-top hexagon.
	StartAngleDeg = -30.0
	StepAngleDeg  = 60.0
)

// Point is a 2D coordinate in viewport space (origin top-left, y down).
type Point struct {
	X, Y float64
}

// Add возвращает сумму двух точек
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub возвращает разность двух точек
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Scale multiplies both coordinates by f.
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Len returns the Euclidean length of p seen as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and o.
func (p Point) Dist(o Point) float64 { return p.Sub(o).Len() }

// HexagonPath is the closed six-vertex outline inscribed in a square viewport.
// Vertices are stored raw; CornerRadius only affects how the outline is
// turned into drawable segments (see Corners and Walk).
type HexagonPath struct {
	Vertices     [VertexCount]Point
	Center       Point
	Radius       float64
	CornerRadius float64
}

// ComputeHexagonPath builds the hexagon for a square viewport of the given side.
// Negative or NaN inputs are treated as zero; a zero side collapses every
// vertex onto the center.
func ComputeHexagonPath(side, cornerRadius float64) HexagonPath {
	side = utils.NonNegative(side)
	mid := side / 2

	p := HexagonPath{
		Center:       Point{X: mid, Y: mid},
		Radius:       mid,
		CornerRadius: utils.NonNegative(cornerRadius),
	}
	for i := 0; i < VertexCount; i++ {
		angle := VertexAngle(i)
		p.Vertices[i] = Point{
			X: mid + mid*math.Cos(angle),
			Y: mid + mid*math.Sin(angle),
		}
	}
	return p
}

// VertexAngle returns the polar angle of vertex i in radians.
func VertexAngle(i int) float64 {
	return utils.ToRadians(StepAngleDeg*float64(i) + StartAngleDeg)
}

// IsEmpty reports whether the path has no visible area.
func (p HexagonPath) IsEmpty() bool {
	return p.Radius <= 0
}

// EdgeLength returns the length of one side of the hexagon. For a regular
// hexagon it equals the circumradius.
func (p HexagonPath) EdgeLength() float64 {
	return p.Vertices[0].Dist(p.Vertices[1])
}

// Bounds returns the axis-aligned bounding box of the raw vertices.
func (p HexagonPath) Bounds() (min, max Point) {
	min = Point{X: math.Inf(1), Y: math.Inf(1)}
	max = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, v := range p.Vertices {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max
}
