package hexgeom

import "math"

// Corner describes how one vertex is replaced by a circular arc tangent to
// both incident edges. The arc runs from In to Out with increasing angle,
// which is the traversal direction of the vertex list.
type Corner struct {
	Vertex     Point
	In, Out    Point // tangent points on the incoming and outgoing edge
	Center     Point
	Radius     float64
	StartAngle float64
	Sweep      float64
}

// EndAngle returns StartAngle + Sweep.
func (c Corner) EndAngle() float64 {
	return c.StartAngle + c.Sweep
}

// IsSharp reports whether the corner is drawn without an arc.
func (c Corner) IsSharp() bool {
	return c.Radius <= 0
}

// Cubic returns the control points of the cubic Bézier that approximates the
// arc from In to Out. Valid for sweeps up to 90°; hexagon corners sweep 60°.
func (c Corner) Cubic() (c1, c2 Point) {
	if c.IsSharp() {
		return c.In, c.Out
	}
	k := 4.0 / 3.0 * math.Tan(c.Sweep/4) * c.Radius
	a0, a1 := c.StartAngle, c.EndAngle()
	c1 = c.In.Add(Point{X: -math.Sin(a0), Y: math.Cos(a0)}.Scale(k))
	c2 = c.Out.Sub(Point{X: -math.Sin(a1), Y: math.Cos(a1)}.Scale(k))
	return c1, c2
}

// EffectiveCornerRadius returns the rounding radius actually used. The
// tangent points may not pass the middle of an edge, so large radii shrink.
func (p HexagonPath) EffectiveCornerRadius() float64 {
	if p.CornerRadius <= 0 || p.IsEmpty() {
		return 0
	}
	// внутренний угол правильного шестиугольника — 120°
	halfInterior := math.Pi / 3
	limit := p.EdgeLength() / 2 * math.Tan(halfInterior)
	return math.Min(p.CornerRadius, limit)
}

// Corners computes the rounding geometry for every vertex, in vertex order.
func (p HexagonPath) Corners() [VertexCount]Corner {
	var out [VertexCount]Corner
	r := p.EffectiveCornerRadius()

	for i := 0; i < VertexCount; i++ {
		v := p.Vertices[i]
		if r == 0 {
			out[i] = Corner{Vertex: v, In: v, Out: v, Center: v}
			continue
		}
		prev := p.Vertices[(i+VertexCount-1)%VertexCount]
		next := p.Vertices[(i+1)%VertexCount]

		u1 := prev.Sub(v)
		u1 = u1.Scale(1 / u1.Len())
		u2 := next.Sub(v)
		u2 = u2.Scale(1 / u2.Len())

		interior := math.Acos(clampUnit(u1.X*u2.X + u1.Y*u2.Y))
		half := interior / 2
		tangentDist := r / math.Tan(half)

		bisector := u1.Add(u2)
		bisector = bisector.Scale(1 / bisector.Len())
		center := v.Add(bisector.Scale(r / math.Sin(half)))

		in := v.Add(u1.Scale(tangentDist))
		outPt := v.Add(u2.Scale(tangentDist))
		start := math.Atan2(in.Y-center.Y, in.X-center.X)

		out[i] = Corner{
			Vertex:     v,
			In:         in,
			Out:        outPt,
			Center:     center,
			Radius:     r,
			StartAngle: start,
			Sweep:      math.Pi - interior,
		}
	}
	return out
}

func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
