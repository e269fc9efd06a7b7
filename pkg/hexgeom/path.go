package hexgeom

// PathBuilder receives the drawable outline of a HexagonPath. Arc continues
// from the current point around (cx, cy) with increasing angle.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(cx, cy, radius, startAngle, endAngle float64)
	Close()
}

// Walk emits the rounded outline of p into b. Sharp corners become plain
// line joins. Nothing is emitted for an empty path.
func (p HexagonPath) Walk(b PathBuilder) {
	if p.IsEmpty() {
		return
	}
	corners := p.Corners()

	first := corners[0]
	b.MoveTo(first.Out.X, first.Out.Y)
	for i := 1; i <= VertexCount; i++ {
		c := corners[i%VertexCount]
		b.LineTo(c.In.X, c.In.Y)
		if !c.IsSharp() {
			b.Arc(c.Center.X, c.Center.Y, c.Radius, c.StartAngle, c.EndAngle())
		}
	}
	b.Close()
}

// CubicBuilder is a PathBuilder target that only understands Bézier curves.
type CubicBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// WalkCubic emits the rounded outline of p with every arc replaced by its
// cubic approximation.
func (p HexagonPath) WalkCubic(b CubicBuilder) {
	if p.IsEmpty() {
		return
	}
	corners := p.Corners()

	first := corners[0]
	b.MoveTo(first.Out.X, first.Out.Y)
	for i := 1; i <= VertexCount; i++ {
		c := corners[i%VertexCount]
		b.LineTo(c.In.X, c.In.Y)
		if !c.IsSharp() {
			c1, c2 := c.Cubic()
			b.CubicTo(c1.X, c1.Y, c2.X, c2.Y, c.Out.X, c.Out.Y)
		}
	}
	b.Close()
}
