package render

import (
	"go-hexagon-glyph/pkg/hexgeom"
	"go-hexagon-glyph/pkg/paint"
	"go-hexagon-glyph/pkg/utils"
)

// Pass identifies one paint operation of a frame.
type Pass int

const (
	PassShadow Pass = iota
	PassFill
	PassText
)

func (p Pass) String() string {
	switch p {
	case PassShadow:
		return "shadow"
	case PassFill:
		return "fill"
	case PassText:
		return "text"
	default:
		return "unknown"
	}
}

// Draw paints one frame onto c: shadow, then fill, then text. The order is
// fixed so that each pass lands on top of the previous one. It returns the
// passes actually issued. An empty path or an invalid side paints nothing; a
// label that cannot be measured only drops the text pass.
func Draw(c Canvas, path hexgeom.HexagonPath, st *paint.State, side float64) []Pass {
	if st == nil || path.IsEmpty() || !utils.IsFinite(side) || side <= 0 {
		return nil
	}
	passes := make([]Pass, 0, 3)

	c.DrawShadow(path, st.ShadowPaint())
	passes = append(passes, PassShadow)

	fp := st.FillPaint()
	if fp.Kind == paint.FillLinearGradient {
		// градиент всегда растягивается на текущий размер
		fp.Gradient.Start = hexgeom.Point{X: 0, Y: 0}
		fp.Gradient.End = hexgeom.Point{X: side, Y: side}
	}
	c.FillPath(path, fp)
	passes = append(passes, PassFill)

	if x, y, ok := textOrigin(c, st.Text(), side); ok {
		c.DrawText(st.Text().Content, x, y, st.Text())
		passes = append(passes, PassText)
	}
	return passes
}

// textOrigin centers the glyph box (not the baseline) on the viewport center.
func textOrigin(c Canvas, ts paint.TextStyle, side float64) (x, y float64, ok bool) {
	if ts.Content == "" || ts.Typeface == nil || !utils.IsFinite(ts.Size) || ts.Size <= 0 {
		paint.Logger().Debug("render: text pass skipped", "content", ts.Content, "size", ts.Size)
		return 0, 0, false
	}
	m, ok := c.MeasureText(ts.Content, ts)
	if !ok {
		paint.Logger().Warn("render: text not measurable", "typeface", ts.Typeface.Name)
		return 0, 0, false
	}

	mid := side / 2
	switch ts.Align {
	case paint.AlignLeft:
		x = mid
	case paint.AlignRight:
		x = mid - m.Advance
	default:
		x = mid - m.Advance/2
	}
	y = mid + (m.Ascent-m.Descent)/2
	return x, y, true
}
