package render

import (
	"fmt"
	"io"

	"go-hexagon-glyph/pkg/hexgeom"
	"go-hexagon-glyph/pkg/paint"
)

// Op is one recorded paint operation.
type Op struct {
	Pass   Pass
	Path   hexgeom.HexagonPath
	Shadow paint.ShadowPaint
	Fill   paint.FillPaint
	Text   string
	X, Y   float64
	Style  paint.TextStyle
}

// Recorder is a Canvas that keeps the operations instead of painting them.
// Text is measured with real font metrics.
type Recorder struct {
	Ops   []Op
	faces *FaceCache
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{faces: NewFaceCache()}
}

func (r *Recorder) DrawShadow(path hexgeom.HexagonPath, p paint.ShadowPaint) {
	r.Ops = append(r.Ops, Op{Pass: PassShadow, Path: path, Shadow: p})
}

func (r *Recorder) FillPath(path hexgeom.HexagonPath, p paint.FillPaint) {
	r.Ops = append(r.Ops, Op{Pass: PassFill, Path: path, Fill: p})
}

func (r *Recorder) MeasureText(s string, style paint.TextStyle) (TextMetrics, bool) {
	return r.faces.Measure(s, style)
}

func (r *Recorder) DrawText(s string, x, y float64, style paint.TextStyle) {
	r.Ops = append(r.Ops, Op{Pass: PassText, Text: s, X: x, Y: y, Style: style})
}

// Reset drops the recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Dump writes a human-readable listing of the recorded operations.
func (r *Recorder) Dump(w io.Writer) error {
	for i, op := range r.Ops {
		var err error
		switch op.Pass {
		case PassShadow:
			_, err = fmt.Fprintf(w, "%d shadow color=%s blur=%.2f offset=(%.2f,%.2f)\n",
				i, paint.FormatHexColor(op.Shadow.Color), op.Shadow.BlurRadius, op.Shadow.OffsetX, op.Shadow.OffsetY)
		case PassFill:
			if op.Fill.Kind == paint.FillLinearGradient {
				g := op.Fill.Gradient
				_, err = fmt.Fprintf(w, "%d fill %s %s->%s (%.2f,%.2f)->(%.2f,%.2f) corner=%.2f\n",
					i, op.Fill.Kind, paint.FormatHexColor(g.StartColor), paint.FormatHexColor(g.EndColor),
					g.Start.X, g.Start.Y, g.End.X, g.End.Y, op.Path.EffectiveCornerRadius())
			} else {
				_, err = fmt.Fprintf(w, "%d fill %s %s corner=%.2f\n",
					i, op.Fill.Kind, paint.FormatHexColor(op.Fill.Color), op.Path.EffectiveCornerRadius())
			}
		case PassText:
			_, err = fmt.Fprintf(w, "%d text %q at (%.2f,%.2f) size=%.2f color=%s font=%s\n",
				i, op.Text, op.X, op.Y, op.Style.Size, paint.FormatHexColor(op.Style.Color), op.Style.Typeface.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
