package render

import (
	"go-hexagon-glyph/pkg/paint"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// maxCachedFaces bounds the cache; a resizing window produces a new text size
// on every layout pass.
const maxCachedFaces = 8

type faceKey struct {
	typeface *paint.Typeface
	size     float64
}

// FaceCache builds x/image font faces on demand. Each view owns its own.
type FaceCache struct {
	faces map[faceKey]font.Face
}

// NewFaceCache creates an empty cache.
func NewFaceCache() *FaceCache {
	return &FaceCache{faces: make(map[faceKey]font.Face)}
}

// Face returns the face for (typeface, size) at 72 DPI, so size is in pixels.
func (c *FaceCache) Face(tf *paint.Typeface, size float64) (font.Face, error) {
	key := faceKey{typeface: tf, size: size}
	if face, ok := c.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(tf.Font(), &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	if len(c.faces) >= maxCachedFaces {
		c.Clear()
	}
	c.faces[key] = face
	return face, nil
}

// Measure implements Canvas.MeasureText for x/image based canvases.
func (c *FaceCache) Measure(s string, style paint.TextStyle) (TextMetrics, bool) {
	if style.Typeface == nil || style.Typeface.Font() == nil {
		return TextMetrics{}, false
	}
	face, err := c.Face(style.Typeface, style.Size)
	if err != nil {
		paint.Logger().Warn("render: face creation failed", "err", err)
		return TextMetrics{}, false
	}
	m := face.Metrics()
	return TextMetrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Advance: fixedToFloat(font.MeasureString(face, s)),
	}, true
}

// Clear closes and drops every cached face.
func (c *FaceCache) Clear() {
	for k, face := range c.faces {
		face.Close()
		delete(c.faces, k)
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
