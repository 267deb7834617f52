package state

import "fmt"

// recorder is a Surface that logs every call as a string.
type recorder struct {
	ops []string
}

func (r *recorder) Clear() { r.ops = append(r.ops, "clear") }

func (r *recorder) StrokePolyline(pts []Point, width float64) {
	r.ops = append(r.ops, fmt.Sprintf("polyline %d w=%g", len(pts), width))
}

func (r *recorder) StrokeCircle(c Point, radius, width float64) {
	r.ops = append(r.ops, fmt.Sprintf("circle (%g,%g) r=%g", c.X, c.Y, radius))
}

func (r *recorder) DrawGlyph(glyph string, at Point, size, alpha float64) {
	r.ops = append(r.ops, fmt.Sprintf("glyph %s (%g,%g) %g a=%g", glyph, at.X, at.Y, size, alpha))
}
