package state

import "github.com/google/uuid"

// Stroke is a freehand polyline. Points only grow while the pointer is held.
type Stroke struct {
	id     string
	points []Point
	width  float64
}

var _ Command = (*Stroke)(nil)

// NewStroke begins a stroke at p.
func NewStroke(p Point, width float64) *Stroke {
	return &Stroke{
		id:     uuid.NewString(),
		points: []Point{p},
		width:  width,
	}
}

func (s *Stroke) ID() string { return s.id }
func (s *Stroke) Kind() Kind { return KindStroke }
func (s *Stroke) Width() float64 { return s.width }

// Points returns a copy of the stroke's points.
func (s *Stroke) Points() []Point {
	pts := make([]Point, len(s.points))
	copy(pts, s.points)
	return pts
}

// Extend appends p to the stroke.
func (s *Stroke) Extend(p Point) {
	s.points = append(s.points, p)
}

func (s *Stroke) Drag(p Point) { s.Extend(p) }

func (s *Stroke) Display(surface Surface) {
	if len(s.points) < 2 {
		return
	}
	surface.StrokePolyline(s.points, s.width)
}
