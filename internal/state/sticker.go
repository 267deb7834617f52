package state

import "github.com/google/uuid"

// Sticker is a glyph placed at a point. It can be dragged into place until the
// pointer is released.
type Sticker struct {
	id    string
	at    Point
	glyph string
	size  float64
}

var _ Command = (*Sticker)(nil)

func NewSticker(p Point, glyph string, size float64) *Sticker {
	return &Sticker{
		id:    uuid.NewString(),
		at:    p,
		glyph: glyph,
		size:  size,
	}
}

func (s *Sticker) ID() string { return s.id }
func (s *Sticker) Kind() Kind { return KindSticker }
func (s *Sticker) Position() Point { return s.at }
func (s *Sticker) Glyph() string { return s.glyph }
func (s *Sticker) Size() float64 { return s.size }
func (s *Sticker) Reposition(p Point) { s.at = p }

func (s *Sticker) Drag(p Point) { s.Reposition(p) }

func (s *Sticker) Display(surface Surface) {
	surface.DrawGlyph(s.glyph, s.at, s.size, 1)
}
