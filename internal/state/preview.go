package state

// Preview is the transient hint drawn under an idle pointer.
type Preview interface {
	Displayable
}

const (
	previewLineWidth = 1
	previewAlpha     = 0.5
)

// PenPreview outlines the marker tip.
type PenPreview struct {
	At    Point
	Width float64
}

func (p *PenPreview) Update(at Point, width float64) {
	p.At = at
	p.Width = width
}

func (p *PenPreview) Display(s Surface) {
	s.StrokeCircle(p.At, p.Width/2, previewLineWidth)
}

// StickerPreview ghosts the selected sticker.
type StickerPreview struct {
	At    Point
	Glyph string
	Size  float64
}

func (p *StickerPreview) Update(at Point, glyph string, size float64) {
	p.At = at
	p.Glyph = glyph
	p.Size = size
}

func (p *StickerPreview) Display(s Surface) {
	s.DrawGlyph(p.Glyph, p.At, p.Size, previewAlpha)
}
