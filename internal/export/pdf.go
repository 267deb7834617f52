package export

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"

	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
)

// glyphScale is the raster resolution of stickers embedded in a PDF.
const glyphScale = 4

// pdfSurface replays commands as vector strokes on a single page sized to
// the drawing surface, one point per surface unit. Stickers are embedded as
// transparent PNGs so colour emoji survive.
type pdfSurface struct {
	pdf    *gofpdf.Fpdf
	fonts  *render.Fonts
	images map[string]float64
	err    error
}

var _ state.Surface = (*pdfSurface)(nil)

func (s *pdfSurface) Clear() {}

func (s *pdfSurface) StrokePolyline(pts []state.Point, width float64) {
	if len(pts) < 2 {
		return
	}
	s.pdf.SetLineWidth(width)
	s.pdf.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.pdf.LineTo(p.X, p.Y)
	}
	s.pdf.DrawPath("D")
}

func (s *pdfSurface) StrokeCircle(center state.Point, radius, width float64) {
	s.pdf.SetLineWidth(width)
	s.pdf.Circle(center.X, center.Y, radius, "D")
}

func (s *pdfSurface) DrawGlyph(glyph string, at state.Point, size, alpha float64) {
	if s.err != nil {
		return
	}
	name := fmt.Sprintf("glyph-%s-%g-%g", glyph, size, alpha)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	box, ok := s.images[name]
	if !ok {
		var buf bytes.Buffer
		var err error
		box, err = render.GlyphPNG(&buf, glyph, size, alpha, glyphScale, s.fonts)
		if err != nil {
			s.err = err
			return
		}
		s.pdf.RegisterImageOptionsReader(name, opts, &buf)
		s.images[name] = box
	}
	s.pdf.ImageOptions(name, at.X-box/2, at.Y-box/2, box, box, false, opts, 0, "")
}

// PDF writes cmds as a one-page vector PDF of width x height points.
func PDF(w io.Writer, cmds []state.Command, width, height int, fonts *render.Fonts) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	surface := &pdfSurface{pdf: pdf, fonts: fonts, images: make(map[string]float64)}
	surface.Clear()
	for _, cmd := range cmds {
		cmd.Display(surface)
	}
	if surface.err != nil {
		return fmt.Errorf("exporting pdf: %w", surface.err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("exporting pdf: %w", err)
	}
	log.Printf("[EXPORT] PDF with %d commands (%dx%d pt)", len(cmds), width, height)
	return nil
}
