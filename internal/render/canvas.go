// Package render rasterises a sketchpad onto a gg context.
package render

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"LocalSketch/internal/state"
)

var background = gg.RGB(1, 1, 1)

// Fonts loads sticker faces. Faces are cached per pixel size.
type Fonts struct {
	source *text.FontSource
	mu     sync.Mutex
	faces  map[float64]text.Face
}

// LoadFonts reads an emoji-capable font from path. An empty path falls back to
// the Go regular font, which draws most symbols but no colour emoji.
func LoadFonts(path string) (*Fonts, error) {
	var (
		src *text.FontSource
		err error
	)
	if path == "" {
		src, err = text.NewFontSource(goregular.TTF)
	} else {
		src, err = text.NewFontSourceFromFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading sticker font %q: %w", path, err)
	}
	return &Fonts{source: src, faces: make(map[float64]text.Face)}, nil
}

func (f *Fonts) face(size float64) text.Face {
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := f.source.Face(size)
	f.faces[size] = face
	return face
}

func (f *Fonts) Close() error {
	return f.source.Close()
}

// Canvas is a state.Surface backed by a gg context. Every coordinate, width
// and glyph size is multiplied by the canvas scale, so the same commands
// render the same picture at any resolution.
type Canvas struct {
	dc    *gg.Context
	scale float64
	fonts *Fonts
	err   error
}

var _ state.Surface = (*Canvas)(nil)

// NewCanvas allocates a width x height surface rendered at scale.
func NewCanvas(width, height int, scale float64, fonts *Fonts) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	dc := gg.NewContext(int(float64(width)*scale), int(float64(height)*scale))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Canvas{dc: dc, scale: scale, fonts: fonts}
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

// Clear also forgets any earlier drawing error, since a redraw starts over.
func (c *Canvas) Clear() {
	c.err = nil
	c.dc.ClearWithColor(background)
}

func (c *Canvas) StrokePolyline(pts []state.Point, width float64) {
	if len(pts) < 2 {
		return
	}
	c.dc.SetRGB(0, 0, 0)
	c.dc.SetLineWidth(width * c.scale)
	c.dc.MoveTo(pts[0].X*c.scale, pts[0].Y*c.scale)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X*c.scale, p.Y*c.scale)
	}
	c.keep(c.dc.Stroke())
}

func (c *Canvas) StrokeCircle(center state.Point, radius, width float64) {
	c.dc.SetRGB(0, 0, 0)
	c.dc.SetLineWidth(width * c.scale)
	c.dc.DrawCircle(center.X*c.scale, center.Y*c.scale, radius*c.scale)
	c.keep(c.dc.Stroke())
}

func (c *Canvas) DrawGlyph(glyph string, at state.Point, size, alpha float64) {
	if c.fonts == nil || glyph == "" {
		return
	}
	c.dc.SetFont(c.fonts.face(size * c.scale))
	c.dc.SetRGBA(0, 0, 0, alpha)
	c.dc.DrawStringAnchored(glyph, at.X*c.scale, at.Y*c.scale, 0.5, 0.5)
}

// keep records the first drawing error.
func (c *Canvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// Err returns the first error hit while drawing, if any.
func (c *Canvas) Err() error { return c.err }

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG fails without writing anything if a draw call failed earlier.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return fmt.Errorf("drawing: %w", c.err)
	}
	return c.dc.EncodePNG(w)
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}

// GlyphPNG rasterises a single glyph on a transparent square of side
// box*scale, centered, and returns the box side in surface units.
func GlyphPNG(w io.Writer, glyph string, size, alpha, scale float64, fonts *Fonts) (float64, error) {
	if fonts == nil {
		return 0, fmt.Errorf("rendering %q: no sticker font", glyph)
	}
	box := size * 1.5
	side := int(box * scale)
	if side < 1 {
		side = 1
	}
	dc := gg.NewContext(side, side)
	defer dc.Close()

	dc.Clear()
	dc.SetFont(fonts.face(size * scale))
	dc.SetRGBA(0, 0, 0, alpha)
	dc.DrawStringAnchored(glyph, float64(side)/2, float64(side)/2, 0.5, 0.5)
	if err := dc.EncodePNG(w); err != nil {
		return 0, fmt.Errorf("encoding glyph %q: %w", glyph, err)
	}
	return box, nil
}
