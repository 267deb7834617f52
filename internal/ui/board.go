package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
)

// Board shows a pad and feeds it pointer events in surface coordinates.
// The surface is stretched to fill the widget.
type Board struct {
	widget.BaseWidget
	pad      *state.Pad
	fonts    *render.Fonts
	surface  *render.Canvas
	image    *canvas.Image
	width    float32
	height   float32
	readOnly bool
	// draggedOut is set once a held pointer leaves the board; moves are
	// ignored until the next press.
	draggedOut bool
}

var _ fyne.Widget = (*Board)(nil)
var _ fyne.Draggable = (*Board)(nil)
var _ desktop.Mouseable = (*Board)(nil)
var _ desktop.Hoverable = (*Board)(nil)

// NewBoard renders pad on a width x height surface. A read-only board ignores
// input and only follows changes made elsewhere, e.g. by a remote host.
func NewBoard(pad *state.Pad, width, height int, fonts *render.Fonts, readOnly bool) *Board {
	b := &Board{
		pad:      pad,
		fonts:    fonts,
		surface:  render.NewCanvas(width, height, 1, fonts),
		width:    float32(width),
		height:   float32(height),
		readOnly: readOnly,
	}
	pad.Render(b.surface)
	b.image = canvas.NewImageFromImage(b.surface.Image())
	b.image.FillMode = canvas.ImageFillStretch
	b.image.SetMinSize(fyne.NewSize(2*b.width, 2*b.height))
	pad.Subscribe(b.redraw)
	b.ExtendBaseWidget(b)
	return b
}

// SurfaceSize reports the surface resolution the board renders at.
func (b *Board) SurfaceSize() (int, int) {
	return int(b.width), int(b.height)
}

// SetSurfaceSize switches to a width x height surface, e.g. to match a
// host's drawing. Non-positive or unchanged sizes are ignored.
func (b *Board) SetSurfaceSize(width, height int) {
	if width <= 0 || height <= 0 || (float32(width) == b.width && float32(height) == b.height) {
		return
	}
	old := b.surface
	b.surface = render.NewCanvas(width, height, 1, b.fonts)
	b.width, b.height = float32(width), float32(height)
	_ = old.Close()
	b.image.SetMinSize(fyne.NewSize(2*b.width, 2*b.height))
	b.redraw()
}

// ShowDocument replaces the drawing with doc, first matching the surface to
// the document's size when it carries one.
func (b *Board) ShowDocument(doc state.Document) {
	b.SetSurfaceSize(doc.Width, doc.Height)
	b.pad.Load(doc)
}

func (b *Board) inside(pos fyne.Position) bool {
	size := b.Size()
	return pos.X >= 0 && pos.Y >= 0 && pos.X <= size.Width && pos.Y <= size.Height
}

func (b *Board) redraw() {
	b.pad.Render(b.surface)
	b.image.Image = b.surface.Image()
	b.image.Refresh()
}

func (b *Board) toSurface(pos fyne.Position) state.Point {
	size := b.Size()
	return state.ToSurface(
		state.Point{X: float64(pos.X), Y: float64(pos.Y)},
		float64(size.Width), float64(size.Height),
		float64(b.width), float64(b.height),
	)
}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.image)
}

func (b *Board) MouseDown(e *desktop.MouseEvent) {
	if b.readOnly || e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.draggedOut = false
	b.pad.PointerDown(b.toSurface(e.Position))
}

func (b *Board) MouseUp(e *desktop.MouseEvent) {
	if b.readOnly || e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pad.PointerUp()
}

// Dragged carries pointer moves while the button is held. fyne keeps sending
// them after the pointer has left the board, so leaving is detected here.
func (b *Board) Dragged(e *fyne.DragEvent) {
	if b.readOnly || b.draggedOut {
		return
	}
	if !b.inside(e.Position) {
		b.draggedOut = true
		b.pad.PointerLeave()
		return
	}
	b.pad.PointerMove(b.toSurface(e.Position))
}

func (b *Board) DragEnd() {
	if b.readOnly {
		return
	}
	b.pad.PointerUp()
}

func (b *Board) MouseIn(*desktop.MouseEvent) {}

func (b *Board) MouseMoved(e *desktop.MouseEvent) {
	if b.readOnly {
		return
	}
	b.pad.PointerMove(b.toSurface(e.Position))
}

func (b *Board) MouseOut() {
	if b.readOnly {
		return
	}
	b.pad.PointerLeave()
}
