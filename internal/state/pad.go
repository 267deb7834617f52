package state

import "log"

// Pad is the sketchpad session: history, tool selection, the command being
// drawn and the idle preview. It is not safe for concurrent use; every call
// must come from the goroutine that delivers input events.
type Pad struct {
	history   History
	tools     tools
	active    Command
	preview   Preview
	listeners []func()
	// revision counts changes to the committed drawing. Preview and tool
	// changes leave it alone.
	revision uint64
}

type PadOption func(*Pad)

// WithMarkerWidths overrides the thin and thick pen presets.
func WithMarkerWidths(thin, thick float64) PadOption {
	return func(p *Pad) {
		if thin > 0 {
			p.tools.widths[MarkerThin] = thin
		}
		if thick > 0 {
			p.tools.widths[MarkerThick] = thick
		}
	}
}

// WithStickers sets the initial sticker catalogue.
func WithStickers(stickers []StickerSpec) PadOption {
	return func(p *Pad) {
		if len(stickers) > 0 {
			p.tools = newTools(p.tools.widths[MarkerThin], p.tools.widths[MarkerThick], stickers)
		}
	}
}

func NewPad(opts ...PadOption) *Pad {
	p := &Pad{tools: newTools(DefaultThinWidth, DefaultThickWidth, nil)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Subscribe registers fn to run after every mutation.
func (p *Pad) Subscribe(fn func()) {
	if fn != nil {
		p.listeners = append(p.listeners, fn)
	}
}

func (p *Pad) changed() {
	for _, fn := range p.listeners {
		fn()
	}
}

// PointerDown starts a new command from the current tool and commits it
// straight away, so even a click with no movement can be undone.
func (p *Pad) PointerDown(at Point) {
	var cmd Command
	switch p.tools.tool {
	case ToolSticker:
		spec := p.tools.sticker()
		cmd = NewSticker(at, spec.Glyph, spec.Size)
	default:
		cmd = NewStroke(at, p.tools.penWidth())
	}
	p.history.Commit(cmd)
	p.revision++
	p.active = cmd
	p.preview = nil
	log.Printf("[PAD] Committed %s %s", cmd.Kind(), cmd.ID())
	p.changed()
}

// PointerMove drags the active command, or moves the preview when idle.
func (p *Pad) PointerMove(at Point) {
	if p.active != nil && p.history.Last() != p.active {
		p.active = nil
	}
	if p.active != nil {
		p.active.Drag(at)
		p.revision++
	} else {
		p.updatePreview(at)
	}
	p.changed()
}

// PointerUp ends the active command.
func (p *Pad) PointerUp() { p.end() }

// PointerLeave ends the active command the same way PointerUp does; whatever
// was drawn so far stays committed.
func (p *Pad) PointerLeave() { p.end() }

func (p *Pad) end() {
	if p.active == nil && p.preview == nil {
		return
	}
	p.active = nil
	p.preview = nil
	p.changed()
}

func (p *Pad) updatePreview(at Point) {
	switch p.tools.tool {
	case ToolSticker:
		spec := p.tools.sticker()
		if sp, ok := p.preview.(*StickerPreview); ok {
			sp.Update(at, spec.Glyph, spec.Size)
			return
		}
		p.preview = &StickerPreview{At: at, Glyph: spec.Glyph, Size: spec.Size}
	default:
		if pp, ok := p.preview.(*PenPreview); ok {
			pp.Update(at, p.tools.penWidth())
			return
		}
		p.preview = &PenPreview{At: at, Width: p.tools.penWidth()}
	}
}

// refreshPreview rebuilds an existing preview for the current tool.
func (p *Pad) refreshPreview() {
	var at Point
	switch pv := p.preview.(type) {
	case *PenPreview:
		at = pv.At
	case *StickerPreview:
		at = pv.At
	default:
		return
	}
	p.preview = nil
	p.updatePreview(at)
}

func (p *Pad) SelectMarker(m Marker) {
	p.tools.selectMarker(m)
	p.refreshPreview()
	p.changed()
}

// SelectSticker switches to the sticker at index i of the catalogue.
func (p *Pad) SelectSticker(i int) bool {
	if !p.tools.selectSticker(i) {
		return false
	}
	p.refreshPreview()
	p.changed()
	return true
}

// AddSticker appends a custom sticker to the catalogue and selects it.
func (p *Pad) AddSticker(glyph string, size float64) (int, bool) {
	i, ok := p.tools.addSticker(glyph, size)
	if !ok {
		return -1, false
	}
	log.Printf("[PAD] Added sticker %q (size %.0f)", p.tools.stickers[i].Glyph, p.tools.stickers[i].Size)
	p.refreshPreview()
	p.changed()
	return i, true
}

func (p *Pad) Undo() {
	p.active = nil
	if p.history.Undo() {
		p.revision++
		log.Printf("[PAD] Undo, %d committed", p.history.Len())
	}
	p.changed()
}

func (p *Pad) Redo() {
	p.active = nil
	if p.history.Redo() {
		p.revision++
		log.Printf("[PAD] Redo, %d committed", p.history.Len())
	}
	p.changed()
}

func (p *Pad) Clear() {
	p.active = nil
	p.history.Clear()
	p.revision++
	log.Println("[PAD] Cleared")
	p.changed()
}

// Load replaces the drawing with doc's commands. The redo stack is dropped.
func (p *Pad) Load(doc Document) {
	p.active = nil
	p.history.replace(doc.Commands)
	p.revision++
	p.changed()
}

// Render clears s and replays the drawing, then the preview if idle.
func (p *Pad) Render(s Surface) {
	s.Clear()
	for _, cmd := range p.history.committed {
		cmd.Display(s)
	}
	if p.active == nil && p.preview != nil {
		p.preview.Display(s)
	}
}

// Snapshot returns the committed drawing as a document.
func (p *Pad) Snapshot() Document {
	return Document{Version: DocumentVersion, Commands: p.history.Committed()}
}

// Revision changes whenever the committed drawing does, so callers can skip
// work when only the preview or tool selection moved.
func (p *Pad) Revision() uint64 { return p.revision }

func (p *Pad) Active() bool { return p.active != nil }
func (p *Pad) Preview() Preview { return p.preview }
func (p *Pad) Tools() ToolState { return p.tools.snapshot() }
func (p *Pad) Committed() []Command { return p.history.Committed() }
func (p *Pad) Undone() []Command { return p.history.Undone() }
