package state

import "strings"

type Tool int

const (
	ToolPen Tool = iota
	ToolSticker
)

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolSticker:
		return "sticker"
	default:
		return "unknown"
	}
}

// Marker is one of the two fixed pen presets.
type Marker int

const (
	MarkerThin Marker = iota
	MarkerThick
)

const (
	DefaultThinWidth   = 4.0
	DefaultThickWidth  = 10.0
	DefaultStickerSize = 28.0
)

// StickerSpec identifies a sticker in the catalogue.
type StickerSpec struct {
	Glyph string  `json:"glyph" toml:"glyph"`
	Size  float64 `json:"size" toml:"size"`
}

// DefaultStickers is the catalogue a new pad starts with.
func DefaultStickers() []StickerSpec {
	return []StickerSpec{
		{Glyph: "🙂", Size: DefaultStickerSize},
		{Glyph: "⭐", Size: DefaultStickerSize},
		{Glyph: "🔥", Size: DefaultStickerSize},
	}
}

// ToolState is a read-only snapshot of the current tool selection.
type ToolState struct {
	Tool     Tool
	Marker   Marker
	PenWidth float64
	Selected int // index into Stickers, valid when Tool == ToolSticker
	Stickers []StickerSpec
}

// Sticker returns the selected sticker spec.
func (t ToolState) Sticker() (StickerSpec, bool) {
	if t.Selected < 0 || t.Selected >= len(t.Stickers) {
		return StickerSpec{}, false
	}
	return t.Stickers[t.Selected], true
}

type tools struct {
	tool     Tool
	marker   Marker
	widths   [2]float64
	selected int
	stickers []StickerSpec
}

func newTools(thin, thick float64, stickers []StickerSpec) tools {
	if len(stickers) == 0 {
		stickers = DefaultStickers()
	}
	catalogue := make([]StickerSpec, len(stickers))
	copy(catalogue, stickers)
	return tools{
		tool:     ToolPen,
		marker:   MarkerThin,
		widths:   [2]float64{thin, thick},
		stickers: catalogue,
	}
}

func (t *tools) penWidth() float64 { return t.widths[t.marker] }

func (t *tools) sticker() StickerSpec { return t.stickers[t.selected] }

func (t *tools) selectMarker(m Marker) {
	if m != MarkerThin && m != MarkerThick {
		m = MarkerThin
	}
	t.tool = ToolPen
	t.marker = m
}

func (t *tools) selectSticker(i int) bool {
	if i < 0 || i >= len(t.stickers) {
		return false
	}
	t.tool = ToolSticker
	t.selected = i
	return true
}

func (t *tools) addSticker(glyph string, size float64) (int, bool) {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return -1, false
	}
	if size <= 0 {
		size = DefaultStickerSize
	}
	t.stickers = append(t.stickers, StickerSpec{Glyph: glyph, Size: size})
	i := len(t.stickers) - 1
	t.selectSticker(i)
	return i, true
}

func (t *tools) snapshot() ToolState {
	stickers := make([]StickerSpec, len(t.stickers))
	copy(stickers, t.stickers)
	return ToolState{
		Tool:     t.tool,
		Marker:   t.marker,
		PenWidth: t.penWidth(),
		Selected: t.selected,
		Stickers: stickers,
	}
}
