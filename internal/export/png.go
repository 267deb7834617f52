// Package export writes a drawing out as PNG or PDF. Only committed commands
// are replayed; the pointer preview never reaches an export.
package export

import (
	"fmt"
	"io"
	"log"

	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
)

// DefaultScale is the PNG export multiplier over the on-screen surface.
const DefaultScale = 4

// PNG replays cmds onto an off-screen canvas scale times the surface size and
// encodes it.
func PNG(w io.Writer, cmds []state.Command, width, height int, scale float64, fonts *render.Fonts) error {
	if scale <= 0 {
		scale = DefaultScale
	}
	canvas := render.NewCanvas(width, height, scale, fonts)
	defer canvas.Close()

	canvas.Clear()
	for _, cmd := range cmds {
		cmd.Display(canvas)
	}
	if err := canvas.EncodePNG(w); err != nil {
		return fmt.Errorf("exporting png: %w", err)
	}
	log.Printf("[EXPORT] PNG with %d commands (%dx%d)", len(cmds), canvas.Width(), canvas.Height())
	return nil
}
