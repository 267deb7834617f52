package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

const DocumentVersion = 1

// ErrUnknownKind is returned when a document holds a command kind this
// version cannot replay.
var ErrUnknownKind = errors.New("unknown command kind")

// ErrInvalidCommand is returned for commands that could never draw anything.
var ErrInvalidCommand = errors.New("invalid command")

// ErrSizeMismatch is returned when a document was drawn on a surface of a
// different size.
var ErrSizeMismatch = errors.New("document size mismatch")

// Document is the serialisable form of a drawing: its committed commands in
// order. It is what gets saved to disk and streamed to viewers.
type Document struct {
	Version  int
	Width    int
	Height   int
	Commands []Command
}

type wireCommand struct {
	ID     string  `json:"id"`
	Kind   Kind    `json:"kind"`
	Width  float64 `json:"width,omitempty"`
	Points []Point `json:"points,omitempty"`
	At     *Point  `json:"at,omitempty"`
	Glyph  string  `json:"glyph,omitempty"`
	Size   float64 `json:"size,omitempty"`
}

type wireDocument struct {
	Version  int           `json:"version"`
	Width    int           `json:"width,omitempty"`
	Height   int           `json:"height,omitempty"`
	Commands []wireCommand `json:"commands"`
}

func (d Document) MarshalJSON() ([]byte, error) {
	w := wireDocument{
		Version:  d.Version,
		Width:    d.Width,
		Height:   d.Height,
		Commands: make([]wireCommand, 0, len(d.Commands)),
	}
	if w.Version == 0 {
		w.Version = DocumentVersion
	}
	for _, cmd := range d.Commands {
		switch c := cmd.(type) {
		case *Stroke:
			w.Commands = append(w.Commands, wireCommand{
				ID:     c.id,
				Kind:   KindStroke,
				Width:  c.width,
				Points: c.points,
			})
		case *Sticker:
			at := c.at
			w.Commands = append(w.Commands, wireCommand{
				ID:    c.id,
				Kind:  KindSticker,
				At:    &at,
				Glyph: c.glyph,
				Size:  c.size,
			})
		default:
			return nil, fmt.Errorf("marshal %T: %w", cmd, ErrUnknownKind)
		}
	}
	return json.Marshal(w)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var w wireDocument
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	cmds := make([]Command, 0, len(w.Commands))
	for i, wc := range w.Commands {
		if wc.ID == "" {
			wc.ID = uuid.NewString()
		}
		switch wc.Kind {
		case KindStroke:
			if wc.Width <= 0 {
				return fmt.Errorf("command %d stroke width %g: %w", i, wc.Width, ErrInvalidCommand)
			}
			pts := make([]Point, len(wc.Points))
			copy(pts, wc.Points)
			cmds = append(cmds, &Stroke{id: wc.ID, points: pts, width: wc.Width})
		case KindSticker:
			if wc.Glyph == "" || wc.Size <= 0 {
				return fmt.Errorf("command %d sticker %q size %g: %w", i, wc.Glyph, wc.Size, ErrInvalidCommand)
			}
			var at Point
			if wc.At != nil {
				at = *wc.At
			}
			cmds = append(cmds, &Sticker{id: wc.ID, at: at, glyph: wc.Glyph, size: wc.Size})
		default:
			return fmt.Errorf("command %d kind %q: %w", i, wc.Kind, ErrUnknownKind)
		}
	}
	*d = Document{
		Version:  w.Version,
		Width:    w.Width,
		Height:   w.Height,
		Commands: cmds,
	}
	return nil
}

// CheckSize reports whether d fits a width x height surface. Documents that
// do not record a size fit any surface.
func (d Document) CheckSize(width, height int) error {
	if d.Width == 0 && d.Height == 0 {
		return nil
	}
	if d.Width != width || d.Height != height {
		return fmt.Errorf("drawn at %dx%d, surface is %dx%d: %w", d.Width, d.Height, width, height, ErrSizeMismatch)
	}
	return nil
}

// EncodeDocument writes doc as indented JSON.
func EncodeDocument(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decoding document: %w", err)
	}
	return doc, nil
}
