package ui

import (
	"context"
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/config"
	"LocalSketch/internal/export"
	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
)

// actions are the file operations behind the toolbar.
type actions struct {
	cfg    config.Config
	pad    *state.Pad
	fonts  *render.Fonts
	win    fyne.Window
	status *widget.Label
}

func (a *actions) setStatus(text string) {
	fyne.Do(func() { a.status.SetText(text) })
}

func (a *actions) saveAs(name, ext string, write func(io.Writer) error) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.win)
			return
		}
		if w == nil {
			return
		}
		defer func() {
			if err := w.Close(); err != nil {
				log.Printf("Error closing writer: %v", err)
			}
		}()
		if err := write(w); err != nil {
			log.Printf("Saving %s failed: %v", w.URI(), err)
			dialog.ShowError(err, a.win)
			return
		}
		a.setStatus("Saved " + w.URI().Name())
	}, a.win)
	d.SetFileName(name)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

func (a *actions) exportPNG() {
	cmds := a.pad.Committed()
	a.saveAs("sketchpad.png", ".png", func(w io.Writer) error {
		return export.PNG(w, cmds, a.cfg.Width, a.cfg.Height, a.cfg.ExportScale, a.fonts)
	})
}

func (a *actions) exportPDF() {
	cmds := a.pad.Committed()
	a.saveAs("sketchpad.pdf", ".pdf", func(w io.Writer) error {
		return export.PDF(w, cmds, a.cfg.Width, a.cfg.Height, a.fonts)
	})
}

func (a *actions) save() {
	doc := a.snapshot()
	a.saveAs("sketchpad.json", ".json", func(w io.Writer) error {
		return state.EncodeDocument(w, doc)
	})
}

func (a *actions) snapshot() state.Document {
	doc := a.pad.Snapshot()
	doc.Width, doc.Height = a.cfg.Width, a.cfg.Height
	return doc
}

func (a *actions) open() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.win)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()
		doc, err := state.DecodeDocument(r)
		if err != nil {
			log.Printf("Loading %s failed: %v", r.URI(), err)
			dialog.ShowError(err, a.win)
			return
		}
		if err := doc.CheckSize(a.cfg.Width, a.cfg.Height); err != nil {
			log.Printf("Loading %s failed: %v", r.URI(), err)
			dialog.ShowError(err, a.win)
			return
		}
		a.pad.Load(doc)
		log.Printf("Loaded %d commands from %s", len(doc.Commands), r.URI())
		a.setStatus(fmt.Sprintf("Loaded %d drawings", len(doc.Commands)))
	}, a.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

// RunHost opens the drawing window and blocks until it is closed. shareLink
// is shown in the status bar when sharing is on.
func RunHost(cfg config.Config, pad *state.Pad, fonts *render.Fonts, shareLink string) {
	myApp := app.New()
	win := myApp.NewWindow("Sketchpad")

	status := widget.NewLabel("Ready")
	if shareLink != "" {
		status.SetText("Viewers can follow at " + shareLink)
	}
	acts := &actions{cfg: cfg, pad: pad, fonts: fonts, win: win, status: status}

	board := NewBoard(pad, cfg.Width, cfg.Height, fonts, false)
	toolbar := newToolbar(pad, win, acts)

	win.SetContent(container.NewBorder(toolbar, status, nil, nil, board))
	win.Resize(fyne.NewSize(800, 640))
	win.ShowAndRun()
}

// RunViewer opens a read-only window that mirrors a host. follow is run in
// the background and must deliver documents until its context is cancelled.
func RunViewer(cfg config.Config, fonts *render.Fonts, link string,
	follow func(ctx context.Context, onDoc func(state.Document)) error) {
	myApp := app.New()
	win := myApp.NewWindow("Sketchpad (viewing " + link + ")")

	pad := state.NewPad()
	status := widget.NewLabel("Connecting to " + link)
	board := NewBoard(pad, cfg.Width, cfg.Height, fonts, true)
	win.SetContent(container.NewBorder(nil, status, nil, nil, board))
	win.Resize(fyne.NewSize(640, 600))

	ctx, cancel := context.WithCancel(context.Background())
	win.SetOnClosed(cancel)

	go func() {
		first := true
		err := follow(ctx, func(doc state.Document) {
			fyne.Do(func() {
				board.ShowDocument(doc)
				if first {
					status.SetText("Following " + link)
					first = false
				}
			})
		})
		if err != nil {
			log.Printf("[SHARE] Lost host %s: %v", link, err)
			fyne.Do(func() { status.SetText(fmt.Sprintf("Disconnected: %v", err)) })
		}
	}()

	win.ShowAndRun()
	cancel()
}
