package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/state"
)

// toolbar owns the tool buttons and keeps their highlight in step with the
// pad's tool state.
type toolbar struct {
	pad      *state.Pad
	win      fyne.Window
	thin     *widget.Button
	thick    *widget.Button
	stickers *fyne.Container
	buttons  []*widget.Button
}

func newToolbar(pad *state.Pad, win fyne.Window, actions *actions) fyne.CanvasObject {
	tb := &toolbar{
		pad:      pad,
		win:      win,
		stickers: container.NewHBox(),
	}
	tb.thin = widget.NewButton("Thin", func() { pad.SelectMarker(state.MarkerThin) })
	tb.thick = widget.NewButton("Thick", func() { pad.SelectMarker(state.MarkerThick) })
	custom := widget.NewButtonWithIcon("", theme.ContentAddIcon(), tb.promptSticker)

	history := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), pad.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), pad.Redo),
		widget.NewToolbarAction(theme.DeleteIcon(), pad.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), actions.save),
		widget.NewToolbarAction(theme.FolderOpenIcon(), actions.open),
		widget.NewToolbarAction(theme.FileImageIcon(), actions.exportPNG),
		widget.NewToolbarAction(theme.FileTextIcon(), actions.exportPDF),
	)

	pad.Subscribe(tb.refresh)
	tb.refresh()

	return container.NewHBox(
		widget.NewLabel("Marker:"),
		tb.thin,
		tb.thick,
		widget.NewSeparator(),
		widget.NewLabel("Stickers:"),
		tb.stickers,
		custom,
		widget.NewSeparator(),
		history,
		layout.NewSpacer(),
	)
}

func highlight(b *widget.Button, on bool) {
	want := widget.MediumImportance
	if on {
		want = widget.HighImportance
	}
	if b.Importance != want {
		b.Importance = want
		b.Refresh()
	}
}

// refresh rebuilds sticker buttons when the catalogue grew and updates the
// selection highlight.
func (tb *toolbar) refresh() {
	tools := tb.pad.Tools()
	if len(tb.buttons) != len(tools.Stickers) {
		for i := len(tb.buttons); i < len(tools.Stickers); i++ {
			btn := widget.NewButton(tools.Stickers[i].Glyph, func() { tb.pad.SelectSticker(i) })
			tb.buttons = append(tb.buttons, btn)
			tb.stickers.Add(btn)
		}
	}
	pen := tools.Tool == state.ToolPen
	highlight(tb.thin, pen && tools.Marker == state.MarkerThin)
	highlight(tb.thick, pen && tools.Marker == state.MarkerThick)
	for i, btn := range tb.buttons {
		highlight(btn, !pen && tools.Selected == i)
	}
}

// promptSticker asks for a custom glyph. Empty or cancelled input never
// reaches the pad.
func (tb *toolbar) promptSticker() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("🦄")
	items := []*widget.FormItem{widget.NewFormItem("Sticker", entry)}
	dialog.ShowForm("Custom sticker", "Add", "Cancel", items, func(ok bool) {
		glyph := strings.TrimSpace(entry.Text)
		if !ok || glyph == "" {
			return
		}
		tb.pad.AddSticker(glyph, state.DefaultStickerSize)
	}, tb.win)
}
