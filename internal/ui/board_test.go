package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/state"
)

func press(pos fyne.Position) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: pos},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestBoardMapsPointerIntoSurface(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	pad := state.NewPad()
	b := NewBoard(pad, 256, 256, nil, false)
	b.Resize(fyne.NewSize(512, 512))

	b.MouseDown(press(fyne.NewPos(20, 20)))
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 20)}})
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 40)}})
	b.DragEnd()

	cmds := pad.Committed()
	require.Len(t, cmds, 1)
	assert.Equal(t, []state.Point{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}}, cmds[0].(*state.Stroke).Points())
	assert.False(t, pad.Active())
}

func TestBoardHoverAndLeave(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	pad := state.NewPad()
	b := NewBoard(pad, 256, 256, nil, false)
	b.Resize(fyne.NewSize(256, 256))

	b.MouseMoved(press(fyne.NewPos(30, 30)))
	require.NotNil(t, pad.Preview())
	b.MouseOut()
	assert.Nil(t, pad.Preview())
}

func TestReadOnlyBoardIgnoresInput(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	pad := state.NewPad()
	b := NewBoard(pad, 256, 256, nil, true)
	b.Resize(fyne.NewSize(256, 256))

	b.MouseDown(press(fyne.NewPos(5, 5)))
	b.MouseMoved(press(fyne.NewPos(6, 6)))
	b.MouseUp(press(fyne.NewPos(6, 6)))
	assert.Empty(t, pad.Committed())
	assert.Nil(t, pad.Preview())
}

func TestBoardDragOutEndsStroke(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	pad := state.NewPad()
	b := NewBoard(pad, 256, 256, nil, false)
	b.Resize(fyne.NewSize(256, 256))

	b.MouseDown(press(fyne.NewPos(10, 10)))
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 10)}})
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(400, -50)}})
	assert.False(t, pad.Active(), "leaving the board ends the stroke")

	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 100)}})
	b.DragEnd()

	cmds := pad.Committed()
	require.Len(t, cmds, 1)
	assert.Equal(t, []state.Point{{X: 10, Y: 10}, {X: 200, Y: 10}}, cmds[0].(*state.Stroke).Points())

	b.MouseDown(press(fyne.NewPos(20, 20)))
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(30, 30)}})
	b.DragEnd()
	require.Len(t, pad.Committed(), 2)
	assert.Len(t, pad.Committed()[1].(*state.Stroke).Points(), 2, "next press draws again")
}

func TestBoardShowDocumentAdoptsHostSize(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	pad := state.NewPad()
	b := NewBoard(pad, 256, 256, nil, true)
	b.Resize(fyne.NewSize(512, 512))

	s := state.NewSticker(state.Point{X: 400, Y: 400}, "⭐", 28)
	b.ShowDocument(state.Document{Width: 512, Height: 512, Commands: []state.Command{s}})

	w, h := b.SurfaceSize()
	assert.Equal(t, 512, w)
	assert.Equal(t, 512, h)
	assert.Equal(t, 512, b.image.Image.Bounds().Dx())
	assert.Equal(t, []state.Command{s}, pad.Committed())

	b.ShowDocument(state.Document{Commands: nil})
	w, _ = b.SurfaceSize()
	assert.Equal(t, 512, w, "a document without a size keeps the surface")
}
