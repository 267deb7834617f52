package export

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
)

func drawing() []state.Command {
	s := state.NewStroke(state.Point{X: 10, Y: 10}, 4)
	s.Extend(state.Point{X: 20, Y: 10})
	s.Extend(state.Point{X: 20, Y: 20})
	return []state.Command{s, state.NewSticker(state.Point{X: 50, Y: 50}, "A", 28)}
}

func TestPNGIsScaled(t *testing.T) {
	fonts, err := render.LoadFonts("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, drawing(), 256, 256, DefaultScale, fonts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1024, img.Bounds().Dx())
	assert.Equal(t, 1024, img.Bounds().Dy())

	// (15,10) on the surface is on the first segment; 4x puts it at (60,40).
	r, g, b, _ := img.At(60, 40).RGBA()
	assert.Less(t, r+g+b, uint32(3*0x8000))
}

func TestPNGDefaultsScale(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, nil, 10, 10, 0, nil))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}

func TestPDF(t *testing.T) {
	fonts, err := render.LoadFonts("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, drawing(), 256, 256, fonts))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFStickerNeedsFonts(t *testing.T) {
	var buf bytes.Buffer
	err := PDF(&buf, drawing(), 256, 256, nil)
	assert.Error(t, err)
}
