package render

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/state"
)

func TestCanvasScalesDimensions(t *testing.T) {
	c := NewCanvas(256, 128, 4, nil)
	defer c.Close()
	assert.Equal(t, 1024, c.Width())
	assert.Equal(t, 512, c.Height())
}

func TestCanvasDrawsStroke(t *testing.T) {
	c := NewCanvas(64, 64, 1, nil)
	defer c.Close()

	c.Clear()
	c.StrokePolyline([]state.Point{{X: 8, Y: 32}, {X: 56, Y: 32}}, 6)

	img := c.Image()
	r, g, b, _ := img.At(32, 32).RGBA()
	assert.Less(t, r+g+b, uint32(3*0x8000), "stroke center should be dark")

	r, g, b, _ = img.At(32, 4).RGBA()
	assert.Equal(t, uint32(3*0xffff), r+g+b, "far from the stroke stays white")
}

func TestCanvasGlyphWithoutFontsIsNoop(t *testing.T) {
	c := NewCanvas(16, 16, 1, nil)
	defer c.Close()
	c.Clear()
	c.DrawGlyph("⭐", state.Point{X: 8, Y: 8}, 12, 1)

	r, g, b, _ := c.Image().At(8, 8).RGBA()
	assert.Equal(t, uint32(3*0xffff), r+g+b)
}

func TestCanvasEncodePNG(t *testing.T) {
	fonts, err := LoadFonts("")
	require.NoError(t, err)

	c := NewCanvas(32, 32, 2, fonts)
	defer c.Close()
	c.Clear()
	c.DrawGlyph("A", state.Point{X: 16, Y: 16}, 20, 1)

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestGlyphPNG(t *testing.T) {
	fonts, err := LoadFonts("")
	require.NoError(t, err)

	var buf bytes.Buffer
	box, err := GlyphPNG(&buf, "A", 20, 1, 2, fonts)
	require.NoError(t, err)
	assert.Equal(t, 30.0, box)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())

	_, err = GlyphPNG(&buf, "A", 20, 1, 2, nil)
	assert.Error(t, err)
}

func TestCanvasEncodePNGReportsDrawError(t *testing.T) {
	c := NewCanvas(8, 8, 1, nil)
	defer c.Close()
	c.Clear()
	c.keep(errors.New("stroke failed"))
	c.keep(errors.New("second failure"))

	var buf bytes.Buffer
	err := c.EncodePNG(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stroke failed")
	assert.Zero(t, buf.Len())

	c.Clear()
	assert.NoError(t, c.Err())
}
