package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/state"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 4.0, cfg.ExportScale)
	assert.Equal(t, 8888, cfg.Share.Port)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketchpad.toml")
	data := `
width = 512
thick_width = 16
emoji_font = "/fonts/emoji.ttf"

[[stickers]]
glyph = "🎨"
size = 32

[share]
enabled = true
port = 9000
advertise = false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 256, cfg.Height)
	assert.Equal(t, 16.0, cfg.ThickWidth)
	assert.Equal(t, state.DefaultThinWidth, cfg.ThinWidth)
	assert.Equal(t, []state.StickerSpec{{Glyph: "🎨", Size: 32}}, cfg.Stickers)
	assert.Equal(t, "/fonts/emoji.ttf", cfg.EmojiFont)
	assert.Equal(t, ShareConfig{Enabled: true, Port: 9000}, cfg.Share)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = -1\nexport_scale = 0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "surface size")
	assert.Contains(t, err.Error(), "export_scale")
}

func TestLoadRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = \n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
