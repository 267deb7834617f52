// Package config holds the sketchpad settings. Values come from an optional
// TOML file layered over Default().
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/BurntSushi/toml"

	"LocalSketch/internal/state"
)

type Config struct {
	// Surface resolution, in surface units. The window may be any size.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	ExportScale float64 `toml:"export_scale"`
	ThinWidth   float64 `toml:"thin_width"`
	ThickWidth  float64 `toml:"thick_width"`

	Stickers []state.StickerSpec `toml:"stickers"`

	// EmojiFont is a TTF/OTF path used for stickers. Empty uses Go Regular.
	EmojiFont string `toml:"emoji_font"`

	Share ShareConfig `toml:"share"`
}

type ShareConfig struct {
	Enabled   bool `toml:"enabled"`
	Port      int  `toml:"port"`
	Advertise bool `toml:"advertise"`
}

func Default() Config {
	return Config{
		Width:       256,
		Height:      256,
		ExportScale: 4,
		ThinWidth:   state.DefaultThinWidth,
		ThickWidth:  state.DefaultThickWidth,
		Stickers:    state.DefaultStickers(),
		Share: ShareConfig{
			Enabled:   true,
			Port:      8888,
			Advertise: true,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	// A [[stickers]] table replaces the default catalogue rather than
	// merging into it.
	cfg.Stickers = nil
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[CONFIG] %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if len(cfg.Stickers) == 0 {
		cfg.Stickers = state.DefaultStickers()
	}
	for _, key := range md.Undecoded() {
		log.Printf("[CONFIG] Ignoring unknown key %q in %s", key.String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface size %dx%d must be positive", c.Width, c.Height))
	}
	if c.ExportScale <= 0 {
		errs = append(errs, fmt.Errorf("export_scale %g must be positive", c.ExportScale))
	}
	if c.ThinWidth <= 0 || c.ThickWidth <= 0 {
		errs = append(errs, fmt.Errorf("marker widths %g/%g must be positive", c.ThinWidth, c.ThickWidth))
	}
	if len(c.Stickers) == 0 {
		errs = append(errs, errors.New("at least one sticker is required"))
	}
	for i, s := range c.Stickers {
		if s.Glyph == "" || s.Size <= 0 {
			errs = append(errs, fmt.Errorf("sticker %d needs a glyph and a positive size", i))
		}
	}
	if c.Share.Enabled && (c.Share.Port <= 0 || c.Share.Port > 65535) {
		errs = append(errs, fmt.Errorf("share port %d out of range", c.Share.Port))
	}
	return errors.Join(errs...)
}

// PadOptions turns the tool settings into pad options.
func (c Config) PadOptions() []state.PadOption {
	return []state.PadOption{
		state.WithMarkerWidths(c.ThinWidth, c.ThickWidth),
		state.WithStickers(c.Stickers),
	}
}
