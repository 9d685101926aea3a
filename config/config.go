// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the settings used to create overlay contexts.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	ErrFontSize = errors.New("config: font size must be positive")
)

// Config describes an overlay context.
type Config struct {
	// IniFilename is where the immediate-mode library persists window
	// settings. Empty disables persistence.
	IniFilename string `toml:"ini_filename"`
	// LogFilename receives text captured with the library's logging
	// facility. Empty disables file logging.
	LogFilename string `toml:"log_filename"`
	Font        Font   `toml:"font"`
	// Plot enables the plotting extension context.
	Plot bool `toml:"plot"`
	// AtlasCache is a PNG file the font atlas texture is loaded from
	// when present and written to otherwise. Empty disables caching.
	AtlasCache string `toml:"atlas_cache"`
}

// Font selects the font rasterized into the font atlas.
type Font struct {
	// Face is one of the embedded faces ("go", "gomono", "roboto"),
	// or a path to a TrueType file.
	Face string  `toml:"face"`
	Size float32 `toml:"size"`
}

// Default returns the configuration used when none is supplied.
func Default() Config {
	return Config{
		IniFilename: "imgui.ini",
		LogFilename: "imgui_log.txt",
		Font: Font{
			Face: "go",
			Size: 13,
		},
		Plot: true,
	}
}

// Load decodes a TOML file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("config: %s: unknown keys %v", path, undec)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.Font.Size <= 0 {
		return ErrFontSize
	}
	return nil
}
