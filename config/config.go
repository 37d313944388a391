// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the game, loaded
// from a TOML file and overridden from the command line.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"polyverse.dev/game/base/errors"
)

// DefaultPath is where the configuration file is looked for
// when none is given.
const DefaultPath = "~/.config/polyverse/game.toml"

// Config is the configuration of the game.
type Config struct {

	// the title of the game window
	Title string `toml:"title"`

	// the client width of the window when windowed
	Width int `toml:"width"`

	// the client height of the window when windowed
	Height int `toml:"height"`

	// whether to start in fullscreen mode
	Fullscreen bool `toml:"fullscreen"`

	// the fullscreen resolution; zero uses the screen size
	FullscreenWidth int `toml:"fullscreen_width"`

	// the fullscreen resolution; zero uses the screen size
	FullscreenHeight int `toml:"fullscreen_height"`

	// the requested OpenGL major version
	GLMajor int `toml:"gl_major"`

	// the requested OpenGL minor version
	GLMinor int `toml:"gl_minor"`

	// whether to request a debug context
	GLDebug bool `toml:"gl_debug"`

	// the colour the frame is cleared to, as #rrggbb
	ClearColor string `toml:"clear_color"`

	// run without a display, for smoke tests
	Offscreen bool `toml:"offscreen"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Title:      "Polyverse Game",
		Width:      1280,
		Height:     720,
		GLMajor:    4,
		GLMinor:    1,
		ClearColor: "#10141c",
	}
}

// Load returns the default configuration overridden by the TOML file
// at path. A missing file is not an error. A leading ~ is expanded to
// the home directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path as TOML, creating the
// directory if needed.
func Save(path string, cfg *Config) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Merge copies the non-zero fields of overrides into cfg. Zero fields
// of overrides, including false booleans, leave cfg unchanged.
func Merge(cfg, overrides *Config) error {
	return copier.CopyWithOption(cfg, overrides, copier.Option{IgnoreEmpty: true})
}

// Validate checks the values the game cannot start with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.FullscreenWidth < 0 || c.FullscreenHeight < 0 {
		return fmt.Errorf("fullscreen size %dx%d must not be negative", c.FullscreenWidth, c.FullscreenHeight)
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 2) {
		return fmt.Errorf("OpenGL %d.%d has no core profile; 3.2 or newer is required", c.GLMajor, c.GLMinor)
	}
	if _, err := ParseColor(c.ClearColor); err != nil {
		return err
	}
	return nil
}

// ParseColor parses a #rrggbb colour into components in [0, 1].
func ParseColor(s string) ([3]float32, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil || len(s) != 7 {
		return [3]float32{}, fmt.Errorf("colour %q is not of the form #rrggbb", s)
	}
	return [3]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255}, nil
}
