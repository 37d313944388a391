// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"polyverse.dev/game/base/errors"
)

// DefaultGeometryPath is where the windowed geometry is saved between runs.
const DefaultGeometryPath = "~/.config/polyverse/window.toml"

// Geometry is the windowed position and size of the window.
type Geometry struct {
	Pos  image.Point `toml:"pos"`
	Size image.Point `toml:"size"`
}

// geometries are the saved geometries keyed by screen size, so that a
// laptop used with and without an external screen restores the window
// to where it was on each.
type geometries map[string]Geometry

func screenKey(screen image.Point) string {
	return fmt.Sprintf("%dx%d", screen.X, screen.Y)
}

// LoadGeometry returns the geometry saved in the file at path for a
// screen of the given size. It returns false if there is none.
func LoadGeometry(path string, screen image.Point) (Geometry, bool, error) {
	gs, err := readGeometries(path)
	if err != nil {
		return Geometry{}, false, err
	}
	g, ok := gs[screenKey(screen)]
	if !ok || g.Size.X <= 0 || g.Size.Y <= 0 || !g.Pos.In(image.Rectangle{Max: screen}) {
		return Geometry{}, false, nil
	}
	return g, true, nil
}

// SaveGeometry records g for a screen of the given size in the file at
// path, keeping the geometries saved for other screens.
func SaveGeometry(path string, screen image.Point, g Geometry) error {
	gs, err := readGeometries(path)
	if err != nil {
		gs = geometries{}
	}
	gs[screenKey(screen)] = g
	path, err = homedir.Expand(path)
	if err != nil {
		return err
	}
	b, err := toml.Marshal(gs)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func readGeometries(path string) (geometries, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	gs := geometries{}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return gs, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(b, &gs); err != nil {
		return nil, fmt.Errorf("window geometry %s: %w", path, err)
	}
	return gs, nil
}
