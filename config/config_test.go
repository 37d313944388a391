// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	data := `
title = "Test"
fullscreen = true
fullscreen_width = 1600
fullscreen_height = 900
gl_minor = 5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", cfg.Title)
	assert.True(t, cfg.Fullscreen)
	assert.Equal(t, 1600, cfg.FullscreenWidth)
	assert.Equal(t, 900, cfg.FullscreenHeight)
	assert.Equal(t, 4, cfg.GLMajor)
	assert.Equal(t, 5, cfg.GLMinor)
	assert.Equal(t, 1280, cfg.Width, "unset values keep their defaults")
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("width = \"wide\""), 0o644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, bad)

	old := filepath.Join(dir, "old.toml")
	require.NoError(t, os.WriteFile(old, []byte("gl_major = 2"), 0o644))
	_, err = Load(old)
	assert.ErrorContains(t, err, "3.2 or newer")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(c *Config)
		err  string
	}{
		{"default", func(c *Config) {}, ""},
		{"zero width", func(c *Config) { c.Width = 0 }, "must be positive"},
		{"negative fullscreen", func(c *Config) { c.FullscreenHeight = -1 }, "must not be negative"},
		{"gl 3.1", func(c *Config) { c.GLMajor, c.GLMinor = 3, 1 }, "no core profile"},
		{"gl 3.2", func(c *Config) { c.GLMajor, c.GLMinor = 3, 2 }, ""},
		{"colour", func(c *Config) { c.ClearColor = "blue" }, "#rrggbb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.edit(c)
			err := c.Validate()
			if tt.err == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.err)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	cfg := Default()
	require.NoError(t, Merge(cfg, &Config{Fullscreen: true, Width: 640}))
	assert.True(t, cfg.Fullscreen)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, "Polyverse Game", cfg.Title)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "game.toml")
	cfg := Default()
	cfg.Title = "Saved"
	cfg.GLDebug = true
	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0080")
	require.NoError(t, err)
	assert.Equal(t, float32(1), c[0])
	assert.Equal(t, float32(0), c[1])
	assert.InDelta(t, 0.502, c[2], 0.001)

	for _, s := range []string{"", "ff0080", "#ff008", "#ff00800", "#gg0000"} {
		_, err := ParseColor(s)
		assert.Error(t, err, s)
	}
}

func TestPlatform(t *testing.T) {
	var p Platform
	require.NoError(t, p.SetString("windows/amd64"))
	assert.Equal(t, "windows/amd64", p.String())
	assert.NoError(t, p.DesktopSupported())

	require.NoError(t, p.SetString("android"))
	assert.Equal(t, "*", p.Arch)
	assert.ErrorContains(t, p.DesktopSupported(), "no desktop OpenGL driver")

	assert.Error(t, p.SetString("windoze/amd64"))
	assert.Error(t, Platform{OS: "windoze"}.DesktopSupported())
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	require.NoError(t, os.WriteFile(path, []byte("fullscreen = false"), 0o644))
	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.toml"), []byte("x = 1"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("fullscreen = true"), 0o644))

	// a write can be seen half done, so wait for the final content
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Changes():
			if cfg.Fullscreen {
				return
			}
		case <-timeout:
			t.Fatal("no reload")
		}
	}
}
