// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display switches the game window between windowed and
// fullscreen mode. Requests are recorded when they are made and
// applied by the run loop between frames.
package display

import (
	"fmt"
	"image"
	"log/slog"

	"polyverse.dev/game/base/errors"
	"polyverse.dev/game/system"
)

// Config is the committed display configuration.
type Config struct {
	// Fullscreen is whether the window currently covers the screen.
	Fullscreen bool

	// Width and Height are the requested fullscreen resolution.
	// Zero uses the full screen size.
	Width  int
	Height int

	// WindowedPos and WindowedSize are the last known windowed geometry,
	// restored when leaving fullscreen.
	WindowedPos  image.Point
	WindowedSize image.Point

	// Saved is the device mode captured on entering fullscreen.
	Saved *system.VideoMode
}

// Controller owns the display [Config].
type Controller struct {
	Display system.Display

	cfg      Config
	pending  bool
	want     bool
	applying bool
}

// NewController returns a controller for a window currently shown
// windowed at the given geometry.
func NewController(ds system.Display, cfg Config) *Controller {
	return &Controller{Display: ds, cfg: cfg}
}

// Config returns a copy of the committed configuration.
func (c *Controller) Config() Config {
	cfg := c.cfg
	if cfg.Saved != nil {
		saved := *cfg.Saved
		cfg.Saved = &saved
	}
	return cfg
}

// Fullscreen returns the committed mode.
func (c *Controller) Fullscreen() bool {
	return c.cfg.Fullscreen
}

// Pending reports whether a request is waiting to be applied.
func (c *Controller) Pending() bool {
	return c.pending
}

// Target returns the mode the window will be in once pending requests
// are applied.
func (c *Controller) Target() bool {
	if c.pending {
		return c.want
	}
	return c.cfg.Fullscreen
}

// Request asks for the given mode. Requests made before the next
// [Controller.Apply] coalesce: only the most recent one is applied.
func (c *Controller) Request(fullscreen bool) {
	c.want = fullscreen
	c.pending = true
	slog.Debug("display mode requested", "fullscreen", fullscreen)
}

// Toggle requests the opposite of [Controller.Target].
func (c *Controller) Toggle() {
	c.Request(!c.Target())
}

// SetResolution sets the fullscreen resolution used by the next
// transition to fullscreen. Zero uses the full screen size.
func (c *Controller) SetResolution(width, height int) {
	c.cfg.Width, c.cfg.Height = width, height
}

// Track records the window geometry from a move or resize notification
// as the windowed geometry to restore. It ignores notifications while
// fullscreen, while a transition is being applied and for a minimized
// window.
func (c *Controller) Track(e *system.Event) {
	if c.cfg.Fullscreen || c.applying {
		return
	}
	switch e.Type {
	case system.EventMove:
		if !system.Minimized(e.Pos) {
			c.cfg.WindowedPos = e.Pos
		}
	case system.EventResize:
		if e.Size.X > 0 && e.Size.Y > 0 {
			c.cfg.WindowedSize = e.Size
		}
	}
}

// Apply performs the pending transition on win, if any. Either the
// device mode, window style and geometry all change and the new mode
// is committed, or the failure is returned and the committed mode and
// device mode are as before. The request is consumed either way.
func (c *Controller) Apply(win system.Window) error {
	if !c.pending {
		return nil
	}
	c.pending = false
	if c.want == c.cfg.Fullscreen {
		return nil
	}
	c.applying = true
	defer func() { c.applying = false }()
	if c.want {
		return c.enter(win)
	}
	return c.leave(win)
}

func (c *Controller) enter(win system.Window) error {
	pos, size := win.Geometry()
	saved := c.Display.VideoMode()

	full := c.Display.ScreenSize()
	if c.cfg.Width > 0 && c.cfg.Height > 0 {
		full = image.Pt(c.cfg.Width, c.cfg.Height)
	}
	mode := system.VideoMode{Width: full.X, Height: full.Y, Depth: saved.Depth, Refresh: saved.Refresh}
	if err := c.Display.SetVideoMode(mode); err != nil {
		return fmt.Errorf("changing display to %dx%d: %w", mode.Width, mode.Height, err)
	}
	fr := system.Frame{Fullscreen: true, Size: full, Refresh: mode.Refresh}
	if err := win.SetFrame(fr); err != nil {
		errors.Log(c.Display.SetVideoMode(saved))
		return fmt.Errorf("making the window fullscreen: %w", err)
	}
	c.cfg.WindowedPos, c.cfg.WindowedSize = pos, size
	c.cfg.Saved = &saved
	c.cfg.Fullscreen = true
	slog.Info("display mode", "fullscreen", true, "size", full)
	return nil
}

func (c *Controller) leave(win system.Window) error {
	current := c.Display.VideoMode()
	if c.cfg.Saved != nil {
		if err := c.Display.SetVideoMode(*c.cfg.Saved); err != nil {
			return fmt.Errorf("restoring display mode: %w", err)
		}
	}
	fr := system.Frame{Pos: c.cfg.WindowedPos, Size: c.cfg.WindowedSize}
	if err := win.SetFrame(fr); err != nil {
		if c.cfg.Saved != nil {
			errors.Log(c.Display.SetVideoMode(current))
		}
		return fmt.Errorf("restoring the window: %w", err)
	}
	c.cfg.Saved = nil
	c.cfg.Fullscreen = false
	slog.Info("display mode", "fullscreen", false, "pos", fr.Pos, "size", fr.Size)
	return nil
}
