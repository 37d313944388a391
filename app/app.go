// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs the game: it creates the window, negotiates the GL
// context when the window is created and runs the loop that dispatches
// events, applies display changes between frames and renders frames.
package app

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"polyverse.dev/game/base/errors"
	"polyverse.dev/game/config"
	"polyverse.dev/game/display"
	"polyverse.dev/game/gpu/glcontext"
	"polyverse.dev/game/gpu/glerr"
	"polyverse.dev/game/system"
	"polyverse.dev/game/system/bridge"
)

// App is the running game. It owns the window, the GL context and the
// display configuration; nothing else refers to them.
type App struct {
	Driver  system.Driver
	Config  *config.Config
	Payload Payload

	// Watcher, if set, supplies configuration reloads.
	Watcher *config.Watcher

	// GeometryPath, if set, is the file the windowed geometry is
	// restored from at start and saved to at close.
	GeometryPath string

	// Bridge carries failures out of event callbacks.
	Bridge bridge.Bridge

	// Display switches between windowed and fullscreen mode.
	Display *display.Controller

	// Window is the game window, nil before it is created and after
	// it is destroyed.
	Window system.Window

	// State is the negotiated GL context.
	State *glcontext.State

	// Now returns the current time; it defaults to [time.Now].
	Now func() time.Time

	size       image.Point
	last       time.Time
	inited     bool
	ready      bool
	quit       bool
	lastFailed bool
	frames     int
}

// New returns an app for the given driver, configuration and payload.
func New(d system.Driver, cfg *config.Config, p Payload) *App {
	return &App{Driver: d, Config: cfg, Payload: p, Now: time.Now}
}

// Size returns the current client size of the window.
func (a *App) Size() image.Point {
	return a.size
}

// Frames returns the number of frames presented.
func (a *App) Frames() int {
	return a.frames
}

// Quit asks the loop to stop after the current iteration.
func (a *App) Quit() {
	a.quit = true
}

// Start initializes the driver and creates the window, negotiating the
// GL context and initializing the payload while the window is being
// created. Any failure is returned and nothing has been rendered.
func (a *App) Start() error {
	if err := a.Driver.Init(); err != nil {
		return fmt.Errorf("initializing the windowing system: %w", err)
	}
	a.inited = true

	cfg := a.Config
	screen := a.Driver.Display().ScreenSize()
	size := image.Pt(cfg.Width, cfg.Height)
	pos := screen.Sub(size).Div(2)
	pos.X, pos.Y = max(pos.X, 0), max(pos.Y, 0)
	if a.GeometryPath != "" {
		g, ok, err := display.LoadGeometry(a.GeometryPath, screen)
		errors.Log(err)
		if ok {
			pos, size = g.Pos, g.Size
		}
	}
	a.size = size
	a.Display = display.NewController(a.Driver.Display(), display.Config{WindowedPos: pos, WindowedSize: size})
	a.Display.SetResolution(cfg.FullscreenWidth, cfg.FullscreenHeight)

	opts := &system.WindowOptions{Title: cfg.Title, Size: size, Pos: pos}
	var win system.Window
	err := a.Bridge.Dispatch(func() error {
		var err error
		win, err = a.Driver.NewWindow(opts, a.Bridge.Wrap(a.handle))
		return err
	})
	if err != nil {
		if win != nil {
			a.Window = win
			a.closeWindow()
		}
		return fmt.Errorf("creating the game window: %w", err)
	}
	a.Window = win
	if cfg.Fullscreen {
		a.Display.Request(true)
	}
	a.last = a.Now()
	slog.Info("game started", "title", cfg.Title, "size", size, "fullscreen", cfg.Fullscreen, "handle", win.Handle())
	return nil
}

// Step runs one iteration of the loop. If an event is pending exactly
// one is dispatched; otherwise a pending display change is applied,
// unless the previous iteration failed; otherwise one frame is run.
// It returns false once the game has been asked to quit, together
// with any failure of the iteration.
func (a *App) Step() (bool, error) {
	if a.quit {
		return false, nil
	}
	a.reload()
	dispatched := false
	err := a.Bridge.Dispatch(func() error {
		dispatched = a.Driver.PollEvent()
		return nil
	})
	switch {
	case dispatched:
	case a.Display.Pending() && !a.lastFailed:
		err = a.applyDisplay()
	default:
		err = a.frame()
	}
	a.lastFailed = err != nil
	return !a.quit, err
}

// Run starts the game and runs the loop until it is asked to quit or
// ctx is done. A failing iteration is reported to the user and the
// loop continues; a failure to start is returned.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()
	if err := a.Start(); err != nil {
		return err
	}
	for ctx.Err() == nil {
		ok, err := a.Step()
		if err != nil {
			a.Report(err)
		}
		if !ok {
			break
		}
	}
	slog.Info("game stopped", "frames", a.frames)
	return nil
}

// Report shows err to the user in a modal alert.
func (a *App) Report(err error) {
	errors.Log(err)
	a.Driver.Alert(err.Error(), a.Config.Title, system.Error)
}

// Close leaves fullscreen mode, saves the windowed geometry, destroys
// the window and shuts the driver down. It is safe to call more than once.
func (a *App) Close() {
	if a.Window != nil && a.Display != nil && a.Display.Fullscreen() {
		a.Display.Request(false)
		errors.Log(a.applyDisplay())
	}
	if a.Window != nil && a.GeometryPath != "" {
		cfg := a.Display.Config()
		g := display.Geometry{Pos: cfg.WindowedPos, Size: cfg.WindowedSize}
		errors.Log(display.SaveGeometry(a.GeometryPath, a.Driver.Display().ScreenSize(), g))
	}
	a.closeWindow()
	if a.Watcher != nil {
		errors.Log(a.Watcher.Close())
		a.Watcher = nil
	}
	if a.inited {
		a.inited = false
		a.Driver.Terminate()
	}
}

func (a *App) closeWindow() {
	if a.Window == nil {
		return
	}
	win := a.Window
	errors.Log(a.Bridge.Dispatch(func() error {
		win.Close()
		return nil
	}))
	// the destroy notification normally does this
	a.teardown()
}

func (a *App) applyDisplay() error {
	return a.Bridge.Dispatch(func() error {
		return a.Display.Apply(a.Window)
	})
}

// frame runs the payload once and presents the result. GL errors
// raised while rendering fail the frame.
func (a *App) frame() error {
	if !a.ready {
		return nil
	}
	now := a.Now()
	dt := now.Sub(a.last)
	a.last = now
	if err := a.Payload.Update(dt); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	err := glerr.Checked(a.Driver.Queue(), "render", func() error {
		return a.Payload.Render(a.size)
	})
	if err != nil {
		return err
	}
	a.Window.Swap()
	a.frames++
	return nil
}

// reload takes a reloaded configuration, if one arrived, without waiting.
func (a *App) reload() {
	if a.Watcher == nil {
		return
	}
	var cfg *config.Config
	select {
	case cfg = <-a.Watcher.Changes():
	default:
		return
	}
	slog.Info("config reloaded")
	a.Display.SetResolution(cfg.FullscreenWidth, cfg.FullscreenHeight)
	if cfg.Fullscreen != a.Display.Target() {
		a.Display.Request(cfg.Fullscreen)
	}
	if c, ok := a.Payload.(Configurer); ok {
		errors.Log(c.Configure(cfg))
	}
	a.Config = cfg
}
