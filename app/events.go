// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"log/slog"

	"polyverse.dev/game/gpu/glcontext"
	"polyverse.dev/game/gpu/glerr"
	"polyverse.dev/game/system"
)

// handle is the window event handler. It runs inside the driver's
// dispatch and is always called through the bridge.
func (a *App) handle(e *system.Event) error {
	switch e.Type {
	case system.EventCreate:
		return a.create(e.Window)
	case system.EventDestroy:
		a.teardown()
		a.quit = true
	case system.EventClose:
		a.quit = true
	case system.EventMove:
		a.Display.Track(e)
	case system.EventResize:
		if e.Size.X > 0 && e.Size.Y > 0 {
			a.size = e.Size
		}
		a.Display.Track(e)
	case system.EventRefresh:
		return a.frame()
	case system.EventFocus:
		slog.Debug("focus", "focused", e.Focused)
	case system.EventKey:
		a.key(e)
	}
	return nil
}

func (a *App) key(e *system.Event) {
	if !e.Down {
		return
	}
	switch {
	case e.Key == system.KeyF11, e.Key == system.KeyEnter && e.Mods&system.ModAlt != 0:
		a.Display.Toggle()
	case e.Key == system.KeyEscape:
		a.quit = true
	}
}

// create negotiates the GL context on the window being created and
// initializes the payload with it.
func (a *App) create(win system.Window) error {
	a.Window = win
	n := &glcontext.Negotiator{
		Driver: a.Driver,
		Request: glcontext.Request{
			Major: a.Config.GLMajor,
			Minor: a.Config.GLMinor,
			Debug: a.Config.GLDebug,
		},
	}
	st, err := n.Negotiate(win)
	a.State = st
	if err != nil {
		return fmt.Errorf("negotiating the OpenGL context: %w", err)
	}
	err = glerr.Checked(a.Driver.Queue(), "initialize renderer", func() error {
		return a.Payload.Init(st)
	})
	if err != nil {
		return fmt.Errorf("initializing the renderer: %w", err)
	}
	a.ready = true
	return nil
}

// teardown releases the payload and the context. The window is gone or
// about to be.
func (a *App) teardown() {
	if a.ready {
		a.ready = false
		a.Payload.Release()
	}
	a.State.Destroy()
	a.Window = nil
}
