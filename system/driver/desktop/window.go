// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || freebsd

package desktop

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"polyverse.dev/game/base/errors"
	"polyverse.dev/game/system"
)

// Window is the desktop [system.Window].
type Window struct {
	d *Driver

	// Glw is the glfw window, nil until the context has been created.
	Glw *glfw.Window

	title      string
	pos        image.Point
	size       image.Point
	fullscreen bool
	closed     bool
}

var _ system.Window = (*Window)(nil)

func (w *Window) Surface() (system.Surface, error) {
	if w.closed {
		return nil, errors.Fail("the window is closed")
	}
	return &surface{w: w}, nil
}

func (w *Window) Geometry() (pos, size image.Point) {
	if w.Glw == nil {
		return w.pos, w.size
	}
	x, y := w.Glw.GetPos()
	wd, ht := w.Glw.GetSize()
	return image.Pt(x, y), image.Pt(wd, ht)
}

// SetFrame moves the window onto the primary monitor, which switches
// the monitor to the video mode of the given size, or back to the
// desktop. The resulting move and resize notifications are dispatched
// before it returns.
func (w *Window) SetFrame(fr system.Frame) (err error) {
	if w.Glw == nil {
		return errors.Fail("the window has no context")
	}
	defer guard("glfwSetWindowMonitor", &err)
	w.d.direct++
	defer func() { w.d.direct-- }()
	if fr.Fullscreen {
		refresh := glfw.DontCare
		if fr.Refresh > 0 {
			refresh = fr.Refresh
		}
		w.Glw.SetMonitor(glfw.GetPrimaryMonitor(), 0, 0, fr.Size.X, fr.Size.Y, refresh)
	} else {
		w.Glw.SetMonitor(nil, fr.Pos.X, fr.Pos.Y, fr.Size.X, fr.Size.Y, glfw.DontCare)
	}
	w.pos, w.size = fr.Pos, fr.Size
	w.fullscreen = fr.Fullscreen
	return nil
}

func (w *Window) Swap() {
	if w.Glw != nil {
		w.Glw.SwapBuffers()
	}
}

// Close delivers [system.EventDestroy] while the context is still
// current and then destroys the glfw window.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.d.direct++
	w.d.dispatch(&system.Event{Type: system.EventDestroy, Window: w})
	w.d.direct--
	w.destroy()
	w.d.events = nil
}

func (w *Window) attach(glw *glfw.Window) {
	w.Glw = glw
	glw.SetPos(w.pos.X, w.pos.Y)
	glw.SetPosCallback(w.Moved)
	glw.SetSizeCallback(w.WinResized)
	glw.SetCloseCallback(w.OnCloseReq)
	glw.SetRefreshCallback(w.Refresh)
	glw.SetFocusCallback(w.Focused)
	glw.SetKeyCallback(w.KeyEvent)
}

func (w *Window) destroy() {
	if w.Glw == nil {
		return
	}
	if glfw.GetCurrentContext() == w.Glw {
		glfw.DetachCurrentContext()
		w.d.glReady = false
	}
	w.Glw.Destroy()
	w.Glw = nil
}

// surface stands in for the device context: glfw creates the drawable
// together with the context, so the surface only carries the window.
type surface struct {
	w      *Window
	format system.PixelFormat
}

func (s *surface) Release() {}
