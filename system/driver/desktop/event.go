// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || freebsd

package desktop

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"polyverse.dev/game/system"
)

func GlfwMods(mod glfw.ModifierKey) system.Modifiers {
	var m system.Modifiers
	if mod&glfw.ModShift != 0 {
		m |= system.ModShift
	}
	if mod&glfw.ModControl != 0 {
		m |= system.ModControl
	}
	if mod&glfw.ModAlt != 0 {
		m |= system.ModAlt
	}
	if mod&glfw.ModSuper != 0 {
		m |= system.ModSuper
	}
	return m
}

// physical key
func (w *Window) KeyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	w.d.post(&system.Event{
		Type:   system.EventKey,
		Window: w,
		Key:    GlfwKeyCode(ky),
		Mods:   GlfwMods(mod),
		Down:   action != glfw.Release,
	})
}

func (w *Window) Moved(gw *glfw.Window, x, y int) {
	w.d.post(&system.Event{Type: system.EventMove, Window: w, Pos: image.Pt(x, y)})
}

func (w *Window) WinResized(gw *glfw.Window, width, height int) {
	w.d.post(&system.Event{Type: system.EventResize, Window: w, Size: image.Pt(width, height)})
}

func (w *Window) OnCloseReq(gw *glfw.Window) {
	// the window stays open until the game closes it
	gw.SetShouldClose(false)
	w.d.post(&system.Event{Type: system.EventClose, Window: w})
}

// Refresh is delivered while the user drags the window border, when
// the loop is blocked inside the platform's resize handling, so it is
// dispatched at once to keep the contents drawn.
func (w *Window) Refresh(gw *glfw.Window) {
	w.d.dispatch(&system.Event{Type: system.EventRefresh, Window: w})
}

func (w *Window) Focused(gw *glfw.Window, focused bool) {
	w.d.post(&system.Event{Type: system.EventFocus, Window: w, Focused: focused})
}

func GlfwKeyCode(kcode glfw.Key) system.Keys {
	switch kcode {
	case glfw.KeyEscape:
		return system.KeyEscape
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return system.KeyEnter
	case glfw.KeyF11:
		return system.KeyF11
	default:
		return system.KeyUnknown
	}
}
