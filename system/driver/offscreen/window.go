// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"fmt"
	"image"
	"slices"

	"polyverse.dev/game/system"
)

// Window is the offscreen [system.Window].
type Window struct {
	d      *Driver
	title  string
	pos    image.Point
	size   image.Point
	frame  system.Frame
	closed bool
}

var _ system.Window = (*Window)(nil)

func (w *Window) Surface() (system.Surface, error) {
	if err := w.d.op(OpSurface); err != nil {
		return nil, err
	}
	return surface{w.d}, nil
}

func (w *Window) Geometry() (pos, size image.Point) {
	return w.pos, w.size
}

// SetFrame applies the frame and, like a native window, dispatches the
// resulting move and resize notifications before returning.
func (w *Window) SetFrame(fr system.Frame) error {
	if err := w.d.op(OpFrame); err != nil {
		return err
	}
	w.frame = fr
	w.pos, w.size = fr.Pos, fr.Size
	w.d.dispatch(&system.Event{Type: system.EventMove, Window: w, Pos: fr.Pos})
	w.d.dispatch(&system.Event{Type: system.EventResize, Window: w, Size: fr.Size})
	return nil
}

// Frame returns the last frame applied with SetFrame.
func (w *Window) Frame() system.Frame {
	return w.frame
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

func (w *Window) Swap() {
	w.d.Swaps++
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.d.Trace = append(w.d.Trace, "window.close")
	w.d.dispatch(&system.Event{Type: system.EventDestroy, Window: w})
}

// Closed reports whether the window has been closed.
func (w *Window) Closed() bool {
	return w.closed
}

func (w *Window) Handle() uintptr {
	return 0
}

type surface struct {
	d *Driver
}

func (s surface) Release() {
	s.d.Trace = append(s.d.Trace, "surface.release")
}

type probe struct {
	d      *Driver
	closed bool
}

func (p *probe) Resolve(name string) bool {
	p.d.Trace = append(p.d.Trace, "resolve "+name)
	return !slices.Contains(p.d.Missing, name)
}

func (p *probe) Extended() system.Extended {
	return extended{p.d}
}

func (p *probe) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.d.Probes--
	p.d.Trace = append(p.d.Trace, "probe.close")
}

type extended struct {
	d *Driver
}

func (x extended) ChoosePixelFormat(s system.Surface, pf system.PixelFormat) (int, error) {
	if err := x.d.op(OpPixelFormat); err != nil {
		return 0, err
	}
	return 1, nil
}

func (x extended) CreateContext(s system.Surface, format int, attrs system.ContextAttribs) (system.Context, error) {
	if err := x.d.op(OpContext); err != nil {
		return nil, err
	}
	x.d.Contexts++
	return &glContext{d: x.d, attrs: attrs}, nil
}

type glContext struct {
	d       *Driver
	attrs   system.ContextAttribs
	deleted bool
}

func (c *glContext) MakeCurrent() error {
	return c.d.op(OpMakeCurrent)
}

func (c *glContext) Extensions() []string {
	c.d.op(OpExtensions)
	return slices.Clone(c.d.Exts)
}

func (c *glContext) Version() string {
	return fmt.Sprintf("%d.%d offscreen", c.attrs.Major, c.attrs.Minor)
}

func (c *glContext) Delete() {
	if c.deleted {
		return
	}
	c.deleted = true
	c.d.Contexts--
	c.d.Trace = append(c.d.Trace, "context.delete")
}
