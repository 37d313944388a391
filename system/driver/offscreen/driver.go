// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen implements the system interfaces without a display.
// Events are posted by the caller and dispatched one at a time, platform
// calls can be made to fail, and GL error flags can be injected, so the
// game can be driven headless in tests and smoke runs.
package offscreen

import (
	"image"
	"slices"

	"polyverse.dev/game/gpu/glerr"
	"polyverse.dev/game/system"
)

// Operation names accepted by [Driver.Fail] and [Driver.Inject].
const (
	OpInit        = "init"
	OpWindow      = "window"
	OpProbe       = "probe"
	OpSurface     = "surface"
	OpPixelFormat = "pixel-format"
	OpContext     = "context"
	OpMakeCurrent = "make-current"
	OpExtensions  = "extensions"
	OpVideoMode   = "video-mode"
	OpFrame       = "frame"
)

// ExtendedFunctions are the entry points the offscreen driver exports,
// named after their WGL counterparts.
var ExtendedFunctions = []string{"wglChoosePixelFormatARB", "wglCreateContextAttribsARB"}

// Driver is a headless [system.Driver].
type Driver struct {
	// Screen is the size of the simulated screen.
	Screen image.Point

	// Exts are the extension strings contexts report.
	Exts []string

	// Missing are extended functions that do not resolve.
	Missing []string

	// Fail makes the named operation return the error.
	Fail map[string]error

	// Inject raises the GL error flags when the named operation runs.
	Inject map[string][]glerr.Code

	// CloseAfter, if positive, posts [system.EventClose] after that many
	// polls found no pending event.
	CloseAfter int

	// Trace lists the platform operations in the order they ran.
	Trace []string

	// Alerts are the alerts shown, most recent last.
	Alerts []Alert

	// Swaps counts presented frames.
	Swaps int

	// Probes and Contexts count live probes and contexts.
	Probes   int
	Contexts int

	mode    system.VideoMode
	flags   []glerr.Code
	events  []*system.Event
	idle    int
	win     *Window
	handler system.Handler
}

// Alert is an alert shown through [Driver.Alert].
type Alert struct {
	Message  string
	Title    string
	Severity system.Severity
}

var _ system.Driver = (*Driver)(nil)

// NewDriver returns a driver with a 1920x1080 screen.
func NewDriver() *Driver {
	return &Driver{
		Screen: image.Pt(1920, 1080),
		mode:   system.VideoMode{Width: 1920, Height: 1080, Depth: 32, Refresh: 60},
	}
}

func (d *Driver) op(name string) error {
	d.Trace = append(d.Trace, name)
	d.flags = append(d.flags, d.Inject[name]...)
	return d.Fail[name]
}

func (d *Driver) Init() error {
	if d.mode.Width == 0 {
		d.mode = system.VideoMode{Width: d.Screen.X, Height: d.Screen.Y, Depth: 32, Refresh: 60}
	}
	return d.op(OpInit)
}

func (d *Driver) Terminate() {
	d.Trace = append(d.Trace, "terminate")
}

func (d *Driver) NewWindow(opts *system.WindowOptions, h system.Handler) (system.Window, error) {
	if err := d.op(OpWindow); err != nil {
		return nil, err
	}
	w := &Window{d: d, title: opts.Title, pos: opts.Pos, size: opts.Size}
	d.win = w
	d.handler = h
	d.dispatch(&system.Event{Type: system.EventCreate, Window: w})
	return w, nil
}

func (d *Driver) OpenProbe() (system.Probe, error) {
	if err := d.op(OpProbe); err != nil {
		return nil, err
	}
	d.Probes++
	return &probe{d: d}, nil
}

func (d *Driver) ExtendedFunctions() []string {
	return ExtendedFunctions
}

// Post queues an event for the window.
func (d *Driver) Post(e *system.Event) {
	if e.Window == nil {
		e.Window = d.win
	}
	d.events = append(d.events, e)
}

// Queued returns the number of events waiting to be dispatched.
func (d *Driver) Queued() int {
	return len(d.events)
}

func (d *Driver) PollEvent() bool {
	if len(d.events) == 0 {
		d.idle++
		if d.CloseAfter > 0 && d.idle >= d.CloseAfter {
			d.idle = 0
			d.Post(&system.Event{Type: system.EventClose})
		}
		return false
	}
	e := d.events[0]
	d.events = d.events[1:]
	d.dispatch(e)
	return true
}

func (d *Driver) dispatch(e *system.Event) {
	if d.handler == nil {
		return
	}
	d.handler(e)
}

func (d *Driver) Display() system.Display {
	return display{d}
}

// Raise queues GL error flags as if a GL call had set them.
func (d *Driver) Raise(codes ...glerr.Code) {
	d.flags = append(d.flags, codes...)
}

func (d *Driver) Queue() glerr.Queue {
	return glerr.QueueFunc(func() glerr.Code {
		if len(d.flags) == 0 {
			return glerr.NoError
		}
		c := d.flags[0]
		d.flags = d.flags[1:]
		return c
	})
}

func (d *Driver) Alert(message, title string, sev system.Severity) {
	d.Alerts = append(d.Alerts, Alert{Message: message, Title: title, Severity: sev})
}

// Mode returns the current simulated video mode.
func (d *Driver) Mode() system.VideoMode {
	return d.mode
}

// Window returns the window created by [Driver.NewWindow], or nil.
func (d *Driver) Window() *Window {
	return d.win
}

// Traced reports whether op appears in the trace.
func (d *Driver) Traced(op string) bool {
	return slices.Contains(d.Trace, op)
}

type display struct {
	d *Driver
}

func (ds display) VideoMode() system.VideoMode {
	return ds.d.mode
}

func (ds display) SetVideoMode(m system.VideoMode) error {
	if err := ds.d.op(OpVideoMode); err != nil {
		return err
	}
	ds.d.mode = m
	return nil
}

func (ds display) ScreenSize() image.Point {
	return ds.d.Screen
}
