// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system defines the interfaces between the game and the
// platform: the windowing and event dispatch runtime, the GL driver
// entry points that need a window, the display device and the alert
// surface. Implementations live in system/driver.
package system

import (
	"image"

	"polyverse.dev/game/gpu/glerr"
)

// Driver is the windowing and event dispatch runtime.
type Driver interface {
	// Init initializes the runtime. It must be called on the main thread.
	Init() error

	// Terminate shuts the runtime down.
	Terminate()

	// NewWindow creates the main window and delivers [EventCreate] to h
	// before returning, as a native window procedure would. All later
	// events for the window are dispatched to h.
	NewWindow(opts *WindowOptions, h Handler) (Window, error)

	// OpenProbe creates a hidden throwaway window with a basic GL
	// context current, used to discover the extended context API.
	OpenProbe() (Probe, error)

	// ExtendedFunctions are the entry points that must resolve on a
	// probe before a feature-negotiated context can be created.
	ExtendedFunctions() []string

	// PollEvent dispatches at most one pending event and reports
	// whether one was dispatched. It does not block.
	PollEvent() bool

	// Display returns the display device the window is shown on.
	Display() Display

	// Queue returns the GL error flag queue of the current context.
	Queue() glerr.Queue

	// Alert shows a blocking modal message. It returns once the user
	// has dismissed it.
	Alert(message, title string, sev Severity)
}

// WindowOptions are the options for [Driver.NewWindow].
type WindowOptions struct {
	Title string
	Size  image.Point
	Pos   image.Point
}

// Window is the main window.
type Window interface {
	// Surface returns the device surface that contexts are created on.
	Surface() (Surface, error)

	// Geometry returns the position and client size of the window.
	Geometry() (pos, size image.Point)

	// SetFrame changes the window style and geometry together.
	SetFrame(fr Frame) error

	// Swap presents the back buffer.
	Swap()

	// Close destroys the window, delivering [EventDestroy].
	Close()

	// Handle returns the native window handle, or 0.
	Handle() uintptr
}

// Frame is a window style together with its geometry.
type Frame struct {
	// Fullscreen selects the borderless popup style instead of the
	// regular overlapped window style.
	Fullscreen bool

	Pos  image.Point
	Size image.Point

	// Refresh is the refresh rate to request in fullscreen, or 0.
	Refresh int
}

// Surface is a window's device surface (a device context).
type Surface interface {
	// Release returns the surface to the platform.
	Release()
}

// Probe is a hidden throwaway window with a basic context current.
type Probe interface {
	// Resolve reports whether the named entry point is exported by
	// the driver, looked up through the current context.
	Resolve(name string) bool

	// Extended returns the extended pixel format and context API,
	// valid after all [Driver.ExtendedFunctions] resolved. It remains
	// usable after the probe is closed.
	Extended() Extended

	// Close destroys the probe context and window.
	Close()
}

// Extended is the extended pixel format and context creation API.
type Extended interface {
	// ChoosePixelFormat selects a format matching pf on the surface
	// and returns its index.
	ChoosePixelFormat(s Surface, pf PixelFormat) (int, error)

	// CreateContext creates a context of the given format.
	CreateContext(s Surface, format int, attrs ContextAttribs) (Context, error)
}

// PixelFormat is a framebuffer configuration request.
type PixelFormat struct {
	DoubleBuffer bool
	Accelerated  bool
	SRGB         bool
	RedBits      int
	GreenBits    int
	BlueBits     int
	AlphaBits    int
	DepthBits    int
	StencilBits  int
}

// ContextAttribs are the requested context version and profile.
type ContextAttribs struct {
	Major             int
	Minor             int
	ForwardCompatible bool
	CoreProfile       bool
	Debug             bool
}

// Context is a GL rendering context.
type Context interface {
	// MakeCurrent binds the context to the calling thread.
	MakeCurrent() error

	// Extensions enumerates the extension strings the context reports.
	Extensions() []string

	// Version returns the GL version string.
	Version() string

	// Delete destroys the context.
	Delete()
}

// VideoMode is a display device mode.
type VideoMode struct {
	Width   int
	Height  int
	Depth   int
	Refresh int
}

// Display is the display device.
type Display interface {
	// VideoMode returns the current device mode.
	VideoMode() VideoMode

	// SetVideoMode changes the device mode.
	SetVideoMode(m VideoMode) error

	// ScreenSize returns the size of the full screen in pixels.
	ScreenSize() image.Point
}

// Severity is the icon and urgency of an alert.
type Severity int32

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "info"
}
