// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || freebsd

// Package desktop implements the system interfaces with glfw and
// OpenGL on the desktop platforms.
package desktop

import (
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"polyverse.dev/game/base/errors"
	"polyverse.dev/game/gpu/glerr"
	"polyverse.dev/game/system"
)

func init() {
	// some operating systems require us to be on the main thread
	runtime.LockOSThread()
}

// Driver is the [system.Driver] for the desktop platforms.
type Driver struct {
	win     *Window
	handler system.Handler
	events  []*system.Event

	// direct is positive while a call that must notify before it
	// returns is running; events are then dispatched as they arrive
	// instead of being queued.
	direct int

	// glReady is whether the GL function pointers have been loaded
	// for the game context.
	glReady bool
}

var _ system.Driver = (*Driver)(nil)

// NewDriver returns a new desktop driver.
func NewDriver() *Driver {
	return &Driver{}
}

func (d *Driver) Init() error {
	if err := glfw.Init(); err != nil {
		return errors.PlatformFailure("glfwInit", glfwCode(err), err)
	}
	return nil
}

func (d *Driver) Terminate() {
	if d.win != nil {
		d.win.destroy()
	}
	glfw.Terminate()
}

// NewWindow creates the window. The glfw window itself, which carries
// the context, is created when the handler negotiates the context
// while handling [system.EventCreate].
func (d *Driver) NewWindow(opts *system.WindowOptions, h system.Handler) (system.Window, error) {
	w := &Window{d: d, title: opts.Title, pos: opts.Pos, size: opts.Size}
	d.win = w
	d.handler = h
	d.direct++
	d.dispatch(&system.Event{Type: system.EventCreate, Window: w})
	d.direct--
	if w.Glw != nil && !w.closed {
		w.Glw.Show()
	}
	return w, nil
}

func (d *Driver) OpenProbe() (system.Probe, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glw, err := glfw.CreateWindow(16, 16, "Probe Window", nil, nil)
	if err != nil {
		return nil, errors.PlatformFailure("glfwCreateWindow", glfwCode(err), err)
	}
	glw.MakeContextCurrent()
	return &probe{d: d, glw: glw}, nil
}

func (d *Driver) ExtendedFunctions() []string {
	return extendedFunctions
}

// PollEvent processes pending platform events if none are queued and
// dispatches the first queued one.
func (d *Driver) PollEvent() bool {
	if len(d.events) == 0 {
		glfw.PollEvents()
	}
	if len(d.events) == 0 {
		return false
	}
	e := d.events[0]
	d.events = d.events[1:]
	d.dispatch(e)
	return true
}

func (d *Driver) post(e *system.Event) {
	if d.direct > 0 {
		d.dispatch(e)
		return
	}
	d.events = append(d.events, e)
}

func (d *Driver) dispatch(e *system.Event) {
	if d.handler == nil {
		return
	}
	d.handler(e)
}

func (d *Driver) Display() system.Display {
	return display{}
}

// Queue returns the error flags of the game context. It is empty while
// no context with loaded GL functions is current.
func (d *Driver) Queue() glerr.Queue {
	return glerr.QueueFunc(func() glerr.Code {
		if !d.glReady || glfw.GetCurrentContext() == nil {
			return glerr.NoError
		}
		return glerr.Code(gl.GetError())
	})
}

func glfwCode(err error) int {
	var ge *glfw.Error
	if errors.As(err, &ge) {
		return int(ge.Code)
	}
	return 0
}

// guard turns a panic raised by glfw for a failed call into an error.
// It must be deferred.
func guard(op string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	ge, ok := r.(*glfw.Error)
	if !ok {
		panic(r)
	}
	*err = errors.PlatformFailure(op, int(ge.Code), ge)
}
