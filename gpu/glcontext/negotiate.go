// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glcontext negotiates the game's OpenGL context. The extended
// pixel format and context creation entry points can only be looked up
// through a current context, so a throwaway probe context is created
// first, used to discover them, and destroyed before the real,
// feature-negotiated context is created on the game window.
package glcontext

import (
	"fmt"
	"log/slog"
	"slices"

	"polyverse.dev/game/base/errors"
	"polyverse.dev/game/gpu/glerr"
	"polyverse.dev/game/system"
)

// Request is the context the game asks for.
type Request struct {
	Major int
	Minor int
	Debug bool
}

// DefaultRequest is GL 4.1, the newest core profile available everywhere
// the game runs.
var DefaultRequest = Request{Major: 4, Minor: 1}

// PixelFormat returns the framebuffer configuration the game requires.
func PixelFormat() system.PixelFormat {
	return system.PixelFormat{
		DoubleBuffer: true,
		Accelerated:  true,
		SRGB:         true,
		RedBits:      8,
		GreenBits:    8,
		BlueBits:     8,
		AlphaBits:    8,
		DepthBits:    24,
		StencilBits:  8,
	}
}

// Attribs returns the context attributes for the request: a forward
// compatible core profile context of the requested version.
func (r Request) Attribs() system.ContextAttribs {
	return system.ContextAttribs{
		Major:             r.Major,
		Minor:             r.Minor,
		ForwardCompatible: true,
		CoreProfile:       true,
		Debug:             r.Debug,
	}
}

// Negotiator creates the game's GL context.
type Negotiator struct {
	Driver  system.Driver
	Request Request
}

// Negotiate creates the final context on win and makes it current.
// The returned state is [FinalContextActive] on success. On failure,
// everything created so far, the probe included, has been destroyed and
// the returned state records the phases reached.
func (n *Negotiator) Negotiate(win system.Window) (*State, error) {
	st := &State{}
	st.enter(Uninitialized)
	ext, err := n.discover(st)
	if err != nil {
		st.Destroy()
		return st, err
	}
	if err := n.create(st, win, ext); err != nil {
		st.Destroy()
		return st, err
	}
	if err := n.probe(st); err != nil {
		st.Destroy()
		return st, err
	}
	slog.Info("gl context ready", "version", st.Caps.Version, "spirv", st.Caps.SpirvBinary, "spirv_extensions", st.Caps.SpirvExtensions)
	return st, nil
}

// discover runs the probe phase. The probe is always closed on return.
func (n *Negotiator) discover(st *State) (system.Extended, error) {
	q := n.Driver.Queue()
	var pr system.Probe
	err := glerr.Checked(q, "open probe context", func() error {
		var err error
		pr, err = n.Driver.OpenProbe()
		return err
	})
	if pr != nil {
		defer pr.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("creating probe context: %w", err)
	}
	st.enter(DummyContextActive)

	for _, name := range n.Driver.ExtendedFunctions() {
		if !pr.Resolve(name) {
			return nil, errors.Fail(fmt.Sprintf("the graphics driver does not export %s", name))
		}
	}
	if err := glerr.Check(q); err != nil {
		return nil, fmt.Errorf("resolving extended functions: %w", err)
	}
	ext := pr.Extended()
	if ext == nil {
		return nil, errors.Fail("the graphics driver provides no extended context API")
	}
	st.enter(CapabilitiesDiscovered)
	return ext, nil
}

// create runs the final phase on the game window.
func (n *Negotiator) create(st *State, win system.Window, ext system.Extended) error {
	q := n.Driver.Queue()
	st.Window = win
	err := glerr.Checked(q, "get device surface", func() error {
		var err error
		st.Surface, err = win.Surface()
		return err
	})
	if err != nil {
		return err
	}

	var format int
	err = glerr.Checked(q, "choose pixel format", func() error {
		var err error
		format, err = ext.ChoosePixelFormat(st.Surface, PixelFormat())
		return err
	})
	if err != nil {
		return fmt.Errorf("no pixel format with double buffering, acceleration, sRGB, RGBA8, depth 24 and stencil 8: %w", err)
	}

	attrs := n.Request.Attribs()
	err = glerr.Checked(q, "create context", func() error {
		var err error
		st.Context, err = ext.CreateContext(st.Surface, format, attrs)
		return err
	})
	if err != nil {
		return fmt.Errorf("no OpenGL %d.%d core profile context: %w", attrs.Major, attrs.Minor, err)
	}

	err = glerr.Checked(q, "make context current", st.Context.MakeCurrent)
	if err != nil {
		return err
	}
	st.enter(FinalContextActive)
	return nil
}

// probe enumerates the extension strings once and records the ones
// that decide how shaders are loaded.
func (n *Negotiator) probe(st *State) error {
	return glerr.Checked(n.Driver.Queue(), "enumerate extensions", func() error {
		exts := st.Context.Extensions()
		st.Caps = Caps{
			SpirvBinary:     slices.Contains(exts, ExtSpirv),
			SpirvExtensions: slices.Contains(exts, ExtSpirvExtensions),
			Version:         st.Context.Version(),
			Extensions:      len(exts),
		}
		return nil
	})
}
