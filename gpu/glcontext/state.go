// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glcontext

import (
	"fmt"
	"log/slog"

	"polyverse.dev/game/system"
)

// Phases are the steps of context negotiation.
type Phases int32

const (
	Uninitialized Phases = iota
	DummyContextActive
	CapabilitiesDiscovered
	FinalContextActive
	Destroyed
)

var phaseNames = [...]string{"Uninitialized", "DummyContextActive", "CapabilitiesDiscovered", "FinalContextActive", "Destroyed"}

func (p Phases) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phases(%d)", p)
	}
	return phaseNames[p]
}

// Extension names probed on the final context.
const (
	ExtSpirv           = "GL_ARB_gl_spirv"
	ExtSpirvExtensions = "GL_ARB_spirv_extensions"
)

// Caps are the capabilities discovered on the final context.
type Caps struct {
	// SpirvBinary is whether shaders can be loaded as SPIR-V binaries.
	SpirvBinary bool

	// SpirvExtensions is whether SPIR-V extensions can be enabled.
	SpirvExtensions bool

	// Version is the GL version string of the context.
	Version string

	// Extensions is the number of extension strings reported.
	Extensions int
}

// State is the window, device surface and GL context of the game
// together with the capabilities negotiated for them.
type State struct {
	Window  system.Window
	Surface system.Surface
	Context system.Context
	Caps    Caps

	phase   Phases
	history []Phases
}

func (s *State) enter(p Phases) {
	s.phase = p
	s.history = append(s.history, p)
	slog.Debug("gl context", "phase", p)
}

// Phase returns the current negotiation phase.
func (s *State) Phase() Phases {
	return s.phase
}

// History returns every phase the state has entered, in order.
func (s *State) History() []Phases {
	return append([]Phases(nil), s.history...)
}

// Active reports whether the final context is current.
func (s *State) Active() bool {
	return s.phase == FinalContextActive
}

// Destroy releases the device surface, deletes the context and clears
// all handles. It is safe to call more than once.
func (s *State) Destroy() {
	if s == nil || s.phase == Destroyed {
		return
	}
	if s.Context != nil {
		s.Context.Delete()
		s.Context = nil
	}
	if s.Surface != nil {
		s.Surface.Release()
		s.Surface = nil
	}
	s.Window = nil
	s.Caps = Caps{}
	s.enter(Destroyed)
}
