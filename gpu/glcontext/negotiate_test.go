// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glcontext

import (
	"image"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"polyverse.dev/game/base/errors"
	"polyverse.dev/game/gpu/glerr"
	"polyverse.dev/game/system"
	"polyverse.dev/game/system/driver/offscreen"
)

func newWindow(t *testing.T, d *offscreen.Driver) system.Window {
	t.Helper()
	require.NoError(t, d.Init())
	w, err := d.NewWindow(&system.WindowOptions{Title: "test", Size: image.Pt(640, 480)}, nil)
	require.NoError(t, err)
	return w
}

func index(trace []string, op string) int {
	return slices.Index(trace, op)
}

func TestNegotiate(t *testing.T) {
	d := offscreen.NewDriver()
	d.Exts = []string{"GL_ARB_debug_output", ExtSpirv}
	w := newWindow(t, d)

	n := &Negotiator{Driver: d, Request: DefaultRequest}
	st, err := n.Negotiate(w)
	require.NoError(t, err)

	assert.Equal(t, []Phases{Uninitialized, DummyContextActive, CapabilitiesDiscovered, FinalContextActive}, st.History())
	assert.True(t, st.Active())
	assert.True(t, st.Caps.SpirvBinary)
	assert.False(t, st.Caps.SpirvExtensions)
	assert.Equal(t, 2, st.Caps.Extensions)
	assert.Equal(t, "4.1 offscreen", st.Caps.Version)
	assert.Same(t, w, st.Window)
	assert.NotNil(t, st.Surface)
	assert.NotNil(t, st.Context)

	assert.Equal(t, 0, d.Probes)
	assert.Equal(t, 1, d.Contexts)
	closed := index(d.Trace, "probe.close")
	require.GreaterOrEqual(t, closed, 0)
	assert.Less(t, index(d.Trace, offscreen.OpProbe), closed)
	assert.Less(t, closed, index(d.Trace, offscreen.OpSurface), "probe must be gone before the window surface is used")
	assert.Less(t, index(d.Trace, offscreen.OpPixelFormat), index(d.Trace, offscreen.OpContext))
}

func TestNegotiateMissingFunction(t *testing.T) {
	d := offscreen.NewDriver()
	d.Missing = []string{"wglCreateContextAttribsARB"}
	w := newWindow(t, d)

	st, err := (&Negotiator{Driver: d, Request: DefaultRequest}).Negotiate(w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wglCreateContextAttribsARB")
	f, ok := errors.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, errors.Generic, f.Kind())

	assert.NotContains(t, st.History(), CapabilitiesDiscovered)
	assert.NotContains(t, st.History(), FinalContextActive)
	assert.Equal(t, Destroyed, st.Phase())
	assert.Equal(t, 0, d.Probes, "probe leaked")
	assert.Equal(t, 0, d.Contexts)
	assert.False(t, d.Traced(offscreen.OpSurface))
	assert.False(t, d.Traced(offscreen.OpContext))
}

func TestNegotiateProbeFails(t *testing.T) {
	d := offscreen.NewDriver()
	d.Fail = map[string]error{offscreen.OpProbe: errors.New("no legacy pixel format")}
	w := newWindow(t, d)

	st, err := (&Negotiator{Driver: d, Request: DefaultRequest}).Negotiate(w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating probe context")
	assert.Equal(t, []Phases{Uninitialized, Destroyed}, st.History())
	assert.Equal(t, 0, d.Probes)
}

func TestNegotiateFinalPhaseFailures(t *testing.T) {
	for _, op := range []string{offscreen.OpSurface, offscreen.OpPixelFormat, offscreen.OpContext, offscreen.OpMakeCurrent} {
		t.Run(op, func(t *testing.T) {
			d := offscreen.NewDriver()
			d.Fail = map[string]error{op: errors.New(op + " refused")}
			w := newWindow(t, d)

			st, err := (&Negotiator{Driver: d, Request: DefaultRequest}).Negotiate(w)
			require.Error(t, err)
			assert.Contains(t, err.Error(), op+" refused")
			assert.NotContains(t, st.History(), FinalContextActive)
			assert.Contains(t, st.History(), CapabilitiesDiscovered)
			assert.Equal(t, Destroyed, st.Phase())
			assert.Nil(t, st.Context)
			assert.Nil(t, st.Surface)
			assert.Equal(t, 0, d.Probes)
			assert.Equal(t, 0, d.Contexts, "context leaked")
		})
	}
}

func TestNegotiateGLErrorBlamesStep(t *testing.T) {
	d := offscreen.NewDriver()
	d.Inject = map[string][]glerr.Code{offscreen.OpContext: {glerr.InvalidValue}}
	w := newWindow(t, d)

	_, err := (&Negotiator{Driver: d, Request: Request{Major: 4, Minor: 6}}).Negotiate(w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OpenGL 4.6 core profile")
	assert.Contains(t, err.Error(), "create context: GL_INVALID_VALUE")
	c, ok := glerr.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, glerr.InvalidValue, c)
	assert.Equal(t, 0, d.Contexts)
}

func TestNegotiateExtensionErrorFails(t *testing.T) {
	d := offscreen.NewDriver()
	d.Inject = map[string][]glerr.Code{offscreen.OpExtensions: {glerr.InvalidEnum}}
	w := newWindow(t, d)

	st, err := (&Negotiator{Driver: d, Request: DefaultRequest}).Negotiate(w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumerate extensions: GL_INVALID_ENUM")
	assert.Equal(t, Destroyed, st.Phase())
	assert.Equal(t, 0, d.Contexts)
	assert.Equal(t, 0, d.Probes)
}

func TestDestroyIdempotent(t *testing.T) {
	d := offscreen.NewDriver()
	w := newWindow(t, d)
	st, err := (&Negotiator{Driver: d, Request: DefaultRequest}).Negotiate(w)
	require.NoError(t, err)

	st.Destroy()
	st.Destroy()
	assert.Equal(t, Destroyed, st.Phase())
	assert.Nil(t, st.Window)
	assert.Nil(t, st.Context)
	assert.Equal(t, 0, d.Contexts)
	n := 0
	for _, op := range d.Trace {
		if op == "context.delete" {
			n++
		}
	}
	assert.Equal(t, 1, n)

	var nilState *State
	assert.NotPanics(t, nilState.Destroy)
}

func TestAttribs(t *testing.T) {
	a := Request{Major: 3, Minor: 3}.Attribs()
	assert.True(t, a.CoreProfile)
	assert.True(t, a.ForwardCompatible)
	pf := PixelFormat()
	assert.True(t, pf.SRGB)
	assert.Equal(t, 24, pf.DepthBits)
	assert.Equal(t, 8, pf.StencilBits)
}
