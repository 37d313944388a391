// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glerr

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"polyverse.dev/game/base/errors"
)

// script is a driver queue that yields its codes in order and then
// reports no error.
type script struct {
	codes []Code
	calls int
}

func (s *script) NextError() Code {
	s.calls++
	if len(s.codes) == 0 {
		return NoError
	}
	c := s.codes[0]
	s.codes = s.codes[1:]
	return c
}

func repeat(c Code, n int) []Code {
	cs := make([]Code, n)
	for i := range cs {
		cs[i] = c
	}
	return cs
}

func catchFatal(t *testing.T) *[]*errors.Failure {
	old := errors.FatalHandler
	t.Cleanup(func() { errors.FatalHandler = old })
	var got []*errors.Failure
	errors.FatalHandler = func(f *errors.Failure) { got = append(got, f) }
	return &got
}

var allCodes = []Code{NoError, InvalidEnum, InvalidValue, InvalidOperation, InvalidFramebufferOperation, OutOfMemory, StackUnderflow, StackOverflow}

func TestNewFailureKnownCodes(t *testing.T) {
	for _, c := range allCodes {
		f := NewFailure(c, "render.go", 12)
		assert.Equal(t, errors.GPU, f.Kind())
		assert.Equal(t, int(c), f.Code())
		assert.NotEmpty(t, f.Static(), c.String())
		assert.Contains(t, f.Static(), c.String())
		assert.True(t, strings.HasPrefix(c.String(), "GL_"))
		assert.Equal(t, f.Static()+"\nFile: render.go, line: 12", f.Error())
	}
}

func TestNewFailureUnknownCode(t *testing.T) {
	f := NewFailure(Code(0x1234), "render.go", 3)
	assert.Empty(t, f.Static())
	assert.Contains(t, f.Error(), "0x1234")
	assert.Contains(t, f.Error(), "File: render.go, line: 3")
	assert.False(t, Code(0x1234).Known())
	assert.Equal(t, "0x1234", Code(0x1234).String())
}

func TestNewFailureNoOrigin(t *testing.T) {
	f := NewFailure(InvalidValue, "", 0)
	assert.Equal(t, f.Static(), f.Error())
}

func TestDrainEmpty(t *testing.T) {
	q := &script{}
	assert.Empty(t, Drain(q, "a.go", 1))
	assert.Equal(t, 1, q.calls)
}

func TestDrainRepeatedCodeReportsOnce(t *testing.T) {
	fatal := catchFatal(t)
	q := &script{codes: repeat(InvalidOperation, MaxRepeats)}
	fs := Drain(q, "a.go", 1)
	require.Len(t, fs, 1)
	assert.Equal(t, int(InvalidOperation), fs[0].Code())
	assert.Empty(t, *fatal)
	assert.Empty(t, q.codes)
}

func TestDrainDistinctInSequence(t *testing.T) {
	q := &script{codes: []Code{InvalidEnum, InvalidEnum, InvalidValue, InvalidEnum, OutOfMemory}}
	fs := Drain(q, "a.go", 1)
	var got []Code
	for _, f := range fs {
		got = append(got, Code(f.Code()))
	}
	assert.Equal(t, []Code{InvalidEnum, InvalidValue, InvalidEnum, OutOfMemory}, got)
}

func TestDrainNonClearingDriverIsFatal(t *testing.T) {
	fatal := catchFatal(t)
	calls := 0
	stuck := QueueFunc(func() Code {
		calls++
		return OutOfMemory
	})
	fs := Drain(stuck, "a.go", 1)
	require.Len(t, *fatal, 1)
	assert.Equal(t, errors.Fatal, (*fatal)[0].Kind())
	assert.Contains(t, (*fatal)[0].Error(), "GL_OUT_OF_MEMORY")
	assert.Len(t, fs, 1)
	assert.Equal(t, MaxRepeats+1, calls)
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(&script{}))

	err := Check(&script{codes: []Code{InvalidEnum}})
	c, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, InvalidEnum, c)
	f, _ := errors.AsFailure(err)
	assert.Equal(t, "glerr_test.go", f.Origin().File)

	err = Check(&script{codes: []Code{InvalidEnum, InvalidValue}})
	assert.Contains(t, err.Error(), "GL_INVALID_ENUM")
	assert.Contains(t, err.Error(), "GL_INVALID_VALUE")
}

func TestChecked(t *testing.T) {
	q := &script{codes: []Code{InvalidOperation}}
	err := Checked(q, "link program", func() error { return io.EOF })
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "link program: GL_INVALID_OPERATION")

	assert.NoError(t, Checked(&script{}, "clear", func() error { return nil }))
}

func TestCodeOfNonGPU(t *testing.T) {
	_, ok := CodeOf(errors.Fail("x"))
	assert.False(t, ok)
}
