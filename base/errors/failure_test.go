// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	at := Origin{File: "main.go", Line: 42}
	assert.Equal(t, "boom\nFile: main.go, line: 42", NewFailure(Generic, 0, "boom", at, nil).Error())
	assert.Equal(t, "File: main.go, line: 42", NewFailure(GPU, 7, "", at, nil).Error())
	assert.Equal(t, "boom", NewFailure(Generic, 0, "boom", Origin{}, nil).Error())
	assert.Equal(t, FallbackMessage, NewFailure(Generic, 0, "", Origin{}, nil).Error())
}

func TestWhatFallsBackToStatic(t *testing.T) {
	f := &Failure{static: "static only"}
	assert.Equal(t, "static only", f.Error())
	assert.Equal(t, FallbackMessage, (&Failure{}).Error())
}

func TestFailRecordsCaller(t *testing.T) {
	f := Fail("missing capability")
	assert.Equal(t, Generic, f.Kind())
	assert.Equal(t, "failure_test.go", f.Origin().File)
	assert.NotZero(t, f.Origin().Line)
	assert.True(t, strings.HasPrefix(f.Error(), "missing capability\nFile: failure_test.go, line: "))
}

func TestFailfWraps(t *testing.T) {
	f := Failf("reading %s: %w", "config", io.EOF)
	assert.ErrorIs(t, f, io.EOF)
	assert.Equal(t, "reading config: EOF", f.Static())
}

func TestPlatformFailure(t *testing.T) {
	cause := fmt.Errorf("access denied")
	f := PlatformFailure("ChangeDisplaySettings", 5, cause)
	assert.Equal(t, Platform, f.Kind())
	assert.Equal(t, 5, f.Code())
	assert.Contains(t, f.Error(), "ChangeDisplaySettings failed (error 5): access denied")
	assert.ErrorIs(t, f, cause)
}

func TestCloneDoesNotAlias(t *testing.T) {
	orig := NewFailure(GPU, 0x500, "GL_INVALID_ENUM", Origin{File: "frame.go", Line: 9}, nil)
	cp := orig.Clone()
	require.NotSame(t, orig, cp)
	assert.Equal(t, orig.Error(), cp.Error())
	assert.Equal(t, orig.Static(), cp.Static())
	assert.Equal(t, orig.Origin(), cp.Origin())
	assert.NotSame(t, unsafe.StringData(orig.Error()), unsafe.StringData(cp.Error()))
	assert.NotSame(t, unsafe.StringData(orig.Static()), unsafe.StringData(cp.Static()))
	assert.NotSame(t, unsafe.StringData(orig.Origin().File), unsafe.StringData(cp.Origin().File))
	assert.Equal(t, "GL_INVALID_ENUM\nFile: frame.go, line: 9", cp.Error())
}

func TestAsFailure(t *testing.T) {
	err := fmt.Errorf("frame: %w", Fail("broken"))
	f, ok := AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, "broken", f.Static())

	_, ok = AsFailure(io.EOF)
	assert.False(t, ok)
}

func TestAbortCallsHandler(t *testing.T) {
	old := FatalHandler
	defer func() { FatalHandler = old }()
	var got *Failure
	FatalHandler = func(f *Failure) { got = f }

	f := Abort("driver never clears its error state")
	require.NotNil(t, got)
	assert.Same(t, f, got)
	assert.Equal(t, Fatal, got.Kind())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "gpu", GPU.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
