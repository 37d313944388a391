// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || freebsd

package desktop

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"polyverse.dev/game/system"
)

func TestGlfwKeyCode(t *testing.T) {
	assert.Equal(t, system.KeyEscape, GlfwKeyCode(glfw.KeyEscape))
	assert.Equal(t, system.KeyEnter, GlfwKeyCode(glfw.KeyEnter))
	assert.Equal(t, system.KeyEnter, GlfwKeyCode(glfw.KeyKPEnter))
	assert.Equal(t, system.KeyF11, GlfwKeyCode(glfw.KeyF11))
	assert.Equal(t, system.KeyUnknown, GlfwKeyCode(glfw.KeyA))
}

func TestGlfwMods(t *testing.T) {
	assert.Equal(t, system.ModAlt|system.ModShift, GlfwMods(glfw.ModAlt|glfw.ModShift))
	assert.Equal(t, system.Modifiers(0), GlfwMods(0))
}

func TestWindowBeforeCreate(t *testing.T) {
	d := NewDriver()
	w := &Window{d: d}
	assert.Zero(t, w.Handle())
	var sw system.Window = w
	assert.NotNil(t, sw)
}
