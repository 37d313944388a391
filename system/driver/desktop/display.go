// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || freebsd

package desktop

import (
	"fmt"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"polyverse.dev/game/base/errors"
	"polyverse.dev/game/system"
)

// display is the primary monitor. glfw changes the video mode of the
// monitor when a window is made fullscreen on it and restores it when
// the window leaves, so setting a mode only checks that the monitor has
// it; [Window.SetFrame] makes the change.
type display struct{}

func (display) VideoMode() system.VideoMode {
	mon := glfw.GetPrimaryMonitor()
	if mon == nil {
		return system.VideoMode{}
	}
	return videoMode(mon.GetVideoMode())
}

func (display) SetVideoMode(m system.VideoMode) error {
	mon := glfw.GetPrimaryMonitor()
	if mon == nil {
		return errors.Fail("no monitor is connected")
	}
	for _, vm := range mon.GetVideoModes() {
		if vm.Width == m.Width && vm.Height == m.Height {
			return nil
		}
	}
	return errors.Fail(fmt.Sprintf("monitor %s has no %dx%d video mode", mon.GetName(), m.Width, m.Height))
}

func (display) ScreenSize() image.Point {
	mon := glfw.GetPrimaryMonitor()
	if mon == nil {
		return image.Point{}
	}
	vm := mon.GetVideoMode()
	return image.Pt(vm.Width, vm.Height)
}

func videoMode(vm *glfw.VidMode) system.VideoMode {
	if vm == nil {
		return system.VideoMode{}
	}
	return system.VideoMode{
		Width:   vm.Width,
		Height:  vm.Height,
		Depth:   vm.RedBits + vm.GreenBits + vm.BlueBits,
		Refresh: vm.RefreshRate,
	}
}
