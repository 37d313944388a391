// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"runtime"
	"strings"
)

// Note: the OS list is derived from https://github.com/golang/go/blob/master/src/go/build/syslist.go

// Platform is a platform with an operating system and an architecture
type Platform struct {
	OS   string
	Arch string
}

// Current returns the platform the game is running on.
func Current() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// String returns the platform as a string in the form "os/arch"
func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}

// SetString sets the platform from the given string of format os[/arch]
func (p *Platform) SetString(platform string) error {
	before, after, found := strings.Cut(platform, "/")
	if _, ok := DesktopOS[before]; !ok {
		return fmt.Errorf("could not find operating system %q; please check that you spelled it correctly", before)
	}
	if !found {
		after = "*"
	}
	*p = Platform{OS: before, Arch: after}
	return nil
}

// DesktopSupported returns nil if the game can open a native window and
// an OpenGL context on the platform. Otherwise it returns an error saying
// why, and the game can only run offscreen.
func (p Platform) DesktopSupported() error {
	supported, ok := DesktopOS[p.OS]
	if !ok {
		return fmt.Errorf("unknown operating system %s", p.OS)
	}
	if !supported {
		return fmt.Errorf("no desktop OpenGL driver on %s", p)
	}
	return nil
}

// DesktopOS is a map containing all operating systems and whether the
// desktop driver supports them.
var DesktopOS = map[string]bool{
	"aix":       false,
	"android":   false,
	"darwin":    true,
	"dragonfly": false,
	"freebsd":   true,
	"hurd":      false,
	"illumos":   false,
	"ios":       false,
	"js":        false,
	"linux":     true,
	"nacl":      false,
	"netbsd":    false,
	"openbsd":   false,
	"plan9":     false,
	"solaris":   false,
	"wasip1":    false,
	"windows":   true,
	"zos":       false,
}
