// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"golang.org/x/sys/windows"
	"polyverse.dev/game/base/errors"
	"polyverse.dev/game/system"
)

const (
	mbOK              = 0x00000000
	mbIconError       = 0x00000010
	mbIconWarning     = 0x00000030
	mbIconInformation = 0x00000040
	mbSystemModal     = 0x00001000
	mbTaskModal       = 0x00002000
	mbSetForeground   = 0x00010000
)

// Alert shows a message box. A fullscreen window is minimized while
// the box is shown so that it cannot hide it, and the box is then
// system modal; otherwise it is modal to the game.
func (d *Driver) Alert(message, title string, sev system.Severity) {
	flags := uint32(mbOK | mbSetForeground)
	switch sev {
	case system.Error:
		flags |= mbIconError
	case system.Warning:
		flags |= mbIconWarning
	default:
		flags |= mbIconInformation
	}
	var owner windows.HWND
	w := d.win
	if w != nil && w.Glw != nil && w.fullscreen {
		w.Glw.Iconify()
		defer w.Glw.Restore()
		flags |= mbSystemModal
	} else if w == nil || w.Glw == nil {
		flags |= mbSystemModal
	} else {
		owner = windows.HWND(w.Handle())
		flags |= mbTaskModal
	}
	text := errors.Log1(windows.UTF16PtrFromString(message))
	caption := errors.Log1(windows.UTF16PtrFromString(title))
	errors.Log1(windows.MessageBox(owner, text, caption, flags))
}
