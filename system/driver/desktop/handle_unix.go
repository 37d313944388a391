// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (linux && !android) || freebsd

package desktop

// Handle returns the X11 window id, or 0 before the window is created.
func (w *Window) Handle() uintptr {
	if w.Glw == nil {
		return 0
	}
	return uintptr(w.Glw.GetX11Window())
}
