// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !ios

package desktop

import "unsafe"

// Handle returns the NSWindow of the window, or 0 before it is created.
func (w *Window) Handle() uintptr {
	if w.Glw == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(w.Glw.GetCocoaWindow()))
}
