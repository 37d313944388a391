// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "image"

// this is windows-specific special number for minimized windows.
// ad-hoc way to figure out whether a window is minimized or not.
const WindowsMinimizedPosition = -32000

// Minimized reports whether pos is the position Windows reports for a
// minimized window, which is not a position to restore.
func Minimized(pos image.Point) bool {
	return pos.X == WindowsMinimizedPosition && pos.Y == WindowsMinimizedPosition
}
