// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !ios

package desktop

// core profile contexts are created by the pixel format on macOS
var extendedFunctions []string
