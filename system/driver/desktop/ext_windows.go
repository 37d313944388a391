// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

var extendedFunctions = []string{"wglChoosePixelFormatARB", "wglCreateContextAttribsARB"}
