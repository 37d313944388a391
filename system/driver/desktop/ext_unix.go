// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (linux && !android) || freebsd

package desktop

// glXGetProcAddress returns a pointer for any name, so the GLX entry
// points are checked through the extensions that define them.
var extendedFunctions = []string{"GLX_ARB_create_context", "GLX_ARB_create_context_profile"}
