// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package args

import (
	"log/slog"
	"os"

	"golang.org/x/sys/windows"
)

// decode splits the UTF-16 command line of the process itself, which
// keeps arguments the ANSI code page cannot represent.
func decode() []string {
	cmd := windows.UTF16PtrToString(windows.GetCommandLine())
	a, err := windows.DecomposeCommandLine(cmd)
	if err != nil {
		slog.Error("decoding command line", "err", err)
		return os.Args
	}
	return a
}
