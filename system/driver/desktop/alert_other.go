// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || (linux && !android) || freebsd

package desktop

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"polyverse.dev/game/system"
)

// Alert writes the message to the terminal, with the title styled by
// severity. A fullscreen window is minimized so that the terminal
// can be seen, and restored afterward.
func (d *Driver) Alert(message, title string, sev system.Severity) {
	w := d.win
	if w != nil && w.Glw != nil && w.fullscreen {
		w.Glw.Iconify()
		defer w.Glw.Restore()
	}
	out := termenv.NewOutput(os.Stderr)
	head := out.String(fmt.Sprintf("%s (%s)", title, sev)).Bold()
	switch sev {
	case system.Error:
		head = head.Foreground(termenv.ANSIRed)
	case system.Warning:
		head = head.Foreground(termenv.ANSIYellow)
	}
	fmt.Fprintf(os.Stderr, "%s\n%s\n", head, message)
}
