// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glerr

import (
	"fmt"

	"polyverse.dev/game/base/errors"
)

// NewFailure returns the [errors.GPU] failure for the given flag raised
// at file:line. Unknown flags have an empty static description and a
// rendered message that names the numeric value.
func NewFailure(c Code, file string, line int) *errors.Failure {
	at := errors.Origin{File: file, Line: line}
	if c.Known() {
		return errors.NewFailure(errors.GPU, int(c), c.Description(), at, nil)
	}
	unknown := fmt.Errorf("Unknown GL error flag (0x%04X)", uint32(c))
	return errors.NewFailure(errors.GPU, int(c), "", at, unknown)
}

// CodeOf returns the GL flag of err if it is a GPU failure.
func CodeOf(err error) (Code, bool) {
	f, ok := errors.AsFailure(err)
	if !ok || f.Kind() != errors.GPU {
		return NoError, false
	}
	return Code(f.Code()), true
}
