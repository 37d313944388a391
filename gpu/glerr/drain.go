// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glerr

import (
	"fmt"
	"log/slog"

	"polyverse.dev/game/base/errors"
)

// MaxRepeats is the number of consecutive identical flags [Drain] accepts
// from the driver. A driver that returns the same flag more often than this
// is not clearing its error state, and draining would never terminate.
const MaxRepeats = 4096

// Queue is the driver's sticky error flag queue.
type Queue interface {
	// NextError returns and clears the next pending flag,
	// or [NoError] once the queue is empty.
	NextError() Code
}

// QueueFunc adapts a function to a [Queue].
type QueueFunc func() Code

func (f QueueFunc) NextError() Code { return f() }

// Drain empties the queue, returning one failure per run of identical
// flags, in the order the driver reported them. More than [MaxRepeats]
// consecutive identical flags is a fatal fault handed to
// [errors.FatalHandler]; if that returns, Drain stops and returns what
// it has.
func Drain(q Queue, file string, line int) []*errors.Failure {
	var fs []*errors.Failure
	prev := NoError
	repeats := 0
	for {
		c := q.NextError()
		if c == NoError {
			return fs
		}
		if c == prev {
			repeats++
			if repeats >= MaxRepeats {
				errors.Abort(fmt.Sprintf("%s repeated more than %d times: the driver is not clearing its error state (%s)", c, MaxRepeats, errors.Origin{File: file, Line: line}))
				return fs
			}
			continue
		}
		prev = c
		repeats = 0
		fs = append(fs, NewFailure(c, file, line))
	}
}

// Check drains the queue at the caller's location, logs every failure
// and returns them joined, or nil if the queue was empty.
func Check(q Queue) error {
	at := errors.Caller(1)
	return report(Drain(q, at.File, at.Line))
}

// Checked runs fn and then drains the queue, so that flags raised by fn
// are reported against op rather than against a later operation.
// The result joins fn's own error with any GL failures.
func Checked(q Queue, op string, fn func() error) error {
	at := errors.Caller(1)
	err := fn()
	gerr := report(Drain(q, at.File, at.Line))
	if gerr != nil {
		gerr = fmt.Errorf("%s: %w", op, gerr)
	}
	return errors.Join(err, gerr)
}

func report(fs []*errors.Failure) error {
	if len(fs) == 0 {
		return nil
	}
	errs := make([]error, len(fs))
	for i, f := range fs {
		slog.Error("gl error", "code", Code(f.Code()), "at", f.Origin())
		errs[i] = f
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}
