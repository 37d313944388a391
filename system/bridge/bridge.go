// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bridge carries failures raised inside event callbacks back to
// the run loop. A callback runs inside the platform's dispatcher, which
// must not be unwound by a panic; the bridge catches it there and holds
// it until the loop takes it right after the dispatch call returns.
package bridge

import (
	"fmt"
	"log/slog"

	"polyverse.dev/game/base/errors"
	"polyverse.dev/game/system"
)

// Bridge is a single-slot failure outbox between event callbacks and
// the run loop. It is confined to the thread running the loop and the
// dispatcher, so it has no lock.
type Bridge struct {
	pending error
	dropped int
}

// Wrap returns a handler that runs h and stores any error it returns,
// or any panic it raises, in the bridge. The returned handler always
// returns nil to the dispatcher.
func (b *Bridge) Wrap(h system.Handler) system.Handler {
	return func(e *system.Event) error {
		defer func() {
			if r := recover(); r != nil {
				b.Store(recovered(r, e))
			}
		}()
		if err := h(e); err != nil {
			b.Store(err)
		}
		return nil
	}
}

// Store puts err in the slot. If a failure is already pending it is
// replaced by err; the displaced failure is logged and counted in
// [Bridge.Dropped].
func (b *Bridge) Store(err error) {
	if err == nil {
		return
	}
	if b.pending != nil {
		b.dropped++
		slog.Error("event failure superseded before it was handled", "failure", b.pending.Error())
	}
	b.pending = err
}

// Pending reports whether a failure is waiting.
func (b *Bridge) Pending() bool {
	return b.pending != nil
}

// Take returns the pending failure, if any, and clears the slot.
func (b *Bridge) Take() error {
	err := b.pending
	b.pending = nil
	return err
}

// Dispatch calls fn, which enters the platform dispatcher, and then
// returns fn's own error joined with any failure a callback stored
// while it ran.
func (b *Bridge) Dispatch(fn func() error) error {
	err := fn()
	return errors.Join(err, b.Take())
}

// Dropped returns how many failures were replaced before being taken.
func (b *Bridge) Dropped() int {
	return b.dropped
}

func recovered(r any, e *system.Event) error {
	if err, ok := r.(error); ok {
		if _, ok := errors.AsFailure(err); ok {
			return err
		}
		return errors.Failf("panic in %v event: %w", e.Type, err)
	}
	return errors.Fail(fmt.Sprintf("panic in %v event: %v", e.Type, r))
}
