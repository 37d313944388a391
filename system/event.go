// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"image"
)

// EventTypes are the notifications the driver delivers to a [Handler].
type EventTypes int32

const (
	// EventCreate is delivered once while the window is being created.
	EventCreate EventTypes = iota

	// EventDestroy is delivered when the window is being destroyed.
	EventDestroy

	// EventClose is a request from the user to close the window.
	EventClose

	// EventMove is delivered when the window has moved.
	EventMove

	// EventResize is delivered when the client size has changed.
	EventResize

	// EventRefresh asks for the window contents to be redrawn,
	// including while the user is live-resizing the window.
	EventRefresh

	// EventFocus is delivered when the window gains or loses focus.
	EventFocus

	// EventKey is a physical key press or release.
	EventKey
)

var eventNames = [...]string{"Create", "Destroy", "Close", "Move", "Resize", "Refresh", "Focus", "Key"}

func (t EventTypes) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return fmt.Sprintf("EventTypes(%d)", t)
	}
	return eventNames[t]
}

// Keys are the keys the game reacts to. Other keys are delivered as KeyUnknown.
type Keys int32

const (
	KeyUnknown Keys = iota
	KeyEscape
	KeyEnter
	KeyF11
)

// Modifiers are the modifier keys held during a key event.
type Modifiers int32

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Event is a notification delivered to a [Handler].
type Event struct {
	Type EventTypes

	// Window is the window the event is for. For [EventCreate] it is
	// the window under construction.
	Window Window

	// Pos is the new window position for [EventMove].
	Pos image.Point

	// Size is the new client size for [EventResize].
	Size image.Point

	// Key, Mods and Down describe an [EventKey].
	Key  Keys
	Mods Modifiers
	Down bool

	// Focused is the new focus state for [EventFocus].
	Focused bool
}

// Handler is the window event callback. It is invoked by the driver
// from inside its dispatch, which must never see a panic; see
// package bridge.
type Handler func(e *Event) error
