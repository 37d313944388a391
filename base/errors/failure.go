// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Kind classifies a [Failure].
type Kind int32

const (
	// Generic is a free-form failure, typically a missing capability.
	Generic Kind = iota

	// GPU is a failure reported by the graphics driver through its
	// sticky error flags. It is recoverable at the frame boundary.
	GPU

	// Platform is a failed operating system or windowing call.
	// Its code is the platform's last-error value.
	Platform

	// Fatal is an unrecoverable fault; see [FatalHandler].
	Fatal
)

var kindNames = [...]string{"generic", "gpu", "platform", "fatal"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// FallbackMessage is what a [Failure] reports when it has neither
// a rendered nor a static message.
const FallbackMessage = "unknown failure"

// Origin is the source location at which a [Failure] was raised.
type Origin struct {
	File string
	Line int
}

// String returns "File: <file>, line: <line>", or "" for an unknown origin.
func (o Origin) String() string {
	if o.File == "" {
		return ""
	}
	return fmt.Sprintf("File: %s, line: %d", o.File, o.Line)
}

// Caller returns the origin of the function skip frames above the caller
// of Caller. Caller(0) is the location of the call to Caller itself.
func Caller(skip int) Origin {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Origin{}
	}
	return Origin{File: filepath.Base(file), Line: line}
}

// Failure is a typed failure carrying a low-level code, an optional
// static description and the location it was raised at. A Failure
// is immutable once constructed; share it freely, or use [Failure.Clone]
// for a copy that owns independent text.
type Failure struct {
	kind    Kind
	code    int
	static  string
	origin  Origin
	message string
	cause   error
}

// NewFailure returns a failure of the given kind. The rendered message
// joins the static text and the origin with a newline, omitting
// whichever part is empty.
func NewFailure(kind Kind, code int, static string, origin Origin, cause error) *Failure {
	f := &Failure{
		kind:   kind,
		code:   code,
		static: static,
		origin: origin,
		cause:  cause,
	}
	f.message = render(static, cause, origin)
	return f
}

func render(static string, cause error, origin Origin) string {
	text := static
	if cause != nil {
		if text == "" {
			text = cause.Error()
		} else {
			text += ": " + cause.Error()
		}
	}
	loc := origin.String()
	switch {
	case text == "":
		return loc
	case loc == "":
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 1 + len(loc))
	b.WriteString(text)
	b.WriteByte('\n')
	b.WriteString(loc)
	return b.String()
}

// Fail returns a [Generic] failure raised at the caller's location.
func Fail(text string) *Failure {
	return NewFailure(Generic, 0, text, Caller(1), nil)
}

// Failf is [Fail] with a format string. A %w verb wraps its operand.
func Failf(format string, a ...any) *Failure {
	err := fmt.Errorf(format, a...)
	origin := Caller(1)
	return &Failure{
		kind:    Generic,
		static:  err.Error(),
		origin:  origin,
		message: render(err.Error(), nil, origin),
		cause:   errors.Unwrap(err),
	}
}

// PlatformFailure returns a [Platform] failure for the named operation
// raised at the caller's location. code is the platform's last-error
// value and cause, if any, the error the platform reported.
func PlatformFailure(op string, code int, cause error) *Failure {
	static := fmt.Sprintf("%s failed (error %d)", op, code)
	return NewFailure(Platform, code, static, Caller(1), cause)
}

// Kind returns the classification of the failure.
func (f *Failure) Kind() Kind { return f.kind }

// Code returns the low-level code: a GL error flag for [GPU]
// failures, the last-error value for [Platform] failures.
func (f *Failure) Code() int { return f.code }

// Static returns the static description, which may be empty.
func (f *Failure) Static() string { return f.static }

// Origin returns where the failure was raised.
func (f *Failure) Origin() Origin { return f.origin }

// Error returns the rendered message if there is one, else the static
// message, else [FallbackMessage].
func (f *Failure) Error() string {
	switch {
	case f.message != "":
		return f.message
	case f.static != "":
		return f.static
	}
	return FallbackMessage
}

// Unwrap returns the underlying cause, if any.
func (f *Failure) Unwrap() error { return f.cause }

// Clone returns a copy of the failure whose text does not share
// storage with f.
func (f *Failure) Clone() *Failure {
	return &Failure{
		kind:    f.kind,
		code:    f.code,
		static:  strings.Clone(f.static),
		origin:  Origin{File: strings.Clone(f.origin.File), Line: f.origin.Line},
		message: strings.Clone(f.message),
		cause:   f.cause,
	}
}

// AsFailure returns the first [Failure] in err's tree.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	ok := errors.As(err, &f)
	return f, ok
}

// FatalHandler is called with every [Fatal] failure passed to [Abort].
// The default logs the failure and exits the process with status 3.
// Tests replace it to observe fatal faults without exiting.
var FatalHandler = func(f *Failure) {
	slog.Error("fatal", "failure", f.Error())
	os.Exit(3)
}

// Abort raises a [Fatal] failure at the caller's location and hands it
// to [FatalHandler]. It returns the failure in case the handler returns.
func Abort(text string) *Failure {
	f := NewFailure(Fatal, 0, text, Caller(1), nil)
	FatalHandler(f)
	return f
}
