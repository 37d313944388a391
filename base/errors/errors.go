// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides the failure taxonomy of the game bootstrap
// together with helpers for logging and handling errors. It mirrors
// the standard errors package so that it can be used in its place.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
)

// New is [errors.New]. It returns a plain error without an origin;
// use [Fail] for a [Failure] that records where it was raised.
func New(text string) error {
	return errors.New(text)
}

// Errorf is [fmt.Errorf].
func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

// Is is [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Log logs the given error if it is non-nil and returns it.
// The intended usage is:
//
//	errors.Log(win.SetFrame(fr))
//	// or
//	return errors.Log(win.SetFrame(fr))
func Log(err error) error {
	if err != nil {
		logError(err)
	}
	return err
}

// Log1 returns the given value, logging the error if it is non-nil:
//
//	sz := errors.Log1(readSize())
func Log1[T any](v T, err error) T {
	if err != nil {
		logError(err)
	}
	return v
}

func logError(err error) {
	var f *Failure
	if errors.As(err, &f) {
		slog.Error(err.Error(), "kind", f.Kind(), "code", f.Code())
		return
	}
	slog.Error(err.Error())
}
