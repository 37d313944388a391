// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up structured logging with [slog] for the game,
// with the verbosity chosen by the user and coloured level names.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected.
// Messages at levels at or above it are shown. It is typically set
// from command-line flags through [LevelFromFlags].
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the [slog.Level] for the given user flags:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger returns a logger writing to w at [UserLevel], with level
// names coloured when w is a terminal and without timestamps.
func NewLogger(w io.Writer) *slog.Logger {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, _ := a.Value.Any().(slog.Level)
				a.Value = slog.StringValue(LevelColor(out, lvl))
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SetDefaultLogger installs a logger from [NewLogger] on stderr as
// the [slog] default.
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}

// LevelColor returns the name of the level styled for the given output.
func LevelColor(out *termenv.Output, lvl slog.Level) string {
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case lvl >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSICyan)
	default:
		s = s.Faint()
	}
	return s.String()
}
