// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package args decodes the command line of the game into UTF-8
// arguments and adds extra arguments given in the environment.
package args

import (
	"fmt"
	"os"

	"github.com/mattn/go-shellwords"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

// ExtraEnv is the environment variable whose value is split into
// additional arguments by [Extra].
const ExtraEnv = "POLYVERSE_GAME_ARGS"

// Decode returns the program name and arguments as valid, NFC
// normalized UTF-8.
func Decode() []string {
	return Sanitize(decode())
}

// Extra splits the value of the environment variable env the way a
// shell would, returning nil if it is unset or empty.
func Extra(env string) ([]string, error) {
	s := os.Getenv(env)
	if s == "" {
		return nil, nil
	}
	a, err := shellwords.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", env, err)
	}
	return a, nil
}

// All returns [Decode] followed by the [Extra] arguments from [ExtraEnv].
func All() ([]string, error) {
	a := Decode()
	x, err := Extra(ExtraEnv)
	if err != nil {
		return a, err
	}
	return append(a, Sanitize(x)...), nil
}

// Sanitize replaces invalid UTF-8 sequences with U+FFFD and normalizes
// each argument to NFC, the form file names are compared in.
func Sanitize(a []string) []string {
	dec := unicode.UTF8.NewDecoder()
	out := make([]string, len(a))
	for i, s := range a {
		if v, err := dec.String(s); err == nil {
			s = v
		}
		out[i] = norm.NFC.String(s)
	}
	return out
}
