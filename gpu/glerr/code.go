// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glerr translates OpenGL error flags into failures and drains
// the driver's sticky error flag queue.
package glerr

import "fmt"

// Code is an OpenGL error flag as returned by glGetError.
// The values match the GL enumerants.
type Code uint32

const (
	NoError                     Code = 0
	InvalidEnum                 Code = 0x0500
	InvalidValue                Code = 0x0501
	InvalidOperation            Code = 0x0502
	StackOverflow               Code = 0x0503
	StackUnderflow              Code = 0x0504
	OutOfMemory                 Code = 0x0505
	InvalidFramebufferOperation Code = 0x0506
)

type codeInfo struct {
	name string
	desc string
}

var codes = map[Code]codeInfo{
	NoError:                     {"GL_NO_ERROR", "No error has been recorded."},
	InvalidEnum:                 {"GL_INVALID_ENUM", "An unacceptable value is specified for an enumerated argument."},
	InvalidValue:                {"GL_INVALID_VALUE", "A numeric argument is out of range."},
	InvalidOperation:            {"GL_INVALID_OPERATION", "The specified operation is not allowed in the current state."},
	InvalidFramebufferOperation: {"GL_INVALID_FRAMEBUFFER_OPERATION", "The framebuffer object is not complete."},
	OutOfMemory:                 {"GL_OUT_OF_MEMORY", "There is not enough memory left to execute the command."},
	StackUnderflow:              {"GL_STACK_UNDERFLOW", "An attempt has been made to perform an operation that would cause an internal stack to underflow."},
	StackOverflow:               {"GL_STACK_OVERFLOW", "An attempt has been made to perform an operation that would cause an internal stack to overflow."},
}

// Known returns whether c is one of the defined GL error flags.
func (c Code) Known() bool {
	_, ok := codes[c]
	return ok
}

// String returns the symbolic GL name of the code, or its hex value.
func (c Code) String() string {
	if ci, ok := codes[c]; ok {
		return ci.name
	}
	return fmt.Sprintf("0x%04X", uint32(c))
}

// Description returns the static description of a known code:
// its symbolic name and value on the first line, then what it means.
// Unknown codes have an empty description.
func (c Code) Description() string {
	ci, ok := codes[c]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s (0x%04X)\n%s", ci.name, uint32(c), ci.desc)
}
