// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.Equal(t, io.EOF, Log(io.EOF))
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(0, Fail("nope")))
}
