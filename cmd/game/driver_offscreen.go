// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !((darwin && !ios) || windows || (linux && !android) || freebsd)

package main

import (
	"polyverse.dev/game/app"
	"polyverse.dev/game/config"
	"polyverse.dev/game/system"
	"polyverse.dev/game/system/driver/offscreen"
)

func newDriver(cfg *config.Config) (system.Driver, app.Payload, error) {
	return offscreen.NewDriver(), &app.Idle{}, nil
}
