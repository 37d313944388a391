// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"image"
	"time"

	"polyverse.dev/game/config"
	"polyverse.dev/game/gpu/glcontext"
)

// Payload is what the game renders. All of its methods are called on
// the thread running the loop with the game context current.
type Payload interface {
	// Init creates the GPU resources of the payload once the context
	// has been negotiated. st.Caps says how shaders can be loaded.
	Init(st *glcontext.State) error

	// Update advances the simulation by dt.
	Update(dt time.Duration) error

	// Render draws one frame into a surface of the given size.
	Render(size image.Point) error

	// Release frees the GPU resources while the context is still current.
	Release()
}

// Configurer is implemented by payloads that take settings from a
// reloaded configuration.
type Configurer interface {
	Configure(cfg *config.Config) error
}

// Idle is a [Payload] that draws nothing, used when running offscreen.
type Idle struct {
	Frames int
}

func (p *Idle) Init(st *glcontext.State) error { return nil }

func (p *Idle) Update(dt time.Duration) error { return nil }

func (p *Idle) Render(size image.Point) error {
	p.Frames++
	return nil
}

func (p *Idle) Release() {}
