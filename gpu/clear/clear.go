// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || freebsd

// Package clear is the render payload of the game shell: it clears the
// frame to the configured colour and draws a slowly turning triangle.
package clear

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"polyverse.dev/game/config"
	"polyverse.dev/game/gpu/glcontext"
)

const vertexShader = `#version 150 core
uniform float angle;
out vec3 color;
void main() {
	float a = angle + float(gl_VertexID) * 2.0943951;
	gl_Position = vec4(0.5 * cos(a), 0.5 * sin(a), 0.0, 1.0);
	color = vec3(gl_VertexID == 0, gl_VertexID == 1, gl_VertexID == 2);
}
` + "\x00"

const fragmentShader = `#version 150 core
in vec3 color;
out vec4 fragColor;
void main() {
	fragColor = vec4(color, 1.0);
}
` + "\x00"

// Payload clears the frame and draws one triangle.
type Payload struct {
	// Color is the clear colour.
	Color [3]float32

	// Speed is the rotation of the triangle in radians per second.
	Speed float64

	program uint32
	vao     uint32
	angleU  int32
	angle   float64
}

// New returns a payload with the clear colour of cfg.
func New(cfg *config.Config) (*Payload, error) {
	p := &Payload{Speed: 0.5}
	if err := p.Configure(cfg); err != nil {
		return nil, err
	}
	return p, nil
}

// Configure takes the clear colour from cfg.
func (p *Payload) Configure(cfg *config.Config) error {
	c, err := config.ParseColor(cfg.ClearColor)
	if err != nil {
		return err
	}
	p.Color = c
	return nil
}

func (p *Payload) Init(st *glcontext.State) error {
	if st.Caps.SpirvBinary {
		slog.Debug("SPIR-V shader binaries are supported; using GLSL source")
	}
	vs, err := compile(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vs)
	fs, err := compile(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(fs)

	p.program = gl.CreateProgram()
	gl.AttachShader(p.program, vs)
	gl.AttachShader(p.program, fs)
	gl.LinkProgram(p.program)
	var status int32
	gl.GetProgramiv(p.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p.program, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p.program, logLength, nil, gl.Str(msg))
		gl.DeleteProgram(p.program)
		p.program = 0
		return fmt.Errorf("failed to link program: %v", strings.TrimRight(msg, "\x00"))
	}
	p.angleU = gl.GetUniformLocation(p.program, gl.Str("angle\x00"))

	// a core profile context draws nothing without a vertex array bound
	gl.GenVertexArrays(1, &p.vao)
	gl.Enable(gl.FRAMEBUFFER_SRGB)
	return nil
}

func (p *Payload) Update(dt time.Duration) error {
	p.angle = math.Mod(p.angle+p.Speed*dt.Seconds(), 2*math.Pi)
	return nil
}

func (p *Payload) Render(size image.Point) error {
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
	gl.ClearColor(p.Color[0], p.Color[1], p.Color[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(p.program)
	gl.Uniform1f(p.angleU, float32(p.angle))
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	return nil
}

func (p *Payload) Release() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}

// compile compiles a NUL terminated GLSL source.
func compile(typ uint32, src string) (uint32, error) {
	handle := gl.CreateShader(typ)
	csources, free := gl.Strs(src)
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("failed to compile:\n%v\nerror: %v", strings.TrimRight(src, "\x00"), strings.TrimRight(msg, "\x00"))
	}
	return handle, nil
}
