// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || freebsd

package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"polyverse.dev/game/base/errors"
	"polyverse.dev/game/system"
)

// probe is a hidden 16x16 window whose basic context is current while
// it is open.
type probe struct {
	d   *Driver
	glw *glfw.Window
}

// Resolve looks up platform entry points through the current context
// and everything else as an extension of the context or the platform.
func (p *probe) Resolve(name string) bool {
	if strings.HasPrefix(name, "wgl") || strings.HasPrefix(name, "glX") {
		return glfw.GetProcAddress(name) != nil
	}
	return glfw.ExtensionSupported(name)
}

func (p *probe) Extended() system.Extended {
	return extended{d: p.d}
}

func (p *probe) Close() {
	if p.glw == nil {
		return
	}
	glfw.DetachCurrentContext()
	p.glw.Destroy()
	p.glw = nil
}

// extended creates contexts through glfw window hints.
type extended struct {
	d *Driver
}

func (x extended) ChoosePixelFormat(s system.Surface, pf system.PixelFormat) (int, error) {
	sf, ok := s.(*surface)
	if !ok {
		return 0, errors.Fail(fmt.Sprintf("surface %T is not a desktop surface", s))
	}
	sf.format = pf
	return 1, nil
}

func (x extended) CreateContext(s system.Surface, format int, attrs system.ContextAttribs) (system.Context, error) {
	sf, ok := s.(*surface)
	if !ok {
		return nil, errors.Fail(fmt.Sprintf("surface %T is not a desktop surface", s))
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False) // needed to position
	glfw.WindowHint(glfw.Focused, glfw.True)
	pixelHints(sf.format)
	glfw.WindowHint(glfw.ContextVersionMajor, attrs.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, attrs.Minor)
	if attrs.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(attrs.ForwardCompatible))
	glfw.WindowHint(glfw.OpenGLDebugContext, glfwBool(attrs.Debug))

	w := sf.w
	glw, err := glfw.CreateWindow(w.size.X, w.size.Y, w.title, nil, nil)
	if err != nil {
		return nil, errors.PlatformFailure("glfwCreateWindow", glfwCode(err), err)
	}
	w.attach(glw)
	return &glContext{d: x.d, w: w}, nil
}

func pixelHints(pf system.PixelFormat) {
	glfw.WindowHint(glfw.DoubleBuffer, glfwBool(pf.DoubleBuffer))
	glfw.WindowHint(glfw.SRGBCapable, glfwBool(pf.SRGB))
	glfw.WindowHint(glfw.RedBits, pf.RedBits)
	glfw.WindowHint(glfw.GreenBits, pf.GreenBits)
	glfw.WindowHint(glfw.BlueBits, pf.BlueBits)
	glfw.WindowHint(glfw.AlphaBits, pf.AlphaBits)
	glfw.WindowHint(glfw.DepthBits, pf.DepthBits)
	glfw.WindowHint(glfw.StencilBits, pf.StencilBits)
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// glContext is the context of the glfw window; deleting it destroys
// the window.
type glContext struct {
	d *Driver
	w *Window
}

func (c *glContext) MakeCurrent() error {
	if c.w.Glw == nil {
		return errors.Fail("the context has been deleted")
	}
	c.w.Glw.MakeContextCurrent()
	if !c.d.glReady {
		if err := gl.Init(); err != nil {
			return fmt.Errorf("loading OpenGL functions: %w", err)
		}
		c.d.glReady = true
	}
	glfw.SwapInterval(1)
	return nil
}

func (c *glContext) Extensions() []string {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	exts := make([]string, 0, n)
	for i := range uint32(n) {
		exts = append(exts, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, i)))
	}
	return exts
}

func (c *glContext) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION)) + " " + gl.GoStr(gl.GetString(gl.RENDERER))
}

func (c *glContext) Delete() {
	c.w.destroy()
}
