// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"cogentcore.org/glshader/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Clear clears the given buffers of the current render target.
func Clear(color, depth bool) error {
	bits := uint32(0)
	if color {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	return Calls.Call("glClear", func() {
		gl.Clear(bits)
	})
}

// ClearColor sets the color used by [Clear].
func ClearColor(c scene.Color) error {
	return Calls.Call("glClearColor", func() {
		gl.ClearColor(c[0], c[1], c[2], c[3])
	})
}

// SetColor uploads the color to the vec4 uniform at loc of the
// current program.
func SetColor(loc int32, c scene.Color) error {
	return Calls.Call("glUniform4f", func() {
		gl.Uniform4f(loc, c[0], c[1], c[2], c[3])
	})
}

// Viewport sets the viewport to the given framebuffer size.
func Viewport(width, height int) error {
	return Calls.Call("glViewport", func() {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
}

// TrianglesIndexed draws count indexes of triangles from the element
// buffer of the current vertex array.
func TrianglesIndexed(count int) error {
	return Calls.Call("glDrawElements", func() {
		gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, gl.PtrOffset(0))
	})
}
