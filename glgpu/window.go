// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowOptions are the options for [OpenWindow].
type WindowOptions struct {

	// Width and Height are the window size in screen coordinates.
	Width  int
	Height int

	// Title is the window title.
	Title string

	// Major and Minor are the OpenGL core profile version to request.
	Major int
	Minor int

	// Hidden makes the window invisible, for offscreen use.
	Hidden bool
}

// OpenWindow initializes glfw, opens a window with a forward compatible
// core profile context of the requested version, makes the context
// current and loads the GL functions. The returned done function
// destroys the window and terminates glfw.
//
// It must be called on the main thread, locked with runtime.LockOSThread.
func OpenWindow(opts WindowOptions) (win *glfw.Window, done func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("glgpu: initializing glfw: %w", err)
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, opts.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err = glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("glgpu: creating %dx%d window with OpenGL %d.%d core: %w", opts.Width, opts.Height, opts.Major, opts.Minor, err)
	}
	done = func() {
		win.Destroy()
		glfw.Terminate()
	}
	win.MakeContextCurrent()
	if err := Init(); err != nil {
		done()
		return nil, nil, err
	}
	return win, done, nil
}
