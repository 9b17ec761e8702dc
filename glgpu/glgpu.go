// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements the program backend and the vertex data
// and drawing helpers on OpenGL 4.1 core, with every GL call checked
// through glcall.
//
// All functions must be called on the thread that owns the current
// GL context, after [Init].
package glgpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glshader/glcall"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Calls is the checked caller used for all GL calls in this package.
var Calls = glcall.NewCaller(func() uint32 { return gl.GetError() })

// Init loads the GL function pointers for the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("glgpu: loading OpenGL functions: %w", err)
	}
	return nil
}

// GLInfo describes the current GL implementation.
type GLInfo struct {

	// Version is the GL version string.
	Version string

	// GLSL is the shading language version string.
	GLSL string

	// Renderer names the device.
	Renderer string

	// Vendor names the driver vendor.
	Vendor string
}

// Info returns the strings describing the current GL implementation.
func Info() GLInfo {
	str := func(name uint32) string {
		p := gl.GetString(name)
		if p == nil {
			return ""
		}
		return gl.GoStr(p)
	}
	return GLInfo{
		Version:  str(gl.VERSION),
		GLSL:     str(gl.SHADING_LANGUAGE_VERSION),
		Renderer: str(gl.RENDERER),
		Vendor:   str(gl.VENDOR),
	}
}

// LogInfo logs the GL implementation strings at info level.
func (in GLInfo) LogInfo() {
	slog.Info("using OpenGL", "version", in.Version, "glsl", in.GLSL, "renderer", in.Renderer, "vendor", in.Vendor)
}
