// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"cogentcore.org/glshader/glcall"
	"cogentcore.org/glshader/program"
	"cogentcore.org/glshader/shader"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Backend is the OpenGL [program.Backend].
type Backend struct {

	// Calls checks every GL call for errors.
	Calls *glcall.Caller
}

var _ program.Backend = (*Backend)(nil)

// NewBackend returns a new [Backend] using [Calls].
func NewBackend() *Backend {
	return &Backend{Calls: Calls}
}

// StageType returns the GL shader type for the given kind.
func StageType(kind shader.Kinds) (uint32, error) {
	switch kind {
	case shader.Vertex:
		return gl.VERTEX_SHADER, nil
	case shader.Fragment:
		return gl.FRAGMENT_SHADER, nil
	}
	return 0, fmt.Errorf("glgpu: no GL shader type for %v", kind)
}

// cstr returns s with a null terminator, as required for GL strings.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// goLog trims the null padding from a GL info log buffer.
func goLog(buf string) string {
	return strings.TrimRight(buf, "\x00")
}

func (b *Backend) CreateStage(kind shader.Kinds) (uint32, error) {
	typ, err := StageType(kind)
	if err != nil {
		return 0, err
	}
	return glcall.Call1(b.Calls, "glCreateShader", func() uint32 {
		return gl.CreateShader(typ)
	})
}

func (b *Backend) CompileStage(stage uint32, src string) error {
	return b.Calls.Call("glCompileShader", func() {
		csources, free := gl.Strs(cstr(src))
		gl.ShaderSource(stage, 1, csources, nil)
		free()
		gl.CompileShader(stage)
	})
}

func (b *Backend) StageCompiled(stage uint32) (bool, error) {
	var status int32
	err := b.Calls.Call("glGetShaderiv", func() {
		gl.GetShaderiv(stage, gl.COMPILE_STATUS, &status)
	})
	return status == gl.TRUE, err
}

func (b *Backend) StageLog(stage uint32) (string, error) {
	var msg string
	err := b.Calls.Call("glGetShaderInfoLog", func() {
		var logLength int32
		gl.GetShaderiv(stage, gl.INFO_LOG_LENGTH, &logLength)
		msg = strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(stage, logLength, nil, gl.Str(msg))
	})
	return goLog(msg), err
}

func (b *Backend) DeleteStage(stage uint32) error {
	return b.Calls.Call("glDeleteShader", func() {
		gl.DeleteShader(stage)
	})
}

func (b *Backend) CreateProgram() (uint32, error) {
	return glcall.Call1(b.Calls, "glCreateProgram", gl.CreateProgram)
}

func (b *Backend) AttachStage(prog, stage uint32) error {
	return b.Calls.Call("glAttachShader", func() {
		gl.AttachShader(prog, stage)
	})
}

func (b *Backend) DetachStage(prog, stage uint32) error {
	return b.Calls.Call("glDetachShader", func() {
		gl.DetachShader(prog, stage)
	})
}

func (b *Backend) LinkProgram(prog uint32) error {
	return b.Calls.Call("glLinkProgram", func() {
		gl.LinkProgram(prog)
	})
}

func (b *Backend) ProgramLinked(prog uint32) (bool, error) {
	return b.programStatus(prog, gl.LINK_STATUS)
}

func (b *Backend) ValidateProgram(prog uint32) error {
	return b.Calls.Call("glValidateProgram", func() {
		gl.ValidateProgram(prog)
	})
}

func (b *Backend) ProgramValidated(prog uint32) (bool, error) {
	return b.programStatus(prog, gl.VALIDATE_STATUS)
}

func (b *Backend) programStatus(prog, pname uint32) (bool, error) {
	var status int32
	err := b.Calls.Call("glGetProgramiv", func() {
		gl.GetProgramiv(prog, pname, &status)
	})
	return status == gl.TRUE, err
}

func (b *Backend) ProgramLog(prog uint32) (string, error) {
	var msg string
	err := b.Calls.Call("glGetProgramInfoLog", func() {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		msg = strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(msg))
	})
	return goLog(msg), err
}

func (b *Backend) DeleteProgram(prog uint32) error {
	return b.Calls.Call("glDeleteProgram", func() {
		gl.DeleteProgram(prog)
	})
}

func (b *Backend) UniformLocation(prog uint32, name string) (int32, error) {
	return glcall.Call1(b.Calls, "glGetUniformLocation", func() int32 {
		return gl.GetUniformLocation(prog, gl.Str(cstr(name)))
	})
}

func (b *Backend) UseProgram(prog uint32) error {
	return b.Calls.Call("glUseProgram", func() {
		gl.UseProgram(prog)
	})
}
