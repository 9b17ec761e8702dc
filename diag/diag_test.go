// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"cogentcore.org/glshader/glcall"
	"cogentcore.org/glshader/program"
	"cogentcore.org/glshader/shader"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLog(t *testing.T) {
	log := "0:3(12): error: syntax error, unexpected IDENTIFIER\n" +
		"0(7) : error C0000: syntax error, unexpected '}'\n" +
		"ERROR: 0:9: 'colr' : undeclared identifier\n" +
		"\n" +
		"error: linking failed\x00"
	lines := ParseLog(log)
	require.Len(t, lines, 4)
	assert.Equal(t, 3, lines[0].Line)
	assert.Equal(t, 7, lines[1].Line)
	assert.Equal(t, 9, lines[2].Line)
	assert.Equal(t, 0, lines[3].Line)
	assert.Equal(t, "error: linking failed", lines[3].Message)
	assert.Empty(t, ParseLog(""))
}

func TestDescribeParseError(t *testing.T) {
	_, err := shader.ParseString("void main() {}\n", shader.WithPath("a.shader"))
	require.Error(t, err)
	r := Describe(err)
	assert.Equal(t, "shader file: no active section", r.Title)
	assert.Equal(t, "a.shader:1", r.Location)
	assert.Equal(t, "void main() {}", r.Log)
	assert.Equal(t, "error: shader file: no active section\n  at a.shader:1\n    void main() {}\n", r.String())
}

func TestDescribeCompileError(t *testing.T) {
	err := &program.BuildError{Code: program.CompileFailed, Compile: []*program.CompileError{
		{Kind: shader.Vertex, Log: "0:2(5): error: syntax error\n"},
		{Kind: shader.Fragment, Log: "0:1(1): error: bad\n"},
	}}
	r := Describe(fmt.Errorf("building square: %w", err))
	assert.Equal(t, "vertex and fragment shader failed to compile", r.Title)
	require.Len(t, r.Stages, 2)
	assert.Equal(t, shader.Vertex, r.Stages[0].Kind)
	assert.Equal(t, 2, r.Stages[0].Lines[0].Line)

	r = Describe(&program.CompileError{Kind: shader.Fragment, Log: "0(4) : error C1008: undefined variable"})
	assert.Equal(t, "fragment shader failed to compile", r.Title)
	require.Len(t, r.Stages, 1)
	assert.Equal(t, 4, r.Stages[0].Lines[0].Line)
}

func TestDescribeBuildErrors(t *testing.T) {
	r := Describe(&program.BuildError{Code: program.MissingStage, Missing: shader.Fragment})
	assert.Equal(t, "no fragment shader source", r.Title)

	r = Describe(&program.BuildError{Code: program.LinkFailed, Log: "error: v_Tint not written\n"})
	assert.Equal(t, "program failed to link", r.Title)
	assert.Contains(t, r.String(), "    error: v_Tint not written\n")

	r = Describe(&program.BuildError{Code: program.ValidationFailed, Log: "bad framebuffer"})
	assert.Equal(t, "program failed to validate", r.Title)

	r = Describe(&program.BuildError{Code: program.LinkFailed, Err: errors.New("lost context")})
	assert.Equal(t, "no log: lost context", r.Log)

	ge := &glcall.Error{Op: "glLinkProgram", File: "backend.go", Line: 42, Codes: []uint32{glcall.InvalidOperation}}
	r = Describe(&program.BuildError{Code: program.BackendFailed, Err: ge})
	assert.Equal(t, "graphics backend error in glLinkProgram", r.Title)
	assert.Equal(t, "backend.go:42", r.Location)
	assert.Equal(t, "GL_INVALID_OPERATION", r.Log)

	r = Describe(&program.BuildError{Code: program.BackendFailed, Err: errors.New("lost context")})
	assert.Equal(t, "graphics backend error", r.Title)
	assert.Equal(t, "lost context", r.Log)

	ce := &program.CompileError{Kind: shader.Vertex, Log: "0:6(5): error: syntax error\n"}
	r = Describe(&program.BuildError{Code: program.BackendFailed, Err: ge, Compile: []*program.CompileError{ce}})
	assert.Equal(t, "graphics backend error in glLinkProgram", r.Title)
	require.Len(t, r.Stages, 1)
	assert.Equal(t, shader.Vertex, r.Stages[0].Kind)
}

func TestDescribeOther(t *testing.T) {
	r := Describe(&glcall.Error{Op: "glClear", File: "draw.go", Line: 7, Codes: []uint32{glcall.InvalidValue, 0x9999}})
	assert.Equal(t, "GL_INVALID_VALUE\nGL_ERROR_0x9999", r.Log)

	r = Describe(errors.New("window closed"))
	assert.Equal(t, "window closed", r.Title)

	assert.Equal(t, "no error", Describe(nil).Title)
}

func asciiPrinter(b *bytes.Buffer) *Printer {
	return NewPrinter(b, termenv.WithProfile(termenv.Ascii))
}

func TestPrintExcerpt(t *testing.T) {
	src, err := shader.ParseString("#shader vertex\n#version 330 core\nvoid main()\n{\n    gl_Position = vec4(0.0)\n}\n")
	require.NoError(t, err)
	err = &program.BuildError{Code: program.CompileFailed, Compile: []*program.CompileError{
		{Kind: shader.Vertex, Log: "0:4(28): error: syntax error, unexpected '}'\n"},
	}}

	var b bytes.Buffer
	p := asciiPrinter(&b)
	p.Sources = src
	p.Print(err)
	want := "error: vertex shader failed to compile\n" +
		"  vertex shader:\n" +
		"    0:4(28): error: syntax error, unexpected '}'\n" +
		"      3 | {\n" +
		"    > 4 |     gl_Position = vec4(0.0)\n" +
		"      5 | }\n"
	assert.Equal(t, want, b.String())
}

func TestPrintNoSources(t *testing.T) {
	var b bytes.Buffer
	asciiPrinter(&b).Print(&program.CompileError{Kind: shader.Vertex, Log: "0:40(1): error: x\n"})
	assert.Equal(t, "error: vertex shader failed to compile\n  vertex shader:\n    0:40(1): error: x\n", b.String())
}

func TestPrintLineOutOfRange(t *testing.T) {
	src, err := shader.ParseString("#shader vertex\n#version 330 core\n")
	require.NoError(t, err)
	var b bytes.Buffer
	p := asciiPrinter(&b)
	p.Sources = src
	p.Print(&program.CompileError{Kind: shader.Vertex, Log: "0:40(1): error: x\n"})
	assert.NotContains(t, b.String(), "|")
}

func TestPrintSources(t *testing.T) {
	src, err := shader.ParseString("#shader fragment\n#version 330 core\nvoid main() {}\n")
	require.NoError(t, err)
	var b bytes.Buffer
	asciiPrinter(&b).PrintSources(src)
	assert.Equal(t, "#shader fragment\n#version 330 core\nvoid main() {}\n", b.String())
}

func TestPrintColor(t *testing.T) {
	src, err := shader.ParseString("#shader vertex\n#version 330 core\nvoid main() { gl_Position = vec4(0.0) }\n")
	require.NoError(t, err)
	var b bytes.Buffer
	p := NewPrinter(&b, termenv.WithProfile(termenv.ANSI256))
	p.Sources = src
	p.Print(&program.CompileError{Kind: shader.Vertex, Log: "0:2(40): error: syntax error\n"})
	out := b.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "syntax error")
}

func TestFormatterName(t *testing.T) {
	assert.Equal(t, "", formatterName(termenv.Ascii))
	assert.Equal(t, "terminal256", formatterName(termenv.ANSI256))
	assert.Equal(t, "terminal16m", formatterName(termenv.TrueColor))
}
