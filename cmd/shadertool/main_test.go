// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/core/cli"
	"cogentcore.org/glshader/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	basicShader  = "../../shader/testdata/basic.shader"
	triangleWGSL = "../../wgslconv/testdata/triangle.wgsl"
)

// configure sets a new config from its defaults and the given
// command line, and returns it with the named command.
func configure(t *testing.T, args ...string) (*Config, *cli.Cmd[*Config], error) {
	t.Helper()
	cmds, err := cli.CmdsFromCmdOrFuncs[*Config](commands)
	require.NoError(t, err)
	c := &Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	name, err := cli.SetFromArgs(c, args, cli.ErrNotFound, cmds...)
	if err != nil {
		return c, nil, err
	}
	for _, cmd := range cmds {
		if cmd.Name == name {
			return c, cmd, nil
		}
	}
	return c, nil, nil
}

// runTool runs the command line and returns what it wrote.
func runTool(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c, cmd, err := configure(t, args...)
	require.NoError(t, err)
	require.NotNil(t, cmd, "%v", args)
	var out bytes.Buffer
	c.out = &out
	err = cmd.Func(c)
	return out.String(), err
}

func TestCommands(t *testing.T) {
	cmds, err := cli.CmdsFromCmdOrFuncs[*Config](commands)
	require.NoError(t, err)
	var names []string
	for _, cmd := range cmds {
		names = append(names, cmd.Name)
		assert.False(t, cmd.Root, cmd.Name)
	}
	assert.Equal(t, []string{"split", "check", "wgsl"}, names)
}

func TestConfigure(t *testing.T) {
	c, cmd, err := configure(t, "check", "-strict", basicShader)
	require.NoError(t, err)
	assert.Equal(t, "check", cmd.Name)
	assert.Equal(t, basicShader, c.File)
	assert.True(t, c.Strict)
	assert.False(t, c.Check.Compile)
	assert.True(t, c.Check.Validate)
	assert.Equal(t, "410", c.WGSL.GLSL)

	c, _, err = configure(t, "check", "-compile", "-validate=false", basicShader)
	require.NoError(t, err)
	assert.True(t, c.Check.Compile)
	assert.False(t, c.Check.Validate)

	c, cmd, err = configure(t, "wgsl", "-o", "out.shader", "-glsl", "330", "-vertex", "vs", "-validate", triangleWGSL)
	require.NoError(t, err)
	assert.Equal(t, "wgsl", cmd.Name)
	assert.Equal(t, "out.shader", c.WGSL.Output)
	assert.Equal(t, "330", c.WGSL.GLSL)
	assert.Equal(t, "vs", c.WGSL.Vertex)
	assert.True(t, c.WGSL.Validate)
	assert.Equal(t, triangleWGSL, c.File)
}

func TestConfigureErrors(t *testing.T) {
	tests := [][]string{
		{"split", "a", "b"},
		{"check", "-nope", basicShader},
		{"split", "-compile", basicShader},
	}
	for _, args := range tests {
		_, _, err := configure(t, args...)
		assert.Error(t, err, "%v", args)
	}

	// no command selects no root, so cli prints the usage
	_, cmd, err := configure(t, "frobnicate")
	require.NoError(t, err)
	assert.Nil(t, cmd)
}

func TestSplit(t *testing.T) {
	out, err := runTool(t, "split", basicShader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#shader vertex\n"))
	assert.Contains(t, out, "#shader fragment\n")
	assert.Contains(t, out, "uniform vec4 u_Color;")
}

func TestCheck(t *testing.T) {
	out, err := runTool(t, "check", "-strict", basicShader)
	require.NoError(t, err)
	assert.Contains(t, out, "vertex section")
	assert.Contains(t, out, "fragment section")
	assert.NotContains(t, out, "no ")
}

func TestCheckMissingSection(t *testing.T) {
	file := filepath.Join(t.TempDir(), "vertex.shader")
	require.NoError(t, os.WriteFile(file, []byte("#shader vertex\nvoid main() {}\n"), 0644))
	out, err := runTool(t, "check", file)
	require.NoError(t, err)
	assert.Contains(t, out, "no fragment section")
}

func TestNoFile(t *testing.T) {
	for _, name := range []string{"split", "check", "wgsl"} {
		_, err := runTool(t, name)
		assert.ErrorIs(t, err, errNoFile, name)
	}
}

func TestParseErrorReport(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.shader")
	require.NoError(t, os.WriteFile(file, []byte("#shader geometry\nvoid main() {}\n"), 0644))
	_, err := runTool(t, "split", "-strict", file)
	assert.True(t, shader.IsParseError(err, shader.UnknownSectionKind))

	var errw bytes.Buffer
	report(&errw, err)
	assert.Contains(t, errw.String(), "error: shader file: unknown section kind")
}

func TestWGSL(t *testing.T) {
	out, err := runTool(t, "wgsl", "-glsl", "330", triangleWGSL)
	require.NoError(t, err)
	src, err := shader.ParseString(out, shader.Strict())
	require.NoError(t, err)
	assert.Equal(t, 2, src.Len())
	assert.True(t, strings.HasPrefix(src.Vertex(), "#version 330 core"))

	file := filepath.Join(t.TempDir(), "triangle.shader")
	out, err = runTool(t, "wgsl", "-o", file, triangleWGSL)
	require.NoError(t, err)
	assert.Contains(t, out, "converted")
	again, err := shader.ParseFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(again.Fragment(), "#version 410 core"))

	_, err = runTool(t, "wgsl", "-glsl", "450", triangleWGSL)
	assert.ErrorContains(t, err, "unsupported GLSL version")
}
