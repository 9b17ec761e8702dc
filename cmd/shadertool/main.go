// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command shadertool inspects and produces combined shader files.
//
// Usage:
//
//	shadertool split [-strict] FILE
//	shadertool check [-strict] [-compile] [-validate=false] FILE
//	shadertool wgsl [-o OUT] [-glsl 410] [-vertex NAME] [-fragment NAME] [-validate] IN
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"cogentcore.org/core/cli"
	"cogentcore.org/glshader/diag"
	"cogentcore.org/glshader/glgpu"
	"cogentcore.org/glshader/program"
	"cogentcore.org/glshader/shader"
	"cogentcore.org/glshader/wgslconv"
	"github.com/gogpu/naga/glsl"
)

func init() {
	runtime.LockOSThread()
}

// Config is the configuration of shadertool.
type Config struct {

	// the combined shader file, or the WGSL file for wgsl
	File string `posarg:"0" required:"-"`

	// require section markers to start the line and name exactly one kind
	Strict bool

	// options for the check command
	Check CheckConfig `cmd:"check"`

	// options for the wgsl command
	WGSL WGSLConfig `cmd:"wgsl"`

	// out is where results are written; os.Stdout if nil.
	out io.Writer
}

// CheckConfig is the configuration of the check command.
type CheckConfig struct {

	// compile and link the program with the OpenGL driver
	Compile bool

	// validate the program after linking, with -compile
	Validate bool `default:"true"`
}

// WGSLConfig is the configuration of the wgsl command.
type WGSLConfig struct {

	// the output file; stdout if empty
	Output string `flag:"o,output"`

	// the GLSL core version to generate: 330, 400 or 410
	GLSL string `default:"410"`

	// the vertex entry point; the first one if empty
	Vertex string

	// the fragment entry point; the first one if empty
	Fragment string

	// validate the IR before generating GLSL
	Validate bool
}

// commands are the shadertool commands; there is no root command,
// so running shadertool alone prints the usage.
var commands = []func(*Config) error{Split, Check, WGSL}

func main() {
	opts := cli.DefaultOptions("shadertool", "Inspects combined shader files and converts WGSL to them.")
	opts.Fatal = false
	opts.PrintSuccess = false
	if err := cli.Run(opts, &Config{}, commands...); err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

// report writes err to w, with excerpts of the shader
// source when the error came from building a program.
func report(w io.Writer, err error) {
	p := diag.NewPrinter(w)
	var se *sourceError
	if errors.As(err, &se) {
		p.Sources = se.src
	}
	p.Print(err)
}

// sourceError is an error building the program of src, which is
// shown in excerpts when the error is printed.
type sourceError struct {
	src *shader.Sources
	err error
}

func (e *sourceError) Error() string { return e.err.Error() }

func (e *sourceError) Unwrap() error { return e.err }

// errNoFile is returned by the commands when no file is given.
var errNoFile = errors.New("shadertool: no file given")

func (c *Config) stdout() io.Writer {
	if c.out == nil {
		return os.Stdout
	}
	return c.out
}

func (c *Config) parse() (*shader.Sources, error) {
	if c.File == "" {
		return nil, errNoFile
	}
	var opts []shader.Option
	if c.Strict {
		opts = append(opts, shader.Strict())
	}
	return shader.ParseFile(c.File, opts...)
}

// Split prints each section of a combined shader file.
func Split(c *Config) error {
	src, err := c.parse()
	if err != nil {
		return err
	}
	diag.NewPrinter(c.stdout()).PrintSources(src)
	return nil
}

// Check reports the sections of a combined shader file and, with
// -compile, builds its program in a hidden OpenGL window.
func Check(c *Config) error {
	src, err := c.parse()
	if err != nil {
		return err
	}
	out := c.stdout()
	for _, k := range src.Kinds() {
		text, _ := src.Source(k)
		fmt.Fprintf(out, "%s: %s section, %d bytes\n", c.File, k, len(text))
	}
	for _, k := range shader.AllKinds() {
		if !src.Has(k) {
			fmt.Fprintf(out, "%s: no %s section\n", c.File, k)
		}
	}
	if !c.Check.Compile {
		return nil
	}
	_, done, err := glgpu.OpenWindow(glgpu.WindowOptions{Width: 64, Height: 64, Title: "shadertool", Major: 4, Minor: 1, Hidden: true})
	if err != nil {
		return err
	}
	defer done()
	bd := program.NewBuilder(glgpu.NewBackend())
	bd.Validate = c.Check.Validate
	pr, err := bd.BuildSources(src)
	if err != nil {
		return &sourceError{src: src, err: fmt.Errorf("%s: %w", c.File, err)}
	}
	defer pr.Delete()
	fmt.Fprintf(out, "%s: program built\n", c.File)
	return nil
}

// glslVersions are the GLSL versions wgsl can generate.
var glslVersions = map[string]glsl.Version{
	"330": glsl.Version330,
	"400": glsl.Version400,
	"410": glsl.Version410,
}

// WGSL converts a WGSL file to a combined shader file.
func WGSL(c *Config) error {
	if c.File == "" {
		return errNoFile
	}
	v, ok := glslVersions[c.WGSL.GLSL]
	if !ok {
		return fmt.Errorf("shadertool: unsupported GLSL version %q (want 330, 400 or 410)", c.WGSL.GLSL)
	}
	src, err := wgslconv.ConvertFile(c.File, wgslconv.Options{
		Version:  v,
		Vertex:   c.WGSL.Vertex,
		Fragment: c.WGSL.Fragment,
		Validate: c.WGSL.Validate,
	})
	if err != nil {
		return err
	}
	out := c.stdout()
	if c.WGSL.Output == "" {
		_, err = src.WriteTo(out)
		return err
	}
	if err := os.WriteFile(c.WGSL.Output, []byte(src.String()), 0644); err != nil {
		return err
	}
	fmt.Fprintf(out, "converted %s to %s\n", c.File, c.WGSL.Output)
	return nil
}
