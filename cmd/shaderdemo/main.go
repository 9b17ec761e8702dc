// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command shaderdemo opens a window and draws an animated square and a
// triangle, each with a shader program built from a combined shader file.
//
// Usage:
//
//	shaderdemo [-config shaderdemo.toml] [-shader FILE] [-strict] [-v]
//	shaderdemo print-config
//
// The config is read from shaderdemo.toml in the current directory or
// configs/, and the flags override it. Relative shader paths are
// relative to the current directory. The -shader flag sets the file of
// every object that does not name its own.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/glshader/config"
	"cogentcore.org/glshader/diag"
	"cogentcore.org/glshader/glgpu"
	"cogentcore.org/glshader/shader"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GL and glfw calls must all be made on the main thread
	runtime.LockOSThread()
}

var commands = []*cli.Cmd[*config.Config]{
	{Func: Run, Name: "run", Doc: "Run opens the window and draws the objects until it is closed.", Root: true},
	{Func: PrintConfig, Name: "print-config", Doc: "PrintConfig prints the config in the format of shaderdemo.toml."},
}

func main() {
	opts := cli.DefaultOptions("shaderdemo", "Draws objects with shader programs built from combined shader files.")
	opts.Fatal = false
	opts.PrintSuccess = false
	if err := cli.Run(opts, &config.Config{}, commands...); err != nil {
		p := diag.NewPrinter(os.Stderr)
		var se *sourceError
		if errors.As(err, &se) {
			p.Sources = se.src
		}
		p.Print(err)
		os.Exit(1)
	}
}

// sourceError is an error setting up an object, with the shader
// sources it was built from, for showing excerpts of them.
type sourceError struct {
	src *shader.Sources
	err error
}

func (e *sourceError) Error() string { return e.err.Error() }

func (e *sourceError) Unwrap() error { return e.err }

// Run opens the window and draws the objects until it is closed.
// A failure to set up an object is reported with excerpts of its
// shader source.
func Run(c *config.Config) error {
	if logx.UserLevel == slog.LevelWarn {
		logx.UserLevel = errors.Log1(c.SlogLevel())
	}
	dm := newDemo(c)
	if err := run(dm); err != nil {
		return &sourceError{src: dm.sources, err: err}
	}
	return nil
}

// PrintConfig prints the config in the format of shaderdemo.toml.
func PrintConfig(c *config.Config) error {
	if err := c.WriteTOML(os.Stdout); err != nil {
		return fmt.Errorf("shaderdemo: %w", err)
	}
	return nil
}

// run opens the window and draws frames until it is closed.
func run(dm *demo) error {
	w := &dm.cfg.Window
	win, done, err := glgpu.OpenWindow(glgpu.WindowOptions{
		Width: w.Width, Height: w.Height, Title: w.Title,
		Major: w.GL.Major, Minor: w.GL.Minor,
	})
	if err != nil {
		return err
	}
	defer done()
	glfw.SwapInterval(w.SwapInterval)
	glgpu.Info().LogInfo()

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		glgpu.Viewport(width, height)
	})

	defer dm.delete()
	if err := dm.setup(); err != nil {
		return err
	}
	for !win.ShouldClose() {
		dm.frame()
		win.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}
