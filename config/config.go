// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the shader demo.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/glshader/scene"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the config file looked for by the demo,
// in the current directory or configs/.
const DefaultFile = "shaderdemo.toml"

// DefaultUniform is the color uniform of objects that do not name one.
const DefaultUniform = "u_Color"

// Config is the main config struct
// that contains all of the configuration
// options for the shader demo. It is set by [cli] from its
// default tags, then [DefaultFile] or the file given with -config,
// then the command line flags.
type Config struct {

	// the window to draw in
	Window Window `toml:"window"`

	// the combined shader file that each object's program
	// is built from, unless the object names its own
	Shader string `toml:"shader" default:"shaders/basic.shader"`

	// require section markers to start the line and name exactly one kind
	Strict bool `toml:"strict"`

	// validate each program after it links
	ValidatePrograms bool `toml:"validate" flag:"validate" default:"true"`

	// the log level: debug, info, warn or error. It applies
	// unless the -v, -vv or -q flags are given.
	LogLevel string `toml:"log_level" default:"info"`

	// the animation of object colors
	Animation Animation `toml:"animation"`

	// the objects drawn each frame, in order;
	// the red square and the orange triangle if none are given
	Objects []Object `toml:"objects"`
}

// Window is the configuration of the demo window.
type Window struct {

	// the width of the window in screen coordinates
	Width int `toml:"width" default:"640"`

	// the height of the window in screen coordinates
	Height int `toml:"height" default:"480"`

	// the window title
	Title string `toml:"title" default:"Hello World"`

	// the number of screen updates to wait between buffer swaps (0 disables vsync)
	SwapInterval int `toml:"swap_interval" default:"1"`

	// the OpenGL core profile version to request
	GL GLVersion `toml:"gl_version" default:"4.1"`
}

// Animation is the configuration of the color pulse.
type Animation struct {

	// the change in the animated channel per frame
	Step float32 `toml:"step" default:"0.05"`

	// how the value moves: bounce or sine
	Mode string `toml:"mode" default:"bounce"`
}

// Object is the configuration of one drawn object.
type Object struct {

	// the name of the object in logs; defaults to the mesh name
	Name string `toml:"name"`

	// the built-in geometry to draw: square or triangle
	Mesh string `toml:"mesh"`

	// the combined shader file for this object, overriding [Config.Shader]
	Shader string `toml:"shader"`

	// the RGBA color, each channel in [0, 1]
	Color [4]float32 `toml:"color"`

	// whether to animate the red channel of the color
	Animate bool `toml:"animate"`

	// the vec4 uniform the color is uploaded to; defaults to u_Color
	Uniform string `toml:"uniform"`
}

// Default returns the default configuration: the animated red square
// and the orange triangle, both drawn with shaders/basic.shader.
func Default() *Config {
	c := &Config{}
	errors.Log(cli.SetFromDefaults(c))
	c.fill()
	return c
}

// DefaultObjects returns the default objects.
func DefaultObjects() []Object {
	return []Object{
		{Name: "square", Mesh: "square", Color: scene.Red, Animate: true, Uniform: DefaultUniform},
		{Name: "triangle", Mesh: "triangle", Color: [4]float32{1, 0.5, 0.2, 1}, Uniform: DefaultUniform},
	}
}

// OnConfig is called by [cli] once the config file and flags
// have been applied. It fills in the default objects and the
// defaults of object fields, and validates the result.
func (c *Config) OnConfig(cmd string) error {
	c.fill()
	return c.Validate()
}

// fill sets the defaults that default tags cannot express.
func (c *Config) fill() {
	if len(c.Objects) == 0 {
		c.Objects = DefaultObjects()
	}
	for i := range c.Objects {
		ob := &c.Objects[i]
		if ob.Name == "" {
			ob.Name = ob.Mesh
		}
		if ob.Uniform == "" {
			ob.Uniform = DefaultUniform
		}
	}
}

// ShaderPath returns the path of the shader file for the given object.
func (c *Config) ShaderPath(ob *Object) string {
	if ob.Shader != "" {
		return ob.Shader
	}
	return c.Shader
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log_level: %w", err)
	}
	return lv, nil
}

// WriteTOML writes the config in the format of [DefaultFile].
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).SetIndentTables(true).Encode(c)
}

// Validate returns an error describing every invalid value in the config.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: "+format, args...))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.SwapInterval < 0 {
		add("window swap_interval %d must not be negative", c.Window.SwapInterval)
	}
	if err := c.Window.GL.Supported(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Animation.Step <= 0 {
		add("animation step %g must be positive", c.Animation.Step)
	}
	if _, err := scene.ModeFromString(c.Animation.Mode); err != nil {
		errs = append(errs, fmt.Errorf("config: animation: %w", err))
	}
	if len(c.Objects) == 0 {
		add("no objects to draw")
	}
	for i := range c.Objects {
		ob := &c.Objects[i]
		if _, err := scene.GeometryByName(ob.Mesh); err != nil {
			errs = append(errs, fmt.Errorf("config: object %d: %w", i, err))
		}
		if c.ShaderPath(ob) == "" {
			add("object %d (%s) has no shader file", i, ob.Name)
		}
		if ob.Uniform == "" {
			add("object %d (%s) has no color uniform", i, ob.Name)
		}
		for ch, v := range ob.Color {
			if v < 0 || v > 1 {
				add("object %d (%s) color channel %d is %g, not in [0, 1]", i, ob.Name, ch, v)
			}
		}
	}
	return errors.Join(errs...)
}
