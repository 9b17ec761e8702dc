// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/chewxy/math32"

// Color is an RGBA color with float components in [0, 1],
// as uploaded to a vec4 uniform.
type Color [4]float32

// Red is opaque red.
var Red = Color{1, 0, 0, 1}

// Animated returns the color with its red channel replaced by r.
func (c Color) Animated(r float32) Color {
	c[0] = r
	return c
}

// Clamped returns the color with every channel clamped to [0, 1].
func (c Color) Clamped() Color {
	for i, v := range c {
		c[i] = math32.Min(math32.Max(v, 0), 1)
	}
	return c
}

// Object is one thing drawn each frame: a geometry in a color,
// optionally animated by a pulse.
type Object struct {

	// Name identifies the object in logs.
	Name string

	// Geometry is what is drawn.
	Geometry *Geometry

	// Color is the uniform color of the object.
	Color Color

	// Pulse, if set, animates the red channel of Color.
	Pulse *Pulse
}

// FrameColor returns the color to draw with this frame, advancing
// the pulse if there is one. The animated channel is clamped to
// [0, 1], as a bouncing pulse overshoots by up to one step.
func (ob *Object) FrameColor() Color {
	if ob.Pulse == nil {
		return ob.Color
	}
	return ob.Color.Animated(ob.Pulse.Next()).Clamped()
}
