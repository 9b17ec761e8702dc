// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"cogentcore.org/glshader/scene"
)

// SceneObjects returns the configured objects as scene objects, each
// animated object with its own pulse.
func (c *Config) SceneObjects() ([]*scene.Object, error) {
	mode, err := scene.ModeFromString(c.Animation.Mode)
	if err != nil {
		return nil, err
	}
	obs := make([]*scene.Object, len(c.Objects))
	for i := range c.Objects {
		co := &c.Objects[i]
		g, err := scene.GeometryByName(co.Mesh)
		if err != nil {
			return nil, fmt.Errorf("config: object %s: %w", co.Name, err)
		}
		ob := &scene.Object{Name: co.Name, Geometry: g, Color: co.Color}
		if co.Animate {
			ob.Pulse = scene.NewPulse(mode, c.Animation.Step)
		}
		obs[i] = ob
	}
	return obs, nil
}
