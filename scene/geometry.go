// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"strings"
)

// Geometry is indexed 2D or 3D vertex position data for one object.
type Geometry struct {

	// Name identifies the geometry, as used by [GeometryByName].
	Name string

	// Positions has Components floats per vertex.
	Positions []float32

	// Indexes are the vertex indexes of the triangles to draw.
	Indexes []uint32

	// Components is the number of floats per vertex position.
	Components int
}

// VertexCount returns the number of vertexes in Positions.
func (g *Geometry) VertexCount() int {
	if g.Components <= 0 {
		return 0
	}
	return len(g.Positions) / g.Components
}

// Validate returns an error if the positions do not divide evenly
// into vertexes, or an index refers past the last vertex.
func (g *Geometry) Validate() error {
	if g.Components < 2 || g.Components > 4 {
		return fmt.Errorf("scene: geometry %q: components must be 2 to 4, not %d", g.Name, g.Components)
	}
	if len(g.Positions)%g.Components != 0 {
		return fmt.Errorf("scene: geometry %q: %d positions is not a multiple of %d components", g.Name, len(g.Positions), g.Components)
	}
	if len(g.Indexes)%3 != 0 {
		return fmt.Errorf("scene: geometry %q: %d indexes do not make whole triangles", g.Name, len(g.Indexes))
	}
	n := uint32(g.VertexCount())
	for i, ix := range g.Indexes {
		if ix >= n {
			return fmt.Errorf("scene: geometry %q: index %d is %d, past the last of %d vertexes", g.Name, i, ix, n)
		}
	}
	return nil
}

// Square returns the square centered on the origin, with sides of 1,
// drawn as two triangles.
func Square() *Geometry {
	return &Geometry{
		Name: "square",
		Positions: []float32{
			-0.5, -0.5,
			0.5, -0.5,
			0.5, 0.5,
			-0.5, 0.5,
		},
		Indexes:    []uint32{0, 1, 2, 2, 3, 0},
		Components: 2,
	}
}

// Triangle returns the triangle filling the lower left half of
// clip space.
func Triangle() *Geometry {
	return &Geometry{
		Name: "triangle",
		Positions: []float32{
			1, -1,
			-1, -1,
			-1, 1,
		},
		Indexes:    []uint32{0, 1, 2},
		Components: 2,
	}
}

// GeometryNames returns the names accepted by [GeometryByName].
func GeometryNames() []string {
	return []string{"square", "triangle"}
}

// GeometryByName returns a new copy of the named built-in geometry.
func GeometryByName(name string) (*Geometry, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "square":
		return Square(), nil
	case "triangle":
		return Triangle(), nil
	}
	return nil, fmt.Errorf("scene: unknown geometry %q, must be one of %s", name, strings.Join(GeometryNames(), ", "))
}
