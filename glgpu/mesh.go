// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"errors"
	"fmt"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/glshader/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// PositionAttrib is the vertex attribute location of positions,
// layout(location = 0) in the shaders.
const PositionAttrib = 0

// Mesh is the GPU copy of one [scene.Geometry]: a vertex array
// recording a position buffer and an index buffer.
type Mesh struct {

	// Name is the geometry name.
	Name string

	VAO VertexArray
	VBO VertexBuffer
	IBO IndexBuffer
}

// NewMesh uploads the geometry and records its layout in a new
// vertex array. On failure anything already made is deleted.
func NewMesh(g *scene.Geometry) (*Mesh, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	ms := &Mesh{Name: g.Name}
	ms.VBO.Set(g.Positions)
	ms.IBO.Set(g.Indexes)
	if err := ms.upload(g.Components); err != nil {
		UnbindVertexArray()
		ms.Delete()
		return nil, fmt.Errorf("glgpu: uploading mesh %q: %w", g.Name, err)
	}
	logx.PrintlnDebug("glgpu: uploaded mesh", g.Name, "vao", ms.VAO.Handle())
	return ms, nil
}

func (ms *Mesh) upload(components int) error {
	steps := []func() error{
		ms.VAO.Activate,
		ms.VBO.Activate,
		ms.VBO.Transfer,
		ms.IBO.Activate,
		ms.IBO.Transfer,
		func() error {
			return Calls.Call("glVertexAttribPointer", func() {
				gl.EnableVertexAttribArray(PositionAttrib)
				gl.VertexAttribPointer(PositionAttrib, int32(components), gl.FLOAT, false, int32(4*components), gl.PtrOffset(0))
			})
		},
		// the vertex array keeps the element buffer binding, so it is
		// unbound first
		UnbindVertexArray,
		UnbindVertexBuffer,
		UnbindIndexBuffer,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Draw draws the mesh triangles with the current program.
func (ms *Mesh) Draw() error {
	if err := ms.VAO.Activate(); err != nil {
		return err
	}
	return TrianglesIndexed(ms.IBO.Len())
}

// Delete deletes all of the GPU resources of the mesh.
func (ms *Mesh) Delete() error {
	return errors.Join(ms.VAO.Delete(), ms.VBO.Delete(), ms.IBO.Delete())
}
