// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/glshader/config"
	"cogentcore.org/glshader/glgpu"
	"cogentcore.org/glshader/program"
	"cogentcore.org/glshader/scene"
	"cogentcore.org/glshader/shader"
)

// object is a scene object with its GPU resources.
type object struct {
	*scene.Object

	mesh *glgpu.Mesh
	prog *program.Program

	// loc is the location of the color uniform.
	loc int32
}

// demo draws the configured objects each frame.
type demo struct {
	cfg     *config.Config
	builder *program.Builder
	objects []*object

	// sources are the shader sources of the object being set up,
	// for showing excerpts of the source if its program fails.
	sources *shader.Sources
}

func newDemo(cfg *config.Config) *demo {
	bd := program.NewBuilder(glgpu.NewBackend())
	bd.Validate = cfg.ValidatePrograms
	return &demo{cfg: cfg, builder: bd}
}

// setup uploads the mesh and builds the program of every object.
// The shader file is parsed again for each object.
func (dm *demo) setup() error {
	sobs, err := dm.cfg.SceneObjects()
	if err != nil {
		return err
	}
	var opts []shader.Option
	if dm.cfg.Strict {
		opts = append(opts, shader.Strict())
	}
	for i, so := range sobs {
		ob := &object{Object: so}
		dm.objects = append(dm.objects, ob)
		if err := dm.setupObject(ob, &dm.cfg.Objects[i], opts); err != nil {
			return fmt.Errorf("object %s: %w", so.Name, err)
		}
	}
	dm.sources = nil
	return nil
}

func (dm *demo) setupObject(ob *object, co *config.Object, opts []shader.Option) error {
	var err error
	ob.mesh, err = glgpu.NewMesh(ob.Geometry)
	if err != nil {
		return err
	}
	dm.sources, err = shader.ParseFile(dm.cfg.ShaderPath(co), opts...)
	if err != nil {
		return err
	}
	// validation checks the program against the bound vertex array
	if err := ob.mesh.VAO.Activate(); err != nil {
		return err
	}
	ob.prog, err = dm.builder.BuildSources(dm.sources)
	errors.Log(glgpu.UnbindVertexArray())
	if err != nil {
		return err
	}
	ob.loc, err = ob.prog.UniformLocation(co.Uniform)
	if err != nil {
		return err
	}
	if err := ob.prog.Use(); err != nil {
		return err
	}
	if err := glgpu.SetColor(ob.loc, ob.Color); err != nil {
		return err
	}
	logx.PrintlnDebug("shaderdemo: set up", ob.Name, "program", ob.prog.Handle(), "uniform", co.Uniform, ob.loc)
	return nil
}

// frame draws one frame. Errors are logged by glcall as they happen,
// and an object that fails to draw is skipped for this frame.
func (dm *demo) frame() {
	glgpu.Clear(true, false)
	for _, ob := range dm.objects {
		dm.draw(ob)
	}
}

func (dm *demo) draw(ob *object) error {
	if err := ob.prog.Use(); err != nil {
		return err
	}
	if err := glgpu.SetColor(ob.loc, ob.FrameColor()); err != nil {
		return err
	}
	return ob.mesh.Draw()
}

// delete releases the GPU resources of all objects.
func (dm *demo) delete() {
	for _, ob := range dm.objects {
		if ob.prog != nil {
			errors.Log(ob.prog.Delete())
		}
		if ob.mesh != nil {
			errors.Log(ob.mesh.Delete())
		}
	}
	dm.objects = nil
}
