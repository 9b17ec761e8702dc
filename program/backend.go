// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import "cogentcore.org/glshader/shader"

// Backend is the graphics API that compiles shader stages and links
// them into programs. Handles are opaque backend object names; 0 is
// never a valid handle. Every method may return a backend error
// (see the glcall package) in addition to its result.
//
// The glgpu package provides the OpenGL implementation. Backends are
// not safe for concurrent use: all calls must come from the thread
// holding the graphics context.
type Backend interface {

	// CreateStage creates an empty shader stage object of the given kind.
	CreateStage(kind shader.Kinds) (uint32, error)

	// CompileStage sets the source of the stage and compiles it.
	// A compile failure is not an error here: it is reported by
	// StageCompiled and StageLog.
	CompileStage(stage uint32, src string) error

	// StageCompiled returns whether the last compile of the stage succeeded.
	StageCompiled(stage uint32) (bool, error)

	// StageLog returns the full compile log of the stage.
	StageLog(stage uint32) (string, error)

	// DeleteStage releases the stage object.
	DeleteStage(stage uint32) error

	// CreateProgram creates an empty program object.
	CreateProgram() (uint32, error)

	// AttachStage attaches a compiled stage to the program.
	AttachStage(prog, stage uint32) error

	// DetachStage detaches the stage from the program.
	DetachStage(prog, stage uint32) error

	// LinkProgram links the attached stages.
	LinkProgram(prog uint32) error

	// ProgramLinked returns whether the last link succeeded.
	ProgramLinked(prog uint32) (bool, error)

	// ValidateProgram checks whether the program can run
	// in the current backend state.
	ValidateProgram(prog uint32) error

	// ProgramValidated returns the result of the last validation.
	ProgramValidated(prog uint32) (bool, error)

	// ProgramLog returns the full link / validation log of the program.
	ProgramLog(prog uint32) (string, error)

	// DeleteProgram releases the program object.
	DeleteProgram(prog uint32) error

	// UniformLocation returns the location of the named uniform,
	// or -1 if the program has no active uniform of that name.
	UniformLocation(prog uint32, name string) (int32, error)

	// UseProgram makes the program current; 0 clears it.
	UseProgram(prog uint32) error
}
