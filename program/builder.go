// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import (
	"fmt"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/glshader/shader"
)

// States are the steps of one [Builder.Build].
type States int32

const (
	// Init is the state before a build starts.
	Init States = iota

	// CompilingVertex is compiling the vertex stage.
	CompilingVertex

	// CompilingFragment is compiling the fragment stage.
	CompilingFragment

	// Linking is attaching, linking and validating the program.
	Linking

	// Linked is the terminal state of a successful build.
	Linked

	// Failed is the terminal state of a failed build.
	Failed
)

var stateNames = [...]string{"Init", "CompilingVertex", "CompilingFragment", "Linking", "Linked", "Failed"}

func (s States) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("States(%d)", int32(s))
	}
	return stateNames[s]
}

// Stage is a compiled shader stage. It is only needed until it has
// been linked into a program, and must be released after that.
type Stage struct {
	kind    shader.Kinds
	handle  uint32
	backend Backend
}

// Kind returns the stage kind.
func (st *Stage) Kind() shader.Kinds {
	return st.kind
}

// Handle returns the backend handle, or 0 once released.
func (st *Stage) Handle() uint32 {
	return st.handle
}

// Release deletes the backend stage object. It is safe to call
// more than once and on a nil Stage.
func (st *Stage) Release() error {
	if st == nil || st.handle == 0 {
		return nil
	}
	h := st.handle
	st.handle = 0
	return st.backend.DeleteStage(h)
}

// Builder compiles shader stages and links them into programs.
// Use [NewBuilder] to get one that validates; the zero value with
// only a Backend set does not validate its programs.
type Builder struct {

	// Backend is the graphics API to build with.
	Backend Backend

	// Validate runs program validation after a successful link,
	// failing the build with [ValidationFailed] if it does not pass.
	// It is off in the zero value and on in [NewBuilder].
	Validate bool

	state States
}

// NewBuilder returns a new [Builder] for the given backend,
// with validation on.
func NewBuilder(backend Backend) *Builder {
	return &Builder{Backend: backend, Validate: true}
}

// State returns the state reached by the last build:
// [Linked] or [Failed] once a build has returned.
func (bd *Builder) State() States {
	return bd.state
}

// CompileStage compiles the given source as a stage of the given kind.
// If the backend rejects the source, the stage is deleted and a
// [*CompileError] with the full compile log is returned.
func (bd *Builder) CompileStage(kind shader.Kinds, src string) (*Stage, error) {
	h, err := bd.Backend.CreateStage(kind)
	if err != nil {
		return nil, err
	}
	if h == 0 {
		return nil, fmt.Errorf("program: backend returned no %s stage", kind)
	}
	st := &Stage{kind: kind, handle: h, backend: bd.Backend}
	if err := bd.Backend.CompileStage(h, src); err != nil {
		st.Release()
		return nil, err
	}
	ok, err := bd.Backend.StageCompiled(h)
	if err != nil {
		st.Release()
		return nil, err
	}
	if !ok {
		lg, lerr := bd.Backend.StageLog(h)
		st.Release()
		if lerr != nil {
			return nil, lerr
		}
		return nil, &CompileError{Kind: kind, Log: lg}
	}
	logx.PrintlnDebug("program: compiled", kind, "stage", h)
	return st, nil
}

// BuildSources builds a program from the vertex and fragment sections
// of src. Both sections must be present.
func (bd *Builder) BuildSources(src *shader.Sources) (*Program, error) {
	for _, k := range shader.AllKinds() {
		if !src.Has(k) {
			bd.state = Failed
			return nil, &BuildError{Code: MissingStage, Missing: k}
		}
	}
	return bd.Build(src.Vertex(), src.Fragment())
}

// Build compiles the vertex and fragment sources and links them into
// a new program.
//
// Both stages are compiled even if the first fails, and a
// [*BuildError] with code [CompileFailed] carries every stage's
// [*CompileError]. Stages are released on every path once they are no
// longer needed. A program that fails to link or validate is deleted,
// never returned.
func (bd *Builder) Build(vertex, fragment string) (*Program, error) {
	bd.state = Init
	pr, err := bd.build(vertex, fragment)
	if err != nil {
		bd.state = Failed
		return nil, err
	}
	bd.state = Linked
	return pr, nil
}

func (bd *Builder) build(vertex, fragment string) (*Program, error) {
	var cerrs []*CompileError

	// compile reports compile errors through cerrs and backend
	// errors through its result
	compile := func(kind shader.Kinds, src string) (*Stage, error) {
		st, err := bd.CompileStage(kind, src)
		if ce, ok := err.(*CompileError); ok {
			cerrs = append(cerrs, ce)
			return nil, nil
		}
		return st, err
	}

	bd.state = CompilingVertex
	vs, err := compile(shader.Vertex, vertex)
	if err != nil {
		return nil, &BuildError{Code: BackendFailed, Err: err}
	}
	defer vs.Release()

	bd.state = CompilingFragment
	fs, err := compile(shader.Fragment, fragment)
	if err != nil {
		return nil, &BuildError{Code: BackendFailed, Err: err, Compile: cerrs}
	}
	defer fs.Release()

	if len(cerrs) > 0 {
		return nil, &BuildError{Code: CompileFailed, Compile: cerrs}
	}

	bd.state = Linking
	return bd.link(vs, fs)
}

// link makes a program from the compiled stages. The stages are
// detached again before returning; the caller releases them.
func (bd *Builder) link(stages ...*Stage) (*Program, error) {
	be := bd.Backend
	h, err := be.CreateProgram()
	if err != nil {
		return nil, &BuildError{Code: BackendFailed, Err: err}
	}
	if h == 0 {
		return nil, &BuildError{Code: BackendFailed, Err: fmt.Errorf("program: backend returned no program")}
	}
	var attached []*Stage
	detach := func() {
		for _, st := range attached {
			be.DetachStage(h, st.handle)
		}
		attached = nil
	}
	fail := func(err *BuildError) (*Program, error) {
		detach()
		be.DeleteProgram(h)
		return nil, err
	}

	for _, st := range stages {
		if err := be.AttachStage(h, st.handle); err != nil {
			return fail(&BuildError{Code: BackendFailed, Err: err})
		}
		attached = append(attached, st)
	}

	if err := be.LinkProgram(h); err != nil {
		return fail(&BuildError{Code: BackendFailed, Err: err})
	}
	ok, err := be.ProgramLinked(h)
	if err != nil {
		return fail(&BuildError{Code: BackendFailed, Err: err})
	}
	if !ok {
		lg, lerr := be.ProgramLog(h)
		return fail(&BuildError{Code: LinkFailed, Log: lg, Err: lerr})
	}

	if bd.Validate {
		if err := be.ValidateProgram(h); err != nil {
			return fail(&BuildError{Code: BackendFailed, Err: err})
		}
		ok, err := be.ProgramValidated(h)
		if err != nil {
			return fail(&BuildError{Code: BackendFailed, Err: err})
		}
		if !ok {
			lg, lerr := be.ProgramLog(h)
			return fail(&BuildError{Code: ValidationFailed, Log: lg, Err: lerr})
		}
	}
	detach()
	logx.PrintlnDebug("program: linked program", h)
	return &Program{handle: h, backend: be}, nil
}
