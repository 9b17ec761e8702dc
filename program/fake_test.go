// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import (
	"fmt"
	"strings"

	"cogentcore.org/glshader/glcall"
	"cogentcore.org/glshader/shader"
)

// fakeBackend is a [Backend] that checks shader source with a few
// GLSL-like rules, links by matching fragment inputs to vertex outputs,
// and tracks every live object so tests can check for leaks and misuse.
type fakeBackend struct {
	next   uint32
	stages map[uint32]*fakeStage
	progs  map[uint32]*fakeProg

	// failOn makes the named method return a backend error.
	failOn map[string]bool

	// failCreate makes CreateStage return a backend error
	// for the given kinds only.
	failCreate map[shader.Kinds]bool

	// failValidate makes every validation fail.
	failValidate bool

	// validations counts ValidateProgram calls.
	validations int

	// compiled records the kinds compiled, in order.
	compiled []shader.Kinds

	// programsCreated counts CreateProgram calls.
	programsCreated int

	// uniformQueries counts UniformLocation calls.
	uniformQueries int

	// misuse records calls made on objects that do not exist
	// or are in the wrong state.
	misuse []string
}

type fakeStage struct {
	kind     shader.Kinds
	src      string
	compiled bool
	log      string
	outs     map[string]bool
	ins      []string
	unis     []string
	hasMain  bool
}

type fakeProg struct {
	attached  map[uint32]bool
	linked    bool
	validated bool
	log       string
	unis      map[string]int32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		next:   1,
		stages: map[uint32]*fakeStage{},
		progs:  map[uint32]*fakeProg{},
		failOn:     map[string]bool{},
		failCreate: map[shader.Kinds]bool{},
	}
}

// live returns the number of stage and program objects not yet deleted.
func (fb *fakeBackend) live() (stages, progs int) {
	return len(fb.stages), len(fb.progs)
}

func (fb *fakeBackend) fail(op string) error {
	if fb.failOn[op] {
		return &glcall.Error{Op: op, File: "fake_test.go", Codes: []uint32{glcall.InvalidOperation}}
	}
	return nil
}

func (fb *fakeBackend) misused(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	fb.misuse = append(fb.misuse, msg)
	return &glcall.Error{Op: msg, Codes: []uint32{glcall.InvalidValue}}
}

func (fb *fakeBackend) CreateStage(kind shader.Kinds) (uint32, error) {
	if err := fb.fail("CreateStage"); err != nil {
		return 0, err
	}
	if fb.failCreate[kind] {
		return 0, &glcall.Error{Op: "CreateStage " + kind.String(), File: "fake_test.go", Codes: []uint32{glcall.OutOfMemory}}
	}
	h := fb.next
	fb.next++
	fb.stages[h] = &fakeStage{kind: kind}
	return h, nil
}

func (fb *fakeBackend) CompileStage(stage uint32, src string) error {
	if err := fb.fail("CompileStage"); err != nil {
		return err
	}
	st, ok := fb.stages[stage]
	if !ok {
		return fb.misused("CompileStage %d", stage)
	}
	fb.compiled = append(fb.compiled, st.kind)
	st.src = src
	st.outs = map[string]bool{}
	var errs []string
	seenVersion := false
	for i, ln := range strings.Split(src, "\n") {
		t := strings.TrimSpace(ln)
		if t == "" || strings.HasPrefix(t, "//") {
			continue
		}
		if strings.HasPrefix(t, "#") {
			if strings.HasPrefix(t, "#version") {
				seenVersion = true
			}
			continue
		}
		if !seenVersion {
			errs = append(errs, fmt.Sprintf("0:%d(1): error: #version must come first", i+1))
			seenVersion = true
		}
		if strings.HasPrefix(t, "void main") {
			st.hasMain = true
		}
		flds := strings.Fields(strings.TrimSuffix(t, ";"))
		if len(flds) == 0 {
			continue
		}
		switch flds[0] {
		case "uniform":
			st.unis = append(st.unis, flds[len(flds)-1])
		case "out":
			st.outs[flds[len(flds)-1]] = true
		case "in":
			st.ins = append(st.ins, flds[len(flds)-1])
		}
		switch t[len(t)-1] {
		case ';', '{', '}', ')', ',':
		default:
			errs = append(errs, fmt.Sprintf("0:%d(%d): error: syntax error, unexpected end of line, expecting ';'", i+1, len(ln)+1))
		}
	}
	st.compiled = len(errs) == 0
	st.log = strings.Join(errs, "\n")
	if st.log != "" {
		st.log += "\n"
	}
	return nil
}

func (fb *fakeBackend) StageCompiled(stage uint32) (bool, error) {
	st, ok := fb.stages[stage]
	if !ok {
		return false, fb.misused("StageCompiled %d", stage)
	}
	return st.compiled, nil
}

func (fb *fakeBackend) StageLog(stage uint32) (string, error) {
	st, ok := fb.stages[stage]
	if !ok {
		return "", fb.misused("StageLog %d", stage)
	}
	return st.log, nil
}

func (fb *fakeBackend) DeleteStage(stage uint32) error {
	if _, ok := fb.stages[stage]; !ok {
		return fb.misused("DeleteStage %d", stage)
	}
	for _, pr := range fb.progs {
		if pr.attached[stage] {
			return fb.misused("DeleteStage %d while attached", stage)
		}
	}
	delete(fb.stages, stage)
	return nil
}

func (fb *fakeBackend) CreateProgram() (uint32, error) {
	if err := fb.fail("CreateProgram"); err != nil {
		return 0, err
	}
	fb.programsCreated++
	h := fb.next
	fb.next++
	fb.progs[h] = &fakeProg{attached: map[uint32]bool{}}
	return h, nil
}

func (fb *fakeBackend) AttachStage(prog, stage uint32) error {
	if err := fb.fail("AttachStage"); err != nil {
		return err
	}
	pr, ok := fb.progs[prog]
	st, sok := fb.stages[stage]
	if !ok || !sok || !st.compiled {
		return fb.misused("AttachStage %d %d", prog, stage)
	}
	pr.attached[stage] = true
	return nil
}

func (fb *fakeBackend) DetachStage(prog, stage uint32) error {
	pr, ok := fb.progs[prog]
	if !ok || !pr.attached[stage] {
		return fb.misused("DetachStage %d %d", prog, stage)
	}
	delete(pr.attached, stage)
	return nil
}

func (fb *fakeBackend) LinkProgram(prog uint32) error {
	if err := fb.fail("LinkProgram"); err != nil {
		return err
	}
	pr, ok := fb.progs[prog]
	if !ok {
		return fb.misused("LinkProgram %d", prog)
	}
	var vs, fs *fakeStage
	for h := range pr.attached {
		st := fb.stages[h]
		switch st.kind {
		case shader.Vertex:
			vs = st
		case shader.Fragment:
			fs = st
		}
	}
	var errs []string
	for _, st := range []*fakeStage{vs, fs} {
		if st != nil && !st.hasMain {
			errs = append(errs, fmt.Sprintf("error: %s shader lacks `main'", st.kind))
		}
	}
	if vs != nil && fs != nil {
		for _, in := range fs.ins {
			if !vs.outs[in] {
				errs = append(errs, fmt.Sprintf("error: fragment shader input `%s' has no matching output in the previous stage", in))
			}
		}
	}
	pr.linked = len(errs) == 0
	pr.log = strings.Join(errs, "\n")
	pr.unis = map[string]int32{}
	if pr.linked {
		for _, st := range []*fakeStage{vs, fs} {
			for _, u := range st.unis {
				if _, has := pr.unis[u]; !has {
					pr.unis[u] = int32(len(pr.unis))
				}
			}
		}
	}
	return nil
}

func (fb *fakeBackend) ProgramLinked(prog uint32) (bool, error) {
	pr, ok := fb.progs[prog]
	if !ok {
		return false, fb.misused("ProgramLinked %d", prog)
	}
	return pr.linked, nil
}

func (fb *fakeBackend) ValidateProgram(prog uint32) error {
	fb.validations++
	pr, ok := fb.progs[prog]
	if !ok {
		return fb.misused("ValidateProgram %d", prog)
	}
	pr.validated = !fb.failValidate
	if fb.failValidate {
		pr.log = "validation failed: current draw framebuffer is invalid"
	}
	return nil
}

func (fb *fakeBackend) ProgramValidated(prog uint32) (bool, error) {
	pr, ok := fb.progs[prog]
	if !ok {
		return false, fb.misused("ProgramValidated %d", prog)
	}
	return pr.validated, nil
}

func (fb *fakeBackend) ProgramLog(prog uint32) (string, error) {
	if err := fb.fail("ProgramLog"); err != nil {
		return "", err
	}
	pr, ok := fb.progs[prog]
	if !ok {
		return "", fb.misused("ProgramLog %d", prog)
	}
	return pr.log, nil
}

func (fb *fakeBackend) DeleteProgram(prog uint32) error {
	if _, ok := fb.progs[prog]; !ok {
		return fb.misused("DeleteProgram %d", prog)
	}
	delete(fb.progs, prog)
	return nil
}

func (fb *fakeBackend) UniformLocation(prog uint32, name string) (int32, error) {
	fb.uniformQueries++
	pr, ok := fb.progs[prog]
	if !ok || !pr.linked {
		return -1, fb.misused("UniformLocation %d", prog)
	}
	if loc, has := pr.unis[name]; has {
		return loc, nil
	}
	return -1, nil
}

func (fb *fakeBackend) UseProgram(prog uint32) error {
	if _, ok := fb.progs[prog]; prog != 0 && !ok {
		return fb.misused("UseProgram %d", prog)
	}
	return nil
}
