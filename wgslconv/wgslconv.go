// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wgslconv converts a WGSL shader with a vertex and a fragment
// entry point into the combined #shader format, with each stage
// translated to GLSL.
package wgslconv

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/glshader/shader"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"
)

// Phases are the steps of a conversion, as named in errors.
type Phases int32

const (
	// ParsePhase is parsing the WGSL source.
	ParsePhase Phases = iota

	// LowerPhase is lowering the syntax tree to IR.
	LowerPhase

	// ValidatePhase is validating the IR.
	ValidatePhase

	// EntryPointPhase is choosing the entry points.
	EntryPointPhase

	// GeneratePhase is generating GLSL.
	GeneratePhase

	// SplitPhase is parsing the generated combined source.
	SplitPhase
)

var phaseNames = [...]string{"parse", "lower", "validate", "entry point", "generate", "split"}

func (p Phases) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phases(%d)", int32(p))
	}
	return phaseNames[p]
}

// Error is returned when a conversion fails.
type Error struct {

	// Phase is the step that failed.
	Phase Phases

	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("wgslconv: %s: %v", e.Phase, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Options control a conversion.
type Options struct {

	// Version is the GLSL version to generate; zero means 410 core,
	// matching the OpenGL 4.1 core context of the demo.
	Version glsl.Version

	// Vertex and Fragment name the entry points to use. Empty means
	// the first entry point of that stage.
	Vertex   string
	Fragment string

	// Validate runs IR validation before generating GLSL.
	Validate bool
}

// Convert translates the WGSL source into combined shader sources.
func Convert(src string, opts Options) (*shader.Sources, error) {
	if opts.Version.Major == 0 {
		opts.Version = glsl.Version410
	}
	ast, err := naga.Parse(src)
	if err != nil {
		return nil, &Error{ParsePhase, err}
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return nil, &Error{LowerPhase, err}
	}
	if opts.Validate {
		verrs, err := naga.Validate(module)
		if err != nil {
			return nil, &Error{ValidatePhase, err}
		}
		if len(verrs) > 0 {
			errs := make([]error, len(verrs))
			for i, ve := range verrs {
				errs[i] = ve
			}
			return nil, &Error{ValidatePhase, errors.Join(errs...)}
		}
	}

	var b strings.Builder
	for _, k := range shader.AllKinds() {
		name := opts.Vertex
		stage := ir.StageVertex
		if k == shader.Fragment {
			name = opts.Fragment
			stage = ir.StageFragment
		}
		ep, err := EntryPoint(module, stage, name)
		if err != nil {
			return nil, &Error{EntryPointPhase, err}
		}
		code, _, err := glsl.Compile(module, glsl.Options{LangVersion: opts.Version, EntryPoint: ep})
		if err != nil {
			return nil, &Error{GeneratePhase, fmt.Errorf("%s entry point %s: %w", k, ep, err)}
		}
		logx.PrintlnDebug("wgslconv: generated", k, "stage from", ep)
		b.WriteString(shader.SectionMarker + " " + k.String() + "\n")
		b.WriteString(code)
		if !strings.HasSuffix(code, "\n") {
			b.WriteString("\n")
		}
	}
	ss, err := shader.ParseString(b.String(), shader.Strict())
	if err != nil {
		return nil, &Error{SplitPhase, err}
	}
	return ss, nil
}

// ConvertFile is [Convert] for the WGSL file at the given path.
func ConvertFile(path string, opts Options) (*shader.Sources, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wgslconv: %w", err)
	}
	ss, err := Convert(string(b), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ss, nil
}

// EntryPoint returns the name of the entry point of the given stage:
// the named one, which must have that stage, or the first of that
// stage if name is empty.
func EntryPoint(module *ir.Module, stage ir.ShaderStage, name string) (string, error) {
	for _, ep := range module.EntryPoints {
		if name != "" && ep.Name != name {
			continue
		}
		if ep.Stage == stage {
			return ep.Name, nil
		}
		if name != "" {
			return "", fmt.Errorf("entry point %s is not a %s shader", name, stageName(stage))
		}
	}
	if name != "" {
		return "", fmt.Errorf("no entry point named %s", name)
	}
	return "", fmt.Errorf("no %s entry point", stageName(stage))
}

func stageName(stage ir.ShaderStage) string {
	switch stage {
	case ir.StageVertex:
		return "vertex"
	case ir.StageFragment:
		return "fragment"
	}
	return fmt.Sprintf("stage %d", stage)
}
