// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import (
	"errors"
	"fmt"
	"strings"

	"cogentcore.org/glshader/shader"
)

// CompileError is returned when the backend rejects the source
// of one shader stage.
type CompileError struct {

	// Kind is the stage that failed.
	Kind shader.Kinds

	// Log is the backend's compile log.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("program: %s shader failed to compile: %s", e.Kind, strings.TrimSpace(e.Log))
}

// ErrorCodes classify the ways a [Builder.Build] can fail.
type ErrorCodes int32

const (
	// MissingStage means the sources lacked a vertex or fragment section.
	MissingStage ErrorCodes = iota

	// CompileFailed means one or both stages failed to compile.
	CompileFailed

	// LinkFailed means the stages compiled but did not link.
	LinkFailed

	// ValidationFailed means the linked program did not validate.
	ValidationFailed

	// BackendFailed means a backend call itself raised an error.
	BackendFailed
)

var errorCodeNames = map[ErrorCodes]string{
	MissingStage:     "missing stage",
	CompileFailed:    "compile failed",
	LinkFailed:       "link failed",
	ValidationFailed: "validation failed",
	BackendFailed:    "backend failed",
}

func (c ErrorCodes) String() string {
	if nm, ok := errorCodeNames[c]; ok {
		return nm
	}
	return fmt.Sprintf("ErrorCodes(%d)", int32(c))
}

// Sentinel errors for each of the [ErrorCodes], matched by
// errors.Is on a [*BuildError].
var (
	ErrMissingStage     = errors.New("program: missing stage")
	ErrCompileFailed    = errors.New("program: compile failed")
	ErrLinkFailed       = errors.New("program: link failed")
	ErrValidationFailed = errors.New("program: validation failed")
	ErrBackendFailed    = errors.New("program: backend failed")
)

var codeSentinels = map[ErrorCodes]error{
	MissingStage:     ErrMissingStage,
	CompileFailed:    ErrCompileFailed,
	LinkFailed:       ErrLinkFailed,
	ValidationFailed: ErrValidationFailed,
	BackendFailed:    ErrBackendFailed,
}

// ErrUniformNotFound is returned by [Program.UniformLocation] for a
// name that is not an active uniform of the program.
var ErrUniformNotFound = errors.New("program: uniform not found")

// BuildError is returned by [Builder.Build] when no program could be made.
type BuildError struct {

	// Code says what went wrong.
	Code ErrorCodes

	// Log is the backend's link or validation log.
	Log string

	// Compile has one error for each stage that failed to compile.
	Compile []*CompileError

	// Missing is the missing stage kind for [MissingStage].
	Missing shader.Kinds

	// Err is the underlying backend error for [BackendFailed], or the
	// error getting the log for [LinkFailed] and [ValidationFailed].
	// A backend failure compiling the fragment stage keeps the compile
	// error of the vertex stage in Compile.
	Err error
}

func (e *BuildError) Error() string {
	switch e.Code {
	case MissingStage:
		return fmt.Sprintf("program: no %s shader source", e.Missing)
	case CompileFailed:
		msgs := make([]string, len(e.Compile))
		for i, ce := range e.Compile {
			msgs[i] = ce.Error()
		}
		return strings.Join(msgs, "\n")
	case LinkFailed, ValidationFailed:
		if e.Err != nil && strings.TrimSpace(e.Log) == "" {
			return fmt.Sprintf("program: %s (no log: %v)", e.Code, e.Err)
		}
		return fmt.Sprintf("program: %s: %s", e.Code, strings.TrimSpace(e.Log))
	}
	if e.Err != nil {
		return fmt.Sprintf("program: %s: %v", e.Code, e.Err)
	}
	return "program: " + e.Code.String()
}

// Unwrap returns the compile errors and the backend error, so that
// errors.As can reach a [*CompileError].
func (e *BuildError) Unwrap() []error {
	var errs []error
	for _, ce := range e.Compile {
		errs = append(errs, ce)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Is reports whether target is the sentinel error for the code of e.
func (e *BuildError) Is(target error) bool {
	return codeSentinels[e.Code] == target
}

// CompileErrorFor returns the compile error for the given stage kind
// within err, or nil.
func CompileErrorFor(err error, kind shader.Kinds) *CompileError {
	var be *BuildError
	if errors.As(err, &be) {
		for _, ce := range be.Compile {
			if ce.Kind == kind {
				return ce
			}
		}
		return nil
	}
	var ce *CompileError
	if errors.As(err, &ce) && ce.Kind == kind {
		return ce
	}
	return nil
}
