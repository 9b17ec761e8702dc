// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glcall wraps individual graphics API calls so that any
// errors the backend queues during the call are captured and returned
// as a structured error, instead of being left for a later global
// error check.
package glcall

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

// MaxDrain bounds how many queued errors are read in one drain.
// Without a current context some drivers report an error on every
// query, which would otherwise never terminate.
const MaxDrain = 32

// OpenGL error codes, as returned by glGetError.
const (
	NoError                     uint32 = 0
	InvalidEnum                 uint32 = 0x0500
	InvalidValue                uint32 = 0x0501
	InvalidOperation            uint32 = 0x0502
	StackOverflow               uint32 = 0x0503
	StackUnderflow              uint32 = 0x0504
	OutOfMemory                 uint32 = 0x0505
	InvalidFramebufferOperation uint32 = 0x0506
)

var codeNames = map[uint32]string{
	NoError:                     "GL_NO_ERROR",
	InvalidEnum:                 "GL_INVALID_ENUM",
	InvalidValue:                "GL_INVALID_VALUE",
	InvalidOperation:            "GL_INVALID_OPERATION",
	StackOverflow:               "GL_STACK_OVERFLOW",
	StackUnderflow:              "GL_STACK_UNDERFLOW",
	OutOfMemory:                 "GL_OUT_OF_MEMORY",
	InvalidFramebufferOperation: "GL_INVALID_FRAMEBUFFER_OPERATION",
}

// CodeName returns the symbolic name of a GL error code.
func CodeName(code uint32) string {
	if nm, ok := codeNames[code]; ok {
		return nm
	}
	return fmt.Sprintf("GL_ERROR_0x%04X", code)
}

// Error is a backend error raised during one wrapped call.
type Error struct {

	// Op is the name of the operation, such as "glBindBuffer".
	Op string

	// File and Line are the call site of [Caller.Call].
	File string
	Line int

	// Codes are the error codes queued by the call, in order.
	Codes []uint32
}

func (e *Error) Error() string {
	names := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		names[i] = fmt.Sprintf("%s (0x%04X)", CodeName(c), c)
	}
	return fmt.Sprintf("glcall: %s at %s:%d: %s", e.Op, e.File, e.Line, strings.Join(names, ", "))
}

// Has returns whether the given code was raised.
func (e *Error) Has(code uint32) bool {
	for _, c := range e.Codes {
		if c == code {
			return true
		}
	}
	return false
}

// Poller returns the next queued error code, or [NoError]
// when the queue is empty (glGetError).
type Poller func() uint32

// Caller runs calls against one error queue.
type Caller struct {

	// Poll reads the backend error queue.
	Poll Poller
}

// NewCaller returns a new [Caller] reading errors with poll.
func NewCaller(poll Poller) *Caller {
	return &Caller{Poll: poll}
}

// Call discards any errors already pending, runs fn, and returns
// an [*Error] for the given operation name if fn queued any errors.
// The error is logged with the call site.
func (c *Caller) Call(op string, fn func()) error {
	c.discard(op)
	fn()
	return c.check(op, 2)
}

// Call1 is [Caller.Call] for a function returning a value.
func Call1[T any](c *Caller, op string, fn func() T) (T, error) {
	c.discard(op)
	v := fn()
	return v, c.check(op, 2)
}

// discard drains errors left over from earlier unwrapped calls,
// so that they are not attributed to op.
func (c *Caller) discard(op string) {
	if stale := c.drain(); len(stale) > 0 {
		slog.Warn("graphics backend errors pending before call", "op", op, "codes", errCodeNames(stale))
	}
}

// check drains the errors raised by op. skip is the number of stack
// frames between check and the call site to report.
func (c *Caller) check(op string, skip int) error {
	codes := c.drain()
	if len(codes) == 0 {
		return nil
	}
	err := &Error{Op: op, Codes: codes}
	if _, file, line, ok := runtime.Caller(skip); ok {
		err.File = filepath.Base(file)
		err.Line = line
	}
	slog.Error("graphics backend error", "op", op, "file", err.File, "line", err.Line, "codes", errCodeNames(codes))
	return err
}

// drain reads the error queue until it is empty, returning the codes read.
func (c *Caller) drain() []uint32 {
	if c.Poll == nil {
		return nil
	}
	var codes []uint32
	for range MaxDrain {
		code := c.Poll()
		if code == NoError {
			break
		}
		codes = append(codes, code)
	}
	return codes
}

func errCodeNames(codes []uint32) []string {
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = CodeName(c)
	}
	return names
}
