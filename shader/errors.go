// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCodes classify the ways parsing a combined shader file can fail.
type ErrorCodes int32

const (
	// EmptySource means the input had no section markers at all.
	EmptySource ErrorCodes = iota

	// NoActiveSection means a content line appeared before any
	// #shader marker.
	NoActiveSection

	// UnknownSectionKind means a #shader marker named neither
	// vertex nor fragment.
	UnknownSectionKind

	// IOFailure means the input could not be opened or read.
	IOFailure
)

var errorCodeNames = map[ErrorCodes]string{
	EmptySource:        "empty source",
	NoActiveSection:    "no active section",
	UnknownSectionKind: "unknown section kind",
	IOFailure:          "i/o failure",
}

func (c ErrorCodes) String() string {
	if nm, ok := errorCodeNames[c]; ok {
		return nm
	}
	return fmt.Sprintf("ErrorCodes(%d)", int32(c))
}

// Sentinel errors for each of the [ErrorCodes], so that callers can
// use errors.Is on a [*ParseError].
var (
	ErrEmptySource        = errors.New("shader: empty source")
	ErrNoActiveSection    = errors.New("shader: content before any #shader marker")
	ErrUnknownSectionKind = errors.New("shader: unknown section kind")
	ErrIOFailure          = errors.New("shader: i/o failure")
)

var codeSentinels = map[ErrorCodes]error{
	EmptySource:        ErrEmptySource,
	NoActiveSection:    ErrNoActiveSection,
	UnknownSectionKind: ErrUnknownSectionKind,
	IOFailure:          ErrIOFailure,
}

// ParseError is returned by the Parse functions.
type ParseError struct {

	// Code says what went wrong.
	Code ErrorCodes

	// Path is the file being parsed, if known.
	Path string

	// Line is the 1-based line number of the offending line,
	// or 0 if the error is not about a specific line.
	Line int

	// Text is the offending line, without its line ending.
	Text string

	// Err is the underlying error for [IOFailure].
	Err error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("shader: ")
	if e.Path != "" {
		b.WriteString(e.Path)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
		b.WriteString(": ")
	} else if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Code.String())
	if e.Text != "" {
		fmt.Fprintf(&b, ": %q", e.Text)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error for the code of e.
func (e *ParseError) Is(target error) bool {
	return codeSentinels[e.Code] == target
}
