// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

const (
	// SectionMarker starts a new stage section: #shader vertex.
	SectionMarker = "#shader"

	// VersionMarker is the GLSL version directive, which restarts
	// the text of the current section.
	VersionMarker = "#version"
)

// Option configures the Parse functions.
type Option func(p *parser)

// Strict requires markers to be whole tokens at the start of a line:
// "#shader" followed by exactly "vertex" or "fragment", and "#version"
// as the first token of its line. Without it, markers are matched
// anywhere in a line, which is the format's traditional behavior:
// "#shader vertex_main" is a vertex marker and a comment mentioning
// #version restarts the section.
func Strict() Option {
	return func(p *parser) {
		p.strict = true
	}
}

// WithPath sets the file path reported in errors.
func WithPath(path string) Option {
	return func(p *parser) {
		p.path = path
	}
}

// ParseFile opens the file at path and parses it with [Parse].
// The file is closed before returning, on success or failure.
func ParseFile(path string, opts ...Option) (*Sources, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Code: IOFailure, Path: path, Err: err}
	}
	defer f.Close()
	return Parse(f, append([]Option{WithPath(path)}, opts...)...)
}

// ParseString parses the given combined shader text with [Parse].
func ParseString(text string, opts ...Option) (*Sources, error) {
	return Parse(strings.NewReader(text), opts...)
}

// Parse reads a combined shader definition from r and splits it
// into the source text for each stage.
//
// A #shader line selects the section that following lines go to,
// a #version line replaces whatever the current section has so far,
// and every other line is appended verbatim, including its line ending.
// Whitespace-only lines before the first #shader line are skipped;
// any other line there is a [NoActiveSection] error.
func Parse(r io.Reader, opts ...Option) (*Sources, error) {
	p := &parser{cur: noSection}
	for _, opt := range opts {
		opt(p)
	}
	br := bufio.NewReader(r)
	for {
		ln, rerr := br.ReadString('\n')
		if ln != "" {
			p.line++
			if err := p.scan(ln); err != nil {
				return nil, err
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, &ParseError{Code: IOFailure, Path: p.path, Line: p.line, Err: rerr}
		}
	}
	return p.sources()
}

// parser holds the scanning state of one Parse call.
type parser struct {
	strict bool
	path   string

	// line is the number of the line being scanned.
	line int

	// cur is the section that content lines go to.
	cur Kinds

	bufs  [KindsN]*strings.Builder
	order []Kinds
}

// scan processes one line, which includes its line ending if any.
func (p *parser) scan(ln string) error {
	if p.isMarker(ln) {
		k, err := p.markerKind(ln)
		if err != nil {
			return err
		}
		p.cur = k
		if p.bufs[k] == nil {
			p.bufs[k] = &strings.Builder{}
			p.order = append(p.order, k)
		}
		return nil
	}
	if p.cur == noSection {
		if strings.TrimSpace(ln) == "" {
			return nil
		}
		return p.errorf(NoActiveSection, ln)
	}
	buf := p.bufs[p.cur]
	if p.isVersion(ln) {
		buf.Reset()
	}
	buf.WriteString(ln)
	return nil
}

func (p *parser) isMarker(ln string) bool {
	if p.strict {
		return firstField(ln) == SectionMarker
	}
	return strings.Contains(ln, SectionMarker)
}

func (p *parser) isVersion(ln string) bool {
	if p.strict {
		return firstField(ln) == VersionMarker
	}
	return strings.Contains(ln, VersionMarker)
}

// markerKind returns the kind named on a #shader line.
func (p *parser) markerKind(ln string) (Kinds, error) {
	if p.strict {
		flds := strings.Fields(ln)
		if len(flds) == 2 {
			for k, nm := range kindNames {
				if flds[1] == nm {
					return Kinds(k), nil
				}
			}
		}
		return noSection, p.errorf(UnknownSectionKind, ln)
	}
	switch {
	case strings.Contains(ln, kindNames[Vertex]):
		return Vertex, nil
	case strings.Contains(ln, kindNames[Fragment]):
		return Fragment, nil
	}
	return noSection, p.errorf(UnknownSectionKind, ln)
}

func (p *parser) errorf(code ErrorCodes, ln string) error {
	return &ParseError{Code: code, Path: p.path, Line: p.line, Text: strings.TrimRight(ln, "\r\n")}
}

// sources returns the finished [Sources].
func (p *parser) sources() (*Sources, error) {
	if len(p.order) == 0 {
		return nil, &ParseError{Code: EmptySource, Path: p.path}
	}
	s := &Sources{text: make(map[Kinds]string, len(p.order)), order: p.order}
	for _, k := range p.order {
		s.text[k] = p.bufs[k].String()
	}
	return s, nil
}

func firstField(ln string) string {
	flds := strings.Fields(ln)
	if len(flds) == 0 {
		return ""
	}
	return flds[0]
}

// IsParseError returns whether err is a [*ParseError] with the given code.
func IsParseError(err error, code ErrorCodes) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Code == code
}
