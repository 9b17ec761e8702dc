// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"io"
	"strings"
)

// Sources holds the source text of each shader stage section
// of a combined shader file. It is built by the Parse functions
// and is not modified afterwards.
type Sources struct {

	// text is the accumulated source for each kind present in the input.
	text map[Kinds]string

	// order is the kinds in the order their sections first appeared.
	order []Kinds
}

// Source returns the source text for the given kind, and whether
// a section of that kind was present.
func (s *Sources) Source(k Kinds) (string, bool) {
	if s == nil {
		return "", false
	}
	src, ok := s.text[k]
	return src, ok
}

// Has returns whether a section of the given kind was present.
func (s *Sources) Has(k Kinds) bool {
	_, ok := s.Source(k)
	return ok
}

// Vertex returns the vertex stage source, or "" if there is none.
func (s *Sources) Vertex() string {
	src, _ := s.Source(Vertex)
	return src
}

// Fragment returns the fragment stage source, or "" if there is none.
func (s *Sources) Fragment() string {
	src, _ := s.Source(Fragment)
	return src
}

// Kinds returns the kinds present, in the order in which their
// sections first appeared.
func (s *Sources) Kinds() []Kinds {
	if s == nil {
		return nil
	}
	ks := make([]Kinds, len(s.order))
	copy(ks, s.order)
	return ks
}

// Len returns the number of sections.
func (s *Sources) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Equal returns whether s and o contain the same kinds with the same text.
func (s *Sources) Equal(o *Sources) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, k := range s.Kinds() {
		a, _ := s.Source(k)
		b, ok := o.Source(k)
		if !ok || a != b {
			return false
		}
	}
	return true
}

// WriteTo writes s back out in the combined format, one
// #shader marker followed by the section text for each kind,
// in first-appearance order. Section text that does not end
// in a newline gets one.
//
// Parsing the output in the default loose mode gives sources
// [Sources.Equal] to s only if no line of a section contains #shader
// and only its first line contains #version. With [Strict], the same
// holds for lines that start with those markers.
func (s *Sources) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, k := range s.Kinds() {
		src := s.text[k]
		if src != "" && !strings.HasSuffix(src, "\n") {
			src += "\n"
		}
		n, err := io.WriteString(w, "#shader "+k.String()+"\n"+src)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns s in the combined format; see [Sources.WriteTo].
func (s *Sources) String() string {
	var b strings.Builder
	s.WriteTo(&b)
	return b.String()
}
