// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"strings"
)

// Kinds are the kinds of shader stage sections in a combined
// shader file.
type Kinds int32

const (
	// Vertex is the vertex stage section, marked by #shader vertex.
	Vertex Kinds = iota

	// Fragment is the fragment stage section, marked by #shader fragment.
	Fragment

	// KindsN is the number of kinds.
	KindsN
)

// noSection is the parser state before any section marker has been seen.
const noSection Kinds = -1

var kindNames = [KindsN]string{
	Vertex:   "vertex",
	Fragment: "fragment",
}

// String returns the marker token for the kind.
func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// IsValid returns whether k is one of the defined kinds.
func (k Kinds) IsValid() bool {
	return k >= 0 && k < KindsN
}

// KindFromString returns the kind named by the given marker token,
// ignoring case and surrounding space.
func KindFromString(s string) (Kinds, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, nm := range kindNames {
		if s == nm {
			return Kinds(k), nil
		}
	}
	return noSection, fmt.Errorf("shader.KindFromString: %q is not a shader kind", s)
}

// AllKinds returns all of the kinds, in canonical order.
func AllKinds() []Kinds {
	return []Kinds{Vertex, Fragment}
}
