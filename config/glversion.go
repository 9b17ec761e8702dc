// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strconv"
	"strings"
)

// GLVersion is an OpenGL core profile version.
type GLVersion struct {
	Major int
	Minor int
}

// SupportedGL are the core profile versions that can compile the
// #version 330 core shaders the demo uses, mapped to whether the
// GL bindings used here can load them.
var SupportedGL = map[GLVersion]bool{
	{3, 3}: true,
	{4, 0}: true,
	{4, 1}: true,
	{4, 2}: false,
	{4, 3}: false,
	{4, 4}: false,
	{4, 5}: false,
	{4, 6}: false,
}

// String returns the version as a string in the form "major.minor".
func (v GLVersion) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Supported returns nil if the version is supported. Otherwise it
// returns an error saying whether it is unknown or unsupported.
func (v GLVersion) Supported() error {
	supported, ok := SupportedGL[v]
	if !ok {
		return fmt.Errorf("config: unknown OpenGL core version %s; please check that it is a real version of at least 3.3", v)
	}
	if !supported {
		return fmt.Errorf("config: OpenGL version %s exists but is above the 4.1 core functions loaded by the demo", v)
	}
	return nil
}

// SetString sets the version from a string of the form major[.minor].
func (v *GLVersion) SetString(s string) error {
	before, after, found := strings.Cut(strings.TrimSpace(s), ".")
	major, err := strconv.Atoi(before)
	if err != nil {
		return fmt.Errorf("config: parsing OpenGL version %q: %w", s, err)
	}
	minor := 0
	if found {
		minor, err = strconv.Atoi(after)
		if err != nil {
			return fmt.Errorf("config: parsing OpenGL version %q: %w", s, err)
		}
	}
	*v = GLVersion{Major: major, Minor: minor}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler, for TOML.
func (v *GLVersion) UnmarshalText(b []byte) error {
	return v.SetString(string(b))
}

// MarshalText implements encoding.TextMarshaler.
func (v GLVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
