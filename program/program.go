// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import "fmt"

// Program is a linked shader program, made by [Builder.Build].
// Its handle is never 0 until [Program.Delete] is called.
type Program struct {
	handle  uint32
	backend Backend

	// unis caches uniform locations by name.
	unis map[string]int32
}

// Handle returns the backend handle for the program, or 0 once deleted.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// UniformLocation returns the location of the named uniform.
// A name that is not an active uniform returns -1 and an error
// wrapping [ErrUniformNotFound]. Found locations are cached.
func (pr *Program) UniformLocation(name string) (int32, error) {
	if pr.handle == 0 {
		return -1, fmt.Errorf("program: UniformLocation %q on deleted program", name)
	}
	if loc, ok := pr.unis[name]; ok {
		return loc, nil
	}
	loc, err := pr.backend.UniformLocation(pr.handle, name)
	if err != nil {
		return -1, err
	}
	if loc < 0 {
		return -1, fmt.Errorf("%w: %q in program %d", ErrUniformNotFound, name, pr.handle)
	}
	if pr.unis == nil {
		pr.unis = make(map[string]int32)
	}
	pr.unis[name] = loc
	return loc, nil
}

// Use makes this the current program.
func (pr *Program) Use() error {
	if pr.handle == 0 {
		return fmt.Errorf("program: Use on deleted program")
	}
	return pr.backend.UseProgram(pr.handle)
}

// Delete releases the backend program. It is safe to call more than once.
func (pr *Program) Delete() error {
	if pr == nil || pr.handle == 0 {
		return nil
	}
	h := pr.handle
	pr.handle = 0
	pr.unis = nil
	return pr.backend.DeleteProgram(h)
}
