// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package program compiles vertex and fragment shader stages and
// links them into a program, reporting the backend's compile and
// link logs as typed errors.
//
// The graphics API is abstracted by [Backend]; the glgpu package
// implements it with OpenGL.
package program
