// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shader splits a combined shader definition file into the
// source text of its vertex and fragment stages.
//
// The combined format has one section per stage, each started by a
// marker line:
//
//	#shader vertex
//	#version 330 core
//	...
//	#shader fragment
//	#version 330 core
//	...
//
// The resulting [Sources] is handed to the program package to compile
// and link.
package shader
