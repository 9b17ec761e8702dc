// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArray is a vertex array object, recording the vertex
// attribute layout and index buffer binding of one mesh.
type VertexArray struct {
	init   bool
	handle uint32
}

// Activate binds the array, generating it on first use.
func (va *VertexArray) Activate() error {
	return Calls.Call("glBindVertexArray", func() {
		if !va.init {
			gl.GenVertexArrays(1, &va.handle)
			va.init = true
		}
		gl.BindVertexArray(va.handle)
	})
}

// Handle returns the GL handle, only valid after Activate.
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// Delete deletes the GL vertex array (requires Activate to
// re-establish a new one).
func (va *VertexArray) Delete() error {
	if !va.init {
		return nil
	}
	err := Calls.Call("glDeleteVertexArrays", func() {
		gl.DeleteVertexArrays(1, &va.handle)
	})
	va.handle = 0
	va.init = false
	return err
}

// UnbindVertexArray clears the vertex array binding.
func UnbindVertexArray() error {
	return Calls.Call("glBindVertexArray", func() {
		gl.BindVertexArray(0)
	})
}

// VertexBuffer is a buffer of float vertex data
// (GL_ARRAY_BUFFER).
type VertexBuffer struct {
	init   bool
	handle uint32
	data   []float32
}

// Set sets the data by copying the given values.
func (vb *VertexBuffer) Set(data []float32) {
	vb.data = append(vb.data[:0], data...)
}

// Len returns the number of floats in the buffer.
func (vb *VertexBuffer) Len() int {
	return len(vb.data)
}

// Activate binds the buffer as the current array buffer,
// generating it on first use.
func (vb *VertexBuffer) Activate() error {
	return Calls.Call("glBindBuffer", func() {
		if !vb.init {
			gl.GenBuffers(1, &vb.handle)
			vb.init = true
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, vb.handle)
	})
}

// Handle returns the GL handle, only valid after Activate.
func (vb *VertexBuffer) Handle() uint32 {
	return vb.handle
}

// Transfer copies the data to the GPU. Activate must have been called
// with no other array buffer activated in between.
func (vb *VertexBuffer) Transfer() error {
	if len(vb.data) == 0 {
		return nil
	}
	return Calls.Call("glBufferData", func() {
		gl.BufferData(gl.ARRAY_BUFFER, 4*len(vb.data), gl.Ptr(vb.data), gl.STATIC_DRAW)
	})
}

// Delete deletes the GL buffer (requires Activate to re-establish
// a new one).
func (vb *VertexBuffer) Delete() error {
	if !vb.init {
		return nil
	}
	err := Calls.Call("glDeleteBuffers", func() {
		gl.DeleteBuffers(1, &vb.handle)
	})
	vb.handle = 0
	vb.init = false
	return err
}

// UnbindVertexBuffer clears the array buffer binding.
func UnbindVertexBuffer() error {
	return Calls.Call("glBindBuffer", func() {
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	})
}

// IndexBuffer is a buffer of indexes for indexed drawing
// (GL_ELEMENT_ARRAY_BUFFER for glDrawElements).
type IndexBuffer struct {
	init   bool
	handle uint32
	idxs   []uint32
}

// Set sets the indexes by copying the given values.
func (ib *IndexBuffer) Set(idxs []uint32) {
	ib.idxs = append(ib.idxs[:0], idxs...)
}

// Len returns the number of indexes in the buffer.
func (ib *IndexBuffer) Len() int {
	return len(ib.idxs)
}

// Indexes returns the indexes (the internal buffer, not a copy).
func (ib *IndexBuffer) Indexes() []uint32 {
	return ib.idxs
}

// Activate binds the buffer as the current element buffer,
// generating it on first use.
func (ib *IndexBuffer) Activate() error {
	return Calls.Call("glBindBuffer", func() {
		if !ib.init {
			gl.GenBuffers(1, &ib.handle)
			ib.init = true
		}
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.handle)
	})
}

// Handle returns the GL handle, only valid after Activate.
func (ib *IndexBuffer) Handle() uint32 {
	return ib.handle
}

// Transfer copies the indexes to the GPU. Activate must have been
// called with no other element buffer activated in between.
func (ib *IndexBuffer) Transfer() error {
	if len(ib.idxs) == 0 {
		return nil
	}
	return Calls.Call("glBufferData", func() {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(ib.idxs), gl.Ptr(ib.idxs), gl.STATIC_DRAW)
	})
}

// Delete deletes the GL buffer (requires Activate to re-establish
// a new one).
func (ib *IndexBuffer) Delete() error {
	if !ib.init {
		return nil
	}
	err := Calls.Call("glDeleteBuffers", func() {
		gl.DeleteBuffers(1, &ib.handle)
	})
	ib.handle = 0
	ib.init = false
	return err
}

// UnbindIndexBuffer clears the element buffer binding. The binding is
// part of the vertex array state, so call it only after unbinding the
// vertex array.
func UnbindIndexBuffer() error {
	return Calls.Call("glBindBuffer", func() {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	})
}
