// Package vertexarray owns the VAO/VBO pair for position-only triangle lists.
package vertexarray

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	componentsPerVertex = 3
	floatSize           = 4
	stride              = componentsPerVertex * floatSize
)

// Validation errors returned by New.
var (
	ErrEmpty      = errors.New("vertexarray: no vertices")
	ErrMisaligned = errors.New("vertexarray: length is not a multiple of 3")
)

// VertexArray owns one vertex array object and its backing buffer.
type VertexArray struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// New uploads vertices as an immutable buffer with a single vec3 position
// attribute at location 0. A GL context must be current.
func New(vertices []float32) (*VertexArray, error) {
	count, err := vertexCount(vertices)
	if err != nil {
		return nil, err
	}

	va := &VertexArray{vertexCount: count}

	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)

	gl.GenBuffers(1, &va.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, componentsPerVertex, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return va, nil
}

// VertexCount returns the number of vertices in the buffer.
func (va *VertexArray) VertexCount() int32 {
	return va.vertexCount
}

// Bind makes the vertex array current.
func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.vao)
}

// Delete releases the VAO and VBO. Further calls are no-ops.
func (va *VertexArray) Delete() {
	if va.vao != 0 {
		gl.DeleteVertexArrays(1, &va.vao)
		va.vao = 0
	}
	if va.vbo != 0 {
		gl.DeleteBuffers(1, &va.vbo)
		va.vbo = 0
	}
}

func vertexCount(vertices []float32) (int32, error) {
	if len(vertices) == 0 {
		return 0, ErrEmpty
	}
	if len(vertices)%componentsPerVertex != 0 {
		return 0, fmt.Errorf("%w: got %d floats", ErrMisaligned, len(vertices))
	}
	return int32(len(vertices) / componentsPerVertex), nil
}
