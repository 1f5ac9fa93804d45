package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute is one float vertex attribute, stored in its own buffer.
type Attribute struct {
	Location uint32
	Size     int32 // components per vertex
	Data     []float32
}

// Mesh is a vertex array with one buffer per attribute and an optional
// index buffer, drawn as triangles.
type Mesh struct {
	vao     uint32
	vbos    []uint32
	ebo     uint32
	count   int32
	indexed bool
}

// NewMesh uploads the attributes and, if indices is not empty, an index
// buffer. The vertex count of an unindexed mesh is taken from the first
// attribute.
func NewMesh(indices []uint32, attrs ...Attribute) *Mesh {
	m := &Mesh{}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	for _, a := range attrs {
		var vbo uint32
		gl.GenBuffers(1, &vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(a.Data)*4, gl.Ptr(a.Data), gl.STATIC_DRAW)
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, 0, 0)
		gl.EnableVertexAttribArray(a.Location)
		m.vbos = append(m.vbos, vbo)
	}

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		m.count = int32(len(indices))
		m.indexed = true
	} else if len(attrs) > 0 && attrs[0].Size > 0 {
		m.count = int32(len(attrs[0].Data)) / attrs[0].Size
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m
}

// Draw issues the draw call for the whole mesh.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GL objects.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if len(m.vbos) > 0 {
		gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
		m.vbos = nil
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
