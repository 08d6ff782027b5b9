// Package geometry holds the two primitive meshes every visible object
// instances: a unit cube and a flat terrain quad. Vertex data is plain
// []float32 so it can be inspected without a GL context.
package geometry

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexStride is the float count per vertex: position, normal, texcoord.
const VertexStride = 8

// CubeVertices returns a unit cube centered at the origin, 36 vertices
// with per-face normals and texcoords.
func CubeVertices() []float32 {
	return []float32{
		// front (+Z)
		-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
		0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
		0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
		0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
		-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
		-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,

		// back (-Z)
		0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
		-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
		-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
		-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
		0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
		0.5, -0.5, -0.5, 0, 0, -1, 0, 0,

		// left (-X)
		-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
		-0.5, -0.5, 0.5, -1, 0, 0, 1, 0,
		-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
		-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
		-0.5, 0.5, -0.5, -1, 0, 0, 0, 1,
		-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,

		// right (+X)
		0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
		0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
		0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
		0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
		0.5, 0.5, 0.5, 1, 0, 0, 0, 1,
		0.5, -0.5, 0.5, 1, 0, 0, 0, 0,

		// top (+Y)
		-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
		0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
		0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
		0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
		-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
		-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,

		// bottom (-Y)
		-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
		0.5, -0.5, -0.5, 0, -1, 0, 1, 0,
		0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
		0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
		-0.5, -0.5, 0.5, 0, -1, 0, 0, 1,
		-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	}
}

// TerrainVertices returns a flat quad spanning +-halfSize on X/Z at Y=0,
// facing up, with the texture repeated uvRepeat times across each axis.
func TerrainVertices(halfSize, uvRepeat float32) []float32 {
	h := halfSize
	r := uvRepeat
	return []float32{
		-h, 0, -h, 0, 1, 0, 0, 0,
		-h, 0, h, 0, 1, 0, 0, r,
		h, 0, h, 0, 1, 0, r, r,
		h, 0, h, 0, 1, 0, r, r,
		h, 0, -h, 0, 1, 0, r, 0,
		-h, 0, -h, 0, 1, 0, 0, 0,
	}
}

// Mesh is an uploaded vertex buffer ready to draw.
type Mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Upload creates a VAO/VBO pair for the given interleaved vertex data.
func Upload(vertices []float32) *Mesh {
	m := &Mesh{count: int32(len(vertices) / VertexStride)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

// Draw issues the mesh's triangles.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

// Destroy releases the GPU buffers.
func (m *Mesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}
