// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image/color"

	"github.com/uibridge/uibridge/f32"
)

// Vertex is a mesh vertex in physical pixels.
type Vertex struct {
	Pos   f32.Point
	Color color.NRGBA
}

// Mesh is an indexed triangle list. Every three consecutive
// Indices form one triangle.
type Mesh struct {
	Indices  []uint32
	Vertices []Vertex
}

// ClippedPrimitive is a render-ready mesh together with the clip
// rectangle, in physical pixels, a renderer should scissor it to.
type ClippedPrimitive struct {
	Clip f32.Rectangle
	Mesh Mesh
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(pos f32.Point, c color.NRGBA) uint32 {
	m.Vertices = append(m.Vertices, Vertex{Pos: pos, Color: c})
	return uint32(len(m.Vertices) - 1)
}

// AddTriangle appends the triangle formed by three vertex indices.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// Append adds the triangles of m2 to m, rebasing their indices.
func (m *Mesh) Append(m2 Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, m2.Vertices...)
	for _, idx := range m2.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// Empty reports whether the mesh has no triangles.
func (m Mesh) Empty() bool {
	return len(m.Indices) == 0
}
