// seehuhn.de/go/linemesh - antialiased line meshes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package linemesh

import (
	"encoding/binary"
	"io"
	"iter"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Vertex is one entry of a mesh.
type Vertex struct {
	// Pos is the vertex position.
	Pos vec.Vec2

	// Normal is the unit normal of the segment the vertex belongs to,
	// pointing towards the side of the line the vertex lies on.  Vertices
	// on the centre line of a join or cap have a zero normal.
	Normal vec.Vec2

	// Dir is the unit tangent pointing out of the segment at a line end,
	// and zero elsewhere.  Dir is only part of the vertex layout if
	// [Mesh.Direction] is set.
	Dir vec.Vec2
}

// Joint describes the join geometry used at an interior polyline vertex.
type Joint struct {
	Point vec.Vec2

	// Style is the join style actually applied.  This is
	// [graphics.LineJoinBevel] when a miter join exceeded the miter limit.
	Style graphics.LineJoinStyle

	// MiterRatio is the miter length divided by half the line width,
	// i.e. 1/cos(θ/2).  It is +Inf when the path reverses direction.
	MiterRatio float64
}

// Mesh is a triangle list approximating a wide line.
// Every three consecutive vertices form one triangle.
type Mesh struct {
	Vertices []Vertex

	// Direction indicates whether the direction attribute is included
	// in the float layout.
	Direction bool

	// Joints lists the interior vertices in path order.
	Joints []Joint
}

// Len returns the number of vertices in the mesh.
func (m *Mesh) Len() int {
	return len(m.Vertices)
}

// Stride returns the number of float32 values per vertex:
// 4 for position and normal, 6 if the direction attribute is included.
func (m *Mesh) Stride() int {
	if m.Direction {
		return 6
	}
	return 4
}

// AppendFloats appends the vertex attributes to dst, in the order
// pos.x, pos.y, normal.x, normal.y[, dir.x, dir.y] for each vertex.
func (m *Mesh) AppendFloats(dst []float32) []float32 {
	dst = slices.Grow(dst, m.Stride()*len(m.Vertices))
	for _, v := range m.Vertices {
		dst = append(dst,
			float32(v.Pos.X), float32(v.Pos.Y),
			float32(v.Normal.X), float32(v.Normal.Y))
		if m.Direction {
			dst = append(dst, float32(v.Dir.X), float32(v.Dir.Y))
		}
	}
	return dst
}

// Floats returns the vertex buffer as a new slice.
// See [Mesh.AppendFloats] for the layout.
func (m *Mesh) Floats() []float32 {
	return m.AppendFloats(nil)
}

// WriteTo writes the vertex buffer to w as little-endian IEEE 754
// single precision values.  This implements [io.WriterTo].
func (m *Mesh) WriteTo(w io.Writer) (int64, error) {
	floats := m.Floats()
	buf := make([]byte, 0, 4*len(floats))
	for _, f := range floats {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// Triangles iterates over the triangles of the mesh.
func (m *Mesh) Triangles() iter.Seq[[3]Vertex] {
	return func(yield func([3]Vertex) bool) {
		for i := 0; i+2 < len(m.Vertices); i += 3 {
			if !yield([3]Vertex{m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]}) {
				return
			}
		}
	}
}

// Bounds returns the smallest rectangle containing all vertex positions.
// The zero rectangle is returned for an empty mesh.
func (m *Mesh) Bounds() rect.Rect {
	if len(m.Vertices) == 0 {
		return rect.Rect{}
	}
	p := m.Vertices[0].Pos
	bbox := rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
	for _, v := range m.Vertices[1:] {
		bbox.LLx = min(bbox.LLx, v.Pos.X)
		bbox.LLy = min(bbox.LLy, v.Pos.Y)
		bbox.URx = max(bbox.URx, v.Pos.X)
		bbox.URy = max(bbox.URy, v.Pos.Y)
	}
	return bbox
}
