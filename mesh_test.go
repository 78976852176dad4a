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
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func testMesh() *Mesh {
	return &Mesh{
		Vertices: []Vertex{
			{Pos: vec.Vec2{X: 1, Y: 2}, Normal: vec.Vec2{X: 0, Y: 1}, Dir: vec.Vec2{X: -1, Y: 0}},
			{Pos: vec.Vec2{X: 3, Y: -4}, Normal: vec.Vec2{X: 0, Y: -1}},
			{Pos: vec.Vec2{X: -5, Y: 6}, Normal: vec.Vec2{X: 1, Y: 0}, Dir: vec.Vec2{X: 1, Y: 0}},
		},
	}
}

func TestFloats(t *testing.T) {
	m := testMesh()

	got := m.Floats()
	want := []float32{1, 2, 0, 1, 3, -4, 0, -1, -5, 6, 1, 0}
	if len(got) != len(want) {
		t.Fatalf("got %d floats, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("float %d: got %g, want %g", i, got[i], want[i])
		}
	}

	m.Direction = true
	got = m.Floats()
	if len(got) != 6*m.Len() {
		t.Fatalf("got %d floats, want %d", len(got), 6*m.Len())
	}
	if got[4] != -1 || got[5] != 0 || got[10] != 0 || got[11] != 0 {
		t.Errorf("unexpected direction values %v", got)
	}
}

func TestAppendFloats(t *testing.T) {
	m := testMesh()
	prefix := []float32{42}
	got := m.AppendFloats(prefix)
	if len(got) != 1+4*m.Len() || got[0] != 42 || got[1] != 1 {
		t.Errorf("unexpected result %v", got)
	}
}

func TestWriteTo(t *testing.T) {
	m := testMesh()
	m.Direction = true

	buf := &bytes.Buffer{}
	n, err := m.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(4*6*m.Len()) || buf.Len() != int(n) {
		t.Fatalf("wrote %d bytes, buffer has %d", n, buf.Len())
	}

	data := buf.Bytes()
	for i, want := range m.Floats() {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
		if got != want {
			t.Errorf("float %d: got %g, want %g", i, got, want)
		}
	}
}

func TestTriangles(t *testing.T) {
	m, err := BuildMesh([]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, 2)
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for tri := range m.Triangles() {
		if tri[0] != m.Vertices[3*count] {
			t.Errorf("triangle %d does not start at vertex %d", count, 3*count)
		}
		count++
	}
	if count != m.Len()/3 {
		t.Errorf("got %d triangles, want %d", count, m.Len()/3)
	}

	// early exit
	count = 0
	for range m.Triangles() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("got %d iterations, want 2", count)
	}
}

func TestBounds(t *testing.T) {
	if b := (&Mesh{}).Bounds(); b != (rect.Rect{}) {
		t.Errorf("empty mesh: got %v", b)
	}

	want := rect.Rect{LLx: -5, LLy: -4, URx: 3, URy: 6}
	if b := testMesh().Bounds(); b != want {
		t.Errorf("got %v, want %v", b, want)
	}
}
