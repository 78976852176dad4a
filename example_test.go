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

package linemesh_test

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/linemesh"
	"seehuhn.de/go/linemesh/testcases"
)

func TestExamples(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				m, err := linemesh.BuildExample(tc)
				if err != nil {
					t.Fatal(err)
				}
				if m.Len() == 0 || m.Len()%3 != 0 {
					t.Fatalf("invalid vertex count %d", m.Len())
				}
				if m.Direction != tc.Direction {
					t.Errorf("direction attribute: got %t, want %t", m.Direction, tc.Direction)
				}

				for i, f := range m.Floats() {
					if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
						t.Fatalf("float %d is not finite", i)
					}
				}
				for i, v := range m.Vertices {
					if l := v.Normal.Length(); l != 0 && math.Abs(l-1) > 1e-9 {
						t.Errorf("vertex %d: normal length %g", i, l)
					}
					if l := v.Dir.Length(); l != 0 && math.Abs(l-1) > 1e-9 {
						t.Errorf("vertex %d: direction length %g", i, l)
					}
				}
				for i, j := range m.Joints {
					if j.MiterRatio < 1-1e-9 {
						t.Errorf("joint %d: miter ratio %g < 1", i, j.MiterRatio)
					}
					if j.Style == graphics.LineJoinMiter && j.MiterRatio > tc.MiterLimit+1e-9 {
						t.Errorf("joint %d: miter ratio %g exceeds the limit", i, j.MiterRatio)
					}
				}

				img, err := linemesh.RenderExample(tc)
				if err != nil {
					t.Fatal(err)
				}
				var visible int
				for _, a := range img.Pix {
					if a > 0 {
						visible++
					}
				}
				if visible == 0 {
					t.Error("rendered image is empty")
				}
			})
		}
	}
}

func ExampleBuildMesh() {
	points := []vec.Vec2{{X: 50, Y: 20}, {X: 120, Y: 190}, {X: 200, Y: 20}}
	m, err := linemesh.BuildMesh(points, linemesh.PaddedWidth(4))
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Len(), "vertices,", m.Stride(), "floats each")
	fmt.Println("miter join:", m.Joints[0].Style == graphics.LineJoinMiter)
	// Output:
	// 12 vertices, 4 floats each
	// miter join: true
}

func ExampleBuilder_Build() {
	b := linemesh.NewBuilder(2)
	b.MiterLimit = 2

	// The sharp corner exceeds the miter limit, so the joint gets a
	// bevel triangle in addition to the two quads.
	m, err := b.Build([]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 3}})
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Joints[0].Style == graphics.LineJoinBevel, m.Len())
	// Output:
	// true 15
}
