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

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"image"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/linemesh/testcases"
)

// BuildExample builds the mesh for a test case.
func BuildExample(tc testcases.TestCase) (*Mesh, error) {
	b := NewBuilder(tc.Width)
	b.Join = tc.Join
	b.Cap = tc.Cap
	b.MiterLimit = tc.MiterLimit
	b.Direction = tc.Direction
	if tc.Path != nil {
		return b.BuildPath(tc.Path.Iter())
	}
	return b.Build(tc.Points)
}

// RenderExample renders a test case into an alpha mask of the test case's
// canvas size.  Each byte represents coverage from 0 (transparent) to 255
// (opaque).
func RenderExample(tc testcases.TestCase) (*image.Alpha, error) {
	m, err := BuildExample(tc)
	if err != nil {
		return nil, err
	}

	img := image.NewAlpha(image.Rect(0, 0, tc.CanvasWidth, tc.CanvasHeight))
	r := NewRenderer(tc.Width)
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}
	r.Render(img, m)
	return img, nil
}
