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

// Package testcases holds named line geometries used by the tests and
// the preview tools.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single mesh test.
// Exactly one of Points and Path is set.
type TestCase struct {
	Name string // lowercase a-z, 0-9 and _ only

	Points []vec.Vec2 // open polyline
	Path   *path.Data // general path, may contain curves and closed subpaths

	Width      float64                // geometry line width (>0)
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	MiterLimit float64                // miter limit (>=1)
	Direction  bool                   // include the direction attribute

	CanvasWidth  int           // preview width in pixels
	CanvasHeight int           // preview height in pixels
	CTM          matrix.Matrix // geometry to canvas (zero-value means no transform)
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polyline is a helper to create a point list from coordinate pairs.
func polyline(xy ...float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		pts = append(pts, pt(xy[i], xy[i+1]))
	}
	return pts
}
