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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var polylineCases = []TestCase{
	{
		Name:         "zigzag",
		Points:       polyline(6, 40, 18, 20, 30, 44, 42, 20, 54, 44),
		Width:        4,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "zigzag_round",
		Points:       polyline(6, 40, 18, 20, 30, 44, 42, 20, 54, 44),
		Width:        4,
		Join:         graphics.LineJoinRound,
		Cap:          graphics.LineCapRound,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "spiral",
		Points:       polyline(32, 32, 40, 32, 40, 24, 24, 24, 24, 42, 48, 42, 48, 14, 14, 14, 14, 52),
		Width:        3,
		Join:         graphics.LineJoinBevel,
		Cap:          graphics.LineCapSquare,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "closed_square",
		Path:         rectangle(14, 14, 36, 36),
		Width:        6,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "closed_triangle_round",
		Path:         triangle(32, 8, 56, 52, 8, 52),
		Width:        5,
		Join:         graphics.LineJoinRound,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name: "two_subpaths",
		Path: (&path.Data{}).
			MoveTo(pt(8, 16)).LineTo(pt(56, 16)).
			MoveTo(pt(8, 48)).LineTo(pt(32, 32)).LineTo(pt(56, 48)),
		Width:        4,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapRound,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
}

// rectangle builds a closed axis-parallel rectangle.
func rectangle(x, y, w, h float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x, y)).
		LineTo(pt(x+w, y)).
		LineTo(pt(x+w, y+h)).
		LineTo(pt(x, y+h)).
		Close()
}

// triangle builds a closed triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}
