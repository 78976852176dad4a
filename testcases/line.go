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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

var lineCases = []TestCase{
	{
		Name:         "horizontal",
		Points:       polyline(10, 32, 54, 32),
		Width:        8,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "vertical",
		Points:       polyline(32, 54, 32, 10),
		Width:        8,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "diagonal",
		Points:       polyline(10, 10, 54, 54),
		Width:        5,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "hairline",
		Points:       polyline(8, 40, 56, 20),
		Width:        1,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "direction",
		Points:       polyline(10, 20, 54, 44),
		Width:        6,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		Direction:    true,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "short",
		Points:       polyline(30, 32, 31, 32),
		Width:        6,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "large_offset",
		Points:       polyline(1e6+10, 1e6+32, 1e6+54, 1e6+32),
		Width:        8,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
		CTM:          matrix.Matrix{1, 0, 0, 1, -1e6, -1e6},
	},
}
