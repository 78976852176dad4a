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

import "seehuhn.de/go/pdf/graphics"

var capCases = []TestCase{
	{
		Name:         "square",
		Points:       polyline(16, 32, 48, 32),
		Width:        8,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapSquare,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "round",
		Points:       polyline(16, 32, 48, 32),
		Width:        8,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapRound,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "round_direction",
		Points:       polyline(16, 20, 48, 44),
		Width:        8,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapRound,
		MiterLimit:   10,
		Direction:    true,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "square_corner",
		Points:       polyline(12, 50, 32, 14, 52, 50),
		Width:        6,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapSquare,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
}
