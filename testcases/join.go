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

var joinCases = []TestCase{
	{
		// two-segment demo line, 4px wide plus 1px padding
		Name:         "demo",
		Points:       polyline(50, 20, 120, 190, 200, 20),
		Width:        5,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  240,
		CanvasHeight: 210,
	},
	{
		Name:         "right_angle",
		Points:       polyline(10, 10, 40, 10, 40, 54),
		Width:        8,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "corner_miter",
		Points:       polyline(10, 50, 32, 14, 54, 50),
		Width:        6,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "corner_round",
		Points:       polyline(10, 50, 32, 14, 54, 50),
		Width:        6,
		Join:         graphics.LineJoinRound,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "corner_bevel",
		Points:       polyline(10, 50, 32, 14, 54, 50),
		Width:        6,
		Join:         graphics.LineJoinBevel,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "obtuse",
		Points:       polyline(8, 40, 32, 28, 56, 40),
		Width:        6,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "nearly_straight",
		Points:       polyline(8, 32, 32, 32, 56, 32.0001),
		Width:        6,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		// miter ratio ≈ 27 exceeds the limit, falls back to bevel
		Name:         "acute_clamped",
		Points:       polyline(10, 10, 54, 32, 10, 14),
		Width:        4,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "acute_round",
		Points:       polyline(10, 10, 54, 32, 10, 14),
		Width:        4,
		Join:         graphics.LineJoinRound,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "reversed",
		Points:       polyline(10, 32, 54, 32, 20, 32),
		Width:        6,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "reversed_round",
		Points:       polyline(10, 32, 54, 32, 20, 32),
		Width:        6,
		Join:         graphics.LineJoinRound,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "direction",
		Points:       polyline(10, 50, 32, 14, 54, 50),
		Width:        6,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		Direction:    true,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
}
