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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:         "quadratic",
		Path:         quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:        4,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "quadratic_degenerate",
		Path:         quadraticCurve(10, 32, 10, 32, 54, 32), // control point on start endpoint
		Width:        4,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "cubic",
		Path:         cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:        4,
		Join:         graphics.LineJoinRound,
		Cap:          graphics.LineCapRound,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "s_curve",
		Path:         sCurve(8, 32, 56, 32),
		Width:        3,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapSquare,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "circle",
		Path:         circle(32, 32, 22),
		Width:        5,
		Join:         graphics.LineJoinMiter,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "ellipse",
		Path:         ellipse(32, 32, 26, 12),
		Width:        3,
		Join:         graphics.LineJoinBevel,
		Cap:          graphics.LineCapButt,
		MiterLimit:   10,
		Direction:    true,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
}

// quadraticCurve builds an open path with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// cubicCurve builds an open path with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurve builds an open S-shaped path from two quadratic Bezier curves.
func sCurve(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2))
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).                                     // start at right
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)). // top-right quadrant
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)). // top-left quadrant
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)). // bottom-left quadrant
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)). // bottom-right quadrant
		Close()
}
