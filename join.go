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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a non-degenerate line segment with precomputed geometry.
type segment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// newSegment returns the segment from a to b.
// The second return value is false if the points (nearly) coincide or
// if their distance overflows.
func newSegment(a, b vec.Vec2) (segment, bool) {
	d := b.Sub(a)
	length := d.Length()
	if !(length >= zeroLengthThreshold) || math.IsInf(length, 0) {
		return segment{}, false
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	return segment{A: a, B: b, T: t, N: n}, true
}

// join holds the corner geometry between two segments.
type join struct {
	style graphics.LineJoinStyle
	ratio float64  // miter length / half-width
	miter vec.Vec2 // offset of the +N miter point; valid if ratio is finite
	side  float64  // +1 if +N is the outer side of the corner, -1 otherwise

	// straight is set when the segments continue in (nearly) the same
	// direction, so that no join geometry is needed.
	straight bool
}

// shared reports whether the adjacent quads meet at the miter points.
func (j *join) shared() bool {
	return j.straight || j.style == graphics.LineJoinMiter
}

// computeJoin determines the corner geometry where prev ends and next
// starts.  d is half the line width.
func (b *Builder) computeJoin(prev, next *segment, d float64) join {
	sinTheta := prev.T.X*next.T.Y - prev.T.Y*next.T.X
	cosTheta := prev.T.Dot(next.T)

	j := join{
		style: b.Join,
		ratio: math.Inf(1),
		side:  1,
	}
	if sinTheta > 0 {
		// left turn: +N is the inner side
		j.side = -1
	}

	// The bisector of the two normals has length 2cos(θ/2).
	bisector := prev.N.Add(next.N)
	if bl := bisector.Length(); bl > zeroLengthThreshold {
		j.ratio = 2 / bl
		j.miter = bisector.Mul(d * j.ratio / bl)
	}

	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		j.straight = true
		return j
	}

	if j.style != graphics.LineJoinBevel && j.style != graphics.LineJoinRound {
		if !math.IsInf(j.ratio, 1) && j.ratio <= b.MiterLimit+miterEpsilon {
			j.style = graphics.LineJoinMiter
		} else {
			Logger().Debug("miter limit exceeded, using bevel join",
				"x", next.A.X, "y", next.A.Y,
				"ratio", j.ratio, "limit", b.MiterLimit)
			j.style = graphics.LineJoinBevel
		}
	}
	return j
}

// addJoin appends the triangles filling the outer side of a corner at P.
// Miter joins and straight continuations need no extra geometry.
func (b *Builder) addJoin(m *Mesh, P vec.Vec2, prev, next *segment, j *join, d float64) {
	if j.shared() {
		return
	}

	n1 := prev.N.Mul(j.side)
	n2 := next.N.Mul(j.side)

	switch j.style {
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, prev.T.Dot(next.T))))
		// The arc turns the same way as the tangent, through the outside
		// of the corner.
		b.addFan(m, P, d, n1, -j.side*angle, vec.Vec2{})

	default: // bevel
		m.Vertices = append(m.Vertices,
			Vertex{Pos: P},
			Vertex{Pos: P.Add(n1.Mul(d)), Normal: n1},
			Vertex{Pos: P.Add(n2.Mul(d)), Normal: n2},
		)
	}
}

// addRoundCap appends a semicircular cap at P.
// T is the outward tangent direction (away from the line).
// d is half the line width.
func (b *Builder) addRoundCap(m *Mesh, P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	// Sweeping clockwise from N passes through T.
	b.addFan(m, P, d, N, -math.Pi, T)
}

// addFan appends a triangle fan approximating a circular sector.
// center is the centre of the circle, radius its radius, startDir the unit
// vector from the centre to the start of the arc, and sweep the signed
// angle of the sector in radians (positive = CCW).  All fan vertices get
// the direction attribute dir.
func (b *Builder) addFan(m *Mesh, center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, dir vec.Vec2) {
	n := b.arcSteps(radius, sweep)
	dt := sweep / float64(n)

	prevDir := startDir
	for i := 1; i <= n; i++ {
		angle := float64(i) * dt
		cos, sin := math.Cos(angle), math.Sin(angle)
		curDir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		m.Vertices = append(m.Vertices,
			Vertex{Pos: center, Dir: dir},
			Vertex{Pos: center.Add(prevDir.Mul(radius)), Normal: prevDir, Dir: dir},
			Vertex{Pos: center.Add(curDir.Mul(radius)), Normal: curDir, Dir: dir},
		)
		prevDir = curDir
	}
}

// arcSteps returns the number of chords needed to approximate an arc
// within the builder's flatness tolerance.
//
// For a chord subtending angle θ on a circle of radius r, the maximum
// deviation (sagitta) is r*(1 - cos(θ/2)).  For this to equal tolerance ε,
// θ = 2*acos(1 - ε/r).
func (b *Builder) arcSteps(radius, sweep float64) int {
	if radius <= b.Flatness {
		return 1
	}
	angleStep := 2 * math.Acos(1-b.Flatness/radius)
	if angleStep <= 0 || math.IsNaN(angleStep) {
		angleStep = math.Pi / 4
	}
	return max(int(math.Ceil(min(math.Abs(sweep)/angleStep, maxSteps))), 1)
}
