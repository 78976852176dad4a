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
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// BuildPath returns the mesh for all subpaths of p.
//
// Curves are flattened to within the builder's Flatness.  Closed subpaths
// get a join at their starting point instead of caps.  Unlike [Builder.Build],
// zero-length segments are skipped, and subpaths without any extent
// produce no geometry.  Non-finite path coordinates, or coordinates
// whose differences overflow, give an error wrapping [ErrNonFinite].
func (b *Builder) BuildPath(p path.Path) (*Mesh, error) {
	if err := b.check(); err != nil {
		return nil, err
	}

	if err := b.flattenPath(p); err != nil {
		return nil, err
	}

	m := &Mesh{Direction: b.Direction}
	for i := range b.segsOffsets {
		b.strokeSubpath(m, b.getSubpathSegments(i), b.subpathClosed[i])
	}
	if err := checkFinite(m); err != nil {
		return nil, err
	}
	return m, nil
}

// getSubpathSegments returns the segments for subpath i as a slice into segs.
func (b *Builder) getSubpathSegments(i int) []segment {
	start := b.segsOffsets[i]
	end := len(b.segs)
	if i+1 < len(b.segsOffsets) {
		end = b.segsOffsets[i+1]
	}
	return b.segs[start:end]
}

// flattenPath walks the path, flattens curves, and populates the
// flattening buffers:
//   - b.segs: all segments from all subpaths, contiguous
//   - b.segsOffsets: start index of each subpath in segs
//   - b.subpathClosed: whether each subpath is closed
func (b *Builder) flattenPath(p path.Path) error {
	b.segs = b.segs[:0]
	b.segsOffsets = b.segsOffsets[:0]
	b.subpathClosed = b.subpathClosed[:0]
	b.overflow = false

	var currentPt, subpathStartPt vec.Vec2
	subpathStartIdx := 0
	inSubpath := false

	endSubpath := func(closed bool) {
		if len(b.segs) > subpathStartIdx {
			b.segsOffsets = append(b.segsOffsets, subpathStartIdx)
			b.subpathClosed = append(b.subpathClosed, closed)
		} else {
			Logger().Debug("dropping subpath without extent",
				"x", subpathStartPt.X, "y", subpathStartPt.Y)
		}
		subpathStartIdx = len(b.segs)
	}

	cmdIdx := 0
	for cmd, pts := range p {
		for _, pt := range pts {
			if !isFinite(pt) {
				return fmt.Errorf("path command %d: %w", cmdIdx, ErrNonFinite)
			}
		}
		cmdIdx++

		switch cmd {
		case path.CmdMoveTo:
			if inSubpath {
				endSubpath(false)
			}
			currentPt = pts[0]
			subpathStartPt = currentPt
			subpathStartIdx = len(b.segs)
			inSubpath = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			b.addSegment(currentPt, pts[0])
			currentPt = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			b.flattenQuadratic(currentPt, pts[0], pts[1], b.addSegment)
			currentPt = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			b.flattenCubic(currentPt, pts[0], pts[1], pts[2], b.addSegment)
			currentPt = pts[2]

		case path.CmdClose:
			if !inSubpath {
				continue
			}
			b.addSegment(currentPt, subpathStartPt)
			endSubpath(len(b.segs) > subpathStartIdx+1)
			currentPt = subpathStartPt
			inSubpath = false
		}
	}

	if inSubpath {
		endSubpath(false)
	}
	if b.overflow {
		return fmt.Errorf("path: %w", ErrNonFinite)
	}
	return nil
}

// addSegment adds a line segment to the flattening buffer.
// Degenerate segments are skipped.
func (b *Builder) addSegment(a, c vec.Vec2) {
	if !isFinite(c.Sub(a)) {
		b.overflow = true
		return
	}
	if seg, ok := newSegment(a, c); ok {
		b.segs = append(b.segs, seg)
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
func (b *Builder) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errLen := e.Length(); errLen > b.Flatness {
		n = int(math.Ceil(min(math.Sqrt(errLen/b.Flatness), maxSteps)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint.
func (b *Builder) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nFloat := math.Sqrt(3 * m / (4 * b.Flatness)); nFloat > 1 {
			n = int(math.Ceil(min(nFloat, maxSteps)))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}
