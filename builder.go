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

// Package linemesh builds triangle meshes for antialiased wide lines.
//
// A polyline is turned into one quad (two triangles) per segment.  Every
// vertex carries the unit normal of its segment, so that a fragment
// shader can fade out the line edges based on the interpolated normal
// length.  Adjacent segments share a miter point; sharp corners fall back
// to bevel joins once the miter limit is exceeded.
//
// The float layout of a mesh is documented at [Mesh.AppendFloats].
package linemesh

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Width adjustments used by the feather shader.
const (
	// WidthPadding is added to the visual line width to obtain the
	// geometry width, leaving room for the feather falloff.
	WidthPadding = 1.0

	// FragmentWidthPadding is added to the line width inside the
	// fragment stage before computing the feather.
	FragmentWidthPadding = 0.5

	// DefaultFeather is the width of the alpha falloff band, in pixels.
	DefaultFeather = 1.0
)

// Default values for builder parameters.
const (
	// defaultMiterLimit matches PDF/PostScript.  Joins with an
	// interior angle below approximately 11.5 degrees become bevels.
	defaultMiterLimit = 10.0

	// defaultFlatness is the maximal distance between an arc or curve
	// and its polygonal approximation.
	defaultFlatness = 0.25
)

// Numerical tolerances.
const (
	// zeroLengthThreshold is the minimum length of a segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the bound on |sin θ| below which two
	// segments pointing the same way are treated as a straight line.
	collinearityThreshold = 1e-6

	// miterEpsilon absorbs rounding when comparing against the miter limit.
	miterEpsilon = 1e-10

	// maxSteps bounds the number of chords used for a single arc or curve.
	maxSteps = 1 << 14
)

// PaddedWidth returns the geometry width for a line which should appear
// visualWidth units wide after feathering.
func PaddedWidth(visualWidth float64) float64 {
	return visualWidth + WidthPadding
}

// Builder converts polylines into meshes.
// The caller creates one instance and reuses it for multiple lines;
// internal buffers grow as needed and are kept between calls.
// A Builder must not be used concurrently.
type Builder struct {
	// Width is the line width of the generated geometry.
	// Must be > 0.
	Width float64

	// Join is the join style used at interior vertices.
	Join graphics.LineJoinStyle

	// Cap is the cap style used at the ends of open polylines.
	Cap graphics.LineCapStyle

	// MiterLimit is the maximal ratio between the miter length and half
	// the line width.  Miter joins exceeding the limit become bevels.
	// Must be >= 1.0.
	MiterLimit float64

	// Direction enables the per-vertex direction attribute.
	Direction bool

	// Flatness is the tolerance for round joins, round caps and curve
	// flattening.  Must be > 0.
	Flatness float64

	segs          []segment
	segsOffsets   []int
	subpathClosed []bool
	overflow      bool // a path segment had an overflowing extent
}

// NewBuilder returns a Builder for the given line width, with miter joins,
// butt caps and the PDF default miter limit.
func NewBuilder(width float64) *Builder {
	return &Builder{
		Width:      width,
		Join:       graphics.LineJoinMiter,
		Cap:        graphics.LineCapButt,
		MiterLimit: defaultMiterLimit,
		Flatness:   defaultFlatness,
	}
}

// BuildMesh builds the mesh for an open polyline using the defaults of
// [NewBuilder].
func BuildMesh(points []vec.Vec2, width float64) (*Mesh, error) {
	return NewBuilder(width).Build(points)
}

// Build returns the mesh for the open polyline through the given points.
//
// For a polyline with n points, butt caps and only miter joins, the mesh
// has exactly 6(n-1) vertices, six per segment.  Bevel and round joins
// and round caps add triangles after the segment they belong to.
//
// Consecutive points must be distinct.  If the coordinates or the width
// are so large that the geometry overflows, an error wrapping
// [ErrNonFinite] is returned.
func (b *Builder) Build(points []vec.Vec2) (*Mesh, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	for i, p := range points {
		if !isFinite(p) {
			return nil, fmt.Errorf("point %d: %w", i, ErrNonFinite)
		}
	}

	b.segs = b.segs[:0]
	for i := 1; i < len(points); i++ {
		if !isFinite(points[i].Sub(points[i-1])) {
			return nil, fmt.Errorf("segment %d: %w", i-1, ErrNonFinite)
		}
		seg, ok := newSegment(points[i-1], points[i])
		if !ok {
			return nil, fmt.Errorf("segment %d: %w", i-1, ErrDegenerateSegment)
		}
		b.segs = append(b.segs, seg)
	}

	m := &Mesh{Direction: b.Direction}
	b.strokeSubpath(m, b.segs, false)
	if err := checkFinite(m); err != nil {
		return nil, err
	}
	return m, nil
}

// check validates the builder parameters.
func (b *Builder) check() error {
	if !(b.Width > 0) || math.IsInf(b.Width, 0) {
		return ErrInvalidWidth
	}
	if b.Join == graphics.LineJoinMiter && !(b.MiterLimit >= 1) {
		return ErrInvalidMiterLimit
	}
	if !(b.Flatness > 0) {
		return ErrInvalidFlatness
	}
	return nil
}

// strokeSubpath appends the triangles for one subpath to m.
// The segments must be non-degenerate.
func (b *Builder) strokeSubpath(m *Mesh, segs []segment, closed bool) {
	n := len(segs)
	if n == 0 {
		return
	}
	d := b.Width / 2 // half-width

	// joins[i] describes the corner at the start of segment i.
	joins := make([]join, n)
	for i := range n {
		if i == 0 && !closed {
			continue
		}
		prev := &segs[(i+n-1)%n]
		joins[i] = b.computeJoin(prev, &segs[i], d)
	}

	for i := range n {
		seg := &segs[i]
		isStart := i == 0 && !closed
		isEnd := i == n-1 && !closed

		var startPlus, startMinus, endPlus, endMinus vec.Vec2
		var startDir, endDir vec.Vec2

		if isStart {
			startPlus = seg.A.Add(seg.N.Mul(d))
			startMinus = seg.A.Sub(seg.N.Mul(d))
			if b.Cap == graphics.LineCapSquare {
				ext := seg.T.Mul(-d)
				startPlus = startPlus.Add(ext)
				startMinus = startMinus.Add(ext)
			}
			startDir = seg.T.Mul(-1)
		} else if j := &joins[i]; j.shared() {
			startPlus = seg.A.Add(j.miter)
			startMinus = seg.A.Sub(j.miter)
		} else {
			startPlus = seg.A.Add(seg.N.Mul(d))
			startMinus = seg.A.Sub(seg.N.Mul(d))
		}

		next := (i + 1) % n
		if isEnd {
			endPlus = seg.B.Add(seg.N.Mul(d))
			endMinus = seg.B.Sub(seg.N.Mul(d))
			if b.Cap == graphics.LineCapSquare {
				ext := seg.T.Mul(d)
				endPlus = endPlus.Add(ext)
				endMinus = endMinus.Add(ext)
			}
			endDir = seg.T
		} else if j := &joins[next]; j.shared() {
			endPlus = seg.B.Add(j.miter)
			endMinus = seg.B.Sub(j.miter)
		} else {
			endPlus = seg.B.Add(seg.N.Mul(d))
			endMinus = seg.B.Sub(seg.N.Mul(d))
		}

		negN := seg.N.Mul(-1)
		m.Vertices = append(m.Vertices,
			Vertex{Pos: startPlus, Normal: seg.N, Dir: startDir},
			Vertex{Pos: startMinus, Normal: negN, Dir: startDir},
			Vertex{Pos: endMinus, Normal: negN, Dir: endDir},
			Vertex{Pos: endMinus, Normal: negN, Dir: endDir},
			Vertex{Pos: endPlus, Normal: seg.N, Dir: endDir},
			Vertex{Pos: startPlus, Normal: seg.N, Dir: startDir},
		)

		if isStart && b.Cap == graphics.LineCapRound {
			b.addRoundCap(m, seg.A, seg.T.Mul(-1), d)
		}
		if !isEnd {
			j := &joins[next]
			b.addJoin(m, seg.B, seg, &segs[next], j, d)
			m.Joints = append(m.Joints, Joint{
				Point:      seg.B,
				Style:      j.style,
				MiterRatio: j.ratio,
			})
		}
		if isEnd && b.Cap == graphics.LineCapRound {
			b.addRoundCap(m, seg.B, seg.T, d)
		}
	}
}

// checkFinite reports an error if the width or the coordinates were so
// large that the mesh computation overflowed.
func checkFinite(m *Mesh) error {
	for i, v := range m.Vertices {
		if !isFinite(v.Pos) || !isFinite(v.Normal) || !isFinite(v.Dir) {
			return fmt.Errorf("vertex %d: %w", i, ErrNonFinite)
		}
	}
	return nil
}

func isFinite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
