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
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Renderer draws meshes into alpha masks on the CPU, applying the same
// edge feather as [FragmentShader].  It is meant for previews and tests.
// A Renderer must not be used concurrently.
type Renderer struct {
	// CTM maps mesh coordinates to pixel coordinates of the destination
	// image.  Must be a non-singular matrix.
	CTM matrix.Matrix

	// LineWidth is the geometry width the mesh was built with,
	// corresponding to the u_lineWidth shader uniform.
	LineWidth float64

	// Feather is the width of the alpha falloff band.
	Feather float64

	ras     *vector.Rasterizer
	maskPix []uint8   // per-triangle coverage
	acc     []float32 // per-mesh accumulated alpha
}

// NewRenderer returns a Renderer for meshes of the given geometry width,
// using the identity CTM and [DefaultFeather].
func NewRenderer(lineWidth float64) *Renderer {
	return &Renderer{
		CTM:       matrix.Identity,
		LineWidth: lineWidth,
		Feather:   DefaultFeather,
		ras:       vector.NewRasterizer(0, 0),
	}
}

// Render composites the mesh onto dst using source-over.
//
// Alpha contributions of all triangles are summed before compositing, so
// that edges shared between the two triangles of a quad leave no seams.
func (r *Renderer) Render(dst *image.Alpha, m *Mesh) {
	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	if cap(r.acc) < w*h {
		r.acc = make([]float32, w*h)
	}
	r.acc = r.acc[:w*h]
	clear(r.acc)

	for tri := range m.Triangles() {
		r.addTriangle(&tri, bounds)
	}

	for y := range h {
		row := dst.Pix[y*dst.Stride:]
		for x := range w {
			a := min(r.acc[y*w+x], 1)
			if a <= 0 {
				continue
			}
			d := float32(row[x]) / 255
			row[x] = uint8((a+d*(1-a))*255 + 0.5)
		}
	}
}

// addTriangle accumulates the feathered coverage of one triangle.
func (r *Renderer) addTriangle(tri *[3]Vertex, bounds image.Rectangle) {
	p0 := r.transform(tri[0].Pos)
	p1 := r.transform(tri[1].Pos)
	p2 := r.transform(tri[2].Pos)

	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	area := e1.X*e2.Y - e2.X*e1.Y
	if math.Abs(area) < 1e-12 {
		return // degenerate
	}

	x0 := max(int(math.Floor(min(p0.X, p1.X, p2.X))), bounds.Min.X)
	x1 := min(int(math.Ceil(max(p0.X, p1.X, p2.X))), bounds.Max.X)
	y0 := max(int(math.Floor(min(p0.Y, p1.Y, p2.Y))), bounds.Min.Y)
	y1 := min(int(math.Ceil(max(p0.Y, p1.Y, p2.Y))), bounds.Max.Y)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	bw, bh := x1-x0, y1-y0

	ox, oy := float64(x0), float64(y0)
	r.ras.Reset(bw, bh)
	r.ras.DrawOp = draw.Src
	r.ras.MoveTo(float32(p0.X-ox), float32(p0.Y-oy))
	r.ras.LineTo(float32(p1.X-ox), float32(p1.Y-oy))
	r.ras.LineTo(float32(p2.X-ox), float32(p2.Y-oy))
	r.ras.ClosePath()

	if cap(r.maskPix) < bw*bh {
		r.maskPix = make([]uint8, bw*bh)
	}
	mask := &image.Alpha{
		Pix:    r.maskPix[:bw*bh],
		Stride: bw,
		Rect:   image.Rect(0, 0, bw, bh),
	}
	r.ras.Draw(mask, mask.Rect, image.Opaque, image.Point{})

	stride := bounds.Dx()
	for py := range bh {
		for px := range bw {
			cov := mask.Pix[py*bw+px]
			if cov == 0 {
				continue
			}

			// barycentric coordinates of the pixel centre
			v := vec.Vec2{X: float64(x0+px) + 0.5, Y: float64(y0+py) + 0.5}.Sub(p0)
			w1 := (v.X*e2.Y - e2.X*v.Y) / area
			w2 := (e1.X*v.Y - v.X*e1.Y) / area
			w0 := 1 - w1 - w2
			n := tri[0].Normal.Mul(w0).Add(tri[1].Normal.Mul(w1)).Add(tri[2].Normal.Mul(w2))

			a := float64(cov) / 255 * FeatherAlpha(n.Length(), r.LineWidth, r.Feather)
			r.acc[(y0+py-bounds.Min.Y)*stride+(x0+px-bounds.Min.X)] += float32(a)
		}
	}
}

// transform applies the CTM to a point.
func (r *Renderer) transform(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}
