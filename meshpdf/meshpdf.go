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

// Package meshpdf writes line meshes to PDF files for visual inspection.
package meshpdf

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/linemesh"
)

// Style controls the appearance of the PDF output.
type Style struct {
	Fill      float64 // gray level of the triangle interiors, 0=black, 1=white
	Wireframe float64 // gray level of the triangle edges
	EdgeWidth float64 // line width of the triangle edges; 0 disables the wireframe
}

// DefaultStyle draws grey triangles with thin black edges.
var DefaultStyle = Style{
	Fill:      0.7,
	Wireframe: 0,
	EdgeWidth: 0.1,
}

// Write writes m to a single-page PDF file of the given size in PDF points.
// The mesh is mapped through ctm (the zero matrix means identity) and
// drawn with the y axis pointing down, as on screen.
func Write(fname string, m *linemesh.Mesh, width, height float64, ctm matrix.Matrix, style Style) error {
	paper := &pdf.Rectangle{
		URx: width,
		URy: height,
	}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; meshes use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	if ctm != (matrix.Matrix{}) && ctm != matrix.Identity {
		page.Transform(ctm)
	}

	page.SetFillColor(color.DeviceGray(style.Fill))
	for tri := range m.Triangles() {
		addTriangle(page, &tri)
		page.Fill()
	}

	if style.EdgeWidth > 0 && m.Len() > 0 {
		page.SetStrokeColor(color.DeviceGray(style.Wireframe))
		page.SetLineWidth(style.EdgeWidth)
		for tri := range m.Triangles() {
			addTriangle(page, &tri)
		}
		page.Stroke()
	}

	linemesh.Logger().Debug("wrote PDF", "file", fname,
		"triangles", m.Len()/3)

	return page.Close()
}

// pathBuilder is the subset of the PDF page methods used for path
// construction.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func addTriangle(page pathBuilder, tri *[3]linemesh.Vertex) {
	page.MoveTo(pdf.Round(tri[0].Pos.X, 3), pdf.Round(tri[0].Pos.Y, 3))
	page.LineTo(pdf.Round(tri[1].Pos.X, 3), pdf.Round(tri[1].Pos.Y, 3))
	page.LineTo(pdf.Round(tri[2].Pos.X, 3), pdf.Round(tri[2].Pos.Y, 3))
	page.ClosePath()
}
