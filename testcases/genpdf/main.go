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

// Command genpdf writes preview images for all test cases.
// For every case it creates a PDF showing the triangles of the mesh and
// a PNG rendered with the feather shader.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/linemesh"
	"seehuhn.de/go/linemesh/meshpdf"
	"seehuhn.de/go/linemesh/testcases"
)

const previewDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(previewDir, name+".pdf")
			pngPath := filepath.Join(previewDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	m, err := linemesh.BuildExample(tc)
	if err != nil {
		return err
	}
	// 1 point = 1 pixel at 72 DPI
	return meshpdf.Write(pdfPath, m,
		float64(tc.CanvasWidth), float64(tc.CanvasHeight), tc.CTM, meshpdf.DefaultStyle)
}

func renderPNG(tc testcases.TestCase, pngPath string) (err error) {
	img, err := linemesh.RenderExample(tc)
	if err != nil {
		return err
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
