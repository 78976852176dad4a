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

// Command linemesh generates antialiased line meshes.
//
// The line is described by a TOML file, see -init for an example.  The
// mesh is written as JSON, as a raw little-endian float32 vertex buffer,
// or rendered to a PNG or PDF preview.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/linemesh"
	"seehuhn.de/go/linemesh/meshpdf"
)

func main() {
	opt := parseCLIOpts()

	if opt.doLog {
		linemesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(opt); err != nil {
		fmt.Fprintf(os.Stderr, "linemesh: %v\n", err)
		os.Exit(1)
	}
}

// formats lists the supported output formats.
var formats = []string{"json", "bin", "png", "pdf"}

func run(opt cliOpts) error {
	if opt.initConfig {
		if opt.configFile == "" {
			return errors.New("-init requires a config file name (-c)")
		}
		return writeConfig(opt.configFile, defaultConfig())
	}

	if !slices.Contains(formats, opt.format) {
		return fmt.Errorf("unknown output format %q (want one of %s)",
			opt.format, strings.Join(formats, ", "))
	}

	conf := defaultConfig()
	if opt.configFile != "" {
		var err error
		conf, err = readConfig(opt.configFile)
		if err != nil {
			return err
		}
	}

	b, points, err := conf.builder()
	if err != nil {
		return err
	}
	m, err := b.Build(points)
	if err != nil {
		return err
	}
	linemesh.Logger().Info("built mesh",
		"points", len(points),
		"vertices", m.Len(),
		"stride", m.Stride())

	if opt.format == "pdf" {
		if opt.output == "" || opt.output == "-" {
			return errors.New("PDF output requires a file name (-o)")
		}
		return meshpdf.Write(opt.output, m,
			float64(conf.Canvas.Width), float64(conf.Canvas.Height),
			matrix.Identity, meshpdf.DefaultStyle)
	}

	w, closeOutput, err := openOutput(opt.output)
	if err != nil {
		return err
	}
	err = writeMesh(w, opt.format, m, conf)
	if cerr := closeOutput(); err == nil {
		err = cerr
	}
	return err
}

// writeMesh writes m in one of the stream formats.
func writeMesh(w io.Writer, format string, m *linemesh.Mesh, conf *config) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toJSON(m))

	case "bin":
		_, err := m.WriteTo(w)
		return err

	case "png":
		img := image.NewAlpha(image.Rect(0, 0, conf.Canvas.Width, conf.Canvas.Height))
		r := linemesh.NewRenderer(conf.geometryWidth())
		r.Feather = conf.Canvas.Feather
		r.Render(img, m)
		return png.Encode(w, img)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func openOutput(name string) (io.Writer, func() error, error) {
	if name == "" || name == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

type jsonMesh struct {
	Stride   int         `json:"stride"`
	Count    int         `json:"count"`
	Vertices []float32   `json:"vertices"`
	Joints   []jsonJoint `json:"joints,omitempty"`
}

type jsonJoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Style      string  `json:"style"`
	MiterRatio float64 `json:"miter_ratio,omitempty"` // omitted if infinite
}

func toJSON(m *linemesh.Mesh) *jsonMesh {
	out := &jsonMesh{
		Stride:   m.Stride(),
		Count:    m.Len(),
		Vertices: m.Floats(),
	}
	for _, j := range m.Joints {
		jj := jsonJoint{X: j.Point.X, Y: j.Point.Y, Style: j.Style.String()}
		if !math.IsInf(j.MiterRatio, 0) {
			jj.MiterRatio = j.MiterRatio
		}
		out.Joints = append(out.Joints, jj)
	}
	return out
}
