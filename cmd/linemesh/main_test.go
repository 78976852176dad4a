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

package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteMesh(t *testing.T) {
	conf := defaultConfig()
	b, points, err := conf.builder()
	if err != nil {
		t.Fatal(err)
	}
	m, err := b.Build(points)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		if err := writeMesh(buf, "json", m, conf); err != nil {
			t.Fatal(err)
		}
		var out jsonMesh
		if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
			t.Fatal(err)
		}
		if out.Stride != 4 || out.Count != 12 || len(out.Vertices) != 48 {
			t.Errorf("got stride %d, count %d, %d values", out.Stride, out.Count, len(out.Vertices))
		}
		if len(out.Joints) != 1 || out.Joints[0].X != 120 || out.Joints[0].Y != 190 {
			t.Errorf("unexpected joints %+v", out.Joints)
		}
	})

	t.Run("bin", func(t *testing.T) {
		buf := &bytes.Buffer{}
		if err := writeMesh(buf, "bin", m, conf); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 4*48 {
			t.Errorf("got %d bytes, want %d", buf.Len(), 4*48)
		}
	})

	t.Run("png", func(t *testing.T) {
		buf := &bytes.Buffer{}
		if err := writeMesh(buf, "png", m, conf); err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(buf)
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 480 {
			t.Errorf("got image size %v", b)
		}
	})

	if err := writeMesh(&bytes.Buffer{}, "svg", m, conf); err == nil {
		t.Error("unknown format not reported")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	confName := filepath.Join(dir, "line.toml")
	outName := filepath.Join(dir, "mesh.bin")

	if err := run(cliOpts{configFile: confName, initConfig: true}); err != nil {
		t.Fatal(err)
	}
	err := run(cliOpts{configFile: confName, format: "bin", output: outName})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outName)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 4*48 {
		t.Errorf("got %d bytes, want %d", len(data), 4*48)
	}

	if err := run(cliOpts{format: "pdf", output: "-"}); err == nil {
		t.Error("PDF output to stdout not rejected")
	}
	if err := run(cliOpts{initConfig: true}); err == nil {
		t.Error("-init without a file name not rejected")
	}
}

// TestRunUnknownFormat checks that an invalid format is reported before
// the output file is touched.
func TestRunUnknownFormat(t *testing.T) {
	outName := filepath.Join(t.TempDir(), "mesh.out")
	if err := os.WriteFile(outName, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := run(cliOpts{format: "jsn", output: outName}); err == nil {
		t.Fatal("unknown format not reported")
	}
	data, err := os.ReadFile(outName)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "keep" {
		t.Errorf("output file was modified: %q", data)
	}
}
