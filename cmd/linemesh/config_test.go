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
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func TestReadConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "line.toml")
	body := `
[line]
points = [[0.0, 0.0], [10.0, 0.0], [10.0, 10.0]]
width = 6.0
join = "Round"
cap = "square"
direction = true

[canvas]
width = 32
`
	if err := os.WriteFile(fname, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	conf, err := readConfig(fname)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Canvas.Width != 32 || conf.Canvas.Height != 480 {
		t.Errorf("unexpected canvas %+v", conf.Canvas)
	}
	if conf.geometryWidth() != 7 {
		t.Errorf("got geometry width %g, want 7", conf.geometryWidth())
	}

	b, points, err := conf.builder()
	if err != nil {
		t.Fatal(err)
	}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	if !reflect.DeepEqual(points, want) {
		t.Errorf("got points %v, want %v", points, want)
	}
	if b.Join != graphics.LineJoinRound || b.Cap != graphics.LineCapSquare {
		t.Errorf("got join %s and cap %s", b.Join, b.Cap)
	}
	if !b.Direction || b.MiterLimit != 10 || b.Flatness != 0.25 {
		t.Errorf("unexpected builder settings %+v", b)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "default.toml")
	if err := writeConfig(fname, defaultConfig()); err != nil {
		t.Fatal(err)
	}
	conf, err := readConfig(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(conf, defaultConfig()) {
		t.Errorf("got %+v, want %+v", conf, defaultConfig())
	}
}

func TestDefaultConfig(t *testing.T) {
	b, points, err := defaultConfig().builder()
	if err != nil {
		t.Fatal(err)
	}
	m, err := b.Build(points)
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 12 || len(m.Floats()) != 48 {
		t.Errorf("got %d vertices and %d floats, want 12 and 48", m.Len(), len(m.Floats()))
	}
}

func TestConfigErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[line\nwidth = 1"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readConfig(bad); err == nil {
		t.Error("syntax error not reported")
	}
	if _, err := readConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("missing file not reported")
	}

	typo := filepath.Join(dir, "typo.toml")
	if err := os.WriteFile(typo, []byte("[line]\nwidht = 3.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readConfig(typo); err == nil || !strings.Contains(err.Error(), "line.widht") {
		t.Errorf("unknown key not reported, got %v", err)
	}

	cases := []func(c *config){
		func(c *config) { c.Line.Join = "sharp" },
		func(c *config) { c.Line.Cap = "arrow" },
		func(c *config) { c.Line.Points[1] = []float64{1, 2, 3} },
	}
	for i, modify := range cases {
		c := defaultConfig()
		modify(c)
		if _, _, err := c.builder(); err == nil {
			t.Errorf("case %d: error not reported", i)
		}
	}
}

func TestParseStyles(t *testing.T) {
	joins := map[string]graphics.LineJoinStyle{
		"":      graphics.LineJoinMiter,
		"MITER": graphics.LineJoinMiter,
		"round": graphics.LineJoinRound,
		"bevel": graphics.LineJoinBevel,
	}
	for s, want := range joins {
		if got, err := parseJoin(s); err != nil || got != want {
			t.Errorf("parseJoin(%q) = %s, %v", s, got, err)
		}
	}

	caps := map[string]graphics.LineCapStyle{
		"":       graphics.LineCapButt,
		"butt":   graphics.LineCapButt,
		"Round":  graphics.LineCapRound,
		"square": graphics.LineCapSquare,
	}
	for s, want := range caps {
		if got, err := parseCap(s); err != nil || got != want {
			t.Errorf("parseCap(%q) = %s, %v", s, got, err)
		}
	}
}
