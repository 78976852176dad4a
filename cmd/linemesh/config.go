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
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/linemesh"
)

type config struct {
	Line   lineConfig   `toml:"line"`
	Canvas canvasConfig `toml:"canvas"`
}

type lineConfig struct {
	Points     [][]float64 `toml:"points"`
	Width      float64     `toml:"width"`
	Padding    float64     `toml:"padding"`
	Join       string      `toml:"join"`
	Cap        string      `toml:"cap"`
	MiterLimit float64     `toml:"miter_limit"`
	Direction  bool        `toml:"direction"`
	Flatness   float64     `toml:"flatness"`
}

type canvasConfig struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Feather float64 `toml:"feather"`
}

// defaultConfig reproduces the two-segment line of the OpenGL demo.
func defaultConfig() *config {
	return &config{
		Line: lineConfig{
			Points:     [][]float64{{50, 20}, {120, 190}, {200, 20}},
			Width:      4,
			Padding:    linemesh.WidthPadding,
			Join:       "miter",
			Cap:        "butt",
			MiterLimit: 10,
			Flatness:   0.25,
		},
		Canvas: canvasConfig{
			Width:   640,
			Height:  480,
			Feather: linemesh.DefaultFeather,
		},
	}
}

// readConfig reads a TOML config file.  Settings missing from the file
// keep their default values.  Unknown keys are an error.
func readConfig(fname string) (*config, error) {
	conf := defaultConfig()
	md, err := toml.DecodeFile(fname, conf)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("%s: unknown config keys: %s", fname, strings.Join(keys, ", "))
	}
	return conf, nil
}

func writeConfig(fname string, conf *config) error {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(fname, buffer.Bytes(), 0644)
}

// geometryWidth returns the line width of the generated mesh.
func (c *config) geometryWidth() float64 {
	return c.Line.Width + c.Line.Padding
}

// builder returns a mesh builder and the polyline described by the config.
func (c *config) builder() (*linemesh.Builder, []vec.Vec2, error) {
	b := linemesh.NewBuilder(c.geometryWidth())
	b.MiterLimit = c.Line.MiterLimit
	b.Direction = c.Line.Direction
	b.Flatness = c.Line.Flatness

	var err error
	b.Join, err = parseJoin(c.Line.Join)
	if err != nil {
		return nil, nil, err
	}
	b.Cap, err = parseCap(c.Line.Cap)
	if err != nil {
		return nil, nil, err
	}

	points := make([]vec.Vec2, len(c.Line.Points))
	for i, xy := range c.Line.Points {
		if len(xy) != 2 {
			return nil, nil, fmt.Errorf("point %d: expected [x, y], got %d values", i, len(xy))
		}
		points[i] = vec.Vec2{X: xy[0], Y: xy[1]}
	}
	return b, points, nil
}

func parseJoin(s string) (graphics.LineJoinStyle, error) {
	switch strings.ToLower(s) {
	case "miter", "":
		return graphics.LineJoinMiter, nil
	case "round":
		return graphics.LineJoinRound, nil
	case "bevel":
		return graphics.LineJoinBevel, nil
	}
	return graphics.LineJoinMiter, fmt.Errorf("unknown line join %q", s)
}

func parseCap(s string) (graphics.LineCapStyle, error) {
	switch strings.ToLower(s) {
	case "butt", "":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	}
	return graphics.LineCapButt, fmt.Errorf("unknown line cap %q", s)
}
