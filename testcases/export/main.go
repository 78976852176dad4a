// Command export writes all test case meshes to testdata/meshes.json.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/linemesh"
	"seehuhn.de/go/linemesh/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s_%s: %v\n", category, tc.Name, err)
				os.Exit(1)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/meshes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string      `json:"name"`
	Points     [][]float64 `json:"points,omitempty"`
	LineWidth  float64     `json:"line_width"`
	LineCap    string      `json:"line_cap"`
	LineJoin   string      `json:"line_join"`
	MiterLimit float64     `json:"miter_limit"`
	Stride     int         `json:"stride"`
	Vertices   []float32   `json:"vertices"`
	Joints     []jsonJoint `json:"joints,omitempty"`
}

type jsonJoint struct {
	At         []float64 `json:"at"`
	Style      string    `json:"style"`
	MiterRatio float64   `json:"miter_ratio,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	m, err := linemesh.BuildExample(tc)
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		LineWidth:  tc.Width,
		LineCap:    tc.Cap.String(),
		LineJoin:   tc.Join.String(),
		MiterLimit: tc.MiterLimit,
		Stride:     m.Stride(),
		Vertices:   m.Floats(),
	}
	for _, p := range tc.Points {
		jtc.Points = append(jtc.Points, []float64{p.X, p.Y})
	}
	for _, j := range m.Joints {
		jj := jsonJoint{
			At:    []float64{j.Point.X, j.Point.Y},
			Style: j.Style.String(),
		}
		// JSON has no representation for +Inf
		if j.MiterRatio <= tc.MiterLimit*1e6 {
			jj.MiterRatio = j.MiterRatio
		}
		jtc.Joints = append(jtc.Joints, jj)
	}
	return jtc, nil
}
