// seehuhn.de/go/sketch - incremental stroke geometry
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

// Command export writes all test cases, together with the size of the
// stroke geometry built for each, to testdata/testcases.json.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/testcases"
)

func main() {
	var out struct {
		MiterLimit float64        `json:"miter_limit"`
		TestCases  []jsonTestCase `json:"testcases"`
	}

	cfg := sketch.DefaultConfig()
	out.MiterLimit = cfg.MiterLimit
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc, cfg)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
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
	Name      string      `json:"name"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	LineWidth float64     `json:"line_width"`
	Points    [][]float64 `json:"points"`
	Mesh      jsonMesh    `json:"mesh"`
}

type jsonMesh struct {
	Vertices int `json:"vertices"`
	Indices  int `json:"indices"`
	Corners  int `json:"corners"`
}

func toJSON(category string, tc testcases.TestCase, cfg sketch.Config) (jsonTestCase, error) {
	m, err := sketch.BuildMesh(tc.Points, tc.Width, cfg)
	if err != nil {
		return jsonTestCase{}, err
	}
	nv, ni, nc := m.Counts()

	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Width:     tc.CanvasWidth,
		Height:    tc.CanvasHeight,
		LineWidth: tc.Width,
		Points:    make([][]float64, len(tc.Points)),
		Mesh:      jsonMesh{Vertices: nv, Indices: ni, Corners: nc},
	}
	for i, p := range tc.Points {
		jtc.Points[i] = []float64{p.X, p.Y}
	}
	return jtc, nil
}
