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

// Package testcases contains named stroke scenarios shared by the tests,
// the benchmarks and the reference generators.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase is a stroke through a fixed list of points, drawn onto a canvas
// whose pixel grid coincides with the coordinate system of the points
// (origin at the top-left corner, y pointing down).
type TestCase struct {
	Name   string     // lowercase a-z, 0-9 and _ only
	Points []vec.Vec2 // the centre line, in drawing order
	Width  float64    // full stroke width (>0)

	CanvasWidth  int // canvas width in pixels
	CanvasHeight int // canvas height in pixels
}

// Path returns the centre line as a path.  A single point becomes a
// zero-length segment, which round caps draw as a disc.
func (tc TestCase) Path() *path.Data {
	p := &path.Data{}
	if len(tc.Points) == 0 {
		return p
	}
	p = p.MoveTo(tc.Points[0])
	if len(tc.Points) == 1 {
		return p.LineTo(tc.Points[0])
	}
	for _, q := range tc.Points[1:] {
		p = p.LineTo(q)
	}
	return p
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, pt(xy[i], xy[i+1]))
	}
	return res
}
