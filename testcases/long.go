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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// longCases contain enough points to span several point blocks.
var longCases = []TestCase{
	{
		Name:         "spiral",
		Points:       spiral(256, 256, 8, 220, 6, 400),
		Width:        5,
		CanvasWidth:  512,
		CanvasHeight: 512,
	},
	{
		Name:         "sine_wave",
		Points:       sineWave(16, 496, 256, 120, 5, 300),
		Width:        8,
		CanvasWidth:  512,
		CanvasHeight: 512,
	},
	{
		Name:         "zigzag_dense",
		Points:       zigzag(16, 496, 200, 312, 100),
		Width:        3,
		CanvasWidth:  512,
		CanvasHeight: 512,
	},
}

// spiral returns n points on an Archimedean spiral around (cx, cy),
// going from radius r0 to r1 in the given number of turns.
func spiral(cx, cy, r0, r1, turns float64, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range res {
		t := float64(i) / float64(n-1)
		r := r0 + t*(r1-r0)
		phi := 2 * math.Pi * turns * t
		res[i] = pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	}
	return res
}

// sineWave samples n points of a sine curve between x1 and x2.
func sineWave(x1, x2, y, amplitude, periods float64, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range res {
		t := float64(i) / float64(n-1)
		res[i] = pt(x1+t*(x2-x1), y+amplitude*math.Sin(2*math.Pi*periods*t))
	}
	return res
}
