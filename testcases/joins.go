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

import "seehuhn.de/go/geom/vec"

var joinCases = []TestCase{
	{
		Name:         "right_angle",
		Points:       corner(12, 52, 12, 12, 52, 12),
		Width:        10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "shallow_bend",
		Points:       corner(6, 40, 32, 32, 58, 40),
		Width:        8,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "sharp_v",
		Points:       corner(10, 50, 32, 14, 54, 50),
		Width:        6,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "sharp_v_wide",
		Points:       corner(10, 54, 32, 20, 54, 54),
		Width:        14,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "zigzag",
		Points:       zigzag(6, 58, 20, 44, 6),
		Width:        4,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "turn_left_right",
		Points:       pts(8, 48, 24, 48, 32, 24, 40, 48, 56, 48),
		Width:        6,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "square_open",
		Points:       pts(14, 14, 50, 14, 50, 50, 14, 50, 14, 20),
		Width:        6,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
}

func corner(x1, y1, x2, y2, x3, y3 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// zigzag returns a polyline alternating between the heights y1 and y2,
// with n teeth between x1 and x2.
func zigzag(x1, x2, y1, y2 float64, n int) []vec.Vec2 {
	res := make([]vec.Vec2, 0, 2*n+1)
	dx := (x2 - x1) / float64(2*n)
	for i := range 2*n + 1 {
		y := y1
		if i%2 == 1 {
			y = y2
		}
		res = append(res, pt(x1+float64(i)*dx, y))
	}
	return res
}
