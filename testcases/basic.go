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

var basicCases = []TestCase{
	{
		Name:         "dot",
		Points:       pts(32, 32),
		Width:        12,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "line_horizontal",
		Points:       horizontalLine(10, 32, 54),
		Width:        8,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "line_vertical",
		Points:       pts(32, 10, 32, 54),
		Width:        8,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "line_diagonal",
		Points:       pts(12, 52, 52, 12),
		Width:        6,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "line_thin",
		Points:       horizontalLine(5, 10, 59),
		Width:        1,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "polyline_collinear",
		Points:       pts(8, 32, 20, 32, 32, 32, 44, 32, 56, 32),
		Width:        6,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
}

func horizontalLine(x1, y, x2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y), pt(x2, y)}
}
