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

var precisionCases = []TestCase{
	{
		Name:         "subpixel_offset_00",
		Points:       offsetCorner(0.0),
		Width:        4,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "subpixel_offset_25",
		Points:       offsetCorner(0.25),
		Width:        4,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "subpixel_offset_50",
		Points:       offsetCorner(0.5),
		Width:        4,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "subpixel_offset_75",
		Points:       offsetCorner(0.75),
		Width:        4,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "thin_line_y_half",
		Points:       horizontalLine(5, 10.5, 59),
		Width:        1,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "width_below_pixel",
		Points:       pts(8, 8, 56, 56),
		Width:        0.25,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
}

// offsetCorner returns a right angle shifted by a fraction of a pixel.
func offsetCorner(offset float64) []vec.Vec2 {
	return []vec.Vec2{
		pt(16+offset, 48+offset),
		pt(16+offset, 16+offset),
		pt(48+offset, 16+offset),
	}
}
