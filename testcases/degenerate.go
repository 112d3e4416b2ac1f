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

var degenerateCases = []TestCase{
	{
		Name:         "two_equal_points",
		Points:       pts(32, 32, 32, 32),
		Width:        10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "repeated_interior",
		Points:       pts(10, 32, 32, 32, 32, 32, 32, 32, 54, 32),
		Width:        8,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "reversal",
		Points:       pts(10, 32, 54, 32, 20, 32),
		Width:        8,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "hairpin",
		Points:       pts(10, 30, 54, 32, 10, 34),
		Width:        6,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "tiny_segments",
		Points:       pts(20, 32, 20.1, 32, 20.2, 32.1, 20.3, 32, 44, 32),
		Width:        8,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
	{
		Name:         "short_after_corner",
		Points:       pts(8, 50, 32, 14, 33, 15),
		Width:        10,
		CanvasWidth:  64,
		CanvasHeight: 64,
	},
}
