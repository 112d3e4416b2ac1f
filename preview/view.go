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

// Package preview renders stroke geometry into an alpha mask in software.
//
// The renderer fills the triangles of a stroke mesh and draws a disc of
// the stroke radius for every corner patch, which is the area a corner
// patch covers on a GPU.
package preview

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// View describes the visible part of the world.  World coordinates have
// the y-axis pointing up.
type View struct {
	Center   vec.Vec2
	Width    float64 // visible world width
	Rotation float64 // counter-clockwise rotation of the view, in radians
}

// Matrix returns the transformation from world coordinates to the pixel
// coordinates of a w×h image, with the origin at the top-left corner.
// The visible world height follows from the aspect ratio of the image.
func (v View) Matrix(w, h int) matrix.Matrix {
	k := 1.0
	if v.Width > 0 {
		k = float64(w) / v.Width
	}
	sin, cos := math.Sincos(v.Rotation)
	a := k * cos
	b := k * sin
	c := k * sin
	d := -k * cos
	e := float64(w)/2 - (a*v.Center.X + c*v.Center.Y)
	f := float64(h)/2 - (b*v.Center.X + d*v.Center.Y)
	return matrix.Matrix{a, b, c, d, e, f}
}

// apply maps (x, y) through m.
func apply(m matrix.Matrix, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// scale returns the largest factor by which m stretches a length.
func scale(m matrix.Matrix) float64 {
	sx := math.Hypot(m[0], m[1])
	sy := math.Hypot(m[2], m[3])
	return max(sx, sy)
}
