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

package sketch

import (
	"seehuhn.de/go/geom/vec"
)

// Circle is a disc in world coordinates, for example an eraser.
type Circle struct {
	Center vec.Vec2
	R      float64
}

// Collide reports whether the circle c touches the ink of the stroke.
// The stroke is modelled as the set of points within half the width of
// its centre line, so joins and caps are round.
func (s *Stroke) Collide(c Circle) bool {
	n := s.points.Len()
	if n == 0 || !s.hasBox || c.R < 0 {
		return false
	}

	// broad phase: distance from the centre to the bounding box
	box := s.box
	q := vec.Vec2{
		X: min(max(c.Center.X, box.LLx), box.URx),
		Y: min(max(c.Center.Y, box.LLy), box.URy),
	}
	if d := c.Center.Sub(q); d.Dot(d) > c.R*c.R {
		return false
	}

	reach := s.width/2 + c.R
	reach2 := reach * reach

	cur := s.points.Cursor()
	p0, _ := cur.Next()
	if n == 1 {
		d := c.Center.Sub(p0)
		return d.Dot(d) <= reach2
	}
	for p1, ok := cur.Next(); ok; p1, ok = cur.Next() {
		if segmentDist2(c.Center, p0, p1) <= reach2 {
			return true
		}
		p0 = p1
	}
	return false
}

// segmentDist2 returns the squared distance from x to the segment from a to b.
func segmentDist2(x, a, b vec.Vec2) float64 {
	v := b.Sub(a)
	t := clampParam(x.Sub(a), v)
	d := x.Sub(a.Add(v.Mul(t)))
	return d.Dot(d)
}
