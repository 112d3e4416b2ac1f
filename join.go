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
	"math"

	"seehuhn.de/go/geom/vec"
)

// join describes the connection of two segments p0→p1 and p1→p2 at p1.
type join struct {
	l1, n1 vec.Vec2 // unit direction and normal (90° CCW) of p0→p1
	l2, n2 vec.Vec2 // unit direction and normal of p1→p2

	tangent    vec.Vec2
	miter      vec.Vec2 // unit vector along the miter line
	miterScale float64  // length of the miter offset, in half widths

	// degenerate is set if the segments (nearly) reverse direction.
	// The miter is then undefined and tangent = l1, miter = n1.
	degenerate bool

	// corner is set if the join is drawn with a corner patch.
	// Otherwise it is a bevel made of two shared miter vertices.
	corner bool
}

// classifyJoin computes the join geometry at p1.  This is the only place
// where bevels and corners are told apart; the vertex and index counts of
// a mesh depend on nothing else.
//
// Coincident points borrow the direction of the neighbouring segment
// (or +x if both segments are empty), so the result is always finite.
func classifyJoin(p0, p1, p2 vec.Vec2, miterLimit, eps float64) join {
	l1, ok1 := unit(p1.Sub(p0))
	l2, ok2 := unit(p2.Sub(p1))
	switch {
	case !ok1 && !ok2:
		l1 = vec.Vec2{X: 1}
		l2 = l1
	case !ok1:
		l1 = l2
	case !ok2:
		l2 = l1
	}

	j := join{
		l1: l1,
		n1: perp(l1),
		l2: l2,
		n2: perp(l2),
	}

	sum := l1.Add(l2)
	if sum.Dot(sum) < eps {
		// avoid the infinite miter of a reversal
		j.degenerate = true
		j.tangent = l1
		j.miter = j.n1
		j.miterScale = 1
	} else {
		j.tangent, _ = unit(sum)
		j.miter = perp(j.tangent)
		j.miterScale = 1 / j.miter.Dot(j.n1)
	}

	j.corner = j.degenerate || j.miterScale >= miterLimit
	return j
}

// IsCorner reports whether the join at p1 between the segments p0→p1 and
// p1→p2 is rendered as a corner patch, for the given miter limit.
func IsCorner(p0, p1, p2 vec.Vec2, miterLimit float64) bool {
	return classifyJoin(p0, p1, p2, miterLimit, defaultTangentEpsilon).corner
}

// turnSign returns the sign s used to pick the outer side of a corner:
// s = -sign(cross(p1-p0, p2-p1)), where sign(0) = +1.
func turnSign(p0, p1, p2 vec.Vec2) float64 {
	if cross(p1.Sub(p0), p2.Sub(p1)) < 0 {
		return 1
	}
	return -1
}

// direction returns the unit vector from a to b, or +x if a == b.
func direction(a, b vec.Vec2) vec.Vec2 {
	if l, ok := unit(b.Sub(a)); ok {
		return l
	}
	return vec.Vec2{X: 1}
}

// unit normalizes v.  It returns false for vectors too short to have a
// direction.
func unit(v vec.Vec2) (vec.Vec2, bool) {
	l := v.Length()
	if !(l > 1e-12) || math.IsInf(l, 0) {
		return vec.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// perp rotates v by 90° counter-clockwise.
func perp(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

// cross returns the z-component of the 3D cross product.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// clampParam returns the parameter t ∈ [0, 1] of the projection of d onto
// the segment direction v.  A zero-length segment yields 0.
func clampParam(d, v vec.Vec2) float64 {
	vv := v.Dot(v)
	if vv == 0 {
		return 0
	}
	return min(max(d.Dot(v)/vv, 0), 1)
}
