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
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// turn returns the three points of a join turning left by deg degrees.
func turn(deg float64) (vec.Vec2, vec.Vec2, vec.Vec2) {
	phi := deg * math.Pi / 180
	p0 := vec.Vec2{X: -10}
	p1 := vec.Vec2{}
	p2 := vec.Vec2{X: 10 * math.Cos(phi), Y: 10 * math.Sin(phi)}
	return p0, p1, p2
}

func TestClassifyJoin(t *testing.T) {
	type testCase struct {
		name       string
		p0, p1, p2 vec.Vec2
		corner     bool
		degenerate bool
	}
	var cases []testCase
	for _, c := range []struct {
		deg    float64
		corner bool
	}{
		{0, false},
		{30, false},
		{60, false},
		{70, true},
		{90, true},
		{-90, true},
		{150, true},
	} {
		p0, p1, p2 := turn(c.deg)
		cases = append(cases, testCase{
			name: fmt.Sprintf("turn_%g", c.deg), p0: p0, p1: p1, p2: p2, corner: c.corner,
		})
	}
	cases = append(cases,
		testCase{
			name:       "reversal",
			p0:         vec.Vec2{X: 0},
			p1:         vec.Vec2{X: 1},
			p2:         vec.Vec2{X: 0},
			corner:     true,
			degenerate: true,
		},
		testCase{
			name:   "first_segment_empty",
			p0:     vec.Vec2{X: 1, Y: 1},
			p1:     vec.Vec2{X: 1, Y: 1},
			p2:     vec.Vec2{X: 5, Y: 1},
			corner: false,
		},
		testCase{
			name:   "second_segment_empty",
			p0:     vec.Vec2{X: 1, Y: 1},
			p1:     vec.Vec2{X: 5, Y: 3},
			p2:     vec.Vec2{X: 5, Y: 3},
			corner: false,
		},
		testCase{
			name:   "all_equal",
			p0:     vec.Vec2{X: 2, Y: 2},
			p1:     vec.Vec2{X: 2, Y: 2},
			p2:     vec.Vec2{X: 2, Y: 2},
			corner: false,
		},
	)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j := classifyJoin(tc.p0, tc.p1, tc.p2, defaultMiterLimit, defaultTangentEpsilon)
			if j.corner != tc.corner {
				t.Errorf("corner = %t, want %t (miter scale %g)", j.corner, tc.corner, j.miterScale)
			}
			if j.degenerate != tc.degenerate {
				t.Errorf("degenerate = %t, want %t", j.degenerate, tc.degenerate)
			}
			for _, v := range []vec.Vec2{j.l1, j.n1, j.l2, j.n2, j.tangent, j.miter} {
				if !finite(v) {
					t.Fatalf("non-finite join vector %v", v)
				}
			}
			if !(j.miterScale >= 1) || math.IsInf(j.miterScale, 0) {
				t.Errorf("miter scale %g out of range", j.miterScale)
			}
			if IsCorner(tc.p0, tc.p1, tc.p2, defaultMiterLimit) != tc.corner {
				t.Error("IsCorner disagrees with classifyJoin")
			}
		})
	}
}

func TestMiterLimitBoundary(t *testing.T) {
	p0, p1, p2 := turn(90)
	// the miter scale of a right angle is sqrt(2)
	if !IsCorner(p0, p1, p2, 1.4) {
		t.Error("right angle must be a corner for miter limit 1.4")
	}
	if IsCorner(p0, p1, p2, 1.5) {
		t.Error("right angle must be a bevel for miter limit 1.5")
	}
}

func TestTurnSign(t *testing.T) {
	o := vec.Vec2{}
	e := vec.Vec2{X: 1}
	cases := []struct {
		name string
		p2   vec.Vec2
		want float64
	}{
		{"left", vec.Vec2{X: 1, Y: 1}, -1},
		{"right", vec.Vec2{X: 1, Y: -1}, 1},
		{"straight", vec.Vec2{X: 2}, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := turnSign(o, e, tc.p2); got != tc.want {
				t.Errorf("turnSign = %g, want %g", got, tc.want)
			}
		})
	}
}

func TestClampParam(t *testing.T) {
	v := vec.Vec2{X: 10}
	cases := []struct {
		d    vec.Vec2
		want float64
	}{
		{vec.Vec2{X: -3}, 0},
		{vec.Vec2{X: 5, Y: 7}, 0.5},
		{vec.Vec2{X: 13}, 1},
	}
	for _, tc := range cases {
		if got := clampParam(tc.d, v); got != tc.want {
			t.Errorf("clampParam(%v) = %g, want %g", tc.d, got, tc.want)
		}
	}
	if got := clampParam(vec.Vec2{X: 1}, vec.Vec2{}); got != 0 {
		t.Errorf("zero segment: got %g, want 0", got)
	}
}

func finite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
