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
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sketch/points"
)

func TestCollide(t *testing.T) {
	pool := points.NewPool(nil)
	line := drawIncremental(t, pool, []vec.Vec2{{X: 0}, {X: 10}}, 2)
	bend := drawIncremental(t, pool, []vec.Vec2{{X: 0}, {X: 10}, {X: 10, Y: 10}}, 2)
	dot := drawIncremental(t, pool, []vec.Vec2{{X: 0}}, 4)
	empty := newStroke(t, pool, 2)

	cases := []struct {
		name   string
		s      *Stroke
		c      Circle
		expect bool
	}{
		{"empty", empty, Circle{Center: vec.Vec2{}, R: 100}, false},
		{"line_miss", line, Circle{Center: vec.Vec2{X: 5, Y: 3}, R: 1.5}, false},
		{"line_hit", line, Circle{Center: vec.Vec2{X: 5, Y: 3}, R: 2.5}, true},
		{"line_touch", line, Circle{Center: vec.Vec2{X: 5, Y: 3}, R: 2}, true},
		{"line_beyond_end", line, Circle{Center: vec.Vec2{X: 12, Y: 0}, R: 0.5}, false},
		{"line_round_cap", line, Circle{Center: vec.Vec2{X: 11.5, Y: 0}, R: 0.6}, true},
		{"line_inside", line, Circle{Center: vec.Vec2{X: 3, Y: 0}, R: 0}, true},
		{"bend_second_segment", bend, Circle{Center: vec.Vec2{X: 12, Y: 8}, R: 1.5}, true},
		{"bend_inside_corner", bend, Circle{Center: vec.Vec2{X: 5, Y: 5}, R: 3}, false},
		{"dot_hit", dot, Circle{Center: vec.Vec2{X: 3, Y: 0}, R: 1}, true},
		{"dot_miss", dot, Circle{Center: vec.Vec2{X: 3.1, Y: 0}, R: 1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.Collide(tc.c); got != tc.expect {
				t.Errorf("Collide(%v) = %t, want %t", tc.c, got, tc.expect)
			}
		})
	}
}

// Growing the eraser never turns a hit into a miss.
func TestCollideMonotone(t *testing.T) {
	pool := points.NewPool(nil)
	s := drawIncremental(t, pool, []vec.Vec2{{X: 0}, {X: 20, Y: 5}, {X: 25, Y: 30}, {X: -5, Y: 12}}, 3)

	centers := []vec.Vec2{{X: 10, Y: 10}, {X: -10, Y: -10}, {X: 30, Y: 0}, {X: 8, Y: 20}}
	for _, c := range centers {
		hit := false
		for r := 0.0; r < 40; r += 0.25 {
			got := s.Collide(Circle{Center: c, R: r})
			if hit && !got {
				t.Fatalf("center %v: hit at smaller radius, miss at r=%g", c, r)
			}
			hit = got
		}
		if !hit {
			t.Errorf("center %v: never hit", c)
		}
	}
}

func TestCollideAfterClear(t *testing.T) {
	pool := points.NewPool(nil)
	s := drawIncremental(t, pool, []vec.Vec2{{X: 0}, {X: 10}}, 2)
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if s.Collide(Circle{Center: vec.Vec2{X: 5}, R: 10}) {
		t.Error("cleared stroke collides")
	}
}
