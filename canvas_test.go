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
	"errors"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sketch/points"
)

func TestCanvasDrag(t *testing.T) {
	c := NewCanvas(DefaultConfig(), nil)

	s, err := c.Begin(vec.Vec2{}, black, 2)
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		p       vec.Vec2
		wantLen int
	}{
		{vec.Vec2{X: 0.5}, 1}, // too close: moves the first point
		{vec.Vec2{X: 5}, 2},
		{vec.Vec2{X: 5.5}, 2},
		{vec.Vec2{X: 5.5}, 2}, // no movement
		{vec.Vec2{X: 5.5, Y: 3}, 3},
	}
	for i, step := range steps {
		if err := c.Drag(step.p); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if s.Len() != step.wantLen {
			t.Fatalf("step %d: Len = %d, want %d", i, s.Len(), step.wantLen)
		}
		if last, _ := s.points.Last(); last != step.p {
			t.Fatalf("step %d: last point %v, want %v", i, last, step.p)
		}
		if err := s.Validate(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	c.End()
	if err := c.Drag(vec.Vec2{X: 9}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("drag after End: got %v", err)
	}
}

func TestCanvasErase(t *testing.T) {
	c := NewCanvas(DefaultConfig(), nil)
	draw := func(pts ...vec.Vec2) {
		t.Helper()
		if _, err := c.Begin(pts[0], black, 2); err != nil {
			t.Fatal(err)
		}
		for _, p := range pts[1:] {
			if err := c.Drag(p); err != nil {
				t.Fatal(err)
			}
		}
		c.End()
	}
	draw(vec.Vec2{X: 0}, vec.Vec2{X: 10})
	draw(vec.Vec2{X: 0, Y: 20}, vec.Vec2{X: 10, Y: 20})
	draw(vec.Vec2{X: 5, Y: -10}, vec.Vec2{X: 5, Y: 30})

	if n := c.Erase(Circle{Center: vec.Vec2{X: 50, Y: 50}, R: 5}); n != 0 {
		t.Errorf("erased %d strokes far away", n)
	}
	if n := c.Erase(Circle{Center: vec.Vec2{X: 1, Y: 1}, R: 1}); n != 1 {
		t.Errorf("erased %d strokes, want 1", n)
	}
	if len(c.Strokes()) != 2 {
		t.Fatalf("%d strokes left, want 2", len(c.Strokes()))
	}
	if c.Pool().Stats().Free != 1 {
		t.Errorf("%d free blocks, want 1", c.Pool().Stats().Free)
	}

	// the vertical stroke crosses the remaining horizontal one
	if n := c.Erase(Circle{Center: vec.Vec2{X: 5, Y: 20}, R: 0.5}); n != 2 {
		t.Errorf("erased %d strokes, want 2", n)
	}
	if len(c.Strokes()) != 0 {
		t.Errorf("%d strokes left", len(c.Strokes()))
	}

	// released blocks are reused
	carved := c.Pool().Stats().Carved
	draw(vec.Vec2{}, vec.Vec2{X: 4})
	if c.Pool().Stats().Carved != carved {
		t.Error("new stroke carved fresh memory")
	}
}

func TestCanvasSinks(t *testing.T) {
	c := NewCanvas(DefaultConfig(), &points.Arena{MaxBlocks: 4})
	var sinks []*recordingSink
	c.NewSink = func(*Stroke) Sink {
		r := &recordingSink{}
		sinks = append(sinks, r)
		return r
	}

	if _, err := c.Begin(vec.Vec2{}, black, 2); err != nil {
		t.Fatal(err)
	}
	if err := c.Drag(vec.Vec2{X: 10}); err != nil {
		t.Fatal(err)
	}
	if len(sinks) != 1 || sinks[0].uploads != 3 {
		t.Fatalf("unexpected sink state %+v", sinks)
	}

	c.Erase(Circle{Center: vec.Vec2{X: 5}, R: 1})
	if !sinks[0].released {
		t.Error("erased stroke did not release its sink")
	}
}

func TestCanvasDragAfterFailedUpload(t *testing.T) {
	c := NewCanvas(DefaultConfig(), nil)
	sink := &recordingSink{}
	c.NewSink = func(*Stroke) Sink { return sink }

	s, err := c.Begin(vec.Vec2{}, black, 2)
	if err != nil {
		t.Fatal(err)
	}

	sink.fail = errors.New("device lost")
	if err := c.Drag(vec.Vec2{X: 5}); !errors.Is(err, sink.fail) {
		t.Fatalf("got %v, want upload error", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}

	// the stored point is the new anchor, so a small move replaces it
	sink.fail = nil
	if err := c.Drag(vec.Vec2{X: 5.5}); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d after small move, want 2", s.Len())
	}
}

func TestCanvasBeginInvalidWidth(t *testing.T) {
	c := NewCanvas(DefaultConfig(), nil)
	if _, err := c.Begin(vec.Vec2{}, black, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want invalid argument", err)
	}
	if len(c.Strokes()) != 0 || c.Pool().Stats().Carved != 0 {
		t.Error("rejected stroke left state behind")
	}
}
