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
	"image/color"
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sketch/points"
)

// Canvas owns a set of strokes sharing one block pool, and turns pen and
// eraser input into stroke edits.
type Canvas struct {
	cfg     Config
	pool    *points.Pool
	strokes []*Stroke

	// active is the stroke being drawn, anchor its last appended point.
	active *Stroke
	anchor vec.Vec2

	// NewSink, if set, is called for every new stroke to obtain the
	// sink receiving its geometry.
	NewSink func(s *Stroke) Sink
}

// NewCanvas creates an empty canvas.  The arena bounds the memory for
// points of all strokes together; nil means unbounded.
func NewCanvas(cfg Config, arena *points.Arena) *Canvas {
	return &Canvas{
		cfg:  cfg.sanitized(),
		pool: points.NewPool(arena),
	}
}

// Pool returns the block pool shared by the strokes of the canvas.
func (c *Canvas) Pool() *points.Pool {
	return c.pool
}

// Strokes returns the strokes in drawing order.  The slice must not be
// modified.
func (c *Canvas) Strokes() []*Stroke {
	return c.strokes
}

// Begin starts a new stroke at p.  Any stroke still in progress is ended.
func (c *Canvas) Begin(p vec.Vec2, col color.NRGBA, width float64) (*Stroke, error) {
	c.End()

	s, err := NewStroke(c.pool, col, width, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("begin stroke: %w", err)
	}
	if c.NewSink != nil {
		if err := s.SetSink(c.NewSink(s)); err != nil {
			s.Release()
			return nil, err
		}
	}
	if err := s.AddPoint(p); err != nil {
		s.Release()
		return nil, fmt.Errorf("begin stroke: %w", err)
	}
	c.strokes = append(c.strokes, s)
	c.active = s
	c.anchor = p
	return s, nil
}

// Drag moves the pen to p.  Once the pen is more than MinTravel away from
// the last appended point, p is appended; until then it replaces the last
// point, so that slow movements do not produce clusters of tiny segments.
func (c *Canvas) Drag(p vec.Vec2) error {
	s := c.active
	if s == nil {
		return fmt.Errorf("drag without active stroke: %w", ErrInvalidArgument)
	}

	if last, ok := s.points.Last(); ok && last == p {
		return nil
	}
	if p.Sub(c.anchor).Length() <= c.cfg.MinTravel {
		return s.ChangeLast(p)
	}
	n := s.Len()
	err := s.AddPoint(p)
	if s.Len() > n {
		// the point is stored even if the upload failed
		c.anchor = p
	}
	return err
}

// End finishes the stroke in progress, if any.
func (c *Canvas) End() {
	c.active = nil
}

// Erase removes all strokes touched by the circle and returns their
// number.  The points of removed strokes go back to the pool.
func (c *Canvas) Erase(circle Circle) int {
	removed := 0
	c.strokes = slices.DeleteFunc(c.strokes, func(s *Stroke) bool {
		if !s.Collide(circle) {
			return false
		}
		if s == c.active {
			c.active = nil
		}
		s.Release()
		removed++
		return true
	})
	if removed > 0 {
		Logger().Debug("erase strokes",
			slog.Int("removed", removed),
			slog.Int("remaining", len(c.strokes)))
	}
	return removed
}
