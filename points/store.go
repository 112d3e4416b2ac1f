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

package points

import (
	"errors"
	"fmt"
	"iter"

	"seehuhn.de/go/geom/vec"
)

// ErrIndexOutOfRange is returned for point lookups outside [0, Len).
var ErrIndexOutOfRange = errors.New("points: index out of range")

// Store is the ordered point sequence of one stroke, kept as a singly
// linked chain of blocks taken from a shared [Pool].
//
// Appending is amortized O(1).  Random access walks the chain; callers
// reading many points should use a [Cursor] instead.
type Store struct {
	pool  *Pool
	first *Block
	last  *Block
	n     int
}

// NewStore returns an empty store drawing blocks from pool.
func NewStore(pool *Pool) *Store {
	return &Store{pool: pool}
}

// Len returns the number of points in the store.
func (s *Store) Len() int {
	return s.n
}

// Append adds p to the end of the sequence.  A new block is acquired only
// when the last block is full.
func (s *Store) Append(p vec.Vec2) error {
	if s.last == nil || s.last.Len == BlockSize {
		b, err := s.pool.Acquire()
		if err != nil {
			return err
		}
		if s.last == nil {
			s.first = b
		} else {
			s.last.next = b
		}
		s.last = b
	}
	s.last.Points[s.last.Len] = p
	s.last.Len++
	s.n++
	return nil
}

// AppendSlice adds all of pts.  On error, the points appended so far stay
// in the store.
func (s *Store) AppendSlice(pts []vec.Vec2) error {
	for len(pts) > 0 {
		if s.last == nil || s.last.Len == BlockSize {
			if err := s.Append(pts[0]); err != nil {
				return err
			}
			pts = pts[1:]
			continue
		}
		k := copy(s.last.Points[s.last.Len:], pts)
		s.last.Len += k
		s.n += k
		pts = pts[k:]
	}
	return nil
}

// SetLast overwrites the most recently appended point.
func (s *Store) SetLast(p vec.Vec2) error {
	if s.n == 0 {
		return fmt.Errorf("set last point of empty store: %w", ErrIndexOutOfRange)
	}
	s.last.Points[s.last.Len-1] = p
	return nil
}

// Last returns the most recently appended point.
func (s *Store) Last() (vec.Vec2, bool) {
	if s.n == 0 {
		return vec.Vec2{}, false
	}
	return s.last.Points[s.last.Len-1], true
}

// At returns the i-th point.  This walks the block chain from the start.
func (s *Store) At(i int) (vec.Vec2, error) {
	if i < 0 || i >= s.n {
		return vec.Vec2{}, fmt.Errorf("point %d of %d: %w", i, s.n, ErrIndexOutOfRange)
	}
	b := s.first
	for i >= b.Len {
		i -= b.Len
		b = b.next
	}
	return b.Points[i], nil
}

// Clear releases every block back to the pool, head first, and empties
// the store.
func (s *Store) Clear() {
	for b := s.first; b != nil; {
		next := b.next
		s.pool.Release(b)
		b = next
	}
	s.first = nil
	s.last = nil
	s.n = 0
}

// Blocks returns the number of blocks currently held.
func (s *Store) Blocks() int {
	k := 0
	for b := s.first; b != nil; b = b.next {
		k++
	}
	return k
}

// Cursor returns a cursor positioned before the first point.
func (s *Store) Cursor() Cursor {
	return Cursor{b: s.first}
}

// All iterates over the points in order, together with their index.
func (s *Store) All() iter.Seq2[int, vec.Vec2] {
	return func(yield func(int, vec.Vec2) bool) {
		i := 0
		for b := s.first; b != nil; b = b.next {
			for _, p := range b.Points[:b.Len] {
				if !yield(i, p) {
					return
				}
				i++
			}
		}
	}
}

// Cursor reads a store sequentially by following the block chain.
// The store must not be modified while a cursor is in use.
type Cursor struct {
	b *Block
	i int
}

// Next returns the next point, or false after the last one.
func (c *Cursor) Next() (vec.Vec2, bool) {
	for c.b != nil && c.i >= c.b.Len {
		c.b = c.b.next
		c.i = 0
	}
	if c.b == nil {
		return vec.Vec2{}, false
	}
	p := c.b.Points[c.i]
	c.i++
	return p, true
}
