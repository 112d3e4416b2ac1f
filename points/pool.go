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

// Package points stores the point sequences of strokes in fixed-size blocks
// which are recycled through a shared pool.
package points

import (
	"errors"

	"seehuhn.de/go/geom/vec"
)

// BlockSize is the number of points held by a single block.
const BlockSize = 64

// ErrOutOfMemory is returned by [Pool.Acquire] when a bounded arena is
// exhausted and no released block is available.
var ErrOutOfMemory = errors.New("points: block arena exhausted")

// Block is a fixed-capacity chunk of a point sequence.
// Only the last block of a chain may be partially filled.
type Block struct {
	Points [BlockSize]vec.Vec2
	Len    int

	next *Block
	free bool // true while the block sits on the free list
}

// Next returns the following block in the chain, or nil.
func (b *Block) Next() *Block {
	return b.next
}

// Arena describes the backing memory of a [Pool].
type Arena struct {
	// MaxBlocks bounds the number of blocks the pool will ever carve.
	// Zero means no bound.
	MaxBlocks int

	// SlabBlocks is the number of blocks allocated together when the
	// pool needs fresh memory.  Zero selects DefaultSlabBlocks.
	SlabBlocks int
}

// DefaultSlabBlocks is the growth unit of an arena, 1 MiB worth of points.
const DefaultSlabBlocks = 1 << 20 / (BlockSize * 16)

// DefaultMaxBlocks is the suggested arena bound.  It allows for a little
// over 2 million points across all live strokes.
const DefaultMaxBlocks = 32768

// PoolStats reports the bookkeeping state of a pool.
type PoolStats struct {
	Carved int // blocks ever taken from the arena
	Free   int // blocks currently on the free list
	Slabs  int // backing allocations made
}

// Pool issues and recycles point blocks.  A block is either in use by
// exactly one [Store] or on the free list.
//
// A Pool is not safe for concurrent use.  Strokes sharing a pool from
// several goroutines must serialize their calls.
type Pool struct {
	arena Arena

	slab    []Block
	freeTop *Block
	stats   PoolStats
}

// NewPool creates a pool backed by the given arena.  If backing is nil,
// the pool uses an unbounded arena of its own.
func NewPool(backing *Arena) *Pool {
	p := &Pool{}
	if backing != nil {
		p.arena = *backing
	}
	if p.arena.SlabBlocks <= 0 {
		p.arena.SlabBlocks = DefaultSlabBlocks
	}
	return p
}

// Acquire returns an empty block.  Released blocks are reused before new
// memory is carved from the arena.
func (p *Pool) Acquire() (*Block, error) {
	if b := p.freeTop; b != nil {
		p.freeTop = b.next
		p.stats.Free--

		*b = Block{}
		return b, nil
	}

	if p.arena.MaxBlocks > 0 && p.stats.Carved >= p.arena.MaxBlocks {
		return nil, ErrOutOfMemory
	}

	if len(p.slab) == 0 {
		n := p.arena.SlabBlocks
		if p.arena.MaxBlocks > 0 {
			n = min(n, p.arena.MaxBlocks-p.stats.Carved)
		}
		p.slab = make([]Block, n)
		p.stats.Slabs++
	}
	b := &p.slab[0]
	p.slab = p.slab[1:]
	p.stats.Carved++
	return b, nil
}

// Release pushes b onto the free list.  Releasing a block twice without
// an intervening Acquire is a programming error and panics.
func (p *Pool) Release(b *Block) {
	if b.free {
		panic("points: block released twice")
	}
	b.free = true
	b.next = p.freeTop
	p.freeTop = b
	p.stats.Free++
}

// Stats returns the current bookkeeping counters.
func (p *Pool) Stats() PoolStats {
	return p.stats
}
