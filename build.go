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

	"seehuhn.de/go/geom/vec"
)

// build replaces the contents of m by the geometry of the n points
// delivered by next.
//
// The order of the output is fixed: the start cap corner, the start vertex
// pair, then for every interior point its join vertices (and corner, if
// any) followed by the slot of the segment ending there, and finally the
// end cap.
func (m *Mesh) build(next func() (vec.Vec2, bool), n int, width float64, cfg *Config) error {
	if n <= 0 {
		return fmt.Errorf("build geometry for %d points: %w", n, ErrInvalidArgument)
	}

	m.Reset()
	p0, ok := next()
	if !ok {
		return fmt.Errorf("point 0 of %d missing: %w", n, ErrInconsistentState)
	}
	if n == 1 {
		m.emitDisc(p0, width, cfg.DiscScale)
		return nil
	}

	// Reserve for the common case of all bevels.  Corners grow the
	// buffers on demand.
	m.reserve(2*n, (n-1)*slotIndices, 2)

	p1, ok := next()
	if !ok {
		return fmt.Errorf("point 1 of %d missing: %w", n, ErrInconsistentState)
	}
	m.emitStart(p0, p1, width)
	for i := 2; i < n; i++ {
		p2, ok := next()
		if !ok {
			return fmt.Errorf("point %d of %d missing: %w", i, n, ErrInconsistentState)
		}
		m.emitJoin(p0, p1, p2, width, cfg)
		p0, p1 = p1, p2
	}
	m.emitEnd(p0, p1, width)
	return nil
}

// BuildMesh computes the geometry of a stroke through pts in a single
// pass.
func BuildMesh(pts []vec.Vec2, width float64, cfg Config) (*Mesh, error) {
	cfg = cfg.sanitized()
	i := 0
	next := func() (vec.Vec2, bool) {
		if i >= len(pts) {
			return vec.Vec2{}, false
		}
		p := pts[i]
		i++
		return p, true
	}
	m := &Mesh{growth: cfg.GrowthFactor}
	if err := m.build(next, len(pts), width, &cfg); err != nil {
		return nil, err
	}
	return m, nil
}
