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
	"log/slog"

	"seehuhn.de/go/geom/vec"
)

// Vertex is a segment vertex in world coordinates.
// Vertices come in pairs: the first of each pair lies on the -normal side
// of the line, the second on the +normal side.
type Vertex struct {
	X, Y float32
}

// Corner is the instance data of one corner patch.  The patch covers the
// part of the round join at P1 between the segments P0→P1 and P1→P2 which
// the segment quads leave open.  End caps use P0 == P2.
type Corner struct {
	P0, P1, P2 [2]float32
	Width      float32 // full stroke width
}

// Mesh is the render-ready geometry of a stroke: a triangle list over
// Verts, and one corner patch per element of Corners.
//
// The buffers grow geometrically and never shrink; Reset keeps their
// capacity for reuse.
type Mesh struct {
	Verts   []Vertex
	Indices []uint32
	Corners []Corner

	growth float64
}

// Counts returns the number of vertices, indices and corner patches.
func (m *Mesh) Counts() (verts, indices, corners int) {
	return len(m.Verts), len(m.Indices), len(m.Corners)
}

// Caps returns the current buffer capacities.
func (m *Mesh) Caps() (verts, indices, corners int) {
	return cap(m.Verts), cap(m.Indices), cap(m.Corners)
}

// Reset empties the mesh, keeping the allocated buffers.
func (m *Mesh) Reset() {
	m.Verts = m.Verts[:0]
	m.Indices = m.Indices[:0]
	m.Corners = m.Corners[:0]
}

// reserve makes room for the given number of additional elements in each
// buffer.  Buffers that are too small are replaced by larger copies.
func (m *Mesh) reserve(verts, indices, corners int) {
	g := m.growth
	if !(g > 1) {
		g = defaultGrowthFactor
	}
	m.Verts = growSlice(m.Verts, verts, g, "vertex")
	m.Indices = growSlice(m.Indices, indices, g, "index")
	m.Corners = growSlice(m.Corners, corners, g, "corner")
}

func growSlice[T any](buf []T, extra int, factor float64, name string) []T {
	need := len(buf) + extra
	if need <= cap(buf) {
		return buf
	}
	newCap := max(need, int(float64(cap(buf))*factor), 8)
	Logger().Debug("grow geometry buffer",
		slog.String("buffer", name),
		slog.Int("old", cap(buf)),
		slog.Int("new", newCap))

	res := make([]T, len(buf), newCap)
	copy(res, buf)
	return res
}

// addVert appends a vertex.  Capacity must have been reserved.
func (m *Mesh) addVert(p vec.Vec2) {
	m.Verts = append(m.Verts, Vertex{X: float32(p.X), Y: float32(p.Y)})
}

func (m *Mesh) addCorner(p0, p1, p2 vec.Vec2, width float64) {
	m.Corners = append(m.Corners, Corner{
		P0:    [2]float32{float32(p0.X), float32(p0.Y)},
		P1:    [2]float32{float32(p1.X), float32(p1.Y)},
		P2:    [2]float32{float32(p2.X), float32(p2.Y)},
		Width: float32(width),
	})
}

// addSlot appends the two triangles connecting the previous vertex pair
// to the vertices just added.  For a bevel (added == 2) these are the
// last four vertices.  For a corner (added == 4) the quad ends at the
// first pair of the corner; its second pair starts the next slot, and
// the gap between them is covered by the corner patch.
func (m *Mesh) addSlot(added int) {
	nv := uint32(len(m.Verts))
	if added == 4 {
		nv -= 2
	}
	m.Indices = append(m.Indices,
		nv-4, nv-3, nv-2,
		nv-3, nv-1, nv-2,
	)
}

// Per-piece buffer usage of the emitters below.
const (
	slotIndices = 6
	capVerts    = 2
	bevelVerts  = 2
	cornerVerts = 4
	discCorners = 2
)

// emitDisc emits the two corner patches which render a single point.
func (m *Mesh) emitDisc(p vec.Vec2, width, discScale float64) {
	m.reserve(0, 0, discCorners)
	off := vec.Vec2{X: width * discScale}
	m.addCorner(p.Add(off), p, p.Add(off), width)
	m.addCorner(p.Sub(off), p, p.Sub(off), width)
}

// emitStart emits the start cap of the segment p0→p1.
func (m *Mesh) emitStart(p0, p1 vec.Vec2, width float64) {
	m.reserve(capVerts, 0, 1)
	n := perp(direction(p0, p1)).Mul(width / 2)
	m.addCorner(p1, p0, p1, width)
	m.addVert(p0.Sub(n))
	m.addVert(p0.Add(n))
}

// emitEnd emits the end cap of the segment p0→p1, together with the
// slot closing the last segment.
func (m *Mesh) emitEnd(p0, p1 vec.Vec2, width float64) {
	m.reserve(capVerts, slotIndices, 1)
	n := perp(direction(p0, p1)).Mul(width / 2)
	m.addCorner(p0, p1, p0, width)
	m.addVert(p1.Sub(n))
	m.addVert(p1.Add(n))
	m.addSlot(capVerts)
}

// emitJoin emits the geometry of the interior point p1 and the slot of
// the segment ending there.  It returns the classification used.
func (m *Mesh) emitJoin(p0, p1, p2 vec.Vec2, width float64, cfg *Config) join {
	j := classifyJoin(p0, p1, p2, cfg.MiterLimit, cfg.TangentEpsilon)
	hw := width / 2

	if !j.corner {
		m.reserve(bevelVerts, slotIndices, 0)
		off := j.miter.Mul(hw * j.miterScale)
		m.addVert(p1.Sub(off))
		m.addVert(p1.Add(off))
		m.addSlot(bevelVerts)
		return j
	}

	m.reserve(cornerVerts, slotIndices, 1)
	m.addCorner(p0, p1, p2, width)

	s := turnSign(p0, p1, p2)
	inner := p1.Sub(j.miter.Mul(s * hw * j.miterScale))

	// points on the centre lines of both segments, level with the inner
	// miter point, clamped so that short segments are not overshot
	v1 := p1.Sub(p0)
	a := inner.Add(j.n1.Mul(s * hw))
	a = p0.Add(v1.Mul(clampParam(a.Sub(p0), v1)))

	v2 := p1.Sub(p2)
	b := inner.Add(j.n2.Mul(s * hw))
	b = p2.Add(v2.Mul(clampParam(b.Sub(p2), v2)))

	o1 := j.n1.Mul(s * hw)
	o2 := j.n2.Mul(s * hw)
	if s == 1 {
		m.addVert(a.Sub(o1))
		m.addVert(a.Add(o1))
		m.addVert(b.Sub(o2))
		m.addVert(b.Add(o2))
	} else {
		m.addVert(a.Add(o1))
		m.addVert(a.Sub(o1))
		m.addVert(b.Add(o2))
		m.addVert(b.Sub(o2))
	}
	m.addSlot(cornerVerts)
	return j
}

// joinUsage returns the number of vertices and corner patches emitJoin
// adds for a join of the given kind.
func joinUsage(corner bool) (verts, corners int) {
	if corner {
		return cornerVerts, 1
	}
	return bevelVerts, 0
}

// truncate drops the given number of trailing elements from each buffer.
func (m *Mesh) truncate(verts, indices, corners int) {
	m.Verts = m.Verts[:len(m.Verts)-verts]
	m.Indices = m.Indices[:len(m.Indices)-indices]
	m.Corners = m.Corners[:len(m.Corners)-corners]
}
