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
	"iter"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sketch/points"
)

// EditKind selects the kind of an [Edit].
type EditKind int

const (
	// EditAppend adds a point at the end of the stroke.
	EditAppend EditKind = iota

	// EditReplaceLast moves the most recent point without changing the
	// number of points.
	EditReplaceLast
)

func (k EditKind) String() string {
	switch k {
	case EditAppend:
		return "append"
	case EditReplaceLast:
		return "replace-last"
	default:
		return fmt.Sprintf("EditKind(%d)", int(k))
	}
}

// Edit is a single incremental change to a stroke.
type Edit struct {
	Kind  EditKind
	Point vec.Vec2
}

// Sink receives the geometry of a stroke after every successful change,
// for example to upload it into GPU buffers.  Upload must accept meshes
// of any size, including empty ones after [Stroke.Clear].
type Sink interface {
	Upload(s *Stroke) error
	Release(s *Stroke)
}

// Stroke is a freehand polyline together with its render geometry.
//
// The geometry is updated incrementally: appending a point or replacing
// the last point only regenerates the trailing join and end cap.
//
// A Stroke is not safe for concurrent use.
type Stroke struct {
	color color.NRGBA
	width float64
	cfg   Config

	points *points.Store

	// box covers every point expanded by half the width.  It only grows,
	// until the stroke is cleared.
	box    rect.Rect
	hasBox bool

	mesh  Mesh
	spare Mesh // target of full rebuilds, swapped in on success

	// tail holds the last three points, tail[2] being the most recent.
	// Only the last min(Len, 3) entries are valid.
	tail [3]vec.Vec2

	sink Sink
}

// NewStroke creates an empty stroke.  Points are stored in blocks taken
// from pool.  The width must be positive and finite, otherwise
// ErrInvalidArgument is returned.
func NewStroke(pool *points.Pool, col color.NRGBA, width float64, cfg Config) (*Stroke, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	cfg = cfg.sanitized()
	return &Stroke{
		color:  col,
		width:  width,
		cfg:    cfg,
		points: points.NewStore(pool),
		mesh:   Mesh{growth: cfg.GrowthFactor},
		spare:  Mesh{growth: cfg.GrowthFactor},
	}, nil
}

func checkWidth(width float64) error {
	if !(width > 0) || math.IsInf(width, 1) {
		return fmt.Errorf("stroke width %g: %w", width, ErrInvalidArgument)
	}
	return nil
}

// StrokeFromPoints creates a stroke through the given points and builds
// its geometry in a single pass.
func StrokeFromPoints(pool *points.Pool, pts []vec.Vec2, col color.NRGBA, width float64, cfg Config) (*Stroke, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("create stroke from zero points: %w", ErrInvalidArgument)
	}
	s, err := NewStroke(pool, col, width, cfg)
	if err != nil {
		return nil, err
	}
	if err := s.points.AppendSlice(pts); err != nil {
		s.points.Clear()
		return nil, fmt.Errorf("create stroke: %w", err)
	}
	if err := s.rebuild(); err != nil {
		s.points.Clear()
		return nil, err
	}
	return s, nil
}

// SetSink attaches a sink which is notified after every change.
// The current geometry is uploaded immediately.
func (s *Stroke) SetSink(sink Sink) error {
	s.sink = sink
	return s.upload()
}

// Len returns the number of points.
func (s *Stroke) Len() int {
	return s.points.Len()
}

// Points iterates over the points of the stroke.
func (s *Stroke) Points() iter.Seq2[int, vec.Vec2] {
	return s.points.All()
}

// Width returns the full stroke width.
func (s *Stroke) Width() float64 {
	return s.width
}

// Color returns the stroke color.
func (s *Stroke) Color() color.NRGBA {
	return s.color
}

// BoundingBox returns a rectangle containing all ink of the stroke.
// The rectangle is not necessarily tight.  The second return value is
// false for a stroke without points.
func (s *Stroke) BoundingBox() (rect.Rect, bool) {
	return s.box, s.hasBox
}

// Mesh returns the current geometry.  The caller must not modify it.
func (s *Stroke) Mesh() *Mesh {
	return &s.mesh
}

// AddPoint appends p to the stroke.
func (s *Stroke) AddPoint(p vec.Vec2) error {
	return s.Apply(Edit{Kind: EditAppend, Point: p})
}

// ChangeLast moves the most recent point to p.
func (s *Stroke) ChangeLast(p vec.Vec2) error {
	return s.Apply(Edit{Kind: EditReplaceLast, Point: p})
}

// Apply performs a single edit.  Either the edit succeeds completely, or
// the stroke is left unchanged and an error is returned.
func (s *Stroke) Apply(e Edit) error {
	var err error
	switch e.Kind {
	case EditAppend:
		err = s.appendPoint(e.Point)
	case EditReplaceLast:
		err = s.replaceLast(e.Point)
	default:
		err = fmt.Errorf("unknown edit %s: %w", e.Kind, ErrInvalidArgument)
	}
	if err != nil {
		Logger().Warn("stroke edit rejected",
			slog.String("edit", e.Kind.String()),
			slog.Int("points", s.points.Len()),
			slog.Any("error", err))
		return err
	}
	return s.upload()
}

func (s *Stroke) appendPoint(p vec.Vec2) error {
	n := s.points.Len()
	if n >= 2 {
		if err := s.checkTail(capVerts, slotIndices, 1); err != nil {
			return err
		}
	}
	if err := s.points.Append(p); err != nil {
		return fmt.Errorf("append point: %w", err)
	}

	m := &s.mesh
	switch n {
	case 0:
		m.Reset()
		m.emitDisc(p, s.width, s.cfg.DiscScale)
	case 1:
		m.Reset()
		m.emitStart(s.tail[2], p, s.width)
		m.emitEnd(s.tail[2], p, s.width)
	default:
		// the former last point becomes an interior join
		m.truncate(capVerts, slotIndices, 1)
		m.emitJoin(s.tail[1], s.tail[2], p, s.width, &s.cfg)
		m.emitEnd(s.tail[2], p, s.width)
	}

	s.tail[0], s.tail[1], s.tail[2] = s.tail[1], s.tail[2], p
	s.growBox(p)
	return nil
}

func (s *Stroke) replaceLast(p vec.Vec2) error {
	n := s.points.Len()
	if n == 0 {
		return fmt.Errorf("replace last point of empty stroke: %w", ErrInvalidArgument)
	}

	// With three or more points, the end cap and the join before it
	// depend on the last point.  The join is reclassified from the
	// tracked points to find out how much geometry it occupies.
	var joinV, joinC int
	if n >= 3 {
		old := classifyJoin(s.tail[0], s.tail[1], s.tail[2], s.cfg.MiterLimit, s.cfg.TangentEpsilon)
		joinV, joinC = joinUsage(old.corner)
		if err := s.checkTail(capVerts+joinV, 2*slotIndices, 1+joinC); err != nil {
			return err
		}
	}
	if err := s.points.SetLast(p); err != nil {
		return fmt.Errorf("replace last point: %w", err)
	}

	m := &s.mesh
	switch n {
	case 1:
		m.Reset()
		m.emitDisc(p, s.width, s.cfg.DiscScale)
	case 2:
		// the start cap depends on the only segment
		m.Reset()
		m.emitStart(s.tail[1], p, s.width)
		m.emitEnd(s.tail[1], p, s.width)
	default:
		m.truncate(capVerts+joinV, 2*slotIndices, 1+joinC)
		m.emitJoin(s.tail[0], s.tail[1], p, s.width, &s.cfg)
		m.emitEnd(s.tail[1], p, s.width)
	}

	s.tail[2] = p
	s.growBox(p)
	return nil
}

// checkTail verifies that the mesh holds at least the given trailing
// geometry, on top of the start cap.
func (s *Stroke) checkTail(verts, indices, corners int) error {
	nv, ni, nc := s.mesh.Counts()
	if nv < verts+capVerts || ni < indices || nc < corners+1 {
		return fmt.Errorf("retract %d/%d/%d from mesh with %d/%d/%d: %w",
			verts, indices, corners, nv, ni, nc, ErrInconsistentState)
	}
	return nil
}

// Clear removes all points and geometry.  The point blocks are returned
// to the pool; the geometry buffers are kept for reuse.
func (s *Stroke) Clear() error {
	s.points.Clear()
	s.mesh.Reset()
	s.box = rect.Rect{}
	s.hasBox = false
	s.tail = [3]vec.Vec2{}
	return s.upload()
}

// Reinit changes color and width of an empty stroke, for reusing it
// after [Stroke.Clear].  A stroke which still has points is left
// unchanged and ErrInvalidArgument is returned; use [Stroke.Update] to
// regenerate its geometry for a new width.
func (s *Stroke) Reinit(col color.NRGBA, width float64) error {
	if n := s.points.Len(); n > 0 {
		return fmt.Errorf("reinit stroke with %d points: %w", n, ErrInvalidArgument)
	}
	if err := checkWidth(width); err != nil {
		return err
	}
	s.color = col
	s.width = width
	return nil
}

// Update changes color and width and rebuilds the geometry from all
// points.
func (s *Stroke) Update(col color.NRGBA, width float64) error {
	if s.points.Len() == 0 {
		return fmt.Errorf("update empty stroke: %w", ErrInvalidArgument)
	}
	if err := checkWidth(width); err != nil {
		return err
	}
	oldCol, oldWidth := s.color, s.width
	s.color, s.width = col, width
	if err := s.rebuild(); err != nil {
		s.color, s.width = oldCol, oldWidth
		return err
	}
	return s.upload()
}

// Release returns all point blocks to the pool and tells the sink to
// free its resources.  The stroke must not be used afterwards.
func (s *Stroke) Release() {
	s.points.Clear()
	s.mesh = Mesh{}
	s.spare = Mesh{}
	s.hasBox = false
	if s.sink != nil {
		s.sink.Release(s)
		s.sink = nil
	}
}

// rebuild regenerates the geometry, bounding box and tail from the
// stored points.  The current geometry is only replaced on success.
func (s *Stroke) rebuild() error {
	n := s.points.Len()
	cur := s.points.Cursor()

	var tail [3]vec.Vec2
	box, hasBox := rect.Rect{}, false
	hw := s.width / 2
	next := func() (vec.Vec2, bool) {
		p, ok := cur.Next()
		if ok {
			tail[0], tail[1], tail[2] = tail[1], tail[2], p
			box, hasBox = extendBox(box, hasBox, p, hw)
		}
		return p, ok
	}

	Logger().Debug("rebuild stroke geometry", slog.Int("points", n))
	if err := s.spare.build(next, n, s.width, &s.cfg); err != nil {
		return err
	}
	s.mesh, s.spare = s.spare, s.mesh
	s.tail = tail
	s.box, s.hasBox = box, hasBox
	return nil
}

func (s *Stroke) growBox(p vec.Vec2) {
	s.box, s.hasBox = extendBox(s.box, s.hasBox, p, s.width/2)
}

// extendBox returns the smallest rectangle containing box (if valid) and
// the square of half-size r around p.
func extendBox(box rect.Rect, valid bool, p vec.Vec2, r float64) (rect.Rect, bool) {
	q := rect.Rect{LLx: p.X - r, LLy: p.Y - r, URx: p.X + r, URy: p.Y + r}
	if !valid {
		return q, true
	}
	box.LLx = min(box.LLx, q.LLx)
	box.LLy = min(box.LLy, q.LLy)
	box.URx = max(box.URx, q.URx)
	box.URy = max(box.URy, q.URy)
	return box, true
}

func (s *Stroke) upload() error {
	if s.sink == nil {
		return nil
	}
	if err := s.sink.Upload(s); err != nil {
		return fmt.Errorf("upload stroke geometry: %w", err)
	}
	return nil
}

// Validate recomputes the expected vertex, index and corner counts from
// the points alone and compares them with the current geometry.
func (s *Stroke) Validate() error {
	wantV, wantI, wantC := expectedCounts(s.points.Cursor(), s.points.Len(), &s.cfg)
	nv, ni, nc := s.mesh.Counts()
	if nv != wantV || ni != wantI || nc != wantC {
		return fmt.Errorf("mesh has %d/%d/%d verts/indices/corners, points imply %d/%d/%d: %w",
			nv, ni, nc, wantV, wantI, wantC, ErrInconsistentState)
	}
	return nil
}

// expectedCounts returns the geometry sizes of a stroke through the n
// points delivered by cur.
func expectedCounts(cur points.Cursor, n int, cfg *Config) (verts, indices, corners int) {
	switch n {
	case 0:
		return 0, 0, 0
	case 1:
		return 0, 0, discCorners
	}
	verts, indices, corners = 2*capVerts, (n-1)*slotIndices, 2
	p0, _ := cur.Next()
	p1, _ := cur.Next()
	for p2, ok := cur.Next(); ok; p2, ok = cur.Next() {
		j := classifyJoin(p0, p1, p2, cfg.MiterLimit, cfg.TangentEpsilon)
		v, c := joinUsage(j.corner)
		verts += v
		corners += c
		p0, p1 = p1, p2
	}
	return verts, indices, corners
}
