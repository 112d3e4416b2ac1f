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

package shader

import (
	"encoding/binary"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/sketch"
)

// Buffers holds the encoded GPU buffer contents of one stroke.  It
// implements [sketch.Sink], so that the contents follow every change of
// the stroke.  A renderer copies the byte slices into GPU buffers with
// the usages [VertexBufferUsage], [IndexBufferUsage] and
// [InstanceBufferUsage].
//
// The slices are reused between uploads; their contents are only valid
// until the next upload.
type Buffers struct {
	Vertices  []byte // VertexStride bytes per vertex
	Indices   []byte // little-endian uint32
	Instances []byte // CornerStride bytes per corner

	// Generation counts the uploads received.  A renderer can compare it
	// with the generation it copied last.
	Generation uint64
}

var _ sketch.Sink = (*Buffers)(nil)

// Upload encodes the current geometry of s.
func (b *Buffers) Upload(s *sketch.Stroke) error {
	b.Encode(s.Mesh())
	return nil
}

// Release drops the encoded data.
func (b *Buffers) Release(*sketch.Stroke) {
	b.Vertices = nil
	b.Indices = nil
	b.Instances = nil
}

// Encode replaces the buffer contents by the geometry m.
func (b *Buffers) Encode(m *sketch.Mesh) {
	b.Vertices = b.Vertices[:0]
	for _, v := range m.Verts {
		b.Vertices = appendFloats(b.Vertices, v.X, v.Y)
	}

	b.Indices = b.Indices[:0]
	for _, idx := range m.Indices {
		b.Indices = binary.LittleEndian.AppendUint32(b.Indices, idx)
	}

	b.Instances = b.Instances[:0]
	for _, c := range m.Corners {
		b.Instances = appendFloats(b.Instances,
			c.P0[0], c.P0[1], c.P1[0], c.P1[1], c.P2[0], c.P2[1], c.Width)
	}

	b.Generation++
}

// IndexCount returns the number of indices to draw.
func (b *Buffers) IndexCount() uint32 {
	return uint32(len(b.Indices) / IndexSize)
}

// InstanceCount returns the number of corner instances to draw.
func (b *Buffers) InstanceCount() uint32 {
	return uint32(len(b.Instances) / CornerStride)
}

func appendFloats(buf []byte, xs ...float32) []byte {
	for _, x := range xs {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(x))
	}
	return buf
}

// Uniforms are the per-stroke parameters shared by both programs.
type Uniforms struct {
	View      matrix.Matrix // world to pixel coordinates, origin top-left
	Width     int           // target width in pixels
	Height    int           // target height in pixels
	Color     color.NRGBA
	LineWidth float64 // full stroke width in world units
}

// Bytes encodes u in the WGSL uniform layout, UniformSize bytes.
func (u Uniforms) Bytes() []byte {
	clip := u.ClipMatrix()

	buf := make([]byte, 0, UniformSize)
	// mat3x3<f32>: three columns, each padded to 16 bytes
	buf = appendFloats(buf, float32(clip[0]), float32(clip[1]), 0, 0)
	buf = appendFloats(buf, float32(clip[2]), float32(clip[3]), 0, 0)
	buf = appendFloats(buf, float32(clip[4]), float32(clip[5]), 1, 0)
	buf = appendFloats(buf,
		float32(u.Color.R)/255, float32(u.Color.G)/255,
		float32(u.Color.B)/255, float32(u.Color.A)/255)
	buf = appendFloats(buf,
		float32(u.Width), float32(u.Height),
		float32(u.LineWidth), float32(u.DisplayWidth()))
	return buf
}

// ClipMatrix returns the transformation from world coordinates to
// normalized device coordinates.
func (u Uniforms) ClipMatrix() matrix.Matrix {
	sx := 2 / float64(max(u.Width, 1))
	sy := -2 / float64(max(u.Height, 1))
	m := u.View
	return matrix.Matrix{
		sx * m[0], sy * m[1],
		sx * m[2], sy * m[3],
		sx*m[4] - 1, sy*m[5] + 1,
	}
}

// DisplayWidth returns the stroke width in pixels.
func (u Uniforms) DisplayWidth() float64 {
	m := u.View
	return u.LineWidth * max(math.Hypot(m[0], m[1]), math.Hypot(m[2], m[3]))
}
