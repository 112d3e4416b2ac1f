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

import "github.com/gogpu/gputypes"

// Buffer strides in bytes.
const (
	VertexStride = 8  // x, y
	CornerStride = 28 // p0, p1, p2, width
	IndexSize    = 4  // uint32
	UniformSize  = 80
)

// CornerStripVertices is the number of vertices of one corner patch.
const CornerStripVertices = 5

// Buffer usages.
const (
	VertexBufferUsage   = gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	IndexBufferUsage    = gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst
	InstanceBufferUsage = gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	UniformBufferUsage  = gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst
)

// Primitive topologies of the two programs.
const (
	SegmentTopology = gputypes.PrimitiveTopologyTriangleList
	CornerTopology  = gputypes.PrimitiveTopologyTriangleStrip
)

// SegmentLayout returns the vertex buffer layout of the segment program.
func SegmentLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			},
		},
	}
}

// CornerLayout returns the instance buffer layout of the corner program.
func CornerLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: CornerStride,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // p0
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // p1
				{Format: gputypes.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 2}, // p2
				{Format: gputypes.VertexFormatFloat32, Offset: 24, ShaderLocation: 3},   // width
			},
		},
	}
}
