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

// Package shader contains the GPU programs which draw stroke geometry,
// together with the buffer layouts they expect.
//
// Segments are drawn with [SegmentWGSL] as an indexed triangle list over
// the vertex buffer.  Corner patches are drawn with [CornerWGSL] as an
// instanced triangle strip of [CornerStripVertices] vertices, one
// instance per corner.  Both programs read [Uniforms] from group 0,
// binding 0.
package shader

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/naga"
)

// SegmentWGSL is the WGSL source of the segment program.
//
//go:embed shaders/segment.wgsl
var SegmentWGSL string

// CornerWGSL is the WGSL source of the corner program.
//
//go:embed shaders/corner.wgsl
var CornerWGSL string

// Entry points of both programs.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// ErrUnsupported is returned by [Compile] when the WGSL compiler lacks a
// feature the program needs.
var ErrUnsupported = errors.New("shader: compiler feature not supported")

// Compile translates a WGSL program to SPIR-V.
func Compile(src string) ([]byte, error) {
	spirv, err := naga.Compile(src)
	if err != nil {
		msg := err.Error()
		if strings.Contains(msg, "not yet implemented") || strings.Contains(msg, "not supported") {
			return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
		}
		return nil, fmt.Errorf("compile WGSL: %w", err)
	}
	if len(spirv) < 4 || len(spirv)%4 != 0 {
		return nil, fmt.Errorf("compile WGSL: invalid SPIR-V size %d", len(spirv))
	}
	return spirv, nil
}
