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

// Package sketch builds render-ready geometry for freehand pen strokes.
//
// A [Stroke] stores its centre line in a block-structured point store and
// keeps a triangle mesh plus a list of round corner patches up to date as
// points are appended or the last point is moved.  Appending touches only
// the tail of the geometry; everything else is rebuilt from the points.
//
// A [Canvas] groups strokes which share one block pool and turns pen and
// eraser input into stroke edits.  Rendering is left to a [Sink]; the
// preview and shader subpackages provide a software rasterizer and the
// GPU side respectively.
package sketch

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
