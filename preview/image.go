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

package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"slices"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/sketch"
)

// minDiscSegments is the smallest number of edges used for a disc.
const minDiscSegments = 8

// Image is a software render target for strokes.  It implements
// [sketch.Sink]: strokes attached to it are redrawn whenever their
// geometry changes.
type Image struct {
	// Flatness is the maximum distance, in pixels, between a disc and
	// the polygon used to draw it.
	Flatness float64

	m       matrix.Matrix
	dst     *image.Alpha
	ras     *vector.Rasterizer
	strokes []*sketch.Stroke
}

var _ sketch.Sink = (*Image)(nil)

// NewImage allocates a w×h image.  The matrix m maps world coordinates
// to pixel coordinates, see [View.Matrix].
func NewImage(w, h int, m matrix.Matrix) *Image {
	return &Image{
		Flatness: 0.25,
		m:        m,
		dst:      image.NewAlpha(image.Rect(0, 0, w, h)),
		ras:      vector.NewRasterizer(w, h),
	}
}

// Image returns the rendered coverage mask.
func (im *Image) Image() *image.Alpha {
	return im.dst
}

// SetMatrix changes the world-to-pixel transformation and redraws all
// attached strokes.
func (im *Image) SetMatrix(m matrix.Matrix) {
	im.m = m
	im.redraw()
}

// Upload attaches s to the image, if needed, and redraws.
func (im *Image) Upload(s *sketch.Stroke) error {
	if !slices.Contains(im.strokes, s) {
		im.strokes = append(im.strokes, s)
	}
	im.redraw()
	return nil
}

// Release detaches s from the image and redraws.
func (im *Image) Release(s *sketch.Stroke) {
	im.strokes = slices.DeleteFunc(im.strokes, func(t *sketch.Stroke) bool {
		return t == s
	})
	im.redraw()
}

// Clear erases the image.  Attached strokes stay attached.
func (im *Image) Clear() {
	clear(im.dst.Pix)
}

func (im *Image) redraw() {
	im.Clear()
	for _, s := range im.strokes {
		im.Draw(s)
	}
}

// Draw paints the stroke s on top of the current image contents.
func (im *Image) Draw(s *sketch.Stroke) {
	if s.Len() == 0 {
		return
	}
	alpha := s.Color().A
	im.DrawMesh(s.Mesh(), color.Alpha{A: alpha})
}

// DrawMesh paints the geometry m with the given coverage.
func (im *Image) DrawMesh(m *sketch.Mesh, col color.Alpha) {
	b := im.dst.Bounds()
	im.ras.Reset(b.Dx(), b.Dy())
	im.ras.DrawOp = draw.Over

	n := uint32(len(m.Verts))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if i0 >= n || i1 >= n || i2 >= n {
			continue
		}
		im.addTriangle(m.Verts[i0], m.Verts[i1], m.Verts[i2])
	}
	for _, c := range m.Corners {
		im.addDisc(c.P1, c.Width/2)
	}

	im.ras.Draw(im.dst, b, image.NewUniform(col), image.Point{})
}

// addTriangle adds a triangle to the rasterizer path, with positive
// orientation so that overlapping pieces do not cancel.
func (im *Image) addTriangle(v0, v1, v2 sketch.Vertex) {
	x0, y0 := im.pixel(v0.X, v0.Y)
	x1, y1 := im.pixel(v1.X, v1.Y)
	x2, y2 := im.pixel(v2.X, v2.Y)

	area := (x1-x0)*(y2-y0) - (y1-y0)*(x2-x0)
	if area == 0 {
		return
	}
	if area < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	im.ras.MoveTo(x0, y0)
	im.ras.LineTo(x1, y1)
	im.ras.LineTo(x2, y2)
	im.ras.ClosePath()
}

// addDisc adds a polygonal disc of world radius r around p.
func (im *Image) addDisc(p [2]float32, r float32) {
	cx, cy := im.pixel(p[0], p[1])
	pr := r * float32(scale(im.m))
	if !(pr > 0) {
		return
	}

	// A chord spanning the angle θ deviates from the circle by
	// r(1 - cos(θ/2)).
	n := minDiscSegments
	if flat := float32(im.Flatness); flat > 0 && flat < pr {
		step := 2 * math32.Acos(1-flat/pr)
		n = max(n, int(math32.Ceil(2*math32.Pi/step)))
	}

	im.ras.MoveTo(cx+pr, cy)
	for i := 1; i < n; i++ {
		sin, cos := math32.Sincos(2 * math32.Pi * float32(i) / float32(n))
		im.ras.LineTo(cx+pr*cos, cy+pr*sin)
	}
	im.ras.ClosePath()
}

func (im *Image) pixel(x, y float32) (float32, float32) {
	px, py := apply(im.m, float64(x), float64(y))
	return float32(px), float32(py)
}

// WritePNG encodes the image as a grayscale PNG.
func (im *Image) WritePNG(w io.Writer) error {
	return png.Encode(w, im.dst)
}
