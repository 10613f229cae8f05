// seehuhn.de/go/polyfill - scan-line polygon filling
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

package polyfill

import "image"

// CanvasSpec gives the size of an output surface in pixels.
type CanvasSpec struct {
	Width, Height int
}

// IsEmpty reports whether the canvas has no pixels.
func (s CanvasSpec) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// SpanPainter is implemented by output surfaces.
// PaintSpan marks the pixels x0, ..., x1-1 in row y as interior.
type SpanPainter interface {
	PaintSpan(y, x0, x1 int)
}

// Mask records which pixels of a canvas are inside a shape.
type Mask struct {
	Width, Height int

	// Pix holds one entry per pixel, in row-major order.
	Pix []bool
}

// NewMask returns an all-false mask of the given size.
// Canvases with non-positive width or height give an empty mask.
func NewMask(spec CanvasSpec) *Mask {
	if spec.IsEmpty() {
		return &Mask{}
	}
	return &Mask{
		Width:  spec.Width,
		Height: spec.Height,
		Pix:    make([]bool, spec.Width*spec.Height),
	}
}

// At reports whether pixel (x, y) is marked.
// Pixels outside the mask are never marked.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.Pix[y*m.Width+x]
}

// PaintSpan implements the [SpanPainter] interface.
func (m *Mask) PaintSpan(y, x0, x1 int) {
	row := m.Pix[y*m.Width : (y+1)*m.Width]
	for x := x0; x < x1; x++ {
		row[x] = true
	}
}

// Count returns the number of marked pixels.
func (m *Mask) Count() int {
	n := 0
	for _, in := range m.Pix {
		if in {
			n++
		}
	}
	return n
}

// Alpha converts the mask into an image, with marked pixels opaque.
func (m *Mask) Alpha() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, m.Width, m.Height))
	for y := range m.Height {
		row := img.Pix[y*img.Stride:]
		for x := range m.Width {
			if m.Pix[y*m.Width+x] {
				row[x] = 0xFF
			}
		}
	}
	return img
}

// Interior computes which pixels of a canvas lie inside the polygon.
// Pixel (x, y) is inside, if its centre (x+0.5, y+0.5) is inside.
func Interior[T Number](poly Polygon[T], spec CanvasSpec, rule FillRule) *Mask {
	m := NewMask(spec)
	if spec.IsEmpty() {
		return m
	}
	r := NewRasterizer(spec)
	r.Paint(m, poly.Float64(), rule)
	return m
}
