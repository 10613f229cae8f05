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

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// linearRGBA is a premultiplied colour in linear sRGB space.
type linearRGBA struct {
	R, G, B, A float64
}

// toLinear decodes an sRGB colour into premultiplied linear form.
func toLinear(c color.Color) linearRGBA {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return linearRGBA{}
	}
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.LinearRgb()
	alpha := float64(a) / 0xFFFF
	return linearRGBA{R: r * alpha, G: g * alpha, B: b * alpha, A: alpha}
}

// toRGBA encodes a premultiplied linear colour as 8-bit premultiplied sRGB.
func (c linearRGBA) toRGBA() color.RGBA {
	if c.A <= 0 {
		return color.RGBA{}
	}
	a := min(c.A, 1)
	s := colorful.LinearRgb(c.R/c.A, c.G/c.A, c.B/c.A).Clamped()
	return color.RGBA{
		R: quantize(s.R * a),
		G: quantize(s.G * a),
		B: quantize(s.B * a),
		A: quantize(a),
	}
}

func quantize(v float64) uint8 {
	return uint8(v*255 + 0.5)
}

// multiply composites src over dst using the multiply blend mode.
// Both colours are premultiplied:
//
//	o = s·d + s·(1-αd) + d·(1-αs)
//	αo = αs + αd - αs·αd
func multiply(src, dst linearRGBA) linearRGBA {
	ch := func(s, d float64) float64 {
		return s*d + s*(1-dst.A) + d*(1-src.A)
	}
	return linearRGBA{
		R: ch(src.R, dst.R),
		G: ch(src.G, dst.G),
		B: ch(src.B, dst.B),
		A: src.A + dst.A - src.A*dst.A,
	}
}

// RGBAPainter blends a fill colour into the painted pixels of an image.
// The colour is combined with the existing pixel using the multiply blend
// mode in linear sRGB space.
type RGBAPainter struct {
	dst  *image.RGBA
	fill linearRGBA

	// the most recent background colour and its blended result
	lastIn, lastOut color.RGBA
	haveLast        bool
}

// NewRGBAPainter returns a painter which blends c into dst.
func NewRGBAPainter(dst *image.RGBA, c color.Color) *RGBAPainter {
	return &RGBAPainter{
		dst:  dst,
		fill: toLinear(c),
	}
}

// PaintSpan implements the [SpanPainter] interface.
// Coordinates are relative to the top-left corner of the image bounds.
func (p *RGBAPainter) PaintSpan(y, x0, x1 int) {
	if p.fill.A == 0 {
		return
	}
	b := p.dst.Bounds()
	for x := x0; x < x1; x++ {
		px, py := b.Min.X+x, b.Min.Y+y
		bg := p.dst.RGBAAt(px, py)
		p.dst.SetRGBA(px, py, p.blend(bg))
	}
}

func (p *RGBAPainter) blend(bg color.RGBA) color.RGBA {
	if p.haveLast && bg == p.lastIn {
		return p.lastOut
	}
	out := multiply(p.fill, toLinear(bg)).toRGBA()
	p.lastIn, p.lastOut, p.haveLast = bg, out, true
	return out
}

// FillRGBA fills the polygon into dst, blending c into every interior
// pixel. Polygon coordinates are relative to the top-left corner of the
// image bounds.
//
// Fills onto the same image are not commutative in general. Callers
// which composite several polygons must apply them in a fixed order.
func FillRGBA[T Number](dst *image.RGBA, poly Polygon[T], c color.Color, rule FillRule) {
	b := dst.Bounds()
	spec := CanvasSpec{Width: b.Dx(), Height: b.Dy()}
	if spec.IsEmpty() {
		return
	}
	r := NewRasterizer(spec)
	r.Paint(NewRGBAPainter(dst, c), poly.Float64(), rule)
}
