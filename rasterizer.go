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
	"context"
	"log/slog"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Rasterizer determines which pixels of a canvas lie inside a polygon.
// Pixel (x, y) is inside, if its centre (x+0.5, y+0.5) is inside.
//
// Create one instance and reuse it for multiple polygons. Internal buffers
// grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps polygon coordinates to device pixels.
	// Must be non-singular.
	CTM matrix.Matrix

	// Flatness controls curve approximation accuracy in device pixels,
	// for paths passed to FillPath. Must be positive.
	Flatness float64

	width, height int

	lines     []Line[float64] // edges of the current shape, in sample space
	net       edgeTable
	aet       activeEdgeTable
	crossings []crossing
	spans     []Span
}

// NewRasterizer returns a Rasterizer for a canvas of the given size.
func NewRasterizer(spec CanvasSpec) *Rasterizer {
	r := &Rasterizer{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
		net:      make(edgeTable),
	}
	r.Reset(spec)
	return r
}

// Reset changes the canvas size. The CTM and Flatness are left unchanged.
func (r *Rasterizer) Reset(spec CanvasSpec) {
	r.width = max(spec.Width, 0)
	r.height = max(spec.Height, 0)
}

// FillNonZero fills the polygon using the non-zero winding rule.
// The emit callback is called once for every row which has interior
// pixels, from top to bottom. The spans are sorted by x and do not
// overlap. The slice is valid only during the call.
func (r *Rasterizer) FillNonZero(poly Polygon[float64], emit func(y int, spans []Span)) {
	r.Fill(poly, NonZero, emit)
}

// FillEvenOdd fills the polygon using the even-odd rule.
// See FillNonZero for the semantics of emit.
func (r *Rasterizer) FillEvenOdd(poly Polygon[float64], emit func(y int, spans []Span)) {
	r.Fill(poly, EvenOdd, emit)
}

// Fill fills the polygon using the given fill rule.
// See FillNonZero for the semantics of emit.
func (r *Rasterizer) Fill(poly Polygon[float64], rule FillRule, emit func(y int, spans []Span)) {
	if logger := Logger(); logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("fill polygon", "vertices", len(poly.Vertices), "bbox", poly.BBox())
	}

	r.lines = r.lines[:0]
	for l := range poly.Edges() {
		r.addLine(l.Start, l.End)
	}
	r.sweep(rule, emit)
}

// Paint fills the polygon into dst.
func (r *Rasterizer) Paint(dst SpanPainter, poly Polygon[float64], rule FillRule) {
	r.Fill(poly, rule, func(y int, spans []Span) {
		for _, s := range spans {
			dst.PaintSpan(y, s.X0, s.X1)
		}
	})
}

// FillPath fills a path. All subpaths contribute to the same winding count,
// so that holes can be formed by subpaths with opposite orientation. Open
// subpaths are closed implicitly. Curves are flattened into line segments.
// See FillNonZero for the semantics of emit.
func (r *Rasterizer) FillPath(p *path.Data, rule FillRule, emit func(y int, spans []Span)) {
	r.collectPathLines(p)
	r.sweep(rule, emit)
}

// addLine adds an edge given in polygon coordinates.
// The end points are mapped to device space using the CTM, and then
// moved by half a pixel so that integer coordinates in sample space
// correspond to pixel centres.
func (r *Rasterizer) addLine(p0, p1 Point[float64]) {
	q0 := transformPoint(r.CTM, p0.X, p0.Y)
	q1 := transformPoint(r.CTM, p1.X, p1.Y)
	r.lines = append(r.lines, Line[float64]{
		Start: Point[float64]{X: q0.X - 0.5, Y: q0.Y - 0.5},
		End:   Point[float64]{X: q1.X - 0.5, Y: q1.Y - 0.5},
	})
}

func (r *Rasterizer) addVecLine(p0, p1 vec.Vec2) {
	r.addLine(PointFromVec2(p0), PointFromVec2(p1))
}

// collectPathLines walks the path and converts all segments to lines.
func (r *Rasterizer) collectPathLines(p *path.Data) {
	r.lines = r.lines[:0]

	var current vec.Vec2 // current point
	var subpath vec.Vec2 // subpath start
	closeSubpath := func() {
		if current != subpath {
			r.addVecLine(current, subpath)
		}
		current = subpath
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			r.addVecLine(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], r.addVecLine)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], r.addVecLine)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()
}

// sweep runs the scan-line algorithm over the lines collected in r.lines.
func (r *Rasterizer) sweep(rule FillRule, emit func(y int, spans []Span)) {
	if r.width == 0 || r.height == 0 {
		return
	}
	if r.net == nil {
		r.net = make(edgeTable)
	}

	first, last, n := r.net.build(slices.Values(r.lines), r.height)
	Logger().Debug("fill", "rule", rule, "lines", len(r.lines), "edges", n,
		"rows", last-first+1)
	if n == 0 {
		return
	}

	r.aet.reset()
	for y := first; y <= last; y++ {
		r.aet.step(y, r.net[y])
		if r.aet.isEmpty() {
			continue
		}

		r.crossings = r.aet.crossings(r.crossings[:0], rule)
		r.spans = rule.spans(r.spans[:0], r.crossings, r.width)
		if len(r.spans) > 0 {
			emit(y, r.spans)
		}
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	n := 1
	if errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)) // P0 - 2*P1 + P2
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * r.Flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// defaultFlatness is the default curve flattening tolerance in device
// pixels.
const defaultFlatness = 0.25
