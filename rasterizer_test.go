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
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

type emittedRow struct {
	y     int
	spans []Span
}

func collectRows(fill func(emit func(y int, spans []Span))) []emittedRow {
	var rows []emittedRow
	fill(func(y int, spans []Span) {
		rows = append(rows, emittedRow{y: y, spans: slices.Clone(spans)})
	})
	return rows
}

func fillPathMask(r *Rasterizer, spec CanvasSpec, p *path.Data, rule FillRule) *Mask {
	m := NewMask(spec)
	r.FillPath(p, rule, func(y int, spans []Span) {
		for _, s := range spans {
			m.PaintSpan(y, s.X0, s.X1)
		}
	})
	return m
}

func rectPath(p *path.Data, x0, y0, x1, y1 float64) *path.Data {
	return p.MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func TestRasterizerEmitContract(t *testing.T) {
	spec := CanvasSpec{Width: 30, Height: 20}
	poly, err := FromCoords([]float64{0, 0, 20, 0, 3, 15, 13, 3, 8, 3, 18, 15})
	require.NoError(t, err)

	for _, rule := range []FillRule{NonZero, EvenOdd} {
		r := NewRasterizer(spec)
		rows := collectRows(func(emit func(int, []Span)) {
			r.Fill(poly, rule, emit)
		})
		require.NotEmpty(t, rows)

		prevY := -1
		for _, row := range rows {
			require.Greater(t, row.y, prevY)
			require.Less(t, row.y, spec.Height)
			prevY = row.y

			require.NotEmpty(t, row.spans)
			prevX := -1
			for _, s := range row.spans {
				require.GreaterOrEqual(t, s.X0, 0)
				require.Less(t, s.X0, s.X1)
				require.LessOrEqual(t, s.X1, spec.Width)
				require.GreaterOrEqual(t, s.X0, prevX)
				prevX = s.X1
			}
		}
	}
}

func TestRasterizerFillVariants(t *testing.T) {
	spec := CanvasSpec{Width: 30, Height: 20}
	poly, err := FromCoords([]float64{0, 0, 20, 0, 3, 15, 13, 3, 8, 3, 18, 15})
	require.NoError(t, err)
	r := NewRasterizer(spec)

	nz := collectRows(func(emit func(int, []Span)) { r.FillNonZero(poly, emit) })
	require.Equal(t, nz, collectRows(func(emit func(int, []Span)) { r.Fill(poly, NonZero, emit) }))

	eo := collectRows(func(emit func(int, []Span)) { r.FillEvenOdd(poly, emit) })
	require.Equal(t, eo, collectRows(func(emit func(int, []Span)) { r.Fill(poly, EvenOdd, emit) }))

	require.NotEqual(t, nz, eo)

	m := NewMask(spec)
	r.Paint(m, poly, NonZero)
	require.Equal(t, Interior(poly, spec, NonZero), m)
}

func TestRasterizerCTM(t *testing.T) {
	spec := CanvasSpec{Width: 20, Height: 20}
	poly := NewPolygon(Pt(0.0, 0.0), Pt(4.0, 0.0), Pt(4.0, 5.0), Pt(0.0, 5.0))

	r := NewRasterizer(spec)
	r.CTM = matrix.Matrix{2, 0, 0, 2, 3, 1}
	m := NewMask(spec)
	r.Paint(m, poly, NonZero)

	require.Equal(t, 80, m.Count())
	require.True(t, m.At(3, 1))
	require.True(t, m.At(10, 10))
	require.False(t, m.At(11, 5))
	require.False(t, m.At(5, 11))

	require.Equal(t, Interior(poly.Transform(r.CTM), spec, NonZero), m)
}

func TestRasterizerReset(t *testing.T) {
	poly := NewPolygon(Pt(-5.0, -5.0), Pt(50.0, -5.0), Pt(50.0, 50.0), Pt(-5.0, 50.0))
	r := NewRasterizer(CanvasSpec{Width: 8, Height: 10})

	rows := collectRows(func(emit func(int, []Span)) { r.FillNonZero(poly, emit) })
	require.Len(t, rows, 10)
	require.Equal(t, []Span{{0, 8}}, rows[9].spans)

	r.Reset(CanvasSpec{Width: 16, Height: 4})
	rows = collectRows(func(emit func(int, []Span)) { r.FillNonZero(poly, emit) })
	require.Len(t, rows, 4)
	require.Equal(t, []Span{{0, 16}}, rows[0].spans)

	r.Reset(CanvasSpec{Width: -3, Height: 4})
	rows = collectRows(func(emit func(int, []Span)) { r.FillNonZero(poly, emit) })
	require.Empty(t, rows)
}

func TestFillPathHoles(t *testing.T) {
	spec := CanvasSpec{Width: 20, Height: 20}
	r := NewRasterizer(spec)

	// inner rectangle traversed in the opposite direction
	p := rectPath(&path.Data{}, 2, 2, 18, 18)
	p = p.MoveTo(vec.Vec2{X: 6, Y: 6}).
		LineTo(vec.Vec2{X: 6, Y: 14}).
		LineTo(vec.Vec2{X: 14, Y: 14}).
		LineTo(vec.Vec2{X: 14, Y: 6}).
		Close()
	require.Equal(t, 256-64, fillPathMask(r, spec, p, NonZero).Count())
	require.Equal(t, 256-64, fillPathMask(r, spec, p, EvenOdd).Count())

	// both rectangles in the same direction
	q := rectPath(rectPath(&path.Data{}, 2, 2, 18, 18), 6, 6, 14, 14)
	require.Equal(t, 256, fillPathMask(r, spec, q, NonZero).Count())
	m := fillPathMask(r, spec, q, EvenOdd)
	require.Equal(t, 256-64, m.Count())
	require.False(t, m.At(10, 10))
	require.True(t, m.At(3, 10))
}

func TestFillPathOpenSubpaths(t *testing.T) {
	spec := CanvasSpec{Width: 30, Height: 12}
	r := NewRasterizer(spec)

	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 8, Y: 0}).
		LineTo(vec.Vec2{X: 8, Y: 10}).
		MoveTo(vec.Vec2{X: 12, Y: 1}).
		LineTo(vec.Vec2{X: 25, Y: 1}).
		LineTo(vec.Vec2{X: 25, Y: 11}).
		LineTo(vec.Vec2{X: 12, Y: 11})
	got := fillPathMask(r, spec, p, NonZero)

	triangle := NewPolygon(Pt(0.0, 0.0), Pt(8.0, 0.0), Pt(8.0, 10.0))
	want := Interior(triangle, spec, NonZero)
	r.Paint(want, NewPolygon(Pt(12.0, 1.0), Pt(25.0, 1.0), Pt(25.0, 11.0), Pt(12.0, 11.0)), NonZero)

	require.Equal(t, want, got)
}

func TestFillPathCurves(t *testing.T) {
	spec := CanvasSpec{Width: 50, Height: 50}
	r := NewRasterizer(spec)
	circle := addCircleToPath(&path.Data{}, 25, 25, 20, true)

	area := float64(fillPathMask(r, spec, circle, NonZero).Count())
	require.InDelta(t, math.Pi*20*20, area, 30)

	// With a very coarse tolerance every quarter circle becomes a single
	// line segment.
	r.Flatness = 100
	area = float64(fillPathMask(r, spec, circle, NonZero).Count())
	require.InDelta(t, 2*20*20, area, 30)

	// quadratic curves
	r.Flatness = defaultFlatness
	q := (&path.Data{}).
		MoveTo(vec.Vec2{X: 5, Y: 45}).
		QuadTo(vec.Vec2{X: 25, Y: -35}, vec.Vec2{X: 45, Y: 45}).
		Close()
	// The parabola reaches y = 5 at its apex; the area between the
	// parabola and the chord is 2/3 of the bounding rectangle.
	area = float64(fillPathMask(r, spec, q, EvenOdd).Count())
	require.InDelta(t, 2.0/3.0*40*40, area, 30)
}

func TestFillPathEmpty(t *testing.T) {
	spec := CanvasSpec{Width: 10, Height: 10}
	r := NewRasterizer(spec)
	rows := collectRows(func(emit func(int, []Span)) {
		r.FillPath(&path.Data{}, NonZero, emit)
	})
	require.Empty(t, rows)

	// a move without any lines
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 3, Y: 3})
	rows = collectRows(func(emit func(int, []Span)) {
		r.FillPath(p, NonZero, emit)
	})
	require.Empty(t, rows)
}
