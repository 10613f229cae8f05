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


package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var largeCases = []TestCase{
	{
		Name:   "large_star_polygon",
		Path:   starPolygon(256, 256, 240, 37, 16),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_star_polygon_evenodd",
		Path:   starPolygon(256, 256, 240, 37, 16),
		Width:  512,
		Height: 512,
		Rule:   EvenOdd,
	},
	{
		Name:   "large_nested_rings",
		Path:   nestedSquares(256, 256, 230, 150, 110, 40),
		Width:  512,
		Height: 512,
		Rule:   EvenOdd,
	},
	{
		Name:   "large_wide",
		Path:   polygon(3, 40, 1997, 10, 1990, 90, 12, 70),
		Width:  2000,
		Height: 100,
		Rule:   NonZero,
	},
	{
		Name:   "large_triangle_mesh",
		Path:   triangleMesh(12, 12, 512, 512),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		// extends beyond all four sides of the canvas
		Name:   "large_clipped",
		Path:   polygon(-100, 100, 256, -300, 612, 400, 256, 900),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
}

// starPolygon connects n points on a circle, jumping forward by step
// points each time. For step > 1 the edges cross each other.
func starPolygon(cx, cy, r float64, n, step int) *path.Data {
	p := &path.Data{}
	for i := range n {
		phi := 2 * math.Pi * float64(i*step%n) / float64(n)
		v := pt(cx+r*math.Sin(phi), cy-r*math.Cos(phi))
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// nestedSquares returns concentric squares with the given half-widths,
// all with the same orientation.
func nestedSquares(cx, cy float64, sizes ...float64) *path.Data {
	p := &path.Data{}
	for _, s := range sizes {
		p = p.MoveTo(pt(cx-s, cy-s)).
			LineTo(pt(cx+s, cy-s)).
			LineTo(pt(cx+s, cy+s)).
			LineTo(pt(cx-s, cy+s)).
			Close()
	}
	return p
}

// triangleMesh covers the canvas with a grid of cells, each split into
// two triangles. Neighbouring triangles share their edges.
func triangleMesh(rows, cols, width, height int) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x0, y0 := float64(col)*cellW, float64(row)*cellH
			x1, y1 := x0+cellW, y0+cellH
			p = p.MoveTo(pt(x0, y0)).LineTo(pt(x1, y0)).LineTo(pt(x1, y1)).Close()
			if (row+col)%3 == 0 {
				// leave a hole
				continue
			}
			p = p.MoveTo(pt(x0, y0)).LineTo(pt(x1, y1)).LineTo(pt(x0, y1)).Close()
		}
	}
	return p
}
