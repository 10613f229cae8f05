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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// Pixels are sampled at their centres. These cases put edges and vertices
// on, just before and just after sample points.
var precisionCases = []TestCase{
	{
		Name:   "edges_on_corners",
		Path:   rectangle(20, 20, 44, 44),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "edges_on_centres",
		Path:   rectangle(20.5, 20.5, 44.5, 44.5),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "edges_before_centres",
		Path:   rectangle(20.4999, 20.4999, 44.4999, 44.4999),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "edges_after_centres",
		Path:   rectangle(20.5001, 20.5001, 44.5001, 44.5001),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "vertices_on_centres",
		Path:   polygon(10.5, 5.5, 53.5, 20.5, 30.5, 58.5),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "sliver_between_centres",
		Path:   polygon(5, 10.6, 59, 10.6, 59, 10.9, 5, 10.9),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "sliver_across_centres",
		Path:   polygon(5, 10.4, 59, 10.4, 59, 10.6, 5, 10.6),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "nearly_horizontal",
		Path:   polygon(2, 30, 62, 30.3, 62, 40, 2, 33.9),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "nearly_vertical",
		Path:   polygon(20, 2, 20.2, 62, 44, 62, 43.7, 2),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		// the shape is moved back onto the canvas by the CTM
		Name:   "large_offset",
		Path:   rectangle(10000-3.25, 10000-7.75, 10000+3.25, 10000+7.75),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Matrix{1, 0, 0, 1, 32 - 10000, 32 - 10000},
	},
	{
		Name:   "low_bits",
		Path:   lowBitsShape(),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
}

// lowBitsShape returns two nested triangles whose vertices differ only in
// the low bits of their float64 representation.
func lowBitsShape() *path.Data {
	const a = 0.5 + 1e-14
	const b = 0.5 - 1e-14
	return polygon(8+a, 8+a, 56+a, 8+a, 32+a, 56+a).
		MoveTo(pt(8+b, 8+b)).
		LineTo(pt(56+b, 8+b)).
		LineTo(pt(32+b, 56+b)).
		Close()
}
