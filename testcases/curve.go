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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Curves are flattened into polygons before filling.
var curveCases = []TestCase{
	{
		Name:   "quadratic_arch",
		Path:   closedQuad(pt(8, 56), pt(32, -8), pt(56, 56)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_s",
		Path:   closedCubic(pt(6, 50), pt(18, 4), pt(46, 60), pt(58, 12)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_loop_nonzero",
		Path:   closedCubic(pt(12, 44), pt(68, 2), pt(-4, 2), pt(52, 44)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_loop_evenodd",
		Path:   closedCubic(pt(12, 44), pt(68, 2), pt(-4, 2), pt(52, 44)),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 17),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "unclosed_quadratic",
		Path:   (&path.Data{}).MoveTo(pt(6, 6)).QuadTo(pt(58, 6), pt(58, 58)),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
}

// closedQuad returns a quadratic Bézier curve, closed by a straight line.
func closedQuad(p0, p1, p2 vec.Vec2) *path.Data {
	return (&path.Data{}).MoveTo(p0).QuadTo(p1, p2).Close()
}

// closedCubic returns a cubic Bézier curve, closed by a straight line.
func closedCubic(p0, p1, p2, p3 vec.Vec2) *path.Data {
	return (&path.Data{}).MoveTo(p0).CubeTo(p1, p2, p3).Close()
}

// ellipse approximates an axis-parallel ellipse by four cubic Bézier
// curves, starting at the top.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	// control point distance for a quarter circle of radius 1
	const k = 0.5522847498307936
	kx, ky := k*rx, k*ry

	return (&path.Data{}).
		MoveTo(pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		Close()
}
