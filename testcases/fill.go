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

var fillCases = []TestCase{
	{
		Name:   "square",
		Path:   polygon(0, 0, 8, 0, 8, 10, 0, 10),
		Width:  8,
		Height: 10,
		Rule:   NonZero,
	},
	{
		Name:   "triangle_lower",
		Path:   polygon(0, 0, 8, 0, 8, 10),
		Width:  8,
		Height: 10,
		Rule:   NonZero,
	},
	{
		Name:   "triangle_nonzero",
		Path:   polygon(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "triangle_evenodd",
		Path:   polygon(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "rectangle",
		Path:   polygon(10, 10, 44, 10, 44, 44, 10, 44),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "concave_arrow",
		Path:   polygon(8, 8, 56, 32, 8, 56, 24, 32),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "comb",
		Path:   polygon(4, 4, 60, 4, 60, 60, 52, 60, 52, 20, 44, 20, 44, 60, 36, 60, 36, 20, 28, 20, 28, 60, 4, 60),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
}

var selfCrossCases = []TestCase{
	{
		Name:   "hexagon_nonzero",
		Path:   polygon(0, 0, 20, 0, 3, 15, 13, 3, 8, 3, 18, 15),
		Width:  30,
		Height: 20,
		Rule:   NonZero,
	},
	{
		Name:   "hexagon_evenodd",
		Path:   polygon(0, 0, 20, 0, 3, 15, 13, 3, 8, 3, 18, 15),
		Width:  30,
		Height: 20,
		Rule:   EvenOdd,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "bowtie",
		Path:   polygon(8, 8, 56, 56, 56, 8, 8, 56),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	// five points, connecting every second point
	var coords []float64
	for _, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		coords = append(coords, cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(coords...)
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return polygon(x1, y1, x2, y1, x2, y2, x1, y2)
}
