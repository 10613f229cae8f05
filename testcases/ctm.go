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

import "seehuhn.de/go/geom/matrix"

// The polygons in these cases are given in a coordinate system centred on
// the origin; the CTM maps them onto the canvas.
var ctmCases = []TestCase{
	{
		Name:   "scale_up",
		Path:   polygon(0, 0, 20, 0, 3, 15, 13, 3, 8, 3, 18, 15),
		Width:  128,
		Height: 96,
		Rule:   NonZero,
		CTM:    matrix.Scale(5, 5).Translate(14, 8),
	},
	{
		Name:   "scale_down",
		Path:   polygon(0, 0, 200, 0, 30, 150, 130, 30, 80, 30, 180, 150),
		Width:  64,
		Height: 48,
		Rule:   EvenOdd,
		CTM:    matrix.Scale(0.3, 0.3).Translate(2, 2),
	},
	{
		Name:   "rotate_30deg",
		Path:   rectangle(-18, -9, 18, 9),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "rotate_90deg",
		Path:   polygon(-20, -10, 20, -10, -20, 10),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(90).Translate(32, 32),
	},
	{
		Name:   "rotate_star_nonzero",
		Path:   fivePointStar(0, 0, 28),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(-23).Translate(32, 32),
	},
	{
		Name:   "anisotropic_ring",
		Path:   ringShape(0, 0, 24, 12, true),
		Width:  128,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(2.5, 1.2).Translate(64, 32),
	},
	{
		Name:   "shear_vertical",
		Path:   rectangle(-12, -12, 12, 12),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		CTM:    matrix.Matrix{1, 0.4, 0, 1, 32, 32},
	},
	{
		Name:   "mirror_x",
		Path:   polygon(10, 10, 54, 30, 10, 54, 24, 30),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Matrix{-1, 0, 0, 1, 64, 0},
	},
}
