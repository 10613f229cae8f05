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

// Package polyfill fills polygons into pixel masks and colour images,
// using a scan-line algorithm with an active edge table.
//
// Polygons may be concave and may intersect themselves. The interior is
// determined by either the non-zero winding rule or the even-odd rule.
// There is no anti-aliasing: every pixel is either inside or outside,
// depending on whether its centre lies inside the polygon.
package polyfill

//go:generate go run ./testcases/export
