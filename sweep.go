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

import "slices"

// crossing is the intersection of an active edge with the current row.
type crossing struct {
	x       float64
	winding int // contribution to the winding count, under the fill rule in use
}

// activeEdgeTable holds the edges which intersect the current row.
//
// The table is moved from row to row by step, which always performs the
// same three operations in the same order:
//
//  1. advance: edges already in the table move to the new row
//  2. merge: edges starting on the new row are added
//  3. retire: edges whose last row lies above the new row are removed
//
// Newly merged edges are already positioned on their first row and must
// not be advanced. Edges stay active up to and including their yMax row.
type activeEdgeTable struct {
	edges []scanlineEdge
}

func (a *activeEdgeTable) reset() {
	a.edges = a.edges[:0]
}

// step moves the table to the given row. Incoming holds the edges from the
// edge table which start on this row.
func (a *activeEdgeTable) step(row int, incoming []scanlineEdge) {
	for i := range a.edges {
		a.edges[i].advance()
	}
	a.edges = append(a.edges, incoming...)
	a.edges = slices.DeleteFunc(a.edges, func(e scanlineEdge) bool {
		return e.yMax < row
	})
}

// isEmpty reports whether no edges intersect the current row.
func (a *activeEdgeTable) isEmpty() bool {
	return len(a.edges) == 0
}

// crossings appends the intersections of all active edges with the current
// row to buf. The result is not sorted.
func (a *activeEdgeTable) crossings(buf []crossing, rule FillRule) []crossing {
	for i := range a.edges {
		e := &a.edges[i]
		buf = append(buf, crossing{x: e.x, winding: rule.contribution(e.direction)})
	}
	return buf
}
