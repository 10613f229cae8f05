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
	"iter"
	"math"

	"deedles.dev/xiter"
)

// scanlineEdge is an edge in the form needed by the scan-line sweep.
// Coordinates are in sample space, where row y samples the line at
// y-coordinate y and column x samples x-coordinate x.
type scanlineEdge struct {
	yMax      int     // last row on which the edge is active
	x         float64 // intersection with the current row
	deltaX    float64 // change of x per row
	direction int     // +1 if the edge runs towards larger y, -1 otherwise

	row int // the row x belongs to

	// x is evaluated from the lower endpoint for every row, so that
	// rounding errors do not accumulate over long edges.
	x0, y0 float64
	dx, dy float64
}

// newScanlineEdge converts l into a scanlineEdge. The edge covers the rows
// y with ymin <= y < ymax. The second return value is the first row the edge
// covers. If the edge covers no rows at all (horizontal edges, edges which
// do not cross an integer y-coordinate, or edges with non-finite
// coordinates), ok is false.
func newScanlineEdge(l Line[float64]) (e scanlineEdge, first int, ok bool) {
	invSlope, ok := l.InvSlope()
	if !ok || !isFinite(invSlope) {
		return scanlineEdge{}, 0, false
	}
	lo, hi := l.YMinPoint(), l.YMaxPoint()
	if !isFinite(lo.X) || !isFinite(lo.Y) || !isFinite(hi.X) || !isFinite(hi.Y) {
		return scanlineEdge{}, 0, false
	}
	dx, dy := hi.X-lo.X, hi.Y-lo.Y
	if !isFinite(dx) || !isFinite(dy) {
		return scanlineEdge{}, 0, false
	}

	first = CeilInt(lo.Y)
	end := CeilInt(hi.Y)
	if first == end {
		// almost horizontal
		return scanlineEdge{}, 0, false
	}

	direction := -1
	if l.Start.Y < l.End.Y {
		direction = 1
	}

	e = scanlineEdge{
		yMax:      end - 1,
		deltaX:    invSlope,
		direction: direction,
		x0:        lo.X,
		y0:        lo.Y,
		dx:        dx,
		dy:        dy,
	}
	e.moveTo(first)
	return e, first, true
}

// xAt returns the x-coordinate where the edge crosses the given row.
func (e *scanlineEdge) xAt(row int) float64 {
	return e.x0 + ((float64(row)-e.y0)*e.dx)/e.dy
}

// moveTo sets the current row of the edge.
func (e *scanlineEdge) moveTo(row int) {
	e.row = row
	e.x = e.xAt(row)
}

// advance moves the edge down by one row.
func (e *scanlineEdge) advance() {
	e.moveTo(e.row + 1)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// edgeTable maps each row to the edges which become active on that row.
type edgeTable map[int][]scanlineEdge

// build fills the table with the edges of a shape, for a canvas with the
// given number of rows. The table is cleared first. Edges starting above
// row 0 are clipped to start on row 0. Edges which do not touch any of the
// rows 0, ..., height-1 are left out.
//
// The return values give the range of rows which have active edges.
// If no edges were added, count is 0.
func (net edgeTable) build(edges iter.Seq[Line[float64]], height int) (firstRow, lastRow, count int) {
	clear(net)

	logger := Logger()
	firstRow = math.MaxInt
	lastRow = -1
	skipped := 0
	for i, l := range xiter.Enumerate(edges) {
		e, first, ok := newScanlineEdge(l)
		if !ok {
			skipped++
			continue
		}
		if e.yMax < 0 || first >= height {
			logger.Debug("edge outside of canvas", "index", i,
				"first", first, "last", e.yMax)
			continue
		}
		if first < 0 {
			first = 0
			e.moveTo(0)
		}

		net[first] = append(net[first], e)
		firstRow = min(firstRow, first)
		lastRow = max(lastRow, min(e.yMax, height-1))
		count++
	}

	logger.Debug("edge table built", "edges", count, "skipped", skipped,
		"rows", len(net))

	if count == 0 {
		return 0, -1, 0
	}
	return firstRow, lastRow, count
}
