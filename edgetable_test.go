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
)

func line(x0, y0, x1, y1 float64) Line[float64] {
	return Line[float64]{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

func TestScanlineEdgeSkipped(t *testing.T) {
	cases := map[string]Line[float64]{
		"horizontal":        line(0, 1.5, 5, 1.5),
		"almost horizontal": line(0, 1.2, 5, 1.8),
		"between rows":      line(3, 4.01, 3, 4.99),
		"NaN":               line(math.NaN(), 0, 1, 5),
		"infinite":          line(0, 0, math.Inf(1), 5),
		"single point":      line(2, 2, 2, 2),
	}
	for name, l := range cases {
		_, _, ok := newScanlineEdge(l)
		require.False(t, ok, name)
	}
}

func TestScanlineEdgePartialRow(t *testing.T) {
	e, first, ok := newScanlineEdge(line(0, 0.5, 4, 4.5))
	require.True(t, ok)
	require.Equal(t, 1, first)
	require.Equal(t, 4, e.yMax)
	require.Equal(t, 1, e.direction)
	require.Equal(t, 1.0, e.deltaX)
	require.Equal(t, 0.5, e.x)

	// the same edge, traversed in the opposite direction
	r, first, ok := newScanlineEdge(line(4, 4.5, 0, 0.5))
	require.True(t, ok)
	require.Equal(t, 1, first)
	require.Equal(t, 4, r.yMax)
	require.Equal(t, -1, r.direction)
	require.Equal(t, 0.5, r.x)
}

func TestScanlineEdgeIntegerEndpoints(t *testing.T) {
	// Rows y with 0 <= y < 10 are covered.
	e, first, ok := newScanlineEdge(line(2, 0, 2, 10))
	require.True(t, ok)
	require.Equal(t, 0, first)
	require.Equal(t, 9, e.yMax)
	require.Equal(t, 2.0, e.x)
}

func TestScanlineEdgeAdvance(t *testing.T) {
	e, first, ok := newScanlineEdge(line(0, 0, 30, 10))
	require.True(t, ok)
	require.Equal(t, 0, first)
	for row := 0; row <= e.yMax; row++ {
		require.Equal(t, row, e.row)
		require.Equal(t, 3*float64(row), e.x)
		e.advance()
	}
}

func TestEdgeTableBuild(t *testing.T) {
	net := make(edgeTable)
	lines := []Line[float64]{
		line(0, 0.5, 4, 4.5), // rows 1-4
		line(5, 2, 5, 7),     // rows 2-6
		line(0, 3, 9, 3),     // horizontal
		line(1, 2, 6, 3),     // rows 2-2
	}
	first, last, n := net.build(slices.Values(lines), 100)
	require.Equal(t, 3, n)
	require.Equal(t, 1, first)
	require.Equal(t, 6, last)
	require.Len(t, net[1], 1)
	require.Len(t, net[2], 2)
	require.Empty(t, net[3])

	// building again replaces the previous content
	first, last, n = net.build(slices.Values(lines[2:3]), 100)
	require.Equal(t, 0, n)
	require.Equal(t, 0, first)
	require.Equal(t, -1, last)
	require.Empty(t, net)
}

func TestEdgeTableClipping(t *testing.T) {
	net := make(edgeTable)
	lines := []Line[float64]{
		line(0, -3, 6, 3),  // starts above the canvas
		line(0, -5, 1, -1), // entirely above
		line(0, 10, 1, 20), // entirely below
		line(4, 8, 4, 30),  // extends below
	}
	first, last, n := net.build(slices.Values(lines), 10)
	require.Equal(t, 2, n)
	require.Equal(t, 0, first)
	require.Equal(t, 9, last)

	require.Len(t, net[0], 1)
	e := net[0][0]
	require.Equal(t, 0, e.row)
	require.Equal(t, 3.0, e.x)
	require.Equal(t, 2, e.yMax)

	require.Len(t, net[8], 1)
	require.Equal(t, 29, net[8][0].yMax)
}
