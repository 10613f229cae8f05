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
	"cmp"
	"fmt"
	"slices"
)

// FillRule selects how the interior of a self-intersecting polygon is
// determined.
type FillRule int

const (
	// NonZero treats a point as inside if the winding number of the
	// boundary around the point is non-zero.
	NonZero FillRule = iota

	// EvenOdd treats a point as inside if a ray from the point crosses
	// the boundary an odd number of times.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// contribution returns the amount an edge with the given direction adds to
// the running total.
func (r FillRule) contribution(direction int) int {
	if r == EvenOdd {
		return 1
	}
	return direction
}

// inside reports whether a running total denotes the interior.
func (r FillRule) inside(total int) bool {
	if r == EvenOdd {
		return total%2 != 0
	}
	return total != 0
}

// Span is a half-open range [X0, X1) of pixel columns within one row.
type Span struct {
	X0, X1 int
}

// spans converts the crossings of one row into interior column ranges and
// appends these to dst. Crossings are sorted in place. Column c is inside
// if the rule holds for the total of all crossings with x <= c.
// Spans are clipped to [0, width).
func (r FillRule) spans(dst []Span, crossings []crossing, width int) []Span {
	slices.SortFunc(crossings, func(a, b crossing) int {
		return cmp.Compare(a.x, b.x)
	})

	total := 0
	in := false
	var low float64
	for i := 0; i < len(crossings); {
		x := crossings[i].x
		for i < len(crossings) && crossings[i].x == x {
			total += crossings[i].winding
			i++
		}

		now := r.inside(total)
		if now == in {
			continue
		}
		if now {
			low = x
		} else {
			dst = appendSpan(dst, CeilInt(low), CeilInt(x), width)
		}
		in = now
	}
	if in {
		dst = appendSpan(dst, CeilInt(low), width, width)
	}
	return dst
}

func appendSpan(dst []Span, x0, x1, width int) []Span {
	x0 = max(x0, 0)
	x1 = min(x1, width)
	if x0 >= x1 {
		return dst
	}
	return append(dst, Span{X0: x0, X1: x1})
}
