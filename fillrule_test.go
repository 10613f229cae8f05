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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFillRuleString(t *testing.T) {
	require.Equal(t, "nonzero", NonZero.String())
	require.Equal(t, "evenodd", EvenOdd.String())
	require.Equal(t, "FillRule(7)", FillRule(7).String())
}

func TestSpans(t *testing.T) {
	type testCase struct {
		name      string
		rule      FillRule
		crossings []crossing
		want      []Span
	}
	cases := []testCase{
		{
			name:      "simple",
			rule:      NonZero,
			crossings: []crossing{{5.5, -1}, {1.2, 1}},
			want:      []Span{{2, 6}},
		},
		{
			name:      "nested non-zero",
			rule:      NonZero,
			crossings: []crossing{{1, 1}, {2, 1}, {6, -1}, {8, -1}},
			want:      []Span{{1, 8}},
		},
		{
			name:      "nested even-odd",
			rule:      EvenOdd,
			crossings: []crossing{{1, 1}, {2, 1}, {6, 1}, {8, 1}},
			want:      []Span{{1, 2}, {6, 8}},
		},
		{
			name:      "cancelling crossings at one x",
			rule:      NonZero,
			crossings: []crossing{{3, 1}, {3, -1}, {5, 1}, {7, -1}},
			want:      []Span{{5, 7}},
		},
		{
			name:      "touching spans",
			rule:      EvenOdd,
			crossings: []crossing{{1, 1}, {4, 1}, {4, 1}, {6, 1}},
			want:      []Span{{1, 6}},
		},
		{
			name:      "clipped",
			rule:      NonZero,
			crossings: []crossing{{-5, 1}, {100, -1}},
			want:      []Span{{0, 10}},
		},
		{
			name:      "outside",
			rule:      NonZero,
			crossings: []crossing{{-5, 1}, {-2, -1}, {12, 1}, {15, -1}},
			want:      nil,
		},
		{
			name:      "unterminated",
			rule:      EvenOdd,
			crossings: []crossing{{4, 1}},
			want:      []Span{{4, 10}},
		},
		{
			name:      "no sample point",
			rule:      NonZero,
			crossings: []crossing{{2.2, 1}, {2.8, -1}},
			want:      nil,
		},
		{
			name:      "boundary",
			rule:      NonZero,
			crossings: []crossing{{2, 1}, {5, -1}},
			want:      []Span{{2, 5}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.rule.spans(nil, c.crossings, 10)
			require.Equal(t, c.want, got)
		})
	}
}

func TestSpansSorted(t *testing.T) {
	crossings := []crossing{{9, 1}, {1, 1}, {7, 1}, {3, 1}}
	got := EvenOdd.spans(nil, crossings, 20)
	require.Equal(t, []Span{{1, 3}, {7, 9}}, got)
	require.IsNonDecreasing(t, []float64{
		crossings[0].x, crossings[1].x, crossings[2].x, crossings[3].x,
	})
}
