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

import "math"

// isFloat reports whether T is a floating point type.
func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

// Round rounds v to the nearest integral value, half away from zero.
// For integer types this is the identity.
func Round[T Number](v T) T {
	if !isFloat[T]() {
		return v
	}
	return T(math.Round(float64(v)))
}

// Ceil returns the least integral value greater than or equal to v.
// For integer types this is the identity.
func Ceil[T Number](v T) T {
	if !isFloat[T]() {
		return v
	}
	return T(math.Ceil(float64(v)))
}

// Floor returns the greatest integral value less than or equal to v.
// For integer types this is the identity.
func Floor[T Number](v T) T {
	if !isFloat[T]() {
		return v
	}
	return T(math.Floor(float64(v)))
}

// RoundInt is like Round, but converts the result to int.
// Out of range values saturate and NaN maps to 0.
func RoundInt[T Number](v T) int {
	return toInt(Round(v))
}

// CeilInt is like Ceil, but converts the result to int.
// Out of range values saturate and NaN maps to 0.
func CeilInt[T Number](v T) int {
	return toInt(Ceil(v))
}

// FloorInt is like Floor, but converts the result to int.
// Out of range values saturate and NaN maps to 0.
func FloorInt[T Number](v T) int {
	return toInt(Floor(v))
}

// toInt converts an integral value to int, saturating at the limits of int.
func toInt[T Number](v T) int {
	if !isFloat[T]() {
		// Integer types: compare through int64/uint64 to avoid wraparound.
		var zero T
		if v < zero {
			if int64(v) < math.MinInt {
				return math.MinInt
			}
			return int(int64(v))
		}
		if uint64(v) > math.MaxInt {
			return math.MaxInt
		}
		return int(uint64(v))
	}

	f := float64(v)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}
