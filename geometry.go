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
	"errors"
	"iter"

	"golang.org/x/exp/constraints"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Number is the set of coordinate types accepted by the geometry types.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrOddCoordinates is returned by [FromCoords] when the coordinate list
// does not consist of (x, y) pairs.
var ErrOddCoordinates = errors.New("polyfill: odd number of coordinates")

// Point is a location in the plane.
type Point[T Number] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Vec2 converts the point to a vec.Vec2.
func (p Point[T]) Vec2() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// PointFromVec2 converts a vec.Vec2 to a floating point Point.
func PointFromVec2(v vec.Vec2) Point[float64] {
	return Point[float64]{X: v.X, Y: v.Y}
}

// Line is a directed line segment. The end point may lie above or below the
// start point.
type Line[T Number] struct {
	Start, End Point[T]
}

// InvSlope returns the horizontal run per unit of vertical rise.
// The second return value is false for horizontal lines.
func (l Line[T]) InvSlope() (float64, bool) {
	if l.Start.Y == l.End.Y {
		return 0, false
	}
	dx := float64(l.End.X) - float64(l.Start.X)
	dy := float64(l.End.Y) - float64(l.Start.Y)
	return dx / dy, true
}

// YMinPoint returns the endpoint with the smaller y coordinate.
func (l Line[T]) YMinPoint() Point[T] {
	if l.Start.Y <= l.End.Y {
		return l.Start
	}
	return l.End
}

// YMaxPoint returns the endpoint with the larger y coordinate.
func (l Line[T]) YMaxPoint() Point[T] {
	if l.Start.Y >= l.End.Y {
		return l.Start
	}
	return l.End
}

// Polygon is a closed polygon. The last vertex is implicitly connected back
// to the first one. Self-intersecting and concave polygons are allowed.
type Polygon[T Number] struct {
	Vertices []Point[T]
}

// NewPolygon returns a polygon with the given vertices.
func NewPolygon[T Number](points ...Point[T]) Polygon[T] {
	return Polygon[T]{Vertices: points}
}

// FromCoords builds a polygon from a flat list of coordinates
// x0, y0, x1, y1, ...
// If the list has odd length, the zero Polygon and ErrOddCoordinates are
// returned.
func FromCoords[T Number](coords []T) (Polygon[T], error) {
	if len(coords)%2 != 0 {
		return Polygon[T]{}, ErrOddCoordinates
	}
	poly := Polygon[T]{
		Vertices: make([]Point[T], 0, len(coords)/2),
	}
	for i := 0; i < len(coords); i += 2 {
		poly.AddPoint(Point[T]{X: coords[i], Y: coords[i+1]})
	}
	return poly, nil
}

// FromVec2 builds a floating point polygon from a list of vectors.
func FromVec2(points []vec.Vec2) Polygon[float64] {
	poly := Polygon[float64]{
		Vertices: make([]Point[float64], len(points)),
	}
	for i, v := range points {
		poly.Vertices[i] = PointFromVec2(v)
	}
	return poly
}

// AddPoint appends a vertex to the polygon.
func (p *Polygon[T]) AddPoint(pt Point[T]) *Polygon[T] {
	p.Vertices = append(p.Vertices, pt)
	return p
}

// Edges iterates over the edges of the polygon in traversal order.
// The closing edge, from the last vertex back to the first, comes last.
func (p Polygon[T]) Edges() iter.Seq[Line[T]] {
	return func(yield func(Line[T]) bool) {
		n := len(p.Vertices)
		for i := range n {
			l := Line[T]{Start: p.Vertices[i], End: p.Vertices[(i+1)%n]}
			if !yield(l) {
				return
			}
		}
	}
}

// Float64 converts the polygon to float64 coordinates.
func (p Polygon[T]) Float64() Polygon[float64] {
	res := Polygon[float64]{
		Vertices: make([]Point[float64], len(p.Vertices)),
	}
	for i, v := range p.Vertices {
		res.Vertices[i] = Point[float64]{X: float64(v.X), Y: float64(v.Y)}
	}
	return res
}

// Transform applies the affine map m to every vertex.
func (p Polygon[T]) Transform(m matrix.Matrix) Polygon[float64] {
	res := Polygon[float64]{
		Vertices: make([]Point[float64], len(p.Vertices)),
	}
	for i, v := range p.Vertices {
		res.Vertices[i] = transformPoint(m, float64(v.X), float64(v.Y))
	}
	return res
}

func transformPoint(m matrix.Matrix, x, y float64) Point[float64] {
	return Point[float64]{
		X: m[0]*x + m[2]*y + m[4],
		Y: m[1]*x + m[3]*y + m[5],
	}
}

// BBox returns the smallest rectangle containing all vertices.
// The zero rectangle is returned for an empty polygon.
func (p Polygon[T]) BBox() rect.Rect {
	if len(p.Vertices) == 0 {
		return rect.Rect{}
	}
	v0 := p.Vertices[0]
	b := rect.Rect{
		LLx: float64(v0.X), LLy: float64(v0.Y),
		URx: float64(v0.X), URy: float64(v0.Y),
	}
	for _, v := range p.Vertices[1:] {
		x, y := float64(v.X), float64(v.Y)
		b.LLx = min(b.LLx, x)
		b.LLy = min(b.LLy, y)
		b.URx = max(b.URx, x)
		b.URy = max(b.URy, y)
	}
	return b
}
