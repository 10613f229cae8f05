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

// Package testcases contains shapes used to test the polygon filler.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single fill test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   *path.Data    // the shape to fill; all subpaths are closed
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Rule   FillRule      // how to determine the interior
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon builds a closed path through the given coordinates x0, y0, x1, y1, ...
func polygon(coords ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(coords[0], coords[1]))
	for i := 2; i+1 < len(coords); i += 2 {
		p = p.LineTo(pt(coords[i], coords[i+1]))
	}
	return p.Close()
}

// Polygon returns the vertices of the first subpath of p.
// Curves contribute only their end points.
func Polygon(p *path.Data) []vec.Vec2 {
	var res []vec.Vec2
	coordIdx := 0
	for i, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if i > 0 {
				return res
			}
			res = append(res, p.Coords[coordIdx])
			coordIdx++
		case path.CmdLineTo:
			res = append(res, p.Coords[coordIdx])
			coordIdx++
		case path.CmdQuadTo:
			res = append(res, p.Coords[coordIdx+1])
			coordIdx += 2
		case path.CmdCubeTo:
			res = append(res, p.Coords[coordIdx+2])
			coordIdx += 3
		}
	}
	return res
}
