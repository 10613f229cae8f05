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

// Command render fills all test cases and writes the resulting masks as
// PNG images, enlarged for inspection. It also writes a colour demo which
// composites a grid of squares onto a white canvas.
// Run from the module root directory.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/testcases"
)

const (
	outDir = "testdata/output"
	scale  = 4
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			mask := renderMask(tc)
			if err := writePNG(filepath.Join(outDir, name+".png"), mask.Alpha()); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}

	if err := writePNG(filepath.Join(outDir, "blend_grid.png"), blendGrid()); err != nil {
		panic(fmt.Errorf("blend_grid: %w", err))
	}
}

func renderMask(tc testcases.TestCase) *polyfill.Mask {
	spec := polyfill.CanvasSpec{Width: tc.Width, Height: tc.Height}
	mask := polyfill.NewMask(spec)

	r := polyfill.NewRasterizer(spec)
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}
	rule := polyfill.NonZero
	if tc.Rule == testcases.EvenOdd {
		rule = polyfill.EvenOdd
	}
	r.FillPath(tc.Path, rule, func(y int, spans []polyfill.Span) {
		for _, s := range spans {
			mask.PaintSpan(y, s.X0, s.X1)
		}
	})
	return mask
}

// blendGrid fills a 4x3 grid of overlapping squares with different colours.
func blendGrid() *image.RGBA {
	const blkSize = 50
	const numRow, numCol = 3, 4

	canvas := image.NewRGBA(image.Rect(0, 0, numCol*blkSize, numRow*blkSize))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	for row := range numRow {
		for col := range numCol {
			x0 := float32(col*blkSize - blkSize/4)
			y0 := float32(row*blkSize - blkSize/4)
			x1 := x0 + 1.5*blkSize
			y1 := y0 + 1.5*blkSize
			square := polyfill.NewPolygon(
				polyfill.Pt(x0, y0), polyfill.Pt(x1, y0),
				polyfill.Pt(x1, y1), polyfill.Pt(x0, y1))

			c := color.NRGBA{
				R: uint8(255 * (0.2 + float64(row)*0.35)),
				G: uint8(255 * (0.9 - float64(col)*0.25)),
				B: 178,
				A: 255,
			}
			polyfill.FillRGBA(canvas, square, c, polyfill.NonZero)
		}
	}
	return canvas
}

func writePNG(fname string, img image.Image) (err error) {
	b := img.Bounds()
	big := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(big, big.Bounds(), img, b, draw.Src, nil)

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, big)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
