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


// Command genpdf cross-checks the polygon filler against Ghostscript.
// Every test case is written as a PDF file, rendered without
// anti-aliasing, and the resulting image is compared to the mask computed
// by the polyfill package. Ghostscript marks every pixel touched by a
// shape, so differences along the boundary are expected; the summary
// lists the number of pixels found by only one of the two renderers.
// Run from the module root directory.
package main

import (
	"fmt"
	"image"
	imgcolor "image/color"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/testcases"
)

const outDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("%-40s %8s %8s %8s\n", "case", "pixels", "gs only", "ours only")
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			base := filepath.Join(outDir, name)

			if err := writePDF(tc, base+".pdf"); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := ghostscript(base+".pdf", base+".png"); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			ref, err := loadMask(base + ".png")
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			ours := fill(tc)
			if ref.Width != ours.Width || ref.Height != ours.Height {
				panic(fmt.Errorf("%s: image size %dx%d, expected %dx%d",
					name, ref.Width, ref.Height, ours.Width, ours.Height))
			}
			gsOnly, oursOnly := 0, 0
			for i := range ref.Pix {
				switch {
				case ref.Pix[i] && !ours.Pix[i]:
					gsOnly++
				case ours.Pix[i] && !ref.Pix[i]:
					oursOnly++
				}
			}
			fmt.Printf("%-40s %8d %8d %8d\n", name, ours.Count(), gsOnly, oursOnly)

			if gsOnly+oursOnly > 0 {
				if err := writeComparison(base+"_cmp.png", ref, ours); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

// fill computes the mask of a test case using the polyfill package.
func fill(tc testcases.TestCase) *polyfill.Mask {
	spec := polyfill.CanvasSpec{Width: tc.Width, Height: tc.Height}
	r := polyfill.NewRasterizer(spec)
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}
	rule := polyfill.NonZero
	if tc.Rule == testcases.EvenOdd {
		rule = polyfill.EvenOdd
	}

	m := polyfill.NewMask(spec)
	r.FillPath(tc.Path, rule, func(y int, spans []polyfill.Span) {
		for _, s := range spans {
			m.PaintSpan(y, s.X0, s.X1)
		}
	})
	return m
}

// writePDF writes a single-page PDF, one point per pixel, showing the
// shape in white on black.
func writePDF(tc testcases.TestCase, fname string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// Test cases use a y-down coordinate system.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) {
		page.Transform(tc.CTM)
	}

	page.SetFillColor(color.DeviceGray(1))
	for cmd, pts := range tc.Path.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	if tc.Rule == testcases.EvenOdd {
		page.FillEvenOdd()
	} else {
		page.Fill()
	}

	return page.Close()
}

// ghostscript renders a PDF file into an 8-bit grayscale PNG at 72 DPI.
func ghostscript(pdfPath, pngPath string) error {
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// loadMask reads a grayscale PNG, treating light pixels as inside.
func loadMask(fname string) (*polyfill.Mask, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	m := polyfill.NewMask(polyfill.CanvasSpec{Width: b.Dx(), Height: b.Dy()})
	for y := range m.Height {
		for x := range m.Width {
			g := imgcolor.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(imgcolor.Gray)
			if g.Y >= 128 {
				m.PaintSpan(y, x, x+1)
			}
		}
	}
	return m, nil
}

// writeComparison writes an image with Ghostscript's result in the red
// channel and ours in the green channel.
func writeComparison(fname string, ref, ours *polyfill.Mask) (err error) {
	img := image.NewRGBA(image.Rect(0, 0, ref.Width, ref.Height))
	for y := range ref.Height {
		for x := range ref.Width {
			c := imgcolor.RGBA{A: 255}
			if ref.At(x, y) {
				c.R = 255
			}
			if ours.At(x, y) {
				c.G = 255
			}
			img.SetRGBA(x, y, c)
		}
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
