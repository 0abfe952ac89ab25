// seehuhn.de/go/raster - a 2D rendering library
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

// Package scenarios is a registry of named test geometries for the
// polygon scan converter, each with hand-computed expected coverage
// rather than a reference image.
package scenarios

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glitter"
)

// Scenario is a single rasterisation test: a path to fill, the clip
// window and fill rule to fill it with, and the expected 8-bit alpha
// for every pixel in the clip, row-major starting at the top-left
// corner of Clip.
type Scenario struct {
	Name     string
	Path     *path.Data
	Clip     rect.Rect
	Rule     glitter.FillRule
	Expected []byte // len == Width*Height, row-major; nil means "not checked exactly"
}

func (s Scenario) Width() int  { return int(s.Clip.URx - s.Clip.LLx) }
func (s Scenario) Height() int { return int(s.Clip.URy - s.Clip.LLy) }

func pt(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

func square(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x1, y0)).
		LineTo(pt(x1, y1)).
		LineTo(pt(x0, y1)).
		Close()
}

func squareReversed(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x0, y1)).
		LineTo(pt(x1, y1)).
		LineTo(pt(x1, y0)).
		Close()
}

func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

func clip(w, h int) rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(w), URy: float64(h)}
}

func fill255(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = 255
	}
	return b
}

// diagonalTriangleExpected computes the exact expected raster for S2:
// a right triangle with the hypotenuse running from (0,0) to (4,4),
// filled (0,0)->(4,0)->(0,4). Pixel (i,i) straddles the diagonal at
// alpha 128 (the (0,0) pixel is exactly half covered); pixels with
// col < row (strictly below the diagonal, larger y) are fully
// covered; pixels with col > row are empty.
func diagonalTriangleExpected(n int) []byte {
	b := make([]byte, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			var v byte
			switch {
			case col < row:
				v = 255
			case col == row:
				v = 128
			default:
				v = 0
			}
			b[row*n+col] = v
		}
	}
	return b
}

// donutExpected computes the exact expected raster for S4: a 10x10
// square with dir=+1 everywhere except a 3..7 square hole cut out of
// the middle.
func donutExpected(size, holeMin, holeMax int) []byte {
	b := make([]byte, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			v := byte(255)
			if col >= holeMin && col < holeMax && row >= holeMin && row < holeMax {
				v = 0
			}
			b[row*size+col] = v
		}
	}
	return b
}

// All is the registry of named scenarios, grouped by category. The
// category name is purely organisational, mirroring how reference
// raster projects group their test geometries.
var All = map[string][]Scenario{
	"winding": {
		{
			// S1: a 4x4 clip entirely covered by a 4x4 square.
			Name:     "full_square",
			Path:     square(0, 0, 4, 4),
			Clip:     clip(4, 4),
			Rule:     glitter.NonZero,
			Expected: fill255(16),
		},
		{
			// S2: right triangle, diagonal pixels at 128.
			Name:     "diagonal_triangle",
			Path:     triangle(0, 0, 4, 0, 0, 4),
			Clip:     clip(4, 4),
			Rule:     glitter.NonZero,
			Expected: diagonalTriangleExpected(4),
		},
		{
			// S3a: two coincident squares, non-zero fill keeps solid.
			Name:     "coincident_squares_nonzero",
			Path:     appendPath(square(0, 0, 4, 4), square(0, 0, 4, 4)),
			Clip:     clip(4, 4),
			Rule:     glitter.NonZero,
			Expected: fill255(16),
		},
		{
			// S3b: two coincident squares, even-odd fill cancels to empty.
			Name:     "coincident_squares_evenodd",
			Path:     appendPath(square(0, 0, 4, 4), square(0, 0, 4, 4)),
			Clip:     clip(4, 4),
			Rule:     glitter.EvenOdd,
			Expected: make([]byte, 16),
		},
		{
			// S4a: donut via opposite-wound hole under non-zero fill.
			Name: "donut_nonzero",
			Path: appendPath(
				square(0, 0, 10, 10),
				squareReversed(3, 3, 7, 7),
			),
			Clip:     clip(10, 10),
			Rule:     glitter.NonZero,
			Expected: donutExpected(10, 3, 7),
		},
		{
			// S4b: same donut, even-odd fill with both squares wound
			// the same way produces the same hole.
			Name: "donut_evenodd",
			Path: appendPath(
				square(0, 0, 10, 10),
				square(3, 3, 7, 7),
			),
			Clip:     clip(10, 10),
			Rule:     glitter.EvenOdd,
			Expected: donutExpected(10, 3, 7),
		},
	},
	"degenerate": {
		{
			// S5: a horizontal edge contributes nothing; raster stays
			// whatever the rest of the path produced (here, empty).
			Name:     "horizontal_edge_only",
			Path:     (&path.Data{}).MoveTo(pt(0, 0)).LineTo(pt(5, 0)).Close(),
			Clip:     clip(5, 5),
			Rule:     glitter.NonZero,
			Expected: make([]byte, 25),
		},
	},
	"subsample": {
		{
			// S6: a thin sliver triangle exercised only via the
			// subsampled path (height 1 pixel, so its only row is the
			// row its edges start in, which is never stepped in full).
			Name:     "thin_sliver",
			Path:     triangle(0, 0, 100, 0, 0, 1),
			Clip:     clip(100, 1),
			Rule:     glitter.NonZero,
			Expected: nil, // checked for monotonic decrease, not exact values
		},
	},
}

// appendPath concatenates the commands and coordinates of multiple
// subpaths into one path.Data, which is all FillPath needs: it
// doesn't require a single contiguous MoveTo/.../Close run.
func appendPath(parts ...*path.Data) *path.Data {
	out := &path.Data{}
	for _, p := range parts {
		out.Cmds = append(out.Cmds, p.Cmds...)
		out.Coords = append(out.Coords, p.Coords...)
	}
	return out
}
