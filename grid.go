// seehuhn.de/go/glitter - a polygon scan converter
// Copyright (c) 2008  M Joonas Pihlaja
// Copyright (c) 2007  David Turner
//
// Permission is hereby granted, free of charge, to any person
// obtaining a copy of this software and associated documentation
// files (the "Software"), to deal in the Software without
// restriction, including without limitation the rights to use,
// copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following
// conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT
// HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
// WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.

// Package glitter implements a polygon scan converter: given a set of
// oriented edges and a pixel clip window, it produces 8-bit alpha
// coverage for the polygon interior under the non-zero winding or
// even-odd fill rule.
//
// The design is a direct port of glitter-paths, a stand-alone
// rasteriser derived from David Turner's reimplementation of Tor
// Andersson's supersampling rasteriser. Its one notable feature is
// choosing cheaply, per scan line, between fully analytical coverage
// computation for a whole pixel row and supersampling.
package glitter

// All polygon coordinates live on a subsample grid. GridX is the
// number of horizontal subpixels per pixel; GridY is the number of
// vertical subsample rows per pixel. Both are fixed for the lifetime
// of a Converter: changing them changes the alpha-mapping formula
// below and the GridXY area unit.
const (
	gridXBits = 8
	GridX     = 1 << gridXBits // subpixels per pixel, horizontal
	GridY     = 15             // subsample rows per pixel, vertical

	// InputBits is the number of fractional bits of the public
	// input-scaled coordinate system accepted by AddEdge.
	InputBits  = 8
	inputScale = 1 << InputBits

	// GridXY is the unit area of a fully covered pixel in the scaled
	// integer area unit used by cell.area/cell.cover: 2*GridX*GridY.
	// The factor of two lets a grid-aligned triangle's exact area
	// (1/2 * dx * dy) be represented as an integer.
	GridXY = 2 * GridX * GridY
)

// splitX splits a grid-scaled x coordinate into its pixel column and
// the fractional subpixel offset within that column, flooring toward
// negative infinity. GridX is a power of two, so this is a shift and
// mask rather than a division.
func splitX(x int) (ix, fx int) {
	fx = x & (GridX - 1)
	ix = x >> gridXBits
	return
}

// alphaFromArea maps the magnitude of a signed area, where GridXY is
// a fully covered pixel, to [0, 255] rounded to nearest, clamping
// magnitudes above GridXY to 255. GridXY is 2*256*15 = 7680 for the
// grid constants fixed above, which admits the same closed-form
// shift-and-bias mapping glitter-paths.c special-cases for that exact
// value instead of the general area*255/GridXY division.
func alphaFromArea(area int32) uint8 {
	c := area
	if c < 0 {
		c = -c
	}
	v := (c + (c << 4) + 256) >> 9
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// quorem is a quotient and remainder, used to track rational
// x-coordinates along an edge without reintroducing floating point.
type quorem struct {
	quo, rem int
}

// flooredDivRem computes the floored division a/b, assuming Go's /
// and % (which truncate toward zero) as the starting point.
func flooredDivRem(a, b int) quorem {
	q := a / b
	r := a % b
	if (a^b) < 0 && r != 0 {
		q--
		r += b
	}
	return quorem{q, r}
}

// flooredMulDivRem computes the floored division (x*a)/b. The
// product is widened to 64 bits so that grid-scaled coordinate
// multiplications (which can exceed 32 bits) don't overflow.
func flooredMulDivRem(x, a, b int) quorem {
	xa := int64(x) * int64(a)
	bb := int64(b)
	q := xa / bb
	r := xa % bb
	if (xa >= 0) != (b >= 0) && r != 0 {
		q--
		r += bb
	}
	return quorem{int(q), int(r)}
}

// inputToGrid converts an input-scaled coordinate into a grid-scaled
// one at the given subpixel resolution, using a 64-bit intermediate
// to avoid overflow.
func inputToGrid(in, scale int) int {
	return int((int64(scale) * int64(in)) >> InputBits)
}

// intToGridScaled converts a pixel coordinate into a grid-scaled one,
// clamping to the representable range instead of overflowing.
func intToGridScaled(i, scale int) int {
	if i >= 0 {
		if i >= maxInt/scale {
			i = maxInt / scale
		}
	} else {
		if i <= minInt/scale {
			i = minInt / scale
		}
	}
	return i * scale
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)
