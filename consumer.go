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

package glitter

// CoverageConsumer receives the coverage a Converter computes for
// each pixel row of a render, one row at a time and in increasing y
// order. Implementations retain no ownership of anything passed to
// Row: the cell chain is only valid for the duration of that call.
type CoverageConsumer interface {
	// Begin is called once before the first row of a render.
	Begin()

	// Row delivers the coverage for pixel row y, covering columns
	// [xmin,xmax). cells is the list of signed area/cover deltas
	// ordered by ascending x, as produced by the fill-rule appliers;
	// a nil cells means the row had no contributions left of xmax
	// once it was rewound, equivalent to all cover being zero.
	Row(y, xmin, xmax int, cells *cell)

	// EmptyRow is called instead of Row for a pixel row known ahead
	// of time to have no polygon contribution at all.
	EmptyRow(y, xmin, xmax int)

	// End is called once after the last row of a render.
	End()
}

// A8Consumer is the default CoverageConsumer: it blits straight
// 8-bit alpha coverage into a caller-owned buffer. The buffer is
// assumed to already be zeroed; A8Consumer writes only the pixels
// that get nonzero coverage, overwriting their previous value, and
// never clears anything itself.
type A8Consumer struct {
	Pixels []byte
	Stride int
}

// NewA8Consumer wraps an existing A8 pixel buffer with the given row
// stride (in bytes).
func NewA8Consumer(pixels []byte, stride int) *A8Consumer {
	return &A8Consumer{Pixels: pixels, Stride: stride}
}

func (c *A8Consumer) Begin() {}
func (c *A8Consumer) End()   {}

func (c *A8Consumer) EmptyRow(y, xmin, xmax int) {}

// Row blits the given row's cells into the pixel buffer by
// prefix-summing cover left to right and filling spans between
// cells with the running cover, following the same structure as the
// span blitter glitter-paths.c registers by default.
func (c *A8Consumer) Row(y, xmin, xmax int, cells *cell) {
	row := c.Pixels[y*c.Stride:]

	cl := cells
	prevX := xmin
	var cover int32

	for cl != nil && cl.x < xmin {
		cover += cl.cover
		cl = cl.next
	}

	for ; cl != nil; cl = cl.next {
		x := cl.x
		if x >= xmax {
			break
		}
		if x > prevX && cover != 0 {
			blitSpan(row, prevX, x-prevX, cover)
		}

		cover += cl.cover
		area := cover - cl.area
		if area != 0 {
			blitSpan(row, x, 1, area)
		}
		prevX = x + 1
	}

	if cover != 0 && prevX < xmax {
		blitSpan(row, prevX, xmax-prevX, cover)
	}
}

// blitSpan fills len pixels starting at x with the alpha
// corresponding to the given signed coverage.
func blitSpan(row []byte, x, length int, coverage int32) {
	alpha := alphaFromArea(coverage)
	for i := 0; i < length; i++ {
		row[x+i] = alpha
	}
}
