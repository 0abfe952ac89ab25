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

// edge is a polygon edge, clipped to the vertical extent of a
// Converter and oriented downwards (dir records the original
// orientation).
type edge struct {
	// next chains edges within a y-bucket or the active list.
	next *edge

	// x is the current x coordinate, initialised to the x of the
	// top of the edge. The quotient is grid-scaled; the remainder
	// is mod dy, pre-biased by -dy so that advancing only needs to
	// test rem >= 0 rather than rem >= dy.
	x quorem

	// dxdy is the advance of x for one subsample row.
	dxdy quorem

	// dxdyFull is the advance of x for one full pixel row (GridY
	// subsample rows). Only meaningful once h >= GridY.
	dxdyFull quorem

	ytop int // clipped y of the top of the edge
	dy   int // y1-y0 after orienting the edge downwards
	h    int // subsample rows remaining to scan convert
	dir  int // +1 downwards, -1 upwards, in the original orientation
}

// step advances the edge by one subsample row, decrementing its
// remaining height. It reports whether the edge still has height
// left after the step.
func (e *edge) step() bool {
	e.h--
	if e.h == 0 {
		return false
	}
	e.x.quo += e.dxdy.quo
	e.x.rem += e.dxdy.rem
	if e.x.rem >= 0 {
		e.x.quo++
		e.x.rem -= e.dy
	}
	return true
}

// fullRowX returns the edge's x advanced by one full pixel row,
// leaving the edge itself unchanged. canStepRow uses it to look ahead;
// the full-row fill rule appliers advance e.x on their own.
func (e *edge) fullRowX() quorem {
	x := e.x
	x.quo += e.dxdyFull.quo
	x.rem += e.dxdyFull.rem
	if x.rem >= 0 {
		x.quo++
		x.rem -= e.dy
	}
	return x
}
