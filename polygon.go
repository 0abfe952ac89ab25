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

import "errors"

// ErrOutOfMemory is returned when a size computation derived from a
// caller-supplied clip window would overflow int. It is the only
// error a Converter returns other than nil.
var ErrOutOfMemory = errors.New("glitter: out of memory")

// edgeYBucketHeight is the number of subsample rows per y-bucket.
const edgeYBucketHeight = GridY

// edgeYBucketIndex maps a grid-scaled y to the index of the bucket
// holding edges whose clipped top falls in that subsample row.
func edgeYBucketIndex(y, ymin int) int {
	return (y - ymin) / edgeYBucketHeight
}

// polygon is a collection of vertically clipped, sorted-by-bucket
// edges of a polygon. Edges are moved out of the polygon into the
// active list as the scan conversion advances downward.
type polygon struct {
	ymin, ymax int
	yBuckets   []*edge
	edges      *pool[edge]
}

func newPolygon() *polygon {
	return &polygon{edges: newPool[edge](203, 32)}
}

// reset relinquishes all edges back to the polygon and resizes the
// y-bucket array to cover the vertical clip range [ymin, ymax).
func (p *polygon) reset(ymin, ymax int) error {
	p.ymin, p.ymax = 0, 0
	p.edges.reset()

	h := ymax - ymin
	if h > 0x7FFFFFFF-edgeYBucketHeight {
		p.yBuckets = nil
		return ErrOutOfMemory
	}

	numBuckets := edgeYBucketIndex(ymax+edgeYBucketHeight-1, ymin)
	if numBuckets > 0 {
		p.yBuckets = make([]*edge, numBuckets)
	} else {
		p.yBuckets = nil
	}

	p.ymin, p.ymax = ymin, ymax
	return nil
}

// insertIntoBucket adds e to the y-bucket matching its clipped top.
func (p *polygon) insertIntoBucket(e *edge) {
	ix := edgeYBucketIndex(e.ytop, p.ymin)
	e.next = p.yBuckets[ix]
	p.yBuckets[ix] = e
}

// addEdge clips (x0,y0)-(x1,y1) to [ymin,ymax) and, if anything
// remains, adds it to the polygon with the given winding direction
// (+1 or -1). A horizontal edge, or one entirely outside the clipped
// vertical range, contributes nothing and is silently dropped.
func (p *polygon) addEdge(x0, y0, x1, y1, dir int) error {
	if y0 == y1 {
		return nil
	}
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		dir = -dir
	}
	if y0 >= p.ymax || y1 <= p.ymin {
		return nil
	}

	e := p.edges.allocOne()

	dx := x1 - x0
	dy := y1 - y0
	e.dy = dy
	e.dxdy = flooredDivRem(dx, dy)

	var ytop int
	if p.ymin <= y0 {
		ytop = y0
		e.x.quo = x0
		e.x.rem = 0
	} else {
		ytop = p.ymin
		e.x = flooredMulDivRem(p.ymin-y0, dx, dy)
		e.x.quo += x0
	}

	e.dir = dir
	e.ytop = ytop
	ybot := y1
	if p.ymax < ybot {
		ybot = p.ymax
	}
	e.h = ybot - ytop

	if e.h >= GridY {
		e.dxdyFull = flooredMulDivRem(GridY, dx, dy)
	} else {
		e.dxdyFull = quorem{}
	}

	p.insertIntoBucket(e)

	e.x.rem -= dy // bias the remainder for faster edge advancement
	return nil
}
