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

// cell represents one pixel's worth of signed area/cover
// contribution on the current scan line. For a single edge,
// cell.area is the signed area to the left of the edge within the
// pixel, and cell.cover is the signed area to the left and right of
// the edge (i.e. its full vertical extent within the pixel).
type cell struct {
	next        *cell
	x           int
	area, cover int32
}

// cellList represents the current scan line, mid-conversion, as a
// list of cells ordered by ascending x. Cells are looked up with the
// tailpred cursor, which must be advanced with non-decreasing x
// between calls to rewind.
type cellList struct {
	head     *cell
	tailpred **cell
	cells    *pool[cell]
}

func newCellList() *cellList {
	c := &cellList{cells: newPool[cell](256, 32)}
	c.rewind()
	return c
}

func (c *cellList) rewind() {
	c.tailpred = &c.head
}

func (c *cellList) maybeRewind(x int) {
	tail := *c.tailpred
	if tail != nil && tail.x > x {
		c.rewind()
	}
}

func (c *cellList) reset() {
	c.rewind()
	c.head = nil
	c.cells.reset()
}

// find returns the cell at x, allocating and linking in a new zeroed
// one if none exists yet. x must be non-decreasing across calls since
// the last rewind.
func (c *cellList) find(x int) *cell {
	ppred := c.tailpred
	var tail *cell
	for {
		tail = *ppred
		if tail == nil || tail.x >= x {
			break
		}
		ppred = &tail.next
	}
	c.tailpred = ppred

	if tail != nil && tail.x == x {
		return tail
	}
	nc := c.cells.allocOne()
	*ppred = nc
	nc.next = tail
	nc.x = x
	return nc
}

// find2 is equivalent to find(x1) followed by find(x2), for x1 < x2,
// with less cursor-walking overhead. With x1 == x2 it links in a
// second cell at the same x.
func (c *cellList) find2(x1, x2 int) (c1, c2 *cell) {
	ppred := c.tailpred

	for {
		c1 = *ppred
		if c1 == nil || c1.x > x1 {
			break
		}
		if c1.x == x1 {
			goto foundFirst
		}
		ppred = &c1.next
	}
	{
		nc := c.cells.allocOne()
		*ppred = nc
		nc.next = c1
		nc.x = x1
		c1 = nc
	}

foundFirst:
	ppred = &c1.next

	for {
		c2 = *ppred
		if c2 == nil || c2.x > x2 {
			break
		}
		if c2.x == x2 {
			goto foundSecond
		}
		ppred = &c2.next
	}
	{
		nc := c.cells.allocOne()
		*ppred = nc
		nc.next = c2
		nc.x = x2
		c2 = nc
	}

foundSecond:
	c.tailpred = ppred
	return c1, c2
}

// renderSubspanStartToCell incorporates the contribution of a
// downwards edge sampled at x on the current subrow, rendering a
// half-open span starting at x to the end of the clip.
func (c *cellList) renderSubspanStartToCell(x int) {
	ix, fx := splitX(x)
	cl := c.find(ix)
	cl.area += int32(2 * fx)
	cl.cover += int32(2 * GridX)
}

// renderSubspanToCells renders a span on the current subrow at
// [x1,x2) to the cell list.
func (c *cellList) renderSubspanToCells(x1, x2 int) {
	ix1, fx1 := splitX(x1)
	ix2, fx2 := splitX(x2)

	if ix1 != ix2 {
		c1, c2 := c.find2(ix1, ix2)
		c1.area += int32(2 * fx1)
		c1.cover += int32(2 * GridX)
		c2.area -= int32(2 * fx2)
		c2.cover -= int32(2 * GridX)
	} else {
		cl := c.find(ix1)
		cl.area += int32(2 * (fx1 - fx2))
	}
}

// renderEdgeToCells computes the analytical coverage of e on the
// current pixel row into the cell list and advances e.x by a full
// row's worth. Only valid when e is known to cross the whole row
// without intersecting another edge while doing so.
func (c *cellList) renderEdgeToCells(e *edge, sign int) {
	x1 := e.x
	x2 := x1

	x2.quo += e.dxdyFull.quo
	x2.rem += e.dxdyFull.rem
	if x2.rem >= 0 {
		x2.quo++
		x2.rem -= e.dy
	}
	e.x = x2

	ix1, fx1 := splitX(x1.quo)
	ix2, fx2 := splitX(x2.quo)

	if ix1 == ix2 {
		cl := c.find(ix1)
		cl.cover += int32(sign * GridXY)
		cl.area += int32(sign * (fx1 + fx2) * GridY)
		return
	}

	var y1, y2 int
	dx := x2.quo - x1.quo
	if dx >= 0 {
		y1, y2 = 0, GridY
	} else {
		ix1, ix2 = ix2, ix1
		fx1, fx2 = fx2, fx1
		dx = -dx
		sign = -sign
		y1, y2 = GridY, 0
	}
	dy := y2 - y1

	y := flooredDivRem((GridX-fx1)*dy, dx)

	c.maybeRewind(ix1)

	cell1, cell2 := c.find2(ix1, ix1+1)
	cell1.area += int32(sign * y.quo * (GridX + fx1))
	cell1.cover += int32(sign * y.quo * GridX * 2)
	y.quo += y1

	if ix1+1 < ix2 {
		dydxFull := flooredDivRem(GridX*dy, dx)
		cl := cell2

		ix1++
		for {
			nextY := y.quo + dydxFull.quo
			y.rem += dydxFull.rem
			if y.rem >= dx {
				nextY++
				y.rem -= dx
			}

			a := int32(sign * (nextY - y.quo) * GridX)
			y.quo = nextY

			cl.area += a
			cl.cover += a * 2

			ix1++
			cl = c.find(ix1)
			if ix1 == ix2 {
				break
			}
		}
		cell2 = cl
	}
	cell2.area += int32(sign * (y2 - y.quo) * fx2)
	cell2.cover += int32(sign*(y2-y.quo)*GridX*2)
}
