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

import "math"

// Converter accumulates oriented polygon edges and renders their
// antialiased coverage, one caller-chosen fill rule at a time, to a
// CoverageConsumer. A Converter is reusable across renders: call
// Reset to clip to a new window and start a new polygon, AddEdge any
// number of times, then Render.
//
// A Converter is not safe for concurrent use. Nothing in its
// implementation spawns goroutines or touches shared state outside
// itself.
type Converter struct {
	poly     *polygon
	active   activeList
	coverage *cellList

	xmin, xmax int
	ymin, ymax int
}

// NewConverter returns an empty Converter. Reset must be called
// before use to establish a clip window.
func NewConverter() *Converter {
	return &Converter{
		poly:     newPolygon(),
		coverage: newCellList(),
	}
}

// Reset clips subsequent edges and renders to the pixel rectangle
// [xmin,xmax) x [ymin,ymax), and discards any previously added edges.
// It returns ErrOutOfMemory if the clip window is too large for the
// internal grid-scaled bookkeeping to represent.
func (c *Converter) Reset(xmin, ymin, xmax, ymax int) error {
	c.xmin, c.xmax = 0, 0
	c.ymin, c.ymax = 0, 0

	gxmin := intToGridScaled(xmin, GridX)
	gymin := intToGridScaled(ymin, GridY)
	gxmax := intToGridScaled(xmax, GridX)
	gymax := intToGridScaled(ymax, GridY)

	c.active.reset()
	c.coverage.reset()
	if err := c.poly.reset(gymin, gymax); err != nil {
		return err
	}

	c.xmin, c.xmax = gxmin, gxmax
	c.ymin, c.ymax = gymin, gymax
	return nil
}

// AddEdge adds an oriented edge from (x1,y1) to (x2,y2), both in
// input-scaled coordinates (InputBits fractional bits), to the
// polygon. dir must be +1 or -1 and records the edge's contribution
// to the winding number. Edges entirely above or below the clip
// window, or horizontal once scaled onto the grid, contribute nothing.
// Edges are not clipped horizontally: one left of the window still
// adds cover to the pixels to its right.
func (c *Converter) AddEdge(x1, y1, x2, y2, dir int) error {
	sy1 := inputToGrid(y1, GridY)
	sy2 := inputToGrid(y2, GridY)
	if sy1 == sy2 {
		return nil
	}

	sx1 := inputToGrid(x1, GridX)
	sx2 := inputToGrid(x2, GridX)

	return c.poly.addEdge(sx1, sy1, sx2, sy2, dir)
}

// Render scans every pixel row of the clip window under the given
// fill rule (nonzero winding if nonzeroFill, even-odd otherwise),
// delivering coverage to consumer one row at a time. Rendering
// consumes the accumulated edges: call Reset before adding the edges
// of the next polygon.
func (c *Converter) Render(nonzeroFill bool, consumer CoverageConsumer) error {
	ymaxI := c.ymax / GridY
	yminI := c.ymin / GridY
	h := ymaxI - yminI

	xminI := c.xmin / GridX
	xmaxI := c.xmax / GridX
	if xminI >= xmaxI {
		return nil
	}

	consumer.Begin()
	defer consumer.End()

	for i := 0; i < h; i++ {
		doFullStep := false

		if c.poly.yBuckets[i] == nil {
			if c.active.head == nil {
				consumer.EmptyRow(i+yminI, xminI, xmaxI)
				continue
			}
			doFullStep = c.active.canStepRow()
		}

		c.coverage.reset()

		if doFullStep {
			if nonzeroFill {
				applyNonZeroFillRuleAndStepEdges(&c.active, c.coverage)
			} else {
				applyEvenOddFillRuleAndStepEdges(&c.active, c.coverage)
			}
		} else {
			for suby := 0; suby < GridY; suby++ {
				y := (i+yminI)*GridY + suby

				c.active.mergeFromPolygon(y, c.poly)

				if nonzeroFill {
					applyNonZeroFillRuleForSubrow(&c.active, c.coverage)
				} else {
					applyEvenOddFillRuleForSubrow(&c.active, c.coverage)
				}

				c.active.substep()
			}
		}

		consumer.Row(i+yminI, xminI, xmaxI, c.coverage.head)

		if c.active.head == nil {
			c.active.minH = math.MaxInt
		} else {
			c.active.minH -= GridY
		}
	}

	return nil
}
