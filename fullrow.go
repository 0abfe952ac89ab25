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

// stepEdgeFullRow decrements e's h by GridY, returning whether the
// edge still has height left. It does not move e.x: renderEdgeToCells
// or advanceFullRow does that.
func stepEdgeFullRow(e *edge) bool {
	e.h -= GridY
	return e.h != 0
}

// advanceFullRow moves e.x forward by one full pixel row without
// touching h (used for interior edges of a winding span, which are
// stepped but not rendered individually).
func advanceFullRow(e *edge) {
	e.x.quo += e.dxdyFull.quo
	e.x.rem += e.dxdyFull.rem
	if e.x.rem >= 0 {
		e.x.quo++
		e.x.rem -= e.dy
	}
}

// applyNonZeroFillRuleAndStepEdges computes the analytical coverage
// of the polygon for the current pixel row under the non-zero
// winding rule and steps every active edge by one full row. Only
// safe to call when the active list's canStepRow check has passed.
func applyNonZeroFillRuleAndStepEdges(active *activeList, coverages *cellList) {
	pprev := &active.head

	leftEdge := *pprev
	for leftEdge != nil {
		winding := leftEdge.dir

		if stepEdgeFullRow(leftEdge) {
			pprev = &leftEdge.next
		} else {
			*pprev = leftEdge.next
		}

		var rightEdge *edge
		for {
			rightEdge = *pprev
			if rightEdge == nil {
				coverages.renderEdgeToCells(leftEdge, +1)
				return
			}

			if stepEdgeFullRow(rightEdge) {
				pprev = &rightEdge.next
			} else {
				*pprev = rightEdge.next
			}

			winding += rightEdge.dir
			if winding == 0 {
				break
			}

			advanceFullRow(rightEdge)
		}

		coverages.renderEdgeToCells(leftEdge, +1)
		coverages.renderEdgeToCells(rightEdge, -1)

		leftEdge = *pprev
	}
}

// applyEvenOddFillRuleAndStepEdges computes the analytical coverage
// of the polygon for the current pixel row under the even-odd rule
// and steps every active edge by one full row. Only safe to call when
// the active list's canStepRow check has passed.
func applyEvenOddFillRuleAndStepEdges(active *activeList, coverages *cellList) {
	pprev := &active.head

	leftEdge := *pprev
	for leftEdge != nil {
		if stepEdgeFullRow(leftEdge) {
			pprev = &leftEdge.next
		} else {
			*pprev = leftEdge.next
		}

		rightEdge := *pprev
		if rightEdge == nil {
			coverages.renderEdgeToCells(leftEdge, +1)
			return
		}

		if stepEdgeFullRow(rightEdge) {
			pprev = &rightEdge.next
		} else {
			*pprev = rightEdge.next
		}

		coverages.renderEdgeToCells(leftEdge, +1)
		coverages.renderEdgeToCells(rightEdge, -1)

		leftEdge = *pprev
	}
}
