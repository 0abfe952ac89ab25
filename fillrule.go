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

// applyNonZeroFillRuleForSubrow renders the spans of the active list
// that lie inside the polygon under the non-zero winding rule to the
// cell list, for the current subsample row.
func applyNonZeroFillRuleForSubrow(active *activeList, coverages *cellList) {
	e := active.head
	coverages.rewind()

	for e != nil {
		xstart := e.x.quo
		winding := e.dir
		for {
			e = e.next
			if e == nil {
				coverages.renderSubspanStartToCell(xstart)
				return
			}
			winding += e.dir
			if winding == 0 {
				break
			}
		}

		xend := e.x.quo
		coverages.renderSubspanToCells(xstart, xend)

		e = e.next
	}
}

// applyEvenOddFillRuleForSubrow renders the spans of the active list
// that lie inside the polygon under the even-odd rule to the cell
// list, for the current subsample row.
func applyEvenOddFillRuleForSubrow(active *activeList, coverages *cellList) {
	e := active.head
	coverages.rewind()

	for e != nil {
		xstart := e.x.quo

		e = e.next
		if e == nil {
			coverages.renderSubspanStartToCell(xstart)
			return
		}

		xend := e.x.quo
		coverages.renderSubspanToCells(xstart, xend)

		e = e.next
	}
}
