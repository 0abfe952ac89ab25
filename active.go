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

// activeList holds the edges crossing the current (sub)scan line,
// ordered ascending by x. minH is a lower bound on the height
// remaining in all active edges, used to decide whether a full pixel
// row can be stepped at once instead of subsampled.
type activeList struct {
	head *edge
	minH int
}

func (a *activeList) reset() {
	a.head = nil
	a.minH = 0
}

// mergeUnsortedEdges splices unsorted into sorted (ascending by
// x.quo), returning the new head. sorted is assumed already ordered.
func mergeUnsortedEdges(sortedHead, unsortedHead *edge) *edge {
	head := unsortedHead
	pprev := &sortedHead

	for head != nil {
		next := head.next
		x := head.x.quo

		prev := *pprev
		if prev == nil || x < prev.x.quo {
			pprev = &sortedHead
		}

		for {
			prev = *pprev
			if prev == nil || prev.x.quo >= x {
				break
			}
			pprev = &prev.next
		}

		head.next = *pprev
		*pprev = head

		head = next
	}
	return sortedHead
}

// mergeFromPolygon splits off the edges in poly's y-bucket for
// subsample row y and merges them into the active list.
func (a *activeList) mergeFromPolygon(y int, poly *polygon) {
	ix := edgeYBucketIndex(y, poly.ymin)
	minH := a.minH
	var subrowEdges *edge
	ptail := &poly.yBuckets[ix]

	for {
		tail := *ptail
		if tail == nil {
			break
		}
		if y == tail.ytop {
			*ptail = tail.next
			tail.next = subrowEdges
			subrowEdges = tail
			if tail.h < minH {
				minH = tail.h
			}
		} else {
			ptail = &tail.next
		}
	}
	a.head = mergeUnsortedEdges(a.head, subrowEdges)
	a.minH = minH
}

// substep advances every active edge by one subsample row, dropping
// edges that end and re-sorting any that overtake their neighbour.
func (a *activeList) substep() {
	pprev := &a.head
	prevX := math.MinInt
	var unsorted *edge

	for {
		e := *pprev
		if e == nil {
			break
		}

		if e.step() {
			if e.x.quo < prevX {
				*pprev = e.next
				e.next = unsorted
				unsorted = e
			} else {
				prevX = e.x.quo
				pprev = &e.next
			}
		} else {
			*pprev = e.next
		}
	}

	if unsorted != nil {
		a.head = mergeUnsortedEdges(a.head, unsorted)
	}
}

// canStepRow reports whether every edge on the active list can be
// safely advanced by a full pixel row at once: none end within the
// row, and none would cross another while doing so.
func (a *activeList) canStepRow() bool {
	if a.minH <= 0 {
		minH := math.MaxInt
		for e := a.head; e != nil; e = e.next {
			if e.h < minH {
				minH = e.h
			}
		}
		a.minH = minH
	}

	if a.minH < GridY {
		return false
	}

	prevX := math.MinInt
	for e := a.head; e != nil; e = e.next {
		x := e.fullRowX()
		if x.quo <= prevX {
			return false
		}
		prevX = x.quo
	}
	return true
}
