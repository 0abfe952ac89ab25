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

import "testing"

func edgeAt(x int) *edge {
	return &edge{x: quorem{quo: x}}
}

func chain(edges ...*edge) *edge {
	for i := 0; i+1 < len(edges); i++ {
		edges[i].next = edges[i+1]
	}
	if len(edges) == 0 {
		return nil
	}
	return edges[0]
}

func xs(head *edge) []int {
	var out []int
	for e := head; e != nil; e = e.next {
		out = append(out, e.x.quo)
	}
	return out
}

func TestMergeUnsortedEdgesKeepsOrder(t *testing.T) {
	sorted := chain(edgeAt(1), edgeAt(5), edgeAt(9))
	unsorted := chain(edgeAt(7), edgeAt(2), edgeAt(10))

	got := mergeUnsortedEdges(sorted, unsorted)
	want := []int{1, 2, 5, 7, 9, 10}

	if g := xs(got); !equalInts(g, want) {
		t.Fatalf("merge = %v, want %v", g, want)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestActiveListCanStepRowFalseWhenShortEdge(t *testing.T) {
	var a activeList
	a.head = edgeAt(0)
	a.head.h = GridY - 1
	a.head.dy = 1

	if a.canStepRow() {
		t.Fatalf("canStepRow true despite an edge shorter than GridY")
	}
}

func TestActiveListCanStepRowFalseOnCrossing(t *testing.T) {
	e1 := edgeAt(0)
	e1.h = GridY
	e1.dy = 1
	e1.dxdyFull = quorem{quo: 10}

	e2 := edgeAt(5)
	e2.h = GridY
	e2.dy = 1
	e2.dxdyFull = quorem{quo: 0}

	var a activeList
	a.head = chain(e1, e2)

	if a.canStepRow() {
		t.Fatalf("canStepRow true despite a crossing within the row")
	}
}

func TestActiveListCanStepRowTrueWhenSafe(t *testing.T) {
	e1 := edgeAt(0)
	e1.h = GridY
	e1.dy = 1
	e1.dxdyFull = quorem{quo: 1}

	e2 := edgeAt(5)
	e2.h = GridY
	e2.dy = 1
	e2.dxdyFull = quorem{quo: 1}

	var a activeList
	a.head = chain(e1, e2)

	if !a.canStepRow() {
		t.Fatalf("canStepRow false for a safely-ordered pair")
	}
}

func TestActiveListSubstepDropsZeroHeightEdges(t *testing.T) {
	e := edgeAt(0)
	e.h = 1 // will hit zero on the first step
	e.dy = 1

	var a activeList
	a.head = e
	a.substep()

	if a.head != nil {
		t.Fatalf("substep kept an edge whose height reached zero")
	}
}
