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

func cellXs(head *cell) []int {
	var out []int
	for c := head; c != nil; c = c.next {
		out = append(out, c.x)
	}
	return out
}

func TestCellListFindCreatesAscending(t *testing.T) {
	cl := newCellList()
	cl.find(3)
	cl.find(5)
	cl.find(9)

	if got := cellXs(cl.head); !equalInts(got, []int{3, 5, 9}) {
		t.Fatalf("cells = %v, want [3 5 9]", got)
	}
}

func TestCellListFindReturnsSameCell(t *testing.T) {
	cl := newCellList()
	c1 := cl.find(4)
	c1.area = 10
	cl.rewind()
	c2 := cl.find(4)
	if c2 != c1 {
		t.Fatalf("find(4) returned a different cell the second time")
	}
	if c2.area != 10 {
		t.Fatalf("area = %d, want 10 (same cell)", c2.area)
	}
}

func TestCellListFind2InsertsBoth(t *testing.T) {
	cl := newCellList()
	c1, c2 := cl.find2(2, 8)
	if c1.x != 2 || c2.x != 8 {
		t.Fatalf("find2(2,8) = (%d,%d), want (2,8)", c1.x, c2.x)
	}
	if got := cellXs(cl.head); !equalInts(got, []int{2, 8}) {
		t.Fatalf("cells = %v, want [2 8]", got)
	}
}

func TestCellListFind2BetweenExisting(t *testing.T) {
	cl := newCellList()
	cl.find(0)
	cl.find(10)
	cl.rewind()

	c1, c2 := cl.find2(3, 7)
	if c1.x != 3 || c2.x != 7 {
		t.Fatalf("find2(3,7) = (%d,%d), want (3,7)", c1.x, c2.x)
	}
	if got := cellXs(cl.head); !equalInts(got, []int{0, 3, 7, 10}) {
		t.Fatalf("cells = %v, want [0 3 7 10]", got)
	}
}

func TestCellListRenderSubspanToCellsSameColumn(t *testing.T) {
	cl := newCellList()
	cl.renderSubspanToCells(2*GridX+10, 2*GridX+40)

	c := cl.head
	if c == nil || c.next != nil {
		t.Fatalf("expected exactly one cell")
	}
	if c.x != 2 {
		t.Fatalf("cell x = %d, want 2", c.x)
	}
	want := int32(2 * (10 - 40))
	if c.area != want {
		t.Fatalf("area = %d, want %d", c.area, want)
	}
}

func TestCellListRenderSubspanStartToCell(t *testing.T) {
	cl := newCellList()
	cl.renderSubspanStartToCell(3*GridX + 64)

	c := cl.head
	if c == nil {
		t.Fatalf("expected a cell")
	}
	if c.x != 3 {
		t.Fatalf("cell x = %d, want 3", c.x)
	}
	if c.area != int32(2*64) {
		t.Fatalf("area = %d, want %d", c.area, 2*64)
	}
	if c.cover != int32(2*GridX) {
		t.Fatalf("cover = %d, want %d", c.cover, 2*GridX)
	}
}

func TestCellListMaybeRewind(t *testing.T) {
	cl := newCellList()
	cl.find(5)
	cl.find(9)
	// Cursor is now past both cells; a lookup at x=3 needs a rewind.
	cl.maybeRewind(3)
	if *cl.tailpred != cl.head {
		t.Fatalf("maybeRewind did not reset the cursor to head")
	}
}
