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

func TestFlooredDivRem(t *testing.T) {
	cases := []struct {
		a, b     int
		quo, rem int
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{0, 5, 0, 0},
		{4, 2, 2, 0},
	}
	for _, c := range cases {
		qr := flooredDivRem(c.a, c.b)
		if qr.quo != c.quo || qr.rem != c.rem {
			t.Errorf("flooredDivRem(%d,%d) = {%d,%d}, want {%d,%d}",
				c.a, c.b, qr.quo, qr.rem, c.quo, c.rem)
		}
		// a == quo*b + rem, with rem taking the sign of b.
		if c.a != qr.quo*c.b+qr.rem {
			t.Errorf("flooredDivRem(%d,%d): identity violated", c.a, c.b)
		}
	}
}

func TestFlooredMulDivRem(t *testing.T) {
	cases := []struct {
		x, a, b  int
		quo, rem int
	}{
		{3, 5, 2, 7, 1},
		{-3, 5, 2, -8, 1},
		{3, -5, 2, -8, 1},
	}
	for _, c := range cases {
		qr := flooredMulDivRem(c.x, c.a, c.b)
		if qr.quo != c.quo || qr.rem != c.rem {
			t.Errorf("flooredMulDivRem(%d,%d,%d) = {%d,%d}, want {%d,%d}",
				c.x, c.a, c.b, qr.quo, qr.rem, c.quo, c.rem)
		}
	}
}

func TestSplitX(t *testing.T) {
	cases := []struct {
		x      int
		ix, fx int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{GridX, 1, 0},
		{GridX + 3, 1, 3},
		{-1, -1, GridX - 1},
		{-GridX, -1, 0},
	}
	for _, c := range cases {
		ix, fx := splitX(c.x)
		if ix != c.ix || fx != c.fx {
			t.Errorf("splitX(%d) = (%d,%d), want (%d,%d)", c.x, ix, fx, c.ix, c.fx)
		}
	}
}

func TestAlphaFromArea(t *testing.T) {
	if a := alphaFromArea(0); a != 0 {
		t.Errorf("alphaFromArea(0) = %d, want 0", a)
	}
	if a := alphaFromArea(GridXY); a != 255 {
		t.Errorf("alphaFromArea(GridXY) = %d, want 255", a)
	}
	if a := alphaFromArea(GridXY * 10); a != 255 {
		t.Errorf("alphaFromArea overflow not clamped: got %d", a)
	}
	if a := alphaFromArea(GridXY / 2); a != 128 {
		t.Errorf("alphaFromArea(GridXY/2) = %d, want 128", a)
	}
}

func TestIntToGridScaledClamps(t *testing.T) {
	if got := intToGridScaled(maxInt, GridX); got < 0 {
		t.Errorf("intToGridScaled overflowed to negative: %d", got)
	}
	if got := intToGridScaled(minInt, GridX); got > 0 {
		t.Errorf("intToGridScaled underflowed to positive: %d", got)
	}
}
