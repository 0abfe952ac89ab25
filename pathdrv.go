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

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrUnsupportedCommand is returned by FillPath when the path
// contains a curve command. Curve flattening is out of scope for
// this converter: flatten curves to line segments before calling
// FillPath.
var ErrUnsupportedCommand = errors.New("glitter: path contains a curve command")

// ErrNotIdentity is returned by FillPath when a non-identity CTM is
// supplied. This converter works purely in pixel space; transform the
// path's coordinates yourself before calling FillPath.
var ErrNotIdentity = errors.New("glitter: CTM must be matrix.Identity")

// FillRule selects the polygon fill rule a PathFiller applies.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// PathFiller turns a path.Data built from MoveTo/LineTo/Close
// commands into edges for a Converter and renders it to an
// A8Consumer-compatible buffer. It is the "path provider" collaborator
// a Converter expects something else in the pipeline to implement.
type PathFiller struct {
	conv *Converter
	clip rect.Rect
}

// NewPathFiller returns a PathFiller clipped to clip, whose corners
// must fall on integer pixel boundaries.
func NewPathFiller(clip rect.Rect) *PathFiller {
	return &PathFiller{
		conv: NewConverter(),
		clip: clip,
	}
}

// FillPath rasterises p under rule into pixels, an A8 buffer with the
// given row stride, assumed already zeroed by the caller. ctm must be
// matrix.Identity: this converter does not support affine transforms
// on its input. p must contain only MoveTo, LineTo and Close commands;
// QuadTo and CubeTo are rejected since curve flattening is out of
// scope.
func (f *PathFiller) FillPath(p *path.Data, ctm matrix.Matrix, rule FillRule, pixels []byte, stride int) error {
	if ctm != matrix.Identity {
		return ErrNotIdentity
	}

	xmin, ymin := int(f.clip.LLx), int(f.clip.LLy)
	xmax, ymax := int(f.clip.URx), int(f.clip.URy)
	if err := f.conv.Reset(xmin, ymin, xmax, ymax); err != nil {
		return err
	}

	var current, subpathStart vec.Vec2
	haveCurrent := false
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if haveCurrent && current != subpathStart {
				if err := f.addLine(current, subpathStart); err != nil {
					return err
				}
			}
			current = p.Coords[coordIdx]
			subpathStart = current
			haveCurrent = true
			coordIdx++

		case path.CmdLineTo:
			to := p.Coords[coordIdx]
			if haveCurrent {
				if err := f.addLine(current, to); err != nil {
					return err
				}
			}
			current = to
			haveCurrent = true
			coordIdx++

		case path.CmdQuadTo, path.CmdCubeTo:
			return fmt.Errorf("%w: %v", ErrUnsupportedCommand, cmd)

		case path.CmdClose:
			if haveCurrent && current != subpathStart {
				if err := f.addLine(current, subpathStart); err != nil {
					return err
				}
			}
			current = subpathStart
		}
	}
	if haveCurrent && current != subpathStart {
		if err := f.addLine(current, subpathStart); err != nil {
			return err
		}
	}

	consumer := NewA8Consumer(pixels, stride)
	return f.conv.Render(rule == NonZero, consumer)
}

// addLine feeds one closed-path edge to the converter, scaling
// pixel-space coordinates up to the input-scaled fixed point the
// Converter's AddEdge expects.
func (f *PathFiller) addLine(from, to vec.Vec2) error {
	x1 := int(from.X * inputScale)
	y1 := int(from.Y * inputScale)
	x2 := int(to.X * inputScale)
	y2 := int(to.Y * inputScale)
	return f.conv.AddEdge(x1, y1, x2, y2, +1)
}
