// seehuhn.de/go/scanfill - integer scanline polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"image"

	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name     string          // lowercase a-z and _ only
	Polygons [][]image.Point // the geometry to render
	Width    int             // canvas width in pixels
	Height   int             // canvas height in pixels
	Op       Operation       // fill or stroke
}

// Operation is the rendering operation to apply to the polygons.
type Operation interface {
	isOperation()
}

// Fill fills every polygon separately, in order.
type Fill struct{}

func (Fill) isOperation() {}

// Compound fills all polygons together as the subpaths of one path,
// so that overlapping regions cancel out.
type Compound struct{}

func (Compound) isOperation() {}

// Stroke strokes every edge of the polylines in Polygons.
// The polylines are not closed.
type Stroke struct {
	Width int                   // line width (>0)
	Cap   graphics.LineCapStyle // LineCapButt, LineCapRound, LineCapSquare
}

func (Stroke) isOperation() {}

// pt is a helper to create an image.Point from x, y coordinates.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}
