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

package scanfill

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// arcSteps is the number of polygon edges used for a half circle
// when approximating round caps.
const arcSteps = 8

// StrokeLine paints the line segment from p0 to p1 with the given width.
// The outline of the stroke is converted to a polygon with integer
// vertices and filled.  Round caps are approximated by polygons.
//
// If p0 == p1, square caps give a square and round caps give a disk
// centred at the point; butt caps paint nothing.  Nothing is painted if
// width <= 0.
func (f *Filler) StrokeLine(c Canvas, p0, p1 image.Point, width int, capStyle graphics.LineCapStyle) {
	if width <= 0 {
		return
	}
	d := float64(width) / 2

	A := vec.Vec2{X: float64(p0.X), Y: float64(p0.Y)}
	B := vec.Vec2{X: float64(p1.X), Y: float64(p1.Y)}

	f.pts = f.pts[:0]
	if p0 == p1 {
		T := vec.Vec2{X: 1, Y: 0}
		switch capStyle {
		case graphics.LineCapSquare:
			f.addSquare(A, T, d)
		case graphics.LineCapRound:
			f.addArc(A, d, T, 2*math.Pi)
		default:
			return
		}
	} else {
		T := B.Sub(A)
		T = T.Mul(1 / T.Length())      // unit tangent (A→B direction)
		N := vec.Vec2{X: -T.Y, Y: T.X} // unit normal (90° CCW from T)

		if capStyle == graphics.LineCapSquare {
			A = A.Sub(T.Mul(d))
			B = B.Add(T.Mul(d))
		}

		f.pts = append(f.pts, roundPoint(A.Add(N.Mul(d))), roundPoint(B.Add(N.Mul(d))))
		if capStyle == graphics.LineCapRound {
			f.addArc(B, d, N, -math.Pi)
		}
		f.pts = append(f.pts, roundPoint(B.Sub(N.Mul(d))), roundPoint(A.Sub(N.Mul(d))))
		if capStyle == graphics.LineCapRound {
			f.addArc(A, d, N.Mul(-1), -math.Pi)
		}
	}

	f.edges = f.edges[:0]
	f.addPolygon(f.pts)
	f.scan(func(y, xMin, xMax int) {
		paintSpan(c, y, xMin, xMax)
	})
}

// addArc appends the vertices of a circular arc around center to the
// outline.  The arc starts in direction startDir (a unit vector) and
// sweeps by the given angle; negative angles sweep clockwise in a
// y-down coordinate system.
func (f *Filler) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	n := int(math.Ceil(math.Abs(sweep) / math.Pi * arcSteps))
	perp := vec.Vec2{X: -startDir.Y, Y: startDir.X}
	for i := 0; i <= n; i++ {
		phi := sweep * float64(i) / float64(n)
		dir := startDir.Mul(math.Cos(phi)).Add(perp.Mul(math.Sin(phi)))
		f.pts = append(f.pts, roundPoint(center.Add(dir.Mul(radius))))
	}
}

// addSquare appends the corners of a square centred at center, with
// side length 2*d, oriented along the unit tangent T.
func (f *Filler) addSquare(center vec.Vec2, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X} // normal (90° CCW from T)
	f.pts = append(f.pts,
		roundPoint(center.Add(T.Mul(d)).Add(N.Mul(d))),
		roundPoint(center.Add(T.Mul(d)).Sub(N.Mul(d))),
		roundPoint(center.Sub(T.Mul(d)).Sub(N.Mul(d))),
		roundPoint(center.Sub(T.Mul(d)).Add(N.Mul(d))),
	)
}
