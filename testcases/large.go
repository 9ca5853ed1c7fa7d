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
	"math"
)

// largeCases contain polygons with many edges or large extent, to
// exercise the active edge table with many concurrently active edges.
var largeCases = []TestCase{
	{
		Name:     "large_rectangle",
		Polygons: [][]image.Point{rectangle(50, 50, 462, 462)},
		Width:    512,
		Height:   512,
		Op:       Fill{},
	},
	{
		Name:     "large_diamond",
		Polygons: [][]image.Point{diamond(256, 256, 180)},
		Width:    512,
		Height:   512,
		Op:       Fill{},
	},
	{
		Name:     "large_polygram",
		Polygons: [][]image.Point{polygram(256, 256, 240, 31, 13)},
		Width:    512,
		Height:   512,
		Op:       Fill{},
	},
	{
		Name:     "large_clipped",
		Polygons: [][]image.Point{rectangle(-100, 100, 612, 400)},
		Width:    512,
		Height:   512,
		Op:       Fill{},
	},
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r int) []image.Point {
	return []image.Point{pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy)}
}

// polygram builds the star polygon {n/k}: n points on a circle, where
// each point is connected to the k-th next one.  For k > 1 the polygon
// is self-intersecting and many edges are active on every scanline.
func polygram(cx, cy int, r float64, n, k int) []image.Point {
	poly := make([]image.Point, n)
	for i := range n {
		angle := float64(i*k%n) * 2 * math.Pi / float64(n)
		poly[i] = pt(
			cx+int(math.Round(r*math.Cos(angle))),
			cy+int(math.Round(r*math.Sin(angle))),
		)
	}
	return poly
}
