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

// tilingCases contain polygons which share edges or vertices.  Every
// pixel of the covered area must be painted exactly once.
var tilingCases = []TestCase{
	{
		Name: "shared_diagonal",
		Polygons: [][]image.Point{
			{pt(0, 0), pt(4, 0), pt(0, 4)},
			{pt(4, 0), pt(4, 4), pt(0, 4)},
		},
		Width:  8,
		Height: 8,
		Op:     Fill{},
	},
	{
		Name: "shared_diagonal_reversed",
		Polygons: [][]image.Point{
			{pt(4, 0), pt(4, 4), pt(0, 4)},
			{pt(0, 0), pt(4, 0), pt(0, 4)},
		},
		Width:  8,
		Height: 8,
		Op:     Fill{},
	},
	{
		Name:     "grid",
		Polygons: rectangleGrid(4, 4, 64, 64, 0),
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "fan",
		Polygons: triangleFan(32, 32, 28, 7),
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
}

// rectangleGrid builds a grid of rectangles.  With gap 0, neighbouring
// rectangles share their edges.
func rectangleGrid(rows, cols, width, height, gap int) [][]image.Point {
	cellW := width / cols
	cellH := height / rows

	var polys [][]image.Point
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x1 := col*cellW + gap
			y1 := row*cellH + gap
			x2 := (col+1)*cellW - gap
			y2 := (row+1)*cellH - gap
			polys = append(polys, rectangle(x1, y1, x2, y2))
		}
	}
	return polys
}

// triangleFan builds n triangles around a common centre.  Consecutive
// triangles share an edge.
func triangleFan(cx, cy int, r float64, n int) [][]image.Point {
	rim := make([]image.Point, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		rim[i] = pt(
			cx+int(math.Round(r*math.Cos(angle))),
			cy+int(math.Round(r*math.Sin(angle))),
		)
	}
	polys := make([][]image.Point, n)
	for i := range n {
		polys[i] = triangle(cx, cy, rim[i].X, rim[i].Y, rim[(i+1)%n].X, rim[(i+1)%n].Y)
	}
	return polys
}
