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
	"cmp"
	"image"
	"slices"
)

// edge is the edge table entry for one non-horizontal polygon edge.
// The edge is active for the scanlines yMin <= y < yMax.
type edge struct {
	yMax int // first scanline after the edge
	yMin int // first scanline of the edge
	x    int // x-intersection with the current scanline
	sign int // +1 if x increases with y, -1 if it decreases
	dx   int // |x1 - x0|
	dy   int // |y1 - y0|, always >= 1
	sum  int // error accumulator for stepping x, 0 <= sum < dy
}

// newEdge builds the edge table entry for the polygon edge from a to b.
// The second return value is false for horizontal edges, which are not
// represented in the edge table.
func newEdge(a, b image.Point) (edge, bool) {
	// Order the endpoints from left to right; sign then records whether
	// the edge rises or falls along x.
	if b.X < a.X {
		a, b = b, a
	}

	dy := b.Y - a.Y
	if dy == 0 {
		return edge{}, false
	}

	e := edge{
		sign: 1,
		dx:   b.X - a.X,
		dy:   dy,
	}
	if dy < 0 {
		e.sign = -1
		e.dy = -dy
	}
	if a.Y < b.Y {
		e.yMin, e.yMax, e.x = a.Y, b.Y, a.X
	} else {
		e.yMin, e.yMax, e.x = b.Y, a.Y, b.X
	}
	return e, true
}

// step advances the edge to the next scanline. This is the integer form
// of x += dx/dy, without rounding drift.
func (e *edge) step() {
	e.sum += e.dx
	if e.sum >= e.dy {
		n := e.sum / e.dy
		e.x += n * e.sign
		e.sum -= n * e.dy
	}
}

// compareX orders active edges by their current x-intersection.  Ties are
// broken by the slope magnitude dx/dy, compared by cross-multiplication
// so that no precision is lost.
func compareX(a, b *edge) int {
	if c := cmp.Compare(a.x, b.x); c != 0 {
		return c
	}
	return cmp.Compare(a.dx*b.dy, b.dx*a.dy)
}

// addPolygon appends the edges of the closed polygon pts to the edge
// arena.  The closing edge from the last vertex back to the first is
// included.
func (f *Filler) addPolygon(pts []image.Point) {
	n := len(pts)
	if n < 2 {
		return
	}
	prev := pts[n-1]
	for _, cur := range pts {
		if e, ok := newEdge(prev, cur); ok {
			f.edges = append(f.edges, e)
		}
		prev = cur
	}
}

// sortEdges builds the edge table: the indices of all edges in the
// arena, ordered by yMin.  Edges with equal yMin keep their polygon
// order.
func (f *Filler) sortEdges() {
	f.et = f.et[:0]
	for i := range f.edges {
		f.et = append(f.et, i)
	}
	slices.SortStableFunc(f.et, func(i, j int) int {
		return cmp.Compare(f.edges[i].yMin, f.edges[j].yMin)
	})
}

// sortActive orders the active edge table for span emission.
func (f *Filler) sortActive() {
	slices.SortStableFunc(f.aet, func(i, j int) int {
		return compareX(&f.edges[i], &f.edges[j])
	})
}
