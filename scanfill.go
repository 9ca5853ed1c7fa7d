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

// Package scanfill fills polygons with integer vertices using the
// classic scanline algorithm with an edge table and an active edge table.
//
// Only integer arithmetic is used.  A pixel (x, y) is painted if it lies
// on a scanline y between the lowest and the highest vertex (the highest
// scanline is excluded) and an odd number of polygon edges cross the
// scanline at or to the left of x.  Spans are half-open on the right, so
// that polygons which share an edge paint the pixels along the edge
// exactly once.
package scanfill

import (
	"fmt"
	"image"
)

// Filler converts polygons to horizontal pixel spans.
// The caller creates one instance and reuses it for multiple polygons.
// Internal buffers grow as needed but never shrink, so that filling
// allocates nothing in steady state.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	edges []edge // arena of edge records for the current fill
	et    []int  // edge table: indices into edges, sorted by yMin
	aet   []int  // active edge table: indices into edges

	// Scratch buffers for paths and strokes (reused across calls).
	pts     []image.Point
	offsets []int
}

// NewFiller returns a new Filler.
func NewFiller() *Filler {
	return &Filler{}
}

// Reset discards all state from previous fills, preserving internal
// buffer capacity for reuse.
func (f *Filler) Reset() {
	f.edges = f.edges[:0]
	f.et = f.et[:0]
	f.aet = f.aet[:0]
	f.pts = f.pts[:0]
	f.offsets = f.offsets[:0]
}

// DrawPolygon fills the polygon with vertices (x[i], y[i]) on the canvas.
// The polygon is closed implicitly.  Polygons with fewer than two
// vertices, or with all vertices on one scanline, paint nothing.
//
// DrawPolygon panics if x and y have different lengths.
func DrawPolygon(c Canvas, x, y []int) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("scanfill: %d x-coordinates but %d y-coordinates", len(x), len(y)))
	}
	pts := make([]image.Point, len(x))
	for i := range x {
		pts[i] = image.Point{X: x[i], Y: y[i]}
	}
	NewFiller().Polygon(c, pts)
}

// Polygon fills the closed polygon pts on the canvas.  Pixels are set
// scanline by scanline, from top to bottom, and from left to right
// within each scanline.  Every pixel is set at most once.
func (f *Filler) Polygon(c Canvas, pts []image.Point) {
	f.Spans(pts, func(y, xMin, xMax int) {
		paintSpan(c, y, xMin, xMax)
	})
}

// Spans computes the pixel spans covered by the closed polygon pts.
// For every scanline y, emit is called with the half-open ranges
// [xMin, xMax) of painted pixels, in increasing order of y and x.
func (f *Filler) Spans(pts []image.Point, emit func(y, xMin, xMax int)) {
	f.edges = f.edges[:0]
	f.addPolygon(pts)
	f.scan(emit)
}

// paintSpan sets the pixels xMin <= x < xMax on scanline y.
func paintSpan(c Canvas, y, xMin, xMax int) {
	for x := xMin; x < xMax; x++ {
		c.SetPixel(x, y)
	}
}

// scan runs the scanline loop over the edges currently in the arena.
func (f *Filler) scan(emit func(y, xMin, xMax int)) {
	f.sortEdges()
	f.aet = f.aet[:0]
	if len(f.et) == 0 {
		return // no non-horizontal edges
	}

	y := f.edges[f.et[0]].yMin
	next := 0 // first edge table entry not yet admitted
	for next < len(f.et) || len(f.aet) > 0 {
		// Retire edges which end at this scanline.
		k := 0
		for _, i := range f.aet {
			if f.edges[i].yMax != y {
				f.aet[k] = i
				k++
			}
		}
		f.aet = f.aet[:k]

		// Admit edges which start at this scanline.
		for next < len(f.et) && f.edges[f.et[next]].yMin == y {
			f.aet = append(f.aet, f.et[next])
			next++
		}

		if len(f.aet) == 0 {
			if next == len(f.et) {
				break
			}
			// Gap between subpaths: continue at the next edge.
			y = f.edges[f.et[next]].yMin
			continue
		}

		f.sortActive()

		// Pair up the edges.  An unpaired last edge can only occur for
		// malformed input and is ignored.
		for i := 0; i+1 < len(f.aet); i += 2 {
			xMin := f.edges[f.aet[i]].x
			xMax := f.edges[f.aet[i+1]].x
			if xMin < xMax {
				emit(y, xMin, xMax)
			}
		}

		for _, i := range f.aet {
			f.edges[i].step()
		}
		y++
	}
}
