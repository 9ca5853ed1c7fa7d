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
	"errors"
	"image"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrCurve is returned by [Filler.FillPath] for paths which contain
// quadratic or cubic curve segments.
var ErrCurve = errors.New("scanfill: path contains curve segments")

// FillPath fills all subpaths of p on the canvas, using the even-odd
// rule.  Every subpath is closed implicitly.  Vertex coordinates are
// rounded to the nearest integer.  Curve segments are not supported; if p
// contains any, ErrCurve is returned and nothing is painted.
func (f *Filler) FillPath(c Canvas, p *path.Data) error {
	f.edges = f.edges[:0]
	f.pts = f.pts[:0]
	f.offsets = f.offsets[:0]

	// Walk the path using direct field access (no iterator allocation)
	coordIdx := 0
	var start image.Point
	closed := false
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			start = roundPoint(p.Coords[coordIdx])
			coordIdx++
			f.offsets = append(f.offsets, len(f.pts))
			f.pts = append(f.pts, start)
			closed = false
		case path.CmdLineTo:
			q := roundPoint(p.Coords[coordIdx])
			coordIdx++
			if len(f.offsets) == 0 {
				f.offsets = append(f.offsets, 0)
				start = q
			} else if closed {
				// after ClosePath the current point is the subpath start
				f.offsets = append(f.offsets, len(f.pts))
				f.pts = append(f.pts, start)
				closed = false
			}
			f.pts = append(f.pts, q)
		case path.CmdQuadTo, path.CmdCubeTo:
			return ErrCurve
		case path.CmdClose:
			closed = len(f.offsets) > 0
		}
	}

	for i, start := range f.offsets {
		end := len(f.pts)
		if i+1 < len(f.offsets) {
			end = f.offsets[i+1]
		}
		f.addPolygon(f.pts[start:end])
	}
	f.scan(func(y, xMin, xMax int) {
		paintSpan(c, y, xMin, xMax)
	})
	return nil
}

// roundPoint converts a path vertex to the nearest integer point.
func roundPoint(v vec.Vec2) image.Point {
	return image.Point{
		X: int(math.Round(v.X)),
		Y: int(math.Round(v.Y)),
	}
}
