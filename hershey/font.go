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

// Package hershey decodes fonts in the Hershey vector font format.
//
// Every glyph starts with a header of a 5-column glyph number and a
// 3-column count of coordinate pairs, followed by the coordinate pairs.
// The first pair gives the left and right bearing of the glyph.  Each
// coordinate is a single byte, encoding the value b-'R'.  The pair " R"
// lifts the pen, so that the next pair starts a new stroke.  The
// coordinate pairs may continue over several lines.
//
// Decoded fonts can be normalized to non-negative coordinates, written
// back in Hershey format, and written as Go source code.
package hershey

import (
	"errors"
	"io"
)

// Font is a decoded Hershey font.
type Font struct {
	Glyphs []*Glyph

	// MinY and MaxY give the vertical extent of all strokes in the font.
	MinY, MaxY int

	// Height is |MinY| + |MaxY|, computed at decode time.
	Height int
}

// Parse decodes all glyphs in data.  If data ends in the middle of a
// glyph, io.ErrUnexpectedEOF is returned.  Malformed glyph headers give a
// *SyntaxError.  In both cases, no font is returned.
func Parse(data []byte) (*Font, error) {
	d := NewDecoder(data)
	f := &Font{}
	var ext extent
	for {
		g, err := d.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		for _, s := range g.Segments {
			ext.add(s.X0, s.Y0)
			ext.add(s.X1, s.Y1)
		}
		f.Glyphs = append(f.Glyphs, g)
	}
	f.MinY, f.MaxY = ext.minY, ext.maxY
	f.Height = abs(f.MinY) + abs(f.MaxY)
	return f, nil
}

// Normalize translates every glyph by (-MinX, -MinY), so that all
// coordinates are non-negative and the strokes of every glyph start at
// x = 0.  Glyphs without strokes are given a single segment of length
// zero at the origin.  Height is left unchanged.
//
// Normalize is idempotent.
func (f *Font) Normalize() {
	dy := f.MinY
	for _, g := range f.Glyphs {
		dx := g.MinX
		for i := range g.Segments {
			s := &g.Segments[i]
			s.X0 -= dx
			s.X1 -= dx
			s.Y0 -= dy
			s.Y1 -= dy
		}
		if len(g.Segments) == 0 {
			g.Segments = append(g.Segments, Segment{})
		}
		g.MinX = 0
		g.MaxX -= dx
	}
	f.MaxY -= dy
	f.MinY = 0
}

// Widths returns the nominal widths of all glyphs.
func (f *Font) Widths() []int {
	res := make([]int, len(f.Glyphs))
	for i, g := range f.Glyphs {
		res[i] = g.Width()
	}
	return res
}

// RealWidths returns the stroke widths of all glyphs.
func (f *Font) RealWidths() []int {
	res := make([]int, len(f.Glyphs))
	for i, g := range f.Glyphs {
		res[i] = g.RealWidth
	}
	return res
}

// Sizes returns the number of segments of all glyphs.
func (f *Font) Sizes() []int {
	res := make([]int, len(f.Glyphs))
	for i, g := range f.Glyphs {
		res[i] = len(g.Segments)
	}
	return res
}
