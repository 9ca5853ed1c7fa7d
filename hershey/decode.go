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

package hershey

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// penUp is the coordinate pair " R", which starts a new stroke.
const (
	penUpX = ' ' - origin
	penUpY = 0
)

// Segment is a straight line from (X0, Y0) to (X1, Y1).
type Segment struct {
	X0, Y0, X1, Y1 int
}

// Glyph is a decoded Hershey glyph.
type Glyph struct {
	ID int

	// Left and Right are the bearings from the glyph header.
	Left, Right int

	Segments []Segment

	// MinX and MaxX give the horizontal extent of the strokes.
	MinX, MaxX int

	// RealWidth is the width of the strokes, |MaxX| + |MinX|, computed
	// at decode time.  For glyphs without visible strokes this is the
	// nominal width.
	RealWidth int
}

// Width returns the nominal width of the glyph, |Left| + |Right|.
func (g *Glyph) Width() int {
	return abs(g.Left) + abs(g.Right)
}

// isDegenerate reports whether the glyph has no strokes, or only a
// single stroke of length zero.
func (g *Glyph) isDegenerate() bool {
	switch len(g.Segments) {
	case 0:
		return true
	case 1:
		s := g.Segments[0]
		return s.X0 == s.X1 && s.Y0 == s.Y1
	default:
		return false
	}
}

// SyntaxError is returned when a glyph header cannot be parsed.
type SyntaxError struct {
	Glyph  int    // index of the glyph in the file, starting at 0
	Offset int    // byte offset of the error
	Column int    // column of the error
	Window string // input bytes around the error, starting 10 bytes before Offset
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("hershey: invalid glyph number for glyph %d at offset %d, column %d",
		e.Glyph, e.Offset, e.Column)
}

// Diagnostic returns a multi-line description of the error, in the form
// of a "#error" line, the input around the error and a caret pointing to
// the error position.
func (e *SyntaxError) Diagnostic() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "#error Error parsing glyph number %d (or so)\n", e.Glyph)
	fmt.Fprintf(b, "%s\n", e.Window)
	fmt.Fprintf(b, "%s^\n", strings.Repeat(" ", windowBefore))
	fmt.Fprintf(b, "col: %d\n", e.Column)
	return b.String()
}

// Size of the input window in a SyntaxError.
const (
	windowBefore = 10
	windowSize   = 30
)

// Decoder reads glyphs from Hershey font data.
type Decoder struct {
	r   reader
	idx int
}

// NewDecoder returns a decoder which reads glyphs from data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{r: reader{buf: data}}
}

// Next decodes the next glyph.  At the end of the input, Next returns
// io.EOF.  If the input ends in the middle of a glyph,
// io.ErrUnexpectedEOF is returned.  If a glyph header cannot be parsed, a
// *SyntaxError is returned.
func (d *Decoder) Next() (*Glyph, error) {
	r := &d.r
	r.skipSpace()
	if r.eof() {
		return nil, io.EOF
	}

	id := r.number(idColumns)
	if id == 0 {
		return nil, &SyntaxError{
			Glyph:  d.idx,
			Offset: r.pos,
			Column: r.col,
			Window: r.window(-windowBefore, windowSize),
		}
	}

	r.skipSpace()
	pairs := r.number(pairColumns)
	r.skipSpace()

	g := &Glyph{ID: id}
	var ok bool
	g.Left, g.Right, ok = r.pair()
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}

	var ext extent
	penDown := false
	var x, y int
	for range pairs - 1 {
		px, py, ok := r.pair()
		if !ok {
			return nil, io.ErrUnexpectedEOF
		}
		if px == penUpX && py == penUpY {
			penDown = false
			continue
		}
		if penDown {
			g.Segments = append(g.Segments, Segment{x, y, px, py})
			ext.add(x, y)
			ext.add(px, py)
		}
		x, y = px, py
		penDown = true
	}

	if len(g.Segments) == 0 {
		g.MinX, g.MaxX = 0, g.Width()
	} else {
		g.MinX, g.MaxX = ext.minX, ext.maxX
	}
	if g.isDegenerate() {
		g.RealWidth = g.Width()
	} else {
		g.RealWidth = abs(g.MaxX) + abs(g.MinX)
	}

	logger().Debug("glyph",
		slog.Int("idx", d.idx),
		slog.Int("id", g.ID),
		slog.Int("pairs", pairs),
		slog.Int("left", g.Left),
		slog.Int("right", g.Right),
		slog.Int("width", g.Width()))

	if n := r.skipControl(); n > 0 {
		logger().Debug("skipped control bytes", slog.Int("idx", d.idx), slog.Int("count", n))
	}
	d.idx++

	return g, nil
}

// extent tracks the bounding box of a set of points.
type extent struct {
	minX, maxX, minY, maxY int
	nonEmpty               bool
}

func (e *extent) add(x, y int) {
	if !e.nonEmpty {
		e.minX, e.maxX, e.minY, e.maxY = x, x, y, y
		e.nonEmpty = true
		return
	}
	e.minX = min(e.minX, x)
	e.maxX = max(e.maxX, x)
	e.minY = min(e.minY, y)
	e.maxY = max(e.maxY, y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
