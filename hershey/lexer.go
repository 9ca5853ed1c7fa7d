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

// Column limits of the fixed-width glyph header.
const (
	idColumns   = 5 // the glyph id ends before this column
	pairColumns = 8 // the pair count ends before this column
)

// origin is the byte which encodes the coordinate 0.
const origin = 'R'

// reader is a column-aware byte reader for Hershey font data.
// The column counter is reset by every line break.
type reader struct {
	buf []byte
	pos int
	col int
}

func (r *reader) eof() bool {
	return r.pos >= len(r.buf)
}

// advance consumes one byte and updates the column.
func (r *reader) advance() {
	if b := r.buf[r.pos]; b == '\n' || b == '\r' {
		r.col = 0
	} else {
		r.col++
	}
	r.pos++
}

// skipSpace skips blanks and line breaks.
func (r *reader) skipSpace() {
	for !r.eof() {
		switch r.buf[r.pos] {
		case ' ', '\t', '\n', '\r':
			r.advance()
		default:
			return
		}
	}
}

// skipControl skips all bytes up to and including ' '.  It returns the
// number of bytes skipped which are neither blanks nor line breaks.
func (r *reader) skipControl() int {
	garbage := 0
	for !r.eof() && r.buf[r.pos] <= ' ' {
		switch r.buf[r.pos] {
		case ' ', '\t', '\n', '\r':
		default:
			garbage++
		}
		r.advance()
	}
	return garbage
}

// skipNewlines skips line breaks inside the coordinate stream.
func (r *reader) skipNewlines() {
	for !r.eof() && (r.buf[r.pos] == '\n' || r.buf[r.pos] == '\r') {
		r.advance()
	}
}

// number reads a decimal number which ends before column maxCol.
// If no digits are found, 0 is returned.
func (r *reader) number(maxCol int) int {
	n := 0
	for !r.eof() && r.col < maxCol {
		b := r.buf[r.pos]
		if b < '0' || b > '9' {
			break
		}
		n = 10*n + int(b-'0')
		r.advance()
	}
	return n
}

// coord reads one coordinate byte.  The second return value is false at
// the end of input.
func (r *reader) coord() (int, bool) {
	if r.eof() {
		return 0, false
	}
	v := int(r.buf[r.pos]) - origin
	r.advance()
	return v, true
}

// pair reads a coordinate pair.  Line breaks after each coordinate byte
// are skipped, so that pairs may be split across lines.
func (r *reader) pair() (x, y int, ok bool) {
	x, ok = r.coord()
	if !ok {
		return 0, 0, false
	}
	r.skipNewlines()
	y, ok = r.coord()
	if !ok {
		return 0, 0, false
	}
	r.skipNewlines()
	return x, y, true
}

// window returns n bytes of input starting at pos+offset.  Line breaks are
// shown as 'n' and 'r'; positions before the start of the input are
// shown as blanks.
func (r *reader) window(offset, n int) string {
	res := make([]byte, 0, n)
	for i := range n {
		p := r.pos + offset + i
		if p >= len(r.buf) {
			break
		}
		if p < 0 {
			res = append(res, ' ')
			continue
		}
		switch b := r.buf[p]; b {
		case '\n':
			res = append(res, 'n')
		case '\r':
			res = append(res, 'r')
		default:
			res = append(res, b)
		}
	}
	return string(res)
}
