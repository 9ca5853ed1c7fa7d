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
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"go/types"
	"io"
	"strings"
	"unicode"
)

const acknowledgement = `// The Hershey Fonts were originally created by Dr. A. V. Hershey while
// working at the U. S. National Bureau of Standards.
//
// The format of the Font data in this distribution was originally created by
// James Hurt, Cognition, Inc., 900 Technology Park Drive, Billerica, MA 01821.
`

// WriteGo writes the font as Go source code in package pkg.
//
// For glyph number i (counting from 1), the constants prefix_i_width,
// prefix_i_realwidth and prefix_i_size and the array prefix_i are
// generated.  The array holds four bytes (x0, y0, x1, y1) per segment.
// The font is described by prefix_count, prefix_height and the tables
// prefix_width, prefix_realwidth, prefix_size and prefix.
//
// The font must be normalized, so that all coordinates fit into a byte.
// Characters of prefix which are not valid in Go identifiers are
// replaced by underscores.
func (f *Font) WriteGo(w io.Writer, pkg, prefix string) error {
	prefix = Identifier(prefix)
	n := len(f.Glyphs)

	out := &bytes.Buffer{}
	fmt.Fprintf(out, "// Code generated by seehuhn.de/go/scanfill/cmd/hershey; DO NOT EDIT.\n\n")
	fmt.Fprintf(out, "%s\n", acknowledgement)
	fmt.Fprintf(out, "package %s\n\n", pkg)

	for i, g := range f.Glyphs {
		name := fmt.Sprintf("%s_%d", prefix, i+1)
		fmt.Fprintf(out, "// Glyph %d\n", g.ID)
		fmt.Fprintf(out, "const (\n")
		fmt.Fprintf(out, "%s_width = %d\n", name, g.Width())
		fmt.Fprintf(out, "%s_realwidth = %d\n", name, g.RealWidth)
		fmt.Fprintf(out, "%s_size = %d\n", name, 4*len(g.Segments))
		fmt.Fprintf(out, ")\n\n")

		fmt.Fprintf(out, "var %s = [%d]uint8{", name, 4*len(g.Segments))
		for j, s := range g.Segments {
			if j%4 == 0 {
				out.WriteString("\n")
			}
			for _, v := range []int{s.X0, s.Y0, s.X1, s.Y1} {
				if v < 0 || v > 255 {
					return fmt.Errorf("hershey: glyph %d: coordinate %d does not fit into a byte", g.ID, v)
				}
				fmt.Fprintf(out, "%d, ", v)
			}
		}
		fmt.Fprintf(out, "\n}\n\n")
	}

	fmt.Fprintf(out, "// Number of glyphs\n")
	fmt.Fprintf(out, "const %s_count = %d\n\n", prefix, n)
	fmt.Fprintf(out, "// Font height\n")
	fmt.Fprintf(out, "const %s_height = %d\n\n", prefix, f.Height)

	writeTable := func(comment, name, elem, suffix string) {
		fmt.Fprintf(out, "// %s\n", comment)
		fmt.Fprintf(out, "var %s = [%d]%s{", name, n, elem)
		for i := range f.Glyphs {
			if i%8 == 0 {
				out.WriteString("\n")
			}
			fmt.Fprintf(out, "%s_%d%s, ", prefix, i+1, suffix)
		}
		fmt.Fprintf(out, "\n}\n\n")
	}
	writeTable("Widths of the glyphs", prefix+"_width", "int", "_width")
	writeTable("Real widths of the glyphs, calculated from the strokes", prefix+"_realwidth", "int", "_realwidth")
	writeTable("Number of data bytes in each glyph", prefix+"_size", "int", "_size")
	writeTable("Glyph data", prefix, "[]uint8", "[:]")

	src, err := format.Source(out.Bytes())
	if err != nil {
		return fmt.Errorf("hershey: formatting generated code: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// Identifier converts s into a valid Go identifier.  Invalid characters
// are replaced by underscores, and a leading digit is prefixed with an
// underscore.  Go keywords and predeclared names such as int or nil get
// a trailing underscore.  The empty string
// is mapped to "font".
func Identifier(s string) string {
	if s == "" {
		return "font"
	}
	var b strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if token.IsKeyword(b.String()) || types.Universe.Lookup(b.String()) != nil {
		b.WriteByte('_')
	}
	return b.String()
}
