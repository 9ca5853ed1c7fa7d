package hershey

import (
	"bytes"
	"fmt"
)

// Limits of the text encoding.
const (
	minCoord   = '!' - origin // smallest coordinate with a printable encoding
	maxCoord   = '~' - origin // largest coordinate with a printable encoding
	maxPairs   = 999
	lineLength = 72
)

// MarshalText encodes the glyph in Hershey format, without a trailing
// newline.  Consecutive segments which share an end point are joined into
// one stroke.  Long glyphs are split into lines of 72 bytes.
func (g *Glyph) MarshalText() ([]byte, error) {
	pairs := make([][2]int, 0, 1+2*len(g.Segments))
	pairs = append(pairs, [2]int{g.Left, g.Right})
	for i, s := range g.Segments {
		if i > 0 {
			prev := g.Segments[i-1]
			if prev.X1 == s.X0 && prev.Y1 == s.Y0 {
				pairs = append(pairs, [2]int{s.X1, s.Y1})
				continue
			}
			pairs = append(pairs, [2]int{penUpX, penUpY})
		}
		pairs = append(pairs, [2]int{s.X0, s.Y0}, [2]int{s.X1, s.Y1})
	}
	if len(pairs) > maxPairs {
		return nil, fmt.Errorf("hershey: glyph %d has %d coordinate pairs", g.ID, len(pairs))
	}

	text := fmt.Appendf(nil, "%5d%3d", g.ID, len(pairs))
	for i, p := range pairs {
		if i > 0 && p == [2]int{penUpX, penUpY} {
			text = append(text, ' ', origin)
			continue
		}
		for _, v := range p {
			if v < minCoord || v > maxCoord {
				return nil, fmt.Errorf("hershey: glyph %d: coordinate %d out of range", g.ID, v)
			}
			text = append(text, byte(v+origin))
		}
	}

	var res bytes.Buffer
	for i := 0; i < len(text); i += lineLength {
		if i > 0 {
			res.WriteByte('\n')
		}
		res.Write(text[i:min(i+lineLength, len(text))])
	}
	return res.Bytes(), nil
}

// MarshalText encodes the font in Hershey format, one glyph per line.
func (f *Font) MarshalText() ([]byte, error) {
	var res []byte
	for _, g := range f.Glyphs {
		text, err := g.MarshalText()
		if err != nil {
			return nil, err
		}
		res = append(res, text...)
		res = append(res, '\n')
	}
	return res, nil
}
