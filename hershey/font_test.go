package hershey

import (
	"bytes"
	"os"
	"slices"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	f.Normalize()

	want := [][]Segment{
		{{1, 0, 1, 14}, {1, 19, 0, 20}, {0, 20, 1, 21}, {1, 21, 2, 20}, {2, 20, 1, 19}},
		{{0, 0, 0, 7}, {8, 0, 8, 7}},
		{{0, 0, 0, 0}},
	}
	for i, g := range f.Glyphs {
		if !slices.Equal(g.Segments, want[i]) {
			t.Errorf("glyph %d: segments %v, want %v", g.ID, g.Segments, want[i])
		}
	}
	if f.MinY != 0 || f.MaxY != 21 || f.Height != 21 {
		t.Errorf("vertical extent %d..%d, height %d, want 0..21, 21", f.MinY, f.MaxY, f.Height)
	}
	if got := f.Sizes(); !slices.Equal(got, []int{5, 2, 1}) {
		t.Errorf("sizes %v", got)
	}
	if got := f.RealWidths(); !slices.Equal(got, []int{2, 8, 16}) {
		t.Errorf("real widths %v", got)
	}
}

func TestNormalizeInvariants(t *testing.T) {
	data, err := os.ReadFile("testdata/sample.jhf")
	if err != nil {
		t.Fatal(err)
	}
	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	f.Normalize()

	for _, g := range f.Glyphs {
		if len(g.Segments) == 0 {
			t.Errorf("glyph %d has no segments", g.ID)
			continue
		}
		minX := g.Segments[0].X0
		for _, s := range g.Segments {
			for _, v := range []int{s.X0, s.Y0, s.X1, s.Y1} {
				if v < 0 {
					t.Errorf("glyph %d: negative coordinate in %v", g.ID, s)
				}
			}
			minX = min(minX, s.X0, s.X1)
		}
		if minX != 0 {
			t.Errorf("glyph %d: min x = %d", g.ID, minX)
		}
		if g.MinX != 0 {
			t.Errorf("glyph %d: MinX = %d", g.ID, g.MinX)
		}
	}

	// A second normalization changes nothing.
	before, err := f.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	f.Normalize()
	after, err := f.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("normalization is not idempotent:\n%s\n%s", before, after)
	}
}

func TestMarshalGlyph(t *testing.T) {
	const line = "    1  9MWRFRT RRYQZR[SZRY"
	g, err := NewDecoder([]byte(line)).Next()
	if err != nil {
		t.Fatal(err)
	}
	text, err := g.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != line {
		t.Errorf("got %q, want %q", text, line)
	}
}

// TestRoundTrip checks that decoding, normalizing and encoding a font
// reaches a fixed point after one round.
func TestRoundTrip(t *testing.T) {
	data, err := os.ReadFile("testdata/sample.jhf")
	if err != nil {
		t.Fatal(err)
	}

	round := func(in []byte) ([]byte, *Font) {
		f, err := Parse(in)
		if err != nil {
			t.Fatal(err)
		}
		f.Normalize()
		out, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		return out, f
	}

	first, f1 := round(data)
	second, f2 := round(first)
	if !bytes.Equal(first, second) {
		t.Errorf("round trip is not a fixed point:\n%s\n%s", first, second)
	}
	for i := range f1.Glyphs {
		g1, g2 := f1.Glyphs[i], f2.Glyphs[i]
		if g1.ID != g2.ID || g1.Width() != g2.Width() || g1.RealWidth != g2.RealWidth {
			t.Errorf("glyph %d changed: %+v, %+v", g1.ID, g1, g2)
		}
		if !slices.Equal(g1.Segments, g2.Segments) {
			t.Errorf("glyph %d: segments %v, %v", g1.ID, g1.Segments, g2.Segments)
		}
	}
}

func TestMarshalLongGlyph(t *testing.T) {
	g := &Glyph{ID: 12345, Left: -10, Right: 10}
	for i := range 40 {
		x := i%20 - 10
		g.Segments = append(g.Segments, Segment{x, -5, x, 5})
	}

	text, err := g.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(string(text), "\n")
	if len(lines) != 4 {
		t.Errorf("%d lines, want 4", len(lines))
	}
	for _, line := range lines {
		if len(line) > lineLength {
			t.Errorf("line too long: %q", line)
		}
	}

	g2, err := NewDecoder(text).Next()
	if err != nil {
		t.Fatal(err)
	}
	if g2.ID != g.ID || !slices.Equal(g2.Segments, g.Segments) {
		t.Errorf("decoded %+v, want %+v", g2, g)
	}
}

func TestMarshalErrors(t *testing.T) {
	bad := &Glyph{ID: 1, Segments: []Segment{{0, 0, 60, 0}}}
	if _, err := bad.MarshalText(); err == nil {
		t.Error("coordinate out of range not detected")
	}

	long := &Glyph{ID: 2}
	for i := range 500 {
		long.Segments = append(long.Segments, Segment{i % 2, 0, i % 2, 1})
	}
	if _, err := long.MarshalText(); err == nil {
		t.Error("pair count overflow not detected")
	}
}
