package scanfill

import (
	"image"
	"testing"
)

func TestNewEdge(t *testing.T) {
	type testCase struct {
		a, b image.Point
		want edge
		ok   bool
	}
	cases := []testCase{
		{ // horizontal
			a: image.Point{X: 0, Y: 3}, b: image.Point{X: 5, Y: 3},
			ok: false,
		},
		{ // vertical
			a: image.Point{X: 2, Y: 7}, b: image.Point{X: 2, Y: 1},
			want: edge{yMin: 1, yMax: 7, x: 2, sign: -1, dx: 0, dy: 6},
			ok:   true,
		},
		{ // rising to the right
			a: image.Point{X: 0, Y: 0}, b: image.Point{X: 2, Y: 4},
			want: edge{yMin: 0, yMax: 4, x: 0, sign: 1, dx: 2, dy: 4},
			ok:   true,
		},
		{ // same edge, opposite direction
			a: image.Point{X: 2, Y: 4}, b: image.Point{X: 0, Y: 0},
			want: edge{yMin: 0, yMax: 4, x: 0, sign: 1, dx: 2, dy: 4},
			ok:   true,
		},
		{ // falling to the right
			a: image.Point{X: 0, Y: 4}, b: image.Point{X: 4, Y: 0},
			want: edge{yMin: 0, yMax: 4, x: 4, sign: -1, dx: 4, dy: 4},
			ok:   true,
		},
		{ // shallow
			a: image.Point{X: -3, Y: 10}, b: image.Point{X: 17, Y: 12},
			want: edge{yMin: 10, yMax: 12, x: -3, sign: 1, dx: 20, dy: 2},
			ok:   true,
		},
	}
	for i, tc := range cases {
		got, ok := newEdge(tc.a, tc.b)
		if ok != tc.ok {
			t.Errorf("%d: ok=%t, want %t", i, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("%d: got %+v, want %+v", i, got, tc.want)
		}
	}
}

// TestEdgeStep checks that stepping an edge from scanline to scanline
// gives the same x-coordinates as computing them directly.
func TestEdgeStep(t *testing.T) {
	ends := []image.Point{
		{X: 0, Y: 0}, {X: 1, Y: 7}, {X: 7, Y: 1}, {X: -13, Y: 9},
		{X: 100, Y: 3}, {X: 3, Y: 100}, {X: -50, Y: -49},
	}
	for _, a := range ends {
		for _, b := range ends {
			e, ok := newEdge(a, b)
			if !ok {
				continue
			}
			x0 := e.x
			for y := e.yMin; y < e.yMax; y++ {
				want := x0 + e.sign*((y-e.yMin)*e.dx/e.dy)
				if e.x != want {
					t.Fatalf("%v-%v at y=%d: x=%d, want %d", a, b, y, e.x, want)
				}
				if e.sum < 0 || e.sum >= e.dy {
					t.Fatalf("%v-%v at y=%d: accumulator %d out of range", a, b, y, e.sum)
				}
				e.step()
			}
		}
	}
}

func TestCompareX(t *testing.T) {
	steep := edge{x: 3, dx: 1, dy: 4}
	shallow := edge{x: 3, dx: 3, dy: 4}
	vertical := edge{x: 3, dx: 0, dy: 9}
	left := edge{x: 2, dx: 9, dy: 1}

	if compareX(&left, &steep) >= 0 {
		t.Error("smaller x must sort first")
	}
	if compareX(&steep, &shallow) >= 0 {
		t.Error("steeper edge must sort first on equal x")
	}
	if compareX(&vertical, &steep) >= 0 {
		t.Error("vertical edge must sort first on equal x")
	}
	same := edge{x: 3, dx: 2, dy: 8}
	if compareX(&steep, &same) != 0 {
		t.Error("equal slopes must compare equal")
	}
}
