package scanfill

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/scanfill/testcases"
)

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			var ref []byte
			switch tc.Op.(type) {
			case testcases.Fill:
				ref = referenceFill(tc.Polygons, tc.Width, tc.Height)
			case testcases.Compound:
				ref = referenceCompound(tc.Polygons, tc.Width, tc.Height)
			default:
				continue
			}
			t.Run(name, func(t *testing.T) {
				w, h := tc.Width, tc.Height
				actual := make([]byte, w*h)

				RenderExample(tc, actual, w, h, w)

				if err := compareImages(name, ref, actual, w, h); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

func TestRenderStroke(t *testing.T) {
	for _, tc := range testcases.All["stroke"] {
		t.Run(tc.Name, func(t *testing.T) {
			w, h := tc.Width, tc.Height
			actual := make([]byte, w*h)
			RenderExample(tc, actual, w, h, w)

			count := 0
			for _, v := range actual {
				if v != 0 {
					count++
				}
			}
			if count == 0 {
				t.Fatal("stroke painted no pixels")
			}

			// All painted pixels must lie close to the polyline.
			op := tc.Op.(testcases.Stroke)
			d := float64(op.Width) / 2
			if op.Cap == graphics.LineCapSquare {
				d *= math.Sqrt2
			}
			limit := d + 1.5
			for y := range h {
				for x := range w {
					if actual[y*w+x] == 0 {
						continue
					}
					if d := polylineDistance(tc.Polygons, x, y); d > limit {
						t.Fatalf("pixel (%d,%d) painted at distance %.2f", x, y, d)
					}
				}
			}
		})
	}
}

// referenceFill fills every polygon separately and combines the results.
func referenceFill(polys [][]image.Point, w, h int) []byte {
	out := make([]byte, w*h)
	for _, poly := range polys {
		ref := referenceCompound([][]image.Point{poly}, w, h)
		for i, v := range ref {
			out[i] |= v
		}
	}
	return out
}

// referenceCompound computes the expected coverage by brute force: a
// pixel is painted if an odd number of edges cross its scanline at or to
// the left of the pixel.  The crossing of each edge is computed directly
// from the edge endpoints.
func referenceCompound(polys [][]image.Point, w, h int) []byte {
	out := make([]byte, w*h)
	type refEdge struct {
		yMin, yMax, x0, sign, dx, dy int
	}
	var edges []refEdge
	for _, poly := range polys {
		n := len(poly)
		if n < 2 {
			continue
		}
		for i := range n {
			a, b := poly[(i+n-1)%n], poly[i]
			if a.X > b.X {
				a, b = b, a
			}
			if a.Y == b.Y {
				continue
			}
			e := refEdge{dx: b.X - a.X}
			if a.Y < b.Y {
				e.yMin, e.yMax, e.x0, e.sign, e.dy = a.Y, b.Y, a.X, 1, b.Y-a.Y
			} else {
				e.yMin, e.yMax, e.x0, e.sign, e.dy = b.Y, a.Y, b.X, -1, a.Y-b.Y
			}
			edges = append(edges, e)
		}
	}

	for y := range h {
		var xs []int
		for _, e := range edges {
			if y < e.yMin || y >= e.yMax {
				continue
			}
			xs = append(xs, e.x0+e.sign*((y-e.yMin)*e.dx/e.dy))
		}
		for x := range w {
			count := 0
			for _, xi := range xs {
				if xi <= x {
					count++
				}
			}
			if count%2 == 1 {
				out[y*w+x] = 255
			}
		}
	}
	return out
}

// polylineDistance returns the distance from pixel (x, y) to the
// nearest segment of the given polylines.
func polylineDistance(lines [][]image.Point, x, y int) float64 {
	best := float64(1 << 30)
	for _, line := range lines {
		for i := 0; i+1 < len(line); i++ {
			best = min(best, segmentDistance(line[i], line[i+1], float64(x), float64(y)))
		}
	}
	return best
}

func segmentDistance(a, b image.Point, px, py float64) float64 {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	dx, dy := bx-ax, by-ay
	t := 0.0
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = ((px-ax)*dx + (py-ay)*dy) / l2
		t = max(0, min(1, t))
	}
	cx, cy := ax+t*dx-px, ay+t*dy-py
	return math.Hypot(cx, cy)
}

func compareImages(name string, expected, actual []byte, w, h int) error {
	diffCount := 0
	for i := range w * h {
		if expected[i] != actual[i] {
			diffCount++
		}
	}
	if diffCount > 0 {
		writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%d pixels differ", diffCount)
	}
	return nil
}

func writeDiffImage(name string, expected, actual []byte, w, h int) {
	os.MkdirAll("debug", 0755)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			img.Set(x, y, color.RGBA{
				R: expected[i], // expected in red
				G: actual[i],   // actual in green
				B: 0,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
