package testcases

import (
	"image"
	"math"
)

var fillCases = []TestCase{
	{
		Name:     "unit_square",
		Polygons: [][]image.Point{{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}},
		Width:    8,
		Height:   8,
		Op:       Fill{},
	},
	{
		Name:     "right_triangle",
		Polygons: [][]image.Point{{pt(0, 0), pt(4, 0), pt(0, 4)}},
		Width:    8,
		Height:   8,
		Op:       Fill{},
	},
	{
		Name:     "horizontal_degenerate",
		Polygons: [][]image.Point{{pt(0, 0), pt(4, 0), pt(2, 0)}},
		Width:    8,
		Height:   8,
		Op:       Fill{},
	},
	{
		Name:     "slope_tie_break",
		Polygons: [][]image.Point{{pt(0, 0), pt(4, 0), pt(6, 4), pt(2, 4)}},
		Width:    8,
		Height:   8,
		Op:       Fill{},
	},
	{
		Name:     "triangle",
		Polygons: [][]image.Point{triangle(10, 50, 32, 10, 54, 50)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "star",
		Polygons: [][]image.Point{fivePointStar(32, 32, 25)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "rectangle",
		Polygons: [][]image.Point{rectangle(10, 10, 44, 44)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "comb",
		Polygons: [][]image.Point{comb(8, 8, 5, 6, 40)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "steep_and_shallow",
		Polygons: [][]image.Point{{pt(2, 60), pt(61, 3), pt(62, 5), pt(5, 61)}},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "partly_outside",
		Polygons: [][]image.Point{triangle(-20, 30, 40, -10, 50, 70)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "two_vertices",
		Polygons: [][]image.Point{{pt(3, 3), pt(40, 50)}},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
}

// triangle builds a triangular polygon.
func triangle(x1, y1, x2, y2, x3, y3 int) []image.Point {
	return []image.Point{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// rectangle builds an axis-aligned rectangular polygon.
func rectangle(x1, y1, x2, y2 int) []image.Point {
	return []image.Point{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// fivePointStar builds a five-pointed star (self-intersecting).
// The vertices are rounded to integer coordinates.
func fivePointStar(cx, cy, r float64) []image.Point {
	// five points, connecting every second point
	var pts [5]image.Point
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		)
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	order := []int{0, 2, 4, 1, 3}
	star := make([]image.Point, 0, len(order))
	for _, i := range order {
		star = append(star, pts[i])
	}
	return star
}

// comb builds a concave polygon with n teeth of width w, pointing down.
// Each tooth is separated from the next by a gap of width w.
func comb(x, y, n, w, h int) []image.Point {
	back := h / 4
	poly := []image.Point{pt(x, y), pt(x+(2*n-1)*w, y)}
	for i := n - 1; i >= 0; i-- {
		x0 := x + 2*i*w
		poly = append(poly,
			pt(x0+w, y+h),
			pt(x0, y+h),
		)
		if i > 0 {
			poly = append(poly, pt(x0, y+back), pt(x0-w, y+back))
		}
	}
	return poly
}
