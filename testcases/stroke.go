package testcases

import (
	"image"

	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []TestCase{
	{
		Name:     "line_butt",
		Polygons: [][]image.Point{horizontalLine(10, 32, 54)},
		Width:    64,
		Height:   64,
		Op:       Stroke{Width: 8, Cap: graphics.LineCapButt},
	},
	{
		Name:     "line_round",
		Polygons: [][]image.Point{horizontalLine(10, 32, 54)},
		Width:    64,
		Height:   64,
		Op:       Stroke{Width: 8, Cap: graphics.LineCapRound},
	},
	{
		Name:     "line_square",
		Polygons: [][]image.Point{horizontalLine(10, 32, 54)},
		Width:    64,
		Height:   64,
		Op:       Stroke{Width: 8, Cap: graphics.LineCapSquare},
	},
	{
		Name:     "diagonal",
		Polygons: [][]image.Point{{pt(8, 8), pt(56, 40)}},
		Width:    64,
		Height:   64,
		Op:       Stroke{Width: 4, Cap: graphics.LineCapButt},
	},
	{
		Name:     "corner",
		Polygons: [][]image.Point{corner(12, 52, 32, 12, 52, 52)},
		Width:    64,
		Height:   64,
		Op:       Stroke{Width: 6, Cap: graphics.LineCapRound},
	},
	{
		Name:     "dot_round",
		Polygons: [][]image.Point{{pt(32, 32), pt(32, 32)}},
		Width:    64,
		Height:   64,
		Op:       Stroke{Width: 10, Cap: graphics.LineCapRound},
	},
}

// horizontalLine builds a horizontal line from (x1, y) to (x2, y).
func horizontalLine(x1, y, x2 int) []image.Point {
	return []image.Point{pt(x1, y), pt(x2, y)}
}

// corner builds a polyline with two segments meeting at (x2, y2).
func corner(x1, y1, x2, y2, x3, y3 int) []image.Point {
	return []image.Point{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}
