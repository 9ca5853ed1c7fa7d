package testcases

import "image"

// compoundCases are filled as a single path with several subpaths.
var compoundCases = []TestCase{
	{
		Name: "ring",
		Polygons: [][]image.Point{
			rectangle(7, 7, 57, 57),
			rectangle(20, 20, 44, 44),
		},
		Width:  64,
		Height: 64,
		Op:     Compound{},
	},
	{
		Name: "overlapping_rectangles",
		Polygons: [][]image.Point{
			rectangle(10, 10, 40, 40),
			rectangle(24, 24, 54, 54),
		},
		Width:  64,
		Height: 64,
		Op:     Compound{},
	},
	{
		Name: "separate_triangles",
		Polygons: [][]image.Point{
			triangle(4, 4, 28, 4, 4, 20),
			triangle(36, 40, 60, 40, 60, 60),
		},
		Width:  64,
		Height: 64,
		Op:     Compound{},
	},
}
