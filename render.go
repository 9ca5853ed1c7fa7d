package scanfill

//go:generate go run ./testcases/export

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scanfill/testcases"
)

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Painted pixels are set to 255; all other bytes are left unchanged.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) {
	c := &grayCanvas{buf: buf, width: width, height: height, stride: stride}
	f := NewFiller()

	switch op := tc.Op.(type) {
	case testcases.Fill:
		for _, poly := range tc.Polygons {
			f.Polygon(c, poly)
		}
	case testcases.Compound:
		// FillPath can only fail for curves, which polygons never contain.
		_ = f.FillPath(c, polygonPath(tc))
	case testcases.Stroke:
		for _, line := range tc.Polygons {
			for i := 0; i+1 < len(line); i++ {
				f.StrokeLine(c, line[i], line[i+1], op.Width, op.Cap)
			}
		}
	}
}

// polygonPath converts the polygons of a test case into a path with
// one closed subpath per polygon.
func polygonPath(tc testcases.TestCase) *path.Data {
	p := &path.Data{}
	for _, poly := range tc.Polygons {
		for i, pt := range poly {
			v := vec.Vec2{X: float64(pt.X), Y: float64(pt.Y)}
			if i == 0 {
				p = p.MoveTo(v)
			} else {
				p = p.LineTo(v)
			}
		}
		if len(poly) > 0 {
			p = p.Close()
		}
	}
	return p
}
