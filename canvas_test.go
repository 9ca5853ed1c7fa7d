package scanfill

import (
	"image"
	"image/color"
	"testing"
)

func TestImageCanvas(t *testing.T) {
	img := image.NewGray(image.Rect(2, 2, 6, 6))
	c := NewImageCanvas(img, color.Gray{Y: 200})

	NewFiller().Polygon(c, []image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})

	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			if got := img.GrayAt(x, y).Y; got != 200 {
				t.Errorf("pixel (%d,%d) = %d, want 200", x, y, got)
			}
		}
	}
}

func TestCanvasFunc(t *testing.T) {
	var n int
	c := CanvasFunc(func(x, y int) { n++ })
	DrawPolygon(c, []int{0, 3, 3, 0}, []int{0, 0, 2, 2})
	if n != 6 {
		t.Errorf("%d pixels painted, want 6", n)
	}
}
