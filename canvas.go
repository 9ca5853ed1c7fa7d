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

package scanfill

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas is a write-only raster surface.
//
// Coordinates passed to SetPixel may lie outside the area backed by the
// canvas, in which case the canvas must ignore them.
type Canvas interface {
	SetPixel(x, y int)
}

// CanvasFunc adapts an ordinary function to the Canvas interface.
type CanvasFunc func(x, y int)

// SetPixel calls f(x, y).
func (f CanvasFunc) SetPixel(x, y int) {
	f(x, y)
}

// ImageCanvas paints pixels of a draw.Image in a fixed color.
// Pixels outside the image bounds are ignored.
type ImageCanvas struct {
	Dst   draw.Image
	Color color.Color
}

// NewImageCanvas returns a canvas which paints pixels of dst in color c.
func NewImageCanvas(dst draw.Image, c color.Color) *ImageCanvas {
	return &ImageCanvas{Dst: dst, Color: c}
}

// SetPixel implements the [Canvas] interface.
func (c *ImageCanvas) SetPixel(x, y int) {
	if !(image.Point{X: x, Y: y}).In(c.Dst.Bounds()) {
		return
	}
	c.Dst.Set(x, y, c.Color)
}

// grayCanvas sets bytes of a row-major 8-bit coverage buffer to 255.
type grayCanvas struct {
	buf                  []byte
	width, height, stride int
}

func (g *grayCanvas) SetPixel(x, y int) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.buf[y*g.stride+x] = 255
}
