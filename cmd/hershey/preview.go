package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/scanfill"
	"seehuhn.de/go/scanfill/hershey"
)

const (
	previewColumns = 16
	previewMargin  = 4 // pixels around each glyph, before magnification
	previewUnit    = 2 // pixels per font unit, before magnification
)

// writePreview draws all glyphs of a normalized font into a grid and
// saves the result as a PNG file.
func writePreview(fileName string, font *hershey.Font, scale, lineWidth int) error {
	img := renderPreview(font, lineWidth)
	if scale > 1 {
		b := img.Bounds()
		big := image.NewGray(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(big, big.Bounds(), img, b, draw.Src, nil)
		img = big
	}

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderPreview draws the glyphs in rows of previewColumns, using black
// strokes on a white background.
func renderPreview(font *hershey.Font, lineWidth int) *image.Gray {
	cellW := 0
	for _, g := range font.Glyphs {
		cellW = max(cellW, g.Width(), g.MaxX)
	}
	cellW = cellW*previewUnit + 2*previewMargin
	cellH := font.MaxY*previewUnit + 2*previewMargin

	n := len(font.Glyphs)
	cols := min(n, previewColumns)
	rows := (n + previewColumns - 1) / previewColumns
	img := image.NewGray(image.Rect(0, 0, max(cols*cellW, 1), max(rows*cellH, 1)))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	c := scanfill.NewImageCanvas(img, color.Black)
	f := scanfill.NewFiller()
	for i, g := range font.Glyphs {
		origin := image.Point{
			X: (i%previewColumns)*cellW + previewMargin,
			Y: (i/previewColumns)*cellH + previewMargin,
		}
		for _, s := range g.Segments {
			p0 := image.Point{X: s.X0, Y: s.Y0}.Mul(previewUnit).Add(origin)
			p1 := image.Point{X: s.X1, Y: s.Y1}.Mul(previewUnit).Add(origin)
			f.StrokeLine(c, p0, p1, lineWidth, graphics.LineCapRound)
		}
	}
	return img
}
