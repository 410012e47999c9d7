package brailleart

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

// PreviewScale is the number of preview pixels per sampled pixel.
const PreviewScale = 2

var gridColor = color.NRGBA{R: 127, G: 127, B: 127, A: 51}

func (bg Background) colors() (paper, ink color.Color) {
	if bg == BackgroundBlack {
		return color.Black, color.White
	}
	return color.White, color.Black
}

// Preview draws a frame as a dot matrix for visual feedback. Every cell is a
// faint 3x7 rectangle on a 4x8 pitch and each raised dot a single pixel in
// the top-left corner of its 2x2 slot.
func Preview(f *Frame, bg Background) *image.RGBA {
	cw, ch := BlockWidth*PreviewScale, BlockHeight*PreviewScale
	img := image.NewRGBA(image.Rect(0, 0, f.Grid.Columns*cw, f.Grid.Rows*ch))
	paper, ink := bg.colors()

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(paper)
	draw2dkit.Rectangle(gc, 0, 0, float64(img.Rect.Dx()), float64(img.Rect.Dy()))
	gc.Fill()

	gc.SetFillColor(gridColor)
	for row := 0; row < f.Grid.Rows; row++ {
		for col := 0; col < f.Grid.Columns; col++ {
			x, y := float64(col*cw), float64(row*ch)
			draw2dkit.Rectangle(gc, x, y, x+float64(cw-1), y+float64(ch-1))
			gc.Fill()
		}
	}

	gc.SetFillColor(ink)
	for row := 0; row < f.Grid.Rows; row++ {
		for col := 0; col < f.Grid.Columns; col++ {
			for i, set := range f.At(col, row) {
				if !set {
					continue
				}
				x := float64(col*cw + (i%BlockWidth)*PreviewScale)
				y := float64(row*ch + (i/BlockWidth)*PreviewScale)
				draw2dkit.Rectangle(gc, x, y, x+1, y+1)
				gc.Fill()
			}
		}
	}
	return img
}

// SavePreview writes a preview image as PNG.
func SavePreview(path string, img image.Image) error {
	return draw2dimg.SaveToPngFile(path, img)
}
