package brailleart

import (
	"image"
	"image/color"
)

// Block holds the 2x4 pixel samples of one braille cell in row-major order.
type Block [blockSize]color.NRGBA

// Sample reads the 2x4 pixel block at the given block column and row. The
// block origin is offset from buf.Bounds().Min, since an image's bounds do not
// necessarily start at (0, 0). Pixels outside the buffer are returned as
// color.NRGBA{}, which is fully transparent and so never sets a dot.
func Sample(buf *image.NRGBA, col, row int) Block {
	var b Block
	if buf == nil {
		return b
	}
	bounds := buf.Bounds()
	px := bounds.Min.X + col*BlockWidth
	py := bounds.Min.Y + row*BlockHeight
	for y := 0; y < BlockHeight; y++ {
		for x := 0; x < BlockWidth; x++ {
			p := image.Pt(px+x, py+y)
			if !p.In(bounds) {
				continue
			}
			b[y*BlockWidth+x] = buf.NRGBAAt(p.X, p.Y)
		}
	}
	return b
}
