package brailleart

import (
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

// Frame is one classified grid: the dot pattern of every cell in row-major
// order. It is the shared input of the text and preview renderers.
type Frame struct {
	Grid Grid
	Dots []DotBlock
}

// NewFrame samples and classifies every cell of the grid. Cells that extend
// past the buffer read transparent pixels.
func NewFrame(buf *image.NRGBA, g Grid, t Thresholds) *Frame {
	f := &Frame{
		Grid: g,
		Dots: make([]DotBlock, 0, g.Cells()),
	}
	// Looping over rows first keeps memory access sequential.
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			f.Dots = append(f.Dots, Classify(Sample(buf, col, row), t))
		}
	}
	return f
}

// At returns the dot pattern of a cell.
func (f *Frame) At(col, row int) DotBlock {
	return f.Dots[row*f.Grid.Columns+col]
}

// Line returns one row of braille characters without the trailing newline.
func (f *Frame) Line(row int) string {
	var sb strings.Builder
	sb.Grow(f.Grid.Columns * 3)
	for _, b := range f.Dots[row*f.Grid.Columns : (row+1)*f.Grid.Columns] {
		sb.WriteRune(b.Rune())
	}
	return sb.String()
}

// String returns Grid.Rows lines of Grid.Columns braille characters, each
// terminated by a newline.
func (f *Frame) String() string {
	var sb strings.Builder
	// Every braille rune is 3 bytes in UTF-8.
	sb.Grow(f.Grid.Rows * (f.Grid.Columns*3 + 1))
	for row := 0; row < f.Grid.Rows; row++ {
		sb.WriteString(f.Line(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the rendered text to w.
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}

// Render converts buf to braille text. Identical inputs always produce an
// identical string.
func Render(buf *image.NRGBA, g Grid, t Thresholds) string {
	return NewFrame(buf, g, t).String()
}

// GridFor returns the grid that covers every pixel of r one to one.
func GridFor(r image.Rectangle) Grid {
	return Grid{
		Columns: (r.Dx() + BlockWidth - 1) / BlockWidth,
		Rows:    (r.Dy() + BlockHeight - 1) / BlockHeight,
	}
}

type EncoderOpt func(enc *Encoder)

// WithThresholds sets the classification thresholds.
func WithThresholds(t Thresholds) EncoderOpt {
	return func(enc *Encoder) {
		enc.thresholds = t
	}
}

// Encoder writes images as braille text without rescaling them: each 2x4
// pixel area becomes one character.
type Encoder struct {
	w          io.Writer
	thresholds Thresholds
}

func NewEncoder(w io.Writer, opts ...EncoderOpt) *Encoder {
	enc := Encoder{
		w:          w,
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// Encode writes img as a series of braille and line feed characters.
func (enc *Encoder) Encode(img image.Image) error {
	if img == nil {
		return ErrNoImage
	}
	buf, ok := img.(*image.NRGBA)
	if !ok {
		buf = imaging.Clone(img)
	}
	g := GridFor(buf.Bounds())
	_, err := NewFrame(buf, g, enc.thresholds).WriteTo(enc.w)
	return err
}
