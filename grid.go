package brailleart

import "fmt"

// Grid is the number of braille cells (text columns and rows) covering an
// image. Rows is derived from the image aspect ratio by Plan.
type Grid struct {
	Columns int
	Rows    int
}

// Plan sizes a grid of the given width for an image of width x height pixels:
//
//	rows = ceil(columns * BlockWidth * (height / width) / BlockHeight)
//
// The ceiling is computed in integer arithmetic, so it is exact for all
// inputs. A positive column count always yields at least one row.
func Plan(columns, width, height int) (Grid, error) {
	if columns < 1 {
		return Grid{}, fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidDimension, columns)
	}
	if width < 1 || height < 1 {
		return Grid{}, fmt.Errorf("%w: image is %dx%d", ErrInvalidDimension, width, height)
	}
	num := columns * BlockWidth * height
	den := width * BlockHeight
	return Grid{
		Columns: columns,
		Rows:    (num + den - 1) / den,
	}, nil
}

// PixelWidth is the width in pixels sampled by the grid.
func (g Grid) PixelWidth() int {
	return g.Columns * BlockWidth
}

// PixelHeight is the height in pixels sampled by the grid.
func (g Grid) PixelHeight() int {
	return g.Rows * BlockHeight
}

// Cells is the total number of braille cells.
func (g Grid) Cells() int {
	return g.Columns * g.Rows
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Columns, g.Rows)
}
