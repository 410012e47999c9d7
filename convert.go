package brailleart

import (
	"fmt"
	"image"
)

// Convert runs the whole pipeline on img: adjust, size the grid from the
// image aspect ratio, draw the image onto the sampling canvas at the
// configured offset and classify every cell.
func Convert(img image.Image, cfg Config) (*Frame, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	g, err := Plan(cfg.Columns, bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	filter, err := Filter(cfg.Filter)
	if err != nil {
		return nil, err
	}
	buf := Canvas(cfg.Adjust.Apply(img), g, cfg.XOffset, cfg.YOffset, filter)
	return NewFrame(buf, g, cfg.Thresholds), nil
}

// ConvertString is Convert followed by Frame.String.
func ConvertString(img image.Image, cfg Config) (string, error) {
	f, err := Convert(img, cfg)
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}
	return f.String(), nil
}
