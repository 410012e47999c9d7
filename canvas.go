package brailleart

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

var filters = map[string]resize.InterpolationFunction{
	"nearest":  resize.NearestNeighbor,
	"bilinear": resize.Bilinear,
	"bicubic":  resize.Bicubic,
	"mitchell": resize.MitchellNetravali,
	"lanczos2": resize.Lanczos2,
	"lanczos3": resize.Lanczos3,
}

// DefaultFilter is the resampling filter used when none is configured.
const DefaultFilter = "bilinear"

// Filter looks up a resampling filter by name.
func Filter(name string) (resize.InterpolationFunction, error) {
	f, ok := filters[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown resample filter %q", name)
	}
	return f, nil
}

// Canvas draws img onto a transparent buffer of exactly the pixel size the
// grid samples. The image is stretched to the canvas size and its top-left
// corner placed at (xOffset, yOffset); offsets may be negative or larger
// than the canvas, leaving the uncovered area transparent.
func Canvas(img image.Image, g Grid, xOffset, yOffset int, filter resize.InterpolationFunction) *image.NRGBA {
	w, h := g.PixelWidth(), g.PixelHeight()
	bg := imaging.New(w, h, color.Transparent)
	if img == nil || img.Bounds().Empty() {
		return bg
	}
	scaled := resize.Resize(uint(w), uint(h), img, filter)
	return imaging.Paste(bg, scaled, image.Pt(xOffset, yOffset))
}
