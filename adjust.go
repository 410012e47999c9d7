package brailleart

import (
	"image"

	"github.com/disintegration/imaging"
)

// Adjustments are applied to the source image before it is drawn onto the
// canvas. The zero value leaves the image unchanged.
type Adjustments struct {
	// Gamma of 1.0 gives the original image. Less than 1.0 darkens the image
	// and greater than 1.0 lightens it. Zero means unset.
	Gamma float64 `yaml:"gamma"`
	// Brightness in [-100, 100]. -100 gives solid black, 100 solid white.
	Brightness float64 `yaml:"brightness"`
	// Contrast in [-100, 100]. -100 gives solid grey, 100 maximum contrast.
	Contrast float64 `yaml:"contrast"`
	// Sharpen sigma. Greater than 0 sharpens the image.
	Sharpen float64 `yaml:"sharpen"`
	// SigmoidMidpoint of contrast, between 0 and 1. Only used with a
	// non-zero SigmoidFactor.
	SigmoidMidpoint float64 `yaml:"sigmoid_midpoint"`
	// SigmoidFactor greater than 0 increases contrast, less than 0 decreases it.
	SigmoidFactor float64 `yaml:"sigmoid_factor"`
	Invert        bool    `yaml:"invert"`
}

// IsZero reports whether the adjustments leave the image unchanged.
func (a Adjustments) IsZero() bool {
	return (a.Gamma == 0 || a.Gamma == 1) &&
		a.Brightness == 0 &&
		a.Contrast == 0 &&
		a.Sharpen == 0 &&
		a.SigmoidFactor == 0 &&
		!a.Invert
}

// Apply returns the adjusted image. img is returned as is when there is
// nothing to do.
func (a Adjustments) Apply(img image.Image) image.Image {
	if a.IsZero() {
		return img
	}
	if a.Gamma != 0 && a.Gamma != 1 {
		img = imaging.AdjustGamma(img, a.Gamma)
	}
	if a.Brightness != 0 {
		img = imaging.AdjustBrightness(img, a.Brightness)
	}
	if a.Sharpen != 0 {
		img = imaging.Sharpen(img, a.Sharpen)
	}
	if a.Contrast != 0 {
		img = imaging.AdjustContrast(img, a.Contrast)
	}
	if a.SigmoidFactor != 0 {
		mid := a.SigmoidMidpoint
		if mid == 0 {
			mid = 0.5
		}
		img = imaging.AdjustSigmoid(img, mid, a.SigmoidFactor)
	}
	if a.Invert {
		img = imaging.Invert(img)
	}
	return img
}
