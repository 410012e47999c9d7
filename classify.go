package brailleart

import "image/color"

// Default thresholds.
const (
	DefaultColorThreshold = 127
	DefaultAlphaThreshold = 127
)

// Thresholds decide which pixels become dots. A pixel is drawn when it is
// opaque enough and dark enough:
//
//	alpha >= Alpha && (r+g+b)/3 < Color
//
// The luminance average is compared as a real number, so a pixel whose
// average is exactly Color is not drawn. For integer thresholds this is the
// same as comparing the truncated average. A fully transparent pixel is
// never drawn, whatever the thresholds.
//
// Values outside [0,255] are not clamped: Color <= 0 never draws and
// Color > 255 draws every visible pixel, Alpha <= 1 draws any pixel that is
// not fully transparent and Alpha > 255 draws nothing.
type Thresholds struct {
	Color int `yaml:"color"`
	Alpha int `yaml:"alpha"`
}

// DefaultThresholds returns the thresholds used when none are configured.
func DefaultThresholds() Thresholds {
	return Thresholds{Color: DefaultColorThreshold, Alpha: DefaultAlphaThreshold}
}

// Dot reports whether a single pixel is drawn.
func (t Thresholds) Dot(c color.NRGBA) bool {
	if c.A == 0 || int(c.A) < t.Alpha {
		return false
	}
	// (r+g+b)/3 < t.Color without losing the fraction.
	return int(c.R)+int(c.G)+int(c.B) < 3*t.Color
}

// Classify maps a sampled block to its dot pattern.
func Classify(b Block, t Thresholds) DotBlock {
	var dots DotBlock
	for i, c := range b {
		dots[i] = t.Dot(c)
	}
	return dots
}
