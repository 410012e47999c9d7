package brailleart

import "errors"

var (
	// ErrInvalidDimension is returned when an image width, image height or
	// column count is not positive.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrOutOfRangeThreshold is returned by Config.Validate when a threshold
	// lies outside [0,255].
	ErrOutOfRangeThreshold = errors.New("threshold out of range")

	// ErrUnknownBackground is returned for a background name other than
	// "white" or "black".
	ErrUnknownBackground = errors.New("unknown background")

	// ErrNoImage is returned when a nil image or an empty animation is given.
	ErrNoImage = errors.New("no image")
)
