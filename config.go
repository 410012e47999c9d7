package brailleart

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Background selects the preview colours.
type Background string

const (
	// BackgroundWhite draws black dots on white.
	BackgroundWhite Background = "white"
	// BackgroundBlack draws white dots on black.
	BackgroundBlack Background = "black"
)

// DefaultColumns is the output width used when none is configured.
const DefaultColumns = 100

// Config holds everything that drives one conversion.
type Config struct {
	Columns    int         `yaml:"columns"`
	Thresholds Thresholds  `yaml:"thresholds"`
	XOffset    int         `yaml:"x_offset"`
	YOffset    int         `yaml:"y_offset"`
	Background Background  `yaml:"background"`
	Filter     string      `yaml:"filter"`
	Adjust     Adjustments `yaml:"adjust"`
}

// DefaultConfig returns a config with every field set to its default.
func DefaultConfig() Config {
	return Config{
		Columns:    DefaultColumns,
		Thresholds: DefaultThresholds(),
		Background: BackgroundWhite,
		Filter:     DefaultFilter,
	}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks user supplied values. Classify itself accepts any
// threshold, so this is the only place out of range thresholds are rejected.
func (c Config) Validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidDimension, c.Columns)
	}
	if c.Thresholds.Color < 0 || c.Thresholds.Color > 255 {
		return fmt.Errorf("%w: color threshold %d", ErrOutOfRangeThreshold, c.Thresholds.Color)
	}
	if c.Thresholds.Alpha < 0 || c.Thresholds.Alpha > 255 {
		return fmt.Errorf("%w: alpha threshold %d", ErrOutOfRangeThreshold, c.Thresholds.Alpha)
	}
	switch c.Background {
	case BackgroundWhite, BackgroundBlack:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackground, c.Background)
	}
	if _, err := Filter(c.Filter); err != nil {
		return err
	}
	return nil
}
