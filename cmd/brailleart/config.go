package main

import (
	"context"
	"image"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/brailleart"
)

// configFrom starts from the config file, if any, and applies every flag
// that was set on the command line.
func configFrom(c *cli.Context) (brailleart.Config, error) {
	cfg := brailleart.DefaultConfig()
	fromFile := false
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = brailleart.LoadConfig(path); err != nil {
			return cfg, err
		}
		fromFile = true
	}

	switch {
	case c.IsSet("width"):
		cfg.Columns = c.Int("width")
	case !fromFile:
		if cols, _, err := terminalSize(); err == nil && cols > 0 {
			cfg.Columns = cols
		}
	}
	if c.IsSet("color-threshold") || !fromFile {
		cfg.Thresholds.Color = c.Int("color-threshold")
	}
	if c.IsSet("alpha-threshold") || !fromFile {
		cfg.Thresholds.Alpha = c.Int("alpha-threshold")
	}
	if c.IsSet("x-offset") {
		cfg.XOffset = c.Int("x-offset")
	}
	if c.IsSet("y-offset") {
		cfg.YOffset = c.Int("y-offset")
	}
	if c.IsSet("background") || !fromFile {
		cfg.Background = brailleart.Background(c.String("background"))
	}
	if c.IsSet("filter") || !fromFile {
		cfg.Filter = c.String("filter")
	}

	if c.IsSet("gamma") {
		cfg.Adjust.Gamma = c.Float64("gamma")
	}
	if c.IsSet("brightness") {
		cfg.Adjust.Brightness = c.Float64("brightness")
	}
	if c.IsSet("contrast") {
		cfg.Adjust.Contrast = c.Float64("contrast")
	}
	if c.IsSet("sharpen") {
		cfg.Adjust.Sharpen = c.Float64("sharpen")
	}
	if c.IsSet("sigmoid-midpoint") || c.IsSet("sigmoid-factor") {
		cfg.Adjust.SigmoidMidpoint = c.Float64("sigmoid-midpoint")
		cfg.Adjust.SigmoidFactor = c.Float64("sigmoid-factor")
	}
	if c.Bool("invert") {
		cfg.Adjust.Invert = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, cli.NewExitError(err.Error(), 2)
	}
	return cfg, nil
}

func load(ctx context.Context, ref string) (image.Image, error) {
	r, err := brailleart.Open(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return brailleart.Decode(r)
}
