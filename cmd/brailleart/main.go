package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/brailleart"
	"github.com/lmittmann/tint"
)

var conversionFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config",
		Usage: "`FILE` with YAML defaults. Flags override its values.",
	},
	cli.IntFlag{
		Name:  "width,w",
		Usage: "`COLUMNS` of braille characters per line. Defaults to the terminal width, or 100.",
	},
	cli.IntFlag{
		Name:  "color-threshold,t",
		Usage: "Pixels darker than `THRESHOLD` (0-255) become dots.",
		Value: brailleart.DefaultColorThreshold,
	},
	cli.IntFlag{
		Name:  "alpha-threshold,a",
		Usage: "Pixels with alpha below `THRESHOLD` (0-255) are never dots.",
		Value: brailleart.DefaultAlphaThreshold,
	},
	cli.IntFlag{
		Name:  "x-offset,x",
		Usage: "Shift the image `PIXELS` right on the sampling canvas.",
	},
	cli.IntFlag{
		Name:  "y-offset,y",
		Usage: "Shift the image `PIXELS` down on the sampling canvas.",
	},
	cli.StringFlag{
		Name:  "background",
		Usage: "Preview `BACKGROUND`: white or black.",
		Value: string(brailleart.BackgroundWhite),
	},
	cli.StringFlag{
		Name:  "filter",
		Usage: "Resample `FILTER`: nearest, bilinear, bicubic, mitchell, lanczos2 or lanczos3.",
		Value: brailleart.DefaultFilter,
	},
	cli.Float64Flag{
		Name:  "gamma,g",
		Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
		Value: 1.0,
	},
	cli.Float64Flag{
		Name:  "brightness,b",
		Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
	},
	cli.Float64Flag{
		Name:  "contrast,c",
		Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
	},
	cli.Float64Flag{
		Name:  "sharpen,s",
		Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
	},
	cli.Float64Flag{
		Name:  "sigmoid-midpoint",
		Usage: "`MIDPOINT` of contrast that must be between 0 and 1.",
		Value: 0.5,
	},
	cli.Float64Flag{
		Name:  "sigmoid-factor",
		Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast. FACTOR less than 0 decreases contrast.",
	},
	cli.BoolFlag{
		Name:  "invert,i",
		Usage: "Inverts the image.",
	},
	cli.BoolFlag{
		Name:  "verbose",
		Usage: "Log debug output to stderr.",
	},
}

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "brailleart"
	app.Usage = "Render images as unicode braille text."
	app.UsageText = "1) brailleart [options] [file|url]\n" +
		/*      */ "   2) brailleart [options] < [file]\n" +
		/*      */ "   3) brailleart play [options] [file.gif]\n" +
		/*      */ "   4) brailleart stream [options] < [stream.mjpeg]"
	app.Flags = append(conversionFlags,
		cli.StringFlag{
			Name:  "output,o",
			Usage: "Write the text to `FILE` instead of stdout.",
		},
		cli.StringFlag{
			Name:  "preview,p",
			Usage: "Write a dot matrix preview PNG to `FILE`.",
		},
	)
	app.Action = convert
	app.Commands = []cli.Command{
		{
			Name:      "play",
			Usage:     "Animates gifs in the terminal. CTRL-C to quit.",
			ArgsUsage: "[file|url]",
			Flags: append(conversionFlags, cli.IntFlag{
				Name:  "loops,l",
				Usage: "Play `N` times instead of the count stored in the gif.",
			}),
			Action: play,
		},
		{
			Name:      "stream",
			Usage:     "Plays a motion jpeg stream in the terminal. CTRL-C to quit.",
			ArgsUsage: "[file|url]",
			Flags: append(conversionFlags, cli.IntFlag{
				Name:  "fps",
				Usage: "`FPS` to play the stream at.",
				Value: 10,
			}),
			Action: stream,
		},
	}
	if err := app.Run(os.Args); err != nil {
		slog.Error("brailleart failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))
	slog.SetDefault(logger)
	return logger
}

func convert(c *cli.Context) error {
	log := setupLogger(c)
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	img, err := load(ctx, c.Args().First())
	if err != nil {
		return err
	}
	frame, err := brailleart.Convert(img, cfg)
	if err != nil {
		return err
	}
	log.Debug("converted image", "bounds", img.Bounds().String(), "grid", frame.Grid.String())

	var out io.Writer = os.Stdout
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if _, err := frame.WriteTo(out); err != nil {
		return err
	}

	if path := c.String("preview"); path != "" {
		if err := brailleart.SavePreview(path, brailleart.Preview(frame, cfg.Background)); err != nil {
			return fmt.Errorf("save preview: %w", err)
		}
		log.Info("wrote preview", "path", path)
	}
	return nil
}

func play(c *cli.Context) error {
	log := setupLogger(c)
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := brailleart.Open(ctx, c.Args().First())
	if err != nil {
		return err
	}
	defer r.Close()
	g, err := brailleart.DecodeGIF(r)
	if err != nil {
		return err
	}
	log.Debug("playing gif", "frames", len(g.Image), "loop_count", g.LoopCount)

	a := brailleart.NewAnimator(os.Stdout, cfg, brailleart.WithLogger(log))
	return quiet(a.Play(ctx, brailleart.GIFPictures(ctx, g, c.Int("loops"))))
}

func stream(c *cli.Context) error {
	log := setupLogger(c)
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := brailleart.Open(ctx, c.Args().First())
	if err != nil {
		return err
	}
	defer r.Close()

	a := brailleart.NewAnimator(os.Stdout, cfg, brailleart.WithLogger(log))
	return quiet(a.Play(ctx, brailleart.MJPEGPictures(ctx, r, c.Int("fps"))))
}

// quiet treats an interrupt as a normal exit.
func quiet(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
