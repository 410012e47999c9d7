package brailleart

import (
	"context"
	"io"
	"log/slog"
	"time"
)

type AnimatorOpt func(a *Animator)

// WithTerminal sets the terminal used to rewind the cursor. Defaults to an
// Xterm on the animator's writer.
func WithTerminal(t Terminal) AnimatorOpt {
	return func(a *Animator) {
		a.term = t
	}
}

// WithLogger sets the logger for frame progress.
func WithLogger(l *slog.Logger) AnimatorOpt {
	return func(a *Animator) {
		a.log = l
	}
}

// Animator draws a sequence of pictures in place, converting each with the
// same Config.
type Animator struct {
	w    io.Writer
	cfg  Config
	term Terminal
	log  *slog.Logger
}

func NewAnimator(w io.Writer, cfg Config, opts ...AnimatorOpt) *Animator {
	a := &Animator{
		w:   w,
		cfg: cfg,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.term == nil {
		a.term = &Xterm{Writer: w}
	}
	return a
}

// Play draws pictures until the channel is closed, a picture carries an
// error or ctx is done. Each picture stays on screen for its delay.
func (a *Animator) Play(ctx context.Context, pics <-chan Picture) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	if err := a.term.ShowCursor(false); err != nil {
		return err
	}
	defer a.term.ShowCursor(true)

	var (
		rows  int
		count int
	)
	for {
		var pic Picture
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p, ok := <-pics:
			if !ok {
				a.log.Debug("animation finished", "frames", count)
				return nil
			}
			pic = p
		}
		if pic.Err != nil {
			return pic.Err
		}

		delay := time.NewTimer(pic.Delay)
		f, err := Convert(pic.Image, a.cfg)
		if err != nil {
			delay.Stop()
			return err
		}
		if count > 0 {
			if err := a.term.ResetCursor(rows); err != nil {
				delay.Stop()
				return err
			}
		}
		if _, err := f.WriteTo(a.w); err != nil {
			delay.Stop()
			return err
		}
		rows = f.Grid.Rows
		count++
		a.log.Debug("drew frame", "frame", count, "grid", f.Grid.String(), "delay", pic.Delay)

		select {
		case <-ctx.Done():
			delay.Stop()
			return ctx.Err()
		case <-delay.C:
		}
	}
}
