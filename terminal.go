package brailleart

import (
	"fmt"
	"io"
)

// Terminal repositions the cursor between animation frames.
type Terminal interface {
	ResetCursor(rows int) error
	ShowCursor(show bool) error
}

// Xterm drives any terminal that understands xterm control sequences.
type Xterm struct {
	Writer io.Writer
}

// ResetCursor moves the cursor to the beginning of the line and up rows.
func (term *Xterm) ResetCursor(rows int) error {
	if rows <= 0 {
		_, err := io.WriteString(term.Writer, "\033[999D")
		return err
	}
	_, err := fmt.Fprintf(term.Writer, "\033[999D\033[%dA", rows)
	return err
}

func (term *Xterm) ShowCursor(show bool) error {
	seq := "\033[?25l"
	if show {
		seq = "\033[?12l\033[?25h"
	}
	_, err := io.WriteString(term.Writer, seq)
	return err
}
