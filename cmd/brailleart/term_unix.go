//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminalSize reports the columns and lines of the terminal. It asks stderr
// because stdout is often redirected to a file.
func terminalSize() (cols, lines int, err error) {
	return terminalSizeOf(os.Stderr)
}

func terminalSizeOf(f *os.File) (cols, lines int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return -1, -1, err
	}
	return int(ws.Col), int(ws.Row), nil
}
