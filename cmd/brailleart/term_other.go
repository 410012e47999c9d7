//go:build !unix

package main

import "errors"

func terminalSize() (cols, lines int, err error) {
	return -1, -1, errors.New("terminal size not supported on this platform")
}
