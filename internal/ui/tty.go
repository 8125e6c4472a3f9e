package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type fdWriter interface {
	Fd() uintptr
}

// IsTTY reports whether w is a terminal
func IsTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsReaderTTY reports whether r is a terminal
func IsReaderTTY(r io.Reader) bool {
	f, ok := r.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NoColor honours the NO_COLOR convention (https://no-color.org)
func NoColor() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return set
}
