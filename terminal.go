package tern

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalSize returns the column and row count of the terminal
// attached to f.
func TerminalSize(f *os.File) (width, height int, err error) {
	return term.GetSize(int(f.Fd()))
}
