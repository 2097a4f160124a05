// Package terminal decides whether confirmation prompts can be shown.
package terminal

import (
	"os"

	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is attached to a terminal. A nil file is not.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isTerminal(int(f.Fd()))
}
