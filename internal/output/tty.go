// Package output handles terminal detection and result formatting for the
// payment commands.
package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY returns true if stdout is connected to a terminal.
// When false, output is being piped or redirected.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
