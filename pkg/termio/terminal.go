package termio

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// IsTerminal checks whether standard output is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalSize returns the dimensions of the terminal attached to standard
// output, failing when output has been redirected.
func TerminalSize() (uint, uint, error) {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return 0, 0, errors.New("invalid terminal")
	}
	//
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, err
	}
	//
	return uint(w), uint(h), nil
}
