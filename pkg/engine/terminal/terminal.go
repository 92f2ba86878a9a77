package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// CellWidth picks how many columns one maze tile takes. Large mode doubles the
// base width when a gridWidth-wide maze still fits next to the margin.
func CellWidth(gridWidth, base int, large bool, margin int) int {
	if !large {
		return base
	}
	cols, _ := GetSize()
	if gridWidth*base*2+margin <= cols {
		return base * 2
	}
	return base
}

// IsInteractive reports whether stdin is a terminal that can go into raw mode.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
