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

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Viewport returns how many columns and rows of a gridWidth x gridHeight map
// fit in a screen of screenWidth x screenHeight, keeping reservedRows free
// for text below the map. The result is never smaller than 1x1.
func Viewport(gridWidth, gridHeight, screenWidth, screenHeight, reservedRows int) (width, height int) {
	width = min(gridWidth, screenWidth)
	height = min(gridHeight, screenHeight-reservedRows)
	return max(width, 1), max(height, 1)
}
