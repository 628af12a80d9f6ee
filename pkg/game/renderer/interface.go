package renderer

import (
	"dungeondigger/pkg/game/generator"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleDoor
	StyleUndug
	StyleSubtle
	StyleTitle
)

// Renderer defines the interface for dungeon rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderDungeon shows a generated dungeon with its legend and stats.
	// For windowed backends this blocks until the window is closed.
	RenderDungeon(d *generator.Dungeon) error

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderDungeon renders a dungeon with the current renderer
func RenderDungeon(d *generator.Dungeon) error {
	if Current != nil {
		return Current.RenderDungeon(d)
	}
	return nil
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}
