// Package ebiten provides an Ebiten-based window that shows generated dungeons.
package ebiten

import "image/color"

// Color palette for the viewer
var (
	colorBackground = color.RGBA{15, 15, 26, 255}    // Dark blue-gray
	colorWall       = color.RGBA{60, 60, 80, 255}    // Muted gray-blue
	colorFloor      = color.RGBA{160, 160, 180, 255} // Light gray
	colorDoor       = color.RGBA{255, 200, 0, 255}   // Yellow
	colorUnknown    = color.RGBA{255, 0, 255, 255}
)

// Layout defaults
const (
	defaultTileSize = 10
	footerHeight    = 36
	statusPadding   = 4
)
