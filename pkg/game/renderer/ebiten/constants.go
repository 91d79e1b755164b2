// Package ebiten provides an Ebiten-based graphical renderer for the oxygen maze.
package ebiten

import "image/color"

// Colour palette for the HUD. Scene objects carry their own colours.
var (
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorItem            = color.RGBA{100, 255, 150, 255} // Oxygen green
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorWin             = color.RGBA{255, 220, 100, 255} // Gold
	colorWallEdge        = color.RGBA{60, 60, 80, 255}
	colorPanelBackground = color.RGBA{30, 30, 50, 220} // Semi-transparent dark
	colorModalBorder     = color.RGBA{180, 150, 250, 255}
)

// Window defaults
const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 768
)

// Font sizes
const (
	baseFontSize  = 16.0
	titleFontSize = 28.0
	hudMargin     = 12
)

// Animation timings, in seconds
const (
	glideDuration = 0.12
	fadeDuration  = 0.3
)
