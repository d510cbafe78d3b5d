package render

import "image/color"

// Global render configuration for colors and the default logical canvas.
var (
	// Foreground is used for overlay text.
	Foreground = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF} // #333333

	// Initial window size in pixels.
	CanvasWidth  = 1140
	CanvasHeight = 600
)
