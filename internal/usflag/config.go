package usflag

import "image/color"

// Proportions of the flag, as fractions of the flag height.
const (
	FlagHeight   = 1.0
	FlagWidth    = 1.9
	UnionWidth   = 0.76
	UnionHeight  = 7.0 / 13.0
	StarYOffset  = 0.054
	StarXOffset  = 0.063
	StarDiameter = 0.0616
	StripeHeight = 1.0 / 13.0
)

// Counts of the flag's repeated elements.
const (
	StripeCount      = 13
	UnionStripeCount = 7
	StarRows         = 9
	StarCount        = 50
	StarVertexCount  = 10
)

// Palette.
var (
	OldGloryRed  = color.RGBA{R: 0xB2, G: 0x22, B: 0x34, A: 0xFF} // #b22234
	OldGloryBlue = color.RGBA{R: 0x3C, G: 0x3B, B: 0x6E, A: 0xFF} // #3c3b6e
	White        = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Background   = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
)
