package usflag

import (
	"image"

	"github.com/rook-computer/oldglory/internal/render/layout"
)

// Insets are the border widths subtracted from the window before the flag is fitted.
type Insets = layout.Edges

// Canvas is the drawable rectangle that keeps the flag's aspect ratio.
type Canvas struct {
	X, Y          int
	Width, Height int
}

// Resolve fits the flag into a window of the given pixel size.
// The canvas is anchored at the top-left inset and truncated to whole pixels.
func Resolve(window image.Point, insets Insets) Canvas {
	content := layout.InsetEdges(image.Rect(0, 0, max(window.X, 0), max(window.Y, 0)), insets)
	fit := layout.FitAspect(content, FlagWidth/FlagHeight)
	return Canvas{X: fit.Min.X, Y: fit.Min.Y, Width: fit.Dx(), Height: fit.Dy()}
}

// Rect returns the canvas as an image rectangle.
func (c Canvas) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

// Empty reports whether nothing can be drawn.
func (c Canvas) Empty() bool { return c.Width <= 0 || c.Height <= 0 }

// stripeTop is the y coordinate of stripe i. The division truncates first,
// so stripes may leave a seam above the bottom edge.
func (c Canvas) stripeTop(i int) int { return c.Y + c.Height/StripeCount*i }

func (c Canvas) stripeHeight() int { return int(float64(c.Height) * StripeHeight) }

// UnionRect returns the nominal union area (0.76 × 7/13 of the flag height).
// The painted bands share its width but follow the truncated stripe grid vertically.
func (c Canvas) UnionRect() image.Rectangle {
	w := int(float64(c.Height) * UnionWidth)
	h := int(float64(c.Height) * UnionHeight)
	return image.Rect(c.X, c.Y, c.X+w, c.Y+h)
}
