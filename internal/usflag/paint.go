// Package usflag lays out and paints the U.S. flag at any window size.
//
// Every function is a pure function of the window size: geometry is recomputed on
// each call and emitted to a Painter in back-to-front order.
package usflag

import (
	"image"
	"image/color"
)

// Painter is the drawing surface the flag is emitted to.
type Painter interface {
	FillRect(rect image.Rectangle, c color.Color)
	FillPolygon(points []image.Point, c color.Color)
}

// Paint draws the whole flag for a window of the given size and returns the canvas
// it used. Layers are background, stripes, union and stars, in that order.
func Paint(p Painter, window image.Point, insets Insets) Canvas {
	PaintBackground(p, window)
	canvas := Resolve(window, insets)
	if canvas.Empty() {
		return canvas
	}
	PaintStripes(p, canvas)
	PaintUnion(p, canvas)
	PaintStars(p, canvas)
	return canvas
}

// PaintBackground fills the whole window so no stale pixels survive a resize.
func PaintBackground(p Painter, window image.Point) {
	if window.X <= 0 || window.Y <= 0 {
		return
	}
	p.FillRect(image.Rect(0, 0, window.X, window.Y), Background)
}

// PaintStripes draws the 13 stripes, red first.
func PaintStripes(p Painter, c Canvas) {
	if c.Empty() {
		return
	}
	h := c.stripeHeight()
	for i := 0; i < StripeCount; i++ {
		col := White
		if i%2 == 0 {
			col = OldGloryRed
		}
		top := c.stripeTop(i)
		p.FillRect(image.Rect(c.X, top, c.X+c.Width, top+h), col)
	}
}

// PaintUnion draws the blue field as seven bands aligned with the top seven stripes.
func PaintUnion(p Painter, c Canvas) {
	if c.Empty() {
		return
	}
	w := c.UnionRect().Dx()
	h := c.stripeHeight()
	for i := 0; i < UnionStripeCount; i++ {
		top := c.stripeTop(i)
		p.FillRect(image.Rect(c.X, top, c.X+w, top+h), OldGloryBlue)
	}
}
