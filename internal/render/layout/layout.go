package layout

import "image"

// Edges holds per-side padding in pixels.
type Edges struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// Uniform returns Edges with the same padding on every side.
func Uniform(paddingPx int) Edges {
	return Edges{Top: paddingPx, Left: paddingPx, Bottom: paddingPx, Right: paddingPx}
}

// InsetEdges shrinks rect by the given edges. Negative edges are treated as zero.
// When the edges overlap, the result collapses to an empty rectangle anchored at the
// top-left corner of the remaining area instead of flipping.
func InsetEdges(rect image.Rectangle, edges Edges) image.Rectangle {
	rect = Normalize(rect)
	minX := rect.Min.X + max(edges.Left, 0)
	minY := rect.Min.Y + max(edges.Top, 0)
	maxX := rect.Max.X - max(edges.Right, 0)
	maxY := rect.Max.Y - max(edges.Bottom, 0)
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}
	return image.Rectangle{Min: image.Pt(minX, minY), Max: image.Pt(maxX, maxY)}
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// AnchorTopLeft returns a rectangle of size (widthPx,heightPx) placed in the top-left of rect.
func AnchorTopLeft(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	maxW := rect.Dx()
	maxH := rect.Dy()
	if widthPx > maxW {
		widthPx = maxW
	}
	if heightPx > maxH {
		heightPx = maxH
	}
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+widthPx, rect.Min.Y+heightPx)
}

// FitAspect returns the largest rectangle with width/height == ratio that fits into rect,
// anchored at the top-left. The shrunk side is truncated to whole pixels, so the result
// honors ratio only within one pixel.
func FitAspect(rect image.Rectangle, ratio float64) image.Rectangle {
	rect = Normalize(rect)
	if ratio <= 0 {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	width := rect.Dx()
	height := rect.Dy()
	if float64(width) < float64(height)*ratio {
		height = int(float64(width) / ratio)
	} else {
		width = int(float64(height) * ratio)
	}
	return AnchorTopLeft(rect, width, height)
}
