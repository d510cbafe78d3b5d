package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// CanvasDrawer implements Drawer on an in-memory RGBA image. Backends paint into it
// and then copy the pixels to their display.
type CanvasDrawer struct {
	img  *image.RGBA
	face font.Face
	rast *vector.Rasterizer
}

// NewCanvasDrawer returns a drawer with a canvas of the given size.
// A nil face falls back to basicfont.
func NewCanvasDrawer(width, height int, face font.Face) *CanvasDrawer {
	if face == nil {
		face = basicfont.Face7x13
	}
	d := &CanvasDrawer{face: face}
	d.Resize(width, height)
	return d
}

// Resize reallocates the canvas when the size changed. It reports whether it did.
func (d *CanvasDrawer) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if d.img != nil && d.img.Bounds().Dx() == width && d.img.Bounds().Dy() == height {
		return false
	}
	d.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return true
}

// Image exposes the backing canvas.
func (d *CanvasDrawer) Image() *image.RGBA { return d.img }

func (d *CanvasDrawer) Size() (int, int) {
	b := d.img.Bounds()
	return b.Dx(), b.Dy()
}

func (d *CanvasDrawer) FillRect(rect image.Rectangle, c color.Color) {
	rect = rect.Intersect(d.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(d.img, rect, &image.Uniform{C: c}, image.Point{}, draw.Over)
}

// FillPolygon rasterizes a closed polygon with anti-aliased edges. The rasterizer only
// covers the polygon's bounding box.
func (d *CanvasDrawer) FillPolygon(points []image.Point, c color.Color) {
	if len(points) < 3 {
		return
	}
	bounds := image.Rectangle{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		bounds.Min.X, bounds.Min.Y = min(bounds.Min.X, p.X), min(bounds.Min.Y, p.Y)
		bounds.Max.X, bounds.Max.Y = max(bounds.Max.X, p.X), max(bounds.Max.Y, p.Y)
	}
	// Max is exclusive.
	bounds.Max = bounds.Max.Add(image.Pt(1, 1))
	if bounds.Intersect(d.img.Bounds()).Empty() {
		return
	}

	if d.rast == nil {
		d.rast = vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	} else {
		d.rast.Reset(bounds.Dx(), bounds.Dy())
	}
	d.rast.DrawOp = draw.Over
	origin := bounds.Min
	d.rast.MoveTo(float32(points[0].X-origin.X), float32(points[0].Y-origin.Y))
	for _, p := range points[1:] {
		d.rast.LineTo(float32(p.X-origin.X), float32(p.Y-origin.Y))
	}
	d.rast.ClosePath()

	src := &image.Uniform{C: c}
	if bounds.In(d.img.Bounds()) {
		d.rast.Draw(d.img, bounds, src, image.Point{})
		return
	}
	// Rasterizer.Draw does not clip against dst; go through a mask that draw.DrawMask clips.
	mask := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	d.rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(d.img, bounds, src, image.Point{}, mask, image.Point{}, draw.Over)
}

func (d *CanvasDrawer) MeasureText(text string, style TextStyle) TextMetrics {
	metrics := d.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	return TextMetrics{
		Width:      font.MeasureString(d.face, text).Ceil(),
		Height:     ascent + descent,
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: metrics.Height.Ceil(),
	}
}

func (d *CanvasDrawer) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	m := d.MeasureText(text, style)
	switch style.Align {
	case TextAlignCenter:
		x -= m.Width / 2
	case TextAlignRight:
		x -= m.Width
	}
	fg := style.Color
	if fg == nil {
		fg = Foreground
	}
	drawer := &font.Drawer{
		Dst:  d.img,
		Src:  &image.Uniform{C: fg},
		Face: d.face,
		Dot:  fixed.P(x, y+m.Ascent),
	}
	drawer.DrawString(text)
	return m
}
