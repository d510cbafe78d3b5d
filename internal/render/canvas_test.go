package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{R: 0xFF, A: 0xFF}
	gray = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
)

func TestCanvasDrawerResize(t *testing.T) {
	d := NewCanvasDrawer(10, 5, nil)
	w, h := d.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 5, h)

	assert.False(t, d.Resize(10, 5))
	assert.True(t, d.Resize(20, 8))
	w, h = d.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 8, h)

	assert.True(t, d.Resize(-1, -1))
	w, h = d.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

// clearCanvas paints the whole canvas gray, the way the flag's first layer does.
func clearCanvas(d *CanvasDrawer) {
	d.FillRect(d.Image().Bounds(), gray)
}

func TestCanvasDrawerFillRectOpaque(t *testing.T) {
	d := NewCanvasDrawer(4, 4, nil)
	clearCanvas(d)
	assert.Equal(t, gray, d.Image().RGBAAt(3, 3))
}

func TestCanvasDrawerFillRectClips(t *testing.T) {
	d := NewCanvasDrawer(10, 10, nil)
	clearCanvas(d)
	assert.NotPanics(t, func() {
		d.FillRect(image.Rect(5, 5, 50, 50), red)
		d.FillRect(image.Rect(-20, -20, -10, -10), red)
		d.FillRect(image.Rect(3, 3, 3, 3), red)
	})
	assert.Equal(t, red, d.Image().RGBAAt(9, 9))
	assert.Equal(t, red, d.Image().RGBAAt(5, 5))
	assert.Equal(t, gray, d.Image().RGBAAt(4, 4))
}

func TestCanvasDrawerFillPolygon(t *testing.T) {
	d := NewCanvasDrawer(40, 40, nil)
	clearCanvas(d)
	square := []image.Point{{10, 10}, {30, 10}, {30, 30}, {10, 30}}
	d.FillPolygon(square, red)

	assert.Equal(t, red, d.Image().RGBAAt(20, 20))
	assert.Equal(t, gray, d.Image().RGBAAt(5, 5))
	assert.Equal(t, gray, d.Image().RGBAAt(35, 35))
}

func TestCanvasDrawerFillPolygonPartlyOffCanvas(t *testing.T) {
	d := NewCanvasDrawer(20, 20, nil)
	clearCanvas(d)
	tri := []image.Point{{-10, -10}, {15, -10}, {-10, 15}}
	require.NotPanics(t, func() { d.FillPolygon(tri, red) })
	assert.Equal(t, red, d.Image().RGBAAt(0, 0))
	assert.Equal(t, gray, d.Image().RGBAAt(19, 19))
}

func TestCanvasDrawerFillPolygonDegenerate(t *testing.T) {
	d := NewCanvasDrawer(0, 0, nil)
	assert.NotPanics(t, func() {
		d.FillPolygon(nil, red)
		d.FillPolygon([]image.Point{{0, 0}, {0, 0}, {0, 0}}, red)
		d.FillRect(image.Rect(0, 0, 5, 5), red)
	})

	d = NewCanvasDrawer(10, 10, nil)
	clearCanvas(d)
	d.FillPolygon([]image.Point{{2, 2}, {2, 2}, {2, 2}}, red)
	assert.Equal(t, gray, d.Image().RGBAAt(2, 2))
}

func TestCanvasDrawerText(t *testing.T) {
	d := NewCanvasDrawer(200, 40, nil)
	clearCanvas(d)
	m := d.DrawText("1140x600", 100, 5, TextStyle{Align: TextAlignCenter})
	assert.Equal(t, 7*8, m.Width)
	assert.Positive(t, m.Ascent)

	inked := false
	bounds := image.Rect(100-m.Width/2, 5, 100+m.Width/2, 5+m.Height)
	for y := bounds.Min.Y; y < bounds.Max.Y && !inked; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if d.Image().RGBAAt(x, y) != gray {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked, "expected glyph pixels inside the measured box")
}
