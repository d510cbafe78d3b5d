// Package rendertest provides a render.Drawer that records calls instead of drawing.
package rendertest

import (
	"image"
	"image/color"

	"github.com/rook-computer/oldglory/internal/render"
)

type OpKind int

const (
	OpRect OpKind = iota
	OpPolygon
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpRect:
		return "rect"
	case OpPolygon:
		return "polygon"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call.
type Op struct {
	Kind   OpKind
	Rect   image.Rectangle
	Points []image.Point
	Color  color.Color
	Text   string
	At     image.Point
}

// Recorder implements render.Drawer. Text is measured with a fixed 7x13 cell.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

var _ render.Drawer = (*Recorder)(nil)

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) FillRect(rect image.Rectangle, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Rect: rect, Color: c})
}

func (r *Recorder) FillPolygon(points []image.Point, c color.Color) {
	pts := make([]image.Point, len(points))
	copy(pts, points)
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Points: pts, Color: c})
}

func (r *Recorder) MeasureText(text string, style render.TextStyle) render.TextMetrics {
	return render.TextMetrics{Width: 7 * len(text), Height: 13, Ascent: 11, Descent: 2, LineHeight: 13}
}

func (r *Recorder) DrawText(text string, x, y int, style render.TextStyle) render.TextMetrics {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: text, At: image.Pt(x, y), Color: style.Color})
	return r.MeasureText(text, style)
}

// Filter returns the recorded ops of the given kind, in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
