package screens

import (
	"context"
	"fmt"

	"github.com/rook-computer/oldglory/internal/render"
	"github.com/rook-computer/oldglory/internal/state"
	"github.com/rook-computer/oldglory/internal/usflag"
)

const overlayPadding = 4

// FlagScreen paints the flag fitted to the current window.
// With Debug set it also prints the window and canvas size beside the flag.
type FlagScreen struct {
	Debug bool
}

func (FlagScreen) Start(ctx context.Context) error { return nil }
func (FlagScreen) Stop() error                     { return nil }

func (s FlagScreen) Draw(r render.Drawer, st state.State) {
	canvas := usflag.Paint(r, st.Window, st.Insets)
	if s.Debug {
		drawOverlay(r, st, canvas)
	}
}

// drawOverlay puts the size readout below the flag, or right of it, wherever the
// background shows. It draws nothing when the flag fills the window.
func drawOverlay(r render.Drawer, st state.State, canvas usflag.Canvas) {
	text := fmt.Sprintf("window %dx%d  canvas %dx%d", st.Window.X, st.Window.Y, canvas.Width, canvas.Height)
	style := render.TextStyle{Color: render.Foreground, Align: render.TextAlignRight}
	m := r.MeasureText(text, style)
	rect := canvas.Rect()

	width, height := r.Size()
	x := width - overlayPadding
	y := height - overlayPadding - m.Height
	below := y >= rect.Max.Y
	right := x-m.Width >= rect.Max.X
	if (!below && !right) || x-m.Width < 0 || y < 0 {
		return
	}
	r.DrawText(text, x, y, style)
}
