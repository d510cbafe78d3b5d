package render

import (
	"context"
	"image"
	"image/color"

	"github.com/rook-computer/oldglory/internal/state"
)

type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	SetScreen(screen Screen)
	// RunLoop repaints until ctx is done or the display goes away.
	RunLoop(ctx context.Context, store *state.Store) error
	RedrawWithState(snap state.State)
}

type Screen interface {
	Start(ctx context.Context) error
	Stop() error
	Draw(r Drawer, s state.State)
}

// Stub implementations
type NoopRenderer struct{}

func (n *NoopRenderer) Start(ctx context.Context) error                       { return nil }
func (n *NoopRenderer) Stop() error                                           { return nil }
func (n *NoopRenderer) SetScreen(screen Screen)                               {}
func (n *NoopRenderer) RunLoop(ctx context.Context, store *state.Store) error { return nil }
func (n *NoopRenderer) RedrawWithState(snap state.State)                      {}

// Drawer is an abstraction the renderer provides to screens to draw primitives
// without exposing the backing surface.
type Drawer interface {
	// Size returns the surface size (in pixels) that screens draw into.
	Size() (width int, height int)

	// Solid fills. Coordinates outside the surface are clipped.
	FillRect(rect image.Rectangle, c color.Color)
	FillPolygon(points []image.Point, c color.Color)

	// Generic text primitives.
	MeasureText(text string, style TextStyle) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how to render text.
// Coordinates for DrawText use a top-left anchor for Y.
// For X, Align controls how x is interpreted.
type TextStyle struct {
	Color color.Color
	Align TextAlign
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}
