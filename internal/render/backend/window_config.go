package backend

import (
	"math"

	"github.com/rook-computer/oldglory/internal/render"
	"github.com/rook-computer/oldglory/internal/state"
)

// WindowConfig describes the desktop window.
type WindowConfig struct {
	Title         string
	Width, Height int
	Logger        Logger
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = "U.S. Flag"
	}
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = render.CanvasWidth, render.CanvasHeight
	}
	return c
}

// resizeTracker turns the window's logical size into device pixels and records it.
type resizeTracker struct {
	store  *state.Store
	logger Logger
	// scale reports the device scale factor; zero or less means unknown.
	scale func() float64
}

// layout returns the screen size to render at. A collapsed window is recorded as
// zero but still reported as 1x1, since a game screen must be positive.
func (t resizeTracker) layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if t.scale != nil {
		if s := t.scale(); s > 0 {
			scale = s
		}
	}
	width := int(math.Ceil(float64(outsideWidth) * scale))
	height := int(math.Ceil(float64(outsideHeight) * scale))
	if t.store.SetWindowSize(width, height) && t.logger != nil {
		t.logger.Infof("window", "resized to %dx%d", width, height)
	}
	return max(width, 1), max(height, 1)
}
