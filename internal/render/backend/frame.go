// Package backend shows render.Screen output on a display: a desktop window or the
// Linux framebuffer.
package backend

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/rook-computer/oldglory/internal/assets"
	"github.com/rook-computer/oldglory/internal/render"
	"github.com/rook-computer/oldglory/internal/state"
)

const overlayFontPt = 13

// Logger is the logging surface renderers report through.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// frame owns the canvas and the screen shared by every backend.
type frame struct {
	mu      sync.Mutex
	canvas  *render.CanvasDrawer
	current render.Screen
}

func (f *frame) setScreen(screen render.Screen) {
	f.mu.Lock()
	f.current = screen
	f.mu.Unlock()
}

// paint sizes the canvas to the window in snap and lets the current screen draw into it.
// The screen owns every pixel, background included. It reports false when there was
// nothing to paint.
func (f *frame) paint(snap state.State) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == nil || f.canvas == nil {
		return false
	}
	f.canvas.Resize(snap.Window.X, snap.Window.Y)
	f.current.Draw(f.canvas, snap)
	return true
}

// overlayFace loads the overlay font, falling back to basicfont when it does not parse.
func overlayFace(logger Logger, component string) font.Face {
	face, err := assets.OverlayFace(overlayFontPt)
	if err != nil {
		if logger != nil {
			logger.Errorf(component, "font parse failed, using basicfont: %v", err)
		}
		return basicfont.Face7x13
	}
	return face
}
