//go:build cgo || windows

package backend

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rook-computer/oldglory/internal/render"
	"github.com/rook-computer/oldglory/internal/state"
)

// WindowRenderer shows the canvas in a resizable desktop window.
// The canvas always has the window's size in device pixels, so nothing is scaled.
type WindowRenderer struct {
	cfg   WindowConfig
	frame frame
}

func NewWindowRenderer(cfg WindowConfig) render.Renderer {
	return &WindowRenderer{cfg: cfg.withDefaults()}
}

func (r *WindowRenderer) Start(ctx context.Context) error {
	ebiten.SetWindowTitle(r.cfg.Title)
	ebiten.SetWindowSize(r.cfg.Width, r.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	r.frame.canvas = render.NewCanvasDrawer(r.cfg.Width, r.cfg.Height, overlayFace(r.cfg.Logger, "window"))
	return nil
}

func (r *WindowRenderer) Stop() error { return nil }

func (r *WindowRenderer) SetScreen(screen render.Screen) { r.frame.setScreen(screen) }

// RedrawWithState paints into the canvas; the game loop uploads it on the next Draw.
func (r *WindowRenderer) RedrawWithState(snap state.State) { r.frame.paint(snap) }

// RunLoop blocks until the window is closed or ctx is done.
// It must be called from the main goroutine.
func (r *WindowRenderer) RunLoop(ctx context.Context, store *state.Store) error {
	if r.frame.canvas == nil {
		return fmt.Errorf("window renderer not started")
	}
	g := &windowGame{
		ctx:     ctx,
		r:       r,
		store:   store,
		resizes: resizeTracker{store: store, logger: r.cfg.Logger, scale: deviceScale},
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window loop: %w", err)
	}
	r.infof("window closed")
	return nil
}

func (r *WindowRenderer) infof(format string, args ...interface{}) {
	if r.cfg.Logger != nil {
		r.cfg.Logger.Infof("window", format, args...)
	}
}

// deviceScale is the scale factor of the window's monitor, or 0 once the UI is gone.
func deviceScale() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 0
	}
	return m.DeviceScaleFactor()
}

type windowGame struct {
	ctx     context.Context
	r       *WindowRenderer
	store   *state.Store
	resizes resizeTracker
	img     *ebiten.Image
}

func (g *windowGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	snap := g.store.Snapshot()
	if !g.r.frame.paint(snap) {
		return
	}
	canvas := g.r.frame.canvas.Image()
	bounds := canvas.Bounds()
	if bounds.Empty() {
		return
	}
	if g.img == nil || g.img.Bounds().Size() != bounds.Size() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	g.img.WritePixels(canvas.Pix)
	screen.DrawImage(g.img, nil)
}

// Layout renders at device resolution and records every resize in the store.
func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.resizes.layout(outsideWidth, outsideHeight)
}
