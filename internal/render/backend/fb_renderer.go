package backend

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"sync/atomic"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/oldglory/internal/render"
	"github.com/rook-computer/oldglory/internal/state"
)

const (
	DefaultFBDevice = "/dev/fb0"
	fbFrameRate     = 30
)

// FBRenderer renders to the Linux framebuffer using an offscreen canvas.
// The canvas matches the device resolution unless Width and Height are set,
// in which case it is scaled to the device with nearest-neighbor sampling.
type FBRenderer struct {
	Device        string
	Width, Height int
	Logger        Logger

	closeDev func()
	out      draw.Image
	size     image.Point
	frame    frame
	running  atomic.Bool
}

func NewFBRenderer(device string) *FBRenderer {
	if device == "" {
		device = DefaultFBDevice
	}
	return &FBRenderer{Device: device}
}

func (r *FBRenderer) Start(ctx context.Context) error {
	dev, closeDev, err := openFramebuffer(r.Device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", r.Device, err)
	}
	r.closeDev = closeDev
	bounds := dev.Bounds()
	r.infof("framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	r.attach(dev)
	return nil
}

// attach prepares the canvas for out and marks the renderer running.
func (r *FBRenderer) attach(out draw.Image) {
	r.out = out
	width, height := r.Width, r.Height
	if width <= 0 || height <= 0 {
		width, height = out.Bounds().Dx(), out.Bounds().Dy()
	}
	r.size = image.Pt(width, height)
	r.frame.canvas = render.NewCanvasDrawer(width, height, overlayFace(r.Logger, "fb"))
	r.running.Store(true)
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	if r.closeDev != nil {
		r.closeDev()
		r.closeDev = nil
	}
	return nil
}

// SetScreen sets the current logical screen to be drawn.
func (r *FBRenderer) SetScreen(screen render.Screen) { r.frame.setScreen(screen) }

// RedrawWithState paints the current screen and copies it to the device.
func (r *FBRenderer) RedrawWithState(snap state.State) {
	if !r.running.Load() || r.out == nil {
		return
	}
	if !r.frame.paint(snap) {
		return
	}
	blit(r.out, r.frame.canvas.Image())
}

// RunLoop redraws at ~30 FPS until the context is done. The framebuffer never
// resizes, so the window size is published once.
func (r *FBRenderer) RunLoop(ctx context.Context, store *state.Store) error {
	if !r.running.Load() {
		return fmt.Errorf("framebuffer renderer not started")
	}
	store.SetWindowSize(r.size.X, r.size.Y)
	r.RedrawWithState(store.Snapshot())

	ticker := time.NewTicker(time.Second / fbFrameRate)
	defer ticker.Stop()
	lastLog := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			snap := store.Snapshot()
			r.RedrawWithState(snap)
			if time.Since(lastLog) > time.Second {
				r.infof("heartbeat frame, window=%dx%d", snap.Window.X, snap.Window.Y)
				lastLog = time.Now()
			}
		}
	}
}

// blit copies canvas onto dst, scaling with nearest-neighbor sampling when the sizes differ.
func blit(dst draw.Image, canvas *image.RGBA) {
	if dst == nil || canvas == nil || canvas.Bounds().Empty() {
		return
	}
	if dst.Bounds().Size() == canvas.Bounds().Size() {
		draw.Draw(dst, dst.Bounds(), canvas, canvas.Bounds().Min, draw.Src)
		return
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
}

func (r *FBRenderer) infof(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Infof("fb", format, args...)
	}
}
