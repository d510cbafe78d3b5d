//go:build !cgo && !windows

package backend

import (
	"context"
	"errors"

	"github.com/rook-computer/oldglory/internal/render"
	"github.com/rook-computer/oldglory/internal/state"
)

// The framebuffer backend needs cgo too, so there is no display backend to point to.
var errWindowNeedsCgo = errors.New("window backend requires a cgo build (CGO_ENABLED=1)")

type windowStub struct{ render.NoopRenderer }

// NewWindowRenderer reports an error on Start: this build has no window toolkit.
func NewWindowRenderer(cfg WindowConfig) render.Renderer { return &windowStub{} }

func (w *windowStub) Start(ctx context.Context) error { return errWindowNeedsCgo }

func (w *windowStub) RunLoop(ctx context.Context, store *state.Store) error {
	return errWindowNeedsCgo
}
