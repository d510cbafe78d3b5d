package state

import (
	"image"
	"sync"

	"github.com/rook-computer/oldglory/internal/render/layout"
)

// State is what a screen needs to paint one frame.
type State struct {
	// Window is the drawable size of the window (or framebuffer) in pixels.
	Window image.Point
	// Insets are subtracted from Window before the flag is fitted.
	Insets layout.Edges
	// Resizes counts how often Window changed; zero until the first size is known.
	Resizes uint64
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore(insets layout.Edges) *Store {
	return &Store{state: State{Insets: insets}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

// SetWindowSize records the current window size and reports whether it changed.
// Negative sizes are stored as zero.
func (store *Store) SetWindowSize(width, height int) bool {
	size := image.Pt(max(width, 0), max(height, 0))
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.state.Resizes > 0 && store.state.Window == size {
		return false
	}
	store.state.Window = size
	store.state.Resizes++
	return true
}
