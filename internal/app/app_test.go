package app

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/oldglory/internal/app/screens"
	"github.com/rook-computer/oldglory/internal/render"
	"github.com/rook-computer/oldglory/internal/render/layout"
	"github.com/rook-computer/oldglory/internal/render/rendertest"
	"github.com/rook-computer/oldglory/internal/state"
	"github.com/rook-computer/oldglory/internal/usflag"
)

// fakeRenderer paints one frame into a Recorder and then waits for ctx.
type fakeRenderer struct {
	startErr error
	loopErr  error
	started  chan struct{}

	screen  render.Screen
	rec     *rendertest.Recorder
	stopped bool
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{started: make(chan struct{})}
}

func (f *fakeRenderer) Start(ctx context.Context) error { return f.startErr }
func (f *fakeRenderer) Stop() error                     { f.stopped = true; return nil }
func (f *fakeRenderer) SetScreen(screen render.Screen)  { f.screen = screen }

func (f *fakeRenderer) RedrawWithState(snap state.State) {
	f.rec = rendertest.NewRecorder(snap.Window.X, snap.Window.Y)
	f.screen.Draw(f.rec, snap)
}

func (f *fakeRenderer) RunLoop(ctx context.Context, store *state.Store) error {
	store.SetWindowSize(1140, 600)
	f.RedrawWithState(store.Snapshot())
	close(f.started)
	if f.loopErr != nil {
		return f.loopErr
	}
	<-ctx.Done()
	return nil
}

func TestAppRunsUntilExit(t *testing.T) {
	fake := newFakeRenderer()
	a := New(state.NewStore(layout.Edges{}), fake)

	done := make(chan error, 1)
	go func() { done <- a.Start(context.Background()) }()

	select {
	case <-fake.started:
	case <-time.After(time.Second):
		t.Fatal("render loop did not start")
	}
	a.Exit(nil)

	require.NoError(t, <-done)
	assert.True(t, fake.stopped)
	assert.IsType(t, screens.FlagScreen{}, fake.screen)
	assert.Len(t, fake.rec.Filter(rendertest.OpPolygon), usflag.StarCount)
}

func TestAppExitErrorIsReturned(t *testing.T) {
	fake := newFakeRenderer()
	a := New(state.NewStore(layout.Edges{}), fake)
	want := errors.New("display lost")

	done := make(chan error, 1)
	go func() { done <- a.Start(context.Background()) }()
	<-fake.started
	a.Exit(want)
	a.Exit(errors.New("ignored"))

	assert.ErrorIs(t, <-done, want)
}

func TestAppExitBeforeStart(t *testing.T) {
	fake := newFakeRenderer()
	a := New(state.NewStore(layout.Edges{}), fake)
	a.Exit(nil)
	assert.NoError(t, a.Start(context.Background()))
}

func TestAppParentContextCancel(t *testing.T) {
	fake := newFakeRenderer()
	a := New(state.NewStore(layout.Edges{}), fake)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- a.Start(ctx) }()
	<-fake.started
	cancel()
	assert.NoError(t, <-done)
}

func TestAppRendererErrors(t *testing.T) {
	fake := newFakeRenderer()
	fake.startErr = errors.New("no display")
	a := New(state.NewStore(layout.Edges{}), fake)
	assert.EqualError(t, a.Start(context.Background()), "no display")

	fake = newFakeRenderer()
	fake.loopErr = errors.New("window loop: boom")
	a = New(state.NewStore(layout.Edges{}), fake)
	assert.EqualError(t, a.Start(context.Background()), "window loop: boom")
	assert.True(t, fake.stopped)
}

func TestAppRequiresCollaborators(t *testing.T) {
	assert.Error(t, (&App{}).Start(context.Background()))
	assert.Error(t, (&App{Render: newFakeRenderer()}).Start(context.Background()))
}

func TestAppDebugOverlay(t *testing.T) {
	fake := newFakeRenderer()
	store := state.NewStore(layout.Uniform(0))
	a := New(store, fake)
	a.Debug = true

	done := make(chan error, 1)
	go func() { done <- a.Start(context.Background()) }()
	<-fake.started
	a.Exit(nil)
	require.NoError(t, <-done)

	// 1140x600 is filled by the flag, so there is no room for the readout.
	assert.Empty(t, fake.rec.Filter(rendertest.OpText))
	assert.Equal(t, image.Pt(1140, 600), store.Snapshot().Window)
}
