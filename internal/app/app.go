package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rook-computer/oldglory/internal/app/screens"
	"github.com/rook-computer/oldglory/internal/render"
	"github.com/rook-computer/oldglory/internal/state"
	"github.com/rook-computer/oldglory/internal/system"
)

type App struct {
	Store  *state.Store
	Render render.Renderer
	Logger Logger
	Debug  bool
	// Console switches the text console to graphics mode while running and
	// exits on F4. Only meaningful for the framebuffer backend.
	Console bool

	currentScreen render.Screen

	mu       sync.Mutex
	cancel   context.CancelFunc
	exitOnce atomic.Bool
	exitErr  error
}

func New(store *state.Store, renderer render.Renderer) *App {
	return &App{Store: store, Render: renderer, Logger: NoopLogger{}}
}

// Exit requests the app to stop running. Only the first call has an effect.
func (app *App) Exit(err error) {
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	app.mu.Lock()
	app.exitErr = err
	cancel := app.cancel
	app.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Start runs the flag until the window closes, ctx is done, or Exit is called.
// It blocks on the calling goroutine, which must be the main goroutine for the
// window backend.
func (app *App) Start(ctx context.Context) error {
	if app.Render == nil {
		return errors.New("no renderer configured")
	}
	if app.Store == nil {
		return errors.New("no state store configured")
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	app.mu.Lock()
	app.cancel = cancel
	app.mu.Unlock()
	if app.exitOnce.Load() {
		// Exit raced ahead of Start.
		cancel()
	}

	if err := app.Render.Start(loopCtx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return err
	}
	defer func() {
		if err := app.Render.Stop(); err != nil {
			app.Logger.Errorf("app", "renderer stop error: %v", err)
		}
	}()

	if app.Console {
		console := &system.Console{Logger: app.Logger}
		console.Enter()
		defer console.Restore()
		system.StartExitOnKey(loopCtx, app.Logger, system.KeyF4, func() { app.Exit(nil) })
	}

	if err := app.setScreen(loopCtx, screens.FlagScreen{Debug: app.Debug}); err != nil {
		return err
	}
	defer app.currentScreen.Stop()

	app.Logger.Infof("app", "render loop starting")
	err := app.Render.RunLoop(loopCtx, app.Store)
	app.Logger.Infof("app", "render loop stopped")
	if err != nil {
		return err
	}

	app.mu.Lock()
	defer app.mu.Unlock()
	return app.exitErr
}

func (app *App) setScreen(ctx context.Context, screen render.Screen) error {
	if app.currentScreen != nil {
		_ = app.currentScreen.Stop()
	}
	app.currentScreen = screen
	app.Render.SetScreen(screen)
	return screen.Start(ctx)
}
