package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/oldglory/internal/app"
	"github.com/rook-computer/oldglory/internal/config"
	"github.com/rook-computer/oldglory/internal/render"
	"github.com/rook-computer/oldglory/internal/render/backend"
	"github.com/rook-computer/oldglory/internal/render/layout"
	"github.com/rook-computer/oldglory/internal/state"
	"github.com/rook-computer/oldglory/internal/system"
)

func main() {
	defaults, err := config.DefaultFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	backend := flag.String("backend", string(defaults.Backend), "display backend: window | fb; also configurable via "+config.EnvBackend)
	fbDevice := flag.String("fb-device", defaults.FBDevice, "framebuffer device for -backend=fb; also configurable via "+config.EnvFBDevice)
	debug := flag.Bool("debug", defaults.Debug, "enable debug logging to ./oldglory-debug.log and the size overlay; also configurable via "+config.EnvDebug)
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	width := flag.Int("width", 0, "initial window width (window) or logical canvas width (fb); 0 picks the default")
	height := flag.Int("height", 0, "initial window height (window) or logical canvas height (fb); 0 picks the default")
	margin := flag.Int("margin", 0, "uniform inset around the flag in pixels")
	flag.Parse()

	parsedBackend, err := config.ParseBackend(*backend)
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}
	cfg := config.Config{
		Backend:  parsedBackend,
		FBDevice: *fbDevice,
		Debug:    *debug,
		StdioLog: *stdioLog,
		Width:    *width,
		Height:   *height,
		Margin:   *margin,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Best-effort: on the console the screen is in graphics mode, so crashes are only
	// diagnosable from a file.
	if err := system.RedirectStdIO(cfg.StdioLog); err != nil {
		fmt.Println("stdio log redirect error:", err)
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		f, err := os.OpenFile("./oldglory-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled, backend=%s", cfg.Backend)
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := state.NewStore(layout.Uniform(cfg.Margin))
	a := app.New(store, newRenderer(cfg, logger))
	a.Logger = logger
	a.Debug = cfg.Debug
	a.Console = cfg.Backend == config.BackendFramebuffer

	if err := a.Start(ctx); err != nil {
		fmt.Println("app error:", err)
		stop()
		os.Exit(1)
	}
}

func newRenderer(cfg config.Config, logger app.Logger) render.Renderer {
	switch cfg.Backend {
	case config.BackendFramebuffer:
		r := backend.NewFBRenderer(cfg.FBDevice)
		r.Width, r.Height = cfg.Width, cfg.Height
		r.Logger = logger
		return r
	default:
		return backend.NewWindowRenderer(backend.WindowConfig{
			Title:  "U.S. Flag",
			Width:  cfg.Width,
			Height: cfg.Height,
			Logger: logger,
		})
	}
}
