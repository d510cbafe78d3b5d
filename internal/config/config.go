package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvBackend  = "OLDGLORY_BACKEND"
	EnvFBDevice = "OLDGLORY_FB_DEVICE"
	EnvDebug    = "OLDGLORY_DEBUG"
	EnvStdioLog = "OLDGLORY_STDIO_LOG"
)

type Backend string

const (
	BackendWindow      Backend = "window"
	BackendFramebuffer Backend = "fb"
)

// Config contains process settings. None of them change the flag's geometry.
type Config struct {
	Backend  Backend
	FBDevice string
	Debug    bool
	StdioLog string

	// Initial window size for the window backend, or a logical canvas for the
	// framebuffer backend (zero means native resolution).
	Width, Height int
	// Margin is a uniform inset in pixels around the flag.
	Margin int
}

// DefaultFromEnv returns the defaults with environment overrides applied.
func DefaultFromEnv() (Config, error) {
	cfg := Config{
		Backend:  BackendWindow,
		FBDevice: "/dev/fb0",
	}

	if raw := strings.TrimSpace(os.Getenv(EnvBackend)); raw != "" {
		backend, err := ParseBackend(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvBackend, err)
		}
		cfg.Backend = backend
	}
	if raw := os.Getenv(EnvFBDevice); raw != "" {
		cfg.FBDevice = raw
	}
	if raw := os.Getenv(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		cfg.Debug = parsed
	}
	cfg.StdioLog = os.Getenv(EnvStdioLog)

	return cfg, nil
}

func ParseBackend(raw string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(raw))) {
	case BackendWindow:
		return BackendWindow, nil
	case BackendFramebuffer, "framebuffer":
		return BackendFramebuffer, nil
	default:
		return "", fmt.Errorf("unknown backend %q (want window or fb)", raw)
	}
}

// Validate rejects sizes that cannot describe a window.
func (c Config) Validate() error {
	if _, err := ParseBackend(string(c.Backend)); err != nil {
		return err
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("size must not be negative (got %dx%d)", c.Width, c.Height)
	}
	if (c.Width == 0) != (c.Height == 0) {
		return fmt.Errorf("width and height must be set together (got %dx%d)", c.Width, c.Height)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin must not be negative (got %d)", c.Margin)
	}
	if c.Backend == BackendFramebuffer && c.FBDevice == "" {
		return fmt.Errorf("framebuffer backend needs a device path")
	}
	return nil
}
