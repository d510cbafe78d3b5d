package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvFBDevice, "")
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvStdioLog, "")

	cfg, err := DefaultFromEnv()
	require.NoError(t, err)
	assert.Equal(t, BackendWindow, cfg.Backend)
	assert.Equal(t, "/dev/fb0", cfg.FBDevice)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.StdioLog)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvBackend, "FB")
	t.Setenv(EnvFBDevice, "/dev/fb1")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvStdioLog, "/tmp/oldglory.log")

	cfg, err := DefaultFromEnv()
	require.NoError(t, err)
	assert.Equal(t, BackendFramebuffer, cfg.Backend)
	assert.Equal(t, "/dev/fb1", cfg.FBDevice)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/oldglory.log", cfg.StdioLog)
}

func TestDefaultFromEnvErrors(t *testing.T) {
	t.Setenv(EnvBackend, "vulkan")
	_, err := DefaultFromEnv()
	assert.ErrorContains(t, err, EnvBackend)

	t.Setenv(EnvBackend, "")
	t.Setenv(EnvDebug, "sometimes")
	_, err = DefaultFromEnv()
	assert.ErrorContains(t, err, EnvDebug)
}

func TestParseBackend(t *testing.T) {
	for raw, want := range map[string]Backend{
		"window":      BackendWindow,
		" Window ":    BackendWindow,
		"fb":          BackendFramebuffer,
		"framebuffer": BackendFramebuffer,
	} {
		got, err := ParseBackend(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	_, err := ParseBackend("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{Backend: BackendWindow, FBDevice: "/dev/fb0", Width: 1140, Height: 600}
	assert.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative size", func(c *Config) { c.Width = -1 }},
		{"half size", func(c *Config) { c.Height = 0 }},
		{"negative margin", func(c *Config) { c.Margin = -2 }},
		{"bad backend", func(c *Config) { c.Backend = "x11" }},
		{"fb without device", func(c *Config) { c.Backend = BackendFramebuffer; c.FBDevice = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
