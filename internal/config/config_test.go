package config

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/koi/internal/engine"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, image.Pt(256, 240), cfg.Engine().ScreenSize)
	assert.Equal(t, image.Pt(4, 4), cfg.Engine().PixelSize)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "koi.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend = "term"
width = 160
pixel_width = 1
pixel_height = 1
cohesion = true
`), 0o644))

	cfg, err := Load(path, Default())
	require.NoError(t, err)
	assert.Equal(t, BackendTerminal, cfg.Backend)
	assert.Equal(t, 160, cfg.Width)
	assert.Equal(t, 240, cfg.Height, "keys missing from the file keep the base value")
	assert.True(t, cfg.Cohesion)

	cfg, err = Load("", Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(dir, "missing.toml"), Default())
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("widht = 3\n"), 0o644))
	_, err = Load(bad, Default())
	assert.Error(t, err, "unknown keys are rejected")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvBackend, "headless")
	t.Setenv(EnvWidth, "64")
	t.Setenv(EnvCohesion, "true")
	t.Setenv(EnvTitle, "demo")

	cfg, err := FromEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, BackendHeadless, cfg.Backend)
	assert.Equal(t, 64, cfg.Width)
	assert.True(t, cfg.Cohesion)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 240, cfg.Height)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"int", EnvHeight, "tall"},
		{"bool", EnvVSync, "sometimes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv(Default())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Backend = "vga"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownBackend)

	cfg = Default()
	cfg.PixelHeight = 0
	assert.ErrorIs(t, cfg.Validate(), engine.ErrInvalidSize)
}
