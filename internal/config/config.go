package config

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/rook-computer/koi/internal/engine"
)

const (
	EnvTitle       = "KOI_TITLE"
	EnvBackend     = "KOI_BACKEND"
	EnvScene       = "KOI_SCENE"
	EnvWidth       = "KOI_WIDTH"
	EnvHeight      = "KOI_HEIGHT"
	EnvPixelWidth  = "KOI_PIXEL_WIDTH"
	EnvPixelHeight = "KOI_PIXEL_HEIGHT"
	EnvCohesion    = "KOI_COHESION"
	EnvVSync       = "KOI_VSYNC"
	EnvFullScreen  = "KOI_FULLSCREEN"
	EnvLogLevel    = "KOI_LOG_LEVEL"
	EnvFBDevice    = "KOI_FB_DEVICE"
)

// Backends selectable by name.
const (
	BackendFramebuffer = "fb"
	BackendTerminal    = "term"
	BackendGL          = "gl"
	BackendHeadless    = "headless"
)

var ErrUnknownBackend = errors.New("unknown backend")

// Config holds the host settings. Values are layered: Default, then an
// optional TOML file, then KOI_* environment variables, then flags.
type Config struct {
	Title       string `toml:"title"`
	Backend     string `toml:"backend"`
	Scene       string `toml:"scene"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	PixelWidth  int    `toml:"pixel_width"`
	PixelHeight int    `toml:"pixel_height"`
	Cohesion    bool   `toml:"cohesion"`
	VSync       bool   `toml:"vsync"`
	FullScreen  bool   `toml:"fullscreen"`
	LogLevel    string `toml:"log_level"`
	FBDevice    string `toml:"fb_device"`
}

func Default() Config {
	return Config{
		Title:       "koi",
		Backend:     BackendFramebuffer,
		Scene:       "noise",
		Width:       256,
		Height:      240,
		PixelWidth:  4,
		PixelHeight: 4,
		VSync:       true,
		LogLevel:    "info",
		FBDevice:    "/dev/fb0",
	}
}

// Load overlays the TOML file at path onto base. An empty path returns base.
// Unknown keys are rejected so typos do not go unnoticed.
func Load(path string, base Config) (Config, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	cfg := base
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays the KOI_* environment variables that are set onto base.
func FromEnv(base Config) (Config, error) {
	cfg := base
	strs := []struct {
		name string
		dst  *string
	}{
		{EnvTitle, &cfg.Title},
		{EnvBackend, &cfg.Backend},
		{EnvScene, &cfg.Scene},
		{EnvLogLevel, &cfg.LogLevel},
		{EnvFBDevice, &cfg.FBDevice},
	}
	for _, s := range strs {
		if raw := os.Getenv(s.name); raw != "" {
			*s.dst = raw
		}
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvPixelWidth, &cfg.PixelWidth},
		{EnvPixelHeight, &cfg.PixelHeight},
	}
	for _, i := range ints {
		raw := os.Getenv(i.name)
		if raw == "" {
			continue
		}
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return base, fmt.Errorf("%s must be an integer (got %q): %w", i.name, raw, err)
		}
		*i.dst = parsed
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{EnvCohesion, &cfg.Cohesion},
		{EnvVSync, &cfg.VSync},
		{EnvFullScreen, &cfg.FullScreen},
	}
	for _, b := range bools {
		raw := os.Getenv(b.name)
		if raw == "" {
			continue
		}
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return base, fmt.Errorf("%s must be a boolean (got %q): %w", b.name, raw, err)
		}
		*b.dst = parsed
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendFramebuffer, BackendTerminal, BackendGL, BackendHeadless:
	default:
		return fmt.Errorf("%w %q", ErrUnknownBackend, c.Backend)
	}
	return c.Engine().Validate()
}

// Engine returns the engine settings described by c.
func (c Config) Engine() engine.Config {
	return engine.Config{
		Title:         c.Title,
		ScreenSize:    image.Pt(c.Width, c.Height),
		PixelSize:     image.Pt(c.PixelWidth, c.PixelHeight),
		FullScreen:    c.FullScreen,
		VSync:         c.VSync,
		PixelCohesion: c.Cohesion,
	}
}
