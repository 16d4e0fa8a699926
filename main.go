package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rook-computer/koi/internal/app"
	"github.com/rook-computer/koi/internal/app/screens"
	"github.com/rook-computer/koi/internal/config"
)

// Window systems and GL contexts are bound to the thread that created them.
func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "koi:", err)
		os.Exit(1)
	}
}

func run() error {
	defaults := config.Default()

	debug := flag.Bool("debug", false, "enable debug logging to ./koi-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via KOI_STDIO_LOG")
	configPath := flag.String("config", "", "TOML config file")
	backend := flag.String("backend", defaults.Backend, "backend: fb, term, gl or headless")
	scene := flag.String("scene", defaults.Scene, fmt.Sprintf("scene to run %v", screens.Names()))
	width := flag.Int("width", defaults.Width, "screen width in pixels")
	height := flag.Int("height", defaults.Height, "screen height in pixels")
	pixelWidth := flag.Int("pixel-width", defaults.PixelWidth, "window pixels per screen pixel, horizontally")
	pixelHeight := flag.Int("pixel-height", defaults.PixelHeight, "window pixels per screen pixel, vertically")
	cohesion := flag.Bool("cohesion", defaults.Cohesion, "only scale the screen by whole multiples")
	vsync := flag.Bool("vsync", defaults.VSync, "wait for vertical sync")
	fullScreen := flag.Bool("fullscreen", defaults.FullScreen, "open a full screen window")
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("KOI_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	cfg := defaults
	var err error
	if *configPath != "" {
		if cfg, err = config.Load(*configPath, cfg); err != nil {
			return err
		}
	}
	if cfg, err = config.FromEnv(cfg); err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backend
		case "scene":
			cfg.Scene = *scene
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "pixel-width":
			cfg.PixelWidth = *pixelWidth
		case "pixel-height":
			cfg.PixelHeight = *pixelHeight
		case "cohesion":
			cfg.Cohesion = *cohesion
		case "vsync":
			cfg.VSync = *vsync
		case "fullscreen":
			cfg.FullScreen = *fullScreen
		}
	})

	logger, err := newLogger(cfg, *debug)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := app.New(cfg)
	a.Logger = logger

	// First signal asks the scene to finish, the second stops the engine.
	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		sig, ok := <-sigs
		if !ok {
			return
		}
		logger.Infof("main", "received %v, exiting", sig)
		a.Exit(nil)
		if _, ok := <-sigs; ok {
			logger.Infof("main", "received second signal, stopping")
			cancel()
		}
	}()

	err = a.Start(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newLogger(cfg config.Config, debug bool) (app.Logger, error) {
	if debug {
		f, err := os.OpenFile("./koi-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("debug log open: %w", err)
		}
		logger := app.NewFileLogger(f)
		logger.Infof("main", "debug logging enabled")
		return logger, nil
	}

	// The terminal backend owns stdout and stderr.
	var w io.Writer = os.Stderr
	if cfg.Backend == config.BackendTerminal {
		w = io.Discard
	}
	return app.NewSlogLogger(w, cfg.LogLevel)
}
