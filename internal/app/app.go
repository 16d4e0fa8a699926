package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rook-computer/koi/internal/app/screens"
	"github.com/rook-computer/koi/internal/config"
	"github.com/rook-computer/koi/internal/engine"
	"github.com/rook-computer/koi/internal/platform"
	"github.com/rook-computer/koi/internal/render"
)

// App wires a configured backend, input source and scene into an engine.
type App struct {
	Config config.Config
	Logger Logger

	// Backend, Source and Game override what Config selects.
	Backend render.Backend
	Source  platform.InputSource
	Game    engine.Game

	exitOnce atomic.Bool
	exiting  atomic.Bool
	mu       sync.Mutex
	exitErr  error
}

func New(cfg config.Config) *App {
	return &App{Config: cfg, Logger: NoopLogger{}}
}

// Exit asks the running scene to finish. The scene still gets its teardown
// callback and may decline it. err is returned from Start.
func (app *App) Exit(err error) {
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	app.mu.Lock()
	app.exitErr = err
	app.mu.Unlock()
	app.exiting.Store(true)
}

// Start builds the engine and runs it on the calling goroutine until the
// scene ends, Exit is called or ctx is cancelled.
func (app *App) Start(ctx context.Context) error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if err := app.Config.Validate(); err != nil {
		return err
	}

	game := app.Game
	if game == nil {
		scene, err := screens.ByName(app.Config.Scene)
		if err != nil {
			return err
		}
		game = scene
	}

	backend, source, err := app.devices()
	if err != nil {
		return err
	}

	eng, err := engine.New(app.Config.Engine(), backend, source, engine.WithLogger(app.Logger))
	if err != nil {
		return err
	}
	app.Logger.Infof("app", "starting scene %q on %s backend", app.Config.Scene, app.Config.Backend)
	if err := eng.Start(ctx, exitGame{Game: game, app: app}); err != nil {
		app.Logger.Errorf("app", "engine stopped: %v", err)
		return err
	}

	app.mu.Lock()
	defer app.mu.Unlock()
	return app.exitErr
}

func (app *App) devices() (render.Backend, platform.InputSource, error) {
	backend, source := app.Backend, app.Source
	if backend != nil {
		return backend, source, nil
	}

	switch app.Config.Backend {
	case config.BackendFramebuffer:
		fb := render.NewFBRenderer()
		fb.Device = app.Config.FBDevice
		fb.Logger = app.Logger
		evdev := platform.NewEvdevSource()
		evdev.Logger = app.Logger
		backend = fb
		if source == nil {
			source = evdev
		}
	case config.BackendTerminal:
		term := render.NewTermRenderer(nil)
		term.Logger = app.Logger
		backend = term
		if source == nil {
			source = term
		}
	case config.BackendGL:
		gl := render.NewGLRenderer()
		gl.Logger = app.Logger
		backend = gl
		if source == nil {
			source = gl
		}
	case config.BackendHeadless:
		backend = &render.CaptureRenderer{}
		if source == nil {
			source = platform.NoopSource{}
		}
	default:
		return nil, nil, fmt.Errorf("%w %q", config.ErrUnknownBackend, app.Config.Backend)
	}
	return backend, source, nil
}

// exitGame ends the wrapped game's update loop once Exit was called.
type exitGame struct {
	engine.Game
	app *App
}

func (g exitGame) OnUserUpdate(e *engine.Engine, elapsed float64) bool {
	if !g.Game.OnUserUpdate(e, elapsed) {
		return false
	}
	return !g.app.exiting.Load()
}
