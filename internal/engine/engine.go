package engine

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"golang.org/x/image/font"

	"github.com/rook-computer/koi/internal/canvas"
	"github.com/rook-computer/koi/internal/input"
	"github.com/rook-computer/koi/internal/pixel"
	"github.com/rook-computer/koi/internal/platform"
	"github.com/rook-computer/koi/internal/raster"
	"github.com/rook-computer/koi/internal/render"
	"github.com/rook-computer/koi/internal/render/layout"
	"github.com/rook-computer/koi/internal/state"
)

var (
	ErrInvalidSize    = errors.New("screen and pixel dimensions must be positive")
	ErrNoBackend      = errors.New("no presentation backend")
	ErrNoGame         = errors.New("no game")
	ErrAlreadyStarted = errors.New("engine already started")
)

// Phase is the lifecycle state of an Engine.
type Phase int32

const (
	Idle Phase = iota
	Running
	Terminated
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Config describes the logical screen and the window presenting it.
type Config struct {
	Title         string
	ScreenSize    image.Point // logical pixels
	PixelSize     image.Point // physical pixels per logical pixel
	FullScreen    bool
	VSync         bool
	PixelCohesion bool
}

func DefaultConfig() Config {
	return Config{Title: "koi", ScreenSize: image.Pt(256, 240), PixelSize: image.Pt(4, 4)}
}

func (c Config) Validate() error {
	if c.ScreenSize.X <= 0 || c.ScreenSize.Y <= 0 || c.PixelSize.X <= 0 || c.PixelSize.Y <= 0 {
		return fmt.Errorf("%w: screen %dx%d, pixel %dx%d", ErrInvalidSize,
			c.ScreenSize.X, c.ScreenSize.Y, c.PixelSize.X, c.PixelSize.Y)
	}
	return nil
}

// Game receives the engine callbacks. OnUserUpdate returning false requests
// termination; OnUserDestroy returning false declines it and the engine keeps
// running.
type Game interface {
	OnUserCreate(e *Engine) bool
	OnUserUpdate(e *Engine, elapsed float64) bool
	OnUserDestroy(e *Engine) bool
}

// Logger is the component logger used by the engine.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(string, string, ...interface{})  {}
func (nopLogger) Errorf(string, string, ...interface{}) {}

type Option func(*Engine)

func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock replaces the monotonic clock used for frame timing.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithStore makes the engine sample raw input from store.
func WithStore(store *state.Store) Option {
	return func(e *Engine) {
		if store != nil {
			e.store = store
		}
	}
}

// Engine runs the per-tick pipeline: timing, event poll, input edge
// detection, user update and present. All methods except Terminate must be
// called from the goroutine running Start.
type Engine struct {
	cfg     Config
	backend render.Backend
	source  platform.InputSource
	store   *state.Store
	logger  Logger
	now     func() time.Time

	screen *canvas.Canvas
	comp   *pixel.Compositor
	gate   *raster.Gate
	face   font.Face

	texture render.TextureID

	keys  *input.Scanner
	mouse *input.Scanner

	windowSize  image.Point
	viewPos     image.Point
	viewSize    image.Point
	screenPixel image.Point
	mouseWindow image.Point
	mousePos    image.Point
	wheel       int
	keyFocus    bool
	mouseFocus  bool

	offset        [2]float32
	scale         [2]float32
	tint          pixel.Color
	renderHook    func()
	windowEnabled bool

	phase  atomic.Int32
	active atomic.Bool

	last       time.Time
	elapsed    float64
	frameTimer float64
	frameCount int
	lastFPS    int
}

// New validates cfg and builds an idle engine. source may be nil.
func New(cfg Config, backend render.Backend, source platform.InputSource, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if backend == nil {
		return nil, ErrNoBackend
	}
	if source == nil {
		source = platform.NoopSource{}
	}
	e := &Engine{
		cfg:           cfg,
		backend:       backend,
		source:        source,
		store:         state.NewStore(),
		logger:        nopLogger{},
		now:           time.Now,
		screen:        canvas.New(cfg.ScreenSize.X, cfg.ScreenSize.Y),
		comp:          pixel.NewCompositor(),
		face:          raster.DefaultFace,
		keys:          input.NewScanner(int(input.KeyCount)),
		mouse:         input.NewScanner(input.MouseButtons),
		keyFocus:      true,
		mouseFocus:    true,
		scale:         [2]float32{1, 1},
		tint:          pixel.White,
		windowEnabled: true,
	}
	e.gate = raster.NewGate(e.screen, e.comp)
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Phase() Phase { return Phase(e.phase.Load()) }

// Terminate requests termination at the end of the current tick. It is safe
// to call from any goroutine.
func (e *Engine) Terminate() { e.active.Store(false) }

// Start opens the backend and input source, then runs ticks until the game
// terminates. Backend or input failures are returned before any tick runs.
// Cancelling ctx stops the engine; OnUserDestroy is still called but cannot
// keep it running.
func (e *Engine) Start(ctx context.Context, game Game) error {
	if game == nil {
		return ErrNoGame
	}
	if !e.phase.CompareAndSwap(int32(Idle), int32(Running)) {
		return ErrAlreadyStarted
	}

	windowSize := image.Pt(e.cfg.ScreenSize.X*e.cfg.PixelSize.X, e.cfg.ScreenSize.Y*e.cfg.PixelSize.Y)
	size, err := e.backend.Open(ctx, render.WindowConfig{
		Title:      e.cfg.Title,
		Size:       windowSize,
		FullScreen: e.cfg.FullScreen,
		VSync:      e.cfg.VSync,
	})
	if err != nil {
		e.phase.Store(int32(Idle))
		return fmt.Errorf("open backend: %w", err)
	}
	defer func() {
		if cerr := e.backend.Close(); cerr != nil {
			e.logger.Errorf("engine", "close backend: %v", cerr)
		}
	}()
	e.store.SetWindowSize(size.X, size.Y)
	e.windowSize = size
	e.updateViewport()
	e.logger.Infof("engine", "window %dx%d, screen %dx%d, viewport %v+%v",
		size.X, size.Y, e.screen.Width(), e.screen.Height(), e.viewPos, e.viewSize)

	if err := e.source.Start(ctx, e.store, e.Terminate); err != nil {
		e.phase.Store(int32(Idle))
		return fmt.Errorf("start input: %w", err)
	}
	defer func() {
		if serr := e.source.Stop(); serr != nil {
			e.logger.Errorf("engine", "stop input: %v", serr)
		}
	}()

	tex, err := e.backend.UploadTexture(e.screen)
	if err != nil {
		e.phase.Store(int32(Idle))
		return fmt.Errorf("upload texture: %w", err)
	}
	e.texture = tex

	defer e.phase.Store(int32(Terminated))

	e.active.Store(true)
	if !game.OnUserCreate(e) {
		e.logger.Infof("engine", "create declined, not starting")
		e.active.Store(false)
		return nil
	}

	e.last = e.now()
	for e.active.Load() {
		for e.active.Load() {
			if ctx.Err() != nil {
				e.active.Store(false)
				break
			}
			if err := e.tick(game); err != nil {
				game.OnUserDestroy(e)
				return err
			}
		}
		if ctx.Err() != nil {
			game.OnUserDestroy(e)
			return ctx.Err()
		}
		if !game.OnUserDestroy(e) {
			e.logger.Infof("engine", "teardown declined, resuming")
			e.active.Store(true)
		}
	}
	e.logger.Infof("engine", "terminated")
	return nil
}

func (e *Engine) tick(game Game) error {
	e.updateTiming()
	e.source.PollEvents()
	e.scanHardware()

	if !game.OnUserUpdate(e, e.elapsed) {
		e.active.Store(false)
	}

	if !e.windowEnabled {
		return nil
	}
	if err := e.present(); err != nil {
		return fmt.Errorf("display frame: %w", err)
	}
	return nil
}

func (e *Engine) updateTiming() {
	now := e.now()
	e.elapsed = now.Sub(e.last).Seconds()
	e.last = now

	e.frameTimer += e.elapsed
	e.frameCount++
	if e.frameTimer >= 1 {
		e.lastFPS = e.frameCount
		e.frameTimer -= 1
		e.frameCount = 0
		e.backend.SetTitle(fmt.Sprintf("%s - FPS: %d", e.cfg.Title, e.lastFPS))
		e.logger.Infof("engine", "fps=%d", e.lastFPS)
	}
}

func (e *Engine) scanHardware() {
	snap := e.store.Take()

	if ws := snap.WindowSize; ws != e.windowSize && ws.X > 0 && ws.Y > 0 {
		e.windowSize = ws
		e.updateViewport()
	}
	e.keyFocus = snap.KeyFocus
	e.mouseFocus = snap.MouseFocus

	e.keys.Scan(snap.Keys[:])
	e.mouse.Scan(snap.Mouse[:])

	e.mouseWindow = snap.MousePos
	e.mousePos = layout.MapMouse(snap.MousePos, e.windowSize, e.viewPos, e.ScreenSize())
	e.wheel = snap.Wheel
}

func (e *Engine) present() error {
	e.backend.SetViewport(e.viewPos, e.viewSize)
	e.backend.ClearBackBuffer(pixel.Black, true)
	e.backend.PrepareDrawing()
	if e.renderHook != nil {
		e.renderHook()
	} else {
		e.backend.ApplyTexture(e.texture)
		e.backend.UpdateTexture(e.texture, e.screen)
		e.backend.DrawQuad(e.offset, e.scale, e.tint)
	}
	return e.backend.DisplayFrame()
}

func (e *Engine) updateViewport() {
	e.viewPos, e.viewSize, e.screenPixel = layout.Viewport(e.windowSize, e.ScreenSize(), e.cfg.PixelSize, e.cfg.PixelCohesion)
}
