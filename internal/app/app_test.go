package app

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/koi/internal/app/screens"
	"github.com/rook-computer/koi/internal/config"
	"github.com/rook-computer/koi/internal/engine"
	"github.com/rook-computer/koi/internal/render"
)

type countingGame struct {
	onUpdate  func(tick int)
	updates   int
	destroyed int
}

func (g *countingGame) OnUserCreate(e *engine.Engine) bool { return true }
func (g *countingGame) OnUserUpdate(e *engine.Engine, elapsed float64) bool {
	g.updates++
	if g.onUpdate != nil {
		g.onUpdate(g.updates)
	}
	return true
}
func (g *countingGame) OnUserDestroy(e *engine.Engine) bool {
	g.destroyed++
	return true
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Backend = config.BackendHeadless
	cfg.Width, cfg.Height = 32, 16
	cfg.PixelWidth, cfg.PixelHeight = 1, 1
	return cfg
}

func TestAppExitEndsScene(t *testing.T) {
	app := New(testConfig())
	wantErr := errors.New("done")
	game := &countingGame{}
	game.onUpdate = func(tick int) {
		if tick == 3 {
			app.Exit(wantErr)
			app.Exit(errors.New("ignored"))
		}
	}
	app.Game = game

	err := app.Start(context.Background())
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 3, game.updates)
	assert.Equal(t, 1, game.destroyed)
}

func TestAppBackendOverride(t *testing.T) {
	app := New(testConfig())
	capture := render.NewCaptureRenderer()
	app.Backend = capture
	game := &countingGame{}
	game.onUpdate = func(tick int) {
		if tick == 2 {
			app.Exit(nil)
		}
	}
	app.Game = game

	require.NoError(t, app.Start(context.Background()))
	assert.Equal(t, 2, capture.Frames())
	assert.Equal(t, image.Rect(0, 0, 32, 16), capture.Frame().Bounds())
	assert.True(t, capture.Closed())
}

func TestAppRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Backend = "vga"
	assert.ErrorIs(t, New(cfg).Start(context.Background()), config.ErrUnknownBackend)

	cfg = testConfig()
	cfg.Scene = "missing"
	assert.ErrorIs(t, New(cfg).Start(context.Background()), screens.ErrUnknownScene)

	cfg = testConfig()
	cfg.Width = 0
	assert.ErrorIs(t, New(cfg).Start(context.Background()), engine.ErrInvalidSize)
}

func TestAppCancelledContext(t *testing.T) {
	app := New(testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	game := &countingGame{}
	game.onUpdate = func(tick int) {
		if tick == 2 {
			cancel()
		}
	}
	app.Game = game

	assert.ErrorIs(t, app.Start(ctx), context.Canceled)
	assert.Equal(t, 1, game.destroyed)
}

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.Infof("engine", "fps=%d", 60)
	l.Errorf("fb", "open: %s", "denied")

	lines := regexp.MustCompile(`(?m)^\S+ \[(INFO|ERROR)\] (\w+): (.*)$`).FindAllStringSubmatch(buf.String(), -1)
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"INFO", "engine", "fps=60"}, lines[0][1:])
	assert.Equal(t, []string{"ERROR", "fb", "open: denied"}, lines[1][1:])
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewSlogLogger(&buf, "error")
	require.NoError(t, err)
	l.Infof("engine", "hidden")
	l.Errorf("engine", "visible %d", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `msg="visible 1" component=engine`)

	_, err = NewSlogLogger(&buf, "loud")
	assert.Error(t, err)
}

func TestResolveLogLevel(t *testing.T) {
	level, err := ResolveLogLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
