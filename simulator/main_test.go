package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/koi/internal/app"
	"github.com/rook-computer/koi/internal/config"
	"github.com/rook-computer/koi/internal/engine"
	"github.com/rook-computer/koi/internal/render"
	"github.com/rook-computer/koi/internal/web"
)

type countUpdates struct{ n int }

func (g *countUpdates) OnUserCreate(e *engine.Engine) bool { return true }
func (g *countUpdates) OnUserUpdate(e *engine.Engine, elapsed float64) bool {
	g.n++
	return true
}
func (g *countUpdates) OnUserDestroy(e *engine.Engine) bool { return true }

func TestPreviewServerDisabledByDefault(t *testing.T) {
	server := newPreviewServer(web.ServerConfig{}, app.New(config.Default()), render.NewCaptureRenderer())
	assert.IsType(t, &web.NoopServer{}, server)
}

func TestPreviewServerExitEndsRun(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = config.BackendHeadless
	cfg.Width, cfg.Height = 16, 16
	cfg.PixelWidth, cfg.PixelHeight = 1, 1
	a := app.New(cfg)
	game := &countUpdates{}
	a.Game = game

	server := newPreviewServer(web.ServerConfig{ListenAddr: "127.0.0.1:0"}, a, render.NewCaptureRenderer())
	httpServer, ok := server.(*web.HTTPServer)
	require.True(t, ok)
	require.NoError(t, server.Start(context.Background()))
	defer func() { _ = server.Stop() }()

	resp, err := http.Post("http://"+httpServer.Addr+"/api/v1/exit", "application/json", nil)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	require.NoError(t, a.Start(context.Background()))
	assert.Equal(t, 1, game.n, "exit requested before start ends the run after one update")
}
