package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFrames struct{ frame *image.RGBA }

func (f fakeFrames) Frame() *image.RGBA { return f.frame }
func (f fakeFrames) Frames() int        { return 7 }
func (f fakeFrames) Title() string      { return "koi - FPS: 60" }

func testFrame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.SetRGBA(1, 1, color.RGBA{255, 0, 0, 255})
	return img
}

func TestFrameEndpoint(t *testing.T) {
	mux := NewDefaultMux(APIV1Config{Frames: fakeFrames{frame: testFrame()}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/frame.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
	r, g, b, a := img.At(1, 1).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
}

func TestFrameEndpointBeforeFirstFrame(t *testing.T) {
	mux := NewDefaultMux(APIV1Config{Frames: fakeFrames{}})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/frame.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var apiErr apiError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, "no_frame", apiErr.Error)
}

func TestStatusEndpoint(t *testing.T) {
	mux := NewDefaultMux(APIV1Config{Frames: fakeFrames{frame: testFrame()}})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var status statusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, statusResponse{Title: "koi - FPS: 60", Frames: 7, Width: 4, Height: 2}, status)
}

func TestExitEndpoint(t *testing.T) {
	calls := 0
	mux := NewDefaultMux(APIV1Config{Handlers: APIV1Handlers{ExitFunc: func(ctx context.Context) error {
		calls++
		if calls > 1 {
			return errors.New("already exiting")
		}
		return nil
	}}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/exit", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/exit", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/exit", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 2, calls)
}

func TestIndexAndUnknownPaths(t *testing.T) {
	mux := NewDefaultMux(APIV1Config{})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/frame.png")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestHTTPServerLifecycle(t *testing.T) {
	s := NewHTTPServer(ServerConfig{ListenAddr: "127.0.0.1:0", DevMode: true}, NewDefaultMux(APIV1Config{Frames: fakeFrames{frame: testFrame()}}))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Start(ctx))

	req, err := http.NewRequest(http.MethodGet, "http://"+s.Addr+"/api/v1/status", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.True(t, bytes.Contains(body, []byte(`"frames":7`)))

	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())
	assert.Error(t, s.Start(ctx), "stopped servers do not restart")
}

func TestServerConfigFromEnv(t *testing.T) {
	t.Setenv(EnvListenAddr, "")
	t.Setenv(EnvDevMode, "")
	cfg, err := DefaultServerConfigFromEnv(":9000")
	require.NoError(t, err)
	assert.Equal(t, ServerConfig{ListenAddr: ":9000"}, cfg)

	t.Setenv(EnvListenAddr, "127.0.0.1:1234")
	t.Setenv(EnvDevMode, "true")
	cfg, err = DefaultServerConfigFromEnv(":9000")
	require.NoError(t, err)
	assert.Equal(t, ServerConfig{ListenAddr: "127.0.0.1:1234", DevMode: true}, cfg)

	t.Setenv(EnvDevMode, "maybe")
	_, err = DefaultServerConfigFromEnv(":9000")
	assert.Error(t, err)
}

func TestNewServerDisabledWithoutAddress(t *testing.T) {
	s := NewServer(ServerConfig{}, NewDefaultMux(APIV1Config{}))
	require.IsType(t, &NoopServer{}, s)
	assert.NoError(t, s.Start(context.Background()))
	assert.NoError(t, s.Stop())

	s = NewServer(ServerConfig{ListenAddr: "127.0.0.1:0"}, NewDefaultMux(APIV1Config{}))
	httpServer, ok := s.(*HTTPServer)
	require.True(t, ok)
	require.NoError(t, s.Start(context.Background()))
	assert.NotEqual(t, "127.0.0.1:0", httpServer.Addr, "bound address replaces port 0")
	assert.NoError(t, s.Stop())
}
