package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/koi/internal/app"
	"github.com/rook-computer/koi/internal/app/screens"
	"github.com/rook-computer/koi/internal/config"
	"github.com/rook-computer/koi/internal/platform"
	"github.com/rook-computer/koi/internal/render"
	"github.com/rook-computer/koi/internal/web"
)

// The simulator runs a scene headless with scripted input and saves the last
// frame as a PNG.
func main() {
	defaults := config.Default()
	serverDefaults, err := web.DefaultServerConfigFromEnv("")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	scene := flag.String("scene", defaults.Scene, fmt.Sprintf("scene to run %v", screens.Names()))
	ticks := flag.Int("ticks", 60, "number of ticks to run")
	scenario := flag.String("scenario", "idle", fmt.Sprintf("scripted input %v", scenarios))
	out := flag.String("out", "koi-sim.png", "write the last frame to this PNG file")
	width := flag.Int("width", defaults.Width, "screen width in pixels")
	height := flag.Int("height", defaults.Height, "screen height in pixels")
	pixelWidth := flag.Int("pixel-width", defaults.PixelWidth, "window pixels per screen pixel, horizontally")
	pixelHeight := flag.Int("pixel-height", defaults.PixelHeight, "window pixels per screen pixel, vertically")
	verbose := flag.Bool("v", false, "log engine events to stderr")
	listenAddr := flag.String("listen", serverDefaults.ListenAddr, "serve a live frame preview on this address (optional); also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", serverDefaults.DevMode, "enable permissive CORS on the preview server; also configurable via "+web.EnvDevMode)
	hold := flag.Bool("hold", false, "keep the preview server running after the last tick until interrupted")
	flag.Parse()

	cfg := defaults
	cfg.Backend = config.BackendHeadless
	cfg.Scene = *scene
	cfg.Width, cfg.Height = *width, *height
	cfg.PixelWidth, cfg.PixelHeight = *pixelWidth, *pixelHeight
	cfg.VSync = false

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)
	if *verbose {
		a.Logger = app.NewFileLogger(os.Stderr)
	}
	window := image.Pt(cfg.Width*cfg.PixelWidth, cfg.Height*cfg.PixelHeight)
	control, err := NewSimControl(*scenario, *ticks, window, func() { a.Exit(nil) })
	if err != nil {
		fmt.Println("simulator:", err)
		os.Exit(2)
	}

	capture := render.NewCaptureRenderer()
	capture.Record = false
	a.Backend = capture
	a.Source = &platform.FuncSource{Poll: control.Poll}

	server := newPreviewServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode}, a, capture)
	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}
	defer func() { _ = server.Stop() }()
	if httpServer, ok := server.(*web.HTTPServer); ok {
		fmt.Println("Preview: http://" + trimLeadingColon(httpServer.Addr) + "/")
	}

	if err := a.Start(processCtx); err != nil {
		fmt.Println("simulator:", err)
		os.Exit(1)
	}

	fmt.Printf("Scene %s ran %d ticks, %d frames\n", cfg.Scene, control.Tick(), capture.Frames())
	frame := capture.Frame()
	if frame == nil || *out == "" {
		return
	}
	if err := writePNG(*out, frame); err != nil {
		fmt.Println("simulator:", err)
		os.Exit(1)
	}
	fmt.Println("Frame written to", *out)

	if _, serving := server.(*web.HTTPServer); *hold && serving {
		<-processCtx.Done()
	}
}

// newPreviewServer serves frames from capture and lets clients end the run.
// It is a NoopServer when cfg has no listen address.
func newPreviewServer(cfg web.ServerConfig, a *app.App, frames web.FrameSource) web.Server {
	server := web.NewServer(cfg, web.NewDefaultMux(web.APIV1Config{
		Handlers: web.APIV1Handlers{ExitFunc: func(ctx context.Context) error {
			a.Exit(nil)
			return nil
		}},
		Frames: frames,
	}))
	if httpServer, ok := server.(*web.HTTPServer); ok {
		httpServer.Logger = a.Logger
	}
	return server
}

func trimLeadingColon(addr string) string {
	// Best-effort for display; don't attempt full URL parsing here.
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	return addr
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
