package render

import (
	"context"
	"image"

	"github.com/rook-computer/koi/internal/canvas"
	"github.com/rook-computer/koi/internal/pixel"
)

// TextureID names a texture owned by a backend.
type TextureID uint32

// WindowConfig describes the presentation surface requested by the engine.
type WindowConfig struct {
	Title      string
	Size       image.Point // requested window size in physical pixels
	FullScreen bool
	VSync      bool
}

// Backend presents the engine's canvas. The engine calls, once per tick and in
// this order: SetViewport, ClearBackBuffer, PrepareDrawing, ApplyTexture,
// UpdateTexture, DrawQuad, DisplayFrame.
type Backend interface {
	// Open creates the device and returns the actual window size.
	Open(ctx context.Context, cfg WindowConfig) (image.Point, error)
	Close() error
	SetTitle(title string)

	SetViewport(pos, size image.Point)
	ClearBackBuffer(c pixel.Color, depth bool)
	PrepareDrawing()

	UploadTexture(c *canvas.Canvas) (TextureID, error)
	UpdateTexture(id TextureID, c *canvas.Canvas)
	ApplyTexture(id TextureID)

	// DrawQuad draws the applied texture over the viewport. offset and scale
	// select the texture region in normalised coordinates; tint multiplies
	// every sampled colour.
	DrawQuad(offset, scale [2]float32, tint pixel.Color)
	DisplayFrame() error
}

// Logger is the component logger used by backends.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(string, string, ...interface{})  {}
func (nopLogger) Errorf(string, string, ...interface{}) {}

func loggerOrNop(l Logger) Logger {
	if l == nil {
		return nopLogger{}
	}
	return l
}

// NoopRenderer accepts every call and presents nothing.
type NoopRenderer struct{ next TextureID }

func (n *NoopRenderer) Open(ctx context.Context, cfg WindowConfig) (image.Point, error) {
	return cfg.Size, nil
}
func (n *NoopRenderer) Close() error                              { return nil }
func (n *NoopRenderer) SetTitle(title string)                     {}
func (n *NoopRenderer) SetViewport(pos, size image.Point)         {}
func (n *NoopRenderer) ClearBackBuffer(c pixel.Color, depth bool) {}
func (n *NoopRenderer) PrepareDrawing()                           {}
func (n *NoopRenderer) UploadTexture(c *canvas.Canvas) (TextureID, error) {
	n.next++
	return n.next, nil
}
func (n *NoopRenderer) UpdateTexture(id TextureID, c *canvas.Canvas)       {}
func (n *NoopRenderer) ApplyTexture(id TextureID)                          {}
func (n *NoopRenderer) DrawQuad(offset, scale [2]float32, tint pixel.Color) {}
func (n *NoopRenderer) DisplayFrame() error                                 { return nil }
