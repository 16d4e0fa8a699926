//go:build !glfw

package render

import (
	"context"
	"errors"
	"image"

	"github.com/rook-computer/koi/internal/canvas"
	"github.com/rook-computer/koi/internal/pixel"
	"github.com/rook-computer/koi/internal/state"
)

// ErrNoGL is returned by GLRenderer when built without the glfw tag.
var ErrNoGL = errors.New("OpenGL backend not built in, rebuild with -tags glfw")

// GLRenderer is a placeholder that fails to open.
type GLRenderer struct {
	Logger Logger
}

func NewGLRenderer() *GLRenderer { return &GLRenderer{} }

func (r *GLRenderer) Open(ctx context.Context, cfg WindowConfig) (image.Point, error) {
	return image.Point{}, ErrNoGL
}

func (r *GLRenderer) Close() error                                        { return nil }
func (r *GLRenderer) SetTitle(title string)                               {}
func (r *GLRenderer) SetViewport(pos, size image.Point)                   {}
func (r *GLRenderer) ClearBackBuffer(c pixel.Color, depth bool)           {}
func (r *GLRenderer) PrepareDrawing()                                     {}
func (r *GLRenderer) UploadTexture(c *canvas.Canvas) (TextureID, error)   { return 0, ErrNoGL }
func (r *GLRenderer) UpdateTexture(id TextureID, c *canvas.Canvas)        {}
func (r *GLRenderer) ApplyTexture(id TextureID)                           {}
func (r *GLRenderer) DrawQuad(offset, scale [2]float32, tint pixel.Color) {}
func (r *GLRenderer) DisplayFrame() error                                 { return ErrNoGL }

func (r *GLRenderer) Start(ctx context.Context, sink *state.Store, onClose func()) error {
	return ErrNoGL
}
func (r *GLRenderer) PollEvents() {}
func (r *GLRenderer) Stop() error { return nil }
