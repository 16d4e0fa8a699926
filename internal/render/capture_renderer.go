package render

import (
	"context"
	"image"
	"sync"

	"github.com/rook-computer/koi/internal/canvas"
	"github.com/rook-computer/koi/internal/pixel"
)

// CaptureRenderer is a headless backend that keeps the last presented frame.
// It records every backend call so tests and the simulator can inspect the
// present sequence.
type CaptureRenderer struct {
	softBuffer

	mu     sync.Mutex
	calls  []string
	title  string
	frame  *image.RGBA
	frames int
	closed bool

	// Record controls whether calls are appended to Calls.
	Record bool
}

func NewCaptureRenderer() *CaptureRenderer { return &CaptureRenderer{Record: true} }

func (r *CaptureRenderer) record(call string) {
	if !r.Record {
		return
	}
	r.mu.Lock()
	r.calls = append(r.calls, call)
	r.mu.Unlock()
}

func (r *CaptureRenderer) Open(ctx context.Context, cfg WindowConfig) (image.Point, error) {
	r.record("Open")
	r.resize(cfg.Size)
	return cfg.Size, nil
}

func (r *CaptureRenderer) Close() error {
	r.record("Close")
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

func (r *CaptureRenderer) SetTitle(title string) {
	r.mu.Lock()
	r.title = title
	r.mu.Unlock()
}

func (r *CaptureRenderer) SetViewport(pos, size image.Point) {
	r.record("SetViewport")
	r.softBuffer.SetViewport(pos, size)
}

func (r *CaptureRenderer) ClearBackBuffer(c pixel.Color, depth bool) {
	r.record("ClearBackBuffer")
	r.softBuffer.ClearBackBuffer(c, depth)
}

func (r *CaptureRenderer) PrepareDrawing() {
	r.record("PrepareDrawing")
}

func (r *CaptureRenderer) UploadTexture(c *canvas.Canvas) (TextureID, error) {
	r.record("UploadTexture")
	return r.softBuffer.UploadTexture(c)
}

func (r *CaptureRenderer) UpdateTexture(id TextureID, c *canvas.Canvas) {
	r.record("UpdateTexture")
	r.softBuffer.UpdateTexture(id, c)
}

func (r *CaptureRenderer) ApplyTexture(id TextureID) {
	r.record("ApplyTexture")
	r.softBuffer.ApplyTexture(id)
}

func (r *CaptureRenderer) DrawQuad(offset, scale [2]float32, tint pixel.Color) {
	r.record("DrawQuad")
	r.softBuffer.DrawQuad(offset, scale, tint)
}

func (r *CaptureRenderer) DisplayFrame() error {
	r.record("DisplayFrame")
	if r.back == nil {
		return nil
	}
	frame := image.NewRGBA(r.back.Bounds())
	copy(frame.Pix, r.back.Pix)
	r.mu.Lock()
	r.frame = frame
	r.frames++
	r.mu.Unlock()
	return nil
}

// Calls returns the recorded call names and clears the record.
func (r *CaptureRenderer) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.calls
	r.calls = nil
	return out
}

// Frame returns the last displayed frame, or nil before the first DisplayFrame.
func (r *CaptureRenderer) Frame() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frame
}

func (r *CaptureRenderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *CaptureRenderer) Title() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.title
}

func (r *CaptureRenderer) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
