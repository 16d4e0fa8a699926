package render

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/koi/internal/canvas"
	"github.com/rook-computer/koi/internal/pixel"
)

func checker() *canvas.Canvas {
	c := canvas.New(2, 2)
	c.Set(0, 0, pixel.Red)
	c.Set(1, 0, pixel.Green)
	c.Set(0, 1, pixel.Blue)
	c.Set(1, 1, pixel.White)
	return c
}

func present(t *testing.T, r *CaptureRenderer, tex *canvas.Canvas, pos, size image.Point, offset, scale [2]float32, tint pixel.Color) *image.RGBA {
	t.Helper()
	id, err := r.UploadTexture(tex)
	require.NoError(t, err)
	r.SetViewport(pos, size)
	r.ClearBackBuffer(pixel.Black, true)
	r.PrepareDrawing()
	r.ApplyTexture(id)
	r.UpdateTexture(id, tex)
	r.DrawQuad(offset, scale, tint)
	require.NoError(t, r.DisplayFrame())
	return r.Frame()
}

func TestCaptureRendererLetterbox(t *testing.T) {
	r := NewCaptureRenderer()
	size, err := r.Open(context.Background(), WindowConfig{Size: image.Pt(8, 4)})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(8, 4), size)

	frame := present(t, r, checker(), image.Pt(2, 0), image.Pt(4, 4), [2]float32{0, 0}, [2]float32{1, 1}, pixel.White)
	require.NotNil(t, frame)

	black := color.RGBA{A: 0xFF}
	assert.Equal(t, black, frame.RGBAAt(0, 0), "margin")
	assert.Equal(t, black, frame.RGBAAt(7, 3), "margin")
	assert.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, frame.RGBAAt(2, 0))
	assert.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, frame.RGBAAt(3, 1))
	assert.Equal(t, color.RGBA{G: 0xFF, A: 0xFF}, frame.RGBAAt(5, 0))
	assert.Equal(t, color.RGBA{B: 0xFF, A: 0xFF}, frame.RGBAAt(2, 3))
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, frame.RGBAAt(5, 3))

	assert.Equal(t, []string{
		"Open", "UploadTexture", "SetViewport", "ClearBackBuffer", "PrepareDrawing",
		"ApplyTexture", "UpdateTexture", "DrawQuad", "DisplayFrame",
	}, r.Calls())
	assert.Empty(t, r.Calls())
	assert.Equal(t, 1, r.Frames())
}

func TestCaptureRendererTintAndRegion(t *testing.T) {
	r := NewCaptureRenderer()
	_, err := r.Open(context.Background(), WindowConfig{Size: image.Pt(2, 2)})
	require.NoError(t, err)

	frame := present(t, r, checker(), image.Pt(0, 0), image.Pt(2, 2), [2]float32{0, 0}, [2]float32{1, 1}, pixel.RGB(128, 255, 255))
	assert.Equal(t, color.RGBA{R: 128, A: 0xFF}, frame.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 128, G: 255, B: 255, A: 0xFF}, frame.RGBAAt(1, 1))

	// Upper right quarter of the texture stretched over the whole viewport.
	frame = present(t, r, checker(), image.Pt(0, 0), image.Pt(2, 2), [2]float32{0.5, 0}, [2]float32{0.5, 0.5}, pixel.White)
	for _, p := range []image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		assert.Equal(t, color.RGBA{G: 0xFF, A: 0xFF}, frame.RGBAAt(p.X, p.Y))
	}
}

func TestCaptureRendererIgnoresAlpha(t *testing.T) {
	r := NewCaptureRenderer()
	_, err := r.Open(context.Background(), WindowConfig{Size: image.Pt(1, 1)})
	require.NoError(t, err)
	tex := canvas.New(1, 1)
	tex.Set(0, 0, pixel.RGBA(10, 20, 30, 0))
	frame := present(t, r, tex, image.Pt(0, 0), image.Pt(1, 1), [2]float32{0, 0}, [2]float32{1, 1}, pixel.White)
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 0xFF}, frame.RGBAAt(0, 0))
}

func TestTextureRect(t *testing.T) {
	b := image.Rect(0, 0, 100, 50)
	assert.Equal(t, b, textureRect(b, [2]float32{0, 0}, [2]float32{1, 1}))
	assert.Equal(t, image.Rect(25, 0, 75, 25), textureRect(b, [2]float32{0.25, 0}, [2]float32{0.5, 0.5}))
	assert.Equal(t, image.Rect(50, 0, 100, 50), textureRect(b, [2]float32{0.5, 0}, [2]float32{1, 1}), "clipped to texture")
}

func TestUploadNilCanvas(t *testing.T) {
	r := NewCaptureRenderer()
	_, err := r.UploadTexture(nil)
	assert.Error(t, err)

	var n NoopRenderer
	id1, _ := n.UploadTexture(nil)
	id2, _ := n.UploadTexture(nil)
	assert.NotEqual(t, id1, id2)
}

func TestBlitForcesOpaque(t *testing.T) {
	back := image.NewRGBA(image.Rect(0, 0, 2, 1))
	back.SetRGBA(0, 0, color.RGBA{R: 10, A: 0})
	back.SetRGBA(1, 0, color.RGBA{G: 20, A: 0xFF})

	dst := image.NewRGBA(image.Rect(0, 0, 4, 2))
	blit(dst, image.Pt(1, 1), back)
	assert.Equal(t, color.RGBA{R: 10, A: 0xFF}, dst.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{G: 20, A: 0xFF}, dst.RGBAAt(2, 1))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(0, 0))
}
