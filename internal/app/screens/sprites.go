package screens

import (
	"image"
	"image/color"
	"math"

	"github.com/rook-computer/koi/internal/canvas"
	"github.com/rook-computer/koi/internal/engine"
	"github.com/rook-computer/koi/internal/pixel"
	"github.com/rook-computer/koi/internal/raster"
)

// QRPayload is encoded into the QR sprite.
const QRPayload = "https://github.com/rook-computer/koi"

// SpritesScene blits a procedural sprite with every flip and scale, a QR code
// sprite, and cycles the pixel modes over them.
type SpritesScene struct {
	sprite *canvas.Canvas
	qr     *canvas.Canvas
	tile   *canvas.Canvas
	t      float64
}

func (s *SpritesScene) OnUserCreate(e *engine.Engine) bool {
	s.sprite = canvas.FromImageScaled(ballImage(64), 16, 16)

	qr, err := canvas.FromQRCode(QRPayload, pixel.Black, pixel.White)
	if err == nil {
		s.qr = qr
	}

	// An offscreen wrapped canvas drawn through the engine's draw target.
	s.tile = canvas.New(8, 8)
	s.tile.SetMode(canvas.Wrapped)
	e.SetDrawTarget(s.tile)
	e.Clear(pixel.DarkMagenta)
	e.DrawLine(0, 0, 7, 7, pixel.Magenta)
	e.DrawCircle(8, 8, 3, pixel.Yellow)
	e.SetDrawTarget(nil)
	return true
}

// ballImage draws a shaded ball, fading out towards its rim, with a white
// highlight up and to the left of the centre.
func ballImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-half+0.5, float64(y)-half+0.5) / half
			if d > 1 {
				continue
			}
			c := color.NRGBA{R: uint8(x * 256 / size), G: uint8(y * 256 / size), B: 200, A: uint8(255 * (1 - d*d))}
			if math.Hypot(float64(x)-half*0.7, float64(y)-half*0.7)/half < 0.2 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func (s *SpritesScene) OnUserUpdate(e *engine.Engine, elapsed float64) bool {
	s.t += elapsed
	e.SetPixelMode(pixel.Opaque)
	e.Clear(pixel.VeryDarkGrey)
	w, h := e.ScreenWidth(), e.ScreenHeight()

	for y := 0; y < h; y += 8 {
		e.DrawSprite(0, y, s.tile, 1, raster.FlipNone)
	}

	flips := []raster.Flip{raster.FlipNone, raster.FlipHorizontal, raster.FlipVertical, raster.FlipHorizontal | raster.FlipVertical}
	e.SetPixelMode(pixel.MaskByAlpha)
	for i, flip := range flips {
		e.DrawSprite(12+i*20, 4, s.sprite, 1, flip)
	}
	e.DrawSprite(12, 24, s.sprite, 2, raster.FlipNone)
	e.DrawPartialSprite(48, 24, s.sprite, 0, 0, 8, 8, 3, raster.FlipNone)

	e.SetPixelMode(pixel.AlphaBlendMode)
	e.SetPixelBlend(0.5 + 0.5*math.Sin(s.t))
	e.FillCircle(w/2, h/2, h/6, pixel.RGBA(255, 0, 0, 160))
	e.DrawSprite(w/2-16, h/2-16, s.sprite, 2, raster.FlipNone)

	e.SetPixelModeFunc(func(x, y int, src, dst pixel.Color) pixel.Color {
		if src.A() == 0 {
			return dst
		}
		return dst.Inverse()
	})
	e.FillRect(w/2-8, h/2-8, 16, 16, pixel.White)

	e.SetPixelMode(pixel.Opaque)
	e.SetPixelBlend(1)
	if s.qr != nil {
		scale := max(1, min(w/4, h/3)/s.qr.Width())
		e.DrawSprite(w-s.qr.Width()*scale-4, h-s.qr.Height()*scale-4, s.qr, scale, raster.FlipNone)
	}
	return !escapePressed(e)
}

func (s *SpritesScene) OnUserDestroy(e *engine.Engine) bool { return true }
