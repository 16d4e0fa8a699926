package canvas

import (
	"image"
	"image/color"

	"github.com/rook-computer/koi/internal/pixel"
	xdraw "golang.org/x/image/draw"
)

// FromImage copies img into a new canvas of the same size.
func FromImage(img image.Image) *Canvas {
	if img == nil {
		return New(0, 0)
	}
	b := img.Bounds()
	c := New(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c.pix[y*c.width+x] = pixel.FromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return c
}

// FromImageScaled resamples img to width×height with nearest-neighbour filtering.
func FromImageScaled(img image.Image, width, height int) *Canvas {
	if img == nil || width <= 0 || height <= 0 {
		return New(width, height)
	}
	tmp := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(tmp, tmp.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return FromImage(tmp)
}

// ToRGBA returns a premultiplied snapshot of the canvas.
func (c *Canvas) ToRGBA() *image.RGBA {
	out := image.NewRGBA(c.Bounds())
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pix[y*c.width+x]
			out.Set(x, y, color.NRGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()})
		}
	}
	return out
}
