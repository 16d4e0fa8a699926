package raster

import (
	"github.com/rook-computer/koi/internal/canvas"
	"github.com/rook-computer/koi/internal/pixel"
)

// Flip is a bitmask of sprite mirroring flags.
type Flip uint8

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1
	FlipVertical   Flip = 2
)

// Sprite blits the whole of src with its top-left corner at (x, y).
func Sprite(p Plotter, x, y int, src *canvas.Canvas, scale int, flip Flip) {
	if src == nil {
		return
	}
	PartialSprite(p, x, y, src, 0, 0, src.Width(), src.Height(), scale, flip)
}

// PartialSprite blits the w×h region of src starting at (ox, oy). Each source
// pixel becomes a scale×scale block; scale below 1 is treated as 1. Flipping
// reverses the sampling direction of the source region.
func PartialSprite(p Plotter, x, y int, src *canvas.Canvas, ox, oy, w, h, scale int, flip Flip) {
	if src == nil || w <= 0 || h <= 0 {
		return
	}
	if scale < 1 {
		scale = 1
	}

	fxs, fxm := 0, 1
	fys, fym := 0, 1
	if flip&FlipHorizontal != 0 {
		fxs, fxm = w-1, -1
	}
	if flip&FlipVertical != 0 {
		fys, fym = h-1, -1
	}

	fy := fys
	for j := 0; j < h; j++ {
		fx := fxs
		for i := 0; i < w; i++ {
			c := src.Get(ox+fx, oy+fy)
			if scale == 1 {
				p.Draw(x+i, y+j, c)
			} else {
				block(p, x+i*scale, y+j*scale, scale, c)
			}
			fx += fxm
		}
		fy += fym
	}
}

func block(p Plotter, x, y, scale int, c pixel.Color) {
	for is := 0; is < scale; is++ {
		for js := 0; js < scale; js++ {
			p.Draw(x+is, y+js, c)
		}
	}
}
