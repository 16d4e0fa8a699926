package raster

import (
	"image"

	"github.com/rook-computer/koi/internal/pixel"
)

// Rect draws the outline of the rectangle spanning (x,y) to (x+w,y+h) inclusive.
func Rect(p Plotter, x, y, w, h int, c pixel.Color) {
	Line(p, x, y, x+w, y, c, SolidPattern)
	Line(p, x+w, y, x+w, y+h, c, SolidPattern)
	Line(p, x+w, y+h, x, y+h, c, SolidPattern)
	Line(p, x, y+h, x, y, c, SolidPattern)
}

// FillRect fills [x, x+w) × [y, y+h) after clipping it to the plotter.
// Non-positive sizes fill nothing.
func FillRect(p Plotter, x, y, w, h int, c pixel.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, p.Width(), p.Height()))
	for j := r.Min.Y; j < r.Max.Y; j++ {
		for i := r.Min.X; i < r.Max.X; i++ {
			p.Draw(i, j, c)
		}
	}
}
