package canvas

import (
	"image"
	"image/color"

	"github.com/rook-computer/koi/internal/pixel"
)

// SampleMode controls how out-of-range coordinates are addressed.
type SampleMode int

const (
	// Clamped rejects writes and returns Blank for reads outside the canvas.
	Clamped SampleMode = iota
	// Wrapped reduces coordinates modulo the canvas size.
	Wrapped
)

// Canvas is a row-major width×height buffer of colours with its origin at the top-left.
type Canvas struct {
	width  int
	height int
	mode   SampleMode
	pix    []pixel.Color
}

// New allocates a canvas with every cell set to pixel.Blank.
// Non-positive dimensions yield an empty canvas that rejects every access.
func New(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

func (c *Canvas) Width() int              { return c.width }
func (c *Canvas) Height() int             { return c.height }
func (c *Canvas) Mode() SampleMode        { return c.mode }
func (c *Canvas) SetMode(mode SampleMode) { c.mode = mode }

// Empty reports whether the canvas has no addressable cells.
func (c *Canvas) Empty() bool { return c.width <= 0 || c.height <= 0 }

// Resize discards the buffer and allocates a new Blank one. Slices previously
// returned by Data are no longer backed by the canvas.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width = width
	c.height = height
	c.pix = make([]pixel.Color, width*height)
}

// Data exposes the raw buffer. Callers must stay within Width()*Height().
func (c *Canvas) Data() []pixel.Color { return c.pix }

func (c *Canvas) Get(x, y int) pixel.Color {
	i, ok := c.index(x, y)
	if !ok {
		return pixel.Blank
	}
	return c.pix[i]
}

func (c *Canvas) Set(x, y int, p pixel.Color) bool {
	i, ok := c.index(x, y)
	if !ok {
		return false
	}
	c.pix[i] = p
	return true
}

func (c *Canvas) index(x, y int) (int, bool) {
	if c.Empty() {
		return 0, false
	}
	if c.mode == Wrapped {
		x = wrap(x, c.width)
		y = wrap(y, c.height)
	} else if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0, false
	}
	return y*c.width + x, true
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// image.Image

func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }
func (c *Canvas) ColorModel() color.Model { return color.NRGBAModel }
func (c *Canvas) At(x, y int) color.Color { return c.Get(x, y) }
