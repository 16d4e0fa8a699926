package raster

import "github.com/rook-computer/koi/internal/pixel"

// AllOctants selects every mirrored position of Circle.
const AllOctants uint8 = 0xFF

// Circle draws a midpoint circle outline. Bit i of mask enables one of the eight
// mirrored positions, clockwise from the top, so partial arcs can be drawn.
func Circle(p Plotter, x, y, radius int, c pixel.Color, mask uint8) {
	if circleHidden(p, x, y, radius) {
		return
	}
	if radius == 0 {
		p.Draw(x, y, c)
		return
	}

	x0, y0 := 0, radius
	d := 3 - 2*radius
	for y0 >= x0 {
		if mask&0x01 != 0 {
			p.Draw(x+x0, y-y0, c)
		}
		if mask&0x04 != 0 {
			p.Draw(x+y0, y+x0, c)
		}
		if mask&0x10 != 0 {
			p.Draw(x-x0, y+y0, c)
		}
		if mask&0x40 != 0 {
			p.Draw(x-y0, y-x0, c)
		}
		// On the axes and the diagonal the remaining octants land on pixels
		// already drawn above.
		if x0 != 0 && x0 != y0 {
			if mask&0x02 != 0 {
				p.Draw(x+y0, y-x0, c)
			}
			if mask&0x08 != 0 {
				p.Draw(x+x0, y+y0, c)
			}
			if mask&0x20 != 0 {
				p.Draw(x-y0, y+x0, c)
			}
			if mask&0x80 != 0 {
				p.Draw(x-x0, y-y0, c)
			}
		}
		x0, y0, d = midpointStep(x0, y0, d)
	}
}

// FillCircle fills the disc covered by Circle with one horizontal span per row.
//
// The midpoint walk visits (x0, y0) with x0 increasing every step and y0
// decreasing only when the decision term is non-negative. Rows y±x0 are unique
// per step and span ±y0. Rows y±y0 span ±x0 and are widest on the last step
// before y0 moves, so they are emitted exactly then, unless x0 == y0 where the
// row was already emitted as y±x0.
func FillCircle(p Plotter, x, y, radius int, c pixel.Color) {
	if circleHidden(p, x, y, radius) {
		return
	}
	if radius == 0 {
		p.Draw(x, y, c)
		return
	}

	span := func(sx, ex, row int) {
		for i := sx; i <= ex; i++ {
			p.Draw(i, row, c)
		}
	}

	x0, y0 := 0, radius
	d := 3 - 2*radius
	for y0 >= x0 {
		span(x-y0, x+y0, y-x0)
		if x0 > 0 {
			span(x-y0, x+y0, y+x0)
		}
		if d >= 0 && x0 != y0 {
			span(x-x0, x+x0, y-y0)
			span(x-x0, x+x0, y+y0)
		}
		x0, y0, d = midpointStep(x0, y0, d)
	}
}

func midpointStep(x0, y0, d int) (int, int, int) {
	if d < 0 {
		d += 4*x0 + 6
		return x0 + 1, y0, d
	}
	d += 4*(x0-y0) + 10
	return x0 + 1, y0 - 1, d
}

// circleHidden reports whether a circle cannot touch the plotter at all.
func circleHidden(p Plotter, x, y, radius int) bool {
	if radius < 0 {
		return true
	}
	return x+radius < 0 || y+radius < 0 || x-radius >= p.Width() || y-radius >= p.Height()
}
