package raster

import "github.com/rook-computer/koi/internal/pixel"

// SolidPattern draws every pixel of a line.
const SolidPattern uint32 = 0xFFFFFFFF

// Line draws from (x1,y1) to (x2,y2). Each candidate pixel rotates pattern left by
// one bit and is drawn only when the bit rotated into position 0 is set.
func Line(p Plotter, x1, y1, x2, y2 int, c pixel.Color, pattern uint32) {
	rol := func() bool {
		pattern = pattern<<1 | pattern>>31
		return pattern&1 == 1
	}

	dx := x2 - x1
	dy := y2 - y1

	if dx == 0 {
		if y2 < y1 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			if rol() {
				p.Draw(x1, y, c)
			}
		}
		return
	}

	if dy == 0 {
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			if rol() {
				p.Draw(x, y1, c)
			}
		}
		return
	}

	dx1, dy1 := abs(dx), abs(dy)
	sameSign := (dx < 0) == (dy < 0)

	if dy1 <= dx1 {
		// x-major: walk left to right.
		x, y, xe := x1, y1, x2
		if dx < 0 {
			x, y, xe = x2, y2, x1
		}
		px := 2*dy1 - dx1
		if rol() {
			p.Draw(x, y, c)
		}
		for x < xe {
			x++
			if px < 0 {
				px += 2 * dy1
			} else {
				if sameSign {
					y++
				} else {
					y--
				}
				px += 2 * (dy1 - dx1)
			}
			if rol() {
				p.Draw(x, y, c)
			}
		}
		return
	}

	// y-major: walk top to bottom.
	x, y, ye := x1, y1, y2
	if dy < 0 {
		x, y, ye = x2, y2, y1
	}
	py := 2*dx1 - dy1
	if rol() {
		p.Draw(x, y, c)
	}
	for y < ye {
		y++
		if py <= 0 {
			py += 2 * dx1
		} else {
			if sameSign {
				x++
			} else {
				x--
			}
			py += 2 * (dx1 - dy1)
		}
		if rol() {
			p.Draw(x, y, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
