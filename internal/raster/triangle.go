package raster

import "github.com/rook-computer/koi/internal/pixel"

// Triangle draws the three edges in input order.
func Triangle(p Plotter, x1, y1, x2, y2, x3, y3 int, c pixel.Color) {
	Line(p, x1, y1, x2, y2, c, SolidPattern)
	Line(p, x2, y2, x3, y3, c, SolidPattern)
	Line(p, x3, y3, x1, y1, c, SolidPattern)
}

// FillTriangle fills a triangle with one horizontal span per scanline.
//
// Vertices are sorted by y and the triangle is split at the middle vertex.
// The long edge (top to bottom) is traced for the whole height while the short
// edges are traced for the upper and lower halves. A half with zero height is
// skipped. Every row spans the extents of both tracers on that row.
func FillTriangle(p Plotter, x1, y1, x2, y2, x3, y3 int, c pixel.Color) {
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y1 > y3 {
		x1, y1, x3, y3 = x3, y3, x1, y1
	}
	if y2 > y3 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}

	span := func(sx, ex, row int) {
		for i := sx; i <= ex; i++ {
			p.Draw(i, row, c)
		}
	}

	long := newEdge(x1, y1, x3, y3)

	// Extents of the upper short edge on the middle row, carried into the lower half.
	carryLo, carryHi, carry := 0, 0, false
	if y1 != y2 {
		upper := newEdge(x1, y1, x2, y2)
		for row := y1; row < y2; row++ {
			a, b := long.next()
			e, f := upper.next()
			span(min(a, e), max(b, f), row)
		}
		carryLo, carryHi = upper.next()
		carry = true
	}

	lower := newEdge(x2, y2, x3, y3)
	for row := y2; row <= y3; row++ {
		a, b := long.next()
		e, f := lower.next()
		lo, hi := min(a, e), max(b, f)
		if carry {
			lo, hi = min(lo, carryLo), max(hi, carryHi)
			carry = false
		}
		span(lo, hi, row)
	}
}

// edge walks a Bresenham line whose end is not above its start, one scanline
// at a time.
type edge struct {
	x, y   int
	ex, ey int
	dx, dy int
	sx     int
	err    int
}

func newEdge(x0, y0, x1, y1 int) *edge {
	e := &edge{x: x0, y: y0, ex: x1, ey: y1, dx: abs(x1 - x0), dy: -(y1 - y0), sx: 1}
	if x1 < x0 {
		e.sx = -1
	}
	e.err = e.dx + e.dy
	return e
}

// next returns the x extent of the line's pixels on the current row and
// advances to the following row. Once the end point is reached it keeps
// returning the end point's extent.
func (e *edge) next() (lo, hi int) {
	lo, hi = e.x, e.x
	for e.x != e.ex || e.y != e.ey {
		e2 := 2 * e.err
		stepX := e2 >= e.dy
		stepY := e2 <= e.dx
		if stepX {
			e.err += e.dy
			e.x += e.sx
		}
		if stepY {
			e.err += e.dx
			e.y++
			return lo, hi
		}
		lo, hi = min(lo, e.x), max(hi, e.x)
	}
	return lo, hi
}
