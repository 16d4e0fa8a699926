package raster

import (
	"github.com/rook-computer/koi/internal/canvas"
	"github.com/rook-computer/koi/internal/pixel"
)

// Result describes the outcome of a single pixel write.
type Result uint8

const (
	// Rejected means there was no target or the coordinate was out of range.
	Rejected Result = iota
	// Written means a colour was stored.
	Written
	// Skipped means the compositor declined the write.
	Skipped
)

func (r Result) String() string {
	switch r {
	case Written:
		return "written"
	case Skipped:
		return "skipped"
	default:
		return "rejected"
	}
}

// Plotter is the pixel sink every algorithm in this package writes through.
type Plotter interface {
	Draw(x, y int, c pixel.Color) bool
	Width() int
	Height() int
}

// Gate routes writes into a target canvas through a compositor.
type Gate struct {
	target *canvas.Canvas
	comp   *pixel.Compositor
}

// NewGate returns a gate writing into target. A nil comp gets a fresh Opaque compositor.
func NewGate(target *canvas.Canvas, comp *pixel.Compositor) *Gate {
	if comp == nil {
		comp = pixel.NewCompositor()
	}
	return &Gate{target: target, comp: comp}
}

func (g *Gate) Target() *canvas.Canvas          { return g.target }
func (g *Gate) SetTarget(target *canvas.Canvas) { g.target = target }
func (g *Gate) Compositor() *pixel.Compositor   { return g.comp }

func (g *Gate) Width() int {
	if g.target == nil {
		return 0
	}
	return g.target.Width()
}

func (g *Gate) Height() int {
	if g.target == nil {
		return 0
	}
	return g.target.Height()
}

// Plot writes c at (x, y) according to the compositor mode.
func (g *Gate) Plot(x, y int, c pixel.Color) Result {
	if g.target == nil {
		return Rejected
	}
	if g.comp.Mode() == pixel.Opaque {
		if g.target.Set(x, y, c) {
			return Written
		}
		return Rejected
	}
	if g.target.Mode() == canvas.Clamped && (x < 0 || y < 0 || x >= g.target.Width() || y >= g.target.Height()) {
		return Rejected
	}
	out, ok := g.comp.Compose(x, y, c, g.target.Get(x, y))
	if !ok {
		return Skipped
	}
	if g.target.Set(x, y, out) {
		return Written
	}
	return Rejected
}

// Draw reports whether a colour was stored at (x, y).
func (g *Gate) Draw(x, y int, c pixel.Color) bool { return g.Plot(x, y, c) == Written }

// Clear overwrites every cell of target with c, bypassing any compositor.
func Clear(target *canvas.Canvas, c pixel.Color) {
	if target == nil {
		return
	}
	data := target.Data()
	for i := range data {
		data[i] = c
	}
}
