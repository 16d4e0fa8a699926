package screens

import (
	"math"

	"github.com/rook-computer/koi/internal/engine"
	"github.com/rook-computer/koi/internal/pixel"
	"github.com/rook-computer/koi/internal/raster"
)

// ShapesScene draws every primitive, with a rotating triangle and a pulsing
// circle driven by the frame time.
type ShapesScene struct {
	t float64
}

var dashPatterns = []uint32{0xFFFFFFFF, 0xF0F0F0F0, 0xAAAAAAAA, 0xFF00FF00}

func (s *ShapesScene) OnUserCreate(e *engine.Engine) bool { return true }

func (s *ShapesScene) OnUserUpdate(e *engine.Engine, elapsed float64) bool {
	s.t += elapsed
	e.Clear(pixel.VeryDarkBlue)
	w, h := e.ScreenWidth(), e.ScreenHeight()

	for i, pattern := range dashPatterns {
		y := 4 + i*4
		e.DrawLinePattern(4, y, w/2-4, y, pixel.Yellow, pattern)
	}
	e.DrawLine(0, 0, w-1, h-1, pixel.DarkGrey)
	e.DrawLine(w-1, 0, 0, h-1, pixel.DarkGrey)

	e.DrawRect(2, 2, w-5, h-5, pixel.Grey)
	e.FillRect(w/2+4, 4, w/4, h/6, pixel.DarkRed)
	e.DrawRect(w/2+4, 4, w/4, h/6, pixel.Red)

	cx, cy := w/4, h/2
	radius := 10 + int(6*math.Sin(s.t*2))
	e.FillCircle(cx, cy, radius, pixel.DarkGreen)
	e.DrawCircle(cx, cy, radius+3, pixel.Green)
	e.DrawCircleArc(cx, cy, radius+6, pixel.Cyan, 0x0F)
	e.DrawCircleArc(cx, cy, radius+8, pixel.Magenta, 0xF0)

	tx, ty := 3*w/4, h/2+h/8
	size := float64(min(w, h)) / 5
	var pts [3][2]int
	for i := range pts {
		a := s.t + float64(i)*2*math.Pi/3
		pts[i] = [2]int{tx + int(size*math.Cos(a)), ty + int(size*math.Sin(a))}
	}
	e.FillTriangle(pts[0][0], pts[0][1], pts[1][0], pts[1][1], pts[2][0], pts[2][1], pixel.DarkYellow)
	e.DrawTriangle(pts[0][0], pts[0][1], pts[1][0], pts[1][1], pts[2][0], pts[2][1], pixel.White)

	title := raster.MeasureText("shapes", raster.DefaultFace)
	e.DrawString((w-title.X)/2, h-title.Y-4, "shapes", pixel.White, 1)
	return !escapePressed(e)
}

func (s *ShapesScene) OnUserDestroy(e *engine.Engine) bool { return true }
