package screens

import (
	"math/rand/v2"

	"github.com/rook-computer/koi/internal/engine"
	"github.com/rook-computer/koi/internal/pixel"
)

// NoiseScene fills the screen with random pixels, marks the mouse cursor and
// draws a filled triangle and a line over the noise.
type NoiseScene struct {
	rng *rand.Rand
}

func NewNoiseScene(seed uint64) *NoiseScene {
	return &NoiseScene{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *NoiseScene) OnUserCreate(e *engine.Engine) bool { return true }

func (s *NoiseScene) OnUserUpdate(e *engine.Engine, elapsed float64) bool {
	e.Clear(pixel.Black)
	mouse := e.MousePos()
	for y := 0; y < e.ScreenHeight(); y++ {
		for x := 0; x < e.ScreenWidth(); x++ {
			if x == mouse.X && y == mouse.Y {
				e.Draw(x, y, pixel.White)
				continue
			}
			e.Draw(x, y, pixel.RGB(uint8(s.rng.IntN(255)), uint8(s.rng.IntN(255)), uint8(s.rng.IntN(255))))
		}
	}
	e.FillTriangle(10, 10, 40, 40, 50, 10, pixel.RGB(255, 128, 0))
	e.DrawLine(10, 10, 300, 300, pixel.White)
	return !escapePressed(e)
}

func (s *NoiseScene) OnUserDestroy(e *engine.Engine) bool { return true }
