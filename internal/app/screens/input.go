package screens

import (
	"fmt"
	"strings"

	"github.com/rook-computer/koi/internal/engine"
	"github.com/rook-computer/koi/internal/input"
	"github.com/rook-computer/koi/internal/pixel"
)

var mouseNames = [input.MouseButtons]string{"L", "R", "M", "X1", "X2"}

// InputScene shows the held keys, mouse buttons, cursor and wheel. It
// declines the first teardown and asks for a second Escape.
type InputScene struct {
	wheel     int
	declined  bool
	lastPress input.Key
}

func (s *InputScene) OnUserCreate(e *engine.Engine) bool { return true }

func (s *InputScene) OnUserUpdate(e *engine.Engine, elapsed float64) bool {
	s.wheel += e.MouseWheel()
	e.Clear(pixel.Black)

	var held []string
	for k := input.KeyA; k < input.KeyCount; k++ {
		b := e.Key(k)
		if b.Pressed {
			s.lastPress = k
		}
		if b.Held {
			held = append(held, k.String())
		}
	}
	var buttons []string
	for i, name := range mouseNames {
		if e.Mouse(i).Held {
			buttons = append(buttons, name)
		}
	}

	m := e.MousePos()
	lines := []string{
		"keys: " + strings.Join(held, " "),
		"last: " + s.lastPress.String(),
		fmt.Sprintf("mouse: %d,%d %s", m.X, m.Y, strings.Join(buttons, " ")),
		fmt.Sprintf("wheel: %d", s.wheel),
		fmt.Sprintf("fps: %d", e.FPS()),
	}
	if !e.IsFocused() {
		lines = append(lines, "(unfocused)")
	}
	if s.declined {
		lines = append(lines, "escape again to quit")
	}
	e.DrawString(2, 2, strings.Join(lines, "\n"), pixel.Green, 1)

	c := pixel.White
	if e.Mouse(input.MouseLeft).Held {
		c = pixel.Red
	}
	e.DrawLine(m.X-3, m.Y, m.X+3, m.Y, c)
	e.DrawLine(m.X, m.Y-3, m.X, m.Y+3, c)
	return !escapePressed(e)
}

func (s *InputScene) OnUserDestroy(e *engine.Engine) bool {
	if !s.declined {
		s.declined = true
		return false
	}
	return true
}
