package main

import (
	"fmt"
	"image"

	"github.com/rook-computer/koi/internal/input"
	"github.com/rook-computer/koi/internal/state"
)

// Scenarios selectable with -scenario.
var scenarios = []string{"idle", "click", "keys", "wheel"}

// SimControl scripts raw input for a fixed number of ticks, then calls Done.
type SimControl struct {
	Scenario string
	Ticks    int
	Window   image.Point
	Done     func()

	tick int
}

func NewSimControl(scenario string, ticks int, window image.Point, done func()) (*SimControl, error) {
	known := false
	for _, s := range scenarios {
		known = known || s == scenario
	}
	if !known {
		return nil, fmt.Errorf("unknown scenario %q (have %v)", scenario, scenarios)
	}
	if ticks <= 0 {
		return nil, fmt.Errorf("ticks must be positive (got %d)", ticks)
	}
	return &SimControl{Scenario: scenario, Ticks: ticks, Window: window, Done: done}, nil
}

// Tick returns the number of polls seen so far.
func (c *SimControl) Tick() int { return c.tick }

// Poll is called once per engine tick before input is scanned.
func (c *SimControl) Poll(sink *state.Store) {
	c.tick++
	switch c.Scenario {
	case "click":
		// Sweep the cursor left to right, clicking on every other tick.
		x := c.Window.X * c.tick / (c.Ticks + 1)
		sink.SetMousePos(x, c.Window.Y/2)
		sink.SetMouseButton(input.MouseLeft, c.tick%2 == 0)
	case "keys":
		word := []input.Key{input.KeyK, input.KeyO, input.KeyI}
		for i, k := range word {
			sink.SetKey(k, (c.tick-1)%len(word) == i)
		}
	case "wheel":
		sink.SetMousePos(c.Window.X/2, c.Window.Y/2)
		sink.AddWheel(120)
	}
	if c.tick >= c.Ticks && c.Done != nil {
		c.Done()
	}
}
