package screens

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rook-computer/koi/internal/engine"
	"github.com/rook-computer/koi/internal/input"
)

var ErrUnknownScene = errors.New("unknown scene")

var registry = map[string]func() engine.Game{
	"noise":   func() engine.Game { return NewNoiseScene(1) },
	"shapes":  func() engine.Game { return &ShapesScene{} },
	"sprites": func() engine.Game { return &SpritesScene{} },
	"input":   func() engine.Game { return &InputScene{} },
}

// ByName returns a fresh instance of the named scene.
func ByName(name string) (engine.Game, error) {
	newScene, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownScene, name, Names())
	}
	return newScene(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func escapePressed(e *engine.Engine) bool { return e.Key(input.KeyEscape).Pressed }
