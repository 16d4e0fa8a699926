//go:build linux

package platform

import (
	"context"
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/koi/internal/input"
	"github.com/rook-computer/koi/internal/state"
)

func TestEvdevApply(t *testing.T) {
	store := state.NewStore()
	store.SetWindowSize(100, 50)
	s := NewEvdevSource()
	s.cursor = image.Pt(50, 25)

	s.apply(store, evKey, 30, 1)
	assert.True(t, store.Snapshot().Keys[input.KeyA])
	s.apply(store, evKey, 30, 2)
	assert.True(t, store.Snapshot().Keys[input.KeyA], "repeat keeps the key held")
	s.apply(store, evKey, 30, 0)
	assert.False(t, store.Snapshot().Keys[input.KeyA])

	s.apply(store, evKey, btnRight, 1)
	assert.True(t, store.Snapshot().Mouse[input.MouseRight])

	s.apply(store, evRel, relX, 10)
	s.apply(store, evRel, relY, -5)
	assert.Equal(t, image.Pt(60, 20), store.Snapshot().MousePos)

	s.apply(store, evRel, relX, 1000)
	s.apply(store, evRel, relY, -1000)
	assert.Equal(t, image.Pt(99, 0), store.Snapshot().MousePos, "cursor clamped to the window")

	s.apply(store, evRel, relWheel, -1)
	assert.Equal(t, -120, store.Take().Wheel)

	s.apply(store, evKey, 0x2ff, 1)
	assert.Equal(t, [input.KeyCount]bool{}, store.Snapshot().Keys, "unknown codes ignored")
}

func TestEvdevNoDevices(t *testing.T) {
	s := NewEvdevSource()
	s.Glob = filepath.Join(t.TempDir(), "event*")
	require.NoError(t, s.Start(context.Background(), state.NewStore(), nil))
	require.NoError(t, s.Stop())
}

func TestEvdevKeyTable(t *testing.T) {
	seen := map[input.Key]bool{}
	for _, k := range evdevKeys {
		seen[k] = true
	}
	for k := input.KeyA; k <= input.KeyZ; k++ {
		assert.True(t, seen[k], k.String())
	}
	for k := input.KeyF1; k <= input.KeyF12; k++ {
		assert.True(t, seen[k], k.String())
	}
}
