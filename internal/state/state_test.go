package state

import (
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/koi/internal/input"
)

func TestStoreTakeResetsWheel(t *testing.T) {
	store := NewStore()
	store.AddWheel(120)
	store.AddWheel(-40)

	snap := store.Take()
	assert.Equal(t, 80, snap.Wheel)
	assert.Equal(t, 0, store.Take().Wheel)
}

func TestStoreButtons(t *testing.T) {
	store := NewStore()
	store.SetKey(input.KeyA, true)
	store.SetKey(input.KeyCount, true)
	store.SetKey(input.KeyNone, true)
	store.SetMouseButton(input.MouseRight, true)
	store.SetMouseButton(input.MouseButtons, true)
	store.SetMousePos(10, 20)
	store.SetWindowSize(640, 480)

	snap := store.Snapshot()
	assert.True(t, snap.Keys[input.KeyA])
	assert.False(t, snap.Keys[input.KeyNone])
	assert.True(t, snap.Mouse[input.MouseRight])
	assert.Equal(t, image.Pt(10, 20), snap.MousePos)
	assert.Equal(t, image.Pt(640, 480), snap.WindowSize)
	assert.True(t, snap.KeyFocus)

	store.SetKeyFocus(false)
	store.SetMouseFocus(false)
	store.ReleaseAll()
	snap = store.Snapshot()
	assert.False(t, snap.Keys[input.KeyA])
	assert.False(t, snap.Mouse[input.MouseRight])
	assert.False(t, snap.KeyFocus)
	assert.False(t, snap.MouseFocus)
}

func TestStoreConcurrentWriters(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.AddWheel(1)
				store.SetKey(input.KeySpace, j%2 == 0)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, store.Take().Wheel)
}
