package state

import (
	"image"
	"sync"

	"github.com/rook-computer/koi/internal/input"
)

// State is the raw hardware state as last reported by the platform layer.
type State struct {
	Keys       [input.KeyCount]bool
	Mouse      [input.MouseButtons]bool
	MousePos   image.Point // window space
	Wheel      int         // accumulated since the previous Take
	WindowSize image.Point
	KeyFocus   bool
	MouseFocus bool
}

// Store is written by platform goroutines and sampled once per tick by the engine.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{KeyFocus: true, MouseFocus: true}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

// Take returns the current state and resets the wheel accumulator.
func (store *Store) Take() State {
	store.mu.Lock()
	defer store.mu.Unlock()
	snap := store.state
	store.state.Wheel = 0
	return snap
}

func (store *Store) SetKey(k input.Key, down bool) {
	if k <= input.KeyNone || k >= input.KeyCount {
		return
	}
	store.mu.Lock()
	store.state.Keys[k] = down
	store.mu.Unlock()
}

func (store *Store) SetMouseButton(button int, down bool) {
	if button < 0 || button >= input.MouseButtons {
		return
	}
	store.mu.Lock()
	store.state.Mouse[button] = down
	store.mu.Unlock()
}

func (store *Store) SetMousePos(x, y int) {
	store.mu.Lock()
	store.state.MousePos = image.Pt(x, y)
	store.mu.Unlock()
}

func (store *Store) AddWheel(delta int) {
	store.mu.Lock()
	store.state.Wheel += delta
	store.mu.Unlock()
}

func (store *Store) SetWindowSize(width, height int) {
	store.mu.Lock()
	store.state.WindowSize = image.Pt(width, height)
	store.mu.Unlock()
}

func (store *Store) SetKeyFocus(focused bool) {
	store.mu.Lock()
	store.state.KeyFocus = focused
	store.mu.Unlock()
}

func (store *Store) SetMouseFocus(focused bool) {
	store.mu.Lock()
	store.state.MouseFocus = focused
	store.mu.Unlock()
}

// ReleaseAll marks every key and mouse button as up, e.g. when focus is lost.
func (store *Store) ReleaseAll() {
	store.mu.Lock()
	store.state.Keys = [input.KeyCount]bool{}
	store.state.Mouse = [input.MouseButtons]bool{}
	store.mu.Unlock()
}
