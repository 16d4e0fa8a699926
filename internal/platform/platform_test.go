package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/koi/internal/input"
	"github.com/rook-computer/koi/internal/state"
)

func TestFuncSource(t *testing.T) {
	store := state.NewStore()
	closed := false
	src := &FuncSource{Poll: func(s *state.Store) { s.SetKey(input.KeySpace, true) }}

	src.PollEvents()
	assert.False(t, store.Snapshot().Keys[input.KeySpace], "not started")
	src.RequestClose()

	require.NoError(t, src.Start(context.Background(), store, func() { closed = true }))
	src.PollEvents()
	assert.True(t, store.Snapshot().Keys[input.KeySpace])
	src.RequestClose()
	assert.True(t, closed)
	assert.NoError(t, src.Stop())
}

func TestNoopSource(t *testing.T) {
	var src InputSource = NoopSource{}
	require.NoError(t, src.Start(context.Background(), state.NewStore(), nil))
	src.PollEvents()
	assert.NoError(t, src.Stop())
}
