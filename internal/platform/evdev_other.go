//go:build !linux

package platform

import (
	"context"
	"errors"

	"github.com/rook-computer/koi/internal/state"
)

// EvdevSource is only available on Linux.
type EvdevSource struct {
	Glob   string
	Logger Logger
}

func NewEvdevSource() *EvdevSource { return &EvdevSource{} }

func (s *EvdevSource) Start(ctx context.Context, sink *state.Store, onClose func()) error {
	return errors.New("evdev input requires linux")
}
func (s *EvdevSource) PollEvents() {}
func (s *EvdevSource) Stop() error { return nil }
