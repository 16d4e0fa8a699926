package platform

import (
	"context"

	"github.com/rook-computer/koi/internal/state"
)

// InputSource feeds raw hardware state into a store.
//
// Start may launch goroutines that write to sink at any time. PollEvents is
// called on the engine goroutine at the start of every tick for sources that
// must pump events on the thread that owns the window. onClose is called when
// the platform asks the application to quit, e.g. the window was closed.
type InputSource interface {
	Start(ctx context.Context, sink *state.Store, onClose func()) error
	PollEvents()
	Stop() error
}

// Logger is the component logger used by input sources.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// NoopSource never reports any input.
type NoopSource struct{}

func (NoopSource) Start(ctx context.Context, sink *state.Store, onClose func()) error { return nil }
func (NoopSource) PollEvents()                                                         {}
func (NoopSource) Stop() error                                                         { return nil }

// FuncSource adapts a per-tick callback into an InputSource. The simulator uses
// it to script input.
type FuncSource struct {
	Poll  func(sink *state.Store)
	sink  *state.Store
	close func()
}

func (f *FuncSource) Start(ctx context.Context, sink *state.Store, onClose func()) error {
	f.sink = sink
	f.close = onClose
	return nil
}

func (f *FuncSource) PollEvents() {
	if f.Poll != nil && f.sink != nil {
		f.Poll(f.sink)
	}
}

func (f *FuncSource) Stop() error { return nil }

// RequestClose forwards a close request to the engine, if started.
func (f *FuncSource) RequestClose() {
	if f.close != nil {
		f.close()
	}
}
