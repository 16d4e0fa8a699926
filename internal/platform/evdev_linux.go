//go:build linux

package platform

import (
	"context"
	"encoding/binary"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/koi/internal/input"
	"github.com/rook-computer/koi/internal/state"
)

const (
	evKey = 0x01
	evRel = 0x02

	relX     = 0x00
	relY     = 0x01
	relWheel = 0x08

	// Linux input-event-codes.h
	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112
	btnSide   = 0x113
	btnExtra  = 0x114
)

// EvdevSource reads keyboards and mice from /dev/input/event* for the
// framebuffer backend, which has no window system to deliver input. Relative
// mouse motion moves a cursor clamped to the window.
type EvdevSource struct {
	Glob   string
	Logger Logger

	mu     sync.Mutex
	cursor image.Point
	bounds image.Point

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewEvdevSource() *EvdevSource { return &EvdevSource{Glob: "/dev/input/event*"} }

// Start opens every matching device. Having none is not an error: the
// engine then runs without input.
func (s *EvdevSource) Start(ctx context.Context, sink *state.Store, onClose func()) error {
	paths, err := filepath.Glob(s.Glob)
	if err != nil {
		return fmt.Errorf("evdev glob %q: %w", s.Glob, err)
	}
	if len(paths) == 0 {
		s.infof("no evdev devices found under %s", s.Glob)
		return nil
	}

	ws := sink.Snapshot().WindowSize
	s.mu.Lock()
	s.bounds = ws
	s.cursor = ws.Div(2)
	s.mu.Unlock()
	sink.SetMousePos(s.cursor.X, s.cursor.Y)

	ctx, s.cancel = context.WithCancel(ctx)
	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			s.errorf("open %s: %v", path, err)
			continue
		}
		s.infof("reading %s", path)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.read(ctx, fd, path, sink)
		}()
	}
	return nil
}

func (s *EvdevSource) read(ctx context.Context, fd int, path string, sink *state.Store) {
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})
	eventSize := tvSize + 2 + 2 + 4
	buf := make([]byte, eventSize*64)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		_, pollErr := unix.Poll(pollFds, 250)
		if pollErr != nil {
			if pollErr == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, readErr := unix.Read(fd, buf)
		if readErr != nil {
			if readErr == unix.EAGAIN || readErr == unix.EINTR {
				continue
			}
			s.errorf("read %s: %v", path, readErr)
			return
		}
		for off := 0; off+eventSize <= n; off += eventSize {
			rec := buf[off : off+eventSize]
			typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
			code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
			value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
			s.apply(sink, typ, code, value)
		}
	}
}

// apply folds one input_event into sink. Key repeats (value 2) keep the key
// held.
func (s *EvdevSource) apply(sink *state.Store, typ, code uint16, value int32) {
	switch typ {
	case evKey:
		down := value != 0
		if b, ok := mouseButton(code); ok {
			sink.SetMouseButton(b, down)
			return
		}
		if k, ok := evdevKeys[code]; ok {
			sink.SetKey(k, down)
		}
	case evRel:
		switch code {
		case relX, relY:
			s.mu.Lock()
			if bounds := sink.Snapshot().WindowSize; bounds.X > 0 && bounds.Y > 0 {
				s.bounds = bounds
			}
			if code == relX {
				s.cursor.X = clampAxis(s.cursor.X+int(value), s.bounds.X)
			} else {
				s.cursor.Y = clampAxis(s.cursor.Y+int(value), s.bounds.Y)
			}
			pos := s.cursor
			s.mu.Unlock()
			sink.SetMousePos(pos.X, pos.Y)
		case relWheel:
			sink.AddWheel(int(value) * 120)
		}
	}
}

func clampAxis(v, size int) int {
	if v < 0 || size <= 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}

func mouseButton(code uint16) (int, bool) {
	switch code {
	case btnLeft:
		return input.MouseLeft, true
	case btnRight:
		return input.MouseRight, true
	case btnMiddle:
		return input.MouseMiddle, true
	case btnSide:
		return input.MouseX1, true
	case btnExtra:
		return input.MouseX2, true
	}
	return 0, false
}

func (s *EvdevSource) PollEvents() {}

func (s *EvdevSource) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	return nil
}

func (s *EvdevSource) infof(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Infof("input", format, args...)
	}
}

func (s *EvdevSource) errorf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Errorf("input", format, args...)
	}
}

// evdevKeys maps Linux KEY_* codes to engine keys.
var evdevKeys = map[uint16]input.Key{
	30: input.KeyA, 48: input.KeyB, 46: input.KeyC, 32: input.KeyD, 18: input.KeyE,
	33: input.KeyF, 34: input.KeyG, 35: input.KeyH, 23: input.KeyI, 36: input.KeyJ,
	37: input.KeyK, 38: input.KeyL, 50: input.KeyM, 49: input.KeyN, 24: input.KeyO,
	25: input.KeyP, 16: input.KeyQ, 19: input.KeyR, 31: input.KeyS, 20: input.KeyT,
	22: input.KeyU, 47: input.KeyV, 17: input.KeyW, 45: input.KeyX, 21: input.KeyY,
	44: input.KeyZ,

	11: input.Key0, 2: input.Key1, 3: input.Key2, 4: input.Key3, 5: input.Key4,
	6: input.Key5, 7: input.Key6, 8: input.Key7, 9: input.Key8, 10: input.Key9,

	59: input.KeyF1, 60: input.KeyF2, 61: input.KeyF3, 62: input.KeyF4, 63: input.KeyF5,
	64: input.KeyF6, 65: input.KeyF7, 66: input.KeyF8, 67: input.KeyF9, 68: input.KeyF10,
	87: input.KeyF11, 88: input.KeyF12,

	103: input.KeyUp, 108: input.KeyDown, 105: input.KeyLeft, 106: input.KeyRight,
	57: input.KeySpace, 15: input.KeyTab,
	42: input.KeyShift, 54: input.KeyShift, 29: input.KeyCtrl, 97: input.KeyCtrl,
	110: input.KeyIns, 111: input.KeyDel, 102: input.KeyHome, 107: input.KeyEnd,
	104: input.KeyPgUp, 109: input.KeyPgDn,
	14: input.KeyBack, 1: input.KeyEscape, 28: input.KeyReturn, 96: input.KeyEnter,
	119: input.KeyPause, 70: input.KeyScroll,

	82: input.KeyNP0, 79: input.KeyNP1, 80: input.KeyNP2, 81: input.KeyNP3, 75: input.KeyNP4,
	76: input.KeyNP5, 77: input.KeyNP6, 71: input.KeyNP7, 72: input.KeyNP8, 73: input.KeyNP9,
	55: input.KeyNPMul, 98: input.KeyNPDiv, 78: input.KeyNPAdd, 74: input.KeyNPSub,
	83: input.KeyNPDecimal, 52: input.KeyPeriod,
}
