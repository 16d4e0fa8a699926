package render

import (
	"context"
	"fmt"
	"image"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/rook-computer/koi/internal/input"
	"github.com/rook-computer/koi/internal/state"
)

// wheelStep is the wheel delta reported per notch, matching desktop platforms.
const wheelStep = 120

// TermRenderer presents frames in a terminal. Every cell shows two vertically
// stacked pixels using an upper half block, so the window is cols x rows*2.
//
// It is also an input source: terminals only report key presses, so a key
// is held for exactly one poll and released on the next.
type TermRenderer struct {
	softBuffer

	screen tcell.Screen
	Logger Logger

	sink    *state.Store
	onClose func()
	events  chan tcell.Event
	quit    chan struct{}
	stop    sync.Once
	pending []input.Key
}

// NewTermRenderer wraps screen, or the terminal of the process when nil.
func NewTermRenderer(screen tcell.Screen) *TermRenderer {
	return &TermRenderer{screen: screen}
}

func (r *TermRenderer) Open(ctx context.Context, cfg WindowConfig) (image.Point, error) {
	log := loggerOrNop(r.Logger)
	if r.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return image.Point{}, fmt.Errorf("terminal screen: %w", err)
		}
		r.screen = screen
	}
	if err := r.screen.Init(); err != nil {
		return image.Point{}, fmt.Errorf("terminal init: %w", err)
	}
	r.screen.EnableMouse()
	r.screen.EnableFocus()
	r.screen.HideCursor()
	r.screen.SetTitle(cfg.Title)

	cols, rows := r.screen.Size()
	size := image.Pt(cols, rows*2)
	r.resize(size)
	log.Infof("term", "terminal open, cells=%dx%d pixels=%dx%d", cols, rows, size.X, size.Y)
	return size, nil
}

func (r *TermRenderer) Close() error {
	if r.screen != nil {
		r.screen.Fini()
	}
	return nil
}

func (r *TermRenderer) SetTitle(title string) {
	if r.screen != nil {
		r.screen.SetTitle(title)
	}
}

func (r *TermRenderer) DisplayFrame() error {
	if r.screen == nil || r.back == nil {
		return nil
	}
	b := r.back.Bounds()
	for y := 0; y*2 < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			top := r.back.RGBAAt(x, y*2)
			bottom := r.back.RGBAAt(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			r.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	r.screen.Show()
	return nil
}

func (r *TermRenderer) Start(ctx context.Context, sink *state.Store, onClose func()) error {
	if r.screen == nil {
		return fmt.Errorf("terminal input: renderer not open")
	}
	r.sink = sink
	r.onClose = onClose
	r.events = make(chan tcell.Event, 100)
	r.quit = make(chan struct{})
	go r.screen.ChannelEvents(r.events, r.quit)
	return nil
}

func (r *TermRenderer) Stop() error {
	r.stop.Do(func() {
		if r.quit != nil {
			close(r.quit)
		}
	})
	return nil
}

// PollEvents releases the keys pressed on the previous poll, then applies
// every queued terminal event.
func (r *TermRenderer) PollEvents() {
	if r.sink == nil {
		return
	}
	for _, k := range r.pending {
		r.sink.SetKey(k, false)
	}
	r.pending = r.pending[:0]

	for {
		select {
		case ev, ok := <-r.events:
			if !ok {
				return
			}
			r.handle(ev)
		default:
			return
		}
	}
}

func (r *TermRenderer) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			if r.onClose != nil {
				r.onClose()
			}
		}
		if k := termKey(ev); k != input.KeyNone {
			r.press(k)
		}
		if ev.Modifiers()&tcell.ModShift != 0 || (ev.Key() == tcell.KeyRune && unicode.IsUpper(ev.Rune())) {
			r.press(input.KeyShift)
		}
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			r.press(input.KeyCtrl)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		r.sink.SetMousePos(x, y*2)
		buttons := ev.Buttons()
		r.sink.SetMouseButton(input.MouseLeft, buttons&tcell.Button1 != 0)
		r.sink.SetMouseButton(input.MouseRight, buttons&tcell.Button2 != 0)
		r.sink.SetMouseButton(input.MouseMiddle, buttons&tcell.Button3 != 0)
		r.sink.SetMouseButton(input.MouseX1, buttons&tcell.Button4 != 0)
		r.sink.SetMouseButton(input.MouseX2, buttons&tcell.Button5 != 0)
		if buttons&tcell.WheelUp != 0 {
			r.sink.AddWheel(wheelStep)
		}
		if buttons&tcell.WheelDown != 0 {
			r.sink.AddWheel(-wheelStep)
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		r.screen.Sync()
		r.resize(image.Pt(cols, rows*2))
		r.sink.SetWindowSize(cols, rows*2)
		loggerOrNop(r.Logger).Infof("term", "resize cells=%dx%d", cols, rows)
	case *tcell.EventFocus:
		r.sink.SetKeyFocus(ev.Focused)
		r.sink.SetMouseFocus(ev.Focused)
		if !ev.Focused {
			r.sink.ReleaseAll()
		}
	}
}

func (r *TermRenderer) press(k input.Key) {
	r.sink.SetKey(k, true)
	r.pending = append(r.pending, k)
}

var termKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyEnter:      input.KeyReturn,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyBackspace:  input.KeyBack,
	tcell.KeyBackspace2: input.KeyBack,
	tcell.KeyDelete:     input.KeyDel,
	tcell.KeyInsert:     input.KeyIns,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPgUp,
	tcell.KeyPgDn:       input.KeyPgDn,
	tcell.KeyPause:      input.KeyPause,
	tcell.KeyScrollLock: input.KeyScroll,
}

// termKey translates a terminal key event. Control combinations of letters
// arrive as their own key codes and map to the letter.
func termKey(ev *tcell.EventKey) input.Key {
	key := ev.Key()
	switch {
	case key == tcell.KeyRune:
		return runeKey(ev.Rune())
	case key >= tcell.KeyF1 && key <= tcell.KeyF12:
		return input.KeyF1 + input.Key(key-tcell.KeyF1)
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ && key != tcell.KeyTab && key != tcell.KeyEnter && key != tcell.KeyBackspace:
		return input.KeyA + input.Key(key-tcell.KeyCtrlA)
	}
	return termKeys[key]
}

func runeKey(ch rune) input.Key {
	switch {
	case ch >= 'a' && ch <= 'z':
		return input.KeyA + input.Key(ch-'a')
	case ch >= 'A' && ch <= 'Z':
		return input.KeyA + input.Key(ch-'A')
	case ch >= '0' && ch <= '9':
		return input.Key0 + input.Key(ch-'0')
	case ch == ' ':
		return input.KeySpace
	case ch == '.':
		return input.KeyPeriod
	case ch == '*':
		return input.KeyNPMul
	case ch == '/':
		return input.KeyNPDiv
	case ch == '+':
		return input.KeyNPAdd
	case ch == '-':
		return input.KeyNPSub
	}
	return input.KeyNone
}
