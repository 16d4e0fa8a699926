package input

// HWButton is the per-tick state of one key or mouse button.
type HWButton struct {
	Pressed  bool // went down this tick
	Released bool // went up this tick
	Held     bool // currently down
}

// Update derives the edge flags from the previous and current raw samples.
func (b *HWButton) Update(old, cur bool) {
	b.Pressed = cur && !old && !b.Held
	b.Released = !cur && old
	b.Held = cur
}

// Scanner edge-detects a fixed set of button codes tick by tick.
type Scanner struct {
	old     []bool
	buttons []HWButton
}

func NewScanner(n int) *Scanner {
	if n < 0 {
		n = 0
	}
	return &Scanner{old: make([]bool, n), buttons: make([]HWButton, n)}
}

func (s *Scanner) Len() int { return len(s.buttons) }

// Scan updates every button from cur, then keeps cur as the previous sample.
// Codes missing from cur are treated as up.
func (s *Scanner) Scan(cur []bool) {
	for i := range s.buttons {
		down := i < len(cur) && cur[i]
		s.buttons[i].Update(s.old[i], down)
		s.old[i] = down
	}
}

// Button returns the state of code i, or the zero state for unknown codes.
func (s *Scanner) Button(i int) HWButton {
	if i < 0 || i >= len(s.buttons) {
		return HWButton{}
	}
	return s.buttons[i]
}

// Reset forgets all history, e.g. after focus loss.
func (s *Scanner) Reset() {
	for i := range s.buttons {
		s.old[i] = false
		s.buttons[i] = HWButton{}
	}
}
