package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHWButtonSequence(t *testing.T) {
	raw := []bool{false, false, true, true, true, false}
	wantPressed := []bool{false, false, true, false, false, false}
	wantHeld := []bool{false, false, true, true, true, false}
	wantReleased := []bool{false, false, false, false, false, true}

	var b HWButton
	old := false
	for tick, cur := range raw {
		b.Update(old, cur)
		old = cur
		assert.Equal(t, wantPressed[tick], b.Pressed, "pressed tick %d", tick)
		assert.Equal(t, wantHeld[tick], b.Held, "held tick %d", tick)
		assert.Equal(t, wantReleased[tick], b.Released, "released tick %d", tick)
	}
}

func TestScanner(t *testing.T) {
	s := NewScanner(3)
	assert.Equal(t, 3, s.Len())

	s.Scan([]bool{true, false, false})
	assert.True(t, s.Button(0).Pressed)
	assert.False(t, s.Button(1).Held)

	s.Scan([]bool{true, true})
	assert.False(t, s.Button(0).Pressed)
	assert.True(t, s.Button(0).Held)
	assert.True(t, s.Button(1).Pressed)
	assert.False(t, s.Button(2).Held, "missing codes are up")

	s.Scan(nil)
	assert.True(t, s.Button(0).Released)
	assert.True(t, s.Button(1).Released)

	s.Scan(nil)
	assert.False(t, s.Button(0).Released, "release fires once")

	assert.Equal(t, HWButton{}, s.Button(-1))
	assert.Equal(t, HWButton{}, s.Button(3))

	s.Scan([]bool{true})
	s.Reset()
	assert.Equal(t, HWButton{}, s.Button(0))
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "A", KeyA.String())
	assert.Equal(t, "0", Key0.String())
	assert.Equal(t, "F12", KeyF12.String())
	assert.Equal(t, "ESCAPE", KeyEscape.String())
	assert.Equal(t, "NPDECIMAL", KeyNPDecimal.String())
	assert.Equal(t, "UNKNOWN", KeyCount.String())
	for k := KeyNone; k < KeyCount; k++ {
		assert.NotEmpty(t, k.String())
	}
	assert.Equal(t, 5, MouseButtons)
}
