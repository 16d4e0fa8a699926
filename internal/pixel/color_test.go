package pixel

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackedLayout(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	assert.Equal(t, uint32(0x44332211), c.Uint32())
	assert.Equal(t, c, Packed(0x44332211))
	assert.Equal(t, uint8(0x11), c.R())
	assert.Equal(t, uint8(0x22), c.G())
	assert.Equal(t, uint8(0x33), c.B())
	assert.Equal(t, uint8(0x44), c.A())
	assert.Equal(t, uint8(255), RGB(1, 2, 3).A())
	assert.Equal(t, Color(0), Blank)
}

func TestInverseIsInvolution(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				c := RGB(uint8(r), uint8(g), uint8(b))
				assert.Equal(t, c, c.Inverse().Inverse())
			}
		}
	}
	assert.Equal(t, RGBA(0, 255, 55, 7), RGBA(255, 0, 200, 7).Inverse())
}

func TestSaturatingArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"add saturates", RGB(200, 100, 0).Add(RGB(100, 100, 10)), RGB(255, 200, 10)},
		{"add keeps first alpha", RGBA(1, 1, 1, 10).Add(RGBA(1, 1, 1, 200)), RGBA(2, 2, 2, 10)},
		{"sub saturates", RGB(10, 100, 50).Sub(RGB(20, 50, 50)), RGB(0, 50, 0)},
		{"mul saturates", RGB(100, 200, 10).Mul(2), RGB(200, 255, 20)},
		{"mul negative", RGB(100, 200, 10).Mul(-1), RGB(0, 0, 0)},
		{"div", RGB(100, 200, 11).Div(2), RGB(50, 100, 5)},
		{"div by zero", RGB(100, 0, 1).Div(0), RGB(255, 0, 255)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestLerpBoundaries(t *testing.T) {
	pairs := [][2]Color{
		{Red, Blue},
		{RGB(12, 200, 99), RGB(250, 3, 128)},
		{White, Black},
		{DarkCyan, VeryDarkMagenta},
	}
	for _, p := range pairs {
		assert.Equal(t, p[1], Lerp(p[0], p[1], 0))
		assert.Equal(t, p[0], Lerp(p[0], p[1], 1))
	}
	assert.Equal(t, RGB(128, 128, 128), Lerp(White, Black, 0.5))
	assert.Equal(t, uint8(9), Lerp(RGBA(0, 0, 0, 9), White, 0.5).A())
}

func TestAlphaBlend(t *testing.T) {
	dst := RGBA(10, 20, 30, 77)

	t.Run("opaque source at full factor overwrites rgb", func(t *testing.T) {
		src := RGB(200, 150, 100)
		out := AlphaBlend(src, dst, 1)
		assert.Equal(t, RGBA(200, 150, 100, 77), out)
	})
	t.Run("zero factor keeps destination", func(t *testing.T) {
		assert.Equal(t, dst, AlphaBlend(White, dst, 0))
	})
	t.Run("half alpha", func(t *testing.T) {
		out := AlphaBlend(RGBA(255, 255, 255, 0), RGB(100, 100, 100), 1)
		assert.Equal(t, RGB(100, 100, 100), out)
		out = AlphaBlend(RGBA(200, 0, 0, 51), RGB(0, 0, 100), 1)
		assert.Equal(t, RGB(40, 0, 80), out)
	})
}

func TestImageColorInterop(t *testing.T) {
	c := RGBA(255, 0, 0, 255)
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)

	assert.Equal(t, RGBA(1, 2, 3, 4), FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 4}))
	assert.Equal(t, RGB(9, 8, 7), FromColor(RGB(9, 8, 7)))
	assert.Equal(t, RGBA(255, 0, 128, 255), FromFloat(1, 0, 0.5021, 1))
}
