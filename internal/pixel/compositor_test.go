package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositorModes(t *testing.T) {
	dst := RGBA(1, 2, 3, 40)

	c := NewCompositor()
	assert.Equal(t, Opaque, c.Mode())
	assert.Equal(t, 1.0, c.BlendFactor())

	out, ok := c.Compose(0, 0, RGBA(9, 9, 9, 0), dst)
	assert.True(t, ok)
	assert.Equal(t, RGBA(9, 9, 9, 0), out)

	c.SetMode(MaskByAlpha)
	_, ok = c.Compose(0, 0, RGBA(9, 9, 9, 254), dst)
	assert.False(t, ok)
	out, ok = c.Compose(0, 0, RGB(9, 9, 9), dst)
	assert.True(t, ok)
	assert.Equal(t, RGB(9, 9, 9), out)

	c.SetMode(AlphaBlendMode)
	out, ok = c.Compose(0, 0, RGB(200, 100, 50), dst)
	assert.True(t, ok)
	assert.Equal(t, RGBA(200, 100, 50, 40), out, "full factor with opaque source reduces to overwrite")

	c.SetCustom(func(x, y int, src, d Color) Color {
		return RGB(uint8(x), uint8(y), src.B())
	})
	assert.Equal(t, Custom, c.Mode())
	out, ok = c.Compose(3, 4, RGB(0, 0, 5), dst)
	assert.True(t, ok)
	assert.Equal(t, RGB(3, 4, 5), out)

	c.SetCustom(nil)
	assert.Equal(t, Opaque, c.Mode())
	c.SetMode(Custom)
	assert.Equal(t, Opaque, c.Mode(), "custom without a function falls back to opaque")
}

func TestCompositorBlendFactorClamp(t *testing.T) {
	c := NewCompositor()
	for _, tc := range []struct{ in, want float64 }{
		{-1, 0}, {0.25, 0.25}, {3, 1},
	} {
		c.SetBlendFactor(tc.in)
		assert.Equal(t, tc.want, c.BlendFactor())
	}
	assert.Equal(t, "alpha", AlphaBlendMode.String())
}
