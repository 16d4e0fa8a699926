package pixel

import (
	"image/color"
	"math"
)

// Color is an RGBA value packed as r | g<<8 | b<<16 | a<<24.
// On little-endian hosts a []Color has the same memory layout as an RGBA byte texture.
type Color uint32

const defaultAlpha = 0xFF

// Named colours.
var (
	Grey            = RGB(192, 192, 192)
	DarkGrey        = RGB(128, 128, 128)
	VeryDarkGrey    = RGB(64, 64, 64)
	Red             = RGB(255, 0, 0)
	DarkRed         = RGB(128, 0, 0)
	VeryDarkRed     = RGB(64, 0, 0)
	Yellow          = RGB(255, 255, 0)
	DarkYellow      = RGB(128, 128, 0)
	VeryDarkYellow  = RGB(64, 64, 0)
	Green           = RGB(0, 255, 0)
	DarkGreen       = RGB(0, 128, 0)
	VeryDarkGreen   = RGB(0, 64, 0)
	Cyan            = RGB(0, 255, 255)
	DarkCyan        = RGB(0, 128, 128)
	VeryDarkCyan    = RGB(0, 64, 64)
	Blue            = RGB(0, 0, 255)
	DarkBlue        = RGB(0, 0, 128)
	VeryDarkBlue    = RGB(0, 0, 64)
	Magenta         = RGB(255, 0, 255)
	DarkMagenta     = RGB(128, 0, 128)
	VeryDarkMagenta = RGB(64, 0, 64)
	White           = RGB(255, 255, 255)
	Black           = RGB(0, 0, 0)
	Blank           = RGBA(0, 0, 0, 0)
)

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color { return RGBA(r, g, b, defaultAlpha) }

func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// Packed reinterprets n as a packed colour without any channel conversion.
func Packed(n uint32) Color { return Color(n) }

// FromFloat builds a colour from channels in the range [0,1].
func FromFloat(r, g, b, a float32) Color {
	return RGBA(clamp(float64(r)*255), clamp(float64(g)*255), clamp(float64(b)*255), clamp(float64(a)*255))
}

// FromColor converts any image/color value to a packed colour.
func FromColor(c color.Color) Color {
	if p, ok := c.(Color); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

func (c Color) R() uint8       { return uint8(c) }
func (c Color) G() uint8       { return uint8(c >> 8) }
func (c Color) B() uint8       { return uint8(c >> 16) }
func (c Color) A() uint8       { return uint8(c >> 24) }
func (c Color) Uint32() uint32 { return uint32(c) }

func (c Color) WithAlpha(a uint8) Color { return RGBA(c.R(), c.G(), c.B(), a) }

// RGBA implements color.Color. Channels are stored non-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// Add returns the per-channel saturating sum. Alpha is kept from c.
func (c Color) Add(o Color) Color {
	return RGBA(
		clamp(float64(c.R())+float64(o.R())),
		clamp(float64(c.G())+float64(o.G())),
		clamp(float64(c.B())+float64(o.B())),
		c.A(),
	)
}

// Sub returns the per-channel saturating difference. Alpha is kept from c.
func (c Color) Sub(o Color) Color {
	return RGBA(
		clamp(float64(c.R())-float64(o.R())),
		clamp(float64(c.G())-float64(o.G())),
		clamp(float64(c.B())-float64(o.B())),
		c.A(),
	)
}

func (c Color) Mul(f float64) Color {
	return RGBA(clamp(float64(c.R())*f), clamp(float64(c.G())*f), clamp(float64(c.B())*f), c.A())
}

// Div divides the colour channels by f. Division by zero saturates.
func (c Color) Div(f float64) Color {
	return RGBA(clamp(float64(c.R())/f), clamp(float64(c.G())/f), clamp(float64(c.B())/f), c.A())
}

func (c Color) Inverse() Color {
	return RGBA(
		clamp(255-float64(c.R())),
		clamp(255-float64(c.G())),
		clamp(255-float64(c.B())),
		c.A(),
	)
}

// Lerp returns a*t + b*(1-t) per channel. The alpha channel is taken from a.
func Lerp(a, b Color, t float64) Color {
	mix := func(x, y uint8) uint8 { return clamp(math.Round(float64(x)*t + float64(y)*(1-t))) }
	return RGBA(mix(a.R(), b.R()), mix(a.G(), b.G()), mix(a.B(), b.B()), a.A())
}

// AlphaBlend mixes src over dst weighted by src alpha and factor.
// The result keeps the alpha of dst.
func AlphaBlend(src, dst Color, factor float64) Color {
	a := float64(src.A()) / 255 * factor
	k := 1 - a
	mix := func(s, d uint8) uint8 { return clamp(a*float64(s) + k*float64(d)) }
	return RGBA(mix(src.R(), dst.R()), mix(src.G(), dst.G()), mix(src.B(), dst.B()), dst.A())
}

func clamp(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
