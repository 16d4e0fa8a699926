package pixel

// Mode selects how an incoming colour is merged with the colour already stored.
type Mode int

const (
	// Opaque overwrites the destination unconditionally.
	Opaque Mode = iota
	// MaskByAlpha writes only fully opaque source colours.
	MaskByAlpha
	// AlphaBlendMode mixes source over destination using AlphaBlend.
	AlphaBlendMode
	// Custom delegates to a user supplied BlendFunc.
	Custom
)

func (m Mode) String() string {
	switch m {
	case Opaque:
		return "opaque"
	case MaskByAlpha:
		return "mask"
	case AlphaBlendMode:
		return "alpha"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// BlendFunc computes the stored colour for a write of src over dst at (x, y).
type BlendFunc func(x, y int, src, dst Color) Color

// Compositor holds the current compositing mode and blend factor.
// The zero value is an Opaque compositor with a blend factor of 0; use NewCompositor.
type Compositor struct {
	mode   Mode
	factor float64
	fn     BlendFunc
}

func NewCompositor() *Compositor {
	return &Compositor{mode: Opaque, factor: 1}
}

func (c *Compositor) Mode() Mode           { return c.mode }
func (c *Compositor) BlendFactor() float64 { return c.factor }

// SetMode switches to one of the built-in modes. Custom is only accepted when a
// BlendFunc has been installed with SetCustom.
func (c *Compositor) SetMode(m Mode) {
	if m == Custom && c.fn == nil {
		m = Opaque
	}
	c.mode = m
}

// SetCustom installs fn and switches to Custom mode. A nil fn resets to Opaque.
func (c *Compositor) SetCustom(fn BlendFunc) {
	c.fn = fn
	if fn == nil {
		c.mode = Opaque
		return
	}
	c.mode = Custom
}

// SetBlendFactor sets the AlphaBlendMode factor, clamped to [0,1].
func (c *Compositor) SetBlendFactor(f float64) {
	switch {
	case f != f, f < 0:
		f = 0
	case f > 1:
		f = 1
	}
	c.factor = f
}

// Compose returns the colour to store for a write of src over dst at (x, y).
// ok is false when the write must be skipped.
func (c *Compositor) Compose(x, y int, src, dst Color) (out Color, ok bool) {
	switch c.mode {
	case MaskByAlpha:
		if src.A() != 0xFF {
			return dst, false
		}
		return src, true
	case AlphaBlendMode:
		return AlphaBlend(src, dst, c.factor), true
	case Custom:
		if c.fn == nil {
			return src, true
		}
		return c.fn(x, y, src, dst), true
	default:
		return src, true
	}
}
