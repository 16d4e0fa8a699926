package engine

import (
	"image"

	"golang.org/x/image/font"

	"github.com/rook-computer/koi/internal/canvas"
	"github.com/rook-computer/koi/internal/input"
	"github.com/rook-computer/koi/internal/pixel"
	"github.com/rook-computer/koi/internal/raster"
)

// Drawing. Every call goes through the engine's gate, so it respects the
// current draw target and pixel mode.

func (e *Engine) Draw(x, y int, c pixel.Color) bool { return e.gate.Draw(x, y, c) }

func (e *Engine) DrawLine(x1, y1, x2, y2 int, c pixel.Color) {
	raster.Line(e.gate, x1, y1, x2, y2, c, raster.SolidPattern)
}

func (e *Engine) DrawLinePattern(x1, y1, x2, y2 int, c pixel.Color, pattern uint32) {
	raster.Line(e.gate, x1, y1, x2, y2, c, pattern)
}

func (e *Engine) DrawCircle(x, y, radius int, c pixel.Color) {
	raster.Circle(e.gate, x, y, radius, c, raster.AllOctants)
}

// DrawCircleArc draws the octants selected by mask, bit 0 being the octant
// starting at twelve o'clock and going clockwise.
func (e *Engine) DrawCircleArc(x, y, radius int, c pixel.Color, mask uint8) {
	raster.Circle(e.gate, x, y, radius, c, mask)
}

func (e *Engine) FillCircle(x, y, radius int, c pixel.Color) {
	raster.FillCircle(e.gate, x, y, radius, c)
}

func (e *Engine) DrawRect(x, y, w, h int, c pixel.Color) { raster.Rect(e.gate, x, y, w, h, c) }
func (e *Engine) FillRect(x, y, w, h int, c pixel.Color) { raster.FillRect(e.gate, x, y, w, h, c) }

func (e *Engine) DrawTriangle(x1, y1, x2, y2, x3, y3 int, c pixel.Color) {
	raster.Triangle(e.gate, x1, y1, x2, y2, x3, y3, c)
}

func (e *Engine) FillTriangle(x1, y1, x2, y2, x3, y3 int, c pixel.Color) {
	raster.FillTriangle(e.gate, x1, y1, x2, y2, x3, y3, c)
}

func (e *Engine) DrawSprite(x, y int, sprite *canvas.Canvas, scale int, flip raster.Flip) {
	raster.Sprite(e.gate, x, y, sprite, scale, flip)
}

func (e *Engine) DrawPartialSprite(x, y int, sprite *canvas.Canvas, ox, oy, w, h, scale int, flip raster.Flip) {
	raster.PartialSprite(e.gate, x, y, sprite, ox, oy, w, h, scale, flip)
}

// DrawString draws s with its top left corner at (x, y) in the engine font.
func (e *Engine) DrawString(x, y int, s string, c pixel.Color, scale int) {
	raster.Text(e.gate, x, y, s, c, e.face, scale)
}

// SetFont replaces the DrawString face. nil restores the built-in face.
func (e *Engine) SetFont(face font.Face) {
	if face == nil {
		face = raster.DefaultFace
	}
	e.face = face
}

// Clear overwrites the whole draw target, ignoring the pixel mode.
func (e *Engine) Clear(c pixel.Color) { raster.Clear(e.gate.Target(), c) }

// Pixel mode.

func (e *Engine) PixelMode() pixel.Mode     { return e.comp.Mode() }
func (e *Engine) SetPixelMode(m pixel.Mode) { e.comp.SetMode(m) }
func (e *Engine) SetPixelBlend(f float64)   { e.comp.SetBlendFactor(f) }
func (e *Engine) PixelBlend() float64       { return e.comp.BlendFactor() }

// SetPixelModeFunc switches to the Custom mode with fn as the blend.
func (e *Engine) SetPixelModeFunc(fn pixel.BlendFunc) { e.comp.SetCustom(fn) }

// Hardware state as of the start of the current tick.

func (e *Engine) Key(k input.Key) input.HWButton {
	if k < 0 || int(k) >= e.keys.Len() {
		return input.HWButton{}
	}
	return e.keys.Button(int(k))
}

func (e *Engine) Mouse(button int) input.HWButton {
	if button < 0 || button >= e.mouse.Len() {
		return input.HWButton{}
	}
	return e.mouse.Button(button)
}

func (e *Engine) MouseX() int              { return e.mousePos.X }
func (e *Engine) MouseY() int              { return e.mousePos.Y }
func (e *Engine) MousePos() image.Point    { return e.mousePos }
func (e *Engine) WindowMouse() image.Point { return e.mouseWindow }

// MouseWheel is the wheel delta accumulated since the previous tick.
func (e *Engine) MouseWheel() int { return e.wheel }

func (e *Engine) IsFocused() bool      { return e.keyFocus }
func (e *Engine) IsMouseFocused() bool { return e.mouseFocus }

// Screen and draw target.

func (e *Engine) ScreenWidth() int        { return e.screen.Width() }
func (e *Engine) ScreenHeight() int       { return e.screen.Height() }
func (e *Engine) ScreenSize() image.Point { return image.Pt(e.screen.Width(), e.screen.Height()) }

// Screen returns the primary canvas presented every frame.
func (e *Engine) Screen() *canvas.Canvas { return e.screen }

func (e *Engine) DrawTarget() *canvas.Canvas { return e.gate.Target() }

// SetDrawTarget redirects drawing to target. nil selects the screen again.
func (e *Engine) SetDrawTarget(target *canvas.Canvas) {
	if target == nil {
		target = e.screen
	}
	e.gate.SetTarget(target)
}

func (e *Engine) DrawTargetWidth() int  { return e.gate.Width() }
func (e *Engine) DrawTargetHeight() int { return e.gate.Height() }

// SetScreenSize reallocates the screen canvas, clearing it, and recomputes
// the viewport. A draw target other than the screen is left alone.
func (e *Engine) SetScreenSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	e.screen.Resize(width, height)
	e.cfg.ScreenSize = image.Pt(width, height)
	e.updateViewport()
	return nil
}

func (e *Engine) FPS() int             { return e.lastFPS }
func (e *Engine) ElapsedTime() float64 { return e.elapsed }

func (e *Engine) WindowSize() image.Point      { return e.windowSize }
func (e *Engine) PixelSize() image.Point       { return e.cfg.PixelSize }
func (e *Engine) ScreenPixelSize() image.Point { return e.screenPixel }

// ViewportPos and ViewportSize describe where the screen lands in the window.
func (e *Engine) ViewportPos() image.Point  { return e.viewPos }
func (e *Engine) ViewportSize() image.Point { return e.viewSize }

// Window presentation.

// SetWindowOffset selects the top left of the presented screen region in
// normalised texture coordinates.
func (e *Engine) SetWindowOffset(x, y float32) { e.offset = [2]float32{x, y} }

// SetWindowScale sets the presented fraction of the screen in each axis.
func (e *Engine) SetWindowScale(x, y float32) { e.scale = [2]float32{x, y} }

func (e *Engine) SetWindowTint(c pixel.Color) { e.tint = c }

// SetCustomRenderFunc replaces the texture upload and quad draw of the
// present step. nil restores the default.
func (e *Engine) SetCustomRenderFunc(fn func()) { e.renderHook = fn }

// EnableWindow toggles presenting. A disabled window still ticks.
func (e *Engine) EnableWindow(enabled bool) { e.windowEnabled = enabled }

func (e *Engine) Title() string { return e.cfg.Title }
