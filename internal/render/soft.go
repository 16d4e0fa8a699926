package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/koi/internal/canvas"
	"github.com/rook-computer/koi/internal/pixel"
)

// softBuffer implements the drawing half of Backend on an in-memory back buffer.
// Backends embed it and only provide the device specific Open, Close and
// DisplayFrame.
type softBuffer struct {
	back     *image.RGBA
	viewport image.Rectangle
	textures map[TextureID]*canvas.Canvas
	next     TextureID
	active   TextureID
}

func (s *softBuffer) resize(size image.Point) {
	s.back = image.NewRGBA(image.Rectangle{Max: size})
	s.viewport = s.back.Bounds()
}

func (s *softBuffer) SetViewport(pos, size image.Point) {
	s.viewport = image.Rectangle{Min: pos, Max: pos.Add(size)}
}

func (s *softBuffer) ClearBackBuffer(c pixel.Color, depth bool) {
	if s.back == nil {
		return
	}
	draw.Draw(s.back, s.back.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *softBuffer) PrepareDrawing() {}

// UploadTexture registers c. Software textures share the canvas memory, so
// UpdateTexture only has to rebind it.
func (s *softBuffer) UploadTexture(c *canvas.Canvas) (TextureID, error) {
	if c == nil {
		return 0, fmt.Errorf("upload texture: nil canvas")
	}
	if s.textures == nil {
		s.textures = map[TextureID]*canvas.Canvas{}
	}
	s.next++
	s.textures[s.next] = c
	return s.next, nil
}

func (s *softBuffer) UpdateTexture(id TextureID, c *canvas.Canvas) {
	if _, ok := s.textures[id]; ok && c != nil {
		s.textures[id] = c
	}
}

func (s *softBuffer) ApplyTexture(id TextureID) { s.active = id }

func (s *softBuffer) DrawQuad(offset, scale [2]float32, tint pixel.Color) {
	tex := s.textures[s.active]
	if s.back == nil || tex == nil || tex.Empty() {
		return
	}
	drawQuad(s.back, s.viewport, tex, offset, scale, tint)
}

// drawQuad scales the selected texture region into dr with nearest-neighbour
// sampling, the software equivalent of a GL_NEAREST textured quad.
func drawQuad(dst draw.Image, dr image.Rectangle, tex *canvas.Canvas, offset, scale [2]float32, tint pixel.Color) {
	sr := textureRect(tex.Bounds(), offset, scale)
	if sr.Empty() || dr.Empty() {
		return
	}
	var src image.Image = tex
	if tint != pixel.White {
		src = tinted{Image: tex, tint: tint}
	}
	xdraw.NearestNeighbor.Scale(dst, dr, opaque{src}, sr, xdraw.Src, nil)
}

// pixelSetter is the part of draw.Image a display device has to provide.
type pixelSetter interface {
	Set(x, y int, c color.Color)
}

// blit copies back to dst pixel by pixel with its top left corner at origin.
func blit(dst pixelSetter, origin image.Point, back *image.RGBA) {
	b := back.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := back.RGBAAt(x, y)
			c.A = 0xFF
			dst.Set(origin.X+x, origin.Y+y, c)
		}
	}
}

// textureRect converts normalised texture coordinates into a pixel rectangle.
func textureRect(b image.Rectangle, offset, scale [2]float32) image.Rectangle {
	w, h := float32(b.Dx()), float32(b.Dy())
	r := image.Rect(
		int(offset[0]*w), int(offset[1]*h),
		int((offset[0]+scale[0])*w), int((offset[1]+scale[1])*h),
	)
	return r.Intersect(b)
}

// tinted multiplies every colour of Image by tint.
type tinted struct {
	image.Image
	tint pixel.Color
}

func (t tinted) At(x, y int) color.Color {
	c := pixel.FromColor(t.Image.At(x, y))
	mul := func(a, b uint8) uint8 { return uint8(uint32(a) * uint32(b) / 0xFF) }
	return pixel.RGBA(mul(c.R(), t.tint.R()), mul(c.G(), t.tint.G()), mul(c.B(), t.tint.B()), mul(c.A(), t.tint.A()))
}

// opaque presents colours without their alpha, as the display surface has none.
type opaque struct{ image.Image }

func (o opaque) ColorModel() color.Model { return color.RGBAModel }

func (o opaque) At(x, y int) color.Color {
	c := pixel.FromColor(o.Image.At(x, y))
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}
