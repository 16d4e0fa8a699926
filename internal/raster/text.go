package raster

import (
	"fmt"
	"image"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/koi/internal/pixel"
)

// DefaultFace is used when Text is given a nil face.
var DefaultFace font.Face = basicfont.Face7x13

// TrueTypeFace parses ttf and returns a face of the given point size at 72 DPI,
// so one point is one canvas pixel.
func TrueTypeFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse truetype: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

// GoRegularFace returns the built-in Go Regular font at size.
func GoRegularFace(size float64) (font.Face, error) { return TrueTypeFace(goregular.TTF, size) }

func lineMetrics(face font.Face) (ascent, lineHeight int) {
	m := face.Metrics()
	ascent = m.Ascent.Ceil()
	lineHeight = m.Height.Ceil()
	if h := ascent + m.Descent.Ceil(); h > lineHeight {
		lineHeight = h
	}
	return ascent, lineHeight
}

// MeasureText returns the unscaled size of s in pixels.
func MeasureText(s string, face font.Face) image.Point {
	if face == nil {
		face = DefaultFace
	}
	_, lineHeight := lineMetrics(face)
	lines := strings.Split(s, "\n")
	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	return image.Pt(width, lineHeight*len(lines))
}

// Text draws s with its top-left corner at (x, y). Glyph coverage scales the
// alpha of c, and every covered pixel becomes a scale×scale block.
func Text(p Plotter, x, y int, s string, c pixel.Color, face font.Face, scale int) {
	if face == nil {
		face = DefaultFace
	}
	if scale < 1 {
		scale = 1
	}
	ascent, lineHeight := lineMetrics(face)

	for n, line := range strings.Split(s, "\n") {
		width := font.MeasureString(face, line).Ceil()
		if width <= 0 {
			continue
		}
		mask := image.NewAlpha(image.Rect(0, 0, width, lineHeight))
		d := font.Drawer{Dst: mask, Src: image.Opaque, Face: face, Dot: fixed.P(0, ascent)}
		d.DrawString(line)

		top := y + n*lineHeight*scale
		for my := 0; my < lineHeight; my++ {
			for mx := 0; mx < width; mx++ {
				a := mask.AlphaAt(mx, my).A
				if a == 0 {
					continue
				}
				col := c
				if a != 0xFF {
					col = c.WithAlpha(uint8(uint32(c.A()) * uint32(a) / 0xFF))
				}
				if scale == 1 {
					p.Draw(x+mx, top+my, col)
				} else {
					block(p, x+mx*scale, top+my*scale, scale, col)
				}
			}
		}
	}
}
