package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Centered returns a rectangle of the given size centred in rect with equal
// margins on both sides. The result may extend beyond rect.
func Centered(rect image.Rectangle, size image.Point) image.Rectangle {
	rect = Normalize(rect)
	origin := rect.Min.Add(rect.Size().Sub(size).Div(2))
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

// Viewport computes where the logical screen is presented inside a window.
//
// screen is the logical canvas size and pixelSize the requested size of one
// logical pixel. Without cohesion the viewport is the largest rectangle with
// the aspect ratio of screen*pixelSize that fits the window. With cohesion it
// is screen scaled by the largest integer k that fits, so every logical pixel
// is k x k window pixels; a window smaller than screen falls back to the
// aspect fit. screenPixel is the presented size of one logical pixel.
func Viewport(window, screen, pixelSize image.Point, cohesion bool) (pos, size, screenPixel image.Point) {
	if screen.X <= 0 || screen.Y <= 0 || pixelSize.X <= 0 || pixelSize.Y <= 0 {
		return image.Point{}, image.Point{}, image.Point{}
	}
	logical := image.Pt(screen.X*pixelSize.X, screen.Y*pixelSize.Y)

	if k := min(window.X/screen.X, window.Y/screen.Y); cohesion && k >= 1 {
		size = screen.Mul(k)
		screenPixel = image.Pt(k, k)
	} else {
		size.X = window.X
		size.Y = window.X * logical.Y / logical.X
		if size.Y > window.Y {
			size.Y = window.Y
			size.X = window.Y * logical.X / logical.Y
		}
		screenPixel = image.Pt(size.X/screen.X, size.Y/screen.Y)
	}

	pos = Centered(image.Rectangle{Max: window}, size).Min
	return pos, size, screenPixel
}

// MapMouse converts a window-space position into logical screen coordinates
// clamped to [0, screen).
func MapMouse(mouse, window, viewPos, screen image.Point) image.Point {
	return image.Pt(
		mapAxis(mouse.X, window.X, viewPos.X, screen.X),
		mapAxis(mouse.Y, window.Y, viewPos.Y, screen.Y),
	)
}

func mapAxis(m, window, offset, screen int) int {
	span := window - 2*offset
	if span <= 0 || screen <= 0 {
		return 0
	}
	v := int(float64(m-offset) / float64(span) * float64(screen))
	if v < 0 {
		return 0
	}
	if v >= screen {
		return screen - 1
	}
	return v
}
