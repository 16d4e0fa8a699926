package canvas

import (
	"errors"

	"github.com/rook-computer/koi/internal/pixel"
	"github.com/skip2/go-qrcode"
)

var ErrEmptyPayload = errors.New("qr payload is empty")

// FromQRCode renders payload as a QR code sprite with one canvas pixel per module,
// including the quiet zone.
func FromQRCode(payload string, fg, bg pixel.Color) (*Canvas, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	bitmap := qrCode.Bitmap()
	size := len(bitmap)
	c := New(size, size)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				c.Set(x, y, fg)
			} else {
				c.Set(x, y, bg)
			}
		}
	}
	return c, nil
}
