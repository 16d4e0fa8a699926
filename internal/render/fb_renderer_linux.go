//go:build linux

package render

import (
	"context"
	"fmt"
	"image"

	fb "github.com/gonutz/framebuffer"

	"github.com/rook-computer/koi/internal/system"
)

// DefaultFBDevice is the framebuffer opened when FBRenderer.Device is empty.
const DefaultFBDevice = "/dev/fb0"

// FBRenderer presents frames on the Linux framebuffer. The window is the
// whole framebuffer; the requested window size is ignored.
type FBRenderer struct {
	softBuffer

	Device string
	Logger Logger
	// Console switches the VT to graphics mode while open. nil leaves the
	// console alone.
	Console *system.Console

	dev *fb.Device
}

func NewFBRenderer() *FBRenderer { return &FBRenderer{Console: &system.Console{}} }

func (r *FBRenderer) Open(ctx context.Context, cfg WindowConfig) (image.Point, error) {
	log := loggerOrNop(r.Logger)
	path := r.Device
	if path == "" {
		path = DefaultFBDevice
	}
	dev, err := fb.Open(path)
	if err != nil {
		return image.Point{}, fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	r.dev = dev
	bounds := dev.Bounds()
	log.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	if r.Console != nil {
		if r.Console.Logger == nil {
			r.Console.Logger = r.Logger
		}
		r.Console.Acquire()
	}

	size := bounds.Size()
	r.resize(size)
	return size, nil
}

func (r *FBRenderer) Close() error {
	if r.Console != nil {
		r.Console.Release()
	}
	if r.dev != nil {
		r.dev.Close()
		r.dev = nil
	}
	return nil
}

// SetTitle is a no-op: the framebuffer has no title bar.
func (r *FBRenderer) SetTitle(title string) {}

func (r *FBRenderer) DisplayFrame() error {
	if r.dev == nil || r.back == nil {
		return nil
	}
	blit(r.dev, r.dev.Bounds().Min, r.back)
	return nil
}
