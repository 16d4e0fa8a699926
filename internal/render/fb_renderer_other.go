//go:build !linux

package render

import (
	"context"
	"errors"
	"image"
)

var errNoFramebuffer = errors.New("framebuffer backend requires linux")

// FBRenderer is only available on Linux.
type FBRenderer struct {
	softBuffer

	Device string
	Logger Logger
}

func NewFBRenderer() *FBRenderer { return &FBRenderer{} }

func (r *FBRenderer) Open(ctx context.Context, cfg WindowConfig) (image.Point, error) {
	return image.Point{}, errNoFramebuffer
}

func (r *FBRenderer) Close() error          { return nil }
func (r *FBRenderer) SetTitle(title string) {}
func (r *FBRenderer) DisplayFrame() error   { return errNoFramebuffer }
