//go:build linux

package system

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// consolePaths are tried in order: the controlling terminal, then the active VT.
var consolePaths = []string{"/dev/tty", "/dev/tty0"}

// SetGraphicsMode switches the active console to graphics mode so the kernel
// stops drawing its text console and cursor over the framebuffer.
func SetGraphicsMode() error { return setConsoleMode(kdGraphics) }

// RestoreTextMode puts the console back into text mode.
func RestoreTextMode() error { return setConsoleMode(kdText) }

func setConsoleMode(mode int) error {
	name := "KD_TEXT"
	if mode == kdGraphics {
		name = "KD_GRAPHICS"
	}
	var errs []error
	for _, p := range consolePaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			errs = append(errs, fmt.Errorf("open %s: %w", p, err))
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s on %s: %w", name, p, err))
			continue
		}
		return nil
	}
	return errors.Join(errs...)
}

// HideCursor writes the ANSI escape hiding the cursor to the active VT.
func HideCursor() error { return writeVT("\x1b[?25l") }
func ShowCursor() error { return writeVT("\x1b[?25h") }

func writeVT(s string) error {
	var errs []error
	for _, p := range consolePaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		_, err = f.WriteString(s)
		_ = f.Close()
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("write VT: %w", errors.Join(errs...))
}
