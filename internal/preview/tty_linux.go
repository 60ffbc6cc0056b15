//go:build linux

package preview

import (
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

func setGraphicsMode() error { return setConsoleMode(kdGraphics) }
func restoreTextMode() error { return setConsoleMode(kdText) }

// setConsoleMode targets the active VT, preferring /dev/tty with a
// /dev/tty0 fallback.
func setConsoleMode(mode int) error {
	var lastErr error
	for _, p := range []string{"/dev/tty", "/dev/tty0"} {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE on %s: %w", p, err)
			continue
		}
		return nil
	}
	return lastErr
}

// HideCursor/ShowCursor write the ANSI escapes to the active VT.
func hideCursor() error { return writeVT("\x1b[?25l") }
func showCursor() error { return writeVT("\x1b[?25h") }

func writeVT(s string) error {
	var lastErr error
	for _, p := range []string{"/dev/tty", "/dev/tty0"} {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return fmt.Errorf("write VT failed: %v", lastErr)
	}
	return fmt.Errorf("write VT failed: unknown error")
}
