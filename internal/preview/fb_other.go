//go:build !linux

package preview

import (
	"errors"
	"image"
	"time"
)

var errUnsupported = errors.New("framebuffer preview is only supported on linux")

// Framebuffer is a stub on non-Linux platforms; it keeps builds working
// but reports itself unavailable.
type Framebuffer struct {
	Hold   time.Duration
	Logger Logger
}

func Available() error { return errUnsupported }

func (p Framebuffer) Show(img image.Image) error { return errUnsupported }
