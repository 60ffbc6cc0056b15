//go:build linux

package preview

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	fb "github.com/gonutz/framebuffer"
)

const fbDevice = "/dev/fb0"

// Framebuffer blits an icon to the framebuffer, centered and scaled, and
// holds it on screen briefly.
type Framebuffer struct {
	Hold   time.Duration
	Logger Logger
}

// Available reports whether the framebuffer device exists, so callers can
// fail fast before any rendering starts.
func Available() error {
	if _, err := os.Stat(fbDevice); err != nil {
		return fmt.Errorf("framebuffer unavailable at %s: %w", fbDevice, err)
	}
	return nil
}

func (p Framebuffer) Show(img image.Image) error {
	dev, err := fb.Open(fbDevice)
	if err != nil {
		return fmt.Errorf("open %s: %w", fbDevice, err)
	}
	defer dev.Close()

	// Switch the console to KD_GRAPHICS to suppress the hardware cursor
	// while the icon is on screen.
	if err := setGraphicsMode(); err != nil && p.Logger != nil {
		p.Logger.Errorf("preview", "KD_GRAPHICS failed: %v", err)
	}
	_ = hideCursor()
	defer func() { _ = showCursor(); _ = restoreTextMode() }()

	blit(dev, img)

	hold := p.Hold
	if hold <= 0 {
		hold = defaultHold
	}
	if p.Logger != nil {
		bounds := dev.Bounds()
		p.Logger.Infof("preview", "framebuffer %dx%d, holding %s", bounds.Dx(), bounds.Dy(), hold)
	}
	time.Sleep(hold)
	return nil
}

// blit centers img on the framebuffer, nearest-neighbor scaled up to half
// the shorter framebuffer edge.
func blit(dev *fb.Device, img image.Image) {
	bounds := dev.Bounds()
	fbWidth := bounds.Dx()
	fbHeight := bounds.Dy()
	side := fbWidth
	if fbHeight < side {
		side = fbHeight
	}
	side /= 2
	if side < 1 {
		return
	}
	x0 := bounds.Min.X + (fbWidth-side)/2
	y0 := bounds.Min.Y + (fbHeight-side)/2
	src := img.Bounds()
	for y := 0; y < side; y++ {
		sy := src.Min.Y + (y*src.Dy())/side
		for x := 0; x < side; x++ {
			sx := src.Min.X + (x*src.Dx())/side
			r, g, b, _ := img.At(sx, sy).RGBA()
			dev.Set(x0+x, y0+y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF})
		}
	}
}
