package icon

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Supersampling factor for smooth rendering.
const smoothScale = 4

// renderSmooth draws at smoothScale times the target size and downsamples
// with CatmullRom, trading hard raster edges for filtered ones.
func (r *Renderer) renderSmooth(size int) (*image.RGBA, error) {
	big := r.draw(size * smoothScale)
	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), xdraw.Src, nil)
	return out, nil
}
