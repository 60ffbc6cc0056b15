package icon

import (
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/iconforge/internal/icon/layout"
)

// drawBadge renders the configured label centered inside a white disc.
// The face is built per size; freetype rasterization is deterministic, so
// repeated renders stay byte-identical.
func (r *Renderer) drawBadge(c *canvas, size int) {
	center := size / 2
	radius := size / 3
	c.fillEllipse(layout.CenteredSquare(center, center, radius), r.palette.White)

	face := truetype.NewFace(r.font, &truetype.Options{
		Size:    float64(size) / 2,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(r.palette.Accent),
		Face: face,
	}
	width := drawer.MeasureString(r.label).Ceil()
	metrics := face.Metrics()
	baseline := center + (metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	drawer.Dot = fixed.P((size-width)/2, baseline)
	drawer.DrawString(r.label)
}
