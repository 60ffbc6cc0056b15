package icon

import (
	"image"
	"image/color"
	"image/draw"
)

// canvas is the square RGBA surface an icon is drawn into.
// Shape coordinates are inclusive bounding boxes: a rect from (0,0) to
// (3,3) covers 4x4 pixels. Canvas bounds stay half-open as usual.
type canvas struct {
	img *image.RGBA
}

func newCanvas(size int, background color.RGBA) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)
	return &canvas{img: img}
}

// fillRect fills the inclusive box, clamped to the canvas.
func (c *canvas) fillRect(box image.Rectangle, col color.RGBA) {
	bounds := c.img.Bounds()
	for y := box.Min.Y; y <= box.Max.Y; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := box.Min.X; x <= box.Max.X; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			c.img.SetRGBA(x, y, col)
		}
	}
}

// fillEllipse fills the ellipse inscribed in the inclusive box.
func (c *canvas) fillEllipse(box image.Rectangle, fill color.RGBA) {
	c.ellipse(box, fill, color.RGBA{}, 0)
}

// outlinedEllipse fills the ellipse and draws an outline ring of the given
// width just inside the box edge.
func (c *canvas) outlinedEllipse(box image.Rectangle, fill, outline color.RGBA, width int) {
	c.ellipse(box, fill, outline, width)
}

// ellipse decides inside/outside per pixel center, the same distance test
// every hard-edged raster generator uses. No anti-aliasing.
func (c *canvas) ellipse(box image.Rectangle, fill, outline color.RGBA, outlineWidth int) {
	cx := float64(box.Min.X+box.Max.X+1) / 2
	cy := float64(box.Min.Y+box.Max.Y+1) / 2
	rx := float64(box.Max.X-box.Min.X+1) / 2
	ry := float64(box.Max.Y-box.Min.Y+1) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	inx := rx - float64(outlineWidth)
	iny := ry - float64(outlineWidth)
	bounds := c.img.Bounds()
	for y := box.Min.Y; y <= box.Max.Y; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := box.Min.X; x <= box.Max.X; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if (dx*dx)/(rx*rx)+(dy*dy)/(ry*ry) > 1 {
				continue
			}
			col := fill
			if outlineWidth > 0 && (inx <= 0 || iny <= 0 || (dx*dx)/(inx*inx)+(dy*dy)/(iny*iny) > 1) {
				col = outline
			}
			c.img.SetRGBA(x, y, col)
		}
	}
}
