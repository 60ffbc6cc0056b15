package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rectangle{
		Min: image.Point{X: rect.Min.X + paddingPx, Y: rect.Min.Y + paddingPx},
		Max: image.Point{X: rect.Max.X - paddingPx, Y: rect.Max.Y - paddingPx},
	}
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Box returns a normalized rectangle from two corner points.
func Box(x0, y0, x1, y1 int) image.Rectangle {
	return Normalize(image.Rectangle{
		Min: image.Point{X: x0, Y: y0},
		Max: image.Point{X: x1, Y: y1},
	})
}

// CenteredSquare returns the box extending radius pixels from (cx, cy) on
// both axes.
func CenteredSquare(cx, cy, radius int) image.Rectangle {
	return Box(cx-radius, cy-radius, cx+radius, cy+radius)
}
