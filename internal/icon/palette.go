package icon

import "image/color"

// Palette is the fixed set of colors every icon is drawn from.
// Passed by value so a renderer cannot share mutable color state.
type Palette struct {
	Accent color.RGBA
	Dark   color.RGBA
	White  color.RGBA
}

// DefaultPalette returns the stock brand colors.
func DefaultPalette() Palette {
	return Palette{
		Accent: color.RGBA{R: 0x91, G: 0x46, B: 0xFF, A: 0xFF}, // #9146ff
		Dark:   color.RGBA{R: 0x18, G: 0x18, B: 0x1B, A: 0xFF}, // #18181b
		White:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, // #ffffff
	}
}
