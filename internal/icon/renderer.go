package icon

import (
	"errors"
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/rook-computer/iconforge/internal/icon/layout"
)

// Style selects which emblem is drawn over the accent background.
type Style string

const (
	// StyleSimple draws a white disc with a blocky accent letter built
	// from two bars.
	StyleSimple Style = "simple"
	// StyleDetailed draws a dark-outlined accent disc, a white body and
	// two chat-box accents.
	StyleDetailed Style = "detailed"
	// StyleBadge draws a white disc with a single rendered letter.
	StyleBadge Style = "badge"
)

// ErrInvalidSize reports a non-positive requested icon size.
var ErrInvalidSize = errors.New("icon size must be positive")

const defaultLabel = "T"

// Config describes a renderer. The zero value selects the detailed style
// with the default palette.
type Config struct {
	Palette Palette
	Style   Style
	Label   string // badge style letter; defaults to "T"
	Smooth  bool   // supersample and downscale for softer edges
}

// Renderer produces square icons from a fixed palette. It is a pure
// transform: the same size always yields the same pixels. Construct with
// New; the zero value is not usable.
type Renderer struct {
	palette Palette
	style   Style
	label   string
	smooth  bool
	font    *truetype.Font // parsed once, badge style only
}

// New validates cfg and parses the badge font when needed, so missing
// drawing capability surfaces here instead of mid-render.
func New(cfg Config) (*Renderer, error) {
	if cfg.Style == "" {
		cfg.Style = StyleDetailed
	}
	switch cfg.Style {
	case StyleSimple, StyleDetailed, StyleBadge:
	default:
		return nil, fmt.Errorf("unknown icon style %q", cfg.Style)
	}
	if cfg.Palette == (Palette{}) {
		cfg.Palette = DefaultPalette()
	}
	if cfg.Label == "" {
		cfg.Label = defaultLabel
	}
	r := &Renderer{
		palette: cfg.Palette,
		style:   cfg.Style,
		label:   cfg.Label,
		smooth:  cfg.Smooth,
	}
	if cfg.Style == StyleBadge {
		fnt, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("badge font unavailable: %w", err)
		}
		r.font = fnt
	}
	return r, nil
}

// Render draws one size x size icon. Sizes below 16 may degenerate to
// zero-area shapes; that is accepted, only non-positive sizes fail.
func (r *Renderer) Render(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("render %d: %w", size, ErrInvalidSize)
	}
	if r.smooth {
		return r.renderSmooth(size)
	}
	return r.draw(size), nil
}

func (r *Renderer) draw(size int) *image.RGBA {
	c := newCanvas(size, r.palette.Accent)
	switch r.style {
	case StyleSimple:
		r.drawSimple(c, size)
	case StyleDetailed:
		r.drawDetailed(c, size)
	case StyleBadge:
		r.drawBadge(c, size)
	}
	return c.img
}

// drawSimple: white disc, then two accent bars forming the letter.
func (r *Renderer) drawSimple(c *canvas, size int) {
	center := size / 2
	radius := size / 3
	c.fillEllipse(layout.CenteredSquare(center, center, radius), r.palette.White)

	letter := size / 2
	letterX := center - letter/4
	letterY := center - letter/3

	// crossbar
	c.fillRect(layout.Box(letterX-letter/4, letterY, letterX+letter/4, letterY+letter/8), r.palette.Accent)
	// stem
	c.fillRect(layout.Box(letterX-letter/12, letterY, letterX+letter/12, letterY+letter/2), r.palette.Accent)
}

// drawDetailed: outlined disc, white body, two chat-box accents.
func (r *Renderer) drawDetailed(c *canvas, size int) {
	padding := size / 10
	outline := size / 32
	if outline < 1 {
		outline = 1
	}
	disc := layout.Inset(image.Rect(0, 0, size, size), padding)
	c.outlinedEllipse(disc, r.palette.Accent, r.palette.Dark, outline)

	c.fillRect(layout.Box(size/4, size/4, size*3/4, size*3/4), r.palette.White)

	boxW := size / 12
	boxH := size / 6
	boxY := size/2 - size/12
	leftX := size/2 - size/8
	rightX := size/2 + size/24
	c.fillRect(layout.Box(leftX, boxY, leftX+boxW, boxY+boxH), r.palette.Accent)
	c.fillRect(layout.Box(rightX, boxY, rightX+boxW, boxY+boxH), r.palette.Accent)
}
