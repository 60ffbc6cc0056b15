package icon

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSizes = []int{16, 32, 48, 128}

func encodePNG(t *testing.T, r *Renderer, size int) []byte {
	t.Helper()
	img, err := r.Render(size)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRenderDimensions(t *testing.T) {
	for _, style := range []Style{StyleSimple, StyleDetailed, StyleBadge} {
		r, err := New(Config{Style: style})
		require.NoError(t, err)
		for _, size := range testSizes {
			img, err := r.Render(size)
			require.NoError(t, err)
			assert.Equal(t, size, img.Bounds().Dx(), "style %s size %d width", style, size)
			assert.Equal(t, size, img.Bounds().Dy(), "style %s size %d height", style, size)
		}
	}
}

func TestRenderInvalidSize(t *testing.T) {
	r, err := New(Config{})
	require.NoError(t, err)
	for _, size := range []int{0, -1} {
		img, err := r.Render(size)
		assert.Nil(t, img)
		assert.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, cfg := range []Config{
		{Style: StyleSimple},
		{Style: StyleDetailed},
		{Style: StyleBadge},
		{Style: StyleDetailed, Smooth: true},
	} {
		r, err := New(cfg)
		require.NoError(t, err)
		first := encodePNG(t, r, 48)
		second := encodePNG(t, r, 48)
		assert.Equal(t, first, second, "style %s smooth=%v", cfg.Style, cfg.Smooth)
	}
}

func TestSimpleCornersOpaqueAccent(t *testing.T) {
	r, err := New(Config{Style: StyleSimple})
	require.NoError(t, err)
	pal := DefaultPalette()
	for _, size := range testSizes {
		img, err := r.Render(size)
		require.NoError(t, err)
		for _, pt := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
			got := img.RGBAAt(pt[0], pt[1])
			assert.Equal(t, pal.Accent, got, "size %d corner %v", size, pt)
		}
	}
}

func TestSimpleEmblemPixels(t *testing.T) {
	r, err := New(Config{Style: StyleSimple})
	require.NoError(t, err)
	pal := DefaultPalette()
	img, err := r.Render(128)
	require.NoError(t, err)

	// The letter anchor sits left of center, so the disc center is clear
	// of both bars.
	assert.Equal(t, pal.White, img.RGBAAt(64, 64))
	assert.Equal(t, pal.White, img.RGBAAt(70, 64))
	// Stem of the letter.
	assert.Equal(t, pal.Accent, img.RGBAAt(48, 64))
	// Crossbar left of the stem.
	assert.Equal(t, pal.Accent, img.RGBAAt(40, 47))
}

func TestDetailedEmblemPixels(t *testing.T) {
	r, err := New(Config{Style: StyleDetailed})
	require.NoError(t, err)
	pal := DefaultPalette()
	img, err := r.Render(128)
	require.NoError(t, err)

	// Padding leaves the background at the origin.
	assert.Equal(t, pal.Accent, img.RGBAAt(0, 0))
	// Disc outline near the top edge.
	assert.Equal(t, pal.Dark, img.RGBAAt(64, 13))
	// Disc fill between outline and body.
	assert.Equal(t, pal.Accent, img.RGBAAt(64, 20))
	// White body at the center, between the chat boxes.
	assert.Equal(t, pal.White, img.RGBAAt(64, 64))
	// Left chat box.
	assert.Equal(t, pal.Accent, img.RGBAAt(50, 60))
}

func TestRenderDegenerateSmallSize(t *testing.T) {
	for _, style := range []Style{StyleSimple, StyleDetailed, StyleBadge} {
		r, err := New(Config{Style: style})
		require.NoError(t, err)
		img, err := r.Render(4)
		require.NoError(t, err, "style %s", style)
		assert.Equal(t, 4, img.Bounds().Dx())
	}
}

func TestSmoothPreservesDimensions(t *testing.T) {
	r, err := New(Config{Style: StyleSimple, Smooth: true})
	require.NoError(t, err)
	for _, size := range testSizes {
		img, err := r.Render(size)
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
		assert.Equal(t, size, img.Bounds().Dy())
	}
}

func TestNewRejectsUnknownStyle(t *testing.T) {
	_, err := New(Config{Style: Style("hexagon")})
	assert.Error(t, err)
}

func TestNewDefaults(t *testing.T) {
	r, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, StyleDetailed, r.style)
	assert.Equal(t, DefaultPalette(), r.palette)
}

func TestBadgeCustomLabel(t *testing.T) {
	r, err := New(Config{Style: StyleBadge, Label: "Q"})
	require.NoError(t, err)
	img, err := r.Render(32)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())

	base, err := New(Config{Style: StyleBadge})
	require.NoError(t, err)
	other, err := base.Render(32)
	require.NoError(t, err)
	assert.NotEqual(t, img.Pix, other.Pix, "different labels should draw differently")
}
