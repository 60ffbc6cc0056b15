package files

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirIdempotent(t *testing.T) {
	w := Writer{Dir: filepath.Join(t.TempDir(), "public", "icons")}
	require.NoError(t, w.EnsureDir())
	require.NoError(t, w.EnsureDir())

	info, err := os.Stat(w.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteNamesAndDecodes(t *testing.T) {
	w := Writer{Dir: t.TempDir()}
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))

	path, err := w.Write(img, 16)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.Dir, "icon16.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 16, decoded.Bounds().Dx())
	assert.Equal(t, 16, decoded.Bounds().Dy())
}

func TestWriteMissingDirFails(t *testing.T) {
	w := Writer{Dir: filepath.Join(t.TempDir(), "does", "not", "exist")}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	_, err := w.Write(img, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "icon4.png")
}
