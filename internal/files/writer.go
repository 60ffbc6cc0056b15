package files

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Writer persists rendered icons under a single output directory using the
// icon<size>.png naming convention.
type Writer struct {
	Dir string
}

// DefaultDir resolves the conventional public/icons directory next to the
// running executable, falling back to the working directory.
func DefaultDir() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("public", "icons")
	}
	return filepath.Join(filepath.Dir(exe), "public", "icons")
}

// EnsureDir creates the output directory. Safe to call repeatedly.
func (w Writer) EnsureDir() error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", w.Dir, err)
	}
	return nil
}

// Write encodes img as icon<size>.png under Dir and returns the path it
// wrote.
func (w Writer) Write(img image.Image, size int) (string, error) {
	path := filepath.Join(w.Dir, fmt.Sprintf("icon%d.png", size))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
