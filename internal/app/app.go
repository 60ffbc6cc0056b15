package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/rook-computer/iconforge/internal/files"
	"github.com/rook-computer/iconforge/internal/icon"
)

// DefaultSizes is the conventional extension icon set.
var DefaultSizes = []int{16, 32, 48, 128}

// Previewer displays a rendered icon on some local surface.
type Previewer interface {
	Show(img image.Image) error
}

// App walks the requested sizes through render and write, reporting every
// written path on Out.
type App struct {
	Renderer *icon.Renderer
	Writer   files.Writer
	Preview  Previewer
	Logger   Logger
	Out      io.Writer
}

func New(renderer *icon.Renderer, writer files.Writer) *App {
	return &App{Renderer: renderer, Writer: writer, Logger: NoopLogger{}, Out: io.Discard}
}

// Run renders every requested size and writes it to the output directory.
// An invalid size is reported and skipped so the remaining sizes still
// render; Run then returns the first such error. I/O failures abort
// immediately.
func (app *App) Run(ctx context.Context, sizes []int) error {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	if err := app.Writer.EnsureDir(); err != nil {
		app.Logger.Errorf("files", "output dir: %v", err)
		return err
	}

	var firstErr error
	var best image.Image
	bestSize := 0
	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := app.Renderer.Render(size)
		if err != nil {
			app.Logger.Errorf("render", "size %d: %v", size, err)
			if errors.Is(err, icon.ErrInvalidSize) {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			return err
		}
		path, err := app.Writer.Write(img, size)
		if err != nil {
			app.Logger.Errorf("files", "size %d: %v", size, err)
			return err
		}
		app.Logger.Infof("files", "wrote %s", path)
		fmt.Fprintf(app.Out, "created %s\n", path)
		if size > bestSize {
			best, bestSize = img, size
		}
	}

	// Preview is best-effort; a missing device never fails the run.
	if app.Preview != nil && best != nil {
		if err := app.Preview.Show(best); err != nil {
			app.Logger.Errorf("preview", "show failed: %v", err)
		}
	}
	return firstErr
}
