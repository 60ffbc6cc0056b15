package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rook-computer/iconforge/internal/app"
	"github.com/rook-computer/iconforge/internal/files"
	"github.com/rook-computer/iconforge/internal/icon"
	"github.com/rook-computer/iconforge/internal/preview"
)

func main() {
	// Flags
	outDir := flag.String("out", "", "output directory (default: public/icons next to the executable)")
	style := flag.String("style", string(icon.StyleDetailed), "icon style: simple, detailed or badge")
	sizesFlag := flag.String("sizes", "", "comma-separated icon sizes (default: 16,32,48,128)")
	label := flag.String("label", "", "letter for the badge style (default: T)")
	smooth := flag.Bool("smooth", false, "supersample and downscale for softer edges")
	showPreview := flag.Bool("preview", false, "show the largest icon on the framebuffer after rendering")
	debug := flag.Bool("debug", false, "enable debug logging to ./iconforge-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via ICONFORGE_STDIO_LOG")
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack
	// traces) to a file so failures in headless runs stay diagnosable.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("ICONFORGE_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./iconforge-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Println("bad -sizes:", err)
		os.Exit(1)
	}

	renderer, err := icon.New(icon.Config{
		Style:  icon.Style(*style),
		Label:  *label,
		Smooth: *smooth,
	})
	if err != nil {
		fmt.Println("renderer setup error:", err)
		os.Exit(1)
	}

	dir := *outDir
	if dir == "" {
		dir = files.DefaultDir()
	}

	a := app.New(renderer, files.Writer{Dir: dir})
	a.Logger = logger
	a.Out = os.Stdout
	if *showPreview {
		if err := preview.Available(); err != nil {
			fmt.Println("preview disabled:", err)
		} else {
			a.Preview = preview.Framebuffer{Logger: logger}
		}
	}

	if err := a.Run(context.Background(), sizes); err != nil {
		fmt.Println("render error:", err)
		os.Exit(1)
	}
}

func parseSizes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
