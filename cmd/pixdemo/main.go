// Command pixdemo renders the built-in demo scene, or a TOML/YAML scene
// file, to an image and optionally previews it in the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/internal/termview"
	"github.com/gogpu/pixbuf/scene"
)

const pipeName = "-"

type config struct {
	scenePath string
	output    string
	format    string
	scale     int
	preview   bool
	cols      int
	dump      string
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("pixdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.scenePath, "scene", "", "scene file (.toml, .yaml); empty renders the built-in demo")
	fs.StringVar(&cfg.output, "output", "pixdemo.png", "output image (.png, .bmp, .gif, .jpg); - writes to stdout")
	fs.StringVar(&cfg.format, "format", "png", "image format when writing to stdout")
	fs.IntVar(&cfg.scale, "scale", 1, "whole-number enlargement of the output")
	fs.BoolVar(&cfg.preview, "preview", false, "print a preview to the terminal")
	fs.IntVar(&cfg.cols, "cols", 0, "preview width in cells; 0 uses the terminal width")
	fs.StringVar(&cfg.dump, "dump-scene", "", "also write the scene to this .toml or .yaml file")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug output to stderr")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.scale < 1 {
		return cfg, fmt.Errorf("scale must be at least 1, got %d", cfg.scale)
	}
	return cfg, nil
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("pixdemo: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.verbose {
		pixbuf.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	sc := scene.Demo()
	if cfg.scenePath != "" {
		if sc, err = scene.Load(cfg.scenePath); err != nil {
			return err
		}
	}
	if cfg.dump != "" {
		if err := sc.Save(cfg.dump); err != nil {
			return err
		}
	}

	surface, err := sc.NewSurface()
	if err != nil {
		return err
	}
	img := surface.CopyToImage()
	if cfg.scale > 1 {
		img = img.Scale(pixbuf.NearestNeighbour(cfg.scale, cfg.scale))
	}

	previewOut := stdout
	if cfg.output == pipeName {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		if err := img.Encode(stdout, cfg.format); err != nil {
			return err
		}
		previewOut = stderr
	} else {
		if err := img.Save(cfg.output); err != nil {
			return err
		}
		pixbuf.Logger().Info("pixdemo: saved", "path", cfg.output, "width", img.Width(), "height", img.Height())
	}

	if cfg.preview {
		opts := termview.Options{
			MaxCols:    previewCols(cfg.cols, previewOut),
			Background: pixbuf.Black,
			Renderer:   lipgloss.NewRenderer(previewOut),
		}
		if _, err := fmt.Fprintln(previewOut, termview.Render(surface, opts)); err != nil {
			return err
		}
	}
	return nil
}

// previewCols returns the requested width, else the terminal width, else 80.
func previewCols(requested int, w io.Writer) int {
	if requested > 0 {
		return requested
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
