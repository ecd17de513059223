// Command colorconv converts colors between spaces and renders palette
// sheets.
//
// Usage:
//
//	colorconv -color "hsl(210, 65%, 40%)"
//	colorconv -plane 100 -scale 2 -output plane.png -open
//	colorconv -palette brand.yaml -output brand.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/pkg/browser"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/term"

	"github.com/gogpu/colorspace"
	"github.com/gogpu/colorspace/palette"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("colorconv: %v", err)
	}
}

// config holds the parsed command line.
type config struct {
	colors     []string
	plane      float64
	palette    string
	width      int
	height     int
	scale      int
	output     string
	open       bool
	verbose    bool
	forceColor bool
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("colorconv", flag.ContinueOnError)
	var (
		cfg      config
		colorArg string
	)
	fs.StringVar(&colorArg, "color", "", "color to convert (hex, name or functional notation)")
	fs.Float64Var(&cfg.plane, "plane", -1, "render an HSB hue/saturation plane at this brightness (0-100)")
	fs.StringVar(&cfg.palette, "palette", "", "render the swatches of a YAML palette file")
	fs.IntVar(&cfg.width, "width", 360, "plane width")
	fs.IntVar(&cfg.height, "height", 100, "plane height")
	fs.IntVar(&cfg.scale, "scale", 1, "integer upscale factor for rendered images")
	fs.StringVar(&cfg.output, "output", "colors.png", "output file")
	fs.BoolVar(&cfg.open, "open", false, "open the rendered image in the default viewer")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug messages to stderr")
	fs.BoolVar(&cfg.forceColor, "swatch", false, "print a color swatch even when stdout is not a terminal")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if colorArg != "" {
		cfg.colors = append(cfg.colors, colorArg)
	}
	cfg.colors = append(cfg.colors, fs.Args()...)
	if cfg.scale < 1 {
		return nil, fmt.Errorf("-scale must be at least 1, got %d", cfg.scale)
	}
	if len(cfg.colors) == 0 && cfg.plane < 0 && cfg.palette == "" {
		fs.Usage()
		return nil, errors.New("nothing to do: pass -color, -plane or -palette")
	}
	return &cfg, nil
}

func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	if cfg.verbose {
		colorspace.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	swatch := cfg.forceColor || isTerminal(stdout)
	for _, s := range cfg.colors {
		c, err := colorspace.Parse(s)
		if err != nil {
			return err
		}
		describe(stdout, c, swatch)
	}

	var pm *palette.Pixmap
	switch {
	case cfg.palette != "":
		p, err := palette.LoadFile(cfg.palette)
		if err != nil {
			return err
		}
		pm = palette.Strip(p)
	case cfg.plane >= 0:
		pm = palette.HueSaturationPlane(cfg.width, cfg.height, cfg.plane)
	default:
		return nil
	}

	if cfg.scale > 1 {
		pm = pm.Scale(pm.Width()*cfg.scale, pm.Height()*cfg.scale, xdraw.NearestNeighbor)
	}
	if err := pm.SavePNG(cfg.output); err != nil {
		return err
	}
	log.Printf("Saved %s (%dx%d)\n", cfg.output, pm.Width(), pm.Height())

	if cfg.open {
		return browser.OpenFile(cfg.output)
	}
	return nil
}

// describe prints c in every supported notation.
func describe(w io.Writer, c colorspace.Argb, swatch bool) {
	if swatch {
		fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm        \x1b[0m\n", c.R, c.G, c.B)
	}
	fmt.Fprintf(w, "hex   %s\n", c)
	fmt.Fprintf(w, "rgb   %s\n", colorspace.Convert[colorspace.Rgb](c))
	fmt.Fprintf(w, "rgbf  %s\n", colorspace.Convert[colorspace.RgbF[float64]](c))
	fmt.Fprintf(w, "hsl   %s\n", colorspace.Convert[colorspace.Hsl[float64]](c))
	fmt.Fprintf(w, "hsb   %s\n", colorspace.Convert[colorspace.Hsb[float64]](c))
	fmt.Fprintf(w, "cmyk  %s\n", colorspace.Convert[colorspace.Cmyk[float64]](c))
	fmt.Fprintf(w, "yuv   %s\n", colorspace.Convert[colorspace.Yuv](c))
	if name, ok := colorspace.NameOf(c); ok {
		fmt.Fprintf(w, "name  %s\n", name)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
