package palette

import "github.com/gogpu/colorspace"

// Option configures rendering.
//
// Example:
//
//	img := palette.Strip(p, palette.WithCellSize(48), palette.WithColumns(4))
type Option func(*options)

// options holds optional rendering configuration.
type options struct {
	cellSize   int
	columns    int
	background colorspace.Argb
	workers    int
}

// defaultOptions returns the default rendering options.
func defaultOptions() options {
	return options{
		cellSize:   32,
		columns:    8,
		background: colorspace.Transparent,
		workers:    0, // GOMAXPROCS
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCellSize sets the edge length in pixels of one swatch cell.
// Values below 1 are ignored.
func WithCellSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cellSize = n
		}
	}
}

// WithColumns sets the number of swatch cells per row.
// Values below 1 are ignored.
func WithColumns(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.columns = n
		}
	}
}

// WithBackground sets the color of pixels not covered by a swatch.
func WithBackground(c colorspace.Space) Option {
	return func(o *options) {
		o.background = c.Argb()
	}
}

// WithWorkers sets the number of goroutines used to render planes.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
