package palette

import (
	"github.com/gogpu/colorspace"
	"github.com/gogpu/colorspace/internal/parallel"
)

// HueSaturationPlane renders an HSB sheet at the given brightness (percent):
// hue grows from 0° at the left edge towards 360°, saturation falls from
// 100% on the top row to 0% on the bottom row.
func HueSaturationPlane(width, height int, brightness float64, opts ...Option) *Pixmap {
	o := newOptions(opts)
	pm := NewPixmap(width, height)
	if pm.width == 0 || pm.height == 0 {
		return pm
	}

	parallel.Bands(pm.height, o.workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			sat := 100.0
			if pm.height > 1 {
				sat = 100 * (1 - float64(y)/float64(pm.height-1))
			}
			for x := 0; x < pm.width; x++ {
				hue := float64(x) * 360 / float64(pm.width)
				pm.SetPixel(x, y, colorspace.NewHsb(hue, sat, brightness))
			}
		}
	})

	colorspace.Logger().Debug("palette: rendered plane",
		"width", width, "height", height, "brightness", brightness)
	return pm
}

// Strip renders the swatches of p as a grid of square cells, row by row in
// palette order. Swatch colors replace the background; they are not blended.
// An empty palette yields a single background cell.
func Strip(p *Palette, opts ...Option) *Pixmap {
	o := newOptions(opts)
	n := len(p.Swatches)
	if n == 0 {
		pm := NewPixmap(o.cellSize, o.cellSize)
		pm.Clear(o.background)
		return pm
	}

	cols := min(o.columns, n)
	rows := (n + cols - 1) / cols
	pm := NewPixmap(cols*o.cellSize, rows*o.cellSize)
	pm.Clear(o.background)

	for i, s := range p.Swatches {
		x := (i % cols) * o.cellSize
		y := (i / cols) * o.cellSize
		pm.FillRect(x, y, x+o.cellSize, y+o.cellSize, s.Color)
	}

	colorspace.Logger().Debug("palette: rendered strip",
		"name", p.Name, "swatches", n, "columns", cols, "rows", rows)
	return pm
}
