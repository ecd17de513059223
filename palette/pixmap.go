package palette

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/colorspace"
)

// Pixmap is a rectangular buffer of non-premultiplied RGBA pixels.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // R, G, B, A per pixel
}

// NewPixmap creates a transparent pixmap. Negative dimensions are treated
// as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c colorspace.Space) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.set((y*p.width+x)*4, c.Argb())
}

// GetPixel returns the color of a single pixel, or transparent when out of
// bounds.
func (p *Pixmap) GetPixel(x, y int) colorspace.Argb {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return colorspace.Transparent
	}
	i := (y*p.width + x) * 4
	return colorspace.NewArgb(p.data[i+3], p.data[i+0], p.data[i+1], p.data[i+2])
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c colorspace.Space) {
	argb := c.Argb()
	for i := 0; i < len(p.data); i += 4 {
		p.set(i, argb)
	}
}

// FillRect fills the rectangle [x0, x1) × [y0, y1), clipped to the pixmap.
func (p *Pixmap) FillRect(x0, y0, x1, y1 int, c colorspace.Space) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, p.width), min(y1, p.height)
	argb := c.Argb()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p.set((y*p.width+x)*4, argb)
		}
	}
}

func (p *Pixmap) set(i int, c colorspace.Argb) {
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// ToImage copies the pixmap into an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.SetPixel(x, y, colorspace.FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm
}

// Scale resamples the pixmap to width × height using interp, or Catmull-Rom
// when interp is nil.
func (p *Pixmap) Scale(width, height int, interp xdraw.Interpolator) *Pixmap {
	if interp == nil {
		interp = xdraw.CatmullRom
	}
	dst := image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	interp.Scale(dst, dst.Bounds(), p.ToImage(), p.Bounds(), xdraw.Src, nil)
	return &Pixmap{width: dst.Rect.Dx(), height: dst.Rect.Dy(), data: dst.Pix}
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
