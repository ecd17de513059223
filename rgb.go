package colorspace

import "fmt"

// Rgb is a color with 8-bit red, green, blue and alpha channels.
// Rgb values are comparable; == is structural equality.
type Rgb struct {
	R, G, B, A uint8
}

// NewRgb creates an opaque Rgb.
func NewRgb(r, g, b uint8) Rgb {
	return Rgb{R: r, G: g, B: b, A: 255}
}

// NewRgba creates an Rgb with the given alpha.
func NewRgba(r, g, b, a uint8) Rgb {
	return Rgb{R: r, G: g, B: b, A: a}
}

// Argb implements Space.
func (c Rgb) Argb() Argb {
	return Argb{A: c.A, R: c.R, G: c.G, B: c.B}
}

// FromArgb implements Converter.
func (Rgb) FromArgb(c Argb) Rgb {
	return Rgb{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Equal reports whether every channel of c and o matches exactly. Unlike
// VisuallyEqual, two transparent colors with different RGB are not equal.
func (c Rgb) Equal(o Rgb) bool { return c == o }

// String renders c in CSS notation: "rgb(r, g, b)" when opaque, otherwise
// "rgba(r, g, b, a)" with a = A/255.
func (c Rgb) String() string {
	if c.A == 255 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatReal(float64(c.A)/255))
}
