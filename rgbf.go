package colorspace

import (
	"fmt"

	"github.com/gogpu/colorspace/internal/numeric"
)

// RgbF represents a color with red, green, blue and alpha components.
// Each component is nominally in the range [0, 1]; values outside it are
// kept as given and only saturated when converting to Argb.
type RgbF[T numeric.Float] struct {
	R, G, B, A T
}

// NewRgbF creates an opaque color from RGB components.
func NewRgbF[T numeric.Float](r, g, b T) RgbF[T] {
	return RgbF[T]{R: r, G: g, B: b, A: 1}
}

// NewRgbaF creates a color from RGBA components.
func NewRgbaF[T numeric.Float](r, g, b, a T) RgbF[T] {
	return RgbF[T]{R: r, G: g, B: b, A: a}
}

// Argb implements Space. Each channel is scaled by 255, rounded and
// saturated.
func (c RgbF[T]) Argb() Argb {
	return Argb{
		A: numeric.UnitToByte(c.A),
		R: numeric.UnitToByte(c.R),
		G: numeric.UnitToByte(c.G),
		B: numeric.UnitToByte(c.B),
	}
}

// FromArgb implements Converter.
func (RgbF[T]) FromArgb(c Argb) RgbF[T] {
	return RgbF[T]{
		R: numeric.ByteToUnit[T](c.R),
		G: numeric.ByteToUnit[T](c.G),
		B: numeric.ByteToUnit[T](c.B),
		A: numeric.ByteToUnit[T](c.A),
	}
}

// Equal reports whether every component of c and o is almost equal.
func (c RgbF[T]) Equal(o RgbF[T]) bool {
	return numeric.AlmostEqual(c.R, o.R) &&
		numeric.AlmostEqual(c.G, o.G) &&
		numeric.AlmostEqual(c.B, o.B) &&
		numeric.AlmostEqual(c.A, o.A)
}

// Premultiply returns a premultiplied color.
func (c RgbF[T]) Premultiply() RgbF[T] {
	return RgbF[T]{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Unpremultiply returns an unpremultiplied color.
func (c RgbF[T]) Unpremultiply() RgbF[T] {
	if c.A == 0 {
		return RgbF[T]{}
	}
	return RgbF[T]{
		R: c.R / c.A,
		G: c.G / c.A,
		B: c.B / c.A,
		A: c.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c RgbF[T]) Lerp(other RgbF[T], t T) RgbF[T] {
	return RgbF[T]{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// String renders c as CSS percentages: "rgb(r%, g%, b%)" or
// "rgba(r%, g%, b%, a)".
func (c RgbF[T]) String() string {
	r := formatReal(roundTo(float64(c.R)*100, 2))
	g := formatReal(roundTo(float64(c.G)*100, 2))
	b := formatReal(roundTo(float64(c.B)*100, 2))
	if isOpaque(c.A) {
		return fmt.Sprintf("rgb(%s%%, %s%%, %s%%)", r, g, b)
	}
	return fmt.Sprintf("rgba(%s%%, %s%%, %s%%, %s)", r, g, b, formatReal(float64(c.A)))
}
