package colorspace

import (
	"fmt"
	"math"

	"github.com/gogpu/colorspace/internal/numeric"
)

// Hsb is a color in the HSB (HSV) model. H is the hue in degrees [0, 360),
// S the saturation and B the brightness in percent [0, 100], A the alpha in
// [0, 1].
type Hsb[T numeric.Float] struct {
	H, S, B, A T
}

// NewHsb creates an opaque Hsb.
func NewHsb[T numeric.Float](h, s, b T) Hsb[T] {
	return Hsb[T]{H: h, S: s, B: b, A: 1}
}

// NewHsba creates an Hsb with the given alpha.
func NewHsba[T numeric.Float](h, s, b, a T) Hsb[T] {
	return Hsb[T]{H: h, S: s, B: b, A: a}
}

// FromArgb implements Converter. Grays, including black, get hue 0 and
// saturation 0.
func (Hsb[T]) FromArgb(c Argb) Hsb[T] {
	r := numeric.ByteToUnit[T](c.R)
	g := numeric.ByteToUnit[T](c.G)
	b := numeric.ByteToUnit[T](c.B)
	lo, hi := numeric.MinMax3(r, g, b)
	delta := hi - lo

	out := Hsb[T]{B: hi * 100, A: numeric.ByteToUnit[T](c.A)}
	if numeric.AlmostZero(hi) || numeric.AlmostZero(delta) {
		return out
	}

	out.S = delta / hi * 100

	var sector T
	switch hi {
	case r:
		sector = (g - b) / delta
	case g:
		sector = 2 + (b-r)/delta
	default:
		sector = 4 + (r-g)/delta
	}
	if sector < 0 {
		sector += 6
	}
	out.H = sector * 60
	return out
}

// Argb implements Space. The hue wraps; saturation and brightness outside
// [0, 100] saturate in the final quantization.
func (c Hsb[T]) Argb() Argb {
	r, g, b := c.rgb()
	return Argb{
		A: numeric.UnitToByte(c.A),
		R: numeric.UnitToByte(r),
		G: numeric.UnitToByte(g),
		B: numeric.UnitToByte(b),
	}
}

// rgb returns the unit-range RGB triple of c.
func (c Hsb[T]) rgb() (r, g, b T) {
	s := c.S / 100
	v := c.B / 100
	if numeric.AlmostZero(s) {
		return v, v, v
	}

	pos := numeric.Wrap(c.H, 0, 360) / 60
	whole := T(math.Floor(float64(pos)))
	frac := pos - whole

	p := v * (1 - s)
	q := v * (1 - s*frac)
	t := v * (1 - s*(1-frac))

	switch int(whole) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// Equal reports whether every component of c and o is almost equal.
func (c Hsb[T]) Equal(o Hsb[T]) bool {
	return numeric.AlmostEqual(c.H, o.H) &&
		numeric.AlmostEqual(c.S, o.S) &&
		numeric.AlmostEqual(c.B, o.B) &&
		numeric.AlmostEqual(c.A, o.A)
}

// String renders c as "hsb(H, S%, B%)" or "hsba(H, S%, B%, A)", with H, S
// and B rounded to integers.
func (c Hsb[T]) String() string {
	h, s, b := displayInt(c.H), displayInt(c.S), displayInt(c.B)
	if isOpaque(c.A) {
		return fmt.Sprintf("hsb(%s, %s%%, %s%%)", h, s, b)
	}
	return fmt.Sprintf("hsba(%s, %s%%, %s%%, %s)", h, s, b, formatReal(float64(c.A)))
}
