package colorspace

import (
	"fmt"

	"github.com/gogpu/colorspace/internal/numeric"
)

// Hsl is a color in the HSL model. H is the hue in degrees [0, 360), S the
// saturation and L the lightness in percent [0, 100], A the alpha in [0, 1].
type Hsl[T numeric.Float] struct {
	H, S, L, A T
}

// NewHsl creates an opaque Hsl.
func NewHsl[T numeric.Float](h, s, l T) Hsl[T] {
	return Hsl[T]{H: h, S: s, L: l, A: 1}
}

// NewHsla creates an Hsl with the given alpha.
func NewHsla[T numeric.Float](h, s, l, a T) Hsl[T] {
	return Hsl[T]{H: h, S: s, L: l, A: a}
}

// FromArgb implements Converter. Grays get hue 0 and saturation 0.
func (Hsl[T]) FromArgb(c Argb) Hsl[T] {
	r := numeric.ByteToUnit[T](c.R)
	g := numeric.ByteToUnit[T](c.G)
	b := numeric.ByteToUnit[T](c.B)
	lo, hi := numeric.MinMax3(r, g, b)
	delta := hi - lo
	l := (hi + lo) / 2

	out := Hsl[T]{L: l * 100, A: numeric.ByteToUnit[T](c.A)}
	if numeric.AlmostZero(delta) {
		return out
	}

	var s T
	if l < 0.5 {
		s = delta / (hi + lo)
	} else {
		s = delta / (2 - hi - lo)
	}

	dr := hueDelta(hi, r, delta)
	dg := hueDelta(hi, g, delta)
	db := hueDelta(hi, b, delta)

	var h T
	switch hi {
	case r:
		h = db - dg
	case g:
		h = T(1)/3 + dr - db
	default:
		h = T(2)/3 + dg - dr
	}
	h = numeric.Wrap(h, 0, 1)

	out.H = h * 360
	out.S = s * 100
	return out
}

// hueDelta is the distance of channel from the maximum, normalized by delta
// and centered on half a sector.
func hueDelta[T numeric.Float](hi, channel, delta T) T {
	return (hi-channel)/6/delta + delta/2/delta
}

// Argb implements Space. The hue wraps; saturation and lightness outside
// [0, 100] saturate in the final quantization.
func (c Hsl[T]) Argb() Argb {
	r, g, b := c.rgb()
	return Argb{
		A: numeric.UnitToByte(c.A),
		R: numeric.UnitToByte(r),
		G: numeric.UnitToByte(g),
		B: numeric.UnitToByte(b),
	}
}

// rgb returns the unit-range RGB triple of c.
func (c Hsl[T]) rgb() (r, g, b T) {
	s := c.S / 100
	l := c.L / 100
	if numeric.AlmostZero(s) {
		return l, l, l
	}

	h := numeric.Wrap(c.H, 0, 360) / 360

	var v2 T
	if l < 0.5 {
		v2 = l + l*s
	} else {
		v2 = l + s - l*s
	}
	v1 := 2*l - v2

	return hueToRGB(v1, v2, h+T(1)/3), hueToRGB(v1, v2, h), hueToRGB(v1, v2, h-T(1)/3)
}

// hueToRGB evaluates one channel of the HSL model at hue position vh.
func hueToRGB[T numeric.Float](v1, v2, vh T) T {
	vh = numeric.Wrap(vh, 0, 1)
	switch {
	case 6*vh < 1:
		return v1 + (v2-v1)*6*vh
	case 2*vh < 1:
		return v2
	case 3*vh < 2:
		return v1 + (v2-v1)*(T(2)/3-vh)*6
	default:
		return v1
	}
}

// Equal reports whether every component of c and o is almost equal.
func (c Hsl[T]) Equal(o Hsl[T]) bool {
	return numeric.AlmostEqual(c.H, o.H) &&
		numeric.AlmostEqual(c.S, o.S) &&
		numeric.AlmostEqual(c.L, o.L) &&
		numeric.AlmostEqual(c.A, o.A)
}

// String renders c in CSS notation: "hsl(H, S%, L%)", or "hsla(H, S%, L%, A)"
// when c is translucent. H, S and L are rounded to integers.
func (c Hsl[T]) String() string {
	h, s, l := displayInt(c.H), displayInt(c.S), displayInt(c.L)
	if isOpaque(c.A) {
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", h, s, l)
	}
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", h, s, l, formatReal(float64(c.A)))
}
