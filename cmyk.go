package colorspace

import (
	"fmt"

	"github.com/gogpu/colorspace/internal/numeric"
)

// Cmyk is a color in the subtractive CMYK model. Every component, including
// alpha, is in [0, 1]. This is the naive device transform, not a profiled one.
type Cmyk[T numeric.Float] struct {
	C, M, Y, K, A T
}

// NewCmyk creates an opaque Cmyk.
func NewCmyk[T numeric.Float](c, m, y, k T) Cmyk[T] {
	return Cmyk[T]{C: c, M: m, Y: y, K: k, A: 1}
}

// NewCmyka creates a Cmyk with the given alpha.
func NewCmyka[T numeric.Float](c, m, y, k, a T) Cmyk[T] {
	return Cmyk[T]{C: c, M: m, Y: y, K: k, A: a}
}

// FromArgb implements Converter. Pure black has K = 1 and C = M = Y = 0.
func (Cmyk[T]) FromArgb(c Argb) Cmyk[T] {
	r := numeric.ByteToUnit[T](c.R)
	g := numeric.ByteToUnit[T](c.G)
	b := numeric.ByteToUnit[T](c.B)
	_, hi := numeric.MinMax3(r, g, b)

	out := Cmyk[T]{K: 1 - hi, A: numeric.ByteToUnit[T](c.A)}
	rest := 1 - out.K
	if numeric.AlmostZero(rest) {
		out.K = 1
		return out
	}
	out.C = (1 - r - out.K) / rest
	out.M = (1 - g - out.K) / rest
	out.Y = (1 - b - out.K) / rest
	return out
}

// Argb implements Space. Components outside [0, 1] saturate.
func (c Cmyk[T]) Argb() Argb {
	white := 1 - c.K
	return Argb{
		A: numeric.UnitToByte(c.A),
		R: numeric.UnitToByte((1 - c.C) * white),
		G: numeric.UnitToByte((1 - c.M) * white),
		B: numeric.UnitToByte((1 - c.Y) * white),
	}
}

// Equal reports whether every component of c and o is almost equal.
func (c Cmyk[T]) Equal(o Cmyk[T]) bool {
	return numeric.AlmostEqual(c.C, o.C) &&
		numeric.AlmostEqual(c.M, o.M) &&
		numeric.AlmostEqual(c.Y, o.Y) &&
		numeric.AlmostEqual(c.K, o.K) &&
		numeric.AlmostEqual(c.A, o.A)
}

// String renders c as "cmyk(C%, M%, Y%, K%)" or "cmyka(C%, M%, Y%, K%, A)".
// Percentages keep two decimals.
func (c Cmyk[T]) String() string {
	pc := formatReal(roundTo(float64(c.C)*100, 2))
	pm := formatReal(roundTo(float64(c.M)*100, 2))
	py := formatReal(roundTo(float64(c.Y)*100, 2))
	pk := formatReal(roundTo(float64(c.K)*100, 2))
	if isOpaque(c.A) {
		return fmt.Sprintf("cmyk(%s%%, %s%%, %s%%, %s%%)", pc, pm, py, pk)
	}
	return fmt.Sprintf("cmyka(%s%%, %s%%, %s%%, %s%%, %s)", pc, pm, py, pk, formatReal(float64(c.A)))
}
