// Package numeric provides the floating-point helpers shared by the color
// spaces: tolerance comparison, wraparound, min/max selection and saturating
// conversion to the 8-bit channel range.
package numeric

import (
	"math"

	"fortio.org/safecast"
	"golang.org/x/exp/constraints"
)

// Float is the component type bound of every generic color space.
type Float interface {
	constraints.Float
}

// Tolerance is the absolute tolerance used by AlmostEqual for values of
// magnitude up to 1. Larger values are compared relative to their magnitude.
const Tolerance = 1e-5

// AlmostEqual reports whether a and b differ by at most Tolerance, scaled by
// the larger magnitude when that exceeds 1.
func AlmostEqual[T Float](a, b T) bool {
	fa, fb := float64(a), float64(b)
	if fa == fb {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(fa), math.Abs(fb)))
	return math.Abs(fa-fb) <= Tolerance*scale
}

// AlmostZero reports whether v is within Tolerance of zero.
func AlmostZero[T Float](v T) bool {
	return math.Abs(float64(v)) <= Tolerance
}

// Wrap maps v into the half-open range [lo, hi) by adding or subtracting
// multiples of hi-lo. NaN and infinite inputs map to lo.
func Wrap[T Float](v, lo, hi T) T {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return lo
	}
	span := float64(hi - lo)
	r := math.Mod(f-float64(lo), span)
	if r < 0 {
		r += span
	}
	w := T(r) + lo
	// A tiny negative remainder plus span rounds up to hi.
	if w >= hi {
		return lo
	}
	return w
}

// MinMax3 returns the smallest and largest of three samples. The results are
// always one of the inputs, so callers may compare them with ==.
func MinMax3[T Float](a, b, c T) (lo, hi T) {
	lo, hi = a, a
	if b < lo {
		lo = b
	}
	if b > hi {
		hi = b
	}
	if c < lo {
		lo = c
	}
	if c > hi {
		hi = c
	}
	return lo, hi
}

// SaturateInt clamps v to [0, 255].
func SaturateInt(v int) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return safecast.MustConv[uint8](v)
}

// SaturateByte rounds v to the nearest integer, halves away from zero, and
// clamps it to [0, 255]. NaN saturates to 0.
func SaturateByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return SaturateInt(int(math.Round(v)))
}

// UnitToByte scales a [0,1] intensity to the byte range with rounding and
// saturation.
func UnitToByte[T Float](v T) uint8 {
	return SaturateByte(float64(v) * 255)
}

// ByteToUnit maps a byte channel to [0,1]. The division happens in float64
// and the quotient is then converted to T.
func ByteToUnit[T Float](b uint8) T {
	return T(unitLUT[b])
}
