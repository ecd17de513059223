package colorspace

import (
	"fmt"

	"github.com/gogpu/colorspace/internal/numeric"
)

// Yuv is a 4:4:4 color in BT.601 studio range: Y is offset by 16, U and V
// by 128. Alpha is carried through unchanged. Yuv values are comparable.
//
// The transforms use 8-bit fixed-point coefficients, so a round trip through
// Yuv may move each channel by a small amount.
type Yuv struct {
	Y, U, V, A uint8
}

// NewYuv creates an opaque Yuv.
func NewYuv(y, u, v uint8) Yuv {
	return Yuv{Y: y, U: u, V: v, A: 255}
}

// NewYuva creates a Yuv with the given alpha.
func NewYuva(y, u, v, a uint8) Yuv {
	return Yuv{Y: y, U: u, V: v, A: a}
}

// FromArgb implements Converter.
func (Yuv) FromArgb(c Argb) Yuv {
	r, g, b := int(c.R), int(c.G), int(c.B)
	return Yuv{
		Y: numeric.SaturateInt((66*r+129*g+25*b+128)>>8 + 16),
		U: numeric.SaturateInt((-38*r-74*g+112*b+128)>>8 + 128),
		V: numeric.SaturateInt((112*r-94*g-18*b+128)>>8 + 128),
		A: c.A,
	}
}

// Argb implements Space.
func (c Yuv) Argb() Argb {
	y := int(c.Y) - 16
	u := int(c.U) - 128
	v := int(c.V) - 128
	return Argb{
		A: c.A,
		R: numeric.SaturateInt((298*y + 409*v + 128) >> 8),
		G: numeric.SaturateInt((298*y - 100*u - 208*v + 128) >> 8),
		B: numeric.SaturateInt((298*y + 516*u + 128) >> 8),
	}
}

// Equal reports whether every channel of c and o matches exactly.
func (c Yuv) Equal(o Yuv) bool { return c == o }

// String renders c as "yuv(Y, U, V)" or "yuva(Y, U, V, A)" with A = alpha/255.
func (c Yuv) String() string {
	if c.A == 255 {
		return fmt.Sprintf("yuv(%d, %d, %d)", c.Y, c.U, c.V)
	}
	return fmt.Sprintf("yuva(%d, %d, %d, %s)", c.Y, c.U, c.V, formatReal(float64(c.A)/255))
}
