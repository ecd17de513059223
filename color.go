package colorspace

import (
	"fmt"
	"image/color"
)

// Argb is the canonical color: four 8-bit channels, not premultiplied.
// Every other color space converts to and from Argb.
type Argb struct {
	A, R, G, B uint8
}

// NewArgb creates a canonical color from its channels.
func NewArgb(a, r, g, b uint8) Argb {
	return Argb{A: a, R: r, G: g, B: b}
}

// Opaque creates a fully opaque canonical color.
func Opaque(r, g, b uint8) Argb {
	return Argb{A: 255, R: r, G: g, B: b}
}

// Argb returns c itself, making Argb a Space.
func (c Argb) Argb() Argb { return c }

// FromArgb returns c unchanged.
func (Argb) FromArgb(c Argb) Argb { return c }

// Equal reports whether c and o have identical channels.
func (c Argb) Equal(o Argb) bool { return c == o }

// VisuallyEqual reports whether c and o look the same: identical channels,
// or both fully transparent.
func (c Argb) VisuallyEqual(o Argb) bool {
	if c.A == 0 && o.A == 0 {
		return true
	}
	return c == o
}

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (c Argb) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts a standard color.Color to Argb.
func FromColor(c color.Color) Argb {
	if a, ok := c.(Argb); ok {
		return a
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Argb{A: n.A, R: n.R, G: n.G, B: n.B}
}

// String renders c as "#rrggbb", or "#rrggbbaa" when c is not opaque.
func (c Argb) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// MarshalText implements encoding.TextMarshaler using String.
func (c Argb) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (c *Argb) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Malformed input yields opaque black; use Parse to detect it.
func Hex(hex string) Argb {
	c, ok := parseHexColor(hex)
	if !ok {
		return Black
	}
	return c
}

// parseHexColor parses the formats accepted by Hex.
func parseHexColor(hex string) (Argb, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) &&
			parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) &&
			parseHex(hex[6:8], &a)
	default:
		return Argb{}, false
	}
	if !ok {
		return Argb{}, false
	}

	//nolint:gosec // G115: every value is at most 0xff
	return Argb{A: uint8(a), R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// parseHex is a helper for hex parsing. It reports false on a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Common colors
var (
	Black       = Opaque(0, 0, 0)
	White       = Opaque(255, 255, 255)
	Red         = Opaque(255, 0, 0)
	Green       = Opaque(0, 255, 0)
	Blue        = Opaque(0, 0, 255)
	Yellow      = Opaque(255, 255, 0)
	Cyan        = Opaque(0, 255, 255)
	Magenta     = Opaque(255, 0, 255)
	Transparent = NewArgb(0, 0, 0, 0)
)
