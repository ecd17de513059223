package colorspace

// Space is implemented by every color representation. Argb converts the value
// to the canonical color; it never fails.
type Space interface {
	Argb() Argb
}

// Converter is a Space whose zero value can build a new T from a canonical
// color. FromArgb ignores its receiver.
type Converter[T any] interface {
	Space
	FromArgb(Argb) T
}

// Convert converts a value of any space to the space To by way of the
// canonical color:
//
//	hsl := colorspace.Convert[colorspace.Hsl[float64]](colorspace.NewRgb(255, 128, 0))
//
// Converting to the source's own type is not a no-op: the value is
// normalized exactly as the two-hop path dictates (a hue of 370 becomes 10,
// out-of-range channels saturate).
func Convert[To Converter[To]](from Space) To {
	var zero To
	return zero.FromArgb(from.Argb())
}

// VisuallyEqual reports whether a and b render identically: their canonical
// colors are equal, or both are fully transparent.
func VisuallyEqual(a, b Space) bool {
	return a.Argb().VisuallyEqual(b.Argb())
}
