// Package colorspace converts colors between RGB, HSL, HSB (HSV), CMYK and
// YUV representations.
//
// # Overview
//
// Every representation converts to and from one canonical color, [Argb],
// with four 8-bit channels. A conversion between two other spaces always
// takes two hops, source → Argb → destination, so each space only has to
// implement one pair of transforms.
//
// # Quick Start
//
//	import "github.com/gogpu/colorspace"
//
//	hsl := colorspace.NewHsl(210.0, 65, 40)
//	rgb := colorspace.Convert[colorspace.Rgb](hsl)
//	fmt.Println(rgb)      // rgb(36, 102, 168)
//	fmt.Println(hsl.Argb()) // #2466a8
//
// # Spaces
//
//   - [Rgb]: 8-bit red, green, blue, alpha.
//   - [RgbF]: floating-point channels in [0, 1].
//   - [Hsl], [Hsb]: hue in degrees, saturation and lightness/brightness in
//     percent, alpha in [0, 1].
//   - [Cmyk]: cyan, magenta, yellow, black and alpha in [0, 1].
//   - [Yuv]: BT.601 studio-range luma and chroma bytes.
//
// The floating-point spaces are generic over their component type; float32
// and float64 instantiations run the same algorithms.
//
// # Equality
//
// Byte spaces (Argb, Rgb, Yuv) are comparable and use exact equality.
// Floating-point spaces provide an Equal method that compares each component
// within a small tolerance. [VisuallyEqual] compares any two values through
// their canonical colors and treats all fully transparent colors as equal.
//
// # Rounding
//
// Every float→byte step rounds to nearest with halves away from zero and
// saturates to [0, 255]. Out-of-range inputs never fail: hues wrap, channel
// intensities clamp.
//
// # Concurrency
//
// All values are immutable and all functions are pure; everything is safe
// for concurrent use.
package colorspace

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
