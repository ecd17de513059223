package colorspace

import "errors"

var (
	// ErrInvalidColor indicates a string that does not describe a color.
	ErrInvalidColor = errors.New("colorspace: invalid color")

	// ErrUnknownName indicates a color name missing from the named color table.
	ErrUnknownName = errors.New("colorspace: unknown color name")
)
