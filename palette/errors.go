package palette

import "errors"

var (
	// ErrEmptyName is returned when a palette or swatch has no name.
	ErrEmptyName = errors.New("palette: empty name")

	// ErrDuplicateSwatch is returned when two swatches share a name.
	ErrDuplicateSwatch = errors.New("palette: duplicate swatch")
)
