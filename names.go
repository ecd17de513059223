package colorspace

import (
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// nameOf maps opaque colors back to the alphabetically first name that
// produces them ("aqua" wins over "cyan", "gray" over "grey").
var nameOf map[Argb]string

func init() {
	nameOf = make(map[Argb]string, len(colornames.Names))
	for _, name := range colornames.Names {
		c := FromColor(colornames.Map[name])
		if _, ok := nameOf[c]; !ok {
			nameOf[c] = name
		}
	}
}

// Named returns the color with the given SVG 1.1 / CSS name. Matching
// ignores case, spaces, hyphens and underscores, so "Dark Slate Gray" finds
// darkslategray.
func Named(name string) (Argb, bool) {
	c, ok := colornames.Map[foldName(name)]
	if !ok {
		return Argb{}, false
	}
	return FromColor(c), true
}

// NameOf returns the name of c if c is an opaque named color.
func NameOf(c Space) (string, bool) {
	name, ok := nameOf[c.Argb()]
	return name, ok
}

// foldName reduces a user-supplied color name to the table's key form.
func foldName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, name)
	return cases.Fold().String(name)
}
