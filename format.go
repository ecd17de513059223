package colorspace

import (
	"math"
	"strconv"

	"github.com/gogpu/colorspace/internal/numeric"
)

// formatReal formats v with the fewest digits that represent it exactly.
func formatReal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// displayInt formats v rounded to an integer. Negative zero prints as "0".
func displayInt[T numeric.Float](v T) string {
	return strconv.FormatFloat(math.Round(float64(v))+0, 'f', 0, 64)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// isOpaque reports whether a float alpha renders as fully opaque.
func isOpaque[T numeric.Float](a T) bool {
	return a >= 1 || numeric.AlmostEqual(a, 1)
}
