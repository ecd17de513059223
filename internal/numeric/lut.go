package numeric

// unitLUT provides O(1) byte to unit-interval conversion.
// Pre-computed 256 entries, 2KB memory cost.
var unitLUT [256]float64

func init() {
	for i := 0; i < 256; i++ {
		unitLUT[i] = float64(i) / 255.0
	}
}

// ByteToUnitSlow is the reference implementation of ByteToUnit.
// Used for testing and verification only.
func ByteToUnitSlow[T Float](b uint8) T {
	return T(float64(b) / 255.0)
}
