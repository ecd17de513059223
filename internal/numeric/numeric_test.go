package numeric

import (
	"math"
	"testing"
)

func TestAlmostEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", 0.5, 0.5, true},
		{"within tolerance", 0.5, 0.5 + 5e-6, true},
		{"outside tolerance", 0.5, 0.5 + 5e-5, false},
		{"zero and tiny", 0, 1e-6, true},
		{"large relative", 359.999, 359.999 + 1e-3, true},
		{"large apart", 359, 360, false},
		{"opposite sign", -0.25, 0.25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlmostEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("AlmostEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := AlmostEqual(tt.b, tt.a); got != tt.want {
				t.Errorf("AlmostEqual(%v, %v) = %v, want %v (not symmetric)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestAlmostEqualFloat32(t *testing.T) {
	a := float32(1) / 3
	b := float32(float64(1) / 3)
	if !AlmostEqual(a, b) {
		t.Errorf("AlmostEqual(%v, %v) = false, want true", a, b)
	}
	if AlmostEqual(float32(0.1), float32(0.2)) {
		t.Error("AlmostEqual(0.1, 0.2) = true, want false")
	}
}

func TestAlmostZero(t *testing.T) {
	if !AlmostZero(0.0) || !AlmostZero(-1e-7) || !AlmostZero(float32(9e-6)) {
		t.Error("AlmostZero rejected a value within tolerance")
	}
	if AlmostZero(1.0/255) || AlmostZero(float32(-0.001)) {
		t.Error("AlmostZero accepted a value outside tolerance")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		lo, hi float64
		want   float64
	}{
		{"inside", 10, 0, 360, 10},
		{"lower bound", 0, 0, 360, 0},
		{"upper bound", 360, 0, 360, 0},
		{"above", 370, 0, 360, 10},
		{"far above", 3610, 0, 360, 10},
		{"negative", -10, 0, 360, 350},
		{"far negative", -730, 0, 360, 350},
		{"unit range", 1.25, 0, 1, 0.25},
		{"unit negative", -0.25, 0, 1, 0.75},
		{"offset range", 5, 2, 4, 3},
		{"tiny negative", -1e-18, 0, 360, 0},
		{"NaN", math.NaN(), 0, 360, 0},
		{"+Inf", math.Inf(1), 0, 360, 0},
		{"-Inf", math.Inf(-1), 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.v, tt.lo, tt.hi)
			if !floatNear(got, tt.want, 1e-9) {
				t.Errorf("Wrap(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
			if got < tt.lo || got >= tt.hi {
				t.Errorf("Wrap(%v, %v, %v) = %v, outside [%v, %v)", tt.v, tt.lo, tt.hi, got, tt.lo, tt.hi)
			}
		})
	}
}

func TestWrapFloat32(t *testing.T) {
	got := Wrap(float32(-1e-9), 0, 360)
	if got != 0 {
		t.Errorf("Wrap(-1e-9) = %v, want 0", got)
	}
	got = Wrap(float32(725), 0, 360)
	if got != 5 {
		t.Errorf("Wrap(725) = %v, want 5", got)
	}
}

func TestMinMax3(t *testing.T) {
	tests := []struct {
		a, b, c float64
		lo, hi  float64
	}{
		{1, 2, 3, 1, 3},
		{3, 2, 1, 1, 3},
		{2, 3, 1, 1, 3},
		{0.5, 0.5, 0.5, 0.5, 0.5},
		{-1, 0, -2, -2, 0},
	}

	for _, tt := range tests {
		lo, hi := MinMax3(tt.a, tt.b, tt.c)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("MinMax3(%v, %v, %v) = (%v, %v), want (%v, %v)",
				tt.a, tt.b, tt.c, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestSaturateByte(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  uint8
	}{
		{"zero", 0, 0},
		{"negative", -12.7, 0},
		{"max", 255, 255},
		{"above max", 306, 255},
		{"round down", 127.49, 127},
		{"half rounds away from zero", 127.5, 128},
		{"half rounds away from zero (even)", 128.5, 129},
		{"round up", 127.51, 128},
		{"NaN", math.NaN(), 0},
		{"+Inf", math.Inf(1), 255},
		{"-Inf", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SaturateByte(tt.input); got != tt.want {
				t.Errorf("SaturateByte(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSaturateInt(t *testing.T) {
	for _, tt := range []struct {
		in   int
		want uint8
	}{{-300, 0}, {-1, 0}, {0, 0}, {17, 17}, {255, 255}, {256, 255}, {1 << 20, 255}} {
		if got := SaturateInt(tt.in); got != tt.want {
			t.Errorf("SaturateInt(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// TestUnitByteRoundTrip tests every byte survives byte → unit → byte in both widths.
func TestUnitByteRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		b := uint8(i)
		if got := UnitToByte(ByteToUnit[float64](b)); got != b {
			t.Errorf("float64 round trip %d: got %d", b, got)
		}
		if got := UnitToByte(ByteToUnit[float32](b)); got != b {
			t.Errorf("float32 round trip %d: got %d", b, got)
		}
	}
}

func TestUnitToByteSaturates(t *testing.T) {
	if got := UnitToByte(1.2); got != 255 {
		t.Errorf("UnitToByte(1.2) = %d, want 255", got)
	}
	if got := UnitToByte(float32(-0.3)); got != 0 {
		t.Errorf("UnitToByte(-0.3) = %d, want 0", got)
	}
}

func floatNear(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
