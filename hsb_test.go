package colorspace

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	_ Converter[Hsb[float32]] = Hsb[float32]{}
	_ Converter[Hsb[float64]] = Hsb[float64]{}
)

func TestHsbFromArgb(t *testing.T) {
	tests := []struct {
		name string
		in   Argb
		want Hsb[float64]
	}{
		{"red", Red, NewHsb(0.0, 100, 100)},
		{"green", Green, NewHsb(120.0, 100, 100)},
		{"blue", Blue, NewHsb(240.0, 100, 100)},
		{"yellow", Yellow, NewHsb(60.0, 100, 100)},
		{"cyan", Cyan, NewHsb(180.0, 100, 100)},
		{"magenta", Magenta, NewHsb(300.0, 100, 100)},
		{"white", White, NewHsb(0.0, 0, 100)},
		{"black", Black, NewHsb(0.0, 0, 0)},
		{"gray", Opaque(128, 128, 128), NewHsb(0.0, 0, 12800.0/255)},
		{"dark orange", Opaque(128, 64, 0), NewHsb(30.0, 100, 12800.0/255)},
		{"translucent", NewArgb(51, 255, 0, 0), NewHsba(0.0, 100, 100, 0.2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := (Hsb[float64]{}).FromArgb(tt.in)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("FromArgb(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestHsbArgb(t *testing.T) {
	tests := []struct {
		name string
		in   Hsb[float64]
		want Argb
	}{
		{"red", NewHsb(0.0, 100, 100), Red},
		{"sector 1", NewHsb(90.0, 100, 100), Opaque(128, 255, 0)},
		{"sector 2", NewHsb(150.0, 100, 100), Opaque(0, 255, 128)},
		{"sector 3", NewHsb(210.0, 100, 100), Opaque(0, 128, 255)},
		{"sector 4", NewHsb(270.0, 100, 100), Opaque(128, 0, 255)},
		{"sector 5", NewHsb(330.0, 100, 100), Opaque(255, 0, 128)},
		{"half saturation", NewHsb(0.0, 50, 100), Opaque(255, 128, 128)},
		{"saturation above range", NewHsb(0.0, 150, 100), Opaque(255, 0, 0)},
		{"brightness above range", NewHsb(0.0, 0, 120), White},
		{"alpha", NewHsba(0.0, 0, 0, 0.5), NewArgb(128, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Argb(); got != tt.want {
				t.Errorf("Argb() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHsbRoundTrip(t *testing.T) {
	forEachSample(5, func(c Argb) {
		if got := (Hsb[float64]{}).FromArgb(c).Argb(); got != c {
			t.Fatalf("Hsb[float64] round trip %v: got %v", c, got)
		}
		if got := (Hsb[float32]{}).FromArgb(c).Argb(); got != c {
			t.Fatalf("Hsb[float32] round trip %v: got %v", c, got)
		}
	})
}

func TestHsbGray(t *testing.T) {
	gray := Opaque(128, 128, 128)
	hsb := (Hsb[float64]{}).FromArgb(gray)
	if hsb.H != 0 || hsb.S != 0 {
		t.Errorf("gray: H=%v S=%v, want 0 0", hsb.H, hsb.S)
	}
	if got := hsb.Argb(); got != gray {
		t.Errorf("gray round trip: got %v", got)
	}
}

// TestHsbBlackSaturation pins the zero check on max with a zero fallback:
// black must not report full saturation.
func TestHsbBlackSaturation(t *testing.T) {
	hsb := (Hsb[float32]{}).FromArgb(Black)
	if hsb.S != 0 || hsb.H != 0 || hsb.B != 0 {
		t.Errorf("black = %+v, want all zero", hsb)
	}
}

func TestHsbZeroSaturationIgnoresHue(t *testing.T) {
	want := Opaque(128, 128, 128)
	for _, h := range []float64{0, 45, 123.4, 359.9, 720, -90} {
		if got := NewHsb(h, 0, 50).Argb(); got != want {
			t.Errorf("NewHsb(%v, 0, 50).Argb() = %v, want %v", h, got, want)
		}
	}
}

func TestHsbHueWraparound(t *testing.T) {
	tests := []struct{ h, same float64 }{
		{370, 10},
		{360, 0},
		{-350, 10},
		{725, 5},
		{-0.0001, 359.9999},
	}
	for _, tt := range tests {
		a := NewHsb(tt.h, 80, 60).Argb()
		b := NewHsb(tt.same, 80, 60).Argb()
		if a != b {
			t.Errorf("hue %v -> %v, hue %v -> %v", tt.h, a, tt.same, b)
		}
	}
}

func TestHsbNonFiniteHue(t *testing.T) {
	for _, h := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got, want := NewHsb(h, 100, 100).Argb(), Red; got != want {
			t.Errorf("NewHsb(%v, 100, 100).Argb() = %v, want %v", h, got, want)
		}
	}
}

func TestHsbEqual(t *testing.T) {
	a := NewHsb(200.0, 40, 60)
	if !a.Equal(NewHsb(200.000001, 40, 60)) {
		t.Error("Equal should tolerate tiny differences")
	}
	if a.Equal(NewHsb(201.0, 40, 60)) {
		t.Error("Equal should reject different hues")
	}
}

func TestHsbString(t *testing.T) {
	if got := NewHsb(120.4, 50.5, 30.2).String(); got != "hsb(120, 51%, 30%)" {
		t.Errorf("String() = %q", got)
	}
	if got := NewHsba(0.0, 0, 0, 0.5).String(); got != "hsba(0, 0%, 0%, 0.5)" {
		t.Errorf("String() = %q", got)
	}
}
