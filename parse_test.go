package colorspace

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Argb
	}{
		{"#ff0000", Red},
		{"  #F00  ", Red},
		{"#3498db80", NewArgb(0x80, 0x34, 0x98, 0xdb)},
		{"red", Red},
		{"Dark Slate Gray", Opaque(47, 79, 79)},
		{"dark-orange", Opaque(255, 140, 0)},
		{"transparent", Transparent},
		{"TRANSPARENT", Transparent},
		{"rgb(255, 0, 0)", Red},
		{"rgba(255, 0, 0, 0.5)", NewArgb(128, 255, 0, 0)},
		{"rgb(100%, 50%, 0%)", Opaque(255, 128, 0)},
		{"rgb(255 0 0 / 50%)", NewArgb(128, 255, 0, 0)},
		{"rgb(300, -5, 12.4)", Opaque(255, 0, 12)},
		{"hsl(120, 100%, 50%)", Green},
		{"HSL(120deg 100% 50%)", Green},
		{"hsl(480, 100, 50)", Green},
		{"hsla(0, 100%, 50%, 0.2)", NewArgb(51, 255, 0, 0)},
		{"hsv(240, 100%, 100%)", Blue},
		{"hsb(0, 0%, 100%)", White},
		{"hsba(60, 100%, 100%, 0)", NewArgb(0, 255, 255, 0)},
		{"cmyk(0%, 100%, 100%, 0%)", Red},
		{"cmyk(0, 1, 1, 0)", Red},
		{"cmyka(0%, 0%, 0%, 100%, 0.5)", NewArgb(128, 0, 0, 0)},
		{"yuv(82, 90, 240)", Opaque(255, 1, 0)},
		{"yuva(16, 128, 128, 0.2)", NewArgb(51, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in          string
		unknownName bool
	}{
		{"", false},
		{"   ", false},
		{"#12", false},
		{"#xyz", false},
		{"rgb(1, 2)", false},
		{"rgb(1, 2, x)", false},
		{"rgb(1, 2, 3, 4, 5)", false},
		{"rgb(1,,2,3)", false},
		{"rgb(NaN, 1, 2)", false},
		{"foo(1, 2, 3)", false},
		{"hsl(10%, 20%, 30%)", false},
		{"yuv(1%, 2, 3)", false},
		{"cmyk(0, 0, 0)", false},
		{"rgb(1, 2, 3", true},
		{"notacolor", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.in)
			}
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("Parse(%q) error %v does not wrap ErrInvalidColor", tt.in, err)
			}
			if got := errors.Is(err, ErrUnknownName); got != tt.unknownName {
				t.Errorf("Parse(%q) errors.Is(ErrUnknownName) = %v, want %v", tt.in, got, tt.unknownName)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	_ = MustParse("rgb(")
}

// TestParseStringRoundTrip verifies that every exact String form parses back
// to the same canonical color.
func TestParseStringRoundTrip(t *testing.T) {
	forEachSample(15, func(c Argb) {
		forms := []string{
			c.String(),
			Convert[Rgb](c).String(),
			Convert[RgbF[float64]](c).String(),
		}
		for _, s := range forms {
			got, err := Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q) = %v", s, err)
			}
			if got != c {
				t.Fatalf("Parse(%q) = %v, want %v", s, got, c)
			}
		}

		y := Convert[Yuv](c)
		got, err := Parse(y.String())
		if err != nil {
			t.Fatalf("Parse(%q) = %v", y.String(), err)
		}
		if got != y.Argb() {
			t.Fatalf("Parse(%q) = %v, want %v", y.String(), got, y.Argb())
		}
	})
}

func TestParseRoundedForms(t *testing.T) {
	if got := MustParse(NewHsl(120.0, 100, 50).String()); got != Green {
		t.Errorf("hsl String round trip = %v", got)
	}
	if got := MustParse(NewHsba(240.0, 100, 100, 0.5).String()); got != NewArgb(128, 0, 0, 255) {
		t.Errorf("hsba String round trip = %v", got)
	}
	if got := MustParse(NewCmyk(0.0, 0.5, 1, 0.25).String()); got != NewCmyk(0.0, 0.5, 1, 0.25).Argb() {
		t.Errorf("cmyk String round trip = %v", got)
	}
}

func TestParseMemoizes(t *testing.T) {
	const in = "hsl(33, 44%, 55%)"
	first := MustParse(in)
	before := parsed.Stats().Hits
	if got := MustParse(in); got != first {
		t.Errorf("second Parse(%q) = %v, want %v", in, got, first)
	}
	if after := parsed.Stats().Hits; after <= before {
		t.Errorf("cache hits did not grow: %d -> %d", before, after)
	}
	if _, err := Parse("rgb(1, 2)"); err == nil {
		t.Fatal("Parse accepted two arguments")
	}
	if _, ok := parsed.Get("rgb(1, 2)"); ok {
		t.Error("failed parse was cached")
	}
}
