package colorspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/gogpu/colorspace/internal/cache"
	"github.com/gogpu/colorspace/internal/numeric"
)

// parsed memoizes successful parses; palettes and CLI input repeat strings.
var parsed = cache.New[string, Argb](512)

// functionalRegex matches the CSS functional notation "name(args)".
var functionalRegex = regexp2.MustCompile(
	`^\s*(?<fn>[a-z]+)\s*\(\s*(?<args>[^()]*?)\s*\)\s*$`,
	regexp2.IgnoreCase,
)

// argSeparatorRegex splits arguments on commas, slashes and whitespace.
var argSeparatorRegex = regexp2.MustCompile(`\s*[,/]\s*|\s+`, 0)

// Parse parses a color string. It accepts:
//   - hex notation: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa";
//   - named colors ("darkorange") and "transparent";
//   - functional notation as produced by the String methods of this
//     package: rgb[a](), hsl[a](), hsb[a]() or hsv[a](), cmyk[a](), yuv[a]().
//
// Errors wrap ErrInvalidColor; unknown names also wrap ErrUnknownName.
func Parse(s string) (Argb, error) {
	if c, ok := parsed.Get(s); ok {
		return c, nil
	}
	c, err := parse(s)
	if err != nil {
		Logger().Debug("colorspace: parse failed", "input", s, "err", err)
		return Argb{}, err
	}
	parsed.Set(s, c)
	return c, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Argb {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parse(s string) (Argb, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Argb{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if trimmed[0] == '#' {
		c, ok := parseHexColor(trimmed)
		if !ok {
			return Argb{}, fmt.Errorf("%w: bad hex notation %q", ErrInvalidColor, s)
		}
		return c, nil
	}

	m, err := functionalRegex.FindStringMatch(trimmed)
	if err != nil {
		return Argb{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	if m == nil {
		if strings.EqualFold(trimmed, "transparent") {
			return Transparent, nil
		}
		if c, ok := Named(trimmed); ok {
			return c, nil
		}
		return Argb{}, fmt.Errorf("%w: %w: %q", ErrInvalidColor, ErrUnknownName, s)
	}

	fn := strings.ToLower(m.GroupByName("fn").String())
	args, err := splitArgs(m.GroupByName("args").String())
	if err != nil {
		return Argb{}, err
	}
	if len(args) < 3 {
		return Argb{}, fmt.Errorf("%w: %s() needs at least 3 arguments, got %d", ErrInvalidColor, fn, len(args))
	}

	switch fn {
	case "rgb", "rgba":
		return parseRgb(args)
	case "hsl", "hsla":
		h, sat, l, a, err := parseHue(args)
		if err != nil {
			return Argb{}, err
		}
		return NewHsla(h, sat, l, a).Argb(), nil
	case "hsb", "hsba", "hsv", "hsva":
		h, sat, b, a, err := parseHue(args)
		if err != nil {
			return Argb{}, err
		}
		return NewHsba(h, sat, b, a).Argb(), nil
	case "cmyk", "cmyka":
		return parseCmyk(args)
	case "yuv", "yuva":
		return parseYuv(args)
	}
	return Argb{}, fmt.Errorf("%w: unknown function %q", ErrInvalidColor, fn)
}

// splitArgs splits the argument list of a functional notation.
func splitArgs(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	// Match offsets count runes, not bytes.
	runes := []rune(s)
	var out []string
	start := 0
	m, err := argSeparatorRegex.FindRunesMatch(runes)
	for ; m != nil && err == nil; m, err = argSeparatorRegex.FindNextMatch(m) {
		out = append(out, string(runes[start:m.Index]))
		start = m.Index + m.Length
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	out = append(out, string(runes[start:]))
	for _, a := range out {
		if a == "" {
			return nil, fmt.Errorf("%w: empty argument in %q", ErrInvalidColor, s)
		}
	}
	return out, nil
}

// component is one numeric argument, optionally suffixed with '%'.
type component struct {
	value   float64
	percent bool
}

func parseComponent(tok string, suffixes ...string) (component, error) {
	var c component
	if strings.HasSuffix(tok, "%") {
		c.percent = true
		tok = tok[:len(tok)-1]
	} else {
		for _, suffix := range suffixes {
			tok = strings.TrimSuffix(tok, suffix)
		}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return c, fmt.Errorf("%w: bad number %q", ErrInvalidColor, tok)
	}
	c.value = v
	return c, nil
}

// unit returns c as a fraction: percentages are divided by 100.
func (c component) unit() float64 {
	if c.percent {
		return c.value / 100
	}
	return c.value
}

// parseAlpha parses the optional fourth (or later) argument.
func parseAlpha(args []string, idx int) (float64, error) {
	if len(args) <= idx {
		return 1, nil
	}
	if len(args) > idx+1 {
		return 0, fmt.Errorf("%w: too many arguments", ErrInvalidColor)
	}
	c, err := parseComponent(args[idx])
	if err != nil {
		return 0, err
	}
	return c.unit(), nil
}

func parseRgb(args []string) (Argb, error) {
	var ch [3]uint8
	for i := range ch {
		c, err := parseComponent(args[i])
		if err != nil {
			return Argb{}, err
		}
		if c.percent {
			ch[i] = numeric.UnitToByte(c.unit())
		} else {
			ch[i] = numeric.SaturateByte(c.value)
		}
	}
	a, err := parseAlpha(args, 3)
	if err != nil {
		return Argb{}, err
	}
	return Argb{A: numeric.UnitToByte(a), R: ch[0], G: ch[1], B: ch[2]}, nil
}

// parseHue parses the arguments shared by hsl() and hsb(): a hue in degrees
// and two percentages. The '%' sign on the percentages is optional.
func parseHue(args []string) (h, s, x, a float64, err error) {
	hc, err := parseComponent(args[0], "deg")
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if hc.percent {
		return 0, 0, 0, 0, fmt.Errorf("%w: hue cannot be a percentage", ErrInvalidColor)
	}
	sc, err := parseComponent(args[1])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	xc, err := parseComponent(args[2])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	a, err = parseAlpha(args, 3)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return hc.value, sc.value, xc.value, a, nil
}

func parseCmyk(args []string) (Argb, error) {
	if len(args) < 4 {
		return Argb{}, fmt.Errorf("%w: cmyk() needs 4 components", ErrInvalidColor)
	}
	var v [4]float64
	for i := range v {
		c, err := parseComponent(args[i])
		if err != nil {
			return Argb{}, err
		}
		v[i] = c.unit()
	}
	a, err := parseAlpha(args, 4)
	if err != nil {
		return Argb{}, err
	}
	return NewCmyka(v[0], v[1], v[2], v[3], a).Argb(), nil
}

func parseYuv(args []string) (Argb, error) {
	var ch [3]uint8
	for i := range ch {
		c, err := parseComponent(args[i])
		if err != nil {
			return Argb{}, err
		}
		if c.percent {
			return Argb{}, fmt.Errorf("%w: yuv() components are bytes", ErrInvalidColor)
		}
		ch[i] = numeric.SaturateByte(c.value)
	}
	a, err := parseAlpha(args, 3)
	if err != nil {
		return Argb{}, err
	}
	return NewYuva(ch[0], ch[1], ch[2], numeric.UnitToByte(a)).Argb(), nil
}
