package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidColour is returned when a string or component set does not
	// describe a colour.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrInvalidLength is returned when a ramp length is less than one.
	ErrInvalidLength = errors.New("invalid ramp length")

	// ErrEmptyRamp is returned when an operation requires a non-empty ramp.
	ErrEmptyRamp = errors.New("empty ramp")
)

// ParseColor parses a CSS-compatible colour string.
//
// Supported forms: #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl(),
// hsla(), hsv(), hsva(), CSS named colours and "transparent". Function
// arguments may be separated by commas or whitespace, with an optional
// "/ alpha" suffix.
func ParseColor(s string) (Color, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if input == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidColour)
	}

	if strings.HasPrefix(input, "#") {
		return parseHex(s, input[1:])
	}

	if open := strings.IndexByte(input, '('); open > 0 {
		if !strings.HasSuffix(input, ")") {
			return Color{}, fmt.Errorf("%w: %q: missing closing parenthesis", ErrInvalidColour, s)
		}
		return parseFunc(s, input[:open], input[open+1:len(input)-1])
	}

	if input == "transparent" {
		return Transparent, nil
	}
	if hex, ok := namedColours[input]; ok {
		return parseHex(s, hex)
	}

	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
}

// MustParse is like ParseColor but panics on error. Intended for constants
// and tests.
func MustParse(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(orig, digits string) (Color, error) {
	switch len(digits) {
	case 3, 4:
		expanded := make([]byte, 0, len(digits)*2)
		for i := 0; i < len(digits); i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded)
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: %q: hex colour must have 3, 4, 6 or 8 digits", ErrInvalidColour, orig)
	}

	if len(digits) == 6 {
		digits += "ff"
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err)
	}

	return newColor(RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}), nil
}

func parseFunc(orig, name, body string) (Color, error) {
	args, alpha, err := splitArgs(body)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err)
	}
	if len(args) == 4 && alpha == "" {
		alpha = args[3]
		args = args[:3]
	}
	if len(args) != 3 {
		return Color{}, fmt.Errorf("%w: %q: expected 3 components, got %d", ErrInvalidColour, orig, len(args))
	}

	a := uint8(MaxRGBA)
	if alpha != "" {
		af, err := parseAlpha(alpha)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err)
		}
		a = af
	}

	switch name {
	case "rgb", "rgba":
		var ch [3]uint8
		for i, arg := range args {
			v, err := parseChannel(arg)
			if err != nil {
				return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err)
			}
			ch[i] = v
		}
		return newColor(RGBA{R: ch[0], G: ch[1], B: ch[2], A: a}), nil

	case "hsl", "hsla", "hsv", "hsva":
		h, err := parseHue(args[0])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err)
		}
		s, err := parsePercent(args[1])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err)
		}
		l, err := parsePercent(args[2])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err)
		}
		if strings.HasPrefix(name, "hsv") {
			return FromHSVA(h, s, l, a), nil
		}
		return FromHSL(h, s, l, a), nil
	}

	return Color{}, fmt.Errorf("%w: %q: unknown colour function %q", ErrInvalidColour, orig, name)
}

// splitArgs splits "a, b, c" or "a b c / d" into components and an alpha.
func splitArgs(body string) (args []string, alpha string, err error) {
	if slash := strings.IndexByte(body, '/'); slash >= 0 {
		alpha = strings.TrimSpace(body[slash+1:])
		body = body[:slash]
		if alpha == "" {
			return nil, "", errors.New("empty alpha after '/'")
		}
	}
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return fields, alpha, nil
}

func parseChannel(arg string) (uint8, error) {
	if pct, ok := strings.CutSuffix(arg, "%"); ok {
		v, err := parseFinite(pct)
		if err != nil || v < 0 || v > 100 {
			return 0, fmt.Errorf("channel %q out of range 0%%-100%%", arg)
		}
		return clampChannel(v / 100 * MaxRGBA), nil
	}
	v, err := parseFinite(arg)
	if err != nil || v < 0 || v > MaxRGBA {
		return 0, fmt.Errorf("channel %q out of range 0-%d", arg, MaxRGBA)
	}
	return clampChannel(v), nil
}

func parseAlpha(arg string) (uint8, error) {
	if pct, ok := strings.CutSuffix(arg, "%"); ok {
		v, err := parseFinite(pct)
		if err != nil || v < 0 || v > 100 {
			return 0, fmt.Errorf("alpha %q out of range 0%%-100%%", arg)
		}
		return clampChannel(v / 100 * MaxRGBA), nil
	}
	v, err := parseFinite(arg)
	if err != nil || v < 0 || v > 1 {
		return 0, fmt.Errorf("alpha %q out of range 0-1", arg)
	}
	return clampChannel(v * MaxRGBA), nil
}

func parseHue(arg string) (float64, error) {
	arg = strings.TrimSuffix(arg, "deg")
	v, err := parseFinite(arg)
	if err != nil {
		return 0, fmt.Errorf("hue %q is not a number", arg)
	}
	return v, nil
}

func parsePercent(arg string) (float64, error) {
	arg = strings.TrimSuffix(arg, "%")
	v, err := parseFinite(arg)
	if err != nil || v < 0 || v > 100 {
		return 0, fmt.Errorf("component %q out of range 0-100", arg)
	}
	return v, nil
}

// parseFinite parses a float, rejecting NaN and the infinities that
// strconv.ParseFloat accepts.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}
