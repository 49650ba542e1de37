// Package colour provides the colour model, shade and ramp generation, WCAG
// contrast evaluation and semantic theme derivation used by themer.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

const (
	// MaxRGBA is the maximum value of a red, green, blue or alpha channel.
	MaxRGBA = 255

	// MaxHue is the exclusive upper bound of the hue channel in degrees.
	MaxHue = 360

	// MaxSV is the maximum value of the saturation and value channels.
	MaxSV = 100
)

// RGBA holds the 8-bit channels of a colour.
type RGBA struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

// HSV holds hue (0-360), saturation (0-100) and value (0-100).
type HSV struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	V float64 `json:"v" yaml:"v"`
}

// HSL holds hue (0-360), saturation (0-100) and lightness (0-100).
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// Color is an immutable colour value. The RGB channels and the HSV
// representation are always consistent up to rounding; alpha is independent.
//
// The zero value is transparent black.
type Color struct {
	rgba RGBA
	hsv  HSV
}

// Transparent is rgba(0, 0, 0, 0).
var Transparent = Color{}

// White is #ffffff.
var White = FromRGB(MaxRGBA, MaxRGBA, MaxRGBA)

// Black is #000000.
var Black = FromRGB(0, 0, 0)

// FromRGB creates an opaque colour from 8-bit channels.
func FromRGB(r, g, b uint8) Color {
	return newColor(RGBA{R: r, G: g, B: b, A: MaxRGBA})
}

// FromRGBA creates a colour from integer channels, reporting an error if any
// channel lies outside 0-255.
func FromRGBA(r, g, b, a int) (Color, error) {
	for _, ch := range []struct {
		name  string
		value int
	}{{"red", r}, {"green", g}, {"blue", b}, {"alpha", a}} {
		if ch.value < 0 || ch.value > MaxRGBA {
			return Color{}, fmt.Errorf("%w: %s channel %d out of range 0-%d", ErrInvalidColour, ch.name, ch.value, MaxRGBA)
		}
	}
	return newColor(RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}), nil
}

// FromHSV creates an opaque colour from hue/saturation/value components.
// Inputs are clamped into range and hue is wrapped.
func FromHSV(h, s, v float64) Color {
	return FromHSVA(h, s, v, MaxRGBA)
}

// FromHSVA creates a colour from hue/saturation/value components and an alpha.
// NaN components are treated as 0. The supplied HSV is kept so repeated HSV transforms do not accumulate
// rounding error from the RGB channels.
func FromHSVA(h, s, v float64, a uint8) Color {
	hsv := HSV{H: wrapHue(h), S: clamp(s, 0, MaxSV), V: clamp(v, 0, MaxSV)}
	rgb := hsvToRGB(hsv)
	rgb.A = a
	return Color{rgba: rgb, hsv: hsv}
}

// FromHSL creates a colour from hue/saturation/lightness components and an alpha.
// NaN components are treated as 0.
func FromHSL(h, s, l float64, a uint8) Color {
	rgb := hslToRGB(HSL{H: wrapHue(h), S: clamp(s, 0, MaxSV), L: clamp(l, 0, MaxSV)})
	rgb.A = a
	return newColor(rgb)
}

// FromColor converts any image/color.Color, un-premultiplying alpha.
func FromColor(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	if own, ok := c.(Color); ok {
		return own
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return newColor(RGBA{R: n.R, G: n.G, B: n.B, A: n.A})
}

func newColor(rgb RGBA) Color {
	return Color{rgba: rgb, hsv: rgbToHSV(rgb)}
}

// RGBA implements image/color.Color and returns alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.rgba.R, G: c.rgba.G, B: c.rgba.B, A: c.rgba.A}.RGBA()
}

// Channels returns the 8-bit channels.
func (c Color) Channels() RGBA {
	return c.rgba
}

// HSV returns the hue/saturation/value representation.
func (c Color) HSV() HSV {
	return c.hsv
}

// HSL returns the hue/saturation/lightness representation derived from HSV.
func (c Color) HSL() HSL {
	return hsvToHSL(c.hsv)
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 {
	return c.rgba.A
}

// WithAlpha returns a copy of c with the given alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.rgba.A = a
	return c
}

// Equal reports whether two colours have identical RGBA channels.
func (c Color) Equal(other Color) bool {
	return c.rgba == other.rgba
}

// IsWhite reports whether the RGB channels are all at maximum.
func (c Color) IsWhite() bool {
	return c.rgba.R == MaxRGBA && c.rgba.G == MaxRGBA && c.rgba.B == MaxRGBA
}

// IsBlack reports whether the RGB channels are all zero.
func (c Color) IsBlack() bool {
	return c.rgba.R == 0 && c.rgba.G == 0 && c.rgba.B == 0
}

// Hex returns the colour as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.rgba.R, c.rgba.G, c.rgba.B)
}

// HexAlpha returns the colour as "#rrggbbaa".
func (c Color) HexAlpha() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.rgba.R, c.rgba.G, c.rgba.B, c.rgba.A)
}

// String returns the canonical CSS form: "#rrggbb" for opaque colours,
// "transparent" for rgba(0, 0, 0, 0) and "rgba(r, g, b, a)" otherwise.
func (c Color) String() string {
	switch {
	case c.rgba.A == MaxRGBA:
		return c.Hex()
	case c.rgba == RGBA{}:
		return "transparent"
	default:
		return c.RGBAString()
	}
}

// RGBString returns "rgb(r, g, b)", ignoring alpha.
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.rgba.R, c.rgba.G, c.rgba.B)
}

// RGBAString returns "rgba(r, g, b, a)" regardless of opacity.
func (c Color) RGBAString() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.rgba.R, c.rgba.G, c.rgba.B, formatAlpha(c.rgba.A))
}

// formatAlpha renders an 8-bit alpha as a CSS fraction with at most three
// decimals. Three decimals are enough to parse back to the same byte.
func formatAlpha(a uint8) string {
	return strconv.FormatFloat(math.Round(float64(a)/MaxRGBA*1000)/1000, 'f', -1, 64)
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseColor.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// GoString makes test failures readable.
func (c Color) GoString() string {
	return "colour.MustParse(" + strconv.Quote(strings.ToLower(c.String())) + ")"
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func clampChannel(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, MaxRGBA)))
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, MaxHue)
	if h < 0 {
		h += MaxHue
	}
	return h
}
