package colour

import (
	"fmt"
	"strings"
)

// Shade is an ordinal shading level, from Lightest to Darkest.
type Shade int

// Shades of a given colour.
const (
	Unshaded Shade = iota
	Lightest
	Lighter
	Medium
	Darker
	Darkest
)

var shadeNames = [...]string{"unshaded", "lightest", "lighter", "medium", "darker", "darkest"}

// Lookup tables for the five lightness buckets, indexed by Shade-1.
var (
	whiteShadeTable = [5]float64{0.95, 0.85, 0.75, 0.65, 0.50}
	blackTintTable  = [5]float64{0.50, 0.65, 0.75, 0.85, 0.95}
	lumShadeTable   = [5]float64{0.90, 0.75, 0.50, 0.25, 0.10}
	lumTintTable    = [5]float64{0.10, 0.25, 0.50, 0.75, 0.90}
	colorTintTable  = [3]float64{0.20, 0.40, 0.60}
	colorShadeTable = [2]float64{0.75, 0.50}
)

const (
	luminanceLow  = 0.2
	luminanceHigh = 0.8
)

// String returns the lower-case shade name.
func (s Shade) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("shade(%d)", int(s))
	}
	return shadeNames[s]
}

// IsValid reports whether s is one of the defined shades.
func (s Shade) IsValid() bool {
	return s >= Unshaded && s <= Darkest
}

// ParseShade parses a shade name (case-insensitive) or its ordinal.
func ParseShade(name string) (Shade, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shadeNames {
		if n == name || fmt.Sprint(i) == name {
			return Shade(i), nil
		}
	}
	return Unshaded, fmt.Errorf("unknown shade %q (valid: %s)", name, strings.Join(shadeNames[:], ", "))
}

// AllShades returns the shaded levels, Lightest through Darkest.
func AllShades() []Shade {
	return []Shade{Lightest, Lighter, Medium, Darker, Darkest}
}

// ShadeOf returns the requested shade of c. Unshaded and invalid levels
// return c unchanged.
//
// The colour is classified into one of five buckets, each with its own table:
//
//	white:      darken  [0.95 0.85 0.75 0.65 0.50]
//	black:      lighten [0.50 0.65 0.75 0.85 0.95]
//	light >0.8: darken  [0.90 0.75 0.50 0.25 0.10]
//	dark  <0.2: lighten [0.10 0.25 0.50 0.75 0.90]
//	otherwise:  lighten [0.20 0.40 0.60] then darken [0.75 0.50]
//
// The factor is applied to HSL lightness; alpha is preserved.
func ShadeOf(c Color, level Shade) Color {
	if level == Unshaded || !level.IsValid() {
		return c
	}

	hsl := c.HSL()
	idx := int(level) - 1

	switch {
	case c.IsWhite():
		hsl = darkenHSL(hsl, whiteShadeTable[idx])
	case c.IsBlack():
		hsl = lightenHSL(hsl, blackTintTable[idx])
	case hsl.L/MaxSV > luminanceHigh:
		hsl = darkenHSL(hsl, lumShadeTable[idx])
	case hsl.L/MaxSV < luminanceLow:
		hsl = lightenHSL(hsl, lumTintTable[idx])
	case idx < len(colorTintTable):
		hsl = lightenHSL(hsl, colorTintTable[idx])
	default:
		hsl = darkenHSL(hsl, colorShadeTable[idx-len(colorTintTable)])
	}

	rgb := hslToRGB(hsl)
	rgb.A = c.rgba.A
	return newColor(rgb)
}

// darkenHSL scales lightness by factor.
func darkenHSL(hsl HSL, factor float64) HSL {
	hsl.L *= factor
	return hsl
}

// lightenHSL pulls lightness toward 100; factor is the weight kept from the
// original lightness.
func lightenHSL(hsl HSL, factor float64) HSL {
	hsl.L = hsl.L*factor + MaxSV*(1-factor)
	return hsl
}
