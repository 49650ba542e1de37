package colour

import (
	"image/color"
	"math"
)

// WCAG 2.0 contrast thresholds.
const (
	// ContrastAA is the minimum ratio for normal text at level AA.
	ContrastAA = 4.5

	// ContrastAALarge is the minimum ratio for large text at level AA.
	ContrastAALarge = 3.0

	// ContrastAAA is the minimum ratio for normal text at level AAA.
	ContrastAAA = 7.0
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest). Alpha is ignored.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c color.Color) float64 {
	rgb := FromColor(c).rgba

	r := gammaCorrect(float64(rgb.R) / MaxRGBA)
	g := gammaCorrect(float64(rgb.G) / MaxRGBA)
	b := gammaCorrect(float64(rgb.B) / MaxRGBA)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// The result is symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 color.Color) float64 {
	l1 := Luminance(c1) + 0.05
	l2 := Luminance(c2) + 0.05

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return l1 / l2
}

// MeetsAA reports whether the pair reaches 4.5:1.
func MeetsAA(c1, c2 color.Color) bool {
	return ContrastRatio(c1, c2) >= ContrastAA
}

// MeetsAALarge reports whether the pair reaches 3:1.
func MeetsAALarge(c1, c2 color.Color) bool {
	return ContrastRatio(c1, c2) >= ContrastAALarge
}

// MeetsAAA reports whether the pair reaches 7:1.
func MeetsAAA(c1, c2 color.Color) bool {
	return ContrastRatio(c1, c2) >= ContrastAAA
}

// WCAGLevel returns the highest WCAG level the pair satisfies for normal text:
// "AAA", "AA", "AA Large" or "fail".
func WCAGLevel(c1, c2 color.Color) string {
	cr := ContrastRatio(c1, c2)
	switch {
	case cr >= ContrastAAA:
		return "AAA"
	case cr >= ContrastAA:
		return "AA"
	case cr >= ContrastAALarge:
		return "AA Large"
	default:
		return "fail"
	}
}
