package colour

import (
	"math"
)

// rgbToHSV converts 8-bit RGB to HSV.
// Returns hue (0-360), saturation (0-100), value (0-100).
func rgbToHSV(rgb RGBA) HSV {
	r := float64(rgb.R) / MaxRGBA
	g := float64(rgb.G) / MaxRGBA
	b := float64(rgb.B) / MaxRGBA

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	hsv := HSV{V: maxVal * MaxSV}
	if maxVal > 0 {
		hsv.S = delta / maxVal * MaxSV
	}
	if delta == 0 {
		return hsv
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	hsv.H = wrapHue(h * 60)
	return hsv
}

// hsvToRGB converts HSV to 8-bit RGB with full alpha, rounding each channel.
func hsvToRGB(hsv HSV) RGBA {
	s := hsv.S / MaxSV
	v := hsv.V / MaxSV

	c := v * s
	hp := wrapHue(hsv.H) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGBA{
		R: clampChannel((r + m) * MaxRGBA),
		G: clampChannel((g + m) * MaxRGBA),
		B: clampChannel((b + m) * MaxRGBA),
		A: MaxRGBA,
	}
}

// hsvToHSL converts HSV to HSL. Both use 0-100 for saturation and the
// lightness/value channel.
func hsvToHSL(hsv HSV) HSL {
	s := hsv.S / MaxSV
	v := hsv.V / MaxSV

	l := (2 - s) * v
	sl := s * v
	div := l
	if l > 1 {
		div = 2 - l
	}
	if div > 0 {
		sl /= div
	} else {
		sl = 0
	}

	return HSL{H: hsv.H, S: sl * MaxSV, L: l / 2 * MaxSV}
}

// hslToHSV converts HSL to HSV.
func hslToHSV(hsl HSL) HSV {
	s := hsl.S / MaxSV
	l := hsl.L / MaxSV

	v := l + s*math.Min(l, 1-l)
	sv := 0.0
	if v > 0 {
		sv = 2 * (1 - l/v)
	}
	return HSV{H: hsl.H, S: sv * MaxSV, V: v * MaxSV}
}

// hslToRGB converts HSL to 8-bit RGB with full alpha.
func hslToRGB(hsl HSL) RGBA {
	s := hsl.S / MaxSV
	l := hsl.L / MaxSV

	if s == 0 {
		// Achromatic (grey).
		v := clampChannel(l * MaxRGBA)
		return RGBA{R: v, G: v, B: v, A: MaxRGBA}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGBA{
		R: clampChannel(hueToRGB(p, q, hsl.H+120) * MaxRGBA),
		G: clampChannel(hueToRGB(p, q, hsl.H) * MaxRGBA),
		B: clampChannel(hueToRGB(p, q, hsl.H-120) * MaxRGBA),
		A: MaxRGBA,
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = wrapHue(t)

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}
