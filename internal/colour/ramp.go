package colour

import (
	"fmt"
)

// DefaultRampLength is the number of shades in every ramp unless configured.
const DefaultRampLength = 99

// Ramp is an ordered sequence of shades of one base colour, from light
// (index 0) to dark (index Len()-1).
type Ramp []Color

// Len returns the number of shades.
func (r Ramp) Len() int {
	return len(r)
}

// Pivot returns floor(Len()/2), the index holding the unmodified base colour
// of an accent ramp.
func (r Ramp) Pivot() int {
	return len(r) / 2
}

// At returns the shade at index i.
// Returns an error if the index is out of bounds.
func (r Ramp) At(i int) (Color, error) {
	if i < 0 || i >= len(r) {
		return Color{}, fmt.Errorf("index out of bounds: %d (ramp has %d shades)", i, len(r))
	}
	return r[i], nil
}

// IndexOf returns the first index holding a colour equal to c, or -1.
func (r Ramp) IndexOf(c Color) int {
	for i, rc := range r {
		if rc.Equal(c) {
			return i
		}
	}
	return -1
}

// Contains reports whether c is one of the ramp's shades.
func (r Ramp) Contains(c Color) bool {
	return r.IndexOf(c) >= 0
}

// Lightest returns index 0, or the zero Color for an empty ramp.
func (r Ramp) Lightest() Color {
	if len(r) == 0 {
		return Color{}
	}
	return r[0]
}

// Darkest returns the last shade, or the zero Color for an empty ramp.
func (r Ramp) Darkest() Color {
	if len(r) == 0 {
		return Color{}
	}
	return r[len(r)-1]
}

// Hex returns the canonical string of every shade.
func (r Ramp) Hex() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.String()
	}
	return out
}

// BuildBackgroundRamp builds a ramp of length shades from base. Entry i
// darkens the HSV value channel by i/length. When inverted, entry i lightens
// by i/length and is stored at length-1-i, so index 0 stays the lightest.
func BuildBackgroundRamp(base Color, length int, inverted bool) (Ramp, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidLength, length)
	}

	ramp := make(Ramp, length)
	for i := 0; i < length; i++ {
		factor := float64(i) / float64(length)
		if inverted {
			ramp[length-1-i] = LightenHSV(base, factor)
		} else {
			ramp[i] = DarkenHSV(base, factor)
		}
	}
	return ramp, nil
}

// BuildAccentRamp builds a primary or text ramp of length shades pivoting on
// floor(length/2), which holds base unchanged.
//
// The light half (indices below the pivot) moves toward background when
// fancy and not inverted, otherwise it lightens in HSV. The dark half darkens
// in HSV unless both fancy and inverted are set, in which case it moves
// toward background.
func BuildAccentRamp(base, background Color, length int, fancy, inverted bool) (Ramp, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidLength, length)
	}

	ramp := make(Ramp, length)
	pivot := length / 2
	step := func(distance int) float64 {
		if pivot == 0 {
			return 0
		}
		return float64(distance) / float64(pivot)
	}

	// Light half.
	for i := pivot - 1; i >= 0; i-- {
		factor := step(pivot - i)
		if fancy && !inverted {
			ramp[i] = Towards(base, background, factor)
		} else {
			ramp[i] = LightenHSV(base, factor)
		}
	}

	// Dark half.
	for i := pivot + 1; i < length; i++ {
		factor := step(i - pivot)
		if fancy && inverted {
			ramp[i] = Towards(base, background, factor)
		} else {
			ramp[i] = DarkenHSV(base, factor)
		}
	}

	ramp[pivot] = base
	return ramp, nil
}

// DarkenHSV reduces the HSV value channel: v' = clamp(v - v*factor, 0, 100).
// Hue, saturation and alpha are unchanged.
func DarkenHSV(c Color, factor float64) Color {
	hsv := c.hsv
	return FromHSVA(hsv.H, hsv.S, clamp(hsv.V-hsv.V*factor, 0, MaxSV), c.rgba.A)
}

// LightenHSV desaturates and raises value:
// s' = clamp(s - s*factor, 0, 100), v' = clamp(v + (100-v)*factor, 0, 100).
func LightenHSV(c Color, factor float64) Color {
	hsv := c.hsv
	return FromHSVA(hsv.H,
		clamp(hsv.S-hsv.S*factor, 0, MaxSV),
		clamp(hsv.V+(MaxSV-hsv.V)*factor, 0, MaxSV),
		c.rgba.A)
}

// Towards linearly interpolates each RGB channel of from toward to:
// (1-factor)*from + factor*to, clamped to 0-255. Alpha is taken from from.
func Towards(from, to Color, factor float64) Color {
	mix := func(a, b uint8) uint8 {
		return clampChannel((1-factor)*float64(a) + factor*float64(b))
	}
	return newColor(RGBA{
		R: mix(from.rgba.R, to.rgba.R),
		G: mix(from.rgba.G, to.rgba.G),
		B: mix(from.rgba.B, to.rgba.B),
		A: from.rgba.A,
	})
}
