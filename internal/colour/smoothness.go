package colour

import (
	"github.com/lucasb-eyer/go-colorful"
)

// SmoothnessReport summarises how evenly a ramp progresses.
type SmoothnessReport struct {
	// Steps holds the CIEDE2000 distance between each adjacent pair.
	Steps []float64 `json:"steps" yaml:"steps"`

	MaxStep  float64 `json:"maxStep" yaml:"maxStep"`
	MeanStep float64 `json:"meanStep" yaml:"meanStep"`

	// Duplicates counts adjacent pairs with identical RGBA.
	Duplicates int `json:"duplicates" yaml:"duplicates"`

	// Monotonic is true when relative luminance never increases from index 0
	// toward the end of the ramp.
	Monotonic bool `json:"monotonic" yaml:"monotonic"`
}

// CheckSmoothness measures perceptual step sizes along a ramp.
func CheckSmoothness(r Ramp) SmoothnessReport {
	report := SmoothnessReport{Monotonic: true}
	if len(r) < 2 {
		return report
	}

	report.Steps = make([]float64, len(r)-1)
	var total float64
	for i := 1; i < len(r); i++ {
		prev, cur := r[i-1], r[i]
		step := toColorful(prev).DistanceCIEDE2000(toColorful(cur))
		report.Steps[i-1] = step
		total += step
		report.MaxStep = max(report.MaxStep, step)

		if prev.Equal(cur) {
			report.Duplicates++
		}
		if Luminance(cur) > Luminance(prev) {
			report.Monotonic = false
		}
	}
	report.MeanStep = total / float64(len(report.Steps))

	return report
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.rgba.R) / MaxRGBA,
		G: float64(c.rgba.G) / MaxRGBA,
		B: float64(c.rgba.B) / MaxRGBA,
	}
}
