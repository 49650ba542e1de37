package colour

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 1.0, Luminance(White), 1e-9)
	assert.InDelta(t, 0.0, Luminance(Black), 1e-9)
	assert.InDelta(t, 0.2126, Luminance(MustParse("#ff0000")), 1e-9)
	assert.InDelta(t, 0.7152, Luminance(MustParse("#00ff00")), 1e-9)

	// Accepts any image/color.Color.
	assert.InDelta(t, 1.0, Luminance(color.White), 1e-9)
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"#000000", "#ffffff", 21},
		{"#ffffff", "#ffffff", 1},
		{"#767676", "#ffffff", 4.54},
		{"#777777", "#ffffff", 4.48},
		{"#666666", "#ffffff", 5.74},
		{"#999999", "#ffffff", 2.85},
		{"#000000", "#777777", 4.69},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)
			assert.InDelta(t, tt.want, ContrastRatio(a, b), 0.01)
			assert.Equal(t, ContrastRatio(a, b), ContrastRatio(b, a), "contrast must be symmetric")
		})
	}
}

func TestContrastRatioIgnoresAlpha(t *testing.T) {
	assert.InDelta(t, 21, ContrastRatio(Black.WithAlpha(0), White), 1e-9)
}

func TestWCAGLevels(t *testing.T) {
	assert.True(t, MeetsAA(MustParse("#767676"), White))
	assert.False(t, MeetsAA(MustParse("#777777"), White))
	assert.True(t, MeetsAALarge(MustParse("#999999").WithAlpha(255), Black))
	assert.True(t, MeetsAAA(Black, White))

	assert.Equal(t, "AAA", WCAGLevel(Black, White))
	assert.Equal(t, "AA", WCAGLevel(MustParse("#666666"), White))
	assert.Equal(t, "AA Large", WCAGLevel(MustParse("#888888"), White))
	assert.Equal(t, "fail", WCAGLevel(MustParse("#eeeeee"), White))
}
