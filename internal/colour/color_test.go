package colour

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ color.Color = Color{}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGBA
		str   string
	}{
		{name: "short hex", input: "#fff", want: RGBA{255, 255, 255, 255}, str: "#ffffff"},
		{name: "upper hex", input: "#0078D4", want: RGBA{0, 120, 212, 255}, str: "#0078d4"},
		{name: "padded hex", input: "  #ABC  ", want: RGBA{170, 187, 204, 255}, str: "#aabbcc"},
		{name: "hex with alpha", input: "#12345678", want: RGBA{18, 52, 86, 120}, str: "rgba(18, 52, 86, 0.471)"},
		{name: "short hex with alpha", input: "#f008", want: RGBA{255, 0, 0, 136}, str: "rgba(255, 0, 0, 0.533)"},
		{name: "rgb", input: "rgb(0, 120, 212)", want: RGBA{0, 120, 212, 255}, str: "#0078d4"},
		{name: "rgb space separated", input: "rgb(0 120 212 / 50%)", want: RGBA{0, 120, 212, 128}, str: "rgba(0, 120, 212, 0.502)"},
		{name: "rgba", input: "rgba(10, 20, 30, 0.5)", want: RGBA{10, 20, 30, 128}, str: "rgba(10, 20, 30, 0.502)"},
		{name: "rgb percent", input: "rgb(100%, 0%, 0%)", want: RGBA{255, 0, 0, 255}, str: "#ff0000"},
		{name: "hsl", input: "hsl(0, 100%, 50%)", want: RGBA{255, 0, 0, 255}, str: "#ff0000"},
		{name: "hsla grey", input: "hsla(120, 0%, 50%, 1)", want: RGBA{128, 128, 128, 255}, str: "#808080"},
		{name: "hsv", input: "hsv(210, 100, 50)", want: RGBA{0, 64, 128, 255}, str: "#004080"},
		{name: "named", input: "Red", want: RGBA{255, 0, 0, 255}, str: "#ff0000"},
		{name: "named rebeccapurple", input: "rebeccapurple", want: RGBA{102, 51, 153, 255}, str: "#663399"},
		{name: "transparent", input: "transparent", want: RGBA{}, str: "transparent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Channels())
			assert.Equal(t, tt.str, c.String())
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"#12",
		"#ggg",
		"#1234567",
		"rgb(300, 0, 0)",
		"rgb(1, 2)",
		"rgb(1, 2, 3",
		"rgba(1, 2, 3, 2)",
		"hsl(0, 120%, 50%)",
		"cmyk(0, 0, 0, 0)",
		"notacolour",
		"rgb(nan, 0, 0)",
		"rgb(0, inf, 0)",
		"rgb(0, 0, NaN%)",
		"rgba(0, 0, 0, nan)",
		"rgb(0 0 0 / NaN%)",
		"hsl(120, nan%, 50%)",
		"hsl(nan, 50%, 50%)",
		"hsv(0, 50%, nan)",
		"hsv(-inf, 50%, 50%)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseColor(input)
			assert.ErrorIs(t, err, ErrInvalidColour)
		})
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	alphas := []int{0, 1, 2, 64, 127, 128, 200, 254, 255}
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 85 {
			for _, a := range alphas {
				c, err := FromRGBA(r, 255-g, g, a)
				require.NoError(t, err)

				parsed, err := ParseColor(c.String())
				require.NoError(t, err, "parsing %q", c.String())
				assert.True(t, parsed.Equal(c), "%q parsed to %q", c.String(), parsed.String())
			}
		}
	}
}

func TestAlphaRoundTripAllValues(t *testing.T) {
	for a := 0; a <= 255; a++ {
		c, err := FromRGBA(1, 2, 3, a)
		require.NoError(t, err)
		parsed, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, uint8(a), parsed.Alpha(), "alpha %d via %q", a, c.String())
	}
}

func TestFromRGBAOutOfRange(t *testing.T) {
	_, err := FromRGBA(256, 0, 0, 255)
	assert.ErrorIs(t, err, ErrInvalidColour)

	_, err = FromRGBA(0, 0, 0, -1)
	assert.ErrorIs(t, err, ErrInvalidColour)
}

func TestHSVConsistency(t *testing.T) {
	for _, s := range []string{"#0078d4", "#333333", "#ffffff", "#000000", "#ff8800", "#12ab9c", "#7f00ff"} {
		t.Run(s, func(t *testing.T) {
			c := MustParse(s)
			hsv := c.HSV()
			back := FromHSV(hsv.H, hsv.S, hsv.V)
			assert.True(t, back.Equal(c), "%s -> %+v -> %s", s, hsv, back)
		})
	}
}

func TestHSVValues(t *testing.T) {
	hsv := MustParse("#ff0000").HSV()
	assert.InDelta(t, 0, hsv.H, 1e-9)
	assert.InDelta(t, 100, hsv.S, 1e-9)
	assert.InDelta(t, 100, hsv.V, 1e-9)

	hsv = MustParse("#0000ff").HSV()
	assert.InDelta(t, 240, hsv.H, 1e-9)

	hsl := MustParse("#ffffff").HSL()
	assert.InDelta(t, 0, hsl.S, 1e-9)
	assert.InDelta(t, 100, hsl.L, 1e-9)

	hsl = MustParse("#0078d4").HSL()
	assert.InDelta(t, 100, hsl.S, 1e-9)
	assert.InDelta(t, 212.0/255*50, hsl.L, 1e-9)
}

func TestHSLToHSVRoundTrip(t *testing.T) {
	for _, s := range []string{"#0078d4", "#808080", "#f0f0f0"} {
		hsl := MustParse(s).HSL()
		hsv := hslToHSV(hsl)
		assert.InDelta(t, MustParse(s).HSV().S, hsv.S, 1e-6, s)
		assert.InDelta(t, MustParse(s).HSV().V, hsv.V, 1e-6, s)
	}
}

func TestEqualIgnoresHSVPrecision(t *testing.T) {
	assert.True(t, FromHSV(0, 0, 100).Equal(White))
	assert.True(t, FromHSV(360, 0, 0).Equal(Black))
	assert.False(t, White.Equal(White.WithAlpha(10)))
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	assert.Equal(t, RGBA{10, 20, 30, 128}, c.Channels())

	r, g, b, a := MustParse("#ff0000").RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestColorTextMarshalling(t *testing.T) {
	text, err := MustParse("#0078d4").MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#0078d4", string(text))

	var c Color
	require.NoError(t, c.UnmarshalText([]byte("rgb(0, 120, 212)")))
	assert.Equal(t, "#0078d4", c.Hex())
	assert.Error(t, c.UnmarshalText([]byte("bogus")))
}

func TestHexAlpha(t *testing.T) {
	assert.Equal(t, "#0078d4ff", MustParse("#0078d4").HexAlpha())
	assert.Equal(t, "#00000000", Transparent.HexAlpha())
}

func TestFromHSVNaNComponents(t *testing.T) {
	nan := math.NaN()

	c := FromHSVA(nan, 50, nan, MaxRGBA)
	assert.Equal(t, HSV{S: 50}, c.HSV())
	assert.Equal(t, "#000000", c.String())

	c = FromHSL(math.Inf(1), nan, 50, MaxRGBA)
	assert.Equal(t, "#808080", c.String())
}
