package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBackgroundRamp(t *testing.T) {
	ramp, err := BuildBackgroundRamp(White, DefaultRampLength, false)
	require.NoError(t, err)
	require.Len(t, ramp, DefaultRampLength)

	assert.True(t, ramp.Lightest().Equal(White))
	assert.Equal(t, "#030303", ramp.Darkest().String())

	report := CheckSmoothness(ramp)
	assert.True(t, report.Monotonic)
	assert.Zero(t, report.Duplicates)
	assert.Greater(t, Luminance(ramp.Lightest()), Luminance(ramp.Darkest()))
}

func TestBuildBackgroundRampKeepsHueAndSaturation(t *testing.T) {
	base := MustParse("#fff4ce")
	ramp, err := BuildBackgroundRamp(base, 20, false)
	require.NoError(t, err)

	for i, c := range ramp[:10] {
		assert.InDelta(t, base.HSV().S, c.HSV().S, 1e-9, "index %d", i)
		assert.InDelta(t, base.HSV().H, c.HSV().H, 1e-9, "index %d", i)
	}
}

func TestBuildBackgroundRampInverted(t *testing.T) {
	ramp, err := BuildBackgroundRamp(Black, DefaultRampLength, true)
	require.NoError(t, err)
	require.Len(t, ramp, DefaultRampLength)

	for i, c := range ramp {
		assert.Equal(t, uint8(MaxRGBA), c.Alpha(), "index %d must be populated", i)
	}
	assert.True(t, ramp.Darkest().Equal(Black))
	assert.Equal(t, "#fcfcfc", ramp.Lightest().String())
	assert.True(t, CheckSmoothness(ramp).Monotonic)
}

func TestBuildRampInvalidLength(t *testing.T) {
	_, err := BuildBackgroundRamp(White, 0, false)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = BuildAccentRamp(White, Black, -1, true, false)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestBuildAccentRampPivotPreservesBase(t *testing.T) {
	base := MustParse("#0078d4")
	bg := MustParse("#faf9f8")

	for _, length := range []int{1, 2, 3, 10, 99} {
		for _, fancy := range []bool{true, false} {
			for _, inverted := range []bool{true, false} {
				ramp, err := BuildAccentRamp(base, bg, length, fancy, inverted)
				require.NoError(t, err)
				require.Len(t, ramp, length)
				assert.True(t, ramp[length/2].Equal(base), "length=%d fancy=%v inverted=%v", length, fancy, inverted)
				assert.Equal(t, length/2, ramp.Pivot())
			}
		}
	}
}

func TestBuildAccentRampEnds(t *testing.T) {
	base := MustParse("#0078d4")
	bg := MustParse("#faf9f8")

	t.Run("fancy", func(t *testing.T) {
		ramp, err := BuildAccentRamp(base, bg, DefaultRampLength, true, false)
		require.NoError(t, err)
		assert.True(t, ramp.Lightest().Equal(bg), "light end moves toward background")
		assert.True(t, ramp.Darkest().Equal(Black), "dark end darkens to black")
		assert.True(t, CheckSmoothness(ramp).Monotonic)
	})

	t.Run("plain", func(t *testing.T) {
		ramp, err := BuildAccentRamp(base, bg, DefaultRampLength, false, false)
		require.NoError(t, err)
		assert.True(t, ramp.Lightest().Equal(White), "light end lightens to white")
		assert.True(t, ramp.Darkest().Equal(Black))
	})

	t.Run("fancy inverted", func(t *testing.T) {
		ramp, err := BuildAccentRamp(base, bg, DefaultRampLength, true, true)
		require.NoError(t, err)
		assert.True(t, ramp.Lightest().Equal(White))
		assert.True(t, ramp.Darkest().Equal(bg), "dark end moves toward background")
	})
}

func TestBuildAccentRampDeterministic(t *testing.T) {
	a, err := BuildAccentRamp(MustParse("#333"), White, DefaultRampLength, true, false)
	require.NoError(t, err)
	b, err := BuildAccentRamp(MustParse("#333"), White, DefaultRampLength, true, false)
	require.NoError(t, err)
	assert.Equal(t, a.Hex(), b.Hex())
}

func TestRampHelpers(t *testing.T) {
	ramp := Ramp{White, MustParse("#808080"), Black}

	assert.Equal(t, 1, ramp.IndexOf(MustParse("#808080")))
	assert.Equal(t, -1, ramp.IndexOf(MustParse("#123456")))
	assert.True(t, ramp.Contains(Black))
	assert.Equal(t, []string{"#ffffff", "#808080", "#000000"}, ramp.Hex())

	c, err := ramp.At(2)
	require.NoError(t, err)
	assert.True(t, c.Equal(Black))
	_, err = ramp.At(3)
	assert.Error(t, err)

	var empty Ramp
	assert.Equal(t, Color{}, empty.Lightest())
	assert.Equal(t, Color{}, empty.Darkest())
}

func TestColourOps(t *testing.T) {
	assert.Equal(t, "#808080", DarkenHSV(White, 0.5).String())
	assert.Equal(t, "#808080", LightenHSV(Black, 0.5).String())
	assert.Equal(t, "#808080", Towards(Black, White, 0.5).String())
	assert.True(t, Towards(Black, White, 0).Equal(Black))
	assert.True(t, Towards(Black, White, 1).Equal(White))

	half := Towards(MustParse("rgba(0, 0, 0, 0.5)"), White, 1)
	assert.Equal(t, uint8(128), half.Alpha(), "alpha comes from the source colour")
}

func TestCheckSmoothness(t *testing.T) {
	report := CheckSmoothness(Ramp{Black, White})
	assert.False(t, report.Monotonic)
	assert.Len(t, report.Steps, 1)
	assert.Greater(t, report.MaxStep, 50.0)

	report = CheckSmoothness(Ramp{White, White, Black})
	assert.Equal(t, 1, report.Duplicates)
	assert.True(t, report.Monotonic)

	report = CheckSmoothness(Ramp{White})
	assert.True(t, report.Monotonic)
	assert.Empty(t, report.Steps)
}
