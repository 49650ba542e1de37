package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteBase(t *testing.T) {
	p := DefaultPalette()

	c, err := p.Base(PalettePrimary)
	require.NoError(t, err)
	assert.Equal(t, "#0078d7", c.String())

	c, err = p.Base(PaletteNeutral)
	require.NoError(t, err)
	assert.Equal(t, "#888888", c.String())

	c, err = p.Base(PaletteSecondary)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", c.String())

	_, err = p.Base(PaletteSlot("tertiary"))
	assert.Error(t, err)
}

func TestPaletteShades(t *testing.T) {
	p := DefaultPalette()
	shades, err := p.Shades(PaletteNeutral)
	require.NoError(t, err)
	require.Len(t, shades, 6)

	assert.True(t, shades[0].Equal(p.Neutral))
	for i := 2; i < len(shades); i++ {
		assert.Less(t, Luminance(shades[i]), Luminance(shades[i-1]))
	}

	_, err = p.Shades(PaletteSlot(""))
	assert.Error(t, err)
}

func TestResolveStandardRules(t *testing.T) {
	p := DefaultPalette()
	rules, err := p.ResolveStandardRules()
	require.NoError(t, err)
	require.Len(t, rules, len(StandardSemanticRules())+1)

	assert.Equal(t, "background", rules[0].Name)
	assert.True(t, rules[0].Color.Equal(White))

	byName := make(map[string]ResolvedRule, len(rules))
	for _, r := range rules {
		byName[r.Name] = r
	}

	assert.True(t, byName["inputEmphasizedBackground"].Color.Equal(p.Primary))
	assert.True(t, byName["emphasizedBackground"].Color.Equal(p.Primary))
	assert.True(t, byName["foreground"].Color.Equal(ShadeOf(p.Neutral, Darkest)))
	assert.True(t, byName["inputBackgroundHover"].Color.Equal(ShadeOf(p.Neutral, Medium)))
	assert.Equal(t, byName["disabledForeground"].Color, byName["inputEmphasizedForeground"].Color)
}

func TestResolveRulesUnknownPalette(t *testing.T) {
	_, err := DefaultPalette().ResolveRules([]SemanticRule{
		{Name: "link", Palette: PaletteSlot("tertiary"), Shade: Darker},
	})
	assert.ErrorContains(t, err, "rule link")
	assert.ErrorContains(t, err, "tertiary")
}
