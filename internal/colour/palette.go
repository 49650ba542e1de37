package colour

import (
	"fmt"
)

// PaletteSlot identifies a base palette colour of the standard theme rules.
type PaletteSlot string

// Standard palette slots.
const (
	PalettePrimary   PaletteSlot = "primary"
	PaletteNeutral   PaletteSlot = "neutral"
	PaletteSecondary PaletteSlot = "secondary"
)

// Palette holds the three base colours of the standard theme rules.
type Palette struct {
	Primary   Color
	Neutral   Color
	Secondary Color
}

// DefaultPalette returns #0078d7 primary, #888 neutral and #f00 secondary.
func DefaultPalette() Palette {
	return Palette{
		Primary:   MustParse("#0078d7"),
		Neutral:   MustParse("#888"),
		Secondary: MustParse("#f00"),
	}
}

// Base returns the base colour for a palette slot.
func (p Palette) Base(slot PaletteSlot) (Color, error) {
	switch slot {
	case PalettePrimary:
		return p.Primary, nil
	case PaletteNeutral:
		return p.Neutral, nil
	case PaletteSecondary:
		return p.Secondary, nil
	}
	return Color{}, fmt.Errorf("unknown palette slot %q", slot)
}

// Shades returns every shade (Unshaded through Darkest) of a palette slot.
func (p Palette) Shades(slot PaletteSlot) ([]Color, error) {
	base, err := p.Base(slot)
	if err != nil {
		return nil, err
	}
	out := make([]Color, 0, Darkest+1)
	out = append(out, base)
	for _, s := range AllShades() {
		out = append(out, ShadeOf(base, s))
	}
	return out, nil
}

// SemanticRule maps a semantic role onto a shade of a palette slot.
type SemanticRule struct {
	Name    string
	Palette PaletteSlot
	Shade   Shade
}

// StandardSemanticRules returns the standard semantic slot rules. Background
// is not listed: it is a fixed white in the standard rules.
func StandardSemanticRules() []SemanticRule {
	return []SemanticRule{
		{"foreground", PaletteNeutral, Darkest},

		{"inputEmphasizedBackground", PalettePrimary, Unshaded},
		{"inputEmphasizedBackgroundHover", PalettePrimary, Medium},
		{"inputEmphasizedForeground", PaletteNeutral, Lightest},
		{"inputEmphasizedForegroundHover", PaletteNeutral, Lighter},
		{"inputBackground", PaletteNeutral, Lighter},
		{"inputBackgroundHover", PaletteNeutral, Medium},
		{"inputForeground", PaletteNeutral, Darker},
		{"inputForegroundHover", PaletteNeutral, Darkest},
		{"disabledBackground", PaletteNeutral, Medium},
		{"disabledForeground", PaletteNeutral, Lightest},

		{"emphasizedBackground", PalettePrimary, Unshaded},
		{"emphasizedForeground", PaletteNeutral, Lightest},
		{"neutralBackground", PaletteNeutral, Lighter},
		{"neutralForeground", PaletteNeutral, Darker},
	}
}

// ResolvedRule is a SemanticRule with its computed colour.
type ResolvedRule struct {
	SemanticRule
	Color Color
}

// ResolveStandardRules applies StandardSemanticRules to the palette, with
// background fixed to white.
func (p Palette) ResolveStandardRules() ([]ResolvedRule, error) {
	return p.ResolveRules(StandardSemanticRules())
}

// ResolveRules applies rules to the palette after a white background entry.
func (p Palette) ResolveRules(rules []SemanticRule) ([]ResolvedRule, error) {
	out := make([]ResolvedRule, 0, len(rules)+1)
	out = append(out, ResolvedRule{
		SemanticRule: SemanticRule{Name: "background", Palette: PaletteNeutral, Shade: Unshaded},
		Color:        White,
	})
	for _, r := range rules {
		base, err := p.Base(r.Palette)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", r.Name, err)
		}
		out = append(out, ResolvedRule{SemanticRule: r, Color: ShadeOf(base, r.Shade)})
	}
	return out, nil
}
