package colour

import (
	"fmt"
)

// Contrast thresholds used when deriving a theme.
const (
	TextContrast       = 4.5
	BorderContrast     = 1.5
	HoverContrast      = 1.2
	BackgroundContrast = 3.0
)

// Thresholds holds the minimum contrast ratios for each kind of slot.
type Thresholds struct {
	Text       float64 `json:"text" yaml:"text" mapstructure:"text" validate:"gte=1,lte=21"`
	Border     float64 `json:"border" yaml:"border" mapstructure:"border" validate:"gte=1,lte=21"`
	Hover      float64 `json:"hover" yaml:"hover" mapstructure:"hover" validate:"gte=1,lte=21"`
	Background float64 `json:"background" yaml:"background" mapstructure:"background" validate:"gte=1,lte=21"`
}

// DefaultThresholds returns 4.5 text, 1.5 border, 1.2 hover, 3.0 background.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Text:       TextContrast,
		Border:     BorderContrast,
		Hover:      HoverContrast,
		Background: BackgroundContrast,
	}
}

// Slot names a semantic role in a theme.
type Slot string

// Theme slots, in the order they are emitted.
const (
	SlotDefaultBackground Slot = "default-background"
	SlotDefaultText       Slot = "default-text"
	SlotDefaultBorder     Slot = "default-border"

	SlotOldButtonBackground        Slot = "oldButton-background"
	SlotOldButtonText              Slot = "oldButton-text"
	SlotOldButtonBorder            Slot = "oldButton-border"
	SlotOldButtonBackgroundHovered Slot = "oldButton-background-hovered"
	SlotOldButtonTextHovered       Slot = "oldButton-text-hovered"
	SlotOldButtonBorderHovered     Slot = "oldButton-border-hovered"

	SlotNewButtonBackground        Slot = "newButton-background"
	SlotNewButtonText              Slot = "newButton-text"
	SlotNewButtonBorder            Slot = "newButton-border"
	SlotNewButtonBackgroundHovered Slot = "newButton-background-hovered"
	SlotNewButtonTextHovered       Slot = "newButton-text-hovered"
	SlotNewButtonBorderHovered     Slot = "newButton-border-hovered"

	SlotAccentButtonBackground        Slot = "accentButton-background"
	SlotAccentButtonText              Slot = "accentButton-text"
	SlotAccentButtonBorder            Slot = "accentButton-border"
	SlotAccentButtonBackgroundHovered Slot = "accentButton-background-hovered"
	SlotAccentButtonTextHovered       Slot = "accentButton-text-hovered"
	SlotAccentButtonBorderHovered     Slot = "accentButton-border-hovered"
)

// AllSlots returns every theme slot in emission order.
func AllSlots() []Slot {
	return []Slot{
		SlotDefaultBackground, SlotDefaultText, SlotDefaultBorder,
		SlotOldButtonBackground, SlotOldButtonText, SlotOldButtonBorder,
		SlotOldButtonBackgroundHovered, SlotOldButtonTextHovered, SlotOldButtonBorderHovered,
		SlotNewButtonBackground, SlotNewButtonText, SlotNewButtonBorder,
		SlotNewButtonBackgroundHovered, SlotNewButtonTextHovered, SlotNewButtonBorderHovered,
		SlotAccentButtonBackground, SlotAccentButtonText, SlotAccentButtonBorder,
		SlotAccentButtonBackgroundHovered, SlotAccentButtonTextHovered, SlotAccentButtonBorderHovered,
	}
}

// CSSVar returns the slot as a CSS custom property name, e.g. "--default-text".
func (s Slot) CSSVar() string {
	return "--" + string(s)
}

// SubTheme is the set of colours for one kind of surface.
type SubTheme struct {
	Background        Color `json:"background" yaml:"background"`
	Text              Color `json:"text" yaml:"text"`
	Border            Color `json:"border" yaml:"border"`
	BackgroundHovered Color `json:"backgroundHovered" yaml:"backgroundHovered"`
	TextHovered       Color `json:"textHovered" yaml:"textHovered"`
	BorderHovered     Color `json:"borderHovered" yaml:"borderHovered"`
}

// SlotValue pairs a slot with its colour.
type SlotValue struct {
	Slot  Slot
	Color Color
}

// Theme is the complete set of semantic colours derived for one background.
type Theme struct {
	Default         SubTheme    `json:"default" yaml:"default"`
	OldButton       SubTheme    `json:"oldButton" yaml:"oldButton"`
	NewButton       SubTheme    `json:"newButton" yaml:"newButton"`
	AccentButton    SubTheme    `json:"accentButton" yaml:"accentButton"`
	BackgroundIndex int         `json:"backgroundIndex" yaml:"backgroundIndex"`
	Diagnostics     Diagnostics `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Slots returns every slot and its colour in emission order.
func (t *Theme) Slots() []SlotValue {
	return []SlotValue{
		{SlotDefaultBackground, t.Default.Background},
		{SlotDefaultText, t.Default.Text},
		{SlotDefaultBorder, t.Default.Border},

		{SlotOldButtonBackground, t.OldButton.Background},
		{SlotOldButtonText, t.OldButton.Text},
		{SlotOldButtonBorder, t.OldButton.Border},
		{SlotOldButtonBackgroundHovered, t.OldButton.BackgroundHovered},
		{SlotOldButtonTextHovered, t.OldButton.TextHovered},
		{SlotOldButtonBorderHovered, t.OldButton.BorderHovered},

		{SlotNewButtonBackground, t.NewButton.Background},
		{SlotNewButtonText, t.NewButton.Text},
		{SlotNewButtonBorder, t.NewButton.Border},
		{SlotNewButtonBackgroundHovered, t.NewButton.BackgroundHovered},
		{SlotNewButtonTextHovered, t.NewButton.TextHovered},
		{SlotNewButtonBorderHovered, t.NewButton.BorderHovered},

		{SlotAccentButtonBackground, t.AccentButton.Background},
		{SlotAccentButtonText, t.AccentButton.Text},
		{SlotAccentButtonBorder, t.AccentButton.Border},
		{SlotAccentButtonBackgroundHovered, t.AccentButton.BackgroundHovered},
		{SlotAccentButtonTextHovered, t.AccentButton.TextHovered},
		{SlotAccentButtonBorderHovered, t.AccentButton.BorderHovered},
	}
}

// Get returns the colour for a slot.
func (t *Theme) Get(slot Slot) (Color, bool) {
	for _, sv := range t.Slots() {
		if sv.Slot == slot {
			return sv.Color, true
		}
	}
	return Color{}, false
}

// Map returns slot name to canonical colour string.
func (t *Theme) Map() map[Slot]string {
	slots := t.Slots()
	m := make(map[Slot]string, len(slots))
	for _, sv := range slots {
		m[sv.Slot] = sv.Color.String()
	}
	return m
}

// DeriveTheme derives a theme from the three ramps and a background index
// using the default thresholds.
func DeriveTheme(background, primary, text Ramp, backgroundIndex int) (*Theme, error) {
	return DeriveThemeWith(background, primary, text, backgroundIndex, DefaultThresholds())
}

// DeriveThemeWith derives a theme with explicit thresholds.
//
// An out-of-range backgroundIndex is clamped into the background ramp and
// recorded as a DiagnosticIndexOutOfRange. Each slot picks the closest ramp
// entry meeting its threshold; shortfalls are recorded, not returned as errors.
func DeriveThemeWith(background, primary, text Ramp, backgroundIndex int, th Thresholds) (*Theme, error) {
	switch {
	case len(background) == 0:
		return nil, fmt.Errorf("background ramp: %w", ErrEmptyRamp)
	case len(primary) == 0:
		return nil, fmt.Errorf("primary ramp: %w", ErrEmptyRamp)
	case len(text) == 0:
		return nil, fmt.Errorf("text ramp: %w", ErrEmptyRamp)
	}

	t := &Theme{}

	if backgroundIndex < 0 || backgroundIndex >= len(background) {
		clamped := min(max(backgroundIndex, 0), len(background)-1)
		t.Diagnostics = append(t.Diagnostics, Diagnostic{
			Kind:    DiagnosticIndexOutOfRange,
			Slot:    SlotDefaultBackground,
			Message: fmt.Sprintf("background index %d outside [0, %d], using %d", backgroundIndex, len(background)-1, clamped),
		})
		backgroundIndex = clamped
	}
	t.BackgroundIndex = backgroundIndex

	pick := func(slot Slot, from Color, ramp Ramp, start Start, minContrast float64) Color {
		sel := SelectAccessibleShade(from, ramp, start, minContrast)
		t.Diagnostics = append(t.Diagnostics, withSlot(sel.Diagnostics, slot)...)
		return sel.Color
	}

	textPivot := StartAt(text.Pivot())
	primaryPivot := StartAt(primary.Pivot())

	bg := background[backgroundIndex]
	t.Default.Background = bg
	t.Default.Text = pick(SlotDefaultText, bg, text, textPivot, th.Text)
	t.Default.Border = pick(SlotDefaultBorder, bg, background, StartAt(0), th.Border)

	old := &t.OldButton
	old.Background = pick(SlotOldButtonBackground, bg, background, StartAt(0), th.Background)
	old.Border = Transparent
	old.Text = pick(SlotOldButtonText, old.Background, text, textPivot, th.Text)
	old.BackgroundHovered = pick(SlotOldButtonBackgroundHovered, old.Background, background, StartNear(old.Background), th.Hover)
	old.TextHovered = pick(SlotOldButtonTextHovered, old.BackgroundHovered, text, StartNear(old.Text), th.Text)
	old.BorderHovered = Transparent

	nb := &t.NewButton
	nb.Background = t.Default.Background
	nb.Text = t.Default.Text
	nb.Border = t.Default.Border
	nb.BackgroundHovered = pick(SlotNewButtonBackgroundHovered, bg, background, StartNear(bg), th.Hover)
	nb.BorderHovered = pick(SlotNewButtonBorderHovered, t.Default.Border, background, StartNear(t.Default.Border), th.Hover)
	nb.TextHovered = pick(SlotNewButtonTextHovered, nb.BackgroundHovered, text, StartNear(nb.Text), th.Text)

	acc := &t.AccentButton
	acc.Background = pick(SlotAccentButtonBackground, bg, primary, primaryPivot, th.Background)
	acc.Border = Transparent
	acc.Text = pick(SlotAccentButtonText, acc.Background, background, StartAt(0), th.Text)
	acc.BackgroundHovered = pick(SlotAccentButtonBackgroundHovered, acc.Background, primary, StartNear(acc.Background), th.Hover)
	acc.TextHovered = pick(SlotAccentButtonTextHovered, acc.BackgroundHovered, background, StartNear(acc.Text), th.Text)
	acc.BorderHovered = Transparent

	return t, nil
}
