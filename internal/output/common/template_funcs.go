// Package common provides shared utilities for output plugins.
package common

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/jmylchreest/themer/internal/colour"
	"github.com/jmylchreest/themer/internal/util"
)

// TemplateFuncs returns the template functions shared by every output plugin.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Theme access.
		"get":     getSlotFunc,
		"has":     hasSlotFunc,
		"slots":   slotsFunc,
		"ramp":    rampFunc,
		"shadeOf": shadeOfFunc,

		// Format conversion.
		"hex":       hexFunc,
		"hexAlpha":  hexAlphaFunc,
		"hexNoHash": hexNoHashFunc,
		"rgb":       rgbFunc,
		"rgba":      rgbaFunc,
		"hsl":       hslFunc,
		"css":       cssFunc,

		// Alpha manipulation.
		"withAlpha": withAlphaFunc,

		// Accessibility.
		"contrast": colour.ContrastRatio,
		"wcag":     colour.WCAGLevel,

		// Naming.
		"cssVar": cssVarFunc,
		"ident":  util.Identifier,

		// String manipulation (custom wrappers for pipe-friendly argument order).
		"trimPrefix": trimPrefixFunc,
		"trimSuffix": trimSuffixFunc,
		"replace":    replaceFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// Render parses and executes a template with the shared functions.
func Render(name string, content []byte, data any) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(TemplateFuncs()).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// getSlotFunc returns the colour of a theme slot, e.g. {{ get . "default-text" }}.
func getSlotFunc(data *colour.ThemeData, slot string) (colour.Color, error) {
	if data == nil || data.Theme == nil {
		return colour.Color{}, fmt.Errorf("no theme available")
	}
	c, ok := data.Theme.Get(colour.Slot(slot))
	if !ok {
		return colour.Color{}, fmt.Errorf("slot %q not found", slot)
	}
	return c, nil
}

// hasSlotFunc reports whether the slot exists.
func hasSlotFunc(data *colour.ThemeData, slot string) bool {
	if data == nil || data.Theme == nil {
		return false
	}
	_, ok := data.Theme.Get(colour.Slot(slot))
	return ok
}

// slotsFunc returns every slot in emission order.
func slotsFunc(data *colour.ThemeData) []colour.SlotValue {
	if data == nil || data.Theme == nil {
		return nil
	}
	return data.Theme.Slots()
}

// rampFunc returns the "background", "primary" or "text" ramp.
func rampFunc(data *colour.ThemeData, name string) (colour.Ramp, error) {
	if data == nil || data.Ramps == nil {
		return nil, fmt.Errorf("no ramps available")
	}
	switch name {
	case "background":
		return data.Ramps.Background, nil
	case "primary":
		return data.Ramps.Primary, nil
	case "text":
		return data.Ramps.Text, nil
	}
	return nil, fmt.Errorf("unknown ramp %q (want background, primary or text)", name)
}

// shadeOfFunc applies a legacy shade level by name, e.g. {{ shadeOf "darker" $c }}.
func shadeOfFunc(level string, c colour.Color) (colour.Color, error) {
	s, err := colour.ParseShade(level)
	if err != nil {
		return colour.Color{}, err
	}
	return colour.ShadeOf(c, s), nil
}

// hexFunc returns colour in #rrggbb format.
func hexFunc(c colour.Color) string {
	return c.Hex()
}

// hexAlphaFunc returns colour in #rrggbbaa format.
func hexAlphaFunc(c colour.Color) string {
	return c.HexAlpha()
}

// hexNoHashFunc returns colour in rrggbb format (no # prefix).
func hexNoHashFunc(c colour.Color) string {
	return util.StripHash(c.Hex())
}

// rgbFunc returns colour in CSS rgb(r, g, b) format.
func rgbFunc(c colour.Color) string {
	return c.RGBString()
}

// rgbaFunc returns colour in CSS rgba(r, g, b, a) format.
func rgbaFunc(c colour.Color) string {
	return c.RGBAString()
}

// hslFunc returns "h s% l%" as used by shadcn/ui CSS variables.
func hslFunc(c colour.Color) string {
	hsl := c.HSL()
	return fmt.Sprintf("%.1f %.1f%% %.1f%%", hsl.H, hsl.S, hsl.L)
}

// cssFunc returns the canonical CSS string ("#rrggbb", "transparent" or rgba()).
func cssFunc(c colour.Color) string {
	return c.String()
}

// withAlphaFunc returns a copy of the colour with alpha in 0.0-1.0.
func withAlphaFunc(alpha float64, c colour.Color) colour.Color {
	alpha = min(max(alpha, 0), 1)
	return c.WithAlpha(uint8(alpha*colour.MaxRGBA + 0.5))
}

// cssVarFunc returns the CSS custom property name for a slot.
func cssVarFunc(slot colour.Slot) string {
	return slot.CSSVar()
}

// trimPrefixFunc removes a prefix from a string (pipe-friendly argument order).
// Unlike strings.TrimPrefix, this takes prefix first so it works in pipes:
//
//	{{ value | trimPrefix "#" }}
func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// trimSuffixFunc removes a suffix from a string (pipe-friendly argument order).
func trimSuffixFunc(suffix, s string) string {
	return strings.TrimSuffix(s, suffix)
}

// replaceFunc replaces all occurrences of old with new (pipe-friendly argument order):
//
//	{{ value | replace "-" "_" }}
func replaceFunc(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}
