// Package tailwind provides a Tailwind CSS / shadcn/ui output plugin.
package tailwind

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/themer/internal/colour"
	"github.com/jmylchreest/themer/internal/output"
	"github.com/jmylchreest/themer/internal/output/common"
	tmplloader "github.com/jmylchreest/themer/internal/output/template"
)

//go:embed *.tmpl
var templates embed.FS

// GetEmbeddedTemplates returns the embedded template filesystem.
func GetEmbeddedTemplates() embed.FS {
	return templates
}

// Plugin implements the output.Plugin interface for Tailwind CSS.
type Plugin struct {
	format      string // "css" or "config"
	outputDir   string
	selector    string
	radius      string
	destructive string
	logger      hclog.Logger
}

// New creates a new Tailwind CSS output plugin.
func New() *Plugin {
	return NewWithFormat("css")
}

// NewWithFormat creates a new Tailwind CSS output plugin with a specific format.
func NewWithFormat(format string) *Plugin {
	return &Plugin{
		format:      format,
		selector:    ":root",
		radius:      "0.5rem",
		destructive: "#d13438",
		logger:      hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "tailwind"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate Tailwind CSS / shadcn/ui theme configuration"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.format, "tailwind.format", p.format, "Output format (css or config)")
	cmd.Flags().StringVar(&p.outputDir, "tailwind.output-dir", "", "Output directory (default: current directory)")
	cmd.Flags().StringVar(&p.selector, "tailwind.selector", p.selector, "Selector for the CSS variables (e.g. .dark)")
	cmd.Flags().StringVar(&p.radius, "tailwind.radius", p.radius, "Border radius variable")
	cmd.Flags().StringVar(&p.destructive, "tailwind.destructive", p.destructive, "Colour for destructive actions")
}

// SetLogger sets the logger used for template resolution.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.format != "css" && p.format != "config" {
		return fmt.Errorf("invalid format: %s (must be 'css' or 'config')", p.format)
	}
	if _, err := colour.ParseColor(p.destructive); err != nil {
		return fmt.Errorf("invalid destructive colour: %w", err)
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	if p.outputDir != "" {
		return p.outputDir
	}

	// Default paths based on format
	if p.format == "config" {
		return "."
	}

	// For CSS, try to detect if we're in a Next.js project
	if _, err := os.Stat("app"); err == nil {
		return "app"
	}
	if _, err := os.Stat("src"); err == nil {
		return filepath.Join("src", "app")
	}

	return "."
}

// Generate creates the Tailwind CSS configuration from the theme.
func (p *Plugin) Generate(data *colour.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Theme == nil {
		return nil, output.ErrNilThemeData
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	name, filename := "globals.css.tmpl", "globals.css"
	if p.format == "config" {
		name, filename = "tailwind.config.js.tmpl", "tailwind.config.js"
	}

	loader := tmplloader.New(p.Name(), templates).WithLogger(p.logger)
	content, _, err := loader.Load(name)
	if err != nil {
		return nil, err
	}

	out, err := common.Render(name, content, p.prepareData(data.Theme))
	if err != nil {
		return nil, err
	}
	return map[string][]byte{filename: out}, nil
}

// Variable is one named colour in the generated output.
type Variable struct {
	Name  string
	Value string
}

// templateData holds data for both templates.
type templateData struct {
	Selector  string
	Radius    string
	Variables []Variable // CSS variables, values in "h s% l%" form
	Colors    []Variable // config colours, values as CSS colours
}

// shadcnMapping maps shadcn/ui variable names onto theme colours.
func (p *Plugin) shadcnMapping(t *colour.Theme) []struct {
	name string
	c    colour.Color
} {
	destructive := colour.MustParse(p.destructive)
	destructiveFg := colour.White
	if colour.ContrastRatio(colour.Black, destructive) > colour.ContrastRatio(colour.White, destructive) {
		destructiveFg = colour.Black
	}

	return []struct {
		name string
		c    colour.Color
	}{
		{"background", t.Default.Background},
		{"foreground", t.Default.Text},
		{"card", t.Default.Background},
		{"card-foreground", t.Default.Text},
		{"popover", t.Default.Background},
		{"popover-foreground", t.Default.Text},
		{"primary", t.AccentButton.Background},
		{"primary-foreground", t.AccentButton.Text},
		{"secondary", t.OldButton.Background},
		{"secondary-foreground", t.OldButton.Text},
		{"muted", t.NewButton.BackgroundHovered},
		{"muted-foreground", t.NewButton.TextHovered},
		{"accent", t.AccentButton.BackgroundHovered},
		{"accent-foreground", t.AccentButton.TextHovered},
		{"destructive", destructive},
		{"destructive-foreground", destructiveFg},
		{"border", t.Default.Border},
		{"input", t.Default.Border},
		{"ring", t.AccentButton.Background},
	}
}

// prepareData converts a theme to template data. Every theme slot is also
// exported as --themer-<slot>.
func (p *Plugin) prepareData(t *colour.Theme) templateData {
	data := templateData{Selector: p.selector, Radius: p.radius}

	for _, m := range p.shadcnMapping(t) {
		data.Variables = append(data.Variables, Variable{Name: m.name, Value: toHSL(m.c)})
		data.Colors = append(data.Colors, Variable{Name: m.name, Value: m.c.String()})
	}
	for _, sv := range t.Slots() {
		name := "themer-" + string(sv.Slot)
		data.Variables = append(data.Variables, Variable{Name: name, Value: toHSL(sv.Color)})
		data.Colors = append(data.Colors, Variable{Name: name, Value: sv.Color.String()})
	}
	return data
}

// toHSL converts a colour to HSL format for CSS variables.
// Format: "hue saturation% lightness%" (e.g., "222.2 47.4% 11.2%"), with
// " / alpha" appended for translucent colours.
func toHSL(c colour.Color) string {
	hsl := c.HSL()
	s := fmt.Sprintf("%.1f %.1f%% %.1f%%", hsl.H, hsl.S, hsl.L)
	if a := c.Alpha(); a != colour.MaxRGBA {
		s += fmt.Sprintf(" / %.3g", float64(a)/colour.MaxRGBA)
	}
	return s
}
