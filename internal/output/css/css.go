// Package css provides an output plugin that writes theme slots as CSS custom
// properties.
package css

import (
	"embed"
	"fmt"
	"strings"

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

const templateName = "themer.css.tmpl"

// Plugin implements the output.Plugin interface for CSS custom properties.
type Plugin struct {
	selector     string
	outputDir    string
	fileName     string
	includeRamps bool
	logger       hclog.Logger
}

// New creates a CSS output plugin with default settings.
func New() *Plugin {
	return &Plugin{
		selector: ":root",
		fileName: "themer.css",
		logger:   hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "css"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate CSS custom properties for every theme slot"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.selector, "css.selector", p.selector, "Selector the custom properties are declared under")
	cmd.Flags().StringVar(&p.outputDir, "css.output-dir", "", "Output directory (default: current directory)")
	cmd.Flags().StringVar(&p.fileName, "css.file", p.fileName, "Output file name")
	cmd.Flags().BoolVar(&p.includeRamps, "css.ramps", false, "Also emit every ramp shade as --<ramp>-<index>")
}

// SetLogger sets the logger used for template resolution.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if strings.TrimSpace(p.selector) == "" {
		return fmt.Errorf("css selector cannot be empty")
	}
	if strings.ContainsAny(p.selector, "{}") {
		return fmt.Errorf("invalid css selector %q", p.selector)
	}
	if strings.TrimSpace(p.fileName) == "" {
		return fmt.Errorf("css file name cannot be empty")
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	if p.outputDir != "" {
		return p.outputDir
	}
	return "."
}

type namedRamp struct {
	Name string
	Ramp colour.Ramp
}

type cssData struct {
	Selector     string
	Theme        *colour.Theme
	Slots        []colour.SlotValue
	IncludeRamps bool
	Ramps        []namedRamp
}

// Generate renders the stylesheet.
func (p *Plugin) Generate(data *colour.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Theme == nil {
		return nil, output.ErrNilThemeData
	}

	loader := tmplloader.New(p.Name(), templates).WithLogger(p.logger)
	content, _, err := loader.Load(templateName)
	if err != nil {
		return nil, err
	}

	td := cssData{
		Selector:     p.selector,
		Theme:        data.Theme,
		Slots:        data.Theme.Slots(),
		IncludeRamps: p.includeRamps && data.Ramps != nil,
	}
	if td.IncludeRamps {
		td.Ramps = []namedRamp{
			{Name: "background", Ramp: data.Ramps.Background},
			{Name: "primary", Ramp: data.Ramps.Primary},
			{Name: "text", Ramp: data.Ramps.Text},
		}
	}

	out, err := common.Render(templateName, content, td)
	if err != nil {
		return nil, err
	}
	return map[string][]byte{p.fileName: out}, nil
}
