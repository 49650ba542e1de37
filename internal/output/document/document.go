// Package document provides output plugins that serialise the full theme,
// ramps and seeds as JSON or YAML.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/themer/internal/colour"
	"github.com/jmylchreest/themer/internal/output"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is the serialised form of a derived theme.
type Document struct {
	Name            string            `json:"name,omitempty" yaml:"name,omitempty"`
	Seeds           colour.Seeds      `json:"seeds" yaml:"seeds"`
	Ramp            RampOptions       `json:"ramp" yaml:"ramp"`
	Thresholds      colour.Thresholds `json:"thresholds" yaml:"thresholds"`
	BackgroundIndex int               `json:"backgroundIndex" yaml:"backgroundIndex"`
	Slots           []Slot            `json:"slots" yaml:"slots"`
	Ramps           *Ramps            `json:"ramps,omitempty" yaml:"ramps,omitempty"`
	Diagnostics     []string          `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// RampOptions records how the ramps were built.
type RampOptions struct {
	Length   int  `json:"length" yaml:"length"`
	Fancy    bool `json:"fancy" yaml:"fancy"`
	Inverted bool `json:"inverted" yaml:"inverted"`
}

// Slot is one named theme colour.
type Slot struct {
	Name  colour.Slot `json:"name" yaml:"name"`
	Value string      `json:"value" yaml:"value"`
}

// Ramps lists every shade of the three ramps.
type Ramps struct {
	Background []string `json:"background" yaml:"background"`
	Primary    []string `json:"primary" yaml:"primary"`
	Text       []string `json:"text" yaml:"text"`
}

// Plugin implements the output.Plugin interface for one serialisation format.
type Plugin struct {
	format    string
	outputDir string
	fileName  string
	ramps     bool
}

// New creates a document plugin for format ("json" or "yaml").
func New(format string) *Plugin {
	return &Plugin{format: format, fileName: "themer." + format, ramps: true}
}

// Name returns the plugin name, which is its format.
func (p *Plugin) Name() string {
	return p.format
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return fmt.Sprintf("Write seeds, ramps and theme slots as a %s document", p.format)
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	prefix := p.format + "."
	cmd.Flags().StringVar(&p.outputDir, prefix+"output-dir", "", "Output directory (default: current directory)")
	cmd.Flags().StringVar(&p.fileName, prefix+"file", p.fileName, "Output file name")
	cmd.Flags().BoolVar(&p.ramps, prefix+"ramps", p.ramps, "Include every ramp shade")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.format != FormatJSON && p.format != FormatYAML {
		return fmt.Errorf("invalid format: %s (must be 'json' or 'yaml')", p.format)
	}
	if p.fileName == "" {
		return fmt.Errorf("%s file name cannot be empty", p.format)
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

// Generate serialises the theme data.
func (p *Plugin) Generate(data *colour.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Theme == nil {
		return nil, output.ErrNilThemeData
	}

	doc := Build(data, p.ramps)

	var content []byte
	var err error
	switch p.format {
	case FormatJSON:
		content, err = json.MarshalIndent(doc, "", "  ")
		content = append(content, '\n')
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
		content = buf.Bytes()
	default:
		return nil, p.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", p.format, err)
	}

	return map[string][]byte{p.fileName: content}, nil
}

// Build converts theme data into a Document.
func Build(data *colour.ThemeData, includeRamps bool) *Document {
	doc := &Document{
		Name:  data.ThemeName,
		Seeds: data.Seeds,
		Ramp: RampOptions{
			Length:   data.Options.Length,
			Fancy:    data.Options.Fancy,
			Inverted: data.Options.Inverted,
		},
		Thresholds:      data.Options.Thresholds,
		BackgroundIndex: data.Theme.BackgroundIndex,
	}

	for _, sv := range data.Theme.Slots() {
		doc.Slots = append(doc.Slots, Slot{Name: sv.Slot, Value: sv.Color.String()})
	}
	for _, d := range data.Theme.Diagnostics {
		doc.Diagnostics = append(doc.Diagnostics, d.String())
	}
	if includeRamps && data.Ramps != nil {
		doc.Ramps = &Ramps{
			Background: data.Ramps.Background.Hex(),
			Primary:    data.Ramps.Primary.Hex(),
			Text:       data.Ramps.Text.Hex(),
		}
	}
	return doc
}
