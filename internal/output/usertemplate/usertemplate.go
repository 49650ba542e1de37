// Package usertemplate provides an output plugin that renders user-supplied
// text/template files against the derived theme.
package usertemplate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themer/internal/colour"
	"github.com/jmylchreest/themer/internal/output"
	"github.com/jmylchreest/themer/internal/output/common"
)

// Plugin implements the output.Plugin interface for user templates.
type Plugin struct {
	files     []string
	outputDir string
}

// New creates a user template plugin rendering files.
func New(files ...string) *Plugin {
	return &Plugin{files: files}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "template"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Render your own text/template files with the theme (see template functions)"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&p.files, "template.file", p.files, "Template file to render (repeatable); output drops a trailing .tmpl")
	cmd.Flags().StringVar(&p.outputDir, "template.output-dir", "", "Output directory (default: current directory)")
}

// Validate checks that every template exists.
func (p *Plugin) Validate() error {
	for _, f := range p.files {
		info, err := os.Stat(f)
		if err != nil {
			return fmt.Errorf("template %s: %w", f, err)
		}
		if info.IsDir() {
			return fmt.Errorf("template %s is a directory", f)
		}
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

// Generate renders each template file. The output name is the template's
// base name without a .tmpl suffix. With no templates configured nothing is
// generated.
func (p *Plugin) Generate(data *colour.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Theme == nil {
		return nil, output.ErrNilThemeData
	}

	files := make(map[string][]byte, len(p.files))
	for _, path := range p.files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read template: %w", err)
		}

		name := strings.TrimSuffix(filepath.Base(path), ".tmpl")
		if _, dup := files[name]; dup {
			return nil, fmt.Errorf("two templates render to %q", name)
		}

		out, err := common.Render(name, content, data)
		if err != nil {
			return nil, err
		}
		files[name] = out
	}
	return files, nil
}
