// Package output provides the interface and registry for output plugins that
// render a derived theme into files.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themer/internal/colour"
)

// ErrNilThemeData is returned by Generate when no theme data is supplied.
var ErrNilThemeData = errors.New("theme data cannot be nil")

// Plugin represents an output plugin that generates files from a derived
// theme.
type Plugin interface {
	// Name returns the plugin's name (e.g., "css", "tailwind").
	Name() string

	// Description returns a human-readable description of the plugin.
	Description() string

	// Generate creates output file(s) from the given theme data.
	// Returns map of filename -> content to support plugins that generate multiple files.
	Generate(data *colour.ThemeData) (map[string][]byte, error)

	// RegisterFlags registers plugin-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the plugin configuration is valid.
	Validate() error

	// DefaultOutputDir returns the default output directory for this plugin.
	DefaultOutputDir() string
}

// Registry holds all registered output plugins.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a registry holding plugins.
func NewRegistry(plugins ...Plugin) *Registry {
	r := &Registry{plugins: make(map[string]Plugin, len(plugins))}
	for _, p := range plugins {
		r.Register(p)
	}
	return r
}

// Register adds a plugin to the registry, replacing any plugin of the same name.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered plugin names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Select resolves plugin names. "all" selects every registered plugin.
func (r *Registry) Select(names []string) ([]Plugin, error) {
	if slices.Contains(names, "all") {
		names = r.List()
	}

	selected := make([]Plugin, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		p, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown output plugin %q (available: %v)", name, r.List())
		}
		selected = append(selected, p)
	}
	return selected, nil
}

// RegisterFlags registers the flags of every plugin with cmd.
func (r *Registry) RegisterFlags(cmd *cobra.Command) {
	for _, name := range r.List() {
		r.plugins[name].RegisterFlags(cmd)
	}
}

// WriteFiles writes generated files under dir, creating it if needed, and
// returns the written paths in sorted order.
func WriteFiles(dir string, files map[string][]byte) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	written := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("failed to create directory for %q: %w", path, err)
		}
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return written, fmt.Errorf("failed to write %q: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
