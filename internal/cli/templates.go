package cli

import (
	"fmt"
	"io/fs"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themer/internal/output/css"
	"github.com/jmylchreest/themer/internal/output/tailwind"
	tmplloader "github.com/jmylchreest/themer/internal/output/template"
)

// embeddedTemplates lists the plugins whose templates can be overridden.
func embeddedTemplates() map[string]fs.FS {
	return map[string]fs.FS{
		"css":      css.GetEmbeddedTemplates(),
		"tailwind": tailwind.GetEmbeddedTemplates(),
	}
}

// templateLoaders returns loaders for the named plugins, or for every plugin
// with templates when names is empty.
func (a *app) templateLoaders(names []string, location string) ([]*tmplloader.Loader, error) {
	all := embeddedTemplates()
	if len(names) == 0 {
		names = slices.Sorted(maps.Keys(all))
	}

	loaders := make([]*tmplloader.Loader, 0, len(names))
	for _, name := range names {
		fsys, ok := all[name]
		if !ok {
			return nil, fmt.Errorf("plugin %q has no templates (available: %v)", name, slices.Sorted(maps.Keys(all)))
		}
		l := tmplloader.New(name, fsys).WithLogger(a.logger.Named(name))
		if location != "" {
			l = l.WithCustomBase(location)
		}
		loaders = append(loaders, l)
	}
	return loaders, nil
}

func newTemplatesCmd(a *app) *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage output plugin templates",
		Long: `List and dump the embedded output plugin templates.

A template copied to <config dir>/themer/templates/<plugin>/ is used instead of
the embedded one, so dumping a template is the first step to customising it.`,
	}
	cmd.PersistentFlags().StringVarP(&location, "location", "l", "", "template override directory (default: <config dir>/themer/templates)")

	list := &cobra.Command{
		Use:   "list [plugin...]",
		Short: "List embedded templates and their overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaders, err := a.templateLoaders(args, location)
			if err != nil {
				return err
			}

			table := NewTable([]string{"Plugin", "Template", "Source", "Override path"})
			for _, l := range loaders {
				files, err := l.ListEmbeddedTemplates()
				if err != nil {
					return err
				}
				for _, f := range files {
					source := "embedded"
					if l.HasCustomTemplate(f) {
						source = "custom"
					}
					table.AddRow([]string{l.PluginName(), f, source, l.CustomPath(f)})
				}
			}
			return table.Write(cmd.OutOrStdout())
		},
	}

	var force bool
	dump := &cobra.Command{
		Use:   "dump [plugin...]",
		Short: "Copy embedded templates to the override directory",
		Example: `  themer templates dump
  themer templates dump tailwind --force
  themer templates dump css -l ./templates`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaders, err := a.templateLoaders(args, location)
			if err != nil {
				return err
			}

			for _, l := range loaders {
				files, err := l.ListEmbeddedTemplates()
				if err != nil {
					return err
				}
				for _, f := range files {
					path, err := l.DumpTemplate(f, force)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				}
			}
			return nil
		},
	}
	dump.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing overrides")

	cmd.AddCommand(list, dump)
	return cmd
}
