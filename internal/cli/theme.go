package cli

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themer/internal/colour"
	"github.com/jmylchreest/themer/internal/output"
)

type themeOptions struct {
	outputs   []string
	outputDir string
	dryRun    bool
	name      string
}

func newThemeCmd(a *app) *cobra.Command {
	var opts themeOptions

	cmd := &cobra.Command{
		Use:   "theme [background-index...]",
		Short: "Derive the theme for one or more background shades",
		Long: `Derive the 21-slot theme for a background shade, given as an index into the
background ramp (default: theme.index from config, 0 unless set). Out-of-range
indices are clamped and reported.

Without --outputs the theme is printed as a table. With --outputs each named
output plugin writes its files; with several indices each theme is written to
a bg-<index> subdirectory.

Available outputs: ` + fmt.Sprint(a.registry.List()),
		Example: `  themer theme
  themer theme 40 --background '#1b1a19' --text '#f3f2f1' --inverted
  themer theme --outputs css,json --output-dir ./theme
  themer theme 0 30 60 --outputs all --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTheme(cmd, args, opts)
		},
	}

	cmd.Flags().Int(flagIndex, 0, "background index when none is given as an argument")
	cmd.Flags().StringSliceVarP(&opts.outputs, "outputs", "o", nil, "output plugins to run, or 'all'")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "d", "", "write every output here instead of each plugin's default")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "list the files that would be written")
	cmd.Flags().StringVar(&opts.name, "name", "", "theme name passed to templates")
	a.registry.RegisterFlags(cmd)

	return cmd
}

func parseIndices(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, arg := range args {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid background index %q: %w", arg, err)
		}
		out = append(out, i)
	}
	return out, nil
}

func (a *app) runTheme(cmd *cobra.Command, args []string, opts themeOptions) error {
	indices, err := parseIndices(args)
	if err != nil {
		return err
	}
	seeds, err := a.seeds()
	if err != nil {
		return err
	}
	if len(indices) == 0 {
		indices = []int{a.cfg.Theme.Index}
	}

	var plugins []output.Plugin
	if len(opts.outputs) > 0 {
		if plugins, err = a.registry.Select(opts.outputs); err != nil {
			return err
		}
		for _, p := range plugins {
			if err := p.Validate(); err != nil {
				return fmt.Errorf("%s: %w", p.Name(), err)
			}
		}
	}

	themes, err := a.engine.Themes(seeds, indices...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, t := range themes {
		if len(plugins) == 0 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := a.printTheme(cmd, t); err != nil {
				return err
			}
			continue
		}

		data, err := a.engine.NewThemeData(seeds, indices[i], opts.name)
		if err != nil {
			return err
		}
		var sub string
		if len(themes) > 1 {
			sub = fmt.Sprintf("bg-%d", t.BackgroundIndex)
		}
		if err := a.writeOutputs(cmd, plugins, data, opts, sub); err != nil {
			return err
		}
	}
	return nil
}

// printTheme writes every slot with its contrast against the default
// background.
func (a *app) printTheme(cmd *cobra.Command, t *colour.Theme) error {
	w := cmd.OutOrStdout()
	pv := newPreviewer(w, a.preview)
	bg := t.Default.Background

	fmt.Fprintf(w, "Background index: %d\n\n", t.BackgroundIndex)
	table := NewTable(pv.headers("Slot", "Colour", "Contrast"))
	for _, sv := range t.Slots() {
		cr := "-"
		if sv.Color.Alpha() == colour.MaxRGBA {
			cr = fmt.Sprintf("%.2f", colour.ContrastRatio(sv.Color, bg))
		}
		table.AddRow(pv.row(sv.Color, string(sv.Slot), sv.Color.String(), cr))
	}
	if err := table.Write(w); err != nil {
		return err
	}

	if len(t.Diagnostics) > 0 {
		fmt.Fprintln(w)
		dt := NewTable([]string{"Kind", "Slot", "Message"})
		dt.WrapColumn(2, 60)
		for _, d := range t.Diagnostics {
			dt.AddRow([]string{string(d.Kind), string(d.Slot), d.Message})
		}
		return dt.Write(w)
	}
	return nil
}

// writeOutputs runs each plugin and writes its files under its directory,
// joined with sub when set.
func (a *app) writeOutputs(cmd *cobra.Command, plugins []output.Plugin, data *colour.ThemeData, opts themeOptions, sub string) error {
	w := cmd.OutOrStdout()
	for _, p := range plugins {
		files, err := p.Generate(data)
		if err != nil {
			return fmt.Errorf("%s: %w", p.Name(), err)
		}

		dir := opts.outputDir
		if dir == "" {
			dir = p.DefaultOutputDir()
		}
		if sub != "" {
			dir = filepath.Join(dir, sub)
		}

		if opts.dryRun {
			names := make([]string, 0, len(files))
			for name := range files {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				fmt.Fprintf(w, "%s: would write %s (%d bytes)\n", p.Name(), filepath.Join(dir, name), len(files[name]))
			}
			continue
		}

		written, err := output.WriteFiles(dir, files)
		if err != nil {
			return fmt.Errorf("%s: %w", p.Name(), err)
		}
		for _, path := range written {
			a.logger.Info("wrote file", "plugin", p.Name(), "path", path)
			fmt.Fprintf(w, "%s: wrote %s\n", p.Name(), path)
		}
	}
	return nil
}
