package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themer/internal/colour"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <colour>...",
		Short: "Parse colours and show them in every notation",
		Long: `Parse one or more CSS colours (hex, rgb(), rgba(), hsl(), hsv(), named colours
or "transparent") and print their canonical form, RGBA, HSL, HSV and relative
luminance. Colours that fail to parse are logged and make the command fail
after the rest have been printed.`,
		Example: `  themer parse '#0078d4' 'rgb(0 120 212 / 50%)' rebeccapurple`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pv := newPreviewer(cmd.OutOrStdout(), a.preview)
			table := NewTable(pv.headers("Input", "Colour", "RGBA", "HSL", "HSV", "Luminance"))

			var diags colour.Diagnostics
			for _, arg := range args {
				c, err := colour.ParseColor(arg)
				if err != nil {
					diags = append(diags, colour.Diagnostic{Kind: colour.DiagnosticParseError, Message: err.Error()})
					continue
				}
				hsl, hsv := c.HSL(), c.HSV()
				table.AddRow(pv.row(c,
					arg,
					c.String(),
					c.RGBAString(),
					fmt.Sprintf("%.1f %.1f%% %.1f%%", hsl.H, hsl.S, hsl.L),
					fmt.Sprintf("%.1f %.1f%% %.1f%%", hsv.H, hsv.S, hsv.V),
					fmt.Sprintf("%.4f", colour.Luminance(c)),
				))
			}

			if err := table.Write(cmd.OutOrStdout()); err != nil {
				return err
			}
			if len(diags) > 0 {
				diags.Log(a.logger)
				return fmt.Errorf("%d of %d colours could not be parsed", len(diags), len(args))
			}
			return nil
		},
	}
}

func newShadeCmd(a *app) *cobra.Command {
	var palette bool
	cmd := &cobra.Command{
		Use:   "shade [colour]",
		Short: "Show the five ordinal shades of a colour",
		Long: `Show the lightest, lighter, medium, darker and darkest shades of a colour.

With --palette the standard semantic rules are resolved instead, using the
given colour (default #0078d7) as the primary palette colour with a #888
neutral and a #f00 secondary.`,
		Example: `  themer shade '#0078d4'
  themer shade --palette`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var base colour.Color
			if len(args) == 1 {
				c, err := colour.ParseColor(args[0])
				if err != nil {
					return err
				}
				base = c
			} else if !palette {
				return fmt.Errorf("a colour is required unless --palette is set")
			}

			pv := newPreviewer(cmd.OutOrStdout(), a.preview)
			if palette {
				p := colour.DefaultPalette()
				if len(args) == 1 {
					p.Primary = base
				}
				rules, err := p.ResolveStandardRules()
				if err != nil {
					return err
				}
				table := NewTable(pv.headers("Role", "Palette", "Shade", "Colour"))
				for _, r := range rules {
					table.AddRow(pv.row(r.Color, r.Name, string(r.Palette), r.Shade.String(), r.Color.String()))
				}
				return table.Write(cmd.OutOrStdout())
			}

			table := NewTable(pv.headers("Shade", "Colour", "Contrast"))
			table.AddRow(pv.row(base, colour.Unshaded.String(), base.String(), "1.00"))
			for _, s := range colour.AllShades() {
				c := colour.ShadeOf(base, s)
				table.AddRow(pv.row(c, s.String(), c.String(), fmt.Sprintf("%.2f", colour.ContrastRatio(base, c))))
			}
			return table.Write(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&palette, "palette", false, "resolve the standard semantic palette rules")
	return cmd
}

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "contrast <foreground> <background>",
		Short:   "Compute the WCAG contrast ratio of two colours",
		Example: `  themer contrast '#333' white`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := colour.ParseColor(args[0])
			if err != nil {
				return err
			}
			bg, err := colour.ParseColor(args[1])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			ratio := colour.ContrastRatio(fg, bg)
			fmt.Fprintf(w, "%.2f:1 %s\n", ratio, colour.WCAGLevel(fg, bg))
			if s := newPreviewer(w, a.preview).Sample(fg, bg, "Sample text"); s != "" {
				fmt.Fprintln(w, s)
			}

			table := NewTable([]string{"Level", "Minimum", "Pass"})
			for _, lvl := range []struct {
				name string
				min  float64
				pass bool
			}{
				{"AA Large", colour.ContrastAALarge, colour.MeetsAALarge(fg, bg)},
				{"AA", colour.ContrastAA, colour.MeetsAA(fg, bg)},
				{"AAA", colour.ContrastAAA, colour.MeetsAAA(fg, bg)},
			} {
				table.AddRow([]string{lvl.name, fmt.Sprintf("%.1f", lvl.min), yesNo(lvl.pass)})
			}
			return table.Write(w)
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
