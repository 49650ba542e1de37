package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themer/internal/colour"
)

type namedRamp struct {
	name string
	ramp colour.Ramp
}

func selectRamps(rs *colour.RampSet, kind string) []namedRamp {
	all := []namedRamp{
		{"background", rs.Background},
		{"primary", rs.Primary},
		{"text", rs.Text},
	}
	if kind == "all" {
		return all
	}
	for _, r := range all {
		if r.name == kind {
			return []namedRamp{r}
		}
	}
	return nil
}

func newRampCmd(a *app) *cobra.Command {
	var (
		kind   string
		format string
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "ramp",
		Short: "Print the shade ramps built from the seed colours",
		Long: `Print the background, primary and text ramps built from the configured seeds.

The background ramp runs from the background seed toward black (or toward white
with --inverted). Accent ramps keep their seed at the middle index. With
--check the perceptual step sizes of each ramp are reported as well.`,
		Example: `  themer ramp --kind primary --length 11
  themer ramp --format json --primary '#c239b3'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := parseFormat("kind", kind, "background", "primary", "text", "all")
			if err != nil {
				return err
			}
			format, err := parseFormat("format", format, "table", "hex", "json")
			if err != nil {
				return err
			}

			seeds, err := a.seeds()
			if err != nil {
				return err
			}
			rs, err := a.engine.Ramps(seeds)
			if err != nil {
				return err
			}
			ramps := selectRamps(rs, kind)
			length := a.engine.Options().Length
			w := cmd.OutOrStdout()

			switch format {
			case "json":
				doc := make(map[string]any, len(ramps)+1)
				for _, r := range ramps {
					doc[r.name] = r.ramp
				}
				if check {
					reports := make(map[string]colour.SmoothnessReport, len(ramps))
					for _, r := range ramps {
						reports[r.name] = colour.CheckSmoothness(r.ramp)
					}
					doc["smoothness"] = reports
				}
				return writeJSON(w, doc)

			case "hex":
				for i := range length {
					cells := make([]string, len(ramps))
					for j, r := range ramps {
						cells[j] = r.ramp[i].String()
					}
					fmt.Fprintln(w, strings.Join(cells, " "))
				}

			default:
				pv := newPreviewer(w, a.preview)
				headers := []string{"Index"}
				for _, r := range ramps {
					if pv.enabled {
						headers = append(headers, "")
					}
					headers = append(headers, r.name)
				}
				table := NewTable(headers)
				for i := range length {
					row := []string{strconv.Itoa(i)}
					for _, r := range ramps {
						if pv.enabled {
							row = append(row, pv.Swatch(r.ramp[i]))
						}
						row = append(row, r.ramp[i].String())
					}
					table.AddRow(row)
				}
				if err := table.Write(w); err != nil {
					return err
				}
			}

			if check {
				fmt.Fprintln(w)
				table := NewTable([]string{"Ramp", "Max step", "Mean step", "Duplicates", "Monotonic"})
				for _, r := range ramps {
					rep := colour.CheckSmoothness(r.ramp)
					table.AddRow([]string{
						r.name,
						fmt.Sprintf("%.2f", rep.MaxStep),
						fmt.Sprintf("%.2f", rep.MeanStep),
						strconv.Itoa(rep.Duplicates),
						yesNo(rep.Monotonic),
					})
				}
				return table.Write(w)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "all", "ramp to print (background, primary, text, all)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, hex, json)")
	cmd.Flags().BoolVar(&check, "check", false, "report ramp smoothness")
	return cmd
}
