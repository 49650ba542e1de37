package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/themer/internal/config"
	"github.com/jmylchreest/themer/internal/image"
	"github.com/jmylchreest/themer/internal/seed"
	"github.com/jmylchreest/themer/internal/util/imagecache"
)

// seedFile is the config fragment written by "seed --write-config".
type seedFile struct {
	Seeds config.SeedsConfig `yaml:"seeds"`
}

func newSeedCmd(a *app) *cobra.Command {
	var (
		opts        seed.Options
		format      string
		writeConfig string
		force       bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "seed <image|directory|url>",
		Short: "Suggest seed colours from an image",
		Long: `Cluster the pixels of an image and suggest primary, background and text seeds.

The lightest cluster becomes the background (the darkest with --dark), the
cluster with the most contrast against it becomes the text and the most vivid
remaining cluster becomes the primary. A directory uses its first image by
name. Downloaded images are cached under the user cache directory. The
suggestion can be saved as a themer.yaml fragment.`,
		Example: `  themer seed ~/Pictures/wallpaper.jpg
  themer seed https://example.com/photo.png --dark --write-config themer.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat("format", format, "table", "yaml")
			if err != nil {
				return err
			}

			a.logger.Debug("suggesting seeds", "source", args[0], "clusters", opts.Clusters, "dark", opts.Dark)
			loader := image.NewSmartLoader().WithLogger(a.logger.Named("image"))
			if !noCache {
				cache, err := imagecache.New("", nil)
				if err != nil {
					return err
				}
				loader.WithCache(cache)
			}
			sug, err := seed.FromImage(cmd.Context(), loader, args[0], opts)
			if err != nil {
				return err
			}

			doc := seedFile{Seeds: config.SeedsConfig{
				Primary:    sug.Seeds.Primary.String(),
				Background: sug.Seeds.Background.String(),
				Text:       sug.Seeds.Text.String(),
			}}
			out, err := yaml.Marshal(doc)
			if err != nil {
				return fmt.Errorf("failed to encode seeds: %w", err)
			}

			w := cmd.OutOrStdout()
			if format == "yaml" {
				if _, err := w.Write(out); err != nil {
					return err
				}
			} else {
				pv := newPreviewer(w, a.preview)
				table := NewTable(pv.headers("Role", "Colour"))
				table.AddRow(pv.row(sug.Seeds.Primary, "primary", doc.Seeds.Primary))
				table.AddRow(pv.row(sug.Seeds.Background, "background", doc.Seeds.Background))
				table.AddRow(pv.row(sug.Seeds.Text, "text", doc.Seeds.Text))
				if err := table.Write(w); err != nil {
					return err
				}

				fmt.Fprintln(w)
				clusters := NewTable(pv.headers("Cluster", "Weight"))
				for _, c := range sug.Clusters {
					clusters.AddRow(pv.row(c.Color, c.Color.String(), fmt.Sprintf("%.1f%%", c.Weight*100)))
				}
				if err := clusters.Write(w); err != nil {
					return err
				}
			}

			if writeConfig == "" {
				return nil
			}
			if !force {
				if _, err := os.Stat(writeConfig); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", writeConfig)
				}
			}
			if err := os.WriteFile(writeConfig, out, 0o644); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			a.logger.Info("wrote seeds", "path", writeConfig)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Dark, "dark", false, "use the darkest cluster as background")
	cmd.Flags().IntVar(&opts.Clusters, "clusters", seed.DefaultClusters, "number of colour clusters")
	cmd.Flags().Int64Var(&opts.RandomSeed, "random-seed", 1, "seed for cluster initialisation")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, yaml)")
	cmd.Flags().StringVar(&writeConfig, "write-config", "", "write the seeds to this config file")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "fetch URLs without the on-disk image cache")
	return cmd
}
