package main

import (
	"github.com/spf13/cobra"

	"github.com/mtrachs/neotoma-lakes/internal/adapter/csvfile"
	"github.com/mtrachs/neotoma-lakes/internal/adapter/neotoma"
	"github.com/mtrachs/neotoma-lakes/internal/config"
	"github.com/mtrachs/neotoma-lakes/internal/observability"
	"github.com/mtrachs/neotoma-lakes/internal/overlay"
)

func newOverlayCmd() *cobra.Command {
	var (
		lakesPath string
		source    string
		country   string
		out       string
	)

	cmd := &cobra.Command{
		Use:   "overlay",
		Short: "Match pollen sites against a national lake polygon set",
		Long: `Overlay fetches the pollen sites for one country, finds the smallest lake
polygon containing each site, and writes the match table the build command
consumes. Run once per hydrography source on a host with enough memory for
the national polygon set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)

			lakes, err := overlay.LoadLakes(lakesPath)
			if err != nil {
				return err
			}
			logger.Info("lake polygons loaded", "source", source, "count", len(lakes))

			client := neotoma.NewClient(cfg.NeotomaBaseURL, cfg.NeotomaTimeout, logger)
			sites, err := client.Datasets(cmd.Context(), country)
			if err != nil {
				return err
			}

			rows := overlay.NewMatcher(lakes, source, logger).Match(sites)
			if err := csvfile.WriteLakeRows(out, rows); err != nil {
				return err
			}

			logger.Info("overlay table written", "out", out, "rows", len(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&lakesPath, "lakes", "", "lake polygon GeoJSON file (required)")
	cmd.Flags().StringVar(&source, "source", "", "hydrography source label, canvec or nhd (required)")
	cmd.Flags().StringVar(&country, "country", "", "two-letter country code to fetch sites for (required)")
	cmd.Flags().StringVar(&out, "out", "", "output CSV path (required)")
	for _, f := range []string{"lakes", "source", "country", "out"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}
