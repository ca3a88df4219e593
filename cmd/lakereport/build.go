package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtrachs/neotoma-lakes/internal/adapter/neotoma"
	"github.com/mtrachs/neotoma-lakes/internal/config"
	"github.com/mtrachs/neotoma-lakes/internal/domain"
	"github.com/mtrachs/neotoma-lakes/internal/observability"
	"github.com/mtrachs/neotoma-lakes/internal/pipeline"
	"github.com/mtrachs/neotoma-lakes/internal/report"
)

func newBuildCmd() *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build one versioned report directory",
		Long: `Build fetches (or reuses) the chronology status table for the version,
joins the hydrography overlay tables with the manual edit table, and renders
the report artifacts into OUT_DIR/version_<v>.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)

			vocab := domain.DefaultVocabulary()
			if cfg.VocabFile != "" {
				if vocab, err = domain.LoadVocabulary(cfg.VocabFile); err != nil {
					return err
				}
			}

			if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			client := neotoma.NewClient(cfg.NeotomaBaseURL, cfg.NeotomaTimeout, logger)
			source := neotoma.NewCachedSource(client, cfg.ChronCacheSize)
			renderer := report.NewRenderer(vocab, logger)

			p := pipeline.New(source, cfg, renderer, logger, observability.NewMetrics())
			return p.Run(cmd.Context(), version)
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "report version label, e.g. 4")
	_ = cmd.MarkFlagRequired("version")
	return cmd
}
