// Package pipeline orchestrates one report build: chronology fetch or cache
// reuse, the hydrography join, change decoration, and versioned rendering.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mtrachs/neotoma-lakes/internal/adapter/csvfile"
	"github.com/mtrachs/neotoma-lakes/internal/config"
	"github.com/mtrachs/neotoma-lakes/internal/domain"
	"github.com/mtrachs/neotoma-lakes/internal/observability"
	"github.com/mtrachs/neotoma-lakes/internal/report"
)

// Pipeline wires the dataset source, input tables, and renderer together.
type Pipeline struct {
	source   domain.DatasetSource
	cfg      *config.Config
	renderer *report.Renderer
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Pipeline with the given source, renderer, and observability.
func New(source domain.DatasetSource, cfg *config.Config, renderer *report.Renderer, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		source:   source,
		cfg:      cfg,
		renderer: renderer,
		logger:   logger,
		metrics:  metrics,
	}
}

// Run builds the report for one version label. All artifacts are written to
// a staging directory first and swapped into place in a single rename, so a
// failed run never leaves a partial version directory behind.
func (p *Pipeline) Run(ctx context.Context, version string) error {
	summaries, err := p.chronSummaries(ctx, version)
	if err != nil {
		return err
	}

	records, err := p.joinInputs()
	if err != nil {
		return err
	}
	counts := domain.SummarizeChanges(records)

	reviewed := domain.DedupBySite(domain.Reviewed(records))
	p.metrics.RowsJoined.Set(float64(len(records)))
	p.metrics.SitesReviewed.Set(float64(len(reviewed)))
	p.metrics.SitesMoved.Set(float64(counts.Moved))

	final := filepath.Join(p.cfg.OutDir, "version_"+version)
	staging := final + ".staging"
	if err := os.RemoveAll(staging); err != nil {
		return fmt.Errorf("clear staging dir: %w", err)
	}
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}

	// The chronology status table is both a pipeline input cache and a
	// published artifact, so the version directory gets its own copy.
	if err := copyFile(p.chronCachePath(version), filepath.Join(staging, chronStatusName(version))); err != nil {
		return err
	}

	if err := p.renderer.Render(staging, version, records, counts); err != nil {
		return err
	}

	if err := p.metrics.WriteTextfile(filepath.Join(staging, "metrics.prom")); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	if err := swapDir(staging, final); err != nil {
		return err
	}

	p.logger.Info("report build complete",
		"version", version,
		"dir", final,
		"rows", len(records),
		"chron_records", len(summaries),
	)
	return nil
}

// joinInputs reads the hydrography overlay tables and the manual edit table,
// keeps only western-hemisphere rows, and decorates the join with
// displacement and area-delta measures.
func (p *Pipeline) joinInputs() ([]domain.LakeRecord, error) {
	canvec, err := csvfile.ReadLakeRows(p.cfg.CanvecLakesFile, "canvec")
	if err != nil {
		return nil, err
	}
	nhd, err := csvfile.ReadLakeRows(p.cfg.NHDLakesFile, "nhd")
	if err != nil {
		return nil, err
	}
	rows := append(canvec, nhd...)

	if p.cfg.PriorLinkageFile != "" {
		prior, err := csvfile.ReadLakeRows(p.cfg.PriorLinkageFile, "prior")
		if err != nil {
			return nil, err
		}
		rows = append(rows, prior...)
	}

	rows = domain.FilterWestern(rows)

	edits, err := csvfile.ReadEdits(p.cfg.EditsFile)
	if err != nil {
		return nil, err
	}

	return domain.Decorate(domain.JoinEdits(rows, edits)), nil
}

func chronStatusName(version string) string {
	return fmt.Sprintf("chron_control_status_version_%s.csv", version)
}

func (p *Pipeline) chronCachePath(version string) string {
	return filepath.Join(p.cfg.DataDir, chronStatusName(version))
}

// swapDir replaces final with staging atomically from the reader's point of
// view: an existing version directory is moved aside, the staging directory
// renamed into place, and only then the old copy removed.
func swapDir(staging, final string) error {
	old := final + ".old"
	if err := os.RemoveAll(old); err != nil {
		return fmt.Errorf("clear previous version dir: %w", err)
	}
	if _, err := os.Stat(final); err == nil {
		if err := os.Rename(final, old); err != nil {
			return fmt.Errorf("move previous version aside: %w", err)
		}
	}
	if err := os.Rename(staging, final); err != nil {
		return fmt.Errorf("publish version dir: %w", err)
	}
	return os.RemoveAll(old)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
