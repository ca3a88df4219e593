package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mtrachs/neotoma-lakes/internal/adapter/csvfile"
	"github.com/mtrachs/neotoma-lakes/internal/domain"
)

// chronSummaries returns the chronology status table for a version, reusing
// the version's cache file when it exists. A fresh fetch writes the cache
// before returning, so re-running the same version never hits the API twice.
func (p *Pipeline) chronSummaries(ctx context.Context, version string) ([]domain.ChronSummary, error) {
	cachePath := p.chronCachePath(version)
	if _, err := os.Stat(cachePath); err == nil {
		summaries, err := csvfile.ReadChronStatus(cachePath)
		if err != nil {
			return nil, err
		}
		p.metrics.ChronCacheReads.Inc()
		p.logger.Info("reusing chronology cache", "version", version, "path", cachePath, "records", len(summaries))
		return summaries, nil
	}

	summaries, err := p.fetchChronSummaries(ctx)
	if err != nil {
		return nil, err
	}
	if err := csvfile.WriteChronStatus(cachePath, summaries); err != nil {
		return nil, err
	}
	p.logger.Info("chronology cache written", "version", version, "path", cachePath, "records", len(summaries))
	return summaries, nil
}

// fetchChronSummaries pulls every pollen dataset in the configured national
// scopes and summarizes its control sequence. A failed dataset listing is
// fatal; a failed per-dataset chronology lookup degrades to an
// identifiers-only record so one flaky dataset cannot sink the whole run.
func (p *Pipeline) fetchChronSummaries(ctx context.Context) ([]domain.ChronSummary, error) {
	start := time.Now()

	var summaries []domain.ChronSummary
	for _, country := range p.cfg.Countries {
		sites, err := p.source.Datasets(ctx, country)
		if err != nil {
			return nil, fmt.Errorf("list datasets for %s: %w", country, err)
		}
		p.logger.Info("datasets listed", "country", country, "count", len(sites))

		for _, site := range sites {
			rec := domain.ChronRecord{StID: site.StID, DsID: site.DsID}

			controls, err := p.source.ChronControls(ctx, site.DsID)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				p.logger.Warn("chronology lookup failed, keeping identifiers only",
					"error", err,
					"stid", site.StID,
					"dsid", site.DsID,
				)
				p.metrics.FetchErrors.Inc()
			} else {
				rec.Controls = controls
			}

			summaries = append(summaries, domain.SummarizeChronology(rec))
			p.metrics.DatasetsFetched.Inc()
		}
	}

	p.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	return summaries, nil
}
