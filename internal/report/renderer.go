// Package report renders the corrected-lakes report: map layers, narrative
// summary, and the final reviewed-site exports.
package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/mtrachs/neotoma-lakes/internal/adapter/csvfile"
	"github.com/mtrachs/neotoma-lakes/internal/adapter/geojsonfile"
	"github.com/mtrachs/neotoma-lakes/internal/domain"
)

// Renderer produces the report artifacts for one version.
type Renderer struct {
	vocab  domain.Vocabulary
	logger *slog.Logger
}

// NewRenderer creates a renderer with the given deposition vocabulary.
func NewRenderer(vocab domain.Vocabulary, logger *slog.Logger) *Renderer {
	return &Renderer{vocab: vocab, logger: logger}
}

// Summary carries the narrative counts interpolated into the report.
type Summary struct {
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
	Rows        int       `json:"rows"`
	Sites       int       `json:"sites"`
	Linked      int       `json:"linked"`
	Reviewed    int       `json:"reviewed"`
	Moved       int       `json:"moved"`
	AreaChanged int       `json:"area_changed"`
	NewArea     int       `json:"new_area"`
	Narrative   string    `json:"narrative"`
}

// Render writes every report artifact into dir. The decorated records are
// the raw joined table; reviewed selection and per-site dedup happen here,
// which is where the "largest displacement wins" policy lives.
func (r *Renderer) Render(dir, version string, records []domain.LakeRecord, counts domain.ChangeSummary) error {
	deduped := domain.DedupBySite(records)
	reviewed := domain.DedupBySite(domain.Reviewed(records))

	areaLakes := filepath.Join(dir, fmt.Sprintf("area_lakes_%s.csv", version))
	if err := csvfile.WriteAreaLakes(areaLakes, records); err != nil {
		return err
	}

	dataset := filepath.Join(dir, fmt.Sprintf("dataset_%s.geojson", version))
	if err := geojsonfile.WriteRecords(dataset, deduped, r.vocab); err != nil {
		return err
	}

	reviewedCSV := filepath.Join(dir, fmt.Sprintf("reviewed_sites_%s.csv", version))
	if err := csvfile.WriteReviewedSites(reviewedCSV, reviewed, r.vocab); err != nil {
		return err
	}
	reviewedGeo := filepath.Join(dir, fmt.Sprintf("reviewed_sites_%s.geojson", version))
	if err := geojsonfile.WriteRecords(reviewedGeo, reviewed, r.vocab); err != nil {
		return err
	}

	for _, field := range MapFields() {
		if err := r.writeLayer(dir, field, deduped); err != nil {
			return err
		}
	}

	summary := r.buildSummary(version, records, deduped, reviewed, counts)
	if err := writeSummary(filepath.Join(dir, "summary.json"), summary); err != nil {
		return err
	}

	r.logger.Info("report rendered",
		"version", version,
		"sites", summary.Sites,
		"reviewed", summary.Reviewed,
		"moved", summary.Moved,
	)
	return nil
}

// writeLayer emits one map layer: every deduped site colored by the field's
// legend strategy.
func (r *Renderer) writeLayer(dir string, field Field, records []domain.LakeRecord) error {
	legend := NewLegend(field, records)

	fc := geojson.NewFeatureCollection()
	for _, rec := range records {
		f := geojsonfile.RecordFeature(rec, r.vocab)
		if f == nil {
			continue
		}
		f.Properties["marker-color"] = legend.Color(field.Value(rec))
		fc.Append(f)
	}
	return geojsonfile.WriteCollection(filepath.Join(dir, field.layerFilename()), fc)
}

func (r *Renderer) buildSummary(version string, records, deduped, reviewed []domain.LakeRecord, counts domain.ChangeSummary) Summary {
	linked := 0
	for _, rec := range deduped {
		if rec.Linked() {
			linked++
		}
	}

	s := Summary{
		Version:     version,
		GeneratedAt: domain.Now().UTC(),
		Rows:        len(records),
		Sites:       len(deduped),
		Linked:      linked,
		Reviewed:    len(reviewed),
		Moved:       counts.Moved,
		AreaChanged: counts.AreaChanged,
		NewArea:     counts.NewArea,
	}
	s.Narrative = fmt.Sprintf(
		"Of %d candidate lake sites, %d are linked to a hydrography feature and %d passed manual review. "+
			"%d sites were moved to corrected coordinates, %d had their area changed, and %d received a newly assigned area.",
		s.Sites, s.Linked, s.Reviewed, s.Moved, s.AreaChanged, s.NewArea,
	)
	return s
}

func writeSummary(path string, s Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
