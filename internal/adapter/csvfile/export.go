package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/mtrachs/neotoma-lakes/internal/domain"
)

var areaLakesHeader = []string{
	"stid", "site_name", "source", "linked", "feature_id", "lake_name",
	"lat", "long", "lat_corrected", "long_corrected",
	"area", "area_corrected", "displacement", "area_delta",
	"edit_code", "deposition_type", "notes",
}

// WriteAreaLakes writes the full decorated join as the audit table: every
// site row, including artifacts and unreviewed sites, with original and
// corrected values side by side. Sorted by site id then source.
func WriteAreaLakes(path string, records []domain.LakeRecord) error {
	sorted := make([]domain.LakeRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StID != sorted[j].StID {
			return sorted[i].StID < sorted[j].StID
		}
		return sorted[i].Source < sorted[j].Source
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create area lakes file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(areaLakesHeader); err != nil {
		return fmt.Errorf("write area lakes header: %w", err)
	}

	for _, r := range sorted {
		code := ""
		notes := ""
		if r.Edit != nil {
			code = strconv.Itoa(int(r.Edit.Code))
			notes = r.Edit.Notes
		}
		row := []string{
			strconv.Itoa(r.StID),
			r.Name,
			r.Source,
			strconv.FormatBool(r.Linked()),
			formatOptString(r.FeatureID),
			r.LakeName,
			formatOptFloat(r.Lat),
			formatOptFloat(r.Long),
			formatOptFloat(r.CorrectedLat()),
			formatOptFloat(r.CorrectedLong()),
			formatOptFloat(r.Area),
			formatOptFloat(r.CorrectedArea()),
			formatOptFloat(r.Displacement),
			formatFloat(r.AreaDelta),
			code,
			r.DepositionType,
			notes,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write area lakes row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush area lakes: %w", err)
	}
	return nil
}

var reviewedHeader = []string{
	"stid", "site_name", "lat", "long", "area", "deposition_type", "edit_code", "notes",
}

// WriteReviewedSites writes the final corrected-site export: one row per
// site, best-available coordinates and area, deposition types collapsed to
// the controlled vocabulary.
func WriteReviewedSites(path string, records []domain.LakeRecord, vocab domain.Vocabulary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create reviewed sites file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(reviewedHeader); err != nil {
		return fmt.Errorf("write reviewed sites header: %w", err)
	}

	for _, r := range records {
		code := ""
		notes := ""
		if r.Edit != nil {
			code = strconv.Itoa(int(r.Edit.Code))
			notes = r.Edit.Notes
		}
		row := []string{
			strconv.Itoa(r.StID),
			r.Name,
			formatOptFloat(r.BestLat()),
			formatOptFloat(r.BestLong()),
			formatOptFloat(r.BestArea()),
			vocab.Normalize(r.BestDepositionType()),
			code,
			notes,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write reviewed sites row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush reviewed sites: %w", err)
	}
	return nil
}
