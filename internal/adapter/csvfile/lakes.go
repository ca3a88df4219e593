package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/mtrachs/neotoma-lakes/internal/domain"
)

var lakeRowHeader = []string{
	"stid", "site_name", "lat", "long", "feature_id", "lake_area", "lake_name", "deposition_type",
}

// ReadLakeRows reads one hydrography overlay output table, tagging every row
// with its source dataset ("canvec", "nhd", ...).
func ReadLakeRows(path, source string) ([]domain.LakeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lake table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read lake table %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("lake table %s: missing header", path)
	}

	out := make([]domain.LakeRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		lr, err := parseLakeRow(row, source)
		if err != nil {
			return nil, fmt.Errorf("lake table %s row %d: %w", path, i+2, err)
		}
		out = append(out, lr)
	}
	return out, nil
}

func parseLakeRow(row []string, source string) (domain.LakeRow, error) {
	if len(row) != len(lakeRowHeader) {
		return domain.LakeRow{}, fmt.Errorf("expected %d cells, got %d", len(lakeRowHeader), len(row))
	}

	var lr domain.LakeRow
	var err error
	if lr.StID, err = parseInt(row[0]); err != nil {
		return domain.LakeRow{}, err
	}
	lr.Name = row[1]
	if lr.Lat, err = parseOptFloat(row[2]); err != nil {
		return domain.LakeRow{}, err
	}
	if lr.Long, err = parseOptFloat(row[3]); err != nil {
		return domain.LakeRow{}, err
	}
	lr.FeatureID = parseOptString(row[4])
	if lr.Area, err = parseOptFloat(row[5]); err != nil {
		return domain.LakeRow{}, err
	}
	lr.LakeName = row[6]
	lr.DepositionType = row[7]
	lr.Source = source
	return lr, nil
}

// WriteLakeRows writes an overlay output table, sorted by site id. This is
// the overlay subcommand's half of the contract that ReadLakeRows consumes.
func WriteLakeRows(path string, rows []domain.LakeRow) error {
	sorted := make([]domain.LakeRow, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StID < sorted[j].StID })

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create lake table: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(lakeRowHeader); err != nil {
		return fmt.Errorf("write lake table header: %w", err)
	}
	for _, r := range sorted {
		rec := []string{
			strconv.Itoa(r.StID),
			r.Name,
			formatOptFloat(r.Lat),
			formatOptFloat(r.Long),
			formatOptString(r.FeatureID),
			formatOptFloat(r.Area),
			r.LakeName,
			r.DepositionType,
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write lake table row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush lake table: %w", err)
	}
	return nil
}
