package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/mtrachs/neotoma-lakes/internal/domain"
)

// Fixed leading and trailing columns of the chronology status table. The
// control-type pivot columns sit between them, sorted alphabetically.
var (
	chronLeadCols  = []string{"stid", "dsid"}
	chronTrailCols = []string{"total_controls", "mean_interval", "max_interval"}
)

// WriteChronStatus writes the wide-pivoted chronology status table. Rows are
// sorted by site then dataset id; a record without controls keeps empty cells
// in every non-identifier column.
func WriteChronStatus(path string, summaries []domain.ChronSummary) error {
	types := domain.ChronTypeColumns(summaries)

	sorted := make([]domain.ChronSummary, len(summaries))
	copy(sorted, summaries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StID != sorted[j].StID {
			return sorted[i].StID < sorted[j].StID
		}
		return sorted[i].DsID < sorted[j].DsID
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chron status file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append(append(append([]string{}, chronLeadCols...), types...), chronTrailCols...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write chron status header: %w", err)
	}

	for _, s := range sorted {
		row := []string{strconv.Itoa(s.StID), strconv.Itoa(s.DsID)}
		for _, typ := range types {
			if n, ok := s.TypeCounts[typ]; ok {
				row = append(row, strconv.Itoa(n))
			} else {
				row = append(row, "")
			}
		}
		if s.Total > 0 {
			row = append(row, strconv.Itoa(s.Total))
		} else {
			row = append(row, "")
		}
		row = append(row, formatOptFloat(s.MeanInterval), formatOptFloat(s.MaxInterval))

		if err := w.Write(row); err != nil {
			return fmt.Errorf("write chron status row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush chron status: %w", err)
	}
	return nil
}

// ReadChronStatus reads a chronology status table back, reconstructing the
// per-type counts from the pivot columns. Used to reuse a version's fetch
// cache instead of hitting the API again.
func ReadChronStatus(path string) ([]domain.ChronSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chron status file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read chron status %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("chron status %s: missing header", path)
	}

	header := rows[0]
	if len(header) < len(chronLeadCols)+len(chronTrailCols) {
		return nil, fmt.Errorf("chron status %s: malformed header", path)
	}
	types := header[len(chronLeadCols) : len(header)-len(chronTrailCols)]

	summaries := make([]domain.ChronSummary, 0, len(rows)-1)
	for i, row := range rows[1:] {
		s, err := parseChronRow(row, types)
		if err != nil {
			return nil, fmt.Errorf("chron status %s row %d: %w", path, i+2, err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func parseChronRow(row, types []string) (domain.ChronSummary, error) {
	if len(row) != len(chronLeadCols)+len(types)+len(chronTrailCols) {
		return domain.ChronSummary{}, fmt.Errorf("expected %d cells, got %d", len(chronLeadCols)+len(types)+len(chronTrailCols), len(row))
	}

	var s domain.ChronSummary
	var err error
	if s.StID, err = parseInt(row[0]); err != nil {
		return domain.ChronSummary{}, err
	}
	if s.DsID, err = parseInt(row[1]); err != nil {
		return domain.ChronSummary{}, err
	}

	for i, typ := range types {
		cell := row[len(chronLeadCols)+i]
		if cell == "" {
			continue
		}
		n, err := parseInt(cell)
		if err != nil {
			return domain.ChronSummary{}, err
		}
		if s.TypeCounts == nil {
			s.TypeCounts = make(map[string]int)
		}
		s.TypeCounts[typ] = n
	}

	trail := row[len(chronLeadCols)+len(types):]
	if trail[0] != "" {
		if s.Total, err = parseInt(trail[0]); err != nil {
			return domain.ChronSummary{}, err
		}
	}
	if s.MeanInterval, err = parseOptFloat(trail[1]); err != nil {
		return domain.ChronSummary{}, err
	}
	if s.MaxInterval, err = parseOptFloat(trail[2]); err != nil {
		return domain.ChronSummary{}, err
	}
	return s, nil
}
