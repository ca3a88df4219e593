package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mtrachs/neotoma-lakes/internal/domain"
)

var editHeader = []string{
	"stid", "edit_code", "lat", "long", "area", "deposition_type", "notes",
}

// ReadEdits reads the manually curated edit table. The file format is owned
// by the edit-entry collaborator; this reader only validates what the join
// depends on: integer site ids and edit codes in {0,1,2,3}.
func ReadEdits(path string) ([]domain.Edit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edit table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read edit table %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("edit table %s: missing header", path)
	}

	edits := make([]domain.Edit, 0, len(rows)-1)
	for i, row := range rows[1:] {
		e, err := parseEdit(row)
		if err != nil {
			return nil, fmt.Errorf("edit table %s row %d: %w", path, i+2, err)
		}
		edits = append(edits, e)
	}
	return edits, nil
}

func parseEdit(row []string) (domain.Edit, error) {
	if len(row) != len(editHeader) {
		return domain.Edit{}, fmt.Errorf("expected %d cells, got %d", len(editHeader), len(row))
	}

	var e domain.Edit
	var err error
	if e.StID, err = parseInt(row[0]); err != nil {
		return domain.Edit{}, err
	}

	rawCode, err := parseInt(row[1])
	if err != nil {
		return domain.Edit{}, err
	}
	if e.Code, err = domain.ParseEditCode(rawCode); err != nil {
		return domain.Edit{}, err
	}

	if e.Lat, err = parseOptFloat(row[2]); err != nil {
		return domain.Edit{}, err
	}
	if e.Long, err = parseOptFloat(row[3]); err != nil {
		return domain.Edit{}, err
	}
	if e.Area, err = parseOptFloat(row[4]); err != nil {
		return domain.Edit{}, err
	}
	e.DepositionType = row[5]
	e.Notes = row[6]
	return e, nil
}
