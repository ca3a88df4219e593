package domain

import "fmt"

// EditCode classifies the outcome of a manual site review.
type EditCode int

const (
	EditArtifact  EditCode = 0 // spurious overlay row, excluded from review
	EditMoved     EditCode = 1 // coordinates corrected
	EditUnchanged EditCode = 2 // original position confirmed
	EditNoMatch   EditCode = 3 // no lake found for the site
)

// ParseEditCode validates a raw integer edit code.
func ParseEditCode(v int) (EditCode, error) {
	switch c := EditCode(v); c {
	case EditArtifact, EditMoved, EditUnchanged, EditNoMatch:
		return c, nil
	default:
		return 0, fmt.Errorf("unknown edit code %d", v)
	}
}

func (c EditCode) String() string {
	switch c {
	case EditArtifact:
		return "artifact"
	case EditMoved:
		return "moved"
	case EditUnchanged:
		return "unchanged"
	case EditNoMatch:
		return "no_match"
	default:
		return fmt.Sprintf("edit_code(%d)", int(c))
	}
}

// Edit is one human annotation of a candidate lake site. Immutable once a
// report has been generated from it.
type Edit struct {
	StID           int
	Code           EditCode
	Notes          string
	Lat            *float64 // corrected latitude
	Long           *float64 // corrected longitude
	Area           *float64 // corrected area in hectares
	DepositionType string
}

// HasCoordinates reports whether the edit carries a complete corrected
// coordinate pair.
func (e Edit) HasCoordinates() bool {
	return e.Lat != nil && e.Long != nil
}
