package domain

import "sort"

// FilterWestern keeps only rows with a longitude west of the prime meridian.
// Positive longitudes in this dataset are coordinate or projection errors,
// not real North American sites.
func FilterWestern(rows []LakeRow) []LakeRow {
	out := make([]LakeRow, 0, len(rows))
	for _, r := range rows {
		if r.Long != nil && *r.Long < 0 {
			out = append(out, r)
		}
	}
	return out
}

// JoinEdits left-joins the manual edit table onto overlay rows by site id.
// Every input row appears exactly once in the output; a site without an edit
// keeps a nil Edit rather than being dropped. When a site somehow carries
// several edits, the first one in table order wins.
func JoinEdits(rows []LakeRow, edits []Edit) []LakeRecord {
	byStID := make(map[int]*Edit, len(edits))
	for i := range edits {
		if _, ok := byStID[edits[i].StID]; !ok {
			byStID[edits[i].StID] = &edits[i]
		}
	}

	records := make([]LakeRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, LakeRecord{LakeRow: row, Edit: byStID[row.StID]})
	}
	return records
}

// Reviewed returns the records that passed manual review: an edit exists, it
// is not an ArcGIS artifact, and it carries a complete corrected coordinate
// pair. Excluded records stay in the raw joined table for audit.
func Reviewed(records []LakeRecord) []LakeRecord {
	out := make([]LakeRecord, 0, len(records))
	for _, r := range records {
		if r.Edit == nil || r.Edit.Code == EditArtifact || !r.Edit.HasCoordinates() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// DedupBySite collapses duplicate site ids to a single record, preferring the
// one with the largest displacement (the most-corrected version). A nil
// displacement loses to any non-nil one. The result is sorted by site id so
// repeated runs emit byte-identical exports.
func DedupBySite(records []LakeRecord) []LakeRecord {
	best := make(map[int]LakeRecord, len(records))
	for _, r := range records {
		cur, ok := best[r.StID]
		if !ok || moreDisplaced(r, cur) {
			best[r.StID] = r
		}
	}

	out := make([]LakeRecord, 0, len(best))
	for _, r := range best {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StID < out[j].StID })
	return out
}

func moreDisplaced(a, b LakeRecord) bool {
	switch {
	case a.Displacement == nil:
		return false
	case b.Displacement == nil:
		return true
	default:
		return *a.Displacement > *b.Displacement
	}
}
