package domain

import "math"

// Displacement is the Euclidean distance, in coordinate-degree units, between
// the original and corrected positions. Nil when either pair is incomplete:
// an unreviewed site has no displacement, not a zero one.
func Displacement(origLat, origLong, corrLat, corrLong *float64) *float64 {
	if origLat == nil || origLong == nil || corrLat == nil || corrLong == nil {
		return nil
	}
	d := math.Sqrt(math.Pow(*origLat-*corrLat, 2) + math.Pow(*origLong-*corrLong, 2))
	return &d
}

// AreaDelta is the signed area correction:
//
//	(original if present else 0) - (corrected if present else 0)
//
// so a removed area yields the full original value and a newly assigned area
// yields its negation. The asymmetric null handling is deliberate; the
// report's change counts depend on these exact values, so do not "fix" it
// into a fallback-to-original subtraction.
func AreaDelta(orig, corr *float64) float64 {
	var o, c float64
	if orig != nil {
		o = *orig
	}
	if corr != nil {
		c = *corr
	}
	return o - c
}

// Decorate fills the derived change diagnostics on every record.
func Decorate(records []LakeRecord) []LakeRecord {
	out := make([]LakeRecord, len(records))
	for i, r := range records {
		r.Displacement = Displacement(r.Lat, r.Long, r.CorrectedLat(), r.CorrectedLong())
		r.AreaDelta = AreaDelta(r.Area, r.CorrectedArea())
		out[i] = r
	}
	return out
}

// ChangeSummary holds the narrative counts interpolated into the report.
type ChangeSummary struct {
	Moved       int // displacement > 0
	AreaChanged int // area delta != 0
	NewArea     int // no original area, corrected area assigned
}

// SummarizeChanges derives the report counts from a decorated table.
func SummarizeChanges(records []LakeRecord) ChangeSummary {
	var s ChangeSummary
	for _, r := range records {
		if r.Displacement != nil && *r.Displacement > 0 {
			s.Moved++
		}
		if r.AreaDelta != 0 {
			s.AreaChanged++
		}
		if r.Area == nil && r.CorrectedArea() != nil {
			s.NewArea++
		}
	}
	return s
}
