package domain

// LakeRow is one raw hydrography overlay output row: a site, the lake feature
// the overlay matched it to (if any), and the matched lake's area.
type LakeRow struct {
	StID           int
	Name           string
	Lat            *float64
	Long           *float64
	FeatureID      *string  // hydrography feature id; nil when no polygon contained the site
	Area           *float64 // matched lake area in hectares
	LakeName       string
	DepositionType string
	Source         string // "canvec" or "nhd"
}

// Linked reports whether the overlay found a hydrography feature for the site.
func (r LakeRow) Linked() bool { return r.FeatureID != nil }

// LakeRecord is the report-time composite of an overlay row, its manual edit
// (nil when the site was never reviewed), and the derived change diagnostics.
type LakeRecord struct {
	LakeRow
	Edit *Edit

	// Derived by Decorate.
	Displacement *float64 // degree-space distance original -> corrected; nil without a complete pair
	AreaDelta    float64
}

// Code returns the edit code, or nil when the site has no edit.
func (r LakeRecord) Code() *EditCode {
	if r.Edit == nil {
		return nil
	}
	return &r.Edit.Code
}

// CorrectedLat returns the reviewer's corrected latitude, if any.
func (r LakeRecord) CorrectedLat() *float64 {
	if r.Edit == nil {
		return nil
	}
	return r.Edit.Lat
}

// CorrectedLong returns the reviewer's corrected longitude, if any.
func (r LakeRecord) CorrectedLong() *float64 {
	if r.Edit == nil {
		return nil
	}
	return r.Edit.Long
}

// CorrectedArea returns the reviewer's corrected area, if any.
func (r LakeRecord) CorrectedArea() *float64 {
	if r.Edit == nil {
		return nil
	}
	return r.Edit.Area
}

// BestLat is the corrected latitude when present, else the original.
func (r LakeRecord) BestLat() *float64 { return coalesce(r.CorrectedLat(), r.Lat) }

// BestLong is the corrected longitude when present, else the original.
func (r LakeRecord) BestLong() *float64 { return coalesce(r.CorrectedLong(), r.Long) }

// BestArea is the corrected area when present, else the original.
func (r LakeRecord) BestArea() *float64 { return coalesce(r.CorrectedArea(), r.Area) }

// BestDepositionType prefers the reviewer's deposition type over Neotoma's.
func (r LakeRecord) BestDepositionType() string {
	if r.Edit != nil && r.Edit.DepositionType != "" {
		return r.Edit.DepositionType
	}
	return r.DepositionType
}

func coalesce(a, b *float64) *float64 {
	if a != nil {
		return a
	}
	return b
}
