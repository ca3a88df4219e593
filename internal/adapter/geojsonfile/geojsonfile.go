// Package geojsonfile converts pipeline records to and from GeoJSON files.
package geojsonfile

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/mtrachs/neotoma-lakes/internal/domain"
)

// RecordFeature converts a joined lake record into a point feature at its
// best-available position. Records without any coordinates yield nil.
func RecordFeature(r domain.LakeRecord, vocab domain.Vocabulary) *geojson.Feature {
	lat, long := r.BestLat(), r.BestLong()
	if lat == nil || long == nil {
		return nil
	}

	f := geojson.NewFeature(orb.Point{*long, *lat})
	f.Properties = geojson.Properties{
		"stid":            r.StID,
		"site_name":       r.Name,
		"source":          r.Source,
		"linked":          r.Linked(),
		"deposition_type": vocab.Normalize(r.BestDepositionType()),
		"area_delta":      r.AreaDelta,
	}
	if r.FeatureID != nil {
		f.Properties["feature_id"] = *r.FeatureID
	}
	if r.LakeName != "" {
		f.Properties["lake_name"] = r.LakeName
	}
	if a := r.BestArea(); a != nil {
		f.Properties["area"] = *a
	}
	if code := r.Code(); code != nil {
		f.Properties["edit_code"] = int(*code)
		f.Properties["edit_status"] = code.String()
	}
	if r.Displacement != nil {
		f.Properties["displacement"] = *r.Displacement
	}
	return f
}

// WriteRecords writes records as a GeoJSON FeatureCollection. Records without
// coordinates are skipped; callers that need them keep the CSV exports.
func WriteRecords(path string, records []domain.LakeRecord, vocab domain.Vocabulary) error {
	fc := geojson.NewFeatureCollection()
	for _, r := range records {
		if f := RecordFeature(r, vocab); f != nil {
			fc.Append(f)
		}
	}
	return WriteCollection(path, fc)
}

// WriteCollection marshals a feature collection to a file. encoding/json
// sorts property keys, so output is deterministic for identical input.
func WriteCollection(path string, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal feature collection: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadCollection reads a GeoJSON FeatureCollection, e.g. a hydrography lake
// polygon dataset.
func ReadCollection(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}
