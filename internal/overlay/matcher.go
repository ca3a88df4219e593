// Package overlay spatially joins site coordinates against national
// hydrography lake polygons.
//
// The overlay is deliberately run out-of-band as its own subcommand: the
// national polygon sets are large and the job is executed on a bigger host.
// The report pipeline consumes the resulting CSV as a static input and never
// re-runs the overlay itself.
package overlay

import (
	"fmt"
	"log/slog"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"

	"github.com/mtrachs/neotoma-lakes/internal/adapter/geojsonfile"
	"github.com/mtrachs/neotoma-lakes/internal/domain"
)

// Lake is one hydrography polygon feature prepared for matching.
type Lake struct {
	FeatureID string
	Name      string
	AreaHa    float64 // surface area in hectares
	geometry  orb.Geometry
}

// LoadLakes reads a hydrography polygon dataset from GeoJSON. The feature id
// comes from the GeoJSON id (falling back to an "id" property); the area from
// an "area_ha" property when the producer supplies one, otherwise computed
// geodetically from the polygon.
func LoadLakes(path string) ([]Lake, error) {
	fc, err := geojsonfile.ReadCollection(path)
	if err != nil {
		return nil, fmt.Errorf("load lake polygons: %w", err)
	}

	lakes := make([]Lake, 0, len(fc.Features))
	for i, f := range fc.Features {
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
		default:
			continue
		}

		lake := Lake{
			FeatureID: featureID(f.ID, f.Properties),
			Name:      stringProp(f.Properties, "name"),
			geometry:  f.Geometry,
		}
		if lake.FeatureID == "" {
			return nil, fmt.Errorf("lake polygons %s: feature %d has no id", path, i)
		}

		if a, ok := f.Properties["area_ha"].(float64); ok && a > 0 {
			lake.AreaHa = a
		} else {
			lake.AreaHa = geo.Area(f.Geometry) / 10000 // m2 to hectares
		}
		lakes = append(lakes, lake)
	}
	return lakes, nil
}

// Matcher finds the best-fit lake for each site.
type Matcher struct {
	lakes  []Lake
	source string
	logger *slog.Logger
}

// NewMatcher creates a matcher over one national lake set.
func NewMatcher(lakes []Lake, source string, logger *slog.Logger) *Matcher {
	return &Matcher{lakes: lakes, source: source, logger: logger}
}

// Match overlays every site on the lake polygons. Each site yields exactly
// one row; sites without coordinates or without a containing polygon keep a
// null feature id instead of being dropped.
func (m *Matcher) Match(sites []domain.Site) []domain.LakeRow {
	rows := make([]domain.LakeRow, 0, len(sites))
	for _, s := range sites {
		row := domain.LakeRow{
			StID:           s.StID,
			Name:           s.Name,
			Lat:            s.Lat,
			Long:           s.Long,
			DepositionType: s.DepositionType,
			Source:         m.source,
		}

		if s.Lat != nil && s.Long != nil {
			if lake, ok := m.bestFit(orb.Point{*s.Long, *s.Lat}); ok {
				id := lake.FeatureID
				area := lake.AreaHa
				row.FeatureID = &id
				row.Area = &area
				row.LakeName = lake.Name
			}
		} else {
			m.logger.Warn("site has no coordinates, skipping overlay", "stid", s.StID)
		}

		rows = append(rows, row)
	}
	return rows
}

// bestFit returns the smallest lake polygon containing the point. Nested
// water bodies (an island pond inside a larger lake's ring) make "smallest
// containing" the right tie-break for a point-sized site.
func (m *Matcher) bestFit(pt orb.Point) (Lake, bool) {
	var best Lake
	found := false
	for _, lake := range m.lakes {
		if !contains(lake.geometry, pt) {
			continue
		}
		if !found || lake.AreaHa < best.AreaHa {
			best = lake
			found = true
		}
	}
	return best, found
}

func contains(g orb.Geometry, pt orb.Point) bool {
	switch geom := g.(type) {
	case orb.Polygon:
		return planar.PolygonContains(geom, pt)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(geom, pt)
	default:
		return false
	}
}

func featureID(id any, props map[string]any) string {
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	return stringProp(props, "id")
}

func stringProp(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}
