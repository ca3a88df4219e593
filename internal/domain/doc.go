// Package domain models Neotoma paleoecological site records and their link
// to national hydrography datasets.
//
// # Data Sources
//
// Site and dataset records come from the Neotoma Paleoecology Database web
// API (https://api.neotomadb.org), restricted to pollen datasets within a
// national scope (Canada, United States). Each dataset carries a sequence of
// chronological controls: dated reference points (radiocarbon dates, tephras,
// core tops, ...) used to build the age model of a sedimentary record.
//
// Lake polygons come from two national hydrography products:
//
//	CanVec  - Natural Resources Canada hydrographic features
//	NHD     - United States Geological Survey National Hydrography Dataset
//
// The hydrography overlay is executed out-of-band (large polygon sets, run on
// a bigger host); the pipeline consumes its CSV output. One row per site per
// national dataset, with a feature id present iff a containing lake polygon
// was found.
//
// # Coordinate Conventions
//
// Coordinates are WGS-84 decimal degrees. Published Neotoma coordinates are
// frequently rounded to one or two decimals, which is why sites can land
// outside their lake polygon and need manual correction. Sites east of the
// prime meridian (longitude >= 0) are treated as coordinate or projection
// errors and excluded from the lake join.
//
// # Manual Review
//
// A human reviewer classifies every candidate site with an edit code:
//
//	0 artifact   - spurious overlay row (ArcGIS artifact), dropped from review
//	1 moved      - coordinates corrected to the true lake position
//	2 unchanged  - original coordinates confirmed
//	3 no match   - no lake found for the site
//
// Corrected coordinates and areas live next to the code. Missing corrected
// values fall back to the originals; they are never silently zero. The one
// deliberate exception is the area delta, whose exact asymmetric form is
// documented at [AreaDelta].
package domain
