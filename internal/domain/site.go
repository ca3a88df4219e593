package domain

import "context"

// Site is a physical sampling location (usually a lake) as published by
// Neotoma, paired with the pollen dataset recorded there. Optional fields are
// pointers: Neotoma frequently omits area and sometimes coordinates.
type Site struct {
	StID           int      // Neotoma site id, unique within a national scope
	DsID           int      // pollen dataset id
	Name           string
	Lat            *float64
	Long           *float64
	Area           *float64 // reported surface area in hectares
	DepositionType string   // free-text depositional environment
	Country        string   // ISO-3166 alpha-2, "CA" or "US"
}

// ChronControl is a single dated reference point in a dataset's age model.
type ChronControl struct {
	ControlType string   // e.g. "Radiocarbon", "Core top", "Tephra"
	Age         *float64 // calibrated years BP; nil when undated
}

// ChronRecord pairs a site/dataset with its retrieved control sequence.
// A failed or empty per-dataset lookup leaves Controls nil; the record is
// still emitted keyed by its identifiers.
type ChronRecord struct {
	StID     int
	DsID     int
	Controls []ChronControl
}

// DatasetSource retrieves pollen datasets and their chronologies for a
// national scope.
type DatasetSource interface {
	// Datasets returns all pollen dataset/site pairs for a country code.
	Datasets(ctx context.Context, country string) ([]Site, error)

	// ChronControls returns the chronological control sequence of a dataset.
	ChronControls(ctx context.Context, datasetID int) ([]ChronControl, error)
}
