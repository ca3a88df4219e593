package domain

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ChronSummary is the one-row-per-site aggregation of a control sequence.
// A record without controls keeps its identifiers and null statistics; it is
// not an error and not dropped.
type ChronSummary struct {
	StID       int
	DsID       int
	TypeCounts map[string]int // control count per declared control type
	Total      int

	// Interval statistics over consecutive age differences. Nil when the
	// sequence has fewer than two dated controls.
	MeanInterval *float64
	MaxInterval  *float64
}

// SummarizeChronology aggregates a control sequence into a ChronSummary.
func SummarizeChronology(rec ChronRecord) ChronSummary {
	s := ChronSummary{StID: rec.StID, DsID: rec.DsID}
	if len(rec.Controls) == 0 {
		return s
	}

	s.TypeCounts = make(map[string]int)
	ages := make([]*float64, 0, len(rec.Controls))
	for _, c := range rec.Controls {
		s.TypeCounts[c.ControlType]++
		ages = append(ages, c.Age)
	}
	s.Total = len(rec.Controls)
	s.MeanInterval, s.MaxInterval = intervalStats(ages)
	return s
}

// intervalStats computes the mean and maximum of consecutive age differences,
// using only pairs where both ages are present. Fewer than two usable ages
// yields nil statistics rather than zero.
func intervalStats(ages []*float64) (mean, max *float64) {
	var diffs []float64
	for i := 0; i+1 < len(ages); i++ {
		if ages[i] == nil || ages[i+1] == nil {
			continue
		}
		diffs = append(diffs, *ages[i+1]-*ages[i])
	}
	if len(diffs) == 0 {
		return nil, nil
	}

	m := stat.Mean(diffs, nil)
	x := floats.Max(diffs)
	return &m, &x
}

// ChronTypeColumns returns the union of control types observed across all
// summaries, sorted alphabetically. Sorting makes the wide pivot stable
// regardless of site processing order.
func ChronTypeColumns(summaries []ChronSummary) []string {
	seen := make(map[string]struct{})
	for _, s := range summaries {
		for t := range s.TypeCounts {
			seen[t] = struct{}{}
		}
	}

	cols := make([]string, 0, len(seen))
	for t := range seen {
		cols = append(cols, t)
	}
	sort.Strings(cols)
	return cols
}
