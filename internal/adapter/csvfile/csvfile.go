// Package csvfile reads and writes the pipeline's tabular artifacts.
//
// Null cells are empty strings in both directions: a missing statistic, an
// unmatched feature id, or an absent corrected value is written as "" and read
// back as nil, never as zero. Writers sort their rows so repeated runs over
// unchanged inputs produce byte-identical files.
package csvfile

import (
	"fmt"
	"strconv"
	"strings"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatOptString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func parseOptFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("parse number %q: %w", s, err)
	}
	return &v, nil
}

func parseOptString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse integer %q: %w", s, err)
	}
	return v, nil
}
