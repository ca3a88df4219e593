package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func sptr(s string) *string { return &s }

func TestSummarizeChronology(t *testing.T) {
	t.Run("counts per control type", func(t *testing.T) {
		rec := ChronRecord{
			StID: 101,
			DsID: 2001,
			Controls: []ChronControl{
				{ControlType: "Radiocarbon", Age: fptr(1200)},
				{ControlType: "Radiocarbon", Age: fptr(4500)},
				{ControlType: "Core top", Age: fptr(-50)},
			},
		}

		s := SummarizeChronology(rec)
		assert.Equal(t, 101, s.StID)
		assert.Equal(t, 2001, s.DsID)
		assert.Equal(t, 3, s.Total)
		assert.Equal(t, map[string]int{"Radiocarbon": 2, "Core top": 1}, s.TypeCounts)
	})

	t.Run("interval statistics", func(t *testing.T) {
		rec := ChronRecord{
			StID: 102,
			Controls: []ChronControl{
				{ControlType: "Radiocarbon", Age: fptr(100)},
				{ControlType: "Radiocarbon", Age: fptr(150)},
				{ControlType: "Radiocarbon", Age: fptr(400)},
			},
		}

		s := SummarizeChronology(rec)
		require.NotNil(t, s.MeanInterval)
		require.NotNil(t, s.MaxInterval)
		assert.InDelta(t, 150.0, *s.MeanInterval, 1e-9)
		assert.InDelta(t, 250.0, *s.MaxInterval, 1e-9)
	})

	t.Run("single age yields null statistics", func(t *testing.T) {
		rec := ChronRecord{
			StID:     103,
			Controls: []ChronControl{{ControlType: "Core top", Age: fptr(0)}},
		}

		s := SummarizeChronology(rec)
		assert.Equal(t, 1, s.Total)
		assert.Nil(t, s.MeanInterval)
		assert.Nil(t, s.MaxInterval)
	})

	t.Run("zero controls keeps identifiers only", func(t *testing.T) {
		s := SummarizeChronology(ChronRecord{StID: 104, DsID: 2004})
		assert.Equal(t, 104, s.StID)
		assert.Equal(t, 2004, s.DsID)
		assert.Equal(t, 0, s.Total)
		assert.Nil(t, s.TypeCounts)
		assert.Nil(t, s.MeanInterval)
		assert.Nil(t, s.MaxInterval)
	})

	t.Run("undated controls are skipped pairwise", func(t *testing.T) {
		rec := ChronRecord{
			StID: 105,
			Controls: []ChronControl{
				{ControlType: "Radiocarbon", Age: fptr(100)},
				{ControlType: "Tephra", Age: nil},
				{ControlType: "Radiocarbon", Age: fptr(400)},
			},
		}

		// No consecutive pair has both ages, so statistics stay null even
		// though two controls are dated.
		s := SummarizeChronology(rec)
		assert.Equal(t, 3, s.Total)
		assert.Nil(t, s.MeanInterval)
		assert.Nil(t, s.MaxInterval)
	})
}

func TestIntervalStats(t *testing.T) {
	tests := []struct {
		name     string
		ages     []*float64
		wantMean *float64
		wantMax  *float64
	}{
		{"reference sequence", []*float64{fptr(100), fptr(150), fptr(400)}, fptr(150), fptr(250)},
		{"single age", []*float64{fptr(100)}, nil, nil},
		{"empty", nil, nil, nil},
		{"all nil", []*float64{nil, nil, nil}, nil, nil},
		{"reversed sequence keeps sign", []*float64{fptr(400), fptr(100)}, fptr(-300), fptr(-300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, max := intervalStats(tt.ages)
			if tt.wantMean == nil {
				assert.Nil(t, mean)
				assert.Nil(t, max)
				return
			}
			require.NotNil(t, mean)
			require.NotNil(t, max)
			assert.InDelta(t, *tt.wantMean, *mean, 1e-9)
			assert.InDelta(t, *tt.wantMax, *max, 1e-9)
		})
	}
}

func TestChronTypeColumns(t *testing.T) {
	summaries := []ChronSummary{
		{TypeCounts: map[string]int{"Tephra": 1, "Core top": 2}},
		{TypeCounts: map[string]int{"Radiocarbon": 5}},
		{}, // no controls
	}

	cols := ChronTypeColumns(summaries)
	assert.Equal(t, []string{"Core top", "Radiocarbon", "Tephra"}, cols)

	// At least as many columns as distinct observed types.
	assert.GreaterOrEqual(t, len(cols), 3)
}
