package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplacement(t *testing.T) {
	t.Run("identical positions", func(t *testing.T) {
		d := Displacement(fptr(45.0), fptr(-90.0), fptr(45.0), fptr(-90.0))
		require.NotNil(t, d)
		assert.Equal(t, 0.0, *d)
	})

	t.Run("tenth of a degree north", func(t *testing.T) {
		d := Displacement(fptr(45.0), fptr(-90.0), fptr(45.1), fptr(-90.0))
		require.NotNil(t, d)
		assert.InDelta(t, 0.1, *d, 1e-9)
	})

	t.Run("diagonal move", func(t *testing.T) {
		d := Displacement(fptr(45.0), fptr(-90.0), fptr(45.3), fptr(-90.4))
		require.NotNil(t, d)
		assert.InDelta(t, 0.5, *d, 1e-9)
	})

	t.Run("incomplete pair is null", func(t *testing.T) {
		assert.Nil(t, Displacement(fptr(45.0), fptr(-90.0), fptr(45.1), nil))
		assert.Nil(t, Displacement(fptr(45.0), fptr(-90.0), nil, nil))
		assert.Nil(t, Displacement(nil, fptr(-90.0), fptr(45.1), fptr(-90.0)))
	})
}

func TestAreaDelta(t *testing.T) {
	tests := []struct {
		name string
		orig *float64
		corr *float64
		want float64
	}{
		{"area removed yields full original", fptr(50), nil, 50},
		{"newly assigned area yields negation", nil, fptr(30), -30},
		{"unchanged", fptr(50), fptr(50), 0},
		{"both absent", nil, nil, 0},
		{"shrunk", fptr(80), fptr(30), 50},
		{"grown", fptr(30), fptr(80), -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AreaDelta(tt.orig, tt.corr))
		})
	}
}

func TestDecorate(t *testing.T) {
	records := []LakeRecord{
		{
			LakeRow: LakeRow{StID: 1, Lat: fptr(45.0), Long: fptr(-90.0), Area: fptr(50)},
			Edit:    &Edit{StID: 1, Code: EditMoved, Lat: fptr(45.1), Long: fptr(-90.0), Area: fptr(42)},
		},
		{
			// Never reviewed: no displacement, area delta falls to original.
			LakeRow: LakeRow{StID: 2, Lat: fptr(50.0), Long: fptr(-80.0), Area: fptr(10)},
		},
	}

	out := Decorate(records)
	require.Len(t, out, 2)

	require.NotNil(t, out[0].Displacement)
	assert.InDelta(t, 0.1, *out[0].Displacement, 1e-9)
	assert.Equal(t, 8.0, out[0].AreaDelta)

	assert.Nil(t, out[1].Displacement)
	assert.Equal(t, 10.0, out[1].AreaDelta)
}

func TestSummarizeChanges(t *testing.T) {
	records := Decorate([]LakeRecord{
		{
			LakeRow: LakeRow{StID: 1, Lat: fptr(45.0), Long: fptr(-90.0), Area: fptr(50)},
			Edit:    &Edit{StID: 1, Code: EditMoved, Lat: fptr(45.1), Long: fptr(-90.0), Area: fptr(50)},
		},
		{
			LakeRow: LakeRow{StID: 2, Lat: fptr(46.0), Long: fptr(-91.0)},
			Edit:    &Edit{StID: 2, Code: EditUnchanged, Lat: fptr(46.0), Long: fptr(-91.0), Area: fptr(12)},
		},
		{
			LakeRow: LakeRow{StID: 3, Lat: fptr(47.0), Long: fptr(-92.0), Area: fptr(5)},
		},
	})

	s := SummarizeChanges(records)
	assert.Equal(t, 1, s.Moved)       // site 1 moved 0.1 degrees
	assert.Equal(t, 2, s.AreaChanged) // site 2 gained an area, site 3 "lost" its unreviewed one
	assert.Equal(t, 1, s.NewArea)     // site 2
}
