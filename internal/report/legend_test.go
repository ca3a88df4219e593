package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtrachs/neotoma-lakes/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func TestNewLegend_CategoricalEditCode(t *testing.T) {
	fields := MapFields()
	require.Equal(t, "edit_code", fields[0].Name)
	require.Equal(t, Categorical, fields[0].Kind)

	legend := NewLegend(fields[0], nil)

	moved := float64(domain.EditMoved)
	unchanged := float64(domain.EditUnchanged)
	assert.NotEqual(t, legend.Color(&moved), legend.Color(&unchanged))
	assert.Equal(t, neutralColor, legend.Color(nil), "unreviewed sites stay neutral")

	outOfRange := 9.0
	assert.Equal(t, neutralColor, legend.Color(&outOfRange))
}

func TestNewLegend_ContinuousScalesToData(t *testing.T) {
	records := []domain.LakeRecord{
		{Displacement: fptr(0)},
		{Displacement: fptr(0.5)},
		{Displacement: fptr(1.0)},
		{Displacement: nil},
	}

	field := MapFields()[1]
	require.Equal(t, "displacement", field.Name)
	require.Equal(t, Continuous, field.Kind)

	legend := NewLegend(field, records)

	low := legend.Color(fptr(0))
	high := legend.Color(fptr(1.0))
	assert.Equal(t, continuousRamp[0], low)
	assert.Equal(t, continuousRamp[len(continuousRamp)-1], high)
	assert.NotEqual(t, low, high)
	assert.Equal(t, neutralColor, legend.Color(nil))
}

func TestNewLegend_ContinuousDegenerateRange(t *testing.T) {
	records := []domain.LakeRecord{{Displacement: fptr(0.3)}, {Displacement: fptr(0.3)}}
	legend := NewLegend(MapFields()[1], records)
	assert.Equal(t, continuousRamp[0], legend.Color(fptr(0.3)))
}

func TestMapFields_AreaDeltaAlwaysPresent(t *testing.T) {
	field := MapFields()[2]
	require.Equal(t, "area_delta", field.Name)

	v := field.Value(domain.LakeRecord{})
	require.NotNil(t, v, "area delta is defined for every record")
	assert.Equal(t, 0.0, *v)
}
