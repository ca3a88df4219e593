package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEditCode(t *testing.T) {
	tests := []struct {
		value int
		want  EditCode
		name  string
	}{
		{0, EditArtifact, "artifact"},
		{1, EditMoved, "moved"},
		{2, EditUnchanged, "unchanged"},
		{3, EditNoMatch, "no_match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseEditCode(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
			assert.Equal(t, tt.name, c.String())
		})
	}

	_, err := ParseEditCode(4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown edit code")
}

func TestEdit_HasCoordinates(t *testing.T) {
	assert.True(t, Edit{Lat: fptr(45), Long: fptr(-90)}.HasCoordinates())
	assert.False(t, Edit{Lat: fptr(45)}.HasCoordinates())
	assert.False(t, Edit{Long: fptr(-90)}.HasCoordinates())
	assert.False(t, Edit{}.HasCoordinates())
}
