package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterWestern(t *testing.T) {
	rows := []LakeRow{
		{StID: 1, Long: fptr(-98.4)},
		{StID: 2, Long: fptr(10.0)}, // projection error, east of Greenwich
		{StID: 3, Long: nil},
		{StID: 4, Long: fptr(-0.0001)},
	}

	out := FilterWestern(rows)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].StID)
	assert.Equal(t, 4, out[1].StID)
}

func TestJoinEdits(t *testing.T) {
	rows := []LakeRow{
		{StID: 1, Name: "A"},
		{StID: 2, Name: "B"},
		{StID: 3, Name: "C"},
	}
	edits := []Edit{
		{StID: 1, Code: EditMoved, Lat: fptr(45.0), Long: fptr(-90.0)},
		{StID: 3, Code: EditUnchanged, Lat: fptr(50.0), Long: fptr(-100.0)},
	}

	records := JoinEdits(rows, edits)
	require.Len(t, records, 3)

	assert.NotNil(t, records[0].Edit)
	assert.Equal(t, EditMoved, records[0].Edit.Code)

	// Site B has no edit: retained with null edit fields, never dropped.
	assert.Nil(t, records[1].Edit)
	assert.Nil(t, records[1].CorrectedLat())
	assert.Nil(t, records[1].Code())

	assert.NotNil(t, records[2].Edit)
	assert.Equal(t, EditUnchanged, records[2].Edit.Code)
}

func TestJoinEdits_DuplicateEditFirstWins(t *testing.T) {
	rows := []LakeRow{{StID: 7}}
	edits := []Edit{
		{StID: 7, Notes: "first"},
		{StID: 7, Notes: "second"},
	}

	records := JoinEdits(rows, edits)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Edit)
	assert.Equal(t, "first", records[0].Edit.Notes)
}

func TestReviewed(t *testing.T) {
	records := []LakeRecord{
		{LakeRow: LakeRow{StID: 1}, Edit: &Edit{StID: 1, Code: EditMoved, Lat: fptr(45), Long: fptr(-90)}},
		{LakeRow: LakeRow{StID: 2}, Edit: &Edit{StID: 2, Code: EditArtifact, Lat: fptr(45), Long: fptr(-90)}},
		{LakeRow: LakeRow{StID: 3}, Edit: &Edit{StID: 3, Code: EditUnchanged, Lat: fptr(45)}}, // missing longitude
		{LakeRow: LakeRow{StID: 4}},                                                           // never reviewed
		{LakeRow: LakeRow{StID: 5}, Edit: &Edit{StID: 5, Code: EditNoMatch, Lat: fptr(45), Long: fptr(-90)}},
	}

	out := Reviewed(records)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].StID)
	assert.Equal(t, 5, out[1].StID)
}

func TestDedupBySite(t *testing.T) {
	records := []LakeRecord{
		{LakeRow: LakeRow{StID: 9, Source: "canvec"}, Displacement: fptr(0)},
		{LakeRow: LakeRow{StID: 9, Source: "nhd"}, Displacement: fptr(0.3)},
		{LakeRow: LakeRow{StID: 4, Source: "nhd"}},
		{LakeRow: LakeRow{StID: 4, Source: "canvec"}, Displacement: fptr(0.01)},
	}

	out := DedupBySite(records)
	require.Len(t, out, 2)

	// Sorted by site id; the most-displaced row survives.
	assert.Equal(t, 4, out[0].StID)
	assert.Equal(t, "canvec", out[0].Source)
	assert.Equal(t, 9, out[1].StID)
	assert.Equal(t, "nhd", out[1].Source)
	assert.Equal(t, 0.3, *out[1].Displacement)
}
