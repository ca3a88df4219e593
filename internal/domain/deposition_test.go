package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVocabulary(t *testing.T) {
	v := DefaultVocabulary()

	tests := []struct {
		in   string
		want string
	}{
		{"Lacustrine", "lake"},
		{"lake", "lake"},
		{" Natural Lake ", "lake"},
		{"BOG", "marsh"},
		{"Fen", "marsh"},
		{"Swamp", "marsh"},
		{"River", "fluvial"},
		{"Lagoon", "estuarine"},
		{"Rock shelter", "rock shelter"}, // unknown passes through lowercased
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, v.Normalize(tt.in), "input %q", tt.in)
	}
}

func TestLoadVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lake:\n  - see\n  - lac\n"), 0o644))

	v, err := LoadVocabulary(path)
	require.NoError(t, err)
	assert.Equal(t, "lake", v.Normalize("Lac"))
	assert.Equal(t, "lake", v.Normalize("lake")) // canonical maps to itself
}

func TestLoadVocabulary_Errors(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("lake: {not: [a, list"), 0o644))
	_, err = LoadVocabulary(bad)
	require.Error(t, err)
}
