package domain

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed deposition.yaml
var defaultVocabularyYAML []byte

// Vocabulary maps variant deposition-type spellings to canonical codes.
// Lookups are case-insensitive on trimmed values; unknown spellings pass
// through lowercased so no record loses its deposition type.
type Vocabulary struct {
	variants map[string]string
}

// DefaultVocabulary returns the vocabulary embedded in the binary.
func DefaultVocabulary() Vocabulary {
	v, err := parseVocabulary(defaultVocabularyYAML)
	if err != nil {
		// The embedded file is validated by tests; a parse failure here is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded deposition vocabulary: %v", err))
	}
	return v
}

// LoadVocabulary reads a vocabulary override from a YAML file.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary: %w", err)
	}
	v, err := parseVocabulary(data)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("parse vocabulary %s: %w", path, err)
	}
	return v, nil
}

func parseVocabulary(data []byte) (Vocabulary, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Vocabulary{}, err
	}

	variants := make(map[string]string)
	for canonical, spellings := range raw {
		for _, s := range spellings {
			variants[normalizeKey(s)] = canonical
		}
		// A canonical code always maps to itself.
		variants[normalizeKey(canonical)] = canonical
	}
	return Vocabulary{variants: variants}, nil
}

// Normalize collapses a free-text deposition type to its canonical code.
func (v Vocabulary) Normalize(depositionType string) string {
	key := normalizeKey(depositionType)
	if canonical, ok := v.variants[key]; ok {
		return canonical
	}
	return key
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
