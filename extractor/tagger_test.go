package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicTaggerFindsPersonLine(t *testing.T) {
	tagger := NewHeuristicTagger()

	entities, err := tagger.Tag("Budi Santoso\nbudi@example.com\nEXPERIENCE\nData Engineer at Acme since 2020")
	assert.NoError(t, err)

	var persons []string
	for _, ent := range entities {
		if ent.Label == "PERSON" {
			persons = append(persons, ent.Text)
		}
	}
	assert.Contains(t, persons, "Budi Santoso")
}

func TestHeuristicTaggerSkipsHeadersAndContactLines(t *testing.T) {
	tagger := NewHeuristicTagger()

	entities, err := tagger.Tag("Curriculum Vitae\nTech Stack\nbudi@example.com")
	assert.NoError(t, err)
	assert.Empty(t, entities)
}

func TestHeuristicTaggerIgnoresLowercaseLines(t *testing.T) {
	tagger := NewHeuristicTagger()

	entities, err := tagger.Tag("experienced engineer looking for work\nopen to relocation")
	assert.NoError(t, err)
	assert.Empty(t, entities)
}
