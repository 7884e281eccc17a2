package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabularyContains(t *testing.T) {
	vocab := DefaultVocabulary()

	assert.True(t, vocab.Contains("python"))
	assert.True(t, vocab.Contains("Python"))
	assert.False(t, vocab.Contains("underwater basket weaving"))
}

func TestVocabularyAutocomplete(t *testing.T) {
	vocab := DefaultVocabulary()

	matches := vocab.Autocomplete("java", 10)
	assert.Contains(t, matches, "java")
	assert.Contains(t, matches, "javascript")

	limited := vocab.Autocomplete("a", 3)
	assert.Len(t, limited, 3)

	assert.Nil(t, vocab.Autocomplete("", 10))
	assert.Nil(t, vocab.Autocomplete("zzzz", 10))
}

func TestJobTypeKeywords(t *testing.T) {
	assert.Contains(t, JobTypeKeywords("data engineer"), "airflow")

	// Substring matching tolerates decorated job titles.
	assert.Contains(t, JobTypeKeywords("IT Data Engineer - TAF"), "etl")
	assert.Contains(t, JobTypeKeywords("Senior Business Analyst"), "power bi")

	assert.Nil(t, JobTypeKeywords("florist"))
	assert.Nil(t, JobTypeKeywords(""))
}

func TestRoleMapAliases(t *testing.T) {
	roles := DefaultRoleMap().Roles()

	var found *Role
	for i := range roles {
		for _, alias := range roles[i].Aliases {
			if alias == "swe" {
				found = &roles[i]
			}
		}
	}

	if assert.NotNil(t, found, "swe should alias a role") {
		assert.Equal(t, "software engineer", found.Canonical)
		assert.Contains(t, found.Skills, "golang")
	}
}
