package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/skills"
)

func newIndex() *Index {
	return New(skills.DefaultRoleMap())
}

func candidateWithSkills(id string, score float64, skills ...string) *models.Candidate {
	return &models.Candidate{ID: id, Skills: skills, MatchScore: &score}
}

func TestSearchExactAliasResolvesRole(t *testing.T) {
	candidates := []*models.Candidate{
		candidateWithSkills("c1", 70, "Python", "Docker", "AWS"),
		candidateWithSkills("c2", 80, "Photoshop", "Illustrator"),
	}

	matches := newIndex().Search("swe", candidates)

	require.Len(t, matches, 1)
	assert.Equal(t, "c1", matches[0].Candidate.ID)
	assert.Equal(t, "software engineer", matches[0].RoleMatched)
	assert.Equal(t, 3, matches[0].MatchCount)
}

func TestSearchFuzzyQueryResolvesRole(t *testing.T) {
	candidates := []*models.Candidate{
		candidateWithSkills("c1", 70, "HTML", "CSS", "JavaScript"),
	}

	matches := newIndex().Search("frontend dev", candidates)

	require.Len(t, matches, 1)
	assert.Equal(t, "web development", matches[0].RoleMatched)
}

func TestSearchLiteralSkillOutranksRoleAlias(t *testing.T) {
	reactDev := candidateWithSkills("react-dev", 50, "React", "Redux")
	htmlOnly := candidateWithSkills("html-only", 90, "HTML", "CSS")

	matches := newIndex().Search("react developer", []*models.Candidate{htmlOnly, reactDev})

	// "react developer" does not clear the role threshold, so only the
	// literal skill term matches; the candidate holding the actual React
	// skill must lead and the role-adjacent candidate must not appear.
	require.NotEmpty(t, matches)
	assert.Equal(t, "react-dev", matches[0].Candidate.ID)
	for _, m := range matches {
		assert.NotEqual(t, "html-only", m.Candidate.ID)
	}
}

func TestSearchRanksByMatchCountThenScore(t *testing.T) {
	twoSkills := candidateWithSkills("two", 40, "Python", "Docker")
	oneSkillHigh := candidateWithSkills("one-high", 95, "Python")
	oneSkillLow := candidateWithSkills("one-low", 60, "Python")

	matches := newIndex().Search("backend", []*models.Candidate{oneSkillLow, oneSkillHigh, twoSkills})

	require.Len(t, matches, 3)
	assert.Equal(t, "two", matches[0].Candidate.ID)
	assert.Equal(t, "one-high", matches[1].Candidate.ID)
	assert.Equal(t, "one-low", matches[2].Candidate.ID)
}

func TestSearchUnknownQueryFallsBackToLiteralTerms(t *testing.T) {
	candidates := []*models.Candidate{
		candidateWithSkills("c1", 70, "Photoshop", "Figma"),
		candidateWithSkills("c2", 70, "Python"),
	}

	matches := newIndex().Search("figma", candidates)

	require.Len(t, matches, 1)
	assert.Equal(t, "c1", matches[0].Candidate.ID)
	assert.Empty(t, matches[0].RoleMatched)
}

func TestSearchEmptyQuery(t *testing.T) {
	assert.Empty(t, newIndex().Search("  ", []*models.Candidate{candidateWithSkills("c1", 70, "Python")}))
}

func TestSearchNoCandidates(t *testing.T) {
	assert.Empty(t, newIndex().Search("backend", nil))
}
