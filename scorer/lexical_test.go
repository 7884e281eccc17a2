package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexicalScoreIdenticalTexts(t *testing.T) {
	s := NewLexicalScorer()
	text := "Backend engineer with Go, PostgreSQL and Docker experience"

	assert.Equal(t, 100.0, s.Score(text, text))
}

func TestLexicalScoreDisjointTexts(t *testing.T) {
	s := NewLexicalScorer()

	assert.Equal(t, 0.0, s.Score("pastry chef croissant baking", "kubernetes golang microservices"))
}

func TestLexicalScoreEmptyInput(t *testing.T) {
	s := NewLexicalScorer()

	assert.Equal(t, 0.0, s.Score("", "golang backend engineer"))
	assert.Equal(t, 0.0, s.Score("golang backend engineer", ""))
	assert.Equal(t, 0.0, s.Score("the and of with", "golang backend engineer"))
}

func TestLexicalScorePartialOverlap(t *testing.T) {
	s := NewLexicalScorer()

	score := s.Score(
		"Software engineer experienced in Go, Docker and REST APIs",
		"Looking for a Go engineer familiar with Docker and Kubernetes",
	)

	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 100.0)
}

func TestLexicalScoreIsDeterministic(t *testing.T) {
	s := NewLexicalScorer()
	cv := "Data analyst skilled in SQL, Python and Tableau dashboards"
	jd := "We need an analyst who writes SQL and builds Tableau dashboards"

	first := s.Score(cv, jd)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Score(cv, jd))
	}
}
