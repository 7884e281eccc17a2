package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/skills"
)

const sampleCV = `Budi Santoso
budi.santoso@email.com | +628123456789

Experience
Software Engineer at PT Cipta Solusi
01/2019 - 01/2023
Built REST services in Python and deployed Docker images.

Education
S1 Computer Science, GPA: 3.5

Skills
Python, Docker, Git
`

type stubProfileOracle struct {
	profile *models.StructuredProfile
	err     error
	calls   int
}

func (o *stubProfileOracle) ExtractProfile(_ context.Context, _ string, _ []string, _ int) (*models.StructuredProfile, error) {
	o.calls++
	return o.profile, o.err
}

type stubTagger struct {
	entities []Entity
	err      error
}

func (t *stubTagger) Tag(string) ([]Entity, error) {
	return t.entities, t.err
}

func TestExtractOracleSuccess(t *testing.T) {
	gpa := 3.8
	oracle := &stubProfileOracle{profile: &models.StructuredProfile{
		Name:   "Budi Santoso",
		GPA:    &gpa,
		Skills: []string{"python", "docker"},
	}}

	e := New(oracle, nil, skills.DefaultVocabulary(), WithClock(fixedClock()))
	profile := e.Extract(context.Background(), sampleCV, nil)

	assert.False(t, profile.ExtractionDegraded)
	assert.Equal(t, "Budi Santoso", profile.Name)
	assert.Equal(t, []string{"Python", "Docker"}, profile.Skills)
	assert.Equal(t, 1, oracle.calls)
}

func TestExtractFallsThroughOnOracleFailure(t *testing.T) {
	oracle := &stubProfileOracle{err: errors.New("invalid JSON")}

	e := New(oracle, nil, skills.DefaultVocabulary(), WithClock(fixedClock()))
	profile := e.Extract(context.Background(), sampleCV, []string{"Python", "Docker"})

	// Regex strategy filled the profile; the fallthrough is flagged.
	assert.True(t, profile.ExtractionDegraded)
	assert.Equal(t, "Budi Santoso", profile.Name)
	require.NotNil(t, profile.GPA)
	assert.Equal(t, 3.5, *profile.GPA)
	require.NotNil(t, profile.TotalExperienceYears)
	assert.Equal(t, 4, *profile.TotalExperienceYears)
	assert.Equal(t, models.EducationS1, profile.EducationLevel)
}

func TestExtractNERStrategyUsesTagger(t *testing.T) {
	tagger := &stubTagger{entities: []Entity{
		{Text: "PT Cipta Solusi", Label: "ORG"},
		{Text: "Budi Santoso", Label: "PERSON"},
	}}

	e := New(nil, tagger, skills.DefaultVocabulary(), WithClock(fixedClock()))
	profile := e.Extract(context.Background(), sampleCV, nil)

	assert.False(t, profile.ExtractionDegraded)
	assert.Equal(t, "Budi Santoso", profile.Name)
}

func TestExtractTaggerFailureFallsThroughToRegex(t *testing.T) {
	tagger := &stubTagger{err: errors.New("model not loaded")}

	e := New(nil, tagger, skills.DefaultVocabulary(), WithClock(fixedClock()))
	profile := e.Extract(context.Background(), sampleCV, nil)

	assert.True(t, profile.ExtractionDegraded)
	assert.Equal(t, "Budi Santoso", profile.Name)
}

func TestExtractEmptyTextReturnsDegradedDefault(t *testing.T) {
	e := New(nil, nil, skills.DefaultVocabulary())

	profile := e.Extract(context.Background(), "   \n  ", nil)

	assert.True(t, profile.ExtractionDegraded)
	assert.Empty(t, profile.Name)
	assert.Nil(t, profile.GPA)
	assert.Nil(t, profile.TotalExperienceYears)
}

func TestExtractIsIdempotent(t *testing.T) {
	e := New(nil, nil, skills.DefaultVocabulary(), WithClock(fixedClock()))

	first := e.Extract(context.Background(), sampleCV, []string{"Python", "Docker"})
	second := e.Extract(context.Background(), sampleCV, []string{"Python", "Docker"})

	assert.Equal(t, first, second)
}

func TestTokenWindowCountsRepeatedTokens(t *testing.T) {
	// Every token repeats, so cutting at the first occurrence of the
	// boundary token would truncate the window to a handful of words.
	text := strings.TrimSpace(strings.Repeat("go and ", 60))

	window := tokenWindow(text, 100)

	assert.Len(t, strings.Fields(window), 100)
}

func TestTokenWindowPreservesLineStructure(t *testing.T) {
	text := "Budi Santoso\nbudi@email.com\nExperience follows here"

	window := tokenWindow(text, 3)

	assert.Equal(t, "Budi Santoso\nbudi@email.com\n", window)
}

func TestTokenWindowShortTextReturnedWhole(t *testing.T) {
	text := "Budi Santoso"

	assert.Equal(t, text, tokenWindow(text, 100))
}

func TestExtractClipsImplausibleExperience(t *testing.T) {
	text := `Experience
Engineer
01/1990 - 01/2020
`

	e := New(nil, nil, skills.DefaultVocabulary(), WithClock(fixedClock()))
	profile := e.Extract(context.Background(), text, nil)

	require.NotNil(t, profile.TotalExperienceYears)
	assert.Equal(t, 15, *profile.TotalExperienceYears)
}
