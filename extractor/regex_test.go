package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/skills"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
}

func testParser() *regexParser {
	return newRegexParser(skills.DefaultVocabulary(), fixedClock())
}

func TestGPAKeywordBeatsSlashPattern(t *testing.T) {
	text := "Final project graded 3.2/4.0 overall. IPK: 3.5"

	gpa := testParser().extractGPA(text)

	require.NotNil(t, gpa)
	assert.Equal(t, 3.5, *gpa)
}

func TestGPADecimalComma(t *testing.T) {
	gpa := testParser().extractGPA("IPK 3,45 dari 4,00")

	require.NotNil(t, gpa)
	assert.Equal(t, 3.45, *gpa)
}

func TestGPAOutOfRangeRejected(t *testing.T) {
	assert.Nil(t, testParser().extractGPA("GPA: 5.8"))
	assert.Nil(t, testParser().extractGPA("no numbers here"))
}

func TestExperienceSpanNotSum(t *testing.T) {
	text := `Experience
Software Engineer
01/2020 - 01/2021
Senior Engineer
01/2020 - 01/2023
`

	years, history := testParser().extractExperience(text)

	require.NotNil(t, years)
	// Overlapping roles cover 2020-2023: span is 3, never 1+3.
	assert.Equal(t, 3, *years)
	assert.Len(t, history, 2)
}

func TestExperienceExcludesEducationDates(t *testing.T) {
	text := `Education
S1 Computer Science
08/2015 - 08/2019

Experience
Software Engineer
01/2020 - 01/2023
`

	years, history := testParser().extractExperience(text)

	require.NotNil(t, years)
	assert.Equal(t, 3, *years)
	assert.Len(t, history, 1)
}

func TestExperienceOpenEndedRange(t *testing.T) {
	text := `Experience
Backend Engineer
06/2022 - present
`

	years, _ := testParser().extractExperience(text)

	require.NotNil(t, years)
	// Fixed clock puts "present" at 06/2025.
	assert.Equal(t, 3, *years)
}

func TestWorkHistoryKeepsDocumentOrder(t *testing.T) {
	text := `Experience
Staff Engineer
06/2021 - present
Senior Engineer
01/2020 - 05/2021
Software Engineer
01/2018 - 12/2019
`

	_, history := testParser().extractExperience(text)

	// Entries come back in the order they appear in the document, even
	// though the open-ended range is matched by a separate pass.
	require.Len(t, history, 3)
	assert.Equal(t, "06/2021", history[0].StartDate)
	assert.Equal(t, "01/2020", history[1].StartDate)
	assert.Equal(t, "01/2018", history[2].StartDate)
}

func TestExplicitYearsActsAsFloor(t *testing.T) {
	text := `Professional with 8 years of software experience.
Experience
Engineer
01/2022 - 01/2024
`

	years, _ := testParser().extractExperience(text)

	require.NotNil(t, years)
	assert.Equal(t, 8, *years)
}

func TestExplicitYearsDoesNotLowerSpan(t *testing.T) {
	text := `2 years of backend experience at my last role.
Experience
Engineer
01/2015 - 01/2024
`

	years, _ := testParser().extractExperience(text)

	require.NotNil(t, years)
	assert.Equal(t, 9, *years)
}

func TestEducationLevelHighestWins(t *testing.T) {
	text := "S2 Informatics, previously S1 Computer Science"

	assert.Equal(t, models.EducationS2, testParser().detectEducationLevel(text))
}

func TestEducationLevelKeywordVariants(t *testing.T) {
	p := testParser()

	assert.Equal(t, models.EducationS1, p.detectEducationLevel("Sarjana Komputer"))
	assert.Equal(t, models.EducationS2, p.detectEducationLevel("Magister Manajemen"))
	assert.Equal(t, models.EducationS3, p.detectEducationLevel("PhD in Physics"))
	assert.Equal(t, models.EducationD3, p.detectEducationLevel("Diploma of Accounting"))
	assert.Equal(t, models.EducationLevel(""), p.detectEducationLevel("no degree mentioned"))
}

func TestContactExtraction(t *testing.T) {
	p := testParser()
	text := "Reach me at budi.santoso@email.com or +628123456789"

	assert.Equal(t, "budi.santoso@email.com", p.extractEmail(text))
	assert.Equal(t, "+628123456789", p.extractPhone(text))
}

func TestSkillsMatchRequiredList(t *testing.T) {
	text := "Built services with python and docker, deployed on AWS."

	found := testParser().extractSkills(text, []string{"Python", "Docker", "Kafka"})

	assert.Equal(t, []string{"Python", "Docker"}, found)
}

func TestSkillsFallBackToVocabulary(t *testing.T) {
	text := "Dashboards in tableau backed by sql queries."

	found := testParser().extractSkills(text, nil)

	assert.Contains(t, found, "Sql")
	assert.Contains(t, found, "Tableau")
}

func TestNameFromLinesPrefersFirstLine(t *testing.T) {
	text := "Budi Santoso\nbudi@email.com\nExperience\n..."

	assert.Equal(t, "Budi Santoso", nameFromLines(text))
}

func TestNameFromLinesSkipsHeaderFirstLine(t *testing.T) {
	text := "Curriculum Vitae\nBudi Santoso\nbudi@email.com\n"

	assert.Equal(t, "Budi Santoso", nameFromLines(text))
}
