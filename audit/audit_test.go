package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shellasitanaya/backend-cv-analyzer/skills"
)

func newAuditor() *Auditor {
	return New(skills.DefaultVocabulary())
}

var wellFormedCV = `Budi Santoso
budi.santoso@email.com | +628123456789

Summary
Backend engineer with four years building payment services.

Experience
Software Engineer at PT Cipta Solusi. Built REST services in Python and
Flask, tuned PostgreSQL queries, shipped Docker images to production.

Education
S1 Computer Science, Universitas Indonesia

Skills
Python, Flask, PostgreSQL, Docker, Git
` + strings.Repeat("Delivered measurable improvements across several teams. ", 20)

func TestAuditMatchesKeywordsFromJobDescription(t *testing.T) {
	jd := "Looking for a Python engineer with Flask and PostgreSQL knowledge. Kafka is a plus."

	result := newAuditor().Audit(wellFormedCV, jd, "")

	assert.Contains(t, result.Matched, "python")
	assert.Contains(t, result.Matched, "flask")
	assert.Contains(t, result.Matched, "postgresql")
	assert.Contains(t, result.Missing, "kafka")
	assert.Greater(t, result.MatchPercentage, 0.0)
	assert.LessOrEqual(t, result.MatchPercentage, 100.0)
}

func TestAuditJobTypeKeywordsAreIncluded(t *testing.T) {
	jd := "We need someone to maintain reporting pipelines."

	result := newAuditor().Audit(wellFormedCV, jd, "it data engineer - taf")

	// "airflow" comes only from the data engineer list, not the JD.
	assert.Contains(t, result.Missing, "airflow")
}

func TestAuditUnknownJobTypeIgnored(t *testing.T) {
	jd := "General administrative position."

	result := newAuditor().Audit(wellFormedCV, jd, "barista")

	assert.NotContains(t, result.Matched, "airflow")
	assert.NotContains(t, result.Missing, "airflow")
}

func TestATSFullMarksForWellFormedCV(t *testing.T) {
	result := newAuditor().Audit(wellFormedCV, "Python engineer", "")

	assert.Equal(t, 100, result.ATS.Score)
	assert.Empty(t, result.ATS.Findings)
}

func TestATSPenalizesMissingContactAndSections(t *testing.T) {
	cv := "Just a paragraph of text without any resume structure at all."

	result := newAuditor().Audit(cv, "Python engineer", "")

	// -25 contact, -10 x4 sections, -10 too short.
	assert.Equal(t, 25, result.ATS.Score)
	assert.Contains(t, result.ATS.Findings, "Missing section header: education")
}

func TestATSLengthPenalties(t *testing.T) {
	// Short resumes are the bigger ATS problem, so they cost more
	// than overlong ones.
	short := newAuditor().Audit(wellFormedCV[:strings.Index(wellFormedCV, "Delivered")], "Python engineer", "")
	assert.Equal(t, 90, short.ATS.Score)
	assert.Contains(t, short.ATS.Findings, "Resume is too short for most screening systems")

	long := newAuditor().Audit(wellFormedCV+strings.Repeat("Delivered measurable improvements across several teams. ", 200), "Python engineer", "")
	assert.Equal(t, 95, long.ATS.Score)
	assert.Contains(t, long.ATS.Findings, "Resume is too long for most screening systems")
}

func TestATSPenalizesColumnLayout(t *testing.T) {
	cv := wellFormedCV + strings.Repeat(" | col", 12)

	result := newAuditor().Audit(cv, "Python engineer", "")

	assert.Equal(t, 85, result.ATS.Score)
}

func TestATSScoreFloorsAtZero(t *testing.T) {
	cv := "x\t|\t|\t|\t|\t|\t|"

	result := newAuditor().Audit(cv, "Python engineer", "")

	assert.GreaterOrEqual(t, result.ATS.Score, 0)
}

func TestAuditEmptyKeywordSet(t *testing.T) {
	result := newAuditor().Audit(wellFormedCV, "", "")

	assert.Equal(t, 0.0, result.MatchPercentage)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
}
