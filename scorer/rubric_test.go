package scorer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
)

type stubOracle struct {
	assessment *Assessment
	err        error
}

func (s *stubOracle) ScoreRubric(_ context.Context, _ string, _ models.JobRequirements) (*Assessment, error) {
	return s.assessment, s.err
}

func passingChecks() map[string]models.MandatoryCheck {
	return map[string]models.MandatoryCheck{
		"gpa":        {Value: "3.5", Status: "PASS"},
		"experience": {Value: "3 years", Status: "PASS"},
	}
}

func TestScoreWeightsSubScores(t *testing.T) {
	oracle := &stubOracle{assessment: &Assessment{
		MandatoryChecks: passingChecks(),
		Rubric:          models.RubricScores{Relevance: 80, Seniority: 50, Quality: 40},
	}}

	result := NewRubricScorer(oracle).Score(context.Background(), "cv", models.JobRequirements{})

	// 0.60*80 + 0.20*50 + 0.20*40
	assert.Equal(t, 66.0, result.FinalScore)
	assert.True(t, result.PassedThreshold)
	assert.False(t, result.Degraded)
}

func TestScoreBelowThreshold(t *testing.T) {
	oracle := &stubOracle{assessment: &Assessment{
		MandatoryChecks: passingChecks(),
		Rubric:          models.RubricScores{Relevance: 50, Seniority: 50, Quality: 50},
	}}

	result := NewRubricScorer(oracle).Score(context.Background(), "cv", models.JobRequirements{})

	assert.Equal(t, 50.0, result.FinalScore)
	assert.False(t, result.PassedThreshold)
}

func TestScoreCapsOnMandatoryFailure(t *testing.T) {
	oracle := &stubOracle{assessment: &Assessment{
		MandatoryChecks: map[string]models.MandatoryCheck{
			"gpa":        {Value: "2.8", Status: "FAIL", Reason: "below the 3.0 minimum"},
			"experience": {Value: "5 years", Status: "PASS"},
		},
		Rubric: models.RubricScores{Relevance: 95, Seniority: 90, Quality: 90},
	}}

	result := NewRubricScorer(oracle).Score(context.Background(), "cv", models.JobRequirements{})

	assert.Equal(t, 25.0, result.FinalScore)
	assert.False(t, result.PassedThreshold)
	assert.Contains(t, result.Narrative, "below the 3.0 minimum")
}

func TestScoreClampsOracleSubScores(t *testing.T) {
	oracle := &stubOracle{assessment: &Assessment{
		MandatoryChecks: passingChecks(),
		Rubric:          models.RubricScores{Relevance: 150, Seniority: -20, Quality: 100},
	}}

	result := NewRubricScorer(oracle).Score(context.Background(), "cv", models.JobRequirements{})

	// 0.60*100 + 0.20*0 + 0.20*100
	assert.Equal(t, 80.0, result.FinalScore)
	assert.Equal(t, models.RubricScores{Relevance: 100, Seniority: 0, Quality: 100}, result.Rubric)
}

func TestScoreNormalizesEvidencePoints(t *testing.T) {
	oracle := &stubOracle{assessment: &Assessment{
		MandatoryChecks: passingChecks(),
		Rubric:          models.RubricScores{Relevance: 70, Seniority: 70, Quality: 70},
		SkillsAnalysis: []models.SkillEvidence{
			{Skill: "Go", Level: models.EvidenceStrong, Score: 3},
			{Skill: "SQL", Level: models.EvidenceListed, Score: 99},
			{Skill: "Kafka", Level: models.EvidenceMissing, Score: 1},
		},
	}}

	result := NewRubricScorer(oracle).Score(context.Background(), "cv", models.JobRequirements{})

	require.Len(t, result.SkillEvidence, 3)
	assert.Equal(t, 10.0, result.SkillEvidence[0].Score)
	assert.Equal(t, 5.0, result.SkillEvidence[1].Score)
	assert.Equal(t, 0.0, result.SkillEvidence[2].Score)
}

func TestScoreOracleFailureIsDegradedZero(t *testing.T) {
	oracle := &stubOracle{err: errors.New("quota exhausted")}

	result := NewRubricScorer(oracle).Score(context.Background(), "cv", models.JobRequirements{})

	assert.True(t, result.Degraded)
	assert.Equal(t, 0.0, result.FinalScore)
	assert.False(t, result.PassedThreshold)
	assert.NotEmpty(t, result.Narrative)
}
