package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestEvaluatePassesWhenAllCriteriaMet(t *testing.T) {
	profile := &models.StructuredProfile{
		GPA:                  floatPtr(3.5),
		TotalExperienceYears: intPtr(4),
		EducationLevel:       models.EducationS1,
	}
	req := models.JobRequirements{
		MinGPA:             floatPtr(3.0),
		MinExperienceYears: intPtr(2),
		MinEducationLevel:  models.EducationS1,
	}

	verdict := New().Evaluate(profile, req)

	assert.True(t, verdict.Passed)
	assert.Empty(t, verdict.RejectionReason)
}

func TestEvaluateFailsClosedOnMissingGPA(t *testing.T) {
	profile := &models.StructuredProfile{}
	req := models.JobRequirements{MinGPA: floatPtr(3.0)}

	verdict := New().Evaluate(profile, req)

	assert.False(t, verdict.Passed)
	assert.Equal(t, "GPA below minimum requirement (3)", verdict.RejectionReason)
}

func TestEvaluateReportsGPAReasonFirst(t *testing.T) {
	// Fails GPA, experience and education; only the GPA reason surfaces.
	profile := &models.StructuredProfile{
		GPA:                  floatPtr(2.0),
		TotalExperienceYears: intPtr(0),
		EducationLevel:       models.EducationD3,
	}
	req := models.JobRequirements{
		MinGPA:             floatPtr(3.0),
		MinExperienceYears: intPtr(3),
		MinEducationLevel:  models.EducationS1,
	}

	verdict := New().Evaluate(profile, req)

	assert.Equal(t, "GPA below minimum requirement (3)", verdict.RejectionReason)
}

func TestEvaluateExperienceBeforeEducation(t *testing.T) {
	profile := &models.StructuredProfile{
		GPA:            floatPtr(3.5),
		EducationLevel: models.EducationD3,
	}
	req := models.JobRequirements{
		MinGPA:             floatPtr(3.0),
		MinExperienceYears: intPtr(2),
		MinEducationLevel:  models.EducationS1,
	}

	verdict := New().Evaluate(profile, req)

	assert.Equal(t, "Experience below minimum requirement (2 years)", verdict.RejectionReason)
}

func TestEvaluateEducationRankComparison(t *testing.T) {
	profile := &models.StructuredProfile{EducationLevel: models.EducationS2}
	req := models.JobRequirements{MinEducationLevel: models.EducationS1}

	assert.True(t, New().Evaluate(profile, req).Passed)

	profile.EducationLevel = models.EducationD3
	verdict := New().Evaluate(profile, req)
	assert.False(t, verdict.Passed)
	assert.Equal(t, "Education below minimum requirement (S1)", verdict.RejectionReason)
}

func TestEvaluateUnknownEducationFailsClosed(t *testing.T) {
	profile := &models.StructuredProfile{}
	req := models.JobRequirements{MinEducationLevel: models.EducationS1}

	verdict := New().Evaluate(profile, req)

	assert.False(t, verdict.Passed)
}

func TestEvaluateNoRequirementsAlwaysPasses(t *testing.T) {
	verdict := New().Evaluate(&models.StructuredProfile{}, models.JobRequirements{})

	assert.True(t, verdict.Passed)
}
