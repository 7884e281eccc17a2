// Package gate applies a job's mandatory requirements to an extracted
// candidate profile.
package gate

import (
	"fmt"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
)

// Gate checks a profile against mandatory eligibility criteria.
type Gate struct{}

// New creates an eligibility gate.
func New() *Gate {
	return &Gate{}
}

// Evaluate checks the criteria in fixed priority order (GPA, then
// experience, then education) and short-circuits at the first failure,
// so exactly one rejection reason is reported. A missing or unparseable
// candidate value never satisfies a stated minimum: the gate fails
// closed.
func (g *Gate) Evaluate(profile *models.StructuredProfile, req models.JobRequirements) models.EligibilityVerdict {
	if req.MinGPA != nil {
		if profile.GPA == nil || *profile.GPA < *req.MinGPA {
			return models.EligibilityVerdict{
				RejectionReason: fmt.Sprintf("GPA below minimum requirement (%g)", *req.MinGPA),
			}
		}
	}

	if req.MinExperienceYears != nil {
		if profile.TotalExperienceYears == nil || *profile.TotalExperienceYears < *req.MinExperienceYears {
			return models.EligibilityVerdict{
				RejectionReason: fmt.Sprintf("Experience below minimum requirement (%d years)", *req.MinExperienceYears),
			}
		}
	}

	if req.MinEducationLevel != "" {
		if profile.EducationLevel.Rank() < req.MinEducationLevel.Rank() {
			return models.EligibilityVerdict{
				RejectionReason: fmt.Sprintf("Education below minimum requirement (%s)", req.MinEducationLevel),
			}
		}
	}

	return models.EligibilityVerdict{Passed: true}
}
