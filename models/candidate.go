package models

import "time"

// Candidate status values.
const (
	CandidateStatusProcessing = "processing"
	CandidateStatusPassed     = "passed_filter"
	CandidateStatusRejected   = "rejected"
)

// Candidate is the persisted evaluation record for one uploaded resume.
// Only the fields the pipeline chooses to keep survive; the full
// StructuredProfile is ephemeral.
type Candidate struct {
	ID               string    `json:"id" firestore:"-"`
	JobID            string    `json:"job_id" firestore:"jobId"`
	OriginalFilename string    `json:"original_filename,omitempty" firestore:"originalFilename,omitempty"`
	StoragePath      string    `json:"storage_path,omitempty" firestore:"storagePath,omitempty"`
	UploadedAt       time.Time `json:"uploaded_at" firestore:"uploadedAt"`

	Name  string `json:"name,omitempty" firestore:"name,omitempty"`
	Email string `json:"email,omitempty" firestore:"email,omitempty"`
	Phone string `json:"phone,omitempty" firestore:"phone,omitempty"`

	GPA             *float64 `json:"gpa,omitempty" firestore:"gpa,omitempty"`
	Education       string   `json:"education,omitempty" firestore:"education,omitempty"`
	Skills          []string `json:"skills,omitempty" firestore:"skills,omitempty"`
	TotalExperience *int     `json:"total_experience,omitempty" firestore:"totalExperience,omitempty"`

	Status          string   `json:"status" firestore:"status"`
	RejectionReason string   `json:"rejection_reason,omitempty" firestore:"rejectionReason,omitempty"`
	MatchScore      *float64 `json:"match_score,omitempty" firestore:"matchScore,omitempty"`
	ScoringReason   string   `json:"scoring_reason,omitempty" firestore:"scoringReason,omitempty"`
}

// NewCandidateFromProfile copies the persisted subset of an extracted
// profile into a candidate record.
func NewCandidateFromProfile(jobID, filename string, profile *StructuredProfile) *Candidate {
	c := &Candidate{
		JobID:            jobID,
		OriginalFilename: filename,
		UploadedAt:       time.Now(),
		Status:           CandidateStatusProcessing,
	}
	if profile == nil {
		return c
	}
	c.Name = profile.Name
	c.Email = profile.Email
	c.Phone = profile.Phone
	c.GPA = profile.GPA
	c.Education = string(profile.EducationLevel)
	c.Skills = append([]string(nil), profile.Skills...)
	c.TotalExperience = profile.TotalExperienceYears
	return c
}

// Score returns the stored match score, or 0 when the candidate was
// never scored.
func (c *Candidate) Score() float64 {
	if c.MatchScore == nil {
		return 0
	}
	return *c.MatchScore
}
