package models

import "time"

// Job represents a job opening owned by an HR user.
type Job struct {
	ID          string    `json:"id" firestore:"-"`
	HRUserID    string    `json:"hr_user_id" firestore:"hrUserId"`
	Title       string    `json:"job_title" firestore:"title"`
	Location    string    `json:"job_location,omitempty" firestore:"location,omitempty"`
	Description string    `json:"job_description" firestore:"description"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`

	// Mandatory eligibility criteria. Nil/empty means the criterion is
	// not applied.
	MinGPA             *float64 `json:"min_gpa,omitempty" firestore:"minGpa,omitempty"`
	MinExperienceYears *int     `json:"min_experience,omitempty" firestore:"minExperience,omitempty"`
	MaxExperienceYears *int     `json:"max_experience,omitempty" firestore:"maxExperience,omitempty"`
	DegreeRequirement  string   `json:"degree_requirements,omitempty" firestore:"degreeRequirement,omitempty"`
	RequiredSkills     []string `json:"required_skills,omitempty" firestore:"requiredSkills,omitempty"`
}

// Requirements builds the read-only requirements value consumed by the
// evaluation pipeline. The pipeline never mutates or persists it.
func (j *Job) Requirements() JobRequirements {
	return JobRequirements{
		JobTitle:           j.Title,
		DescriptionText:    j.Description,
		MinGPA:             j.MinGPA,
		MinExperienceYears: j.MinExperienceYears,
		MinEducationLevel:  ParseEducationLevel(j.DegreeRequirement),
		RequiredSkills:     append([]string(nil), j.RequiredSkills...),
	}
}

// JobRequirements is the externally owned input to the eligibility gate
// and the fit scorer.
type JobRequirements struct {
	JobTitle           string         `json:"job_title"`
	DescriptionText    string         `json:"description_text"`
	MinGPA             *float64       `json:"min_gpa,omitempty"`
	MinExperienceYears *int           `json:"min_experience_years,omitempty"`
	MinEducationLevel  EducationLevel `json:"min_education_level,omitempty"`
	RequiredSkills     []string       `json:"required_skills,omitempty"`
}
