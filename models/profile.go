package models

import "strings"

// EducationLevel is the degree classification used for eligibility checks.
// Levels follow the Indonesian system: D3 (diploma), S1 (bachelor),
// S2 (master), S3 (doctorate).
type EducationLevel string

const (
	EducationD3 EducationLevel = "D3"
	EducationS1 EducationLevel = "S1"
	EducationS2 EducationLevel = "S2"
	EducationS3 EducationLevel = "S3"
)

// educationRanks orders levels so a requirement can be compared numerically.
var educationRanks = map[EducationLevel]int{
	EducationD3: 1,
	EducationS1: 2,
	EducationS2: 3,
	EducationS3: 4,
}

// Rank returns the numeric rank of the level, or 0 for unknown/empty.
func (l EducationLevel) Rank() int {
	return educationRanks[l]
}

// ParseEducationLevel maps free-text degree descriptions to a level.
// Higher degrees are checked first so "Master of Science, BSc 2015"
// resolves to S2, not S1.
func ParseEducationLevel(raw string) EducationLevel {
	upper := strings.ToUpper(raw)
	switch {
	case containsAny(upper, "S3", "DOCTORATE", "PHD"):
		return EducationS3
	case containsAny(upper, "S2", "MASTER", "MAGISTER"):
		return EducationS2
	case containsAny(upper, "S1", "BACHELOR", "SARJANA"):
		return EducationS1
	case containsAny(upper, "D3", "DIPLOMA"):
		return EducationD3
	default:
		return ""
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// WorkEntry represents one position in a candidate's work history,
// in the order it appeared in the resume.
type WorkEntry struct {
	Title     string `json:"title,omitempty" firestore:"title,omitempty"`
	Company   string `json:"company,omitempty" firestore:"company,omitempty"`
	StartDate string `json:"start_date,omitempty" firestore:"startDate,omitempty"`
	EndDate   string `json:"end_date,omitempty" firestore:"endDate,omitempty"`
}

// StructuredProfile holds the candidate facts extracted from resume text.
// It is produced once per resume and read-only afterwards; every downstream
// consumer (gate, scorer, persistence) treats it as immutable.
type StructuredProfile struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// GPA is nil when no GPA could be found; the gate treats nil as
	// failing any stated minimum.
	GPA *float64 `json:"gpa,omitempty"`

	EducationLevel EducationLevel `json:"education_level,omitempty"`
	EducationMajor string         `json:"education_major,omitempty"`

	// Skills are deduplicated and Title Cased.
	Skills []string `json:"skills,omitempty"`

	WorkHistory []WorkEntry `json:"work_history,omitempty"`

	// TotalExperienceYears is the span from the earliest work start date
	// to the latest end date, never the sum of individual durations.
	// Nil when no work dates were found.
	TotalExperienceYears *int `json:"total_experience_years,omitempty"`

	// ExtractionDegraded is set when every extraction strategy failed or
	// the winning strategy only partially succeeded.
	ExtractionDegraded bool `json:"extraction_degraded,omitempty"`
}

// HasSkill reports whether the profile lists the skill, case-insensitively.
func (p *StructuredProfile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

// ExperienceYears returns the experience span, or 0 when unknown.
func (p *StructuredProfile) ExperienceYears() int {
	if p.TotalExperienceYears == nil {
		return 0
	}
	return *p.TotalExperienceYears
}
