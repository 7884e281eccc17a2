package models

// CreateJobRequest represents the API request to create a job opening
// @Description Job creation request with eligibility criteria
type CreateJobRequest struct {
	Title              string   `json:"job_title" binding:"required" example:"IT Data Engineer"`
	Location           string   `json:"job_location,omitempty" example:"Jakarta"`
	Description        string   `json:"job_description" binding:"required" example:"We are hiring a data engineer..."`
	MinGPA             *float64 `json:"min_gpa,omitempty" example:"3.0"`
	MinExperienceYears *int     `json:"min_experience,omitempty" example:"2"`
	MaxExperienceYears *int     `json:"max_experience,omitempty" example:"8"`
	DegreeRequirement  string   `json:"degree_requirements,omitempty" example:"S1"`
	RequiredSkills     []string `json:"required_skills,omitempty" example:"python,sql,airflow"`
}

// CreateJobResponse represents the API response after creating a job
// @Description Job creation response
type CreateJobResponse struct {
	JobID   string `json:"job_id" example:"4f7b1c2e"`
	Message string `json:"message" example:"Job created successfully"`
}

// UploadReport represents the API response for a bulk CV upload
// @Description Batch evaluation report
type UploadReport struct {
	PassedCount      int            `json:"passed_count" example:"3"`
	RejectedCount    int            `json:"rejected_count" example:"2"`
	RejectionDetails map[string]int `json:"rejection_details"`
}

// AnalyzeRequest represents a job seeker's single-CV analysis request
// @Description CV analysis request with job description text
type AnalyzeRequest struct {
	CVText         string `json:"cv_text,omitempty" form:"cv_text"`
	JobDescription string `json:"job_description" form:"job_description" example:"We are hiring a Python developer..."`
	JobType        string `json:"job_type,omitempty" form:"job_type" example:"data engineer"`
}

// AnalyzeResponse represents the single-CV analysis result
// @Description CV analysis result with match score, keyword and ATS audit
type AnalyzeResponse struct {
	MatchScore float64     `json:"match_score" example:"72.41"`
	Audit      AuditResult `json:"audit"`
	Message    string      `json:"message,omitempty" example:"Analysis successful"`
}

// CVParseRequest represents request to parse CV text
// @Description CV parsing request
type CVParseRequest struct {
	CVText         string   `json:"cv_text" example:"Budi Santoso\nSoftware Engineer..."`
	RequiredSkills []string `json:"required_skills,omitempty" example:"python,flask"`
}

// CVParseResponse represents response from CV parsing
// @Description Parsed structured profile
type CVParseResponse struct {
	Profile StructuredProfile `json:"profile"`
}

// TalentSearchResponse represents the candidate search result list
// @Description Talent search results ranked by skill overlap
type TalentSearchResponse struct {
	Status  string        `json:"status" example:"success"`
	Message string        `json:"message" example:"3 candidates found for keyword 'web dev'"`
	Data    []TalentMatch `json:"data"`
}

// TalentMatch is one ranked candidate in a talent search result.
type TalentMatch struct {
	Candidate     *Candidate `json:"candidate"`
	MatchedSkills []string   `json:"matched_skills"`
	MatchCount    int        `json:"match_count"`
	RoleMatched   string     `json:"role_matched,omitempty"`
	RankScore     float64    `json:"rank_score"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"job_description is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2025-01-15T10:30:00Z"`
}

// EvaluateRequest represents a single-candidate evaluation tool request
type EvaluateRequest struct {
	CVText string          `json:"cv_text"`
	Job    JobRequirements `json:"job"`
}

// EvaluateResponse represents a single-candidate evaluation tool result
type EvaluateResponse struct {
	Profile StructuredProfile  `json:"profile"`
	Verdict EligibilityVerdict `json:"verdict"`
	Score   *ScoreResult       `json:"score,omitempty"`
	Audit   *AuditResult       `json:"audit,omitempty"`
}
