package models

// EligibilityVerdict is the outcome of the mandatory-requirements gate.
// Exactly one rejection reason is reported even when several criteria
// fail; reasons follow the fixed priority GPA, experience, education.
type EligibilityVerdict struct {
	Passed          bool   `json:"passed"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

// EvidenceLevel classifies how convincingly a skill is demonstrated.
type EvidenceLevel string

const (
	EvidenceStrong   EvidenceLevel = "Strong Evidence"
	EvidenceStandard EvidenceLevel = "Standard Context"
	EvidenceListed   EvidenceLevel = "Listed Only"
	EvidenceMissing  EvidenceLevel = "Missing"
)

// Points returns the fixed point value attached to the evidence level.
func (l EvidenceLevel) Points() float64 {
	switch l {
	case EvidenceStrong:
		return 10
	case EvidenceStandard:
		return 7.5
	case EvidenceListed:
		return 5
	default:
		return 0
	}
}

// SkillEvidence is the per-skill audit attached to a rubric score.
type SkillEvidence struct {
	Skill  string        `json:"skill"`
	Level  EvidenceLevel `json:"evidence_level"`
	Score  float64       `json:"score"`
	Reason string        `json:"reason,omitempty"`
}

// RubricScores holds the three raw sub-scores reported by the scoring
// oracle, each on a 0-100 scale.
type RubricScores struct {
	Relevance float64 `json:"relevance"`
	Seniority float64 `json:"seniority"`
	Quality   float64 `json:"quality"`
}

// MandatoryCheck is a gate-style sub-check embedded in the oracle's
// rubric output (major match, degree, GPA, experience).
type MandatoryCheck struct {
	Value  string `json:"value"`
	Status string `json:"status"` // PASS or FAIL
	Reason string `json:"reason,omitempty"`
}

// Failed reports whether the check was explicitly marked FAIL.
func (c MandatoryCheck) Failed() bool {
	return c.Status == "FAIL"
}

// ScoreResult is the final weighted fit score for a candidate.
type ScoreResult struct {
	FinalScore      float64         `json:"final_score"`
	PassedThreshold bool            `json:"passed_threshold"`
	Rubric          RubricScores    `json:"rubric"`
	SkillEvidence   []SkillEvidence `json:"per_skill_evidence,omitempty"`
	Narrative       string          `json:"narrative,omitempty"`
	Degraded        bool            `json:"degraded,omitempty"`
}

// ATSResult is the formatting/compatibility sub-score of a resume audit.
type ATSResult struct {
	Score    int      `json:"score"`
	Findings []string `json:"findings,omitempty"`
}

// AuditResult is the keyword and ATS audit of a resume against a job
// description.
type AuditResult struct {
	Matched         []string  `json:"matched"`
	Missing         []string  `json:"missing"`
	MatchPercentage float64   `json:"match_percentage"`
	ATS             ATSResult `json:"ats"`
}

// BatchReport summarizes a bulk evaluation run. Counts and the reason
// histogram are associative so parallel completion order never changes
// the report.
type BatchReport struct {
	PassedCount      int            `json:"passed_count"`
	RejectedCount    int            `json:"rejected_count"`
	RejectionDetails map[string]int `json:"rejection_details"`
}

// Add folds a single candidate outcome into the report.
func (r *BatchReport) Add(verdict EligibilityVerdict) {
	if r.RejectionDetails == nil {
		r.RejectionDetails = make(map[string]int)
	}
	if verdict.Passed {
		r.PassedCount++
		return
	}
	r.RejectedCount++
	r.RejectionDetails[verdict.RejectionReason]++
}

// Merge folds another report into this one.
func (r *BatchReport) Merge(other BatchReport) {
	if r.RejectionDetails == nil {
		r.RejectionDetails = make(map[string]int)
	}
	r.PassedCount += other.PassedCount
	r.RejectedCount += other.RejectedCount
	for reason, n := range other.RejectionDetails {
		r.RejectionDetails[reason] += n
	}
}
