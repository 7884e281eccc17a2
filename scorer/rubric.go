// Package scorer computes a candidate's weighted fit score against a
// job description. The rubric strategy is primary; the lexical TF-IDF
// strategy is the cheap deterministic fallback.
package scorer

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
)

// Rubric weights. The weighting happens here, never in the oracle, so
// the final score stays auditable and stable across oracle versions.
const (
	weightRelevance = 0.60
	weightSeniority = 0.20
	weightQuality   = 0.20

	// mandatoryFailCap limits the final score when any mandatory
	// sub-check fails, so a hard disqualifier cannot be masked by
	// strong writing quality.
	mandatoryFailCap = 25.0

	defaultPassThreshold = 60.0
)

// Assessment is the raw rubric output reported by the scoring oracle.
type Assessment struct {
	Summary         string                           `json:"candidate_summary"`
	MandatoryChecks map[string]models.MandatoryCheck `json:"mandatory_checks"`
	Rubric          models.RubricScores              `json:"rubric_scores"`
	SkillsAnalysis  []models.SkillEvidence           `json:"skills_analysis"`
	Suggestion      string                           `json:"suggestion"`
}

// RubricOracle is the generative collaborator that rates the raw
// sub-scores. Implemented by the gemini client in production.
type RubricOracle interface {
	ScoreRubric(ctx context.Context, cvText string, job models.JobRequirements) (*Assessment, error)
}

// RubricScorer is the primary scoring strategy.
type RubricScorer struct {
	oracle        RubricOracle
	passThreshold float64
}

// Option configures a RubricScorer.
type Option func(*RubricScorer)

// WithPassThreshold overrides the default pass mark.
func WithPassThreshold(threshold float64) Option {
	return func(s *RubricScorer) {
		if threshold > 0 {
			s.passThreshold = threshold
		}
	}
}

// NewRubricScorer creates the oracle-backed scorer.
func NewRubricScorer(oracle RubricOracle, opts ...Option) *RubricScorer {
	s := &RubricScorer{oracle: oracle, passThreshold: defaultPassThreshold}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score asks the oracle for raw sub-scores and computes the weighted
// final score deterministically. An oracle failure yields a zero-score
// degraded result instead of an error, so one candidate's failure never
// blocks the rest of a batch.
func (s *RubricScorer) Score(ctx context.Context, cvText string, job models.JobRequirements) models.ScoreResult {
	assessment, err := s.oracle.ScoreRubric(ctx, cvText, job)
	if err != nil {
		log.Printf("[Scorer] Rubric oracle failed, returning zero score: %v", err)
		return models.ScoreResult{
			Narrative: "Scoring unavailable: the evaluation service did not return a usable assessment.",
			Degraded:  true,
		}
	}
	return s.compose(assessment)
}

func (s *RubricScorer) compose(a *Assessment) models.ScoreResult {
	rubric := clampRubric(a.Rubric)

	final := weightRelevance*rubric.Relevance +
		weightSeniority*rubric.Seniority +
		weightQuality*rubric.Quality
	final = math.Min(final, 100)

	var failedChecks []string
	for _, key := range sortedCheckKeys(a.MandatoryChecks) {
		check := a.MandatoryChecks[key]
		if check.Failed() {
			failedChecks = append(failedChecks, fmt.Sprintf("%s: %s", key, check.Reason))
		}
	}
	if len(failedChecks) > 0 {
		final = math.Min(final, mandatoryFailCap)
	}

	final = round2(final)

	return models.ScoreResult{
		FinalScore:      final,
		PassedThreshold: final >= s.passThreshold,
		Rubric:          rubric,
		SkillEvidence:   normalizeEvidence(a.SkillsAnalysis),
		Narrative:       buildNarrative(a, failedChecks),
	}
}

// clampRubric bounds each raw sub-score to [0, 100]; the oracle's own
// totals are never trusted.
func clampRubric(r models.RubricScores) models.RubricScores {
	clamp := func(v float64) float64 {
		return math.Max(0, math.Min(v, 100))
	}
	return models.RubricScores{
		Relevance: clamp(r.Relevance),
		Seniority: clamp(r.Seniority),
		Quality:   clamp(r.Quality),
	}
}

// normalizeEvidence replaces oracle-reported per-skill point values with
// the fixed value for each evidence level.
func normalizeEvidence(evidence []models.SkillEvidence) []models.SkillEvidence {
	out := make([]models.SkillEvidence, len(evidence))
	for i, ev := range evidence {
		ev.Score = ev.Level.Points()
		out[i] = ev
	}
	return out
}

func buildNarrative(a *Assessment, failedChecks []string) string {
	var parts []string
	if a.Summary != "" {
		parts = append(parts, a.Summary)
	}
	if len(failedChecks) > 0 {
		parts = append(parts, "Mandatory requirements not met: "+strings.Join(failedChecks, "; "))
	}
	if a.Suggestion != "" {
		parts = append(parts, a.Suggestion)
	}
	return strings.Join(parts, " ")
}

func sortedCheckKeys(checks map[string]models.MandatoryCheck) []string {
	keys := make([]string, 0, len(checks))
	for k := range checks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
