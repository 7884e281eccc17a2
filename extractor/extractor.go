// Package extractor turns raw resume text into a structured candidate
// profile. A primary oracle-backed strategy is tried first, then an
// NER+regex strategy, then a pure regex strategy; the first one that
// succeeds wins and no strategy is retried within a request.
package extractor

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/skills"
)

// maxReasonableExperienceYears guards against malformed multi-decade
// date ranges producing absurd experience spans.
const maxReasonableExperienceYears = 15

// ErrEmptyInput is returned by strategies when there is no text to parse.
var ErrEmptyInput = errors.New("extractor: empty resume text")

// Strategy is one way of extracting a structured profile from resume
// text. Strategies return an error to signal the orchestrator to fall
// through to the next one; they never panic on malformed input.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, text string, requiredSkills []string) (*models.StructuredProfile, error)
}

// ProfileOracle is the generative text-to-JSON collaborator used by the
// primary strategy. Implemented by the gemini client in production.
type ProfileOracle interface {
	ExtractProfile(ctx context.Context, cvText string, requiredSkills []string, currentYear int) (*models.StructuredProfile, error)
}

// Extractor orchestrates the strategy chain.
type Extractor struct {
	strategies []Strategy
	now        func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock overrides the clock used to resolve "present" work dates.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// New builds an extractor with the standard strategy order. The oracle
// and tagger may each be nil, in which case their strategies are
// skipped: no oracle means NER+regex first, no tagger means pure regex
// only.
func New(oracle ProfileOracle, tagger Tagger, vocab *skills.Vocabulary, opts ...Option) *Extractor {
	e := &Extractor{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}

	if oracle != nil {
		e.strategies = append(e.strategies, &oracleStrategy{oracle: oracle, now: e.now})
	}
	if tagger != nil {
		e.strategies = append(e.strategies, &nerStrategy{tagger: tagger, regex: newRegexParser(vocab, e.now)})
	}
	e.strategies = append(e.strategies, &regexStrategy{regex: newRegexParser(vocab, e.now)})

	return e
}

// Extract runs the strategy chain. It never returns an error: on total
// failure the zero-default profile is returned with ExtractionDegraded
// set, so batch orchestration stays a simple fold over values.
func (e *Extractor) Extract(ctx context.Context, text string, requiredSkills []string) *models.StructuredProfile {
	degraded := false
	for _, s := range e.strategies {
		profile, err := s.Extract(ctx, text, requiredSkills)
		if err != nil {
			log.Printf("[Extractor] Strategy %s failed, falling through: %v", s.Name(), err)
			degraded = true
			continue
		}
		clipExperience(profile)
		profile.ExtractionDegraded = degraded
		return profile
	}

	log.Printf("[Extractor] All strategies failed, returning degraded profile")
	return &models.StructuredProfile{ExtractionDegraded: true}
}

// clipExperience enforces the sane upper bound on the experience span.
func clipExperience(p *models.StructuredProfile) {
	if p.TotalExperienceYears != nil && *p.TotalExperienceYears > maxReasonableExperienceYears {
		clipped := maxReasonableExperienceYears
		p.TotalExperienceYears = &clipped
	}
}

// normalizeSkills dedupes and Title Cases a skill list while keeping
// first-seen order.
func normalizeSkills(found []string) []string {
	seen := make(map[string]bool, len(found))
	out := make([]string, 0, len(found))
	for _, s := range found {
		title := titleCase(s)
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		out = append(out, title)
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}
	return strings.Join(words, " ")
}
