package extractor

import (
	"context"
	"strings"
	"unicode"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
)

// nameWindowTokens limits PERSON lookup to the top of the document,
// where resumes put the candidate's own name.
const nameWindowTokens = 100

// Entity is one tagged span at word-group granularity.
type Entity struct {
	Text  string
	Label string
	Start int
	End   int
}

// Tagger is the named-entity collaborator consumed by the NER strategy.
// Implementations must at least emit the PERSON label.
type Tagger interface {
	Tag(text string) ([]Entity, error)
}

// nerStrategy combines an entity tagger for name extraction with the
// shared regex logic for everything else.
type nerStrategy struct {
	tagger Tagger
	regex  *regexParser
}

func (s *nerStrategy) Name() string { return "ner" }

func (s *nerStrategy) Extract(_ context.Context, text string, requiredSkills []string) (*models.StructuredProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	profile := s.regex.parse(text, requiredSkills)

	name, err := s.extractName(text)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = nameFromLines(text)
	}
	profile.Name = name

	return profile, nil
}

// extractName picks the longest multi-word PERSON span within the first
// ~100 tokens. Single-word spans are accepted only when all caps; a
// single mixed-case word is more likely a company or a header.
func (s *nerStrategy) extractName(text string) (string, error) {
	window := tokenWindow(text, nameWindowTokens)

	entities, err := s.tagger.Tag(window)
	if err != nil {
		return "", err
	}

	best := ""
	for _, ent := range entities {
		if ent.Label != "PERSON" {
			continue
		}
		candidate := strings.TrimSpace(ent.Text)
		if candidate == "" {
			continue
		}
		if !strings.Contains(candidate, " ") && candidate != strings.ToUpper(candidate) {
			continue
		}
		if len(candidate) > len(best) {
			best = candidate
		}
	}
	return best, nil
}

// tokenWindow returns the prefix of text holding at most n whitespace
// separated tokens, preserving the original line structure for the
// tagger.
func tokenWindow(text string, n int) string {
	count := 0
	inToken := false
	for i, r := range text {
		if unicode.IsSpace(r) {
			inToken = false
			continue
		}
		if !inToken {
			count++
			if count > n {
				return text[:i]
			}
			inToken = true
		}
	}
	return text
}
