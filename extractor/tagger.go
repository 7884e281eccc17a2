package extractor

import (
	"regexp"
	"strings"
)

var personSpanRe = regexp.MustCompile(`(?m)^[A-Z][A-Za-z.'-]+(?:\s+[A-Z][A-Za-z.'-]+){1,3}\s*$`)

// HeuristicTagger is a dependency-free entity tagger. It labels
// title-cased word runs standing alone on a line as PERSON, which is
// how resumes render the candidate's own name.
type HeuristicTagger struct{}

// NewHeuristicTagger creates a heuristic entity tagger
func NewHeuristicTagger() *HeuristicTagger {
	return &HeuristicTagger{}
}

// Tag finds PERSON spans in the text.
func (t *HeuristicTagger) Tag(text string) ([]Entity, error) {
	var entities []Entity
	for _, loc := range personSpanRe.FindAllStringIndex(text, -1) {
		span := strings.TrimSpace(text[loc[0]:loc[1]])
		if isSectionHeader(span) || isContactLine(span) {
			continue
		}
		entities = append(entities, Entity{
			Text:  span,
			Label: "PERSON",
			Start: loc[0],
			End:   loc[1],
		})
	}
	return entities, nil
}
