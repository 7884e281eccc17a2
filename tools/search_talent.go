package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/search"
)

// CandidateLister loads the candidate pool the search index runs over.
type CandidateLister interface {
	ListAllCandidates(ctx context.Context) ([]*models.Candidate, error)
}

// SearchTalentTool searches persisted candidates by role or skill.
type SearchTalentTool struct {
	index *search.Index
	store CandidateLister
}

// NewSearchTalentTool creates a new talent search tool
func NewSearchTalentTool(index *search.Index, store CandidateLister) *SearchTalentTool {
	return &SearchTalentTool{
		index: index,
		store: store,
	}
}

func (t *SearchTalentTool) Name() string {
	return "search_talent"
}

func (t *SearchTalentTool) Description() string {
	return `Search stored candidates by role name, role alias or skill.
Input should be the search query (e.g. "web dev", "backend", "react").
Returns candidates ranked by how many of the resolved skills they hold.`
}

func (t *SearchTalentTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Role name, alias or skill to search for",
			},
		},
		"required": []string{"query"},
	}
}

// SearchTalentInput represents the input for talent search
type SearchTalentInput struct {
	Query string `json:"query"`
}

func (t *SearchTalentTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var searchInput SearchTalentInput
	if err := json.Unmarshal(input, &searchInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	candidates, err := t.store.ListAllCandidates(ctx)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("failed to load candidates: %v", err))
	}

	matches := t.index.Search(searchInput.Query, candidates)

	return NewSuccessResult(matches)
}
