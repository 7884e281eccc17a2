package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shellasitanaya/backend-cv-analyzer/extractor"
	"github.com/shellasitanaya/backend-cv-analyzer/gate"
	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/scorer"
)

// EvaluateCandidateTool runs the full screening flow for one resume:
// profile extraction, the eligibility gate, and rubric scoring.
type EvaluateCandidateTool struct {
	extractor *extractor.Extractor
	gate      *gate.Gate
	scorer    *scorer.RubricScorer
}

// NewEvaluateCandidateTool creates a new candidate evaluation tool
func NewEvaluateCandidateTool(ext *extractor.Extractor, g *gate.Gate, sc *scorer.RubricScorer) *EvaluateCandidateTool {
	return &EvaluateCandidateTool{
		extractor: ext,
		gate:      g,
		scorer:    sc,
	}
}

func (t *EvaluateCandidateTool) Name() string {
	return "evaluate_candidate"
}

func (t *EvaluateCandidateTool) Description() string {
	return `Evaluate a resume against job requirements.
Input should be the CV text and the job requirements (minimum GPA,
experience, education level, required skills).
Returns the extracted profile, the eligibility verdict and, for eligible
candidates, the weighted rubric score.`
}

func (t *EvaluateCandidateTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"cv_text": map[string]interface{}{
				"type":        "string",
				"description": "The CV/resume text content",
			},
			"job": map[string]interface{}{
				"type":        "object",
				"description": "Job requirements: title, description, min GPA, min experience, education level, required skills",
			},
		},
		"required": []string{"cv_text", "job"},
	}
}

// EvaluateCandidateInput represents the input for candidate evaluation
type EvaluateCandidateInput struct {
	CVText string                 `json:"cv_text"`
	Job    models.JobRequirements `json:"job"`
}

func (t *EvaluateCandidateTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var evalInput EvaluateCandidateInput
	if err := json.Unmarshal(input, &evalInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	profile := t.extractor.Extract(ctx, evalInput.CVText, evalInput.Job.RequiredSkills)
	verdict := t.gate.Evaluate(profile, evalInput.Job)

	response := models.EvaluateResponse{
		Profile: *profile,
		Verdict: verdict,
	}

	// Scoring is only spent on candidates that clear the gate.
	if verdict.Passed {
		score := t.scorer.Score(ctx, evalInput.CVText, evalInput.Job)
		response.Score = &score
	}

	return NewSuccessResult(response)
}

// Evaluate is a direct method to evaluate one resume
func (t *EvaluateCandidateTool) Evaluate(ctx context.Context, cvText string, job models.JobRequirements) (*models.EvaluateResponse, error) {
	inputJSON, err := json.Marshal(EvaluateCandidateInput{CVText: cvText, Job: job})
	if err != nil {
		return nil, err
	}

	resultJSON, err := t.Execute(ctx, inputJSON)
	if err != nil {
		return nil, err
	}

	var result ToolResult
	if err := json.Unmarshal(resultJSON, &result); err != nil {
		return nil, err
	}

	if !result.Success {
		return nil, errors.New(result.Error)
	}

	var response models.EvaluateResponse
	if err := json.Unmarshal(result.Data, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
