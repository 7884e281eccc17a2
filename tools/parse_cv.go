package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shellasitanaya/backend-cv-analyzer/extractor"
	"github.com/shellasitanaya/backend-cv-analyzer/models"
)

// ParseCVTool extracts a structured candidate profile from resume text.
type ParseCVTool struct {
	extractor *extractor.Extractor
}

// NewParseCVTool creates a new CV parsing tool
func NewParseCVTool(ext *extractor.Extractor) *ParseCVTool {
	return &ParseCVTool{
		extractor: ext,
	}
}

func (t *ParseCVTool) Name() string {
	return "parse_cv"
}

func (t *ParseCVTool) Description() string {
	return `Parse CV/resume text into a structured candidate profile.
Input should be the CV text content and optionally the skills to look for.
Returns name, contact details, GPA, education level, skills, work history
and total experience years.`
}

func (t *ParseCVTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"cv_text": map[string]interface{}{
				"type":        "string",
				"description": "The CV/resume text content to parse",
			},
			"required_skills": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Skills to look for; the general vocabulary is used when omitted",
			},
		},
		"required": []string{"cv_text"},
	}
}

// ParseCVInput represents the input for CV parsing
type ParseCVInput struct {
	CVText         string   `json:"cv_text"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

func (t *ParseCVTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var parseInput ParseCVInput
	if err := json.Unmarshal(input, &parseInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	profile := t.extractor.Extract(ctx, parseInput.CVText, parseInput.RequiredSkills)

	response := models.CVParseResponse{
		Profile: *profile,
	}

	return NewSuccessResult(response)
}

// ParseCV is a direct method to parse CV text
func (t *ParseCVTool) ParseCV(ctx context.Context, cvText string, requiredSkills []string) (*models.StructuredProfile, error) {
	inputJSON, err := json.Marshal(ParseCVInput{CVText: cvText, RequiredSkills: requiredSkills})
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

	var response models.CVParseResponse
	if err := json.Unmarshal(result.Data, &response); err != nil {
		return nil, err
	}

	return &response.Profile, nil
}
