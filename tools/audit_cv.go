package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shellasitanaya/backend-cv-analyzer/audit"
)

// AuditCVTool checks a resume's keyword coverage and ATS compatibility
// against a job description.
type AuditCVTool struct {
	auditor *audit.Auditor
}

// NewAuditCVTool creates a new CV audit tool
func NewAuditCVTool(auditor *audit.Auditor) *AuditCVTool {
	return &AuditCVTool{
		auditor: auditor,
	}
}

func (t *AuditCVTool) Name() string {
	return "audit_cv"
}

func (t *AuditCVTool) Description() string {
	return `Audit a resume against a job description.
Input should be the CV text, the job description and optionally a job
type tag ("data engineer", "business analyst", "data scientist").
Returns matched/missing keywords, match percentage and an ATS
formatting score.`
}

func (t *AuditCVTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"cv_text": map[string]interface{}{
				"type":        "string",
				"description": "The CV/resume text content",
			},
			"job_description": map[string]interface{}{
				"type":        "string",
				"description": "The job description to audit against",
			},
			"job_type": map[string]interface{}{
				"type":        "string",
				"description": "Optional job-type tag selecting a static keyword list",
			},
		},
		"required": []string{"cv_text", "job_description"},
	}
}

// AuditCVInput represents the input for a CV audit
type AuditCVInput struct {
	CVText         string `json:"cv_text"`
	JobDescription string `json:"job_description"`
	JobType        string `json:"job_type,omitempty"`
}

func (t *AuditCVTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var auditInput AuditCVInput
	if err := json.Unmarshal(input, &auditInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	result := t.auditor.Audit(auditInput.CVText, auditInput.JobDescription, auditInput.JobType)

	return NewSuccessResult(result)
}
