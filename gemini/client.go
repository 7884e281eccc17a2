// Package gemini implements the generative collaborators used by the
// evaluation pipeline: structured profile extraction and rubric scoring.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/shellasitanaya/backend-cv-analyzer/config"
	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/scorer"
)

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	projectID string
	location  string
	modelName string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)

	// Low temperature keeps extraction and scoring repeatable
	model.SetTemperature(0.2)
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)

	return &Client{
		client:    client,
		model:     model,
		projectID: cfg.ProjectID,
		location:  cfg.Location,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

// profilePayload is the wire format the extraction prompt asks for.
type profilePayload struct {
	Name                 string             `json:"name"`
	Email                string             `json:"email"`
	Phone                string             `json:"phone"`
	GPA                  *float64           `json:"gpa"`
	EducationLevel       string             `json:"education_level"`
	EducationMajor       string             `json:"education_major"`
	Skills               []string           `json:"skills"`
	WorkHistory          []models.WorkEntry `json:"work_history"`
	TotalExperienceYears *int               `json:"total_experience_years"`
}

func (p *profilePayload) toProfile() *models.StructuredProfile {
	return &models.StructuredProfile{
		Name:                 p.Name,
		Email:                p.Email,
		Phone:                p.Phone,
		GPA:                  p.GPA,
		EducationLevel:       models.ParseEducationLevel(p.EducationLevel),
		EducationMajor:       p.EducationMajor,
		Skills:               p.Skills,
		WorkHistory:          p.WorkHistory,
		TotalExperienceYears: p.TotalExperienceYears,
	}
}

// ExtractProfile extracts a structured candidate profile from resume text.
func (c *Client) ExtractProfile(ctx context.Context, cvText string, requiredSkills []string, currentYear int) (*models.StructuredProfile, error) {
	skillHint := "any technical or professional skills you find"
	if len(requiredSkills) > 0 {
		skillHint = "these skills if present: " + strings.Join(requiredSkills, ", ")
	}

	prompt := fmt.Sprintf(`Analyze the following CV/resume and extract structured information.
Return a JSON object with the following fields (use null for missing data):

{
  "name": "Full name",
  "email": "Email address",
  "phone": "Phone number",
  "gpa": 3.5,
  "education_level": "D3|S1|S2|S3",
  "education_major": "Field of study",
  "skills": ["skill1", "skill2"],
  "work_history": [
    {
      "title": "Software Engineer",
      "company": "Company Name",
      "start_date": "01/2020",
      "end_date": "12/2023"
    }
  ],
  "total_experience_years": 0
}

IMPORTANT for total_experience_years:
- Compute the overall career span from the EARLIEST work start date to the LATEST end date
- Treat "Present" or ongoing roles as ending in %d
- Do NOT sum individual job durations; overlapping jobs must not double-count
- Exclude education periods (degree years are not work experience)

For skills, look for %s.
Report education_level as the highest completed degree only.

CV TEXT:
%s

Return ONLY the JSON object, no markdown formatting, no explanation.`, currentYear, skillHint, cvText)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))

	var payload profilePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		log.Printf("Failed to parse profile response: %s", text)
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	profile := payload.toProfile()
	log.Printf("[Gemini] Extracted profile: name=%s, skills=%d, experience=%d years",
		profile.Name, len(profile.Skills), profile.ExperienceYears())

	return profile, nil
}

// ExtractProfileFromPDF extracts a candidate profile straight from PDF
// bytes using Gemini's multimodal input, skipping local text extraction.
func (c *Client) ExtractProfileFromPDF(ctx context.Context, pdfData []byte, filename string, currentYear int) (*models.StructuredProfile, error) {
	prompt := fmt.Sprintf(`Analyze this CV/resume document and extract structured information.
Return a JSON object with the following fields (use null for missing data):

{
  "name": "Full name",
  "email": "Email address",
  "phone": "Phone number",
  "gpa": 3.5,
  "education_level": "D3|S1|S2|S3",
  "education_major": "Field of study",
  "skills": ["skill1", "skill2"],
  "work_history": [
    {
      "title": "Software Engineer",
      "company": "Company Name",
      "start_date": "01/2020",
      "end_date": "12/2023"
    }
  ],
  "total_experience_years": 0
}

IMPORTANT for total_experience_years:
- Compute the overall career span from the EARLIEST work start date to the LATEST end date
- Treat "Present" or ongoing roles as ending in %d
- Do NOT sum individual job durations; overlapping jobs must not double-count
- Exclude education periods (degree years are not work experience)

Return ONLY the JSON object, no markdown formatting, no explanation.`, currentYear)

	pdfBlob := genai.Blob{
		MIMEType: "application/pdf",
		Data:     pdfData,
	}

	resp, err := c.model.GenerateContent(ctx, pdfBlob, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))

	var payload profilePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		log.Printf("Failed to parse CV PDF response: %s", text)
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	profile := payload.toProfile()
	log.Printf("[Gemini] Extracted profile from PDF '%s': name=%s, skills=%d",
		filename, profile.Name, len(profile.Skills))

	return profile, nil
}

// ScoreRubric rates a resume against job requirements on the three-part
// rubric. The returned sub-scores are raw; the caller owns the weighting.
func (c *Client) ScoreRubric(ctx context.Context, cvText string, job models.JobRequirements) (*scorer.Assessment, error) {
	jobJSON, _ := json.Marshal(job)

	prompt := fmt.Sprintf(`You are screening a resume against job requirements.

JOB REQUIREMENTS:
%s

RESUME TEXT:
%s

Return a JSON object with:
{
  "candidate_summary": "1-2 sentences describing the candidate",
  "mandatory_checks": {
    "major": {"value": "what the resume shows", "status": "PASS|FAIL", "reason": "short reason when FAIL"},
    "experience": {"value": "what the resume shows", "status": "PASS|FAIL", "reason": "short reason when FAIL"}
  },
  "rubric_scores": {
    "relevance": 0,
    "seniority": 0,
    "quality": 0
  },
  "skills_analysis": [
    {"skill": "Python", "evidence_level": "Strong Evidence|Standard Context|Listed Only|Missing", "reason": "short justification"}
  ],
  "suggestion": "1 sentence of hiring advice"
}

Scoring rules, each 0-100:
- relevance: fraction of the required skills demonstrably present, judged in context
- seniority: experience duration and role-level alignment with the job
- quality: strong action verbs and quantified impact versus vague language

Evidence levels per required skill:
- "Strong Evidence": appears in a work-experience bullet with quantified or contextual detail
- "Standard Context": appears in experience but generically
- "Listed Only": appears only in a skills list
- "Missing": not found

Mark a mandatory check FAIL only when the resume clearly does not meet it.
Do NOT compute a total score; report the raw sub-scores only.

Return ONLY the JSON object, no markdown formatting, no explanation.`, jobJSON, cvText)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))

	var assessment scorer.Assessment
	if err := json.Unmarshal([]byte(text), &assessment); err != nil {
		log.Printf("Failed to parse rubric response: %s", text)
		return nil, fmt.Errorf("failed to parse rubric JSON: %w", err)
	}

	log.Printf("[Gemini] Rubric scored: relevance=%.0f, seniority=%.0f, quality=%.0f",
		assessment.Rubric.Relevance, assessment.Rubric.Seniority, assessment.Rubric.Quality)

	return &assessment, nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}
