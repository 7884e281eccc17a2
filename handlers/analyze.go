package handlers

import (
	"context"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shellasitanaya/backend-cv-analyzer/audit"
	"github.com/shellasitanaya/backend-cv-analyzer/auth"
	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/scorer"
	"github.com/shellasitanaya/backend-cv-analyzer/skills"
	"github.com/shellasitanaya/backend-cv-analyzer/tools"
	"github.com/shellasitanaya/backend-cv-analyzer/utils"
)

// PDFOracle reads a PDF document directly when plain-text extraction
// cannot recover anything usable.
type PDFOracle interface {
	ExtractProfileFromPDF(ctx context.Context, pdfData []byte, filename string, currentYear int) (*models.StructuredProfile, error)
}

// AnalyzeHandler handles job-seeker CV analysis and parsing requests
type AnalyzeHandler struct {
	lexical   *scorer.LexicalScorer
	auditor   *audit.Auditor
	parseTool *tools.ParseCVTool
	docs      *utils.DocumentExtractor
	vocab     *skills.Vocabulary
	pdfOracle PDFOracle
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(
	lexical *scorer.LexicalScorer,
	auditor *audit.Auditor,
	parseTool *tools.ParseCVTool,
	docs *utils.DocumentExtractor,
	vocab *skills.Vocabulary,
	pdfOracle PDFOracle,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		lexical:   lexical,
		auditor:   auditor,
		parseTool: parseTool,
		docs:      docs,
		vocab:     vocab,
		pdfOracle: pdfOracle,
	}
}

// Analyze scores one CV against a job description
// @Summary Analyze CV against a job description
// @Description Compute a lexical match score plus a keyword and ATS formatting audit for one CV
// @Tags JobSeeker
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body models.AnalyzeRequest false "Analysis request (JSON)"
// @Param cv_file formData file false "CV file to analyze"
// @Param cv_text formData string false "CV text content"
// @Param job_description formData string false "Job description text"
// @Param job_type formData string false "Job type tag for static keyword lists"
// @Success 200 {object} models.AnalyzeResponse "Analysis result"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /js/analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest

	if strings.Contains(c.ContentType(), "multipart/form-data") {
		req.JobDescription = c.PostForm("job_description")
		req.JobType = c.PostForm("job_type")

		file, header, err := c.Request.FormFile("cv_file")
		if err != nil {
			req.CVText = c.PostForm("cv_text")
		} else {
			defer file.Close()
			text, err := h.docs.ExtractFromMultipart(file, header)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error:   "Failed to read CV file",
					Code:    http.StatusBadRequest,
					Details: err.Error(),
				})
				return
			}
			req.CVText = text
			log.Printf("[AnalyzeHandler] Received CV file: %s", header.Filename)
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid request body",
				Code:    http.StatusBadRequest,
				Details: err.Error(),
			})
			return
		}
	}

	if req.CVText == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "CV text or file is required",
			Code:  http.StatusBadRequest,
		})
		return
	}
	if req.JobDescription == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "job_description is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	// The endpoint is open, but logged-in users leave a trail.
	if auth.IsAuthenticated(c) {
		log.Printf("[AnalyzeHandler] Analysis requested by %s", auth.GetAuthClaims(c).Email)
	}

	matchScore := h.lexical.Score(req.CVText, req.JobDescription)
	auditResult := h.auditor.Audit(req.CVText, req.JobDescription, req.JobType)

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		MatchScore: matchScore,
		Audit:      auditResult,
		Message:    "Analysis successful",
	})
}

// ParseCV parses a CV and extracts profile information
// @Summary Parse CV
// @Description Parse a CV file or text and extract a structured candidate profile
// @Tags JobSeeker
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body models.CVParseRequest false "CV parse request (JSON)"
// @Param cv_file formData file false "CV file to parse"
// @Param cv_text formData string false "CV text content"
// @Success 200 {object} models.CVParseResponse "Parsed CV profile"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Parsing failed"
// @Router /parse-cv [post]
func (h *AnalyzeHandler) ParseCV(c *gin.Context) {
	var cvText string
	var requiredSkills []string

	if strings.Contains(c.ContentType(), "multipart/form-data") {
		file, header, err := c.Request.FormFile("cv_file")
		if err != nil {
			cvText = c.PostForm("cv_text")
		} else {
			defer file.Close()
			log.Printf("[AnalyzeHandler] Received CV file: %s", header.Filename)

			data, err := io.ReadAll(file)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error:   "Failed to read CV file",
					Code:    http.StatusBadRequest,
					Details: err.Error(),
				})
				return
			}

			text, err := h.docs.ExtractText(header.Filename, data)
			if err != nil {
				// Scanned or image-only PDFs carry no extractable text;
				// hand the raw document to the multimodal oracle.
				if h.pdfOracle != nil && strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
					profile, oracleErr := h.pdfOracle.ExtractProfileFromPDF(c.Request.Context(), data, header.Filename, time.Now().Year())
					if oracleErr == nil {
						c.JSON(http.StatusOK, models.CVParseResponse{Profile: *profile})
						return
					}
					log.Printf("[AnalyzeHandler] PDF oracle failed for %s: %v", header.Filename, oracleErr)
				}
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error:   "Failed to read CV file",
					Code:    http.StatusBadRequest,
					Details: err.Error(),
				})
				return
			}
			cvText = text
		}
	} else {
		var req models.CVParseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
				Code:  http.StatusBadRequest,
			})
			return
		}
		cvText = req.CVText
		requiredSkills = req.RequiredSkills
	}

	if cvText == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "CV text or file is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	profile, err := h.parseTool.ParseCV(c.Request.Context(), cvText, requiredSkills)
	if err != nil {
		log.Printf("[AnalyzeHandler] ParseCV error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "CV parsing failed",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.CVParseResponse{
		Profile: *profile,
	})
}

// AutocompleteSkills suggests skills from the vocabulary
// @Summary Autocomplete skills
// @Description Suggest skill names from the built-in vocabulary matching a prefix
// @Tags JobSeeker
// @Produce json
// @Param q query string true "Skill prefix"
// @Success 200 {array} string "Matching skills"
// @Router /skills [get]
func (h *AnalyzeHandler) AutocompleteSkills(c *gin.Context) {
	matches := h.vocab.Autocomplete(c.Query("q"), 10)
	if matches == nil {
		matches = []string{}
	}
	c.JSON(http.StatusOK, matches)
}
