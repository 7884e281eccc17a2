package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shellasitanaya/backend-cv-analyzer/auth"
	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/pipeline"
	"github.com/shellasitanaya/backend-cv-analyzer/search"
	"github.com/shellasitanaya/backend-cv-analyzer/storage"
	"github.com/shellasitanaya/backend-cv-analyzer/tools"
)

// signedURLExpiration bounds how long a shared CV link stays valid.
const signedURLExpiration = 15 * time.Minute

// HRHandler handles job management, bulk CV screening and talent search
type HRHandler struct {
	firestoreClient *storage.FirestoreClient
	storageClient   *storage.CloudStorageClient
	pipeline        *pipeline.Pipeline
	index           *search.Index
	evalTool        *tools.EvaluateCandidateTool
	maxUploadBytes  int64
}

// NewHRHandler creates a new HR handler
func NewHRHandler(
	firestoreClient *storage.FirestoreClient,
	storageClient *storage.CloudStorageClient,
	evalPipeline *pipeline.Pipeline,
	index *search.Index,
	evalTool *tools.EvaluateCandidateTool,
	maxUploadMB int,
) *HRHandler {
	return &HRHandler{
		firestoreClient: firestoreClient,
		storageClient:   storageClient,
		pipeline:        evalPipeline,
		index:           index,
		evalTool:        evalTool,
		maxUploadBytes:  int64(maxUploadMB) << 20,
	}
}

// CreateJob creates a new job opening
// @Summary Create job opening
// @Description Create a job opening with eligibility criteria (min GPA, experience, degree, skills)
// @Tags HR
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateJobRequest true "Job creation request"
// @Success 201 {object} models.CreateJobResponse "Job created"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /hr/jobs [post]
func (h *HRHandler) CreateJob(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	job := &models.Job{
		HRUserID:           claims.Email,
		Title:              req.Title,
		Location:           req.Location,
		Description:        req.Description,
		MinGPA:             req.MinGPA,
		MinExperienceYears: req.MinExperienceYears,
		MaxExperienceYears: req.MaxExperienceYears,
		DegreeRequirement:  req.DegreeRequirement,
		RequiredSkills:     req.RequiredSkills,
	}

	jobID, err := h.firestoreClient.CreateJob(c.Request.Context(), job)
	if err != nil {
		log.Printf("[HRHandler] Failed to create job: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to create job",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[HRHandler] Job created: %s (%s)", jobID, job.Title)
	c.JSON(http.StatusCreated, models.CreateJobResponse{
		JobID:   jobID,
		Message: "Job created successfully",
	})
}

// ListJobs lists the authenticated HR user's job openings
// @Summary List job openings
// @Description List the job openings owned by the authenticated HR user, newest first
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Job "Job openings"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /hr/jobs [get]
func (h *HRHandler) ListJobs(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	jobs, err := h.firestoreClient.ListJobs(c.Request.Context(), claims.Email)
	if err != nil {
		log.Printf("[HRHandler] Failed to list jobs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list jobs",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	if jobs == nil {
		jobs = []*models.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob retrieves one job opening
// @Summary Get job opening
// @Description Get a job opening by ID
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} models.Job "Job opening"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /hr/jobs/{id} [get]
func (h *HRHandler) GetJob(c *gin.Context) {
	job, err := h.firestoreClient.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == storage.ErrNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Job not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[HRHandler] Failed to get job: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get job",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, job)
}

// UploadCVs evaluates a batch of CVs against a job opening
// @Summary Upload CVs for screening
// @Description Upload multiple CV files for a job; each is extracted, gated and scored independently
// @Tags HR
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param cv_files formData file true "CV files (.pdf, .docx, .txt)"
// @Success 200 {object} models.UploadReport "Batch evaluation report"
// @Failure 400 {object} models.ErrorResponse "No files uploaded"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /hr/jobs/{id}/upload [post]
func (h *HRHandler) UploadCVs(c *gin.Context) {
	job, err := h.firestoreClient.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == storage.ErrNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Job not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[HRHandler] Failed to get job: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get job",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid multipart form",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	files := form.File["cv_files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "No CV files uploaded",
			Code:  http.StatusBadRequest,
		})
		return
	}

	docs := make([]pipeline.Document, 0, len(files))
	for _, header := range files {
		if header.Size > h.maxUploadBytes {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "File too large",
				Code:    http.StatusBadRequest,
				Details: fmt.Sprintf("%s exceeds the upload size limit", header.Filename),
			})
			return
		}

		data, err := readMultipartFile(header)
		if err != nil {
			log.Printf("[HRHandler] Failed to read %s: %v", header.Filename, err)
			// Leave the unreadable bytes to the pipeline, which records
			// the rejection instead of failing the whole batch.
			data = nil
		}

		// Archive the original file first so the candidate record can
		// point back at it. Evaluation does not depend on the archive.
		var storagePath string
		if h.storageClient != nil && data != nil {
			url, err := h.storageClient.UploadCVFromBytes(c.Request.Context(), job.ID, data, header.Filename)
			if err != nil {
				log.Printf("[HRHandler] Failed to archive %s: %v", header.Filename, err)
			} else {
				storagePath = url
			}
		}

		docs = append(docs, pipeline.Document{
			Filename:    header.Filename,
			Data:        data,
			StoragePath: storagePath,
		})
	}

	report, _ := h.pipeline.ProcessBatch(c.Request.Context(), job, docs)

	c.JSON(http.StatusOK, models.UploadReport{
		PassedCount:      report.PassedCount,
		RejectedCount:    report.RejectedCount,
		RejectionDetails: report.RejectionDetails,
	})
}

// ListCandidates lists a job's evaluated candidates
// @Summary List candidates for a job
// @Description List evaluated candidates for a job, ranked by match score, with optional filters
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param status query string false "Filter by status (passed/rejected)"
// @Param min_gpa query number false "Minimum GPA"
// @Param min_experience query int false "Minimum experience in years"
// @Param skills query string false "Comma-separated skills the candidate must hold"
// @Success 200 {array} models.Candidate "Ranked candidates"
// @Failure 400 {object} models.ErrorResponse "Invalid filter value"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /hr/jobs/{id}/candidates [get]
func (h *HRHandler) ListCandidates(c *gin.Context) {
	filter, err := parseCandidateFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid filter value",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	candidates, err := h.firestoreClient.ListCandidatesForJob(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		log.Printf("[HRHandler] Failed to list candidates: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list candidates",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	if candidates == nil {
		candidates = []*models.Candidate{}
	}
	c.JSON(http.StatusOK, candidates)
}

// EvaluateCandidate evaluates a single CV text against ad-hoc requirements
// @Summary Evaluate one candidate
// @Description Run extraction, the eligibility gate and rubric scoring for one CV text without storing the result
// @Tags HR
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.EvaluateRequest true "CV text and job requirements"
// @Success 200 {object} models.EvaluateResponse "Evaluation result"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 500 {object} models.ErrorResponse "Evaluation failed"
// @Router /hr/evaluate [post]
func (h *HRHandler) EvaluateCandidate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	if req.CVText == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "cv_text is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	response, err := h.evalTool.Evaluate(c.Request.Context(), req.CVText, req.Job)
	if err != nil {
		log.Printf("[HRHandler] Evaluation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Evaluation failed",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetCandidateCV streams the archived original resume of a candidate
// @Summary Download candidate CV
// @Description Download the original resume file archived for a candidate
// @Tags HR
// @Produce application/octet-stream
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {file} file "Resume content"
// @Failure 404 {object} models.ErrorResponse "Candidate or archive not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /hr/candidates/{id}/cv [get]
func (h *HRHandler) GetCandidateCV(c *gin.Context) {
	candidate, ok := h.loadCandidateWithCV(c)
	if !ok {
		return
	}

	data, err := h.storageClient.DownloadCV(c.Request.Context(), candidate.StoragePath)
	if err != nil {
		log.Printf("[HRHandler] Failed to download CV for %s: %v", candidate.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to download CV",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	filename := candidate.OriginalFilename
	if filename == "" {
		filename = filepath.Base(candidate.StoragePath)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// GetCandidateCVLink returns a temporary signed URL for a candidate's CV
// @Summary Get candidate CV link
// @Description Generate a short-lived signed URL for a candidate's archived resume
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {object} map[string]string "Signed URL"
// @Failure 404 {object} models.ErrorResponse "Candidate or archive not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /hr/candidates/{id}/cv-url [get]
func (h *HRHandler) GetCandidateCVLink(c *gin.Context) {
	candidate, ok := h.loadCandidateWithCV(c)
	if !ok {
		return
	}

	url, err := h.storageClient.GetSignedURL(candidate.StoragePath, signedURLExpiration)
	if err != nil {
		log.Printf("[HRHandler] Failed to sign CV URL for %s: %v", candidate.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate CV link",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":        url,
		"expires_in": signedURLExpiration.String(),
	})
}

// DeleteCandidate removes a candidate record and its archived CV
// @Summary Delete candidate
// @Description Delete a candidate record and, when present, its archived resume file
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 404 {object} models.ErrorResponse "Candidate not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /hr/candidates/{id} [delete]
func (h *HRHandler) DeleteCandidate(c *gin.Context) {
	id := c.Param("id")
	candidate, err := h.firestoreClient.GetCandidate(c.Request.Context(), id)
	if err != nil {
		if err == storage.ErrNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Candidate not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[HRHandler] Failed to get candidate: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get candidate",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	if err := h.firestoreClient.DeleteCandidate(c.Request.Context(), id); err != nil {
		log.Printf("[HRHandler] Failed to delete candidate %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to delete candidate",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	// The record is gone; a leftover archive object only wastes space.
	if h.storageClient != nil && candidate.StoragePath != "" {
		if err := h.storageClient.DeleteCV(c.Request.Context(), candidate.StoragePath); err != nil {
			log.Printf("[HRHandler] Failed to delete archived CV for %s: %v", id, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Candidate deleted successfully"})
}

// loadCandidateWithCV fetches a candidate and verifies an archived CV
// exists, writing the error response itself when it does not.
func (h *HRHandler) loadCandidateWithCV(c *gin.Context) (*models.Candidate, bool) {
	candidate, err := h.firestoreClient.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == storage.ErrNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Candidate not found",
				Code:  http.StatusNotFound,
			})
			return nil, false
		}
		log.Printf("[HRHandler] Failed to get candidate: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get candidate",
			Code:  http.StatusInternalServerError,
		})
		return nil, false
	}

	if candidate.StoragePath == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No archived CV for this candidate",
			Code:  http.StatusNotFound,
		})
		return nil, false
	}
	return candidate, true
}

// SearchTalent searches all stored candidates by role or skill
// @Summary Search talent pool
// @Description Search stored candidates by role name, role alias or skill, ranked by skill overlap
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Param keyword query string true "Role name, alias or skill"
// @Success 200 {object} models.TalentSearchResponse "Ranked candidates"
// @Failure 400 {object} models.ErrorResponse "Missing keyword"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /hr/talent-search [get]
func (h *HRHandler) SearchTalent(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))
	if keyword == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Query parameter 'keyword' is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	candidates, err := h.firestoreClient.ListAllCandidates(c.Request.Context())
	if err != nil {
		log.Printf("[HRHandler] Failed to load candidates: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load candidates",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	matches := h.index.Search(keyword, candidates)
	if matches == nil {
		matches = []models.TalentMatch{}
	}

	c.JSON(http.StatusOK, models.TalentSearchResponse{
		Status:  "success",
		Message: fmt.Sprintf("%d candidates found for keyword '%s'", len(matches), keyword),
		Data:    matches,
	})
}

func parseCandidateFilter(c *gin.Context) (storage.CandidateFilter, error) {
	filter := storage.CandidateFilter{
		Status: c.Query("status"),
	}

	if raw := c.Query("min_gpa"); raw != "" {
		gpa, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, fmt.Errorf("min_gpa: %w", err)
		}
		filter.MinGPA = &gpa
	}

	if raw := c.Query("min_experience"); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("min_experience: %w", err)
		}
		filter.MinExperience = &years
	}

	if raw := c.Query("skills"); raw != "" {
		for _, skill := range strings.Split(raw, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				filter.Skills = append(filter.Skills, skill)
			}
		}
	}

	return filter, nil
}

func readMultipartFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
