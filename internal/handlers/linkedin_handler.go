package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/dtos"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/linkedin"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/services"
)

// LinkedInHandler exposes the import paths: pasted-text/URL parsing,
// CSV bulk import, and creating an application from a parsed job. The
// browser extension's capture flow posts straight to the applications
// endpoint and never goes through these.
type LinkedInHandler struct {
	Import *services.ImportService
	Log    *zap.Logger
}

func NewLinkedInHandler(imp *services.ImportService, log *zap.Logger) *LinkedInHandler {
	return &LinkedInHandler{Import: imp, Log: log}
}

// ParseJob is POST /api/linkedin/parse-job
func (h *LinkedInHandler) ParseJob(c *gin.Context) {
	var req dtos.ParseJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if req.JobText == "" && req.JobURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Either jobUrl or jobText is required"})
		return
	}

	if req.JobText != "" {
		c.JSON(http.StatusOK, linkedin.ParseJobFromText(req.JobText, req.JobURL))
		return
	}

	job, err := linkedin.ParseJobURL(req.JobURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to parse LinkedIn job URL"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// BulkImport is POST /api/linkedin/bulk-import
func (h *LinkedInHandler) BulkImport(c *gin.Context) {
	var req dtos.BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, totalProcessed, err := h.Import.BulkImport(c.Request.Context(), req.CSVData)
	if err != nil {
		respondError(c, h.Log, err, "Failed to import applications")
		return
	}

	c.JSON(http.StatusOK, dtos.BulkImportResponse{
		Message:        fmt.Sprintf("Successfully imported %d applications", len(created)),
		Applications:   created,
		TotalProcessed: totalProcessed,
	})
}

// CreateApplication is POST /api/linkedin/create-application
func (h *LinkedInHandler) CreateApplication(c *gin.Context) {
	var req dtos.CreateFromJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	app, err := h.Import.CreateFromParsedJob(c.Request.Context(), req.JobData, req.ApplicationData)
	if err != nil {
		respondError(c, h.Log, err, "Failed to create application from LinkedIn data")
		return
	}
	c.JSON(http.StatusCreated, app)
}
