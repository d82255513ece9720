package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/apperrors"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/dtos"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/linkedin"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/models"
)

const importNotesLen = 200

// ImportService turns parser output into persisted applications.
type ImportService struct {
	Applications *ApplicationService
	Log          *zap.Logger
}

func NewImportService(apps *ApplicationService, log *zap.Logger) *ImportService {
	return &ImportService{Applications: apps, Log: log}
}

// BulkImport parses CSV text and creates an application per row. Rows
// that fail validation are logged and skipped; one bad row never aborts
// the batch. The returned count is the number of rows attempted, so
// callers can compare it against the created slice.
func (s *ImportService) BulkImport(ctx context.Context, csvText string) ([]models.JobApplication, int, error) {
	jobs, err := linkedin.ParseCSV(csvText)
	if err != nil {
		return nil, 0, err
	}

	created := make([]models.JobApplication, 0, len(jobs))
	for _, job := range jobs {
		req := requestFromParsedJob(job, "Imported from LinkedIn")
		app, err := s.Applications.Create(ctx, req)
		if err != nil {
			s.Log.Warn("skipping imported row",
				zap.String("company", job.Company),
				zap.String("title", job.Title),
				zap.Error(err))
			continue
		}
		created = append(created, *app)
	}

	return created, len(jobs), nil
}

// CreateFromParsedJob persists a single confirmed parsed job. Unlike
// BulkImport this path is all-or-nothing: the record came from an
// explicit user action, so a missing title or company is an error, not
// a row to skip.
func (s *ImportService) CreateFromParsedJob(ctx context.Context, job models.ParsedJob, overrides *dtos.ApplicationOverrides) (*models.JobApplication, error) {
	if strings.TrimSpace(job.Title) == "" || strings.TrimSpace(job.Company) == "" {
		return nil, apperrors.InvalidInput("Job title and company are required", "title", "company")
	}

	req := requestFromParsedJob(job, "")
	if overrides != nil {
		applyOverrides(req, overrides)
	}

	return s.Applications.Create(ctx, req)
}

// requestFromParsedJob synthesizes a create payload the way the
// dashboard's manual form would fill it: parsed fields where present,
// "Unknown" placeholders for bulk rows, and a truncated description
// prefix as the notes.
func requestFromParsedJob(job models.ParsedJob, fallbackNotes string) *dtos.CreateApplicationRequest {
	req := &dtos.CreateApplicationRequest{
		Company:  job.Company,
		Position: job.Title,
		Status:   string(models.StatusApplied),
	}
	if req.Company == "" {
		req.Company = "Unknown Company"
	}
	if req.Position == "" {
		req.Position = "Unknown Position"
	}

	if job.Location != "" {
		req.Location = &job.Location
	}
	if job.JobURL != "" {
		req.JobURL = &job.JobURL
	}

	if job.Description != "" {
		desc := job.Description
		if runes := []rune(desc); len(runes) > importNotesLen {
			desc = string(runes[:importNotesLen])
		}
		notes := "LinkedIn Import: " + desc + "..."
		req.Notes = &notes
	} else if fallbackNotes != "" {
		notes := fallbackNotes
		req.Notes = &notes
	}

	return req
}

func applyOverrides(req *dtos.CreateApplicationRequest, o *dtos.ApplicationOverrides) {
	if o.Company != nil {
		req.Company = *o.Company
	}
	if o.Position != nil {
		req.Position = *o.Position
	}
	if o.Status != nil {
		req.Status = *o.Status
	}
	if o.ApplicationDate != nil {
		req.ApplicationDate = o.ApplicationDate
	}
	if o.Salary != nil {
		req.Salary = o.Salary
	}
	if o.Location != nil {
		req.Location = o.Location
	}
	if o.JobURL != nil {
		req.JobURL = o.JobURL
	}
	if o.Notes != nil {
		req.Notes = o.Notes
	}
	if o.ContactEmail != nil {
		req.ContactEmail = o.ContactEmail
	}
	if o.ContactName != nil {
		req.ContactName = o.ContactName
	}
	if o.NextStepDate != nil {
		req.NextStepDate = o.NextStepDate
	}
}
