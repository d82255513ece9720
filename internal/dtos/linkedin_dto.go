package dtos

import (
	"time"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/models"
)

// ParseJobRequest carries either pasted posting text, a job URL, or
// both. Text parsing is authoritative; a URL alone yields an
// empty-field record since no live fetch is performed.
type ParseJobRequest struct {
	JobText string `json:"jobText"`
	JobURL  string `json:"jobUrl"`
}

type BulkImportRequest struct {
	CSVData string `json:"csvData" binding:"required"`
}

type BulkImportResponse struct {
	Message        string                  `json:"message"`
	Applications   []models.JobApplication `json:"applications"`
	TotalProcessed int                     `json:"totalProcessed"`
}

// ApplicationOverrides are caller-supplied values merged over the
// payload synthesized from a parsed job before it is validated.
type ApplicationOverrides struct {
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Status   *string `json:"status" binding:"omitempty,oneof=applied interview offer rejected"`

	ApplicationDate *time.Time `json:"application_date"`

	Salary       *int       `json:"salary"`
	Location     *string    `json:"location"`
	JobURL       *string    `json:"job_url"`
	Notes        *string    `json:"notes"`
	ContactEmail *string    `json:"contact_email" binding:"omitempty,email"`
	ContactName  *string    `json:"contact_name"`
	NextStepDate *time.Time `json:"next_step_date"`
}

type CreateFromJobRequest struct {
	JobData         models.ParsedJob      `json:"jobData" binding:"required"`
	ApplicationData *ApplicationOverrides `json:"applicationData"`
}
