package store

import (
	"context"
	"time"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/models"
)

// Storage is the persistence boundary for applications and interviews.
// Two implementations exist: an in-memory map store (tests, local dev)
// and a gorm/postgres store. Absent ids are reported as (nil, nil) from
// the getters; the service layer turns that into a NotFound error.
// Implementations must be safe for concurrent use.
type Storage interface {
	GetAllApplications(ctx context.Context) ([]models.JobApplication, error)
	GetApplicationByID(ctx context.Context, id string) (*models.JobApplication, error)
	InsertApplication(ctx context.Context, app *models.JobApplication) error
	SaveApplication(ctx context.Context, app *models.JobApplication) error
	// DeleteApplication removes the record and every interview owned by
	// it, reporting whether the record existed.
	DeleteApplication(ctx context.Context, id string) (bool, error)
	GetApplicationsByStatus(ctx context.Context, status models.ApplicationStatus) ([]models.JobApplication, error)
	SearchApplications(ctx context.Context, query string) ([]models.JobApplication, error)
	// CountApplications returns the total and a per-status breakdown.
	CountApplications(ctx context.Context) (int, map[models.ApplicationStatus]int, error)

	GetInterviewByID(ctx context.Context, id string) (*models.Interview, error)
	InsertInterview(ctx context.Context, iv *models.Interview) error
	SaveInterview(ctx context.Context, iv *models.Interview) error
	DeleteInterview(ctx context.Context, id string) (bool, error)
	GetInterviewsByApplicationID(ctx context.Context, applicationID string) ([]models.Interview, error)
	// GetUpcomingInterviews returns scheduled interviews with
	// ScheduledDate >= now, ordered soonest first.
	GetUpcomingInterviews(ctx context.Context, now time.Time) ([]models.Interview, error)
}
