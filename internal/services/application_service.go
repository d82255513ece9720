package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/apperrors"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/dtos"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/models"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/store"
)

// ApplicationService owns the job application collection: validation,
// defaults and stat computation on top of the storage backend.
type ApplicationService struct {
	Store store.Storage
}

func NewApplicationService(st store.Storage) *ApplicationService {
	return &ApplicationService{Store: st}
}

func (s *ApplicationService) Create(ctx context.Context, req *dtos.CreateApplicationRequest) (*models.JobApplication, error) {
	company := strings.TrimSpace(req.Company)
	position := strings.TrimSpace(req.Position)

	var missing []string
	if company == "" {
		missing = append(missing, "company")
	}
	if position == "" {
		missing = append(missing, "position")
	}
	if len(missing) > 0 {
		return nil, apperrors.InvalidInput("company and position are required", missing...)
	}

	status := models.StatusApplied
	if req.Status != "" {
		status = models.ApplicationStatus(req.Status)
		if !status.Valid() {
			return nil, apperrors.InvalidInput("invalid application status", "status")
		}
	}

	now := time.Now()
	applicationDate := now
	if req.ApplicationDate != nil {
		applicationDate = *req.ApplicationDate
	}

	app := &models.JobApplication{
		ID:              uuid.NewString(),
		CreatedAt:       now,
		UpdatedAt:       now,
		Company:         company,
		Position:        position,
		Status:          status,
		ApplicationDate: applicationDate,
		Salary:          req.Salary,
		Location:        req.Location,
		JobURL:          req.JobURL,
		Notes:           req.Notes,
		ContactEmail:    req.ContactEmail,
		ContactName:     req.ContactName,
		NextStepDate:    req.NextStepDate,
	}

	if err := s.Store.InsertApplication(ctx, app); err != nil {
		return nil, apperrors.Storage("failed to create application", err)
	}
	return app, nil
}

func (s *ApplicationService) GetByID(ctx context.Context, id string) (*models.JobApplication, error) {
	app, err := s.Store.GetApplicationByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch application", err)
	}
	if app == nil {
		return nil, apperrors.NotFound("Application not found")
	}
	return app, nil
}

func (s *ApplicationService) GetAll(ctx context.Context) ([]models.JobApplication, error) {
	apps, err := s.Store.GetAllApplications(ctx)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch applications", err)
	}
	return apps, nil
}

// Update merges the supplied fields onto the stored record. Nil fields
// keep their prior value; concurrent updates to the same id are
// last-write-wins.
func (s *ApplicationService) Update(ctx context.Context, id string, req *dtos.UpdateApplicationRequest) (*models.JobApplication, error) {
	app, err := s.Store.GetApplicationByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch application", err)
	}
	if app == nil {
		return nil, apperrors.NotFound("Application not found")
	}

	if req.Company != nil {
		company := strings.TrimSpace(*req.Company)
		if company == "" {
			return nil, apperrors.InvalidInput("company must not be empty", "company")
		}
		app.Company = company
	}
	if req.Position != nil {
		position := strings.TrimSpace(*req.Position)
		if position == "" {
			return nil, apperrors.InvalidInput("position must not be empty", "position")
		}
		app.Position = position
	}
	if req.Status != nil {
		status := models.ApplicationStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.InvalidInput("invalid application status", "status")
		}
		app.Status = status
	}
	if req.ApplicationDate != nil {
		app.ApplicationDate = *req.ApplicationDate
	}
	if req.Salary != nil {
		app.Salary = req.Salary
	}
	if req.Location != nil {
		app.Location = req.Location
	}
	if req.JobURL != nil {
		app.JobURL = req.JobURL
	}
	if req.Notes != nil {
		app.Notes = req.Notes
	}
	if req.ContactEmail != nil {
		app.ContactEmail = req.ContactEmail
	}
	if req.ContactName != nil {
		app.ContactName = req.ContactName
	}
	if req.NextStepDate != nil {
		app.NextStepDate = req.NextStepDate
	}

	app.UpdatedAt = time.Now()

	if err := s.Store.SaveApplication(ctx, app); err != nil {
		return nil, apperrors.Storage("failed to update application", err)
	}
	return app, nil
}

// Delete removes the application and cascades to its interviews,
// reporting whether a record existed.
func (s *ApplicationService) Delete(ctx context.Context, id string) (bool, error) {
	existed, err := s.Store.DeleteApplication(ctx, id)
	if err != nil {
		return false, apperrors.Storage("failed to delete application", err)
	}
	return existed, nil
}

func (s *ApplicationService) GetByStatus(ctx context.Context, status string) ([]models.JobApplication, error) {
	apps, err := s.Store.GetApplicationsByStatus(ctx, models.ApplicationStatus(status))
	if err != nil {
		return nil, apperrors.Storage("failed to fetch applications by status", err)
	}
	return apps, nil
}

func (s *ApplicationService) Search(ctx context.Context, query string) ([]models.JobApplication, error) {
	apps, err := s.Store.SearchApplications(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to search applications", err)
	}
	return apps, nil
}

// Stats computes the dashboard aggregate fresh from the store.
// responseRate is the rounded percentage of applications that reached
// interview, offer or rejected; 0 when there are no applications.
func (s *ApplicationService) Stats(ctx context.Context) (*models.ApplicationStats, error) {
	total, byStatus, err := s.Store.CountApplications(ctx)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch statistics", err)
	}

	interviews := byStatus[models.StatusInterview]
	offers := byStatus[models.StatusOffer]
	rejected := byStatus[models.StatusRejected]

	responseRate := 0
	if total > 0 {
		responded := interviews + offers + rejected
		responseRate = int(math.Round(float64(responded) / float64(total) * 100))
	}

	return &models.ApplicationStats{
		Total:        total,
		Interviews:   interviews,
		Offers:       offers,
		Rejected:     rejected,
		ResponseRate: responseRate,
	}, nil
}
