package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/apperrors"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/dtos"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/models"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/store"
)

const (
	minInterviewDuration = 15
	maxInterviewDuration = 480
)

// InterviewService owns the interview collection. Every interview
// belongs to exactly one application and is deleted with it.
type InterviewService struct {
	Store store.Storage
}

func NewInterviewService(st store.Storage) *InterviewService {
	return &InterviewService{Store: st}
}

func (s *InterviewService) Create(ctx context.Context, req *dtos.CreateInterviewRequest) (*models.Interview, error) {
	app, err := s.Store.GetApplicationByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch application", err)
	}
	if app == nil {
		return nil, apperrors.NotFound("Application not found")
	}

	interviewType := models.InterviewType(req.InterviewType)
	if !interviewType.Valid() {
		return nil, apperrors.InvalidInput("invalid interview type", "interview_type")
	}
	if req.ScheduledDate.IsZero() {
		return nil, apperrors.InvalidInput("scheduled date is required", "scheduled_date")
	}
	if err := validateDuration(req.Duration); err != nil {
		return nil, err
	}

	status := models.InterviewScheduled
	if req.Status != "" {
		status = models.InterviewStatus(req.Status)
		if !status.Valid() {
			return nil, apperrors.InvalidInput("invalid interview status", "status")
		}
	}

	round := 1
	if req.Round != nil {
		if *req.Round < 1 {
			return nil, apperrors.InvalidInput("round must be at least 1", "round")
		}
		round = *req.Round
	}

	now := time.Now()
	iv := &models.Interview{
		ID:               uuid.NewString(),
		CreatedAt:        now,
		UpdatedAt:        now,
		ApplicationID:    req.ApplicationID,
		InterviewType:    interviewType,
		ScheduledDate:    req.ScheduledDate,
		Duration:         req.Duration,
		InterviewerName:  req.InterviewerName,
		InterviewerEmail: req.InterviewerEmail,
		Location:         req.Location,
		Notes:            req.Notes,
		Feedback:         req.Feedback,
		Status:           status,
		Round:            round,
	}

	if err := s.Store.InsertInterview(ctx, iv); err != nil {
		return nil, apperrors.Storage("failed to create interview", err)
	}
	return iv, nil
}

func (s *InterviewService) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	iv, err := s.Store.GetInterviewByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch interview", err)
	}
	if iv == nil {
		return nil, apperrors.NotFound("Interview not found")
	}
	return iv, nil
}

func (s *InterviewService) Update(ctx context.Context, id string, req *dtos.UpdateInterviewRequest) (*models.Interview, error) {
	iv, err := s.Store.GetInterviewByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch interview", err)
	}
	if iv == nil {
		return nil, apperrors.NotFound("Interview not found")
	}

	if req.InterviewType != nil {
		interviewType := models.InterviewType(*req.InterviewType)
		if !interviewType.Valid() {
			return nil, apperrors.InvalidInput("invalid interview type", "interview_type")
		}
		iv.InterviewType = interviewType
	}
	if req.ScheduledDate != nil {
		iv.ScheduledDate = *req.ScheduledDate
	}
	if req.Duration != nil {
		if err := validateDuration(req.Duration); err != nil {
			return nil, err
		}
		iv.Duration = req.Duration
	}
	if req.InterviewerName != nil {
		iv.InterviewerName = req.InterviewerName
	}
	if req.InterviewerEmail != nil {
		iv.InterviewerEmail = req.InterviewerEmail
	}
	if req.Location != nil {
		iv.Location = req.Location
	}
	if req.Notes != nil {
		iv.Notes = req.Notes
	}
	if req.Feedback != nil {
		iv.Feedback = req.Feedback
	}
	if req.Status != nil {
		status := models.InterviewStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.InvalidInput("invalid interview status", "status")
		}
		iv.Status = status
	}
	if req.Round != nil {
		if *req.Round < 1 {
			return nil, apperrors.InvalidInput("round must be at least 1", "round")
		}
		iv.Round = *req.Round
	}

	iv.UpdatedAt = time.Now()

	if err := s.Store.SaveInterview(ctx, iv); err != nil {
		return nil, apperrors.Storage("failed to update interview", err)
	}
	return iv, nil
}

func (s *InterviewService) Delete(ctx context.Context, id string) (bool, error) {
	existed, err := s.Store.DeleteInterview(ctx, id)
	if err != nil {
		return false, apperrors.Storage("failed to delete interview", err)
	}
	return existed, nil
}

func (s *InterviewService) GetByApplicationID(ctx context.Context, applicationID string) ([]models.Interview, error) {
	ivs, err := s.Store.GetInterviewsByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch interviews", err)
	}
	return ivs, nil
}

// GetUpcoming returns scheduled interviews from now on, soonest first.
// Evaluated against the wall clock on every call, never cached.
func (s *InterviewService) GetUpcoming(ctx context.Context) ([]models.Interview, error) {
	ivs, err := s.Store.GetUpcomingInterviews(ctx, time.Now())
	if err != nil {
		return nil, apperrors.Storage("failed to fetch upcoming interviews", err)
	}
	return ivs, nil
}

func validateDuration(duration *int) error {
	if duration == nil {
		return nil
	}
	if *duration < minInterviewDuration || *duration > maxInterviewDuration {
		return apperrors.InvalidInput("duration must be between 15 and 480 minutes", "duration")
	}
	return nil
}
