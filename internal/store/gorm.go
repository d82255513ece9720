package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/models"
)

// Gorm is the postgres-backed Storage.
type Gorm struct {
	DB *gorm.DB
}

var _ Storage = (*Gorm)(nil)

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{DB: db}
}

func (g *Gorm) GetAllApplications(ctx context.Context) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := g.DB.WithContext(ctx).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (g *Gorm) GetApplicationByID(ctx context.Context, id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := g.DB.WithContext(ctx).First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (g *Gorm) InsertApplication(ctx context.Context, app *models.JobApplication) error {
	return g.DB.WithContext(ctx).Create(app).Error
}

func (g *Gorm) SaveApplication(ctx context.Context, app *models.JobApplication) error {
	// Save writes every column; the service layer already merged the
	// partial update onto the loaded record.
	return g.DB.WithContext(ctx).Save(app).Error
}

func (g *Gorm) DeleteApplication(ctx context.Context, id string) (bool, error) {
	existed := false
	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("application_id = ?", id).Delete(&models.Interview{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.JobApplication{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		existed = res.RowsAffected > 0
		return nil
	})
	return existed, err
}

func (g *Gorm) GetApplicationsByStatus(ctx context.Context, status models.ApplicationStatus) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := g.DB.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (g *Gorm) SearchApplications(ctx context.Context, query string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	pattern := "%" + query + "%"
	err := g.DB.WithContext(ctx).
		Where("company ILIKE ? OR position ILIKE ? OR status ILIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (g *Gorm) CountApplications(ctx context.Context) (int, map[models.ApplicationStatus]int, error) {
	var rows []struct {
		Status models.ApplicationStatus
		Count  int
	}
	err := g.DB.WithContext(ctx).
		Model(&models.JobApplication{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return 0, nil, err
	}

	total := 0
	byStatus := make(map[models.ApplicationStatus]int)
	for _, row := range rows {
		byStatus[row.Status] = row.Count
		total += row.Count
	}
	return total, byStatus, nil
}

func (g *Gorm) GetInterviewByID(ctx context.Context, id string) (*models.Interview, error) {
	var iv models.Interview
	err := g.DB.WithContext(ctx).First(&iv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (g *Gorm) InsertInterview(ctx context.Context, iv *models.Interview) error {
	return g.DB.WithContext(ctx).Create(iv).Error
}

func (g *Gorm) SaveInterview(ctx context.Context, iv *models.Interview) error {
	return g.DB.WithContext(ctx).Save(iv).Error
}

func (g *Gorm) DeleteInterview(ctx context.Context, id string) (bool, error) {
	res := g.DB.WithContext(ctx).Delete(&models.Interview{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (g *Gorm) GetInterviewsByApplicationID(ctx context.Context, applicationID string) ([]models.Interview, error) {
	var ivs []models.Interview
	err := g.DB.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("scheduled_date ASC").
		Find(&ivs).Error
	return ivs, err
}

func (g *Gorm) GetUpcomingInterviews(ctx context.Context, now time.Time) ([]models.Interview, error) {
	var ivs []models.Interview
	err := g.DB.WithContext(ctx).
		Where("status = ? AND scheduled_date >= ?", models.InterviewScheduled, now).
		Order("scheduled_date ASC").
		Find(&ivs).Error
	return ivs, err
}
