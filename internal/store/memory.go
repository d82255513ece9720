package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/models"
)

// Memory is a map-backed Storage used by tests and by
// STORAGE_BACKEND=memory for running without postgres.
type Memory struct {
	mu           sync.RWMutex
	applications map[string]models.JobApplication
	interviews   map[string]models.Interview

	// insertion sequence, tie-breaker for newest-first ordering when
	// CreatedAt timestamps collide
	seq    uint64
	appSeq map[string]uint64
}

var _ Storage = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		applications: make(map[string]models.JobApplication),
		interviews:   make(map[string]models.Interview),
		appSeq:       make(map[string]uint64),
	}
}

func (m *Memory) sortNewestFirst(apps []models.JobApplication) {
	sort.Slice(apps, func(i, j int) bool {
		if !apps[i].CreatedAt.Equal(apps[j].CreatedAt) {
			return apps[i].CreatedAt.After(apps[j].CreatedAt)
		}
		return m.appSeq[apps[i].ID] > m.appSeq[apps[j].ID]
	})
}

func (m *Memory) GetAllApplications(_ context.Context) ([]models.JobApplication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	apps := make([]models.JobApplication, 0, len(m.applications))
	for _, app := range m.applications {
		apps = append(apps, app)
	}
	m.sortNewestFirst(apps)
	return apps, nil
}

func (m *Memory) GetApplicationByID(_ context.Context, id string) (*models.JobApplication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	app, ok := m.applications[id]
	if !ok {
		return nil, nil
	}
	return &app, nil
}

func (m *Memory) InsertApplication(_ context.Context, app *models.JobApplication) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	m.appSeq[app.ID] = m.seq
	m.applications[app.ID] = *app
	return nil
}

func (m *Memory) SaveApplication(_ context.Context, app *models.JobApplication) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.applications[app.ID] = *app
	return nil
}

func (m *Memory) DeleteApplication(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.applications[id]; !ok {
		return false, nil
	}
	delete(m.applications, id)
	delete(m.appSeq, id)
	for ivID, iv := range m.interviews {
		if iv.ApplicationID == id {
			delete(m.interviews, ivID)
		}
	}
	return true, nil
}

func (m *Memory) GetApplicationsByStatus(_ context.Context, status models.ApplicationStatus) ([]models.JobApplication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var apps []models.JobApplication
	for _, app := range m.applications {
		if app.Status == status {
			apps = append(apps, app)
		}
	}
	m.sortNewestFirst(apps)
	return apps, nil
}

func (m *Memory) SearchApplications(_ context.Context, query string) ([]models.JobApplication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(query)
	var apps []models.JobApplication
	for _, app := range m.applications {
		if strings.Contains(strings.ToLower(app.Company), q) ||
			strings.Contains(strings.ToLower(app.Position), q) ||
			strings.Contains(strings.ToLower(string(app.Status)), q) {
			apps = append(apps, app)
		}
	}
	m.sortNewestFirst(apps)
	return apps, nil
}

func (m *Memory) CountApplications(_ context.Context) (int, map[models.ApplicationStatus]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byStatus := make(map[models.ApplicationStatus]int)
	for _, app := range m.applications {
		byStatus[app.Status]++
	}
	return len(m.applications), byStatus, nil
}

func (m *Memory) GetInterviewByID(_ context.Context, id string) (*models.Interview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	iv, ok := m.interviews[id]
	if !ok {
		return nil, nil
	}
	return &iv, nil
}

func (m *Memory) InsertInterview(_ context.Context, iv *models.Interview) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.interviews[iv.ID] = *iv
	return nil
}

func (m *Memory) SaveInterview(_ context.Context, iv *models.Interview) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.interviews[iv.ID] = *iv
	return nil
}

func (m *Memory) DeleteInterview(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.interviews[id]; !ok {
		return false, nil
	}
	delete(m.interviews, id)
	return true, nil
}

func (m *Memory) GetInterviewsByApplicationID(_ context.Context, applicationID string) ([]models.Interview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ivs []models.Interview
	for _, iv := range m.interviews {
		if iv.ApplicationID == applicationID {
			ivs = append(ivs, iv)
		}
	}
	sort.Slice(ivs, func(i, j int) bool {
		return ivs[i].ScheduledDate.Before(ivs[j].ScheduledDate)
	})
	return ivs, nil
}

func (m *Memory) GetUpcomingInterviews(_ context.Context, now time.Time) ([]models.Interview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ivs []models.Interview
	for _, iv := range m.interviews {
		if iv.Status == models.InterviewScheduled && !iv.ScheduledDate.Before(now) {
			ivs = append(ivs, iv)
		}
	}
	sort.Slice(ivs, func(i, j int) bool {
		return ivs[i].ScheduledDate.Before(ivs[j].ScheduledDate)
	})
	return ivs, nil
}
