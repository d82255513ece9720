package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/handlers"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/models"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/services"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/store"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	st := store.NewMemory()
	logger := zap.NewNop()
	applicationService := services.NewApplicationService(st)
	interviewService := services.NewInterviewService(st)
	importService := services.NewImportService(applicationService, logger)

	applicationHandler := handlers.NewApplicationHandler(applicationService, logger)
	interviewHandler := handlers.NewInterviewHandler(interviewService, logger)
	linkedInHandler := handlers.NewLinkedInHandler(importService, logger)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/applications", applicationHandler.GetAll)
		api.POST("/applications", applicationHandler.Create)
		api.GET("/applications/:id", applicationHandler.GetByID)
		api.PUT("/applications/:id", applicationHandler.Update)
		api.DELETE("/applications/:id", applicationHandler.Delete)
		api.GET("/applications/status/:status", applicationHandler.GetByStatus)
		api.GET("/applications/search/:query", applicationHandler.Search)
		api.GET("/applications/:id/interviews", interviewHandler.GetByApplication)
		api.GET("/stats", applicationHandler.Stats)
		api.POST("/interviews", interviewHandler.Create)
		api.GET("/interviews/upcoming", interviewHandler.GetUpcoming)
		api.PUT("/interviews/:id", interviewHandler.Update)
		api.DELETE("/interviews/:id", interviewHandler.Delete)
		api.POST("/linkedin/parse-job", linkedInHandler.ParseJob)
		api.POST("/linkedin/bulk-import", linkedInHandler.BulkImport)
		api.POST("/linkedin/create-application", linkedInHandler.CreateApplication)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndFetchApplication(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/applications", gin.H{
		"company": "Google", "position": "SWE",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}

	var created models.JobApplication
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.Status != models.StatusApplied {
		t.Errorf("unexpected application: %+v", created)
	}

	w = doJSON(t, r, http.MethodGet, "/api/applications/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Errorf("get status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/applications/does-not-exist", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get missing status = %d, want 404", w.Code)
	}
}

func TestCreateApplicationMissingFields(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/applications", gin.H{"company": "Google"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDeleteApplicationResponses(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/applications", gin.H{"company": "Acme", "position": "SWE"})
	var created models.JobApplication
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if w := doJSON(t, r, http.MethodDelete, "/api/applications/"+created.ID, nil); w.Code != http.StatusOK {
		t.Errorf("delete status = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, "/api/applications/"+created.ID, nil); w.Code != http.StatusNotFound {
		t.Errorf("re-delete status = %d, want 404", w.Code)
	}
}

func TestParseJobEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/linkedin/parse-job", gin.H{
		"jobText": "Senior Frontend Developer\nGoogle\nSan Francisco, CA\n\nWe are looking for a senior frontend developer with 5 years...",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var job models.ParsedJob
	if err := json.Unmarshal(w.Body.Bytes(), &job); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if job.Title != "Senior Frontend Developer" || job.Company != "Google" {
		t.Errorf("unexpected parse: %+v", job)
	}

	w = doJSON(t, r, http.MethodPost, "/api/linkedin/parse-job", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("neither text nor url: status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/linkedin/parse-job", gin.H{
		"jobUrl": "https://example.com/not-linkedin",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad url: status = %d, want 400", w.Code)
	}
}

func TestBulkImportEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/linkedin/bulk-import", gin.H{
		"csvData": "title,company\nSWE,Google\n,NoTitle",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Applications   []models.JobApplication `json:"applications"`
		TotalProcessed int                     `json:"totalProcessed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// the no-title row is dropped at parse time
	if resp.TotalProcessed != 1 || len(resp.Applications) != 1 {
		t.Errorf("totalProcessed = %d, applications = %d", resp.TotalProcessed, len(resp.Applications))
	}

	w = doJSON(t, r, http.MethodPost, "/api/linkedin/bulk-import", gin.H{"csvData": "title,company"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("header-only csv: status = %d, want 400", w.Code)
	}
}

func TestInterviewEndpoints(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/applications", gin.H{"company": "Acme", "position": "SWE"})
	var app models.JobApplication
	if err := json.Unmarshal(w.Body.Bytes(), &app); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(t, r, http.MethodPost, "/api/interviews", gin.H{
		"application_id": app.ID,
		"interview_type": "video",
		"scheduled_date": "2031-05-01T10:00:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create interview status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/applications/"+app.ID+"/interviews", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list interviews status = %d", w.Code)
	}
	var ivs []models.Interview
	if err := json.Unmarshal(w.Body.Bytes(), &ivs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ivs) != 1 {
		t.Errorf("got %d interviews, want 1", len(ivs))
	}

	w = doJSON(t, r, http.MethodGet, "/api/interviews/upcoming", nil)
	if w.Code != http.StatusOK {
		t.Errorf("upcoming status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/interviews", gin.H{
		"application_id": "missing",
		"interview_type": "video",
		"scheduled_date": "2031-05-01T10:00:00Z",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("interview for missing application: status = %d, want 404", w.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var stats models.ApplicationStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats != (models.ApplicationStats{}) {
		t.Errorf("stats on empty store = %+v", stats)
	}
}
