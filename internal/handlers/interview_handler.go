package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/dtos"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/services"
)

type InterviewHandler struct {
	Service *services.InterviewService
	Log     *zap.Logger
}

func NewInterviewHandler(svc *services.InterviewService, log *zap.Logger) *InterviewHandler {
	return &InterviewHandler{Service: svc, Log: log}
}

// Create is POST /api/interviews
func (h *InterviewHandler) Create(c *gin.Context) {
	var req dtos.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	iv, err := h.Service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.Log, err, "Failed to create interview")
		return
	}
	c.JSON(http.StatusCreated, iv)
}

// Update is PUT /api/interviews/:id
func (h *InterviewHandler) Update(c *gin.Context) {
	var req dtos.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	iv, err := h.Service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.Log, err, "Failed to update interview")
		return
	}
	c.JSON(http.StatusOK, iv)
}

// Delete is DELETE /api/interviews/:id
func (h *InterviewHandler) Delete(c *gin.Context) {
	existed, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Log, err, "Failed to delete interview")
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{"message": "Interview not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interview deleted successfully"})
}

// GetByApplication is GET /api/applications/:id/interviews
func (h *InterviewHandler) GetByApplication(c *gin.Context) {
	ivs, err := h.Service.GetByApplicationID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Log, err, "Failed to fetch interviews")
		return
	}
	c.JSON(http.StatusOK, ivs)
}

// GetUpcoming is GET /api/interviews/upcoming
func (h *InterviewHandler) GetUpcoming(c *gin.Context) {
	ivs, err := h.Service.GetUpcoming(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err, "Failed to fetch upcoming interviews")
		return
	}
	c.JSON(http.StatusOK, ivs)
}
